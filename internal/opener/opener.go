// Package opener hands song links to the operating system's default handler.
package opener

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
)

// ErrEmptyTarget is returned when there is nothing to open.
var ErrEmptyTarget = errors.New("nothing to open")

// URLPlaceholder in a custom command is replaced by the link. Without it the
// link is appended as the last argument.
const URLPlaceholder = "{url}"

type Opener struct {
	custom string
	start  func(cmd *exec.Cmd) error
}

// New returns an opener that uses custom as the command line when set, and
// the platform default (open, xdg-open, start) otherwise.
func New(custom string) *Opener {
	return &Opener{custom: strings.TrimSpace(custom), start: startDetached}
}

func (o *Opener) Open(target string) error {
	target = strings.TrimSpace(target)
	if target == "" {
		return ErrEmptyTarget
	}

	args, err := commandFor(runtime.GOOS, o.custom, target)
	if err != nil {
		return err
	}
	return o.start(exec.Command(args[0], args[1:]...))
}

func commandFor(goos, custom, target string) ([]string, error) {
	if custom != "" {
		fields := strings.Fields(custom)
		replaced := false
		for i, f := range fields {
			if strings.Contains(f, URLPlaceholder) {
				fields[i] = strings.ReplaceAll(f, URLPlaceholder, target)
				replaced = true
			}
		}
		if !replaced {
			fields = append(fields, target)
		}
		return fields, nil
	}

	switch goos {
	case "darwin":
		return []string{"open", target}, nil
	case "linux", "freebsd", "openbsd", "netbsd":
		return []string{"xdg-open", target}, nil
	case "windows":
		return []string{"cmd", "/c", "start", "", target}, nil
	default:
		return nil, fmt.Errorf("unsupported operating system: %s", goos)
	}
}

// startDetached launches cmd without waiting for it and discards its
// output so it cannot scribble over the terminal UI.
func startDetached(cmd *exec.Cmd) error {
	devNull, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
	if err != nil {
		return err
	}
	defer devNull.Close()

	cmd.Stdout = devNull
	cmd.Stderr = devNull

	if err := cmd.Start(); err != nil {
		return err
	}
	return cmd.Process.Release()
}
