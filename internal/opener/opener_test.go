package opener

import (
	"errors"
	"os/exec"
	"reflect"
	"testing"
)

func TestCommandForPlatforms(t *testing.T) {
	cases := []struct {
		goos string
		want []string
	}{
		{"darwin", []string{"open", "https://example.com"}},
		{"linux", []string{"xdg-open", "https://example.com"}},
		{"windows", []string{"cmd", "/c", "start", "", "https://example.com"}},
	}

	for _, tc := range cases {
		got, err := commandFor(tc.goos, "", "https://example.com")
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.goos, err)
		}
		if !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.goos, tc.want, got)
		}
	}

	if _, err := commandFor("plan9", "", "x"); err == nil {
		t.Fatalf("expected unsupported platform error")
	}
}

func TestCommandForCustom(t *testing.T) {
	got, err := commandFor("linux", "firefox --new-tab", "https://example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"firefox", "--new-tab", "https://example.com"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	got, err = commandFor("linux", "browser --url={url} --quiet", "https://example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want = []string{"browser", "--url=https://example.com", "--quiet"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestOpen(t *testing.T) {
	var started []string
	o := New("echo")
	o.start = func(cmd *exec.Cmd) error {
		started = cmd.Args
		return nil
	}

	if err := o.Open("  "); !errors.Is(err, ErrEmptyTarget) {
		t.Fatalf("expected ErrEmptyTarget, got %v", err)
	}
	if err := o.Open(" https://example.com/score.pdf "); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"echo", "https://example.com/score.pdf"}
	if !reflect.DeepEqual(started, want) {
		t.Fatalf("expected %v, got %v", want, started)
	}

	o.start = func(*exec.Cmd) error { return errors.New("no browser") }
	if err := o.Open("https://example.com"); err == nil || err.Error() != "no browser" {
		t.Fatalf("expected start error, got %v", err)
	}
}
