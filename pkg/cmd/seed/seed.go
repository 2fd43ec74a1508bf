package seed

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Paintersrp/binders/internal/state"
	"github.com/Paintersrp/binders/internal/store"
)

func NewCmdSeed(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed <file.yaml>",
		Short: "Import binders and songs from a YAML file.",
		Long: heredoc.Doc(`
			Import a library from YAML. Binders that already exist (by number)
			and songs that already exist (by title and composer) are reused, so
			the same file can be imported again safely.

			Example file:
			  songs:
			    - title: Gloria
			      composer: Vivaldi
			      link: https://example.com/gloria.pdf
			  binders:
			    - number: 0
			      label: Director
			      songs: ["Gloria - Vivaldi"]

			Examples:
			  binders seed library.yaml
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, s, args[0])
		},
	}

	return cmd
}

func run(cmd *cobra.Command, s *state.State, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	f, err := decode(data)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	result, err := s.Store.Seed(cmd.Context(), f)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(),
		"Created %d binders and %d songs; %d songs linked.\n",
		result.BindersCreated, result.SongsCreated, result.Links,
	)
	return nil
}

// decode rejects unknown keys so a misspelt field is not silently dropped.
func decode(data []byte) (store.SeedFile, error) {
	var f store.SeedFile

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return store.SeedFile{}, err
	}
	return f, nil
}
