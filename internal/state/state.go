package state

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/Paintersrp/binders/internal/config"
	"github.com/Paintersrp/binders/internal/logger"
	"github.com/Paintersrp/binders/internal/opener"
	"github.com/Paintersrp/binders/internal/store"
)

// State carries everything commands share. It is created before flags are
// parsed; Open fills in the config-dependent parts once they are.
type State struct {
	Home       string
	ConfigPath string

	Config *config.Config
	Logger *logger.Logger
	Store  *store.Store
	Opener *opener.Opener
}

func NewState() (*State, error) {
	home, err := GetHomeDir()
	if err != nil {
		return nil, err
	}
	return &State{Home: home}, nil
}

func GetHomeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory. err: %s", err)
	}

	return home, nil
}

// LoadConfig reads the config, creating the default file on first run.
func (s *State) LoadConfig() error {
	if s.Config != nil {
		return nil
	}

	path := strings.TrimSpace(s.ConfigPath)
	if path == "" {
		if err := config.EnsureConfigExists(s.Home); err != nil {
			return err
		}
		path = config.GetConfigPath(s.Home)
	}

	cfg, err := config.LoadFile(s.Home, path)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	s.Config = cfg
	return nil
}

// Open loads the config, starts the log file, and opens the database. It is
// safe to call more than once.
func (s *State) Open() error {
	if err := s.LoadConfig(); err != nil {
		return err
	}

	if s.Logger == nil {
		l, err := logger.OpenFile(s.Config.LogFile, logger.ParseLevel(s.Config.LogLevel))
		if err != nil {
			return err
		}
		s.Logger = l
	}

	if s.Store == nil {
		st, err := store.Open(s.Config.DatabasePath(), s.Logger.Logger)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		s.Store = st
	}

	if s.Opener == nil {
		s.Opener = opener.New(s.Config.Opener)
	}
	return nil
}

// Close releases the database and the log file.
func (s *State) Close() error {
	if s == nil {
		return nil
	}

	var errs []error
	if s.Store != nil {
		if err := s.Store.Close(); err != nil {
			errs = append(errs, err)
		}
		s.Store = nil
	}
	if s.Logger != nil {
		if err := s.Logger.Close(); err != nil {
			errs = append(errs, err)
		}
		s.Logger = nil
	}

	if len(errs) == 0 {
		return nil
	}
	return errors.Join(errs...)
}
