package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/Paintersrp/binders/internal/constants"
)

type BackupConfig struct {
	Bucket          string `yaml:"bucket"            json:"bucket"`
	Prefix          string `yaml:"prefix"            json:"prefix"`
	Region          string `yaml:"region"            json:"region"`
	Profile         string `yaml:"profile"           json:"profile"`
	Endpoint        string `yaml:"endpoint"          json:"endpoint"`
	AccessKeyID     string `yaml:"access_key_id"     json:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key" json:"secret_access_key"`
}

type Config struct {
	Database string       `yaml:"database"  json:"database"`
	LogFile  string       `yaml:"log_file"  json:"log_file"`
	LogLevel string       `yaml:"log_level" json:"log_level"`
	Opener   string       `yaml:"opener"    json:"opener"`
	Backup   BackupConfig `yaml:"backup"    json:"backup"`

	home string `yaml:"-"`
	path string `yaml:"-"`
}

const (
	defaultLogLevel     = "info"
	defaultBackupPrefix = "backups/"
)

var ValidLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

func Load(home string) (*Config, error) {
	return LoadFile(home, GetConfigPath(home))
}

// LoadFile reads the config at path. Relative defaults still resolve under
// home.
func LoadFile(home, path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := &Config{home: home, path: path}
	if len(strings.TrimSpace(string(data))) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	if err := cfg.ensureDefaults(); err != nil {
		return nil, err
	}

	cfg.syncViper()
	return cfg, nil
}

func (cfg *Config) ensureDefaults() error {
	base := filepath.Join(cfg.home, constants.ConfigDir)

	if strings.TrimSpace(cfg.Database) == "" {
		cfg.Database = filepath.Join(base, constants.DatabaseFile)
	}
	if strings.TrimSpace(cfg.LogFile) == "" {
		cfg.LogFile = filepath.Join(base, constants.LogFile)
	}

	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaultLogLevel
	}
	if !ValidLogLevels[cfg.LogLevel] {
		return &ConfigError{
			Field: "log_level",
			msg:   fmt.Sprintf("invalid log level: %q. Please choose from 'debug', 'info', 'warn', or 'error'", cfg.LogLevel),
		}
	}

	if cfg.Backup.Prefix == "" {
		cfg.Backup.Prefix = defaultBackupPrefix
	}

	var err error
	if cfg.Database, err = homedir.Expand(cfg.Database); err != nil {
		return &ConfigError{Field: "database", msg: err.Error()}
	}
	if cfg.LogFile, err = homedir.Expand(cfg.LogFile); err != nil {
		return &ConfigError{Field: "log_file", msg: err.Error()}
	}

	return nil
}

func (cfg *Config) syncViper() {
	viper.SetDefault("database", cfg.Database)
	viper.SetDefault("log_file", cfg.LogFile)
	viper.SetDefault("log_level", cfg.LogLevel)
	viper.SetDefault("opener", cfg.Opener)
	viper.SetDefault("backup.bucket", cfg.Backup.Bucket)
	viper.SetDefault("backup.prefix", cfg.Backup.Prefix)
	viper.SetDefault("backup.region", cfg.Backup.Region)
}

// DatabasePath honours a --db override bound into viper.
func (cfg *Config) DatabasePath() string {
	if override := strings.TrimSpace(viper.GetString("database")); override != "" {
		if expanded, err := homedir.Expand(override); err == nil {
			return expanded
		}
		return override
	}
	return cfg.Database
}

func (cfg *Config) Save() error {
	if cfg.LogLevel != "" && !ValidLogLevels[cfg.LogLevel] {
		return &ConfigError{Field: "log_level", msg: fmt.Sprintf("invalid log level: %q", cfg.LogLevel)}
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	configPath := cfg.path
	if configPath == "" {
		configPath = GetConfigPath(cfg.home)
	}
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

func (cfg *Config) SetBackupBucket(bucket, prefix string) error {
	bucket = strings.TrimSpace(bucket)
	if bucket == "" {
		return fmt.Errorf("bucket name cannot be empty")
	}

	cfg.Backup.Bucket = bucket
	if prefix = strings.TrimSpace(prefix); prefix != "" {
		cfg.Backup.Prefix = prefix
	}
	return cfg.Save()
}
