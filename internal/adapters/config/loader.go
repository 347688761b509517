package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	configType      = "toml"
	configDir       = ".tetris-stack"
	configFile      = "config.toml"
	envPrefix       = "TETRIS_STACK"
	configFileMode  = 0o600
	configDirMode   = 0o700
	tempFilePattern = ".config-*.toml.tmp"
)

// Loader resolves the effective configuration from defaults, the config
// file, TETRIS_STACK_* environment variables and bound flags.
type Loader struct {
	v        *viper.Viper
	path     string
	validate *validator.Validate
}

// NewLoader prepares cfg for loading. An empty path selects
// $HOME/.tetris-stack/config.toml.
func NewLoader(cfg *viper.Viper, path string) (*Loader, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	if path == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home directory: %w", err)
		}
		path = filepath.Join(homeDir, configDir, configFile)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve config path: %w", err)
	}
	absPath = filepath.Clean(absPath)

	cfg.SetConfigFile(absPath)
	cfg.SetConfigType(configType)
	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()

	defaults := Default()
	cfg.SetDefault("version", defaults.Version)
	cfg.SetDefault("queue.capacity", defaults.Queue.Capacity)
	cfg.SetDefault("stack.capacity", defaults.Stack.Capacity)
	cfg.SetDefault("session.mode", defaults.Session.Mode)
	cfg.SetDefault("session.seed", defaults.Session.Seed)
	cfg.SetDefault("session.id_start", defaults.Session.IDStart)
	cfg.SetDefault("log.level", defaults.Log.Level)
	cfg.SetDefault("log.file", defaults.Log.File)
	cfg.SetDefault("log.max_size_mb", defaults.Log.MaxSizeMB)
	cfg.SetDefault("log.max_backups", defaults.Log.MaxBackups)

	return &Loader{
		v:        cfg,
		path:     absPath,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}, nil
}

func (l *Loader) Path() string {
	return l.path
}

// Load reads the config file when present and returns the validated result.
func (l *Loader) Load() (Config, error) {
	if err := l.v.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.validateVersion(); err != nil {
		return Config{}, err
	}
	cfg.applyDefaults()

	if err := l.validate.Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

func Encode(cfg Config) ([]byte, error) {
	cfg.applyDefaults()

	data, err := toml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return data, nil
}

// WriteFile atomically replaces path with cfg. An existing file is kept
// unless force is set.
func WriteFile(path string, cfg Config, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config file %s already exists", path)
		} else if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("stat config file: %w", err)
		}
	}

	data, err := Encode(cfg)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), configDirMode); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp config file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp config file: %w", err)
	}

	if err := tempFile.Chmod(configFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp config file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp config file: %w", err)
	}

	if err := os.Rename(tempName, path); err != nil {
		return fmt.Errorf("replace config file: %w", err)
	}

	cleanup = false
	return nil
}
