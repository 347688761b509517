package config

import (
	"fmt"

	"github.com/bnema/tetris-stack/internal/application"
)

const currentSchemaVersion = 1

type Config struct {
	Version int           `mapstructure:"version" toml:"version"`
	Queue   QueueConfig   `mapstructure:"queue" toml:"queue"`
	Stack   StackConfig   `mapstructure:"stack" toml:"stack"`
	Session SessionConfig `mapstructure:"session" toml:"session"`
	Log     LogConfig     `mapstructure:"log" toml:"log"`
}

type QueueConfig struct {
	Capacity int `mapstructure:"capacity" toml:"capacity" validate:"min=1,max=64"`
}

type StackConfig struct {
	Capacity int `mapstructure:"capacity" toml:"capacity" validate:"min=1,max=64"`
}

type SessionConfig struct {
	Mode string `mapstructure:"mode" toml:"mode" validate:"oneof=full minimal"`
	// Seed drives piece kinds; zero seeds from the clock.
	Seed    uint64 `mapstructure:"seed" toml:"seed"`
	IDStart uint64 `mapstructure:"id_start" toml:"id_start"`
}

type LogConfig struct {
	Level string `mapstructure:"level" toml:"level" validate:"oneof=debug info warn error"`
	// File is empty when logging is disabled.
	File       string `mapstructure:"file" toml:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb" toml:"max_size_mb" validate:"min=1"`
	MaxBackups int    `mapstructure:"max_backups" toml:"max_backups" validate:"min=0"`
}

func Default() Config {
	session := application.DefaultSessionConfig()

	return Config{
		Version: currentSchemaVersion,
		Queue:   QueueConfig{Capacity: session.QueueCapacity},
		Stack:   StackConfig{Capacity: session.StackCapacity},
		Session: SessionConfig{Mode: string(session.Mode)},
		Log:     LogConfig{Level: "info", MaxSizeMB: 10, MaxBackups: 3},
	}
}

func (c *Config) applyDefaults() {
	if c.Version == 0 {
		c.Version = currentSchemaVersion
	}
}

func (c Config) validateVersion() error {
	if c.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported config schema version %d (current %d)", c.Version, currentSchemaVersion)
	}

	return nil
}

// SessionSettings converts the file settings into the application's session config.
func (c Config) SessionSettings() (application.SessionConfig, error) {
	mode, err := application.ParseMode(c.Session.Mode)
	if err != nil {
		return application.SessionConfig{}, err
	}

	return application.SessionConfig{
		Mode:          mode,
		QueueCapacity: c.Queue.Capacity,
		StackCapacity: c.Stack.Capacity,
		FirstID:       c.Session.IDStart,
	}, nil
}
