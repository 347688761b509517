package cmd

import (
	"fmt"

	configadapter "github.com/bnema/tetris-stack/internal/adapters/config"
	"github.com/bnema/tetris-stack/internal/adapters/logging"
	boardadapter "github.com/bnema/tetris-stack/internal/adapters/render/board"
	"github.com/bnema/tetris-stack/internal/application"
	"github.com/bnema/tetris-stack/internal/ports"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type app struct {
	configPath    string
	viper         *viper.Viper
	boardRenderer func(application.Board, boardadapter.RenderOptions) (string, error)
	newRandom     func(seed uint64) ports.RandomSource
	newLogger     func(logging.Options) (*zap.Logger, func() error, error)
}

func wireApp() *app {
	return &app{
		viper:         viper.New(),
		boardRenderer: boardadapter.Render,
		newRandom: func(seed uint64) ports.RandomSource {
			return ports.NewSystemRandom(seed)
		},
		newLogger: logging.New,
	}
}

func (a *app) configLoader() (*configadapter.Loader, error) {
	loader, err := configadapter.NewLoader(a.viper, a.configPath)
	if err != nil {
		return nil, fmt.Errorf("wire config loader: %w", err)
	}
	return loader, nil
}

func (a *app) loadConfig() (configadapter.Config, error) {
	loader, err := a.configLoader()
	if err != nil {
		return configadapter.Config{}, err
	}
	return loader.Load()
}

// newSession builds the service for one play session. The returned close
// func releases the log file.
func (a *app) newSession(cfg configadapter.Config) (*application.Service, func() error, error) {
	sessionCfg, err := cfg.SessionSettings()
	if err != nil {
		return nil, nil, err
	}

	logger, closeLog, err := a.newLogger(logging.Options{
		Level:      cfg.Log.Level,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("wire logger: %w", err)
	}

	svc, err := application.NewService(sessionCfg, a.newRandom(cfg.Session.Seed), logger)
	if err != nil {
		_ = closeLog()
		return nil, nil, fmt.Errorf("start session: %w", err)
	}

	return svc, closeLog, nil
}
