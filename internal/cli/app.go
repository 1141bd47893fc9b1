// Package cli provides the command-line side of twich: rule inspection,
// offline sanitizing and the interactive gatekeeper tester.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/bnema/twich/internal/bootstrap"
	"github.com/bnema/twich/internal/cli/styles"
	"github.com/bnema/twich/internal/domain/build"
	"github.com/bnema/twich/internal/infrastructure/config"
	"github.com/bnema/twich/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config        *config.Config
	ConfigManager *config.Manager
	Filters       *bootstrap.Filters
	Theme         *styles.Theme
	BuildInfo     build.Info

	ctx context.Context
}

// NewApp loads config and compiles the rules. CLI logs stay quiet unless
// TWICH_LOG_LEVEL asks otherwise.
func NewApp() (*App, error) {
	mgr, cfg, err := bootstrap.LoadConfig()
	if err != nil {
		return nil, err
	}

	level := zerolog.WarnLevel
	if env := os.Getenv(logging.EnvLogLevel); env != "" {
		if parsed, perr := logging.ParseLevel(env); perr == nil {
			level = parsed
		}
	}
	lc := logging.DefaultConfig()
	lc.Level = level
	lc.Format = cfg.Logging.Format
	lc.TimeFormat = "15:04:05"
	logger, _, err := logging.New(lc)
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}

	filters, err := bootstrap.BuildFilters(cfg)
	if err != nil {
		return nil, err
	}

	return &App{
		Config:        cfg,
		ConfigManager: mgr,
		Filters:       filters,
		Theme:         styles.NewTheme(),
		ctx:           logging.WithContext(context.Background(), logger),
	}, nil
}

// Ctx returns the context carrying the CLI logger.
func (a *App) Ctx() context.Context {
	if a.ctx == nil {
		return context.Background()
	}
	return a.ctx
}
