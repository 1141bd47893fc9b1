// Package bootstrap turns configuration into the ready-to-wire pieces both
// the GUI and the CLI start from.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/twich/internal/application/port"
	"github.com/bnema/twich/internal/filtering"
	"github.com/bnema/twich/internal/infrastructure/config"
	"github.com/bnema/twich/internal/infrastructure/media"
	"github.com/bnema/twich/internal/logging"
)

// ErrConfig wraps every configuration failure that aborts startup.
var ErrConfig = errors.New("invalid configuration")

// LoadConfig loads (creating on first run) and validates config.toml.
func LoadConfig() (*config.Manager, *config.Config, error) {
	mgr, err := config.NewManager()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	if err := mgr.Load(); err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	return mgr, mgr.Get(), nil
}

// LoggingConfig maps the logging section onto the logger factory's config.
func LoggingConfig(cfg *config.Config) (logging.Config, error) {
	level, err := logging.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return logging.Config{}, fmt.Errorf("%w: %w", ErrConfig, err)
	}

	lc := logging.DefaultConfig()
	lc.Level = level
	lc.Format = cfg.Logging.Format
	lc.TimeFormat = "15:04:05"
	lc.MaxSizeMB = cfg.Logging.MaxSizeMB
	lc.MaxBackups = cfg.Logging.MaxBackups
	lc.MaxAgeDays = cfg.Logging.MaxAgeDays
	lc.Compress = true

	if cfg.Logging.EnableFileLog {
		lc.FileDir = cfg.Logging.LogDir
		if lc.FileDir == "" {
			dir, err := config.GetLogDir()
			if err != nil {
				return logging.Config{}, fmt.Errorf("resolve log dir: %w", err)
			}
			lc.FileDir = dir
		}
	}
	return lc, nil
}

// NewLogger builds the application logger from config.
func NewLogger(cfg *config.Config) (zerolog.Logger, io.Closer, error) {
	lc, err := LoggingConfig(cfg)
	if err != nil {
		return zerolog.Nop(), nil, err
	}
	return logging.New(lc)
}

// Filters bundles the validated rule set and the engines built on it.
type Filters struct {
	Rules      *filtering.RuleSet
	Gatekeeper *filtering.Gatekeeper
	Sanitizer  *filtering.Sanitizer
}

// BuildFilters validates the built-in and configured rules and compiles them.
func BuildFilters(cfg *config.Config) (*Filters, error) {
	rules, err := filtering.BuildRuleSet(cfg.Filtering.ExtraBlockPatterns, cfg.Filtering.ExtraSanitizeSelectors)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	gk, err := filtering.NewGatekeeper(rules.Block, cfg.Filtering.VerdictCacheSize)
	if err != nil {
		return nil, fmt.Errorf("build gatekeeper: %w", err)
	}
	san, err := filtering.NewSanitizer(rules.Sanitize)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	return &Filters{Rules: rules, Gatekeeper: gk, Sanitizer: san}, nil
}

// GStreamerSettings maps the media section onto the env manager settings.
func GStreamerSettings(cfg *config.Config) port.GStreamerEnvSettings {
	return port.GStreamerEnvSettings{
		HardwareDecoding:    cfg.Media.HardwareDecoding,
		ForceVSync:          cfg.Media.ForceVSync,
		GLRenderingMode:     string(cfg.Media.GLRenderingMode),
		GStreamerDebugLevel: cfg.Media.GStreamerDebugLevel,
	}
}

// InitResult is the output of the parallel init phase.
type InitResult struct {
	Filters  *Filters
	Profile  config.ProfileDirs
	EnvVars  map[string]string
	Duration time.Duration
}

// InitInput holds the input for RunParallelInit.
type InitInput struct {
	Config *config.Config
	// EnvManager defaults to media.NewEnvManager.
	EnvManager port.GStreamerEnvManager
}

// RunParallelInit compiles the filters, resolves the profile directories and
// prepares the GStreamer environment concurrently. It must run before GTK
// initializes. The first error wins.
func RunParallelInit(ctx context.Context, in InitInput) (*InitResult, error) {
	start := time.Now()
	res := &InitResult{}

	envMgr := in.EnvManager
	if envMgr == nil {
		envMgr = media.NewEnvManager()
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		f, err := BuildFilters(in.Config)
		if err != nil {
			return err
		}
		res.Filters = f
		return nil
	})

	g.Go(func() error {
		dirs, err := config.GetProfileDirs(in.Config.Profile.DataDir)
		if err != nil {
			return fmt.Errorf("resolve profile directories: %w", err)
		}
		res.Profile = dirs
		return nil
	})

	g.Go(func() error {
		envMgr.DetectGPUVendor(gctx)
		if err := envMgr.ApplyEnvironment(gctx, GStreamerSettings(in.Config)); err != nil {
			return fmt.Errorf("apply gstreamer environment: %w", err)
		}
		res.EnvVars = envMgr.GetAppliedVars()
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	res.Duration = time.Since(start)

	logging.FromContext(ctx).Debug().
		Int("block_rules", len(res.Filters.Rules.Block)).
		Int("sanitize_rules", len(res.Filters.Rules.Sanitize)).
		Str("profile", res.Profile.Data).
		Dur("took", res.Duration).
		Msg("parallel init complete")
	return res, nil
}
