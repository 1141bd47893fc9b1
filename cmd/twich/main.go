package main

import (
	"context"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/bnema/twich/internal/bootstrap"
	"github.com/bnema/twich/internal/cli/cmd"
	"github.com/bnema/twich/internal/domain/build"
	"github.com/bnema/twich/internal/logging"
	"github.com/bnema/twich/internal/ui"
)

// Build-time variables (set via ldflags).
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	enableCrashForensics()

	cmd.SetBuildInfo(build.Info{
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
	})
	cmd.SetGUIRunner(runGUI)

	cmd.Execute()
}

func runGUI(opts cmd.GUIOptions) int {
	runtime.LockOSThread()
	timer := bootstrap.NewStartupTimer()

	mgr, cfg, err := bootstrap.LoadConfig()
	if err != nil {
		fallback := logging.NewFromEnv()
		fallback.Error().Err(err).Msg("failed to load config")
		return 1
	}
	timer.Mark("config")

	logger, closer, err := bootstrap.NewLogger(cfg)
	if err != nil {
		fallback := logging.NewFromEnv()
		fallback.Error().Err(err).Msg("failed to create logger")
		return 1
	}
	defer closer.Close()
	ctx := logging.WithContext(context.Background(), logger)
	defer logging.RecoverPanic(logger)
	timer.Mark("logger")

	log := logging.FromContext(ctx)
	log.Info().Str("version", version).Str("commit", commit).Msg("starting twich")
	logCoreDumpLimits(ctx)

	initResult, err := bootstrap.RunParallelInit(ctx, bootstrap.InitInput{Config: cfg})
	if err != nil {
		log.Error().Err(err).Msg("startup failed")
		return 1
	}
	timer.MarkDuration("parallel_phase", initResult.Duration)

	filteringEnabled := cfg.Filtering.Enabled && !opts.NoFilter
	app, err := ui.New(&ui.Dependencies{
		Ctx:              ctx,
		Config:           cfg,
		ConfigManager:    mgr,
		Profile:          initResult.Profile,
		FilteringEnabled: filteringEnabled,
		Gatekeeper:       initResult.Filters.Gatekeeper,
		Sanitizer:        initResult.Filters.Sanitizer,
		InitialURL:       opts.URL,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to create application")
		return 1
	}
	timer.Mark("ui_deps")
	timer.Log(ctx)

	setupSignalHandler(ctx, app)

	// Cobra already consumed the flags; GTK only sees the program name.
	return app.Run(os.Args[:1])
}

func setupSignalHandler(ctx context.Context, app *ui.App) {
	log := logging.FromContext(ctx)
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		signal.Stop(sigCh)
		log.Info().Str("signal", sig.String()).Msg("received interrupt, quitting")
		app.Quit()
	}()
}
