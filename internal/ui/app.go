package ui

import (
	"context"
	"errors"

	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/glib/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/bnema/twich/internal/application/port"
	"github.com/bnema/twich/internal/application/usecase"
	"github.com/bnema/twich/internal/domain/entity"
	"github.com/bnema/twich/internal/filtering"
	"github.com/bnema/twich/internal/infrastructure/config"
	"github.com/bnema/twich/internal/infrastructure/webkit"
	"github.com/bnema/twich/internal/logging"
	"github.com/bnema/twich/internal/ui/player"
)

// AppID is the application identifier for GTK.
const AppID = "io.github.bnema.twich"

var errShutdown = errors.New("application shutdown")

// App wraps the GTK Application and owns every UI-thread object: the
// window, the browser, the use cases and the player panel.
type App struct {
	deps   *Dependencies
	gtkApp *gtk.Application
	win    *mainWindow

	// wkCtx holds the persistent network session for the app's lifetime.
	wkCtx      *webkit.WebKitContext
	view       *webkit.WebView
	navigateUC *usecase.NavigateUseCase
	pipUC      *usecase.ActivatePiPUseCase
	sanitizeUC *usecase.SanitizePageUseCase
	panel      *player.Panel

	// ctx carries the live logger; replaced on log level reload.
	ctx    context.Context
	cancel context.CancelCauseFunc
}

// New creates a new App with the given dependencies.
func New(deps *Dependencies) (*App, error) {
	if err := deps.Validate(); err != nil {
		return nil, err
	}
	ctx, cancel := context.WithCancelCause(logging.WithComponent(deps.Ctx, "ui"))
	return &App{
		deps:   deps,
		ctx:    ctx,
		cancel: cancel,
	}, nil
}

// Run starts the GTK application and blocks until it exits.
// Returns the exit code.
func (a *App) Run(args []string) int {
	log := logging.FromContext(a.ctx)
	log.Debug().Msg("creating GTK application")

	a.gtkApp = gtk.NewApplication(AppID, gio.ApplicationNonUnique)
	a.gtkApp.ConnectActivate(a.onActivate)
	a.gtkApp.ConnectShutdown(a.onShutdown)

	log.Info().Msg("starting GTK main loop")
	return a.gtkApp.Run(args)
}

func (a *App) onActivate() {
	log := logging.FromContext(a.ctx)
	cfg := a.deps.Config

	wkCtx, err := webkit.NewWebKitContext(a.ctx, webkit.ContextOptionsFromConfig(a.deps.Profile, cfg.Profile))
	if err != nil {
		log.Error().Err(err).Msg("failed to create webkit context")
		a.gtkApp.Quit()
		return
	}
	a.wkCtx = wkCtx

	a.view, err = webkit.NewWebView(a.ctx, a.wkCtx, cfg)
	if err != nil {
		log.Error().Err(err).Msg("failed to create webview")
		a.gtkApp.Quit()
		return
	}

	a.navigateUC = usecase.NewNavigateUseCase(a.view, cfg.HomeURL)
	a.pipUC = usecase.NewActivatePiPUseCase(a.view, filtering.PiPScript(), cfg.PiP.OnFocusLoss)
	a.pipUC.SetObserver(a.onPiPResult)
	if a.deps.FilteringEnabled {
		a.sanitizeUC = usecase.NewSanitizePageUseCase(a.view, a.deps.Sanitizer.Script())
	}
	a.view.SetCallbacks(port.BrowserCallbacks{
		OnLoadChanged:      a.onLoadChanged,
		OnNavigationPolicy: a.allowNavigation,
	})

	a.panel = player.NewPanel(cfg.Player)
	a.win = newMainWindow(a.gtkApp, cfg, a.view.Widget(), a.panel.Widget())

	a.connectControls()
	a.initKeyboard()
	a.initFocusWatch()
	a.initConfigWatcher()

	a.win.present()
	a.view.GrabFocus()

	a.installFilters(a.loadStartPage)
}

func (a *App) connectControls() {
	a.win.panelBtn.ConnectClicked(func() {
		a.panel.Toggle(a.ctx)
	})
	play := func() {
		a.playEntry()
	}
	a.win.playBtn.ConnectClicked(play)
	a.win.entry.ConnectActivate(play)
	a.win.pipBtn.ConnectClicked(func() {
		a.pipUC.Execute(a.ctx, entity.PiPTriggerUser)
	})
}

func (a *App) playEntry() {
	played, err := a.panel.Play(a.ctx, a.win.entry.Text())
	if err != nil {
		logging.FromContext(a.ctx).Warn().Err(err).Msg("player: play failed")
		a.win.status.Show("Player: " + err.Error())
		return
	}
	if played && !a.panel.Visible() {
		a.panel.Reveal(a.ctx)
	}
}

// initFocusWatch floats the video when the main window is deactivated.
func (a *App) initFocusWatch() {
	a.win.win.NotifyProperty("is-active", func() {
		if a.win.win.IsActive() {
			return
		}
		a.pipUC.Execute(a.ctx, entity.PiPTriggerFocusLost)
	})
}

func (a *App) onPiPResult(trigger entity.PiPTrigger, result entity.PiPResult) {
	if text, ok := pipStatusText(trigger, result); ok {
		a.win.status.Show(text)
	}
}

func (a *App) onLoadChanged(event port.LoadEvent, uri string) {
	logging.FromContext(a.ctx).Trace().
		Str("event", event.String()).
		Str("url", logging.TruncateURL(uri, 120)).
		Msg("load changed")
	if event == port.LoadFinished && a.sanitizeUC != nil {
		a.sanitizeUC.Execute(a.ctx, uri)
	}
}

// allowNavigation rejects main-frame and new-window navigations that the
// gatekeeper blocks. Subresources are handled by the content filter.
func (a *App) allowNavigation(uri string) bool {
	if !a.deps.FilteringEnabled {
		return true
	}
	verdict := a.deps.Gatekeeper.Decide(uri)
	if !verdict.Blocked {
		return true
	}
	logging.FromContext(a.ctx).Info().
		Str("url", logging.TruncateURL(uri, 120)).
		Str("rule", verdict.Rule.Pattern()).
		Int("status", verdict.Response.StatusCode).
		Msg("navigation blocked")
	return false
}

// installFilters compiles the block rules into the WebView and runs then
// once they are active, or right away when filtering is off or fails.
func (a *App) installFilters(then func()) {
	if !a.deps.FilteringEnabled {
		logging.FromContext(a.ctx).Info().Msg("filtering disabled")
		then()
		return
	}
	log := logging.FromContext(a.ctx)

	store, err := webkit.NewContentFilterStore(a.deps.Profile.FilterStore, a.view)
	if err != nil {
		log.Warn().Err(err).Msg("content filter store unavailable, relying on navigation policy")
		then()
		return
	}

	uc := usecase.NewInstallFiltersUseCase(store, a.deps.Gatekeeper.Rules())
	if err := uc.Execute(a.ctx, func(error) { then() }); err != nil {
		log.Warn().Err(err).Msg("content filter not installed")
		then()
	}
}

func (a *App) loadStartPage() {
	if err := a.navigateUC.Open(a.ctx, a.deps.StartURL()); err != nil {
		logging.FromContext(a.ctx).Warn().Err(err).Msg("invalid start url, loading home")
		a.navigateUC.Home(a.ctx)
	}
}

func (a *App) initConfigWatcher() {
	log := logging.FromContext(a.ctx)

	mgr := a.deps.ConfigManager
	if mgr == nil {
		log.Debug().Msg("no config manager available, skipping watcher")
		return
	}
	if err := mgr.Watch(); err != nil {
		log.Warn().Err(err).Msg("failed to start config watcher")
		return
	}

	// Log level and focus-loss PiP are live; rules apply on next start.
	mgr.OnConfigChange(func(newCfg *config.Config) {
		glib.IdleAdd(func() bool {
			a.applyLiveConfig(newCfg)
			return false
		})
	})
	log.Debug().Msg("config watcher initialized")
}

func (a *App) applyLiveConfig(cfg *config.Config) {
	if cfg == nil {
		return
	}
	if level, err := logging.ParseLevel(cfg.Logging.Level); err == nil {
		a.ctx = logging.SetLevel(a.ctx, level)
	}
	a.pipUC.SetFocusLossEnabled(cfg.PiP.OnFocusLoss)

	logging.FromContext(a.ctx).Info().
		Str("level", cfg.Logging.Level).
		Bool("pip_on_focus_loss", cfg.PiP.OnFocusLoss).
		Msg("config reloaded")
}

func (a *App) onShutdown() {
	log := logging.FromContext(a.ctx)
	log.Debug().Msg("GTK application shutting down")

	if a.panel != nil {
		a.panel.Close(a.ctx)
	}
	if a.view != nil {
		a.view.Destroy()
	}
	a.cancel(errShutdown)
}

// Quit stops the main loop. Safe to call from any goroutine.
func (a *App) Quit() {
	glib.IdleAdd(func() bool {
		if a.gtkApp != nil {
			a.gtkApp.Quit()
		}
		return false
	})
}
