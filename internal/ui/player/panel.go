// Package player hosts the secondary native player: a toggleable side
// panel and the floating window that mirrors it.
package player

import (
	"context"

	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/bnema/twich/internal/application/port"
	"github.com/bnema/twich/internal/domain/entity"
	"github.com/bnema/twich/internal/infrastructure/config"
	"github.com/bnema/twich/internal/infrastructure/media"
	"github.com/bnema/twich/internal/logging"
)

// Panel is the right-hand player column. The engine behind it is created
// on first reveal or first play and survives hide/show cycles; closing the
// floating window ends the session.
type Panel struct {
	cfg  config.PlayerConfig
	ctrl *Controller

	root     *gtk.Box
	slot     *gtk.Box
	hint     *gtk.Label
	engine   *media.Engine
	floating *FloatingWindow
}

// NewPanel builds the hidden panel. Must run on the UI thread.
func NewPanel(cfg config.PlayerConfig) *Panel {
	p := &Panel{cfg: cfg}
	p.ctrl = NewController(func() port.MediaEngine {
		p.engine = media.NewEngine()
		return p.engine
	})

	p.root = gtk.NewBox(gtk.OrientationVertical, 0)
	p.root.SetSizeRequest(cfg.PanelWidth, -1)
	p.root.SetVisible(false)
	p.root.AddCSSClass("twich-player-panel")

	p.hint = gtk.NewLabel("Paste a stream URL and press Play")
	p.hint.AddCSSClass("dim-label")
	p.hint.SetVExpand(true)

	p.slot = gtk.NewBox(gtk.OrientationVertical, 0)
	p.slot.SetVExpand(true)
	p.slot.Append(p.hint)
	p.root.Append(p.slot)
	return p
}

// Widget returns the panel root.
func (p *Panel) Widget() gtk.Widgetter {
	return p.root
}

// Visible reports whether the panel is shown.
func (p *Panel) Visible() bool {
	return p.root.IsVisible()
}

// Toggle shows or hides the panel and returns the new visibility.
func (p *Panel) Toggle(ctx context.Context) bool {
	if p.Visible() {
		p.root.SetVisible(false)
		logging.FromContext(ctx).Debug().Msg("player: panel hidden")
		return false
	}
	p.Reveal(ctx)
	return true
}

// Reveal shows the panel, creating the session when there is none.
func (p *Panel) Reveal(ctx context.Context) {
	p.ensureSession(ctx)
	p.root.SetVisible(true)
	logging.FromContext(ctx).Debug().
		Str("session", p.ctrl.SessionID()).
		Msg("player: panel shown")
}

// Play loads rawURL into the player. Blank or unusable input is a no-op.
func (p *Panel) Play(ctx context.Context, rawURL string) (bool, error) {
	if _, ok := entity.ParseMediaURL(rawURL); !ok {
		return false, nil
	}
	p.ensureSession(ctx)
	played, err := p.ctrl.Play(ctx, rawURL)
	if played {
		p.hint.SetVisible(false)
	}
	return played, err
}

func (p *Panel) ensureSession(ctx context.Context) {
	if _, created := p.ctrl.Ensure(ctx); !created {
		return
	}

	video := p.engine.Widget()
	p.slot.Remove(p.hint)
	p.slot.Append(video)
	p.slot.Append(p.hint)
	p.hint.SetVisible(true)

	if p.cfg.OpenFloatingWindow {
		p.floating = NewFloatingWindow(p.cfg, p.engine.NewMirror(), func() {
			p.endSession(ctx)
		})
		p.floating.Present()
	}
}

// endSession drops the engine and its widgets. The next reveal starts over.
func (p *Panel) endSession(ctx context.Context) {
	if !p.ctrl.Active() {
		return
	}
	if p.engine != nil {
		p.slot.Remove(p.engine.Widget())
	}
	p.hint.SetVisible(true)
	p.floating = nil
	p.engine = nil
	p.ctrl.Close(ctx)
}

// Close ends the session and destroys the floating window. Used on quit.
func (p *Panel) Close(ctx context.Context) {
	floating := p.floating
	p.endSession(ctx)
	if floating != nil {
		floating.Destroy()
	}
}
