package player

import (
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/bnema/twich/internal/infrastructure/config"
)

// FloatingWindowTitle is stable so window-manager rules can pin the
// player (placement and stacking belong to the compositor under GTK4).
const FloatingWindowTitle = "twich player"

// FloatingWindow is a small toplevel painting the same stream as the panel.
type FloatingWindow struct {
	win     *gtk.Window
	onClose func()
	closed  bool
}

// NewFloatingWindow wraps mirror in a toplevel. onClose runs once, when the
// user closes the window or Destroy is called.
func NewFloatingWindow(cfg config.PlayerConfig, mirror *gtk.Picture, onClose func()) *FloatingWindow {
	f := &FloatingWindow{onClose: onClose}

	f.win = gtk.NewWindow()
	f.win.SetTitle(FloatingWindowTitle)
	f.win.SetDefaultSize(cfg.WindowWidth, cfg.WindowHeight)
	f.win.AddCSSClass("twich-floating-player")

	mirror.SetContentFit(gtk.ContentFitContain)
	f.win.SetChild(mirror)

	f.win.ConnectCloseRequest(func() bool {
		f.fireClose()
		return false
	})
	return f
}

// Present shows the window.
func (f *FloatingWindow) Present() {
	f.win.Present()
}

// Destroy closes the window without waiting for the user.
func (f *FloatingWindow) Destroy() {
	f.fireClose()
	f.win.Destroy()
}

func (f *FloatingWindow) fireClose() {
	if f.closed {
		return
	}
	f.closed = true
	if f.onClose != nil {
		f.onClose()
	}
}
