package ui

import (
	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
)

const shortcutModifiers = gdk.ControlMask | gdk.AltMask | gdk.ShiftMask | gdk.SuperMask

// isBackKey reports whether the key press means "go back": a bare Escape.
func isBackKey(keyval uint, state gdk.ModifierType) bool {
	return keyval == gdk.KEY_Escape && state&shortcutModifiers == 0
}

// initKeyboard installs the Escape handler in the capture phase so it fires
// before the WebView consumes the key.
func (a *App) initKeyboard() {
	ctrl := gtk.NewEventControllerKey()
	ctrl.SetPropagationPhase(gtk.PhaseCapture)
	ctrl.ConnectKeyPressed(func(keyval, _ uint, state gdk.ModifierType) bool {
		if !isBackKey(keyval, state) {
			return false
		}
		a.navigateUC.Back(a.ctx)
		return true
	})
	a.win.win.AddController(ctrl)
}
