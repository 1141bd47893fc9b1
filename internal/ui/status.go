package ui

import (
	"github.com/diamondburned/gotk4/pkg/glib/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/bnema/twich/internal/domain/entity"
)

const statusSeconds = 3

// statusLabel shows a transient message in the toolbar.
type statusLabel struct {
	label   *gtk.Label
	timeout glib.SourceHandle
}

func newStatusLabel() *statusLabel {
	l := gtk.NewLabel("")
	l.AddCSSClass("twich-status")
	l.SetVisible(false)
	return &statusLabel{label: l}
}

func (s *statusLabel) Widget() gtk.Widgetter {
	return s.label
}

// Show displays text and hides it again after statusSeconds.
func (s *statusLabel) Show(text string) {
	s.label.SetText(text)
	s.label.SetVisible(true)

	if s.timeout != 0 {
		glib.SourceRemove(s.timeout)
	}
	s.timeout = glib.TimeoutSecondsAdd(statusSeconds, func() bool {
		s.label.SetVisible(false)
		s.timeout = 0
		return false
	})
}

// pipStatusText is the toolbar message for a PiP result. Only user
// triggers get one; focus-loss activations are logged only.
func pipStatusText(trigger entity.PiPTrigger, result entity.PiPResult) (string, bool) {
	if trigger != entity.PiPTriggerUser {
		return "", false
	}
	switch {
	case result.OK():
		return "Picture-in-picture on", true
	case result.Outcome == entity.PiPOutcomeNoVideo:
		return "No video on this page", true
	case result.Unsupported():
		return "Picture-in-picture is not supported by this WebKit build", true
	default:
		return "Picture-in-picture failed: " + result.Message, true
	}
}
