// Package port defines application-layer interfaces for external capabilities.
// Ports abstract infrastructure concerns, allowing the application layer to
// remain independent of specific implementations (WebKit, GTK, GStreamer).
package port

import (
	"context"
)

//go:generate mockgen -source=webview.go -destination=mocks/mock_webview.go -package=mocks

// LoadEvent represents page load state transitions.
type LoadEvent int

const (
	// LoadStarted indicates navigation has begun.
	LoadStarted LoadEvent = iota
	// LoadRedirected indicates a redirect occurred.
	LoadRedirected
	// LoadCommitted indicates content is being received.
	LoadCommitted
	// LoadFinished indicates the page has fully loaded.
	LoadFinished
)

// String returns a human-readable representation of the load event.
func (e LoadEvent) String() string {
	switch e {
	case LoadStarted:
		return "started"
	case LoadRedirected:
		return "redirected"
	case LoadCommitted:
		return "committed"
	case LoadFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// ScriptCallback receives the stringified result of a script evaluation.
// It is invoked on the UI thread once the evaluation settles.
type ScriptCallback func(result string, err error)

// BrowserCallbacks defines handlers for browsing surface events.
// Implementations invoke them on the UI thread.
type BrowserCallbacks struct {
	// OnLoadChanged is called when the main frame load state changes.
	OnLoadChanged func(event LoadEvent, uri string)
	// OnNavigationPolicy is consulted before a navigation or new window.
	// Returning false ignores the request.
	OnNavigationPolicy func(uri string) bool
}

// BrowserSurface is the embedded browsing surface.
type BrowserSurface interface {
	// LoadURI navigates the main frame.
	LoadURI(uri string)
	// URI returns the currently committed URI.
	URI() string
	// CanGoBack reports whether back-navigation history exists.
	CanGoBack() bool
	// GoBack navigates one entry back.
	GoBack()

	// EvaluateScript runs an async function body in the main frame and
	// returns immediately. Promises returned by the body are awaited.
	EvaluateScript(ctx context.Context, body string, cb ScriptCallback)

	// SetCallbacks replaces the event handlers.
	SetCallbacks(callbacks BrowserCallbacks)
}
