package webkit

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	javascriptcore "github.com/diamondburned/gotk4-webkitgtk/pkg/javascriptcore/v6"
	webkit "github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"
	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/rs/zerolog"

	"github.com/bnema/twich/internal/application/port"
	"github.com/bnema/twich/internal/infrastructure/config"
	"github.com/bnema/twich/internal/logging"
)

const logURLMaxLen = 120

// ErrWebViewDestroyed is returned by operations on a destroyed WebView.
var ErrWebViewDestroyed = errors.New("webview destroyed")

// WebView wraps webkit.WebView and implements port.BrowserSurface.
// Every method must be called on the GTK main thread.
type WebView struct {
	inner *webkit.WebView

	destroyed atomic.Bool

	mu        sync.RWMutex
	callbacks port.BrowserCallbacks

	logger zerolog.Logger
}

var _ port.BrowserSurface = (*WebView)(nil)

// NewWebView creates a WebView bound to wkCtx's persistent session.
func NewWebView(ctx context.Context, wkCtx *WebKitContext, cfg *config.Config) (*WebView, error) {
	if wkCtx == nil || wkCtx.NetworkSession() == nil {
		return nil, fmt.Errorf("webkit context not initialized")
	}

	inner := newSessionWebView(wkCtx.NetworkSession())
	if inner == nil {
		return nil, fmt.Errorf("failed to create webkit webview")
	}
	inner.SetHExpand(true)
	inner.SetVExpand(true)

	settings := inner.Settings()
	if settings == nil {
		return nil, fmt.Errorf("webkit: failed to get settings")
	}
	applySettings(ctx, settings, cfg)

	wv := &WebView{
		inner:  inner,
		logger: logging.FromContext(ctx).With().Str("component", "webview").Logger(),
	}
	wv.connectSignals()
	return wv, nil
}

func (wv *WebView) connectSignals() {
	wv.inner.ConnectLoadChanged(func(event webkit.LoadEvent) {
		cb := wv.currentCallbacks().OnLoadChanged
		if cb == nil {
			return
		}
		cb(mapLoadEvent(event), wv.inner.URI())
	})

	wv.inner.ConnectDecidePolicy(func(decision webkit.PolicyDecisioner, kind webkit.PolicyDecisionType) bool {
		check := wv.currentCallbacks().OnNavigationPolicy
		if check == nil {
			return false
		}

		var uri string
		switch d := decision.(type) {
		case *webkit.NavigationPolicyDecision:
			if action := d.NavigationAction(); action != nil {
				uri = action.Request().URI()
			}
		case *webkit.ResponsePolicyDecision:
			uri = d.Request().URI()
		}
		if uri == "" || check(uri) {
			// default handling
			return false
		}

		wv.logger.Debug().
			Str("uri", logging.TruncateURL(uri, logURLMaxLen)).
			Str("kind", policyKind(kind)).
			Msg("navigation ignored by gatekeeper")
		webkit.BasePolicyDecision(decision).Ignore()
		return true
	})
}

func mapLoadEvent(event webkit.LoadEvent) port.LoadEvent {
	switch event {
	case webkit.LoadStarted:
		return port.LoadStarted
	case webkit.LoadRedirected:
		return port.LoadRedirected
	case webkit.LoadCommitted:
		return port.LoadCommitted
	default:
		return port.LoadFinished
	}
}

func policyKind(kind webkit.PolicyDecisionType) string {
	switch kind {
	case webkit.PolicyDecisionTypeNavigationAction:
		return "navigation"
	case webkit.PolicyDecisionTypeNewWindowAction:
		return "new-window"
	case webkit.PolicyDecisionTypeResponse:
		return "response"
	default:
		return "unknown"
	}
}

func (wv *WebView) currentCallbacks() port.BrowserCallbacks {
	wv.mu.RLock()
	defer wv.mu.RUnlock()
	return wv.callbacks
}

// SetCallbacks replaces the event handlers.
func (wv *WebView) SetCallbacks(callbacks port.BrowserCallbacks) {
	wv.mu.Lock()
	wv.callbacks = callbacks
	wv.mu.Unlock()
}

// LoadURI navigates the main frame.
func (wv *WebView) LoadURI(uri string) {
	if wv.destroyed.Load() || uri == "" {
		return
	}
	wv.inner.LoadURI(uri)
}

// URI returns the current main frame URI.
func (wv *WebView) URI() string {
	if wv.destroyed.Load() {
		return ""
	}
	return wv.inner.URI()
}

// CanGoBack reports whether back history exists.
func (wv *WebView) CanGoBack() bool {
	if wv.destroyed.Load() {
		return false
	}
	return wv.inner.CanGoBack()
}

// GoBack navigates one history entry back.
func (wv *WebView) GoBack() {
	if wv.destroyed.Load() {
		return
	}
	wv.inner.GoBack()
}

// EvaluateScript runs body as an async function in the main world. It is
// fire-and-forget: cb runs later on the main thread with the stringified
// result, or with an error when the script threw or the view went away.
func (wv *WebView) EvaluateScript(ctx context.Context, body string, cb port.ScriptCallback) {
	if wv.destroyed.Load() {
		if cb != nil {
			cb("", ErrWebViewDestroyed)
		}
		return
	}

	log := logging.FromContext(ctx)
	wv.inner.CallAsyncJavascriptFunction(ctx, body, nil, "", "", func(res gio.AsyncResulter) {
		value, err := wv.inner.CallAsyncJavascriptFunctionFinish(res)
		if err != nil {
			log.Debug().Err(err).Msg("script evaluation failed")
			if cb != nil {
				cb("", fmt.Errorf("evaluate script: %w", err))
			}
			return
		}
		if cb != nil {
			cb(valueString(value), nil)
		}
	})
}

func valueString(v *javascriptcore.Value) string {
	if v == nil || v.IsUndefined() || v.IsNull() {
		return ""
	}
	return v.String()
}

// UserContentManager returns the view's content manager.
func (wv *WebView) UserContentManager() *webkit.UserContentManager {
	return wv.inner.UserContentManager()
}

// Widget returns the GTK widget for embedding.
func (wv *WebView) Widget() gtk.Widgetter {
	return wv.inner
}

// GrabFocus moves keyboard focus into the page.
func (wv *WebView) GrabFocus() {
	if wv.destroyed.Load() {
		return
	}
	wv.inner.GrabFocus()
}

// Destroy marks the view unusable. GTK frees the widget with its parent.
func (wv *WebView) Destroy() {
	if !wv.destroyed.CompareAndSwap(false, true) {
		return
	}
	wv.SetCallbacks(port.BrowserCallbacks{})
	wv.logger.Debug().Msg("webview destroyed")
}
