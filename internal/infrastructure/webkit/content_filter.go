package webkit

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	webkit "github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"
	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/glib/v2"

	"github.com/bnema/twich/internal/application/port"
	"github.com/bnema/twich/internal/logging"
)

// ErrEmptyFilterRules is reported when there is nothing to compile.
var ErrEmptyFilterRules = errors.New("empty filter rules")

// ContentFilterStore compiles content-blocker JSON with the engine's filter
// store and attaches the result to one WebView.
type ContentFilterStore struct {
	store *webkit.UserContentFilterStore
	view  *WebView

	mu       sync.Mutex
	compiled *webkit.UserContentFilter
}

var _ port.ContentFilterInstaller = (*ContentFilterStore)(nil)

// NewContentFilterStore opens (or creates) the compiled filter store at storagePath.
func NewContentFilterStore(storagePath string, view *WebView) (*ContentFilterStore, error) {
	if view == nil {
		return nil, fmt.Errorf("content filter store needs a webview")
	}
	if err := os.MkdirAll(storagePath, 0o700); err != nil {
		return nil, fmt.Errorf("create filter store %s: %w", storagePath, err)
	}
	store := webkit.NewUserContentFilterStore(storagePath)
	if store == nil {
		return nil, fmt.Errorf("failed to create UserContentFilterStore")
	}
	return &ContentFilterStore{store: store, view: view}, nil
}

// InstallContentFilter compiles rulesJSON asynchronously and adds the
// filter to the view's UserContentManager, replacing earlier filters.
func (s *ContentFilterStore) InstallContentFilter(ctx context.Context, identifier string, rulesJSON []byte, done func(error)) {
	finish := func(err error) {
		if done != nil {
			done(err)
		}
	}
	if len(rulesJSON) == 0 {
		finish(ErrEmptyFilterRules)
		return
	}

	log := logging.FromContext(ctx)
	log.Debug().
		Str("identifier", identifier).
		Int("bytes", len(rulesJSON)).
		Msg("compiling content filter")

	s.store.Save(ctx, identifier, glib.NewBytesWithGo(rulesJSON), func(res gio.AsyncResulter) {
		filter, err := s.store.SaveFinish(res)
		if err != nil {
			finish(fmt.Errorf("failed to compile filter: %w", err))
			return
		}
		if filter == nil {
			finish(fmt.Errorf("filter compilation returned nil"))
			return
		}

		ucm := s.view.UserContentManager()
		if ucm == nil {
			finish(fmt.Errorf("UserContentManager is nil"))
			return
		}

		s.mu.Lock()
		s.compiled = filter
		s.mu.Unlock()

		ucm.RemoveAllFilters()
		ucm.AddFilter(filter)
		finish(nil)
	})
}

// Installed reports whether a compiled filter is attached.
func (s *ContentFilterStore) Installed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.compiled != nil
}
