package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/bnema/twich/internal/application/port"
	"github.com/bnema/twich/internal/logging"
)

// ErrInvalidURL is returned for navigation targets that cannot be loaded.
var ErrInvalidURL = errors.New("invalid url")

// NavigateUseCase handles main-frame navigation: opening a target,
// back-navigation and returning home.
type NavigateUseCase struct {
	browser port.BrowserSurface
	homeURL string
}

// NewNavigateUseCase creates a navigator whose fallback target is homeURL.
func NewNavigateUseCase(browser port.BrowserSurface, homeURL string) *NavigateUseCase {
	return &NavigateUseCase{
		browser: browser,
		homeURL: homeURL,
	}
}

// HomeURL returns the fallback target.
func (uc *NavigateUseCase) HomeURL() string {
	return uc.homeURL
}

// Open normalizes raw and loads it.
func (uc *NavigateUseCase) Open(ctx context.Context, raw string) error {
	target, err := NormalizeURL(raw)
	if err != nil {
		return err
	}
	logging.FromContext(ctx).Debug().Str("url", target).Msg("navigate: open")
	uc.browser.LoadURI(target)
	return nil
}

// Home loads the home URL.
func (uc *NavigateUseCase) Home(ctx context.Context) {
	logging.FromContext(ctx).Debug().Str("url", uc.homeURL).Msg("navigate: home")
	uc.browser.LoadURI(uc.homeURL)
}

// Back goes one history entry back, or home when there is no history.
func (uc *NavigateUseCase) Back(ctx context.Context) {
	if uc.browser.CanGoBack() {
		logging.FromContext(ctx).Debug().Msg("navigate: back")
		uc.browser.GoBack()
		return
	}
	uc.Home(ctx)
}

// NormalizeURL trims raw and defaults a missing scheme to https.
func NormalizeURL(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidURL)
	}
	if !strings.Contains(s, "://") && !strings.HasPrefix(s, "about:") {
		s = "https://" + s
	}

	u, err := url.Parse(s)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}
	if u.Scheme != "about" && u.Host == "" {
		return "", fmt.Errorf("%w: %q has no host", ErrInvalidURL, raw)
	}
	return u.String(), nil
}
