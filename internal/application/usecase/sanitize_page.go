package usecase

import (
	"context"
	"strconv"

	"github.com/bnema/twich/internal/application/port"
	"github.com/bnema/twich/internal/logging"
)

// SanitizePageUseCase strips ad containers from a page once it has loaded.
type SanitizePageUseCase struct {
	browser port.BrowserSurface
	script  string
}

// NewSanitizePageUseCase wraps the rendered removal script.
// An empty script disables sanitizing.
func NewSanitizePageUseCase(browser port.BrowserSurface, script string) *SanitizePageUseCase {
	return &SanitizePageUseCase{
		browser: browser,
		script:  script,
	}
}

// Execute fires the removal pass for the page at uri and returns at once.
// Failures are logged and otherwise ignored; the pass can be repeated safely.
func (uc *SanitizePageUseCase) Execute(ctx context.Context, uri string) {
	if uc.script == "" {
		return
	}
	ctx = logging.WithURL(ctx, uri)

	uc.browser.EvaluateScript(ctx, uc.script, func(raw string, err error) {
		log := logging.FromContext(ctx)
		if err != nil {
			log.Warn().Err(err).Msg("sanitize: removal script failed")
			return
		}
		removed, convErr := strconv.Atoi(raw)
		if convErr != nil {
			log.Debug().Str("result", raw).Msg("sanitize: unexpected result")
			return
		}
		log.Debug().Int("removed", removed).Msg("sanitize: page cleaned")
	})
}
