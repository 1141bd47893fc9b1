package player

import (
	"context"

	"github.com/bnema/twich/internal/application/port"
	"github.com/bnema/twich/internal/application/usecase"
	"github.com/bnema/twich/internal/logging"
)

// EngineFactory builds a fresh native engine. Called on the UI thread.
type EngineFactory func() port.MediaEngine

// Controller owns the playback session lifecycle: created on first use,
// torn down on Close, recreated on the next use.
type Controller struct {
	newEngine EngineFactory

	engine port.MediaEngine
	play   *usecase.PlayMediaUseCase
}

// NewController creates a controller with no live session.
func NewController(newEngine EngineFactory) *Controller {
	return &Controller{newEngine: newEngine}
}

// Ensure returns the live engine, creating a session when there is none.
// created reports whether this call built it.
func (c *Controller) Ensure(ctx context.Context) (engine port.MediaEngine, created bool) {
	if c.engine != nil {
		return c.engine, false
	}
	c.engine = c.newEngine()
	c.play = usecase.NewPlayMediaUseCase(c.engine)

	logging.FromContext(ctx).Debug().
		Str("session", c.play.Session().ID).
		Msg("player: session created")
	return c.engine, true
}

// Play replaces the current playback with rawURL. Unusable input, or no
// live session, is ignored.
func (c *Controller) Play(ctx context.Context, rawURL string) (bool, error) {
	if c.engine == nil {
		return false, nil
	}
	return c.play.Execute(ctx, rawURL)
}

// Active reports whether a session is live.
func (c *Controller) Active() bool {
	return c.engine != nil
}

// SessionID returns the live session ID, or "" when there is none.
func (c *Controller) SessionID() string {
	if c.play == nil {
		return ""
	}
	return c.play.Session().ID
}

// Close ends the live session. Safe to call without one.
func (c *Controller) Close(ctx context.Context) {
	if c.play == nil {
		return
	}
	c.play.Close(ctx)
	c.play = nil
	c.engine = nil
}
