package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/twich/internal/application/port"
	"github.com/bnema/twich/internal/domain/entity"
	"github.com/bnema/twich/internal/logging"
)

// ErrPlayerClosed is returned when playing into a torn-down session.
var ErrPlayerClosed = errors.New("player closed")

// PlayMediaUseCase drives one playback session on the secondary player.
// UI thread only.
type PlayMediaUseCase struct {
	engine  port.MediaEngine
	session *entity.PlaybackSession
}

// NewPlayMediaUseCase starts a fresh session on engine.
func NewPlayMediaUseCase(engine port.MediaEngine) *PlayMediaUseCase {
	return &PlayMediaUseCase{
		engine:  engine,
		session: entity.NewPlaybackSession(),
	}
}

// Session exposes the current session state.
func (uc *PlayMediaUseCase) Session() entity.PlaybackSession {
	return *uc.session
}

// Execute replaces current playback with rawURL. Empty, blank or unusable
// input is ignored and reported as not played, without an error.
func (uc *PlayMediaUseCase) Execute(ctx context.Context, rawURL string) (bool, error) {
	log := logging.FromContext(ctx)

	uri, ok := entity.ParseMediaURL(rawURL)
	if !ok {
		log.Debug().Str("input", rawURL).Msg("player: ignoring unusable media url")
		return false, nil
	}
	if uc.session.IsClosed() {
		return false, ErrPlayerClosed
	}

	handle, err := uc.engine.NewMedia(ctx, uri)
	if err != nil {
		return false, fmt.Errorf("open media %s: %w", uri, err)
	}
	if err := uc.engine.Play(ctx, handle); err != nil {
		return false, fmt.Errorf("play media %s: %w", uri, err)
	}
	uc.session.Load(uri)

	log.Info().
		Str("session", uc.session.ID).
		Str("media", uri).
		Msg("player: playback replaced")
	return true, nil
}

// Close ends the session and releases the engine. Idempotent.
func (uc *PlayMediaUseCase) Close(ctx context.Context) {
	if uc.session.IsClosed() {
		return
	}
	uc.session.Close()
	uc.engine.Close()
	logging.FromContext(ctx).Debug().Str("session", uc.session.ID).Msg("player: session closed")
}
