package port

import "context"

//go:generate mockgen -source=media.go -destination=mocks/mock_media.go -package=mocks

// MediaHandle is a playable media source bound to one engine.
type MediaHandle interface {
	URI() string
}

// MediaEngine is the native decoding engine behind the secondary player.
// All methods are called from the UI thread.
type MediaEngine interface {
	// NewMedia builds a playable handle for uri without starting playback.
	NewMedia(ctx context.Context, uri string) (MediaHandle, error)
	// Play replaces whatever is currently playing with h.
	Play(ctx context.Context, h MediaHandle) error
	// Stop halts playback and keeps the engine usable.
	Stop()
	// Close releases the engine. Further calls are no-ops.
	Close()
}
