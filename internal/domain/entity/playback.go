package entity

import (
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// PlaybackState tracks the lifecycle of a native playback session.
type PlaybackState string

const (
	// PlaybackIdle means the engine exists but nothing was loaded yet.
	PlaybackIdle PlaybackState = "idle"
	// PlaybackPlaying means a media source is loaded and playing.
	PlaybackPlaying PlaybackState = "playing"
	// PlaybackClosed means the session was torn down and must not be reused.
	PlaybackClosed PlaybackState = "closed"
)

// PlaybackSession is one native media playback instance.
// It holds at most one media source; loading a new one replaces the previous.
type PlaybackSession struct {
	ID        string
	MediaURL  string
	State     PlaybackState
	CreatedAt time.Time
	LoadedAt  time.Time
}

// NewPlaybackSession creates an idle session with a fresh identifier.
func NewPlaybackSession() *PlaybackSession {
	return &PlaybackSession{
		ID:        uuid.NewString(),
		State:     PlaybackIdle,
		CreatedAt: time.Now(),
	}
}

// Load records src as the current media source.
// Returns false when the session is already closed.
func (s *PlaybackSession) Load(src string) bool {
	if s.State == PlaybackClosed {
		return false
	}
	s.MediaURL = src
	s.State = PlaybackPlaying
	s.LoadedAt = time.Now()
	return true
}

// Close marks the session as torn down.
func (s *PlaybackSession) Close() {
	s.State = PlaybackClosed
}

// IsClosed reports whether the session was torn down.
func (s *PlaybackSession) IsClosed() bool {
	return s.State == PlaybackClosed
}

// ParseMediaURL normalizes user input for the player panel.
// Empty, whitespace-only and non-absolute inputs are rejected with ok=false.
func ParseMediaURL(raw string) (string, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", false
	}

	u, err := url.Parse(s)
	if err != nil || !u.IsAbs() {
		return "", false
	}
	if u.Scheme != "file" && u.Host == "" {
		return "", false
	}
	return u.String(), true
}
