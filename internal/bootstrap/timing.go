package bootstrap

import (
	"context"
	"sync"
	"time"

	"github.com/bnema/twich/internal/logging"
)

// StartupTimer records how long each startup phase took.
// Safe for use from the parallel init goroutines.
type StartupTimer struct {
	start  time.Time
	last   time.Time
	phases []phase
	mu     sync.Mutex
}

type phase struct {
	name string
	dur  time.Duration
}

// NewStartupTimer starts timing now.
func NewStartupTimer() *StartupTimer {
	now := time.Now()
	return &StartupTimer{start: now, last: now}
}

// Mark closes the phase that began at the previous mark.
func (t *StartupTimer) Mark(name string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := time.Now()
	t.phases = append(t.phases, phase{name: name, dur: now.Sub(t.last)})
	t.last = now
}

// MarkDuration records a phase timed elsewhere, e.g. in a goroutine.
func (t *StartupTimer) MarkDuration(name string, d time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.phases = append(t.phases, phase{name: name, dur: d})
}

// Phases returns the recorded phase names in order.
func (t *StartupTimer) Phases() []string {
	t.mu.Lock()
	defer t.mu.Unlock()

	names := make([]string, 0, len(t.phases))
	for _, p := range t.phases {
		names = append(names, p.name)
	}
	return names
}

// Log writes all phases at debug level.
func (t *StartupTimer) Log(ctx context.Context) {
	t.mu.Lock()
	defer t.mu.Unlock()

	event := logging.FromContext(ctx).Debug().Dur("total", time.Since(t.start))
	for _, p := range t.phases {
		event = event.Dur(p.name, p.dur)
	}
	event.Msg("startup timing")
}
