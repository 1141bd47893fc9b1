package usecase

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/bnema/twich/internal/application/port"
	"github.com/bnema/twich/internal/domain/entity"
	"github.com/bnema/twich/internal/logging"
)

// PiPResultObserver receives every activation result on the UI thread.
type PiPResultObserver func(trigger entity.PiPTrigger, result entity.PiPResult)

// ActivatePiPUseCase floats the page's best video, on demand or when the
// main window loses focus. Evaluation is fire-and-forget: Execute returns
// before the page script settles.
//
// Execute and the script callback run on the UI thread; only the
// focus-loss switch may be flipped from elsewhere.
type ActivatePiPUseCase struct {
	browser port.BrowserSurface
	script  string

	onFocusLoss atomic.Bool
	observer    PiPResultObserver

	inFlight       bool
	pending        bool
	pendingTrigger entity.PiPTrigger
}

// NewActivatePiPUseCase creates the activator around the PiP page script.
func NewActivatePiPUseCase(browser port.BrowserSurface, script string, onFocusLoss bool) *ActivatePiPUseCase {
	uc := &ActivatePiPUseCase{
		browser: browser,
		script:  script,
	}
	uc.onFocusLoss.Store(onFocusLoss)
	return uc
}

// SetObserver installs fn as the result sink. Nil removes it.
func (uc *ActivatePiPUseCase) SetObserver(fn PiPResultObserver) {
	uc.observer = fn
}

// SetFocusLossEnabled toggles automatic activation on window deactivation.
func (uc *ActivatePiPUseCase) SetFocusLossEnabled(enabled bool) {
	uc.onFocusLoss.Store(enabled)
}

// FocusLossEnabled reports whether focus-loss triggers are honoured.
func (uc *ActivatePiPUseCase) FocusLossEnabled() bool {
	return uc.onFocusLoss.Load()
}

// Execute runs the activation for trigger. A trigger arriving while an
// evaluation is outstanding is folded into a single re-run once it settles;
// a pending user trigger outranks a pending focus-loss trigger.
func (uc *ActivatePiPUseCase) Execute(ctx context.Context, trigger entity.PiPTrigger) {
	log := logging.FromContext(ctx)

	if trigger == entity.PiPTriggerFocusLost && !uc.onFocusLoss.Load() {
		log.Trace().Msg("pip: focus-loss activation disabled")
		return
	}

	if uc.inFlight {
		if !uc.pending || trigger == entity.PiPTriggerUser {
			uc.pendingTrigger = trigger
		}
		uc.pending = true
		log.Debug().Str("trigger", string(trigger)).Msg("pip: evaluation in flight, coalescing")
		return
	}

	uc.run(ctx, trigger)
}

func (uc *ActivatePiPUseCase) run(ctx context.Context, trigger entity.PiPTrigger) {
	uc.inFlight = true
	started := time.Now()

	uc.browser.EvaluateScript(ctx, uc.script, func(raw string, err error) {
		result := entity.ParsePiPResult(raw)
		if err != nil {
			result = entity.PiPFailure(err)
		}
		logResult(ctx, trigger, result, time.Since(started))

		uc.inFlight = false
		if uc.observer != nil {
			uc.observer(trigger, result)
		}

		if uc.pending {
			next := uc.pendingTrigger
			uc.pending = false
			uc.pendingTrigger = ""
			uc.run(ctx, next)
		}
	})
}

func logResult(ctx context.Context, trigger entity.PiPTrigger, result entity.PiPResult, took time.Duration) {
	log := logging.FromContext(ctx)

	ev := log.WithLevel(resultLevel(trigger, result))
	if result.Outcome == entity.PiPOutcomeError {
		ev = ev.Str("error", result.Message)
	}
	ev.Str("trigger", string(trigger)).
		Str("result", result.String()).
		Dur("took", took).
		Msg("pip: activation settled")
}

// resultLevel keeps focus-loss failures at debug: they repeat on every
// window switch and the engine may not support PiP at all.
func resultLevel(trigger entity.PiPTrigger, result entity.PiPResult) zerolog.Level {
	switch result.Outcome {
	case entity.PiPOutcomeNoVideo:
		if trigger == entity.PiPTriggerFocusLost {
			return zerolog.DebugLevel
		}
		return zerolog.InfoLevel
	case entity.PiPOutcomeError:
		if trigger == entity.PiPTriggerFocusLost {
			return zerolog.DebugLevel
		}
		if result.Unsupported() {
			return zerolog.InfoLevel
		}
		return zerolog.WarnLevel
	default:
		return zerolog.DebugLevel
	}
}
