package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bnema/twich/internal/application/port"
	"github.com/bnema/twich/internal/application/port/mocks"
	"github.com/bnema/twich/internal/domain/entity"
)

const testPiPScript = "return 'ok';"

type observed struct {
	trigger entity.PiPTrigger
	result  entity.PiPResult
}

// deferredBrowser captures script callbacks so tests decide when they settle.
func deferredBrowser(t *testing.T) (*mocks.MockBrowserSurface, *[]port.ScriptCallback) {
	ctrl := gomock.NewController(t)
	browser := mocks.NewMockBrowserSurface(ctrl)
	pending := &[]port.ScriptCallback{}
	browser.EXPECT().
		EvaluateScript(gomock.Any(), testPiPScript, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, cb port.ScriptCallback) {
			*pending = append(*pending, cb)
		}).
		AnyTimes()
	return browser, pending
}

func TestActivatePiP_ReportsResult(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		err  error
		want entity.PiPResult
	}{
		{name: "ok", raw: "ok", want: entity.PiPResult{Outcome: entity.PiPOutcomeOK}},
		{name: "no video", raw: "no-video", want: entity.PiPResult{Outcome: entity.PiPOutcomeNoVideo}},
		{name: "page error", raw: "err:NotAllowedError", want: entity.PiPResult{Outcome: entity.PiPOutcomeError, Message: "NotAllowedError"}},
		{name: "evaluation error", err: errors.New("javascript exception"), want: entity.PiPResult{Outcome: entity.PiPOutcomeError, Message: "javascript exception"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			browser := mocks.NewMockBrowserSurface(ctrl)
			browser.EXPECT().
				EvaluateScript(gomock.Any(), testPiPScript, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ string, cb port.ScriptCallback) {
					cb(tt.raw, tt.err)
				})

			var got []observed
			uc := NewActivatePiPUseCase(browser, testPiPScript, true)
			uc.SetObserver(func(tr entity.PiPTrigger, r entity.PiPResult) {
				got = append(got, observed{tr, r})
			})

			uc.Execute(context.Background(), entity.PiPTriggerUser)

			require.Len(t, got, 1)
			assert.Equal(t, entity.PiPTriggerUser, got[0].trigger)
			assert.Equal(t, tt.want, got[0].result)
		})
	}
}

func TestActivatePiP_ReturnsBeforeScriptSettles(t *testing.T) {
	browser, pending := deferredBrowser(t)
	calls := 0
	uc := NewActivatePiPUseCase(browser, testPiPScript, true)
	uc.SetObserver(func(entity.PiPTrigger, entity.PiPResult) { calls++ })

	uc.Execute(context.Background(), entity.PiPTriggerFocusLost)

	assert.Len(t, *pending, 1)
	assert.Zero(t, calls)

	(*pending)[0]("ok", nil)
	assert.Equal(t, 1, calls)
}

func TestActivatePiP_CoalescesTriggersWhileInFlight(t *testing.T) {
	browser, pending := deferredBrowser(t)
	var got []observed
	uc := NewActivatePiPUseCase(browser, testPiPScript, true)
	uc.SetObserver(func(tr entity.PiPTrigger, r entity.PiPResult) {
		got = append(got, observed{tr, r})
	})
	ctx := context.Background()

	uc.Execute(ctx, entity.PiPTriggerFocusLost)
	uc.Execute(ctx, entity.PiPTriggerFocusLost)
	uc.Execute(ctx, entity.PiPTriggerUser)
	uc.Execute(ctx, entity.PiPTriggerFocusLost)

	// one outstanding evaluation, the rest waits
	require.Len(t, *pending, 1)

	(*pending)[0]("ok", nil)
	require.Len(t, *pending, 2)

	(*pending)[1]("ok", nil)
	assert.Len(t, *pending, 2)

	require.Len(t, got, 2)
	assert.Equal(t, entity.PiPTriggerFocusLost, got[0].trigger)
	assert.Equal(t, entity.PiPTriggerUser, got[1].trigger)
}

func TestActivatePiP_FocusLossSwitch(t *testing.T) {
	ctrl := gomock.NewController(t)
	browser := mocks.NewMockBrowserSurface(ctrl)
	ctx := context.Background()

	uc := NewActivatePiPUseCase(browser, testPiPScript, false)
	assert.False(t, uc.FocusLossEnabled())

	// no EvaluateScript expectation: gomock fails the test on any call
	uc.Execute(ctx, entity.PiPTriggerFocusLost)

	browser.EXPECT().
		EvaluateScript(gomock.Any(), testPiPScript, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, cb port.ScriptCallback) { cb("ok", nil) }).
		Times(2)

	uc.Execute(ctx, entity.PiPTriggerUser)

	uc.SetFocusLossEnabled(true)
	uc.Execute(ctx, entity.PiPTriggerFocusLost)
}

func TestActivatePiP_RapidRedundantCallsStaySerial(t *testing.T) {
	ctrl := gomock.NewController(t)
	browser := mocks.NewMockBrowserSurface(ctrl)
	inFlight := 0
	maxInFlight := 0
	browser.EXPECT().
		EvaluateScript(gomock.Any(), testPiPScript, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, cb port.ScriptCallback) {
			inFlight++
			if inFlight > maxInFlight {
				maxInFlight = inFlight
			}
			inFlight--
			cb("ok", nil)
		}).
		Times(50)

	uc := NewActivatePiPUseCase(browser, testPiPScript, true)
	for i := 0; i < 50; i++ {
		uc.Execute(context.Background(), entity.PiPTriggerUser)
	}
	assert.Equal(t, 1, maxInFlight)
}

func TestActivatePiP_ResultLevel(t *testing.T) {
	unsupported := entity.PiPResult{Outcome: entity.PiPOutcomeError, Message: entity.PiPUnsupportedMessage}
	denied := entity.PiPResult{Outcome: entity.PiPOutcomeError, Message: "NotAllowedError"}
	noVideo := entity.PiPResult{Outcome: entity.PiPOutcomeNoVideo}
	ok := entity.PiPResult{Outcome: entity.PiPOutcomeOK}

	tests := []struct {
		name    string
		trigger entity.PiPTrigger
		result  entity.PiPResult
		want    zerolog.Level
	}{
		{"focus lost unsupported", entity.PiPTriggerFocusLost, unsupported, zerolog.DebugLevel},
		{"focus lost error", entity.PiPTriggerFocusLost, denied, zerolog.DebugLevel},
		{"focus lost no video", entity.PiPTriggerFocusLost, noVideo, zerolog.DebugLevel},
		{"user unsupported", entity.PiPTriggerUser, unsupported, zerolog.InfoLevel},
		{"user error", entity.PiPTriggerUser, denied, zerolog.WarnLevel},
		{"user no video", entity.PiPTriggerUser, noVideo, zerolog.InfoLevel},
		{"user ok", entity.PiPTriggerUser, ok, zerolog.DebugLevel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resultLevel(tt.trigger, tt.result))
		})
	}
}
