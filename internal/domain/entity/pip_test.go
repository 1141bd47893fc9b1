package entity

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePiPResult(t *testing.T) {
	tests := []struct {
		raw     string
		outcome PiPOutcome
		message string
		str     string
	}{
		{raw: "ok", outcome: PiPOutcomeOK, str: "ok"},
		{raw: " ok\n", outcome: PiPOutcomeOK, str: "ok"},
		{raw: "no-video", outcome: PiPOutcomeNoVideo, str: "no-video"},
		{raw: "err:NotAllowedError", outcome: PiPOutcomeError, message: "NotAllowedError", str: "error:NotAllowedError"},
		{raw: "err:", outcome: PiPOutcomeError, message: "", str: "error:"},
		{raw: "", outcome: PiPOutcomeError, message: "empty result", str: "error:empty result"},
		{raw: "maybe", outcome: PiPOutcomeError, message: "unexpected result: maybe", str: "error:unexpected result: maybe"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got := ParsePiPResult(tt.raw)
			assert.Equal(t, tt.outcome, got.Outcome)
			assert.Equal(t, tt.message, got.Message)
			assert.Equal(t, tt.str, got.String())
		})
	}
}

func TestPiPFailure(t *testing.T) {
	got := PiPFailure(errors.New("javascript context destroyed"))
	assert.False(t, got.OK())
	assert.Equal(t, "error:javascript context destroyed", got.String())

	assert.Equal(t, "unknown error", PiPFailure(nil).Message)
}

func TestPiPResult_Unsupported(t *testing.T) {
	assert.True(t, ParsePiPResult("err:"+PiPUnsupportedMessage).Unsupported())
	assert.False(t, ParsePiPResult("err:NotAllowedError").Unsupported())
	assert.False(t, ParsePiPResult("ok").Unsupported())
}
