package entity

import "strings"

// PiPTrigger identifies what started a picture-in-picture activation.
type PiPTrigger string

const (
	// PiPTriggerFocusLost fires when the main window is deactivated.
	PiPTriggerFocusLost PiPTrigger = "focus-lost"
	// PiPTriggerUser fires when the user presses the PiP control.
	PiPTriggerUser PiPTrigger = "user"
)

// PiPOutcome is the coarse result of one activation.
type PiPOutcome string

const (
	PiPOutcomeOK      PiPOutcome = "ok"
	PiPOutcomeNoVideo PiPOutcome = "no-video"
	PiPOutcomeError   PiPOutcome = "error"
)

// Raw result strings produced by the page script.
const (
	pipRawOK          = "ok"
	pipRawNoVideo     = "no-video"
	pipRawErrorPrefix = "err:"
)

// PiPUnsupportedMessage is the error message the page script reports when
// the engine has no picture-in-picture API.
const PiPUnsupportedMessage = "picture-in-picture unsupported"

// PiPResult is the outcome of one activation. Message is only set for errors.
type PiPResult struct {
	Outcome PiPOutcome
	Message string
}

// ParsePiPResult converts the page script's result string into a PiPResult.
// Unknown values are reported as errors so they stay visible in logs.
func ParsePiPResult(raw string) PiPResult {
	raw = strings.TrimSpace(raw)
	switch {
	case raw == pipRawOK:
		return PiPResult{Outcome: PiPOutcomeOK}
	case raw == pipRawNoVideo:
		return PiPResult{Outcome: PiPOutcomeNoVideo}
	case strings.HasPrefix(raw, pipRawErrorPrefix):
		return PiPResult{Outcome: PiPOutcomeError, Message: strings.TrimPrefix(raw, pipRawErrorPrefix)}
	case raw == "":
		return PiPResult{Outcome: PiPOutcomeError, Message: "empty result"}
	default:
		return PiPResult{Outcome: PiPOutcomeError, Message: "unexpected result: " + raw}
	}
}

// PiPFailure wraps an evaluation failure (script never produced a result).
func PiPFailure(err error) PiPResult {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	return PiPResult{Outcome: PiPOutcomeError, Message: msg}
}

// OK reports whether floating presentation is active for the chosen video.
func (r PiPResult) OK() bool { return r.Outcome == PiPOutcomeOK }

// Unsupported reports whether the engine lacks picture-in-picture support.
func (r PiPResult) Unsupported() bool {
	return r.Outcome == PiPOutcomeError && r.Message == PiPUnsupportedMessage
}

// String renders the result as ok, no-video or error:<message>.
func (r PiPResult) String() string {
	if r.Outcome == PiPOutcomeError {
		return string(PiPOutcomeError) + ":" + r.Message
	}
	return string(r.Outcome)
}
