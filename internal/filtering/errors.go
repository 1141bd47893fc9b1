package filtering

import "errors"

var (
	// ErrInvalidRuleSet wraps every startup rule validation failure.
	ErrInvalidRuleSet = errors.New("invalid filtering rules")

	// ErrEmptyRuleSet indicates that no block rule survived validation.
	ErrEmptyRuleSet = errors.New("no block rules configured")
)
