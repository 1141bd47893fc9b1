package entity

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidSelector is returned for selectors that cannot be used by the sanitizer.
var ErrInvalidSelector = errors.New("invalid sanitize selector")

// SanitizeRule is an immutable CSS selector identifying elements to remove
// once a page has finished loading.
type SanitizeRule struct {
	selector string
}

// NewSanitizeRule trims and stores a selector. Syntax is checked by the
// filtering package, which owns the selector engine.
func NewSanitizeRule(selector string) (SanitizeRule, error) {
	s := strings.TrimSpace(selector)
	if s == "" {
		return SanitizeRule{}, fmt.Errorf("%w: empty selector", ErrInvalidSelector)
	}
	return SanitizeRule{selector: s}, nil
}

// Selector returns the CSS selector.
func (r SanitizeRule) Selector() string { return r.selector }

// String implements fmt.Stringer.
func (r SanitizeRule) String() string { return r.selector }
