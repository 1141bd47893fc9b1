// Package filtering holds the static content filtering policy: the request
// gatekeeper, the post-load DOM sanitizer and the page scripts they ship to
// the browser engine.
package filtering

import (
	"errors"
	"fmt"

	"github.com/bnema/twich/internal/domain/entity"
)

// DefaultBlockPatterns are the ad and tracking domains blocked on every request.
var DefaultBlockPatterns = []string{
	"*://*.doubleclick.net/*",
	"*://*.googlesyndication.com/*",
	"*://*.adservice.google.com/*",
}

// DefaultSanitizeSelectors are removed from every page once it finishes loading.
// Order matters: the removal script walks them front to back.
var DefaultSanitizeSelectors = []string{
	"[id^=ad]",
	"[class*=ad]",
	"[class*=banner]",
	"[class*=sponsor]",
	"[class*=promo]",
	"[class*=ads]",
	"[class*=advert]",
	"[class*=doubleclick]",
	"[class*=googlesyndication]",
}

// RuleSet is the immutable, validated set of rules for one session.
type RuleSet struct {
	Block    []*entity.BlockRule
	Sanitize []entity.SanitizeRule
}

// DefaultRuleSet returns the built-in rules.
func DefaultRuleSet() *RuleSet {
	rs, err := BuildRuleSet(nil, nil)
	if err != nil {
		panic(fmt.Sprintf("filtering: built-in rules are invalid: %v", err))
	}
	return rs
}

// BuildRuleSet validates the built-in rules followed by the extra ones.
// Duplicates are dropped, first occurrence wins. Every invalid entry is
// reported at once so a broken config can be fixed in one pass.
func BuildRuleSet(extraBlock, extraSanitize []string) (*RuleSet, error) {
	var errs []error
	rs := &RuleSet{}

	seen := make(map[string]struct{})
	for _, pattern := range concat(DefaultBlockPatterns, extraBlock) {
		rule, err := entity.ParseBlockRule(pattern)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if _, dup := seen[rule.Pattern()]; dup {
			continue
		}
		seen[rule.Pattern()] = struct{}{}
		rs.Block = append(rs.Block, rule)
	}

	seen = make(map[string]struct{})
	for _, selector := range concat(DefaultSanitizeSelectors, extraSanitize) {
		rule, err := entity.NewSanitizeRule(selector)
		if err == nil {
			err = validateSelector(rule.Selector())
		}
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if _, dup := seen[rule.Selector()]; dup {
			continue
		}
		seen[rule.Selector()] = struct{}{}
		rs.Sanitize = append(rs.Sanitize, rule)
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRuleSet, errors.Join(errs...))
	}
	if len(rs.Block) == 0 {
		return nil, ErrEmptyRuleSet
	}
	return rs, nil
}

func concat(a, b []string) []string {
	out := make([]string, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}
