package filtering

import (
	"fmt"
	"io"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"

	"github.com/bnema/twich/internal/domain/entity"
)

// SelectorCount records how many elements one selector removed.
type SelectorCount struct {
	Selector string
	Removed  int
}

// SanitizeReport summarizes a sanitizer pass.
type SanitizeReport struct {
	Removed     int
	PerSelector []SelectorCount
}

// Sanitizer removes every element matching its rules from a parsed document.
// It is the offline twin of the in-page removal script and follows the same
// order: rules front to back, matches removed with their subtrees.
type Sanitizer struct {
	rules    []entity.SanitizeRule
	matchers []cascadia.Selector

	scriptOnce sync.Once
	script     string
}

// NewSanitizer compiles the given rules.
func NewSanitizer(rules []entity.SanitizeRule) (*Sanitizer, error) {
	s := &Sanitizer{
		rules:    make([]entity.SanitizeRule, 0, len(rules)),
		matchers: make([]cascadia.Selector, 0, len(rules)),
	}
	for _, rule := range rules {
		sel, err := cascadia.Compile(rule.Selector())
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", entity.ErrInvalidSelector, rule.Selector(), err)
		}
		s.rules = append(s.rules, rule)
		s.matchers = append(s.matchers, sel)
	}
	return s, nil
}

// Rules returns the sanitizer rules in application order.
func (s *Sanitizer) Rules() []entity.SanitizeRule {
	out := make([]entity.SanitizeRule, len(s.rules))
	copy(out, s.rules)
	return out
}

// Apply removes matching elements from doc in place. Elements already
// detached by an earlier rule are not found again, so nothing is counted twice.
func (s *Sanitizer) Apply(doc *goquery.Document) SanitizeReport {
	report := SanitizeReport{PerSelector: make([]SelectorCount, 0, len(s.rules))}
	for i, m := range s.matchers {
		matched := doc.FindMatcher(m)
		// a match nested in another match leaves with its ancestor
		n := matched.FilterFunction(func(_ int, sel *goquery.Selection) bool {
			return sel.Parents().FilterSelection(matched).Length() == 0
		}).Length()
		matched.Remove()
		report.Removed += n
		report.PerSelector = append(report.PerSelector, SelectorCount{
			Selector: s.rules[i].Selector(),
			Removed:  n,
		})
	}
	return report
}

// ApplyHTML parses r, sanitizes it and returns the resulting document.
func (s *Sanitizer) ApplyHTML(r io.Reader) (*goquery.Document, SanitizeReport, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, SanitizeReport{}, fmt.Errorf("parse html: %w", err)
	}
	return doc, s.Apply(doc), nil
}

func validateSelector(selector string) error {
	if _, err := cascadia.Compile(selector); err != nil {
		return fmt.Errorf("%w: %q: %w", entity.ErrInvalidSelector, selector, err)
	}
	return nil
}
