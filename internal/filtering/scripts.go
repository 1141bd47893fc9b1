package filtering

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/bnema/twich/internal/domain/entity"
)

// Both payloads are function bodies: the engine wraps them in an (async)
// function, so they may `return` a value and `await` promises.

//go:embed scripts/sanitize.js
var sanitizeScriptBody string

//go:embed scripts/pip.js
var pipScriptBody string

// PiPScript returns the picture-in-picture activation payload.
func PiPScript() string {
	return pipScriptBody
}

// SanitizeScript renders the in-page removal payload for the given rules.
func SanitizeScript(rules []entity.SanitizeRule) (string, error) {
	selectors := make([]string, 0, len(rules))
	for _, r := range rules {
		selectors = append(selectors, r.Selector())
	}
	encoded, err := json.Marshal(selectors)
	if err != nil {
		return "", fmt.Errorf("encode selectors: %w", err)
	}
	return "const selectors = " + string(encoded) + ";\n" + sanitizeScriptBody, nil
}

// Script returns the in-page removal payload for this sanitizer's rules.
// The payload is rendered once and reused for every page load.
func (s *Sanitizer) Script() string {
	s.scriptOnce.Do(func() {
		script, err := SanitizeScript(s.rules)
		if err != nil {
			// []string always encodes
			panic(err)
		}
		s.script = script
	})
	return s.script
}
