package filtering

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/bnema/twich/internal/domain/entity"
)

// ContentBlockerIdentifier names the compiled filter inside the engine's filter store.
const ContentBlockerIdentifier = "twich-block-rules"

// ContentBlockerRule is one entry of the engine's declarative content-blocker format.
type ContentBlockerRule struct {
	Trigger ContentBlockerTrigger `json:"trigger"`
	Action  ContentBlockerAction  `json:"action"`
}

// ContentBlockerTrigger selects the requests a rule applies to.
type ContentBlockerTrigger struct {
	URLFilter string `json:"url-filter"`
}

// ContentBlockerAction is what happens to a triggered request.
type ContentBlockerAction struct {
	Type string `json:"type"`
}

const actionBlock = "block"

// The engine's url-filter dialect has no alternation and no non-capturing
// groups, so the wildcard scheme is widened to any scheme name. The
// navigation policy check still applies the exact rule.
const anySchemeFilter = `[a-z][a-z0-9+.-]*`

// ContentBlockerRules converts block rules into the engine's rule list.
func ContentBlockerRules(rules []*entity.BlockRule) []ContentBlockerRule {
	out := make([]ContentBlockerRule, 0, len(rules))
	for _, rule := range rules {
		out = append(out, ContentBlockerRule{
			Trigger: ContentBlockerTrigger{URLFilter: urlFilterFor(rule)},
			Action:  ContentBlockerAction{Type: actionBlock},
		})
	}
	return out
}

// ContentBlockerJSON serializes the rule list for the engine's filter compiler.
func ContentBlockerJSON(rules []*entity.BlockRule) ([]byte, error) {
	data, err := json.Marshal(ContentBlockerRules(rules))
	if err != nil {
		return nil, fmt.Errorf("marshal content blocker rules: %w", err)
	}
	return data, nil
}

func urlFilterFor(rule *entity.BlockRule) string {
	var b strings.Builder
	b.WriteString("^")
	if rule.Scheme() == "*" {
		b.WriteString(anySchemeFilter)
	} else {
		b.WriteString(regexp.QuoteMeta(rule.Scheme()))
	}
	b.WriteString("://")

	host := rule.Host()
	if rest, ok := strings.CutPrefix(host, "*."); ok {
		b.WriteString(`([^/]*\.)?`)
		host = rest
	}
	b.WriteString(filterGlob(host, `[^/]*`))

	if rule.Path() == "/*" {
		b.WriteString(`([:/?#].*)?$`)
		return b.String()
	}
	b.WriteString(`(:[0-9]+)?`)
	b.WriteString(filterGlob(rule.Path(), `.*`))
	b.WriteString("$")
	return b.String()
}

func filterGlob(s, star string) string {
	parts := strings.Split(s, "*")
	for i, p := range parts {
		parts[i] = regexp.QuoteMeta(p)
	}
	return strings.Join(parts, star)
}
