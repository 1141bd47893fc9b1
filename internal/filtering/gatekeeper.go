package filtering

import (
	"fmt"
	"net/url"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/bnema/twich/internal/domain/entity"
)

// DefaultVerdictCacheSize bounds the number of memoized URL verdicts.
const DefaultVerdictCacheSize = 4096

// Gatekeeper decides, per request, whether a URL may be fetched.
// Decisions depend on the URL alone; the cache only memoizes them.
type Gatekeeper struct {
	rules []*entity.BlockRule

	// raw URL -> matching rule, nil for allowed URLs
	cache *lru.Cache[string, *entity.BlockRule]
}

// NewGatekeeper creates a gatekeeper over an ordered rule list.
func NewGatekeeper(rules []*entity.BlockRule, cacheSize int) (*Gatekeeper, error) {
	if cacheSize <= 0 {
		cacheSize = DefaultVerdictCacheSize
	}
	cache, err := lru.New[string, *entity.BlockRule](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("create verdict cache: %w", err)
	}

	owned := make([]*entity.BlockRule, len(rules))
	copy(owned, rules)

	return &Gatekeeper{
		rules: owned,
		cache: cache,
	}, nil
}

// Decide returns the verdict for rawURL. Unparsable URLs are allowed:
// the engine refuses to load them on its own.
func (g *Gatekeeper) Decide(rawURL string) entity.Verdict {
	if rule, ok := g.cache.Get(rawURL); ok {
		return verdictFor(rule)
	}

	var rule *entity.BlockRule
	if u, err := url.Parse(rawURL); err == nil {
		rule = g.match(u)
	}
	g.cache.Add(rawURL, rule)
	return verdictFor(rule)
}

// DecideURL is Decide for an already parsed URL. It bypasses the cache.
func (g *Gatekeeper) DecideURL(u *url.URL) entity.Verdict {
	return verdictFor(g.match(u))
}

// Rules returns a copy of the ordered rule list.
func (g *Gatekeeper) Rules() []*entity.BlockRule {
	out := make([]*entity.BlockRule, len(g.rules))
	copy(out, g.rules)
	return out
}

func (g *Gatekeeper) match(u *url.URL) *entity.BlockRule {
	for _, rule := range g.rules {
		if rule.Matches(u) {
			return rule
		}
	}
	return nil
}

func verdictFor(rule *entity.BlockRule) entity.Verdict {
	if rule == nil {
		return entity.Allow()
	}
	return entity.Deny(rule)
}
