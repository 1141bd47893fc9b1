package filtering

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/twich/internal/domain/entity"
)

func newDefaultGatekeeper(t *testing.T, cacheSize int) *Gatekeeper {
	t.Helper()
	gk, err := NewGatekeeper(DefaultRuleSet().Block, cacheSize)
	require.NoError(t, err)
	return gk
}

func TestGatekeeper_Decide(t *testing.T) {
	gk := newDefaultGatekeeper(t, 0)

	tests := []struct {
		url     string
		blocked bool
		rule    string
	}{
		{url: "https://securepubads.g.doubleclick.net/tag/js/gpt.js", blocked: true, rule: "*://*.doubleclick.net/*"},
		{url: "http://doubleclick.net/", blocked: true, rule: "*://*.doubleclick.net/*"},
		{url: "wss://stats.doubleclick.net/socket", blocked: true, rule: "*://*.doubleclick.net/*"},
		{url: "https://pagead2.googlesyndication.com/pagead/show_ads.js?client=1", blocked: true, rule: "*://*.googlesyndication.com/*"},
		{url: "https://www.adservice.google.com/adsid/integrator.js", blocked: true, rule: "*://*.adservice.google.com/*"},
		{url: "HTTPS://AD.DOUBLECLICK.NET/x", blocked: true, rule: "*://*.doubleclick.net/*"},
		{url: "https://www.twitch.tv/", blocked: false},
		{url: "https://static-cdn.jtvnw.net/jtv_user_pictures/x.png", blocked: false},
		{url: "https://notdoubleclick.net/", blocked: false},
		{url: "https://doubleclick.net.evil.example/", blocked: false},
		{url: "https://www.google.com/?q=doubleclick.net", blocked: false},
		{url: "ftp://ad.doubleclick.net/file", blocked: false},
		{url: "https://adservice.google.com.au/", blocked: false},
		{url: "::not a url", blocked: false},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			v := gk.Decide(tt.url)
			assert.Equal(t, tt.blocked, v.Blocked)
			if !tt.blocked {
				assert.Nil(t, v.Rule)
				assert.Nil(t, v.Response)
				return
			}
			require.NotNil(t, v.Rule)
			assert.Equal(t, tt.rule, v.Rule.Pattern())
			require.NotNil(t, v.Response)
			assert.Equal(t, 403, v.Response.StatusCode)
			assert.Equal(t, "Blocked", v.Response.ReasonPhrase)
			assert.Empty(t, v.Response.Body)
		})
	}
}

func TestGatekeeper_ConsistentForIdenticalURLs(t *testing.T) {
	// a cache of one forces evictions between lookups
	gk := newDefaultGatekeeper(t, 1)

	urls := []string{
		"https://ad.doubleclick.net/a",
		"https://www.twitch.tv/directory",
		"https://ad.doubleclick.net/a",
		"https://pagead2.googlesyndication.com/x",
		"https://www.twitch.tv/directory",
	}
	first := make(map[string]bool)
	for round := 0; round < 3; round++ {
		for _, u := range urls {
			v := gk.Decide(u)
			if prev, ok := first[u]; ok {
				assert.Equal(t, prev, v.Blocked, u)
			}
			first[u] = v.Blocked

			parsed, err := url.Parse(u)
			require.NoError(t, err)
			assert.Equal(t, v.Blocked, gk.DecideURL(parsed).Blocked, u)
		}
	}
}

func TestGatekeeper_VerdictsAreIndependent(t *testing.T) {
	gk := newDefaultGatekeeper(t, 0)

	a := gk.Decide("https://ad.doubleclick.net/a")
	a.Response.StatusCode = 200
	a.Response.Body = []byte("tampered")

	b := gk.Decide("https://ad.doubleclick.net/a")
	assert.Equal(t, entity.BlockedStatusCode, b.Response.StatusCode)
	assert.Empty(t, b.Response.Body)
}

func TestGatekeeper_FirstMatchingRuleWins(t *testing.T) {
	rules := []*entity.BlockRule{
		entity.MustParseBlockRule("https://ads.example.com/banner/*"),
		entity.MustParseBlockRule("*://*.example.com/*"),
	}
	gk, err := NewGatekeeper(rules, 16)
	require.NoError(t, err)

	assert.Equal(t, "https://ads.example.com/banner/*", gk.Decide("https://ads.example.com/banner/1.png").Rule.Pattern())
	assert.Equal(t, "*://*.example.com/*", gk.Decide("https://ads.example.com/other").Rule.Pattern())

	rules[0] = nil
	assert.NotNil(t, gk.Rules()[0])
}
