package entity

import (
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustURL(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	require.NoError(t, err)
	return u
}

func TestParseBlockRule(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		scheme  string
		host    string
		path    string
		wantErr bool
	}{
		{name: "wildcard subdomain", pattern: "*://*.doubleclick.net/*", scheme: "*", host: "*.doubleclick.net", path: "/*"},
		{name: "no path defaults to any", pattern: "https://ads.example.com", scheme: "https", host: "ads.example.com", path: "/*"},
		{name: "uppercase host is lowered", pattern: "HTTPS://Ads.Example.COM/x", scheme: "https", host: "ads.example.com", path: "/x"},
		{name: "empty", pattern: "  ", wantErr: true},
		{name: "missing separator", pattern: "doubleclick.net/*", wantErr: true},
		{name: "empty host", pattern: "*:///path", wantErr: true},
		{name: "bare wildcard subdomain", pattern: "*://*./x", wantErr: true},
		{name: "bad scheme", pattern: "1http://example.com/*", wantErr: true},
		{name: "port in host", pattern: "*://example.com:8080/*", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule, err := ParseBlockRule(tt.pattern)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidBlockPattern))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.scheme, rule.Scheme())
			assert.Equal(t, tt.host, rule.Host())
			assert.Equal(t, tt.path, rule.Path())
		})
	}
}

func TestBlockRule_Matches(t *testing.T) {
	rule := MustParseBlockRule("*://*.doubleclick.net/*")

	tests := []struct {
		url  string
		want bool
	}{
		{"https://doubleclick.net/", true},
		{"https://ad.doubleclick.net/pagead/id?x=1", true},
		{"http://a.b.doubleclick.net", true},
		{"wss://stats.doubleclick.net/socket", true},
		{"HTTPS://AD.DOUBLECLICK.NET/x", true},
		{"https://notdoubleclick.net/", false},
		{"https://doubleclick.net.evil.com/", false},
		{"https://example.com/?ref=ad.doubleclick.net/", false},
		{"ftp://ad.doubleclick.net/file", false},
		{"data:text/html,doubleclick.net", false},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.want, rule.Matches(mustURL(t, tt.url)))
		})
	}
}

func TestBlockRule_MatchesPath(t *testing.T) {
	rule := MustParseBlockRule("https://www.example.com/ads/*")

	assert.True(t, rule.Matches(mustURL(t, "https://www.example.com/ads/banner.js")))
	assert.True(t, rule.Matches(mustURL(t, "https://www.example.com/ads/?slot=1")))
	assert.False(t, rule.Matches(mustURL(t, "https://www.example.com/video/ads")))
	assert.False(t, rule.Matches(mustURL(t, "http://www.example.com/ads/banner.js")))
	assert.False(t, rule.Matches(nil))
}

func TestMustParseBlockRule_Panics(t *testing.T) {
	assert.Panics(t, func() { MustParseBlockRule("nope") })
}

func TestVerdicts(t *testing.T) {
	allow := Allow()
	assert.False(t, allow.Blocked)
	assert.Nil(t, allow.Response)

	rule := MustParseBlockRule("*://*.googlesyndication.com/*")
	deny := Deny(rule)
	require.True(t, deny.Blocked)
	require.NotNil(t, deny.Response)
	assert.Same(t, rule, deny.Rule)
	assert.Equal(t, 403, deny.Response.StatusCode)
	assert.Equal(t, "Blocked", deny.Response.ReasonPhrase)
	assert.Empty(t, deny.Response.Body)
}
