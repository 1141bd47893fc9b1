package webkit

import (
	"testing"

	webkit "github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"
	"github.com/stretchr/testify/assert"

	"github.com/bnema/twich/internal/infrastructure/config"
)

func TestContextOptionsFromConfig(t *testing.T) {
	dirs := config.ProfileDirs{Data: "/data/twich/webkit", Cache: "/cache/twich/webkit"}

	tests := []struct {
		name        string
		profile     config.ProfileConfig
		wantPersist bool
	}{
		{
			name:        "defaults",
			profile:     config.DefaultConfig().Profile,
			wantPersist: true,
		},
		{
			name:        "autofill only",
			profile:     config.ProfileConfig{Autofill: true, CookiePolicy: config.CookiePolicyNever},
			wantPersist: true,
		},
		{
			name:        "nothing saved",
			profile:     config.ProfileConfig{CookiePolicy: config.CookiePolicyAlways},
			wantPersist: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := ContextOptionsFromConfig(dirs, tt.profile)
			assert.Equal(t, dirs.Data, opts.DataDir)
			assert.Equal(t, dirs.Cache, opts.CacheDir)
			assert.Equal(t, tt.wantPersist, opts.PersistCredentials)
			assert.Equal(t, tt.profile.CookiePolicy, opts.CookiePolicy)
		})
	}
}

func TestMapCookiePolicy(t *testing.T) {
	tests := []struct {
		in        config.CookiePolicy
		want      webkit.CookieAcceptPolicy
		wantLabel string
	}{
		{config.CookiePolicyAlways, webkit.CookiePolicyAcceptAlways, "always"},
		{config.CookiePolicyNever, webkit.CookiePolicyAcceptNever, "never"},
		{config.CookiePolicyNoThirdParty, webkit.CookiePolicyAcceptNoThirdParty, "no_third_party"},
		{"", webkit.CookiePolicyAcceptNoThirdParty, "no_third_party"},
	}
	for _, tt := range tests {
		t.Run(string(tt.in), func(t *testing.T) {
			got, label := mapCookiePolicy(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantLabel, label)
		})
	}
}

func TestNewWebViewRequiresContext(t *testing.T) {
	_, err := NewWebView(t.Context(), nil, config.DefaultConfig())
	assert.Error(t, err)

	_, err = NewWebView(t.Context(), &WebKitContext{}, config.DefaultConfig())
	assert.Error(t, err)
}

func TestNewWebKitContextRejectsEmptyDirs(t *testing.T) {
	_, err := NewWebKitContext(t.Context(), ContextOptions{CacheDir: t.TempDir()})
	assert.ErrorContains(t, err, "data directory")

	_, err = NewWebKitContext(t.Context(), ContextOptions{DataDir: t.TempDir()})
	assert.ErrorContains(t, err, "cache directory")
}
