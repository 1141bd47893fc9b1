package webkit

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	webkit "github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"
	"github.com/rs/zerolog"

	"github.com/bnema/twich/internal/infrastructure/config"
	"github.com/bnema/twich/internal/logging"
)

const cookieDBName = "cookies.db"

// ContextOptions configures the persistent browser profile.
type ContextOptions struct {
	DataDir  string
	CacheDir string
	// PersistCredentials keeps HTTP auth and form credentials across runs.
	PersistCredentials bool
	CookiePolicy       config.CookiePolicy
}

// ContextOptionsFromConfig maps the profile section onto session options.
func ContextOptionsFromConfig(dirs config.ProfileDirs, profile config.ProfileConfig) ContextOptions {
	return ContextOptions{
		DataDir:            dirs.Data,
		CacheDir:           dirs.Cache,
		PersistCredentials: profile.PasswordAutosave || profile.Autofill,
		CookiePolicy:       profile.CookiePolicy,
	}
}

// WebKitContext owns the persistent NetworkSession. Views must be built with
// NewWebView so they attach to it; webkit.NewWebView uses the library's
// ephemeral default session instead.
type WebKitContext struct {
	session *webkit.NetworkSession

	dataDir  string
	cacheDir string

	logger zerolog.Logger
}

// NewWebKitContext creates the persistent network session.
func NewWebKitContext(ctx context.Context, opts ContextOptions) (*WebKitContext, error) {
	log := logging.FromContext(ctx).With().Str("component", "webkit-context").Logger()

	if opts.DataDir == "" {
		return nil, fmt.Errorf("data directory cannot be empty")
	}
	if opts.CacheDir == "" {
		return nil, fmt.Errorf("cache directory cannot be empty")
	}
	for _, dir := range []string{opts.DataDir, opts.CacheDir} {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("create profile directory %s: %w", dir, err)
		}
	}

	wkCtx := &WebKitContext{
		dataDir:  opts.DataDir,
		cacheDir: opts.CacheDir,
		logger:   log,
	}
	if err := wkCtx.initNetworkSession(opts); err != nil {
		return nil, fmt.Errorf("failed to init network session: %w", err)
	}

	log.Info().
		Str("data_dir", opts.DataDir).
		Str("cache_dir", opts.CacheDir).
		Msg("webkit context initialized")
	return wkCtx, nil
}

func (c *WebKitContext) initNetworkSession(opts ContextOptions) error {
	session := webkit.NewNetworkSession(c.dataDir, c.cacheDir)
	if session == nil {
		return fmt.Errorf("failed to create network session")
	}
	if session.IsEphemeral() {
		return fmt.Errorf("network session is ephemeral despite providing data directories")
	}

	dataManager := session.WebsiteDataManager()
	if dataManager == nil {
		return fmt.Errorf("failed to get website data manager")
	}
	if dataManager.IsEphemeral() {
		return fmt.Errorf("website data manager is ephemeral")
	}

	cookieManager := session.CookieManager()
	if cookieManager == nil {
		return fmt.Errorf("failed to get cookie manager")
	}
	cookiePath := filepath.Join(c.dataDir, cookieDBName)
	cookieManager.SetPersistentStorage(cookiePath, webkit.CookiePersistentStorageSqlite)
	policy, policyLabel := mapCookiePolicy(opts.CookiePolicy)
	cookieManager.SetAcceptPolicy(policy)

	session.SetPersistentCredentialStorageEnabled(opts.PersistCredentials)

	c.logger.Info().
		Str("cookie_path", cookiePath).
		Str("cookie_policy", policyLabel).
		Bool("persist_credentials", opts.PersistCredentials).
		Msg("cookie storage configured")

	c.session = session
	return nil
}

// NetworkSession returns the persistent session.
func (c *WebKitContext) NetworkSession() *webkit.NetworkSession {
	return c.session
}

// DataDir returns the profile data directory.
func (c *WebKitContext) DataDir() string {
	return c.dataDir
}

// CacheDir returns the profile cache directory.
func (c *WebKitContext) CacheDir() string {
	return c.cacheDir
}

func mapCookiePolicy(policy config.CookiePolicy) (webkit.CookieAcceptPolicy, string) {
	switch policy {
	case config.CookiePolicyAlways:
		return webkit.CookiePolicyAcceptAlways, string(config.CookiePolicyAlways)
	case config.CookiePolicyNever:
		return webkit.CookiePolicyAcceptNever, string(config.CookiePolicyNever)
	default:
		return webkit.CookiePolicyAcceptNoThirdParty, string(config.CookiePolicyNoThirdParty)
	}
}
