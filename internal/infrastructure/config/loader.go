package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/spf13/viper"

	"github.com/bnema/twich/internal/logging"
)

// EnvPrefix prefixes every environment override, e.g. TWICH_HOME_URL.
const EnvPrefix = "TWICH"

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
}

// NewManager creates a new configuration manager.
func NewManager() (*Manager, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")

	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	v.AddConfigPath(configDir)

	// TWICH_FILTERING_ENABLED and friends map onto nested keys.
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Short names shared with logging.NewFromEnv.
	if err := v.BindEnv("logging.level", logging.EnvLogLevel); err != nil {
		return nil, fmt.Errorf("failed to bind %s: %w", logging.EnvLogLevel, err)
	}
	if err := v.BindEnv("logging.format", logging.EnvLogFormat); err != nil {
		return nil, fmt.Errorf("failed to bind %s: %w", logging.EnvLogFormat, err)
	}

	return &Manager{
		viper:     v,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables.
// A missing config file is created with the defaults.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to ensure directories: %w", err)
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if !errors.As(err, &notFound) {
		configFile := m.viper.ConfigFileUsed()
		if configFile == "" {
			configFile, _ = GetConfigFile()
		}
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
	}

	if err := m.createDefaultConfig(); err != nil {
		configDir, _ := GetConfigDir()
		return fmt.Errorf("failed to create default config at %s: %w", configDir, err)
	}
	if err := m.viper.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read newly created config file: %w", err)
	}
	return nil
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	return config, nil
}

// createDefaultConfig writes the defaults and the JSON schema next to them.
func (m *Manager) createDefaultConfig() error {
	configFile, err := GetConfigFile()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(configFile), dirPerm); err != nil {
		return err
	}

	m.viper.SetConfigType("toml")
	if err := m.viper.SafeWriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	if err := WriteSchemaFile(filepath.Join(filepath.Dir(configFile), SchemaFileName)); err != nil {
		return err
	}
	return nil
}

func normalizeConfig(config *Config) {
	config.HomeURL = strings.TrimSpace(config.HomeURL)
	if config.HomeURL == "" {
		config.HomeURL = DefaultHomeURL
	}

	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	if config.Logging.Level == "warning" {
		config.Logging.Level = "warn"
	}
	if config.Logging.Level == "" {
		config.Logging.Level = "info"
	}
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	if config.Logging.Format == "" {
		config.Logging.Format = logging.FormatConsole
	}

	// unknown values are left for validateConfig to reject
	config.Media.GLRenderingMode = GLRenderingMode(strings.ToLower(strings.TrimSpace(string(config.Media.GLRenderingMode))))
	if config.Media.GLRenderingMode == "" {
		config.Media.GLRenderingMode = GLRenderingModeAuto
	}
	config.Profile.CookiePolicy = CookiePolicy(strings.ToLower(strings.TrimSpace(string(config.Profile.CookiePolicy))))
	if config.Profile.CookiePolicy == "" {
		config.Profile.CookiePolicy = CookiePolicyNoThirdParty
	}

	config.Filtering.ExtraBlockPatterns = compactStrings(config.Filtering.ExtraBlockPatterns)
	config.Filtering.ExtraSanitizeSelectors = compactStrings(config.Filtering.ExtraSanitizeSelectors)
	config.Profile.DataDir = strings.TrimSpace(config.Profile.DataDir)
	config.Logging.LogDir = strings.TrimSpace(config.Logging.LogDir)
}

// compactStrings trims entries and drops blank ones.
func compactStrings(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Get returns a copy of the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	configCopy := *m.config
	configCopy.Filtering.ExtraBlockPatterns = slices.Clone(m.config.Filtering.ExtraBlockPatterns)
	configCopy.Filtering.ExtraSanitizeSelectors = slices.Clone(m.config.Filtering.ExtraSanitizeSelectors)
	return &configCopy
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	return m.viper.ConfigFileUsed()
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("home_url", defaults.HomeURL)
	m.setLoggingDefaults(defaults)
	m.setFilteringDefaults(defaults)
	m.viper.SetDefault("pip.on_focus_loss", defaults.PiP.OnFocusLoss)
	m.setPlayerDefaults(defaults)
	m.setMediaDefaults(defaults)
	m.setProfileDefaults(defaults)
	m.setWindowDefaults(defaults)
}

func (m *Manager) setLoggingDefaults(defaults *Config) {
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.enable_file_log", defaults.Logging.EnableFileLog)
	m.viper.SetDefault("logging.log_dir", defaults.Logging.LogDir)
	m.viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	m.viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	m.viper.SetDefault("logging.max_age_days", defaults.Logging.MaxAgeDays)
}

func (m *Manager) setFilteringDefaults(defaults *Config) {
	m.viper.SetDefault("filtering.enabled", defaults.Filtering.Enabled)
	m.viper.SetDefault("filtering.extra_block_patterns", defaults.Filtering.ExtraBlockPatterns)
	m.viper.SetDefault("filtering.extra_sanitize_selectors", defaults.Filtering.ExtraSanitizeSelectors)
	m.viper.SetDefault("filtering.verdict_cache_size", defaults.Filtering.VerdictCacheSize)
}

func (m *Manager) setPlayerDefaults(defaults *Config) {
	m.viper.SetDefault("player.panel_width", defaults.Player.PanelWidth)
	m.viper.SetDefault("player.open_floating_window", defaults.Player.OpenFloatingWindow)
	m.viper.SetDefault("player.window_width", defaults.Player.WindowWidth)
	m.viper.SetDefault("player.window_height", defaults.Player.WindowHeight)
}

func (m *Manager) setMediaDefaults(defaults *Config) {
	m.viper.SetDefault("media.hardware_decoding", defaults.Media.HardwareDecoding)
	m.viper.SetDefault("media.gl_rendering_mode", string(defaults.Media.GLRenderingMode))
	m.viper.SetDefault("media.gstreamer_debug_level", defaults.Media.GStreamerDebugLevel)
	m.viper.SetDefault("media.force_vsync", defaults.Media.ForceVSync)
}

func (m *Manager) setProfileDefaults(defaults *Config) {
	m.viper.SetDefault("profile.data_dir", defaults.Profile.DataDir)
	m.viper.SetDefault("profile.password_autosave", defaults.Profile.PasswordAutosave)
	m.viper.SetDefault("profile.autofill", defaults.Profile.Autofill)
	m.viper.SetDefault("profile.cookie_policy", string(defaults.Profile.CookiePolicy))
}

func (m *Manager) setWindowDefaults(defaults *Config) {
	m.viper.SetDefault("window.maximized", defaults.Window.Maximized)
	m.viper.SetDefault("window.decorated", defaults.Window.Decorated)
	m.viper.SetDefault("window.width", defaults.Window.Width)
	m.viper.SetDefault("window.height", defaults.Window.Height)
}
