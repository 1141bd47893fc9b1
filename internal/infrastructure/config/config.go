// Package config loads, validates and watches the TOML configuration.
package config

// GLRenderingMode selects the OpenGL API used by the native player.
type GLRenderingMode string

const (
	GLRenderingModeAuto  GLRenderingMode = "auto"
	GLRenderingModeGLES2 GLRenderingMode = "gles2"
	GLRenderingModeGL3   GLRenderingMode = "gl3"
	GLRenderingModeNone  GLRenderingMode = "none"
)

// CookiePolicy controls which cookies the browser profile accepts.
type CookiePolicy string

const (
	CookiePolicyAlways       CookiePolicy = "always"
	CookiePolicyNoThirdParty CookiePolicy = "no_third_party"
	CookiePolicyNever        CookiePolicy = "never"
)

// Config is the complete application configuration.
type Config struct {
	HomeURL   string          `mapstructure:"home_url" toml:"home_url" json:"home_url" validate:"required,url" jsonschema:"description=Page loaded at startup and by Escape when there is no back history"`
	Logging   LoggingConfig   `mapstructure:"logging" toml:"logging" json:"logging"`
	Filtering FilteringConfig `mapstructure:"filtering" toml:"filtering" json:"filtering"`
	PiP       PiPConfig       `mapstructure:"pip" toml:"pip" json:"pip"`
	Player    PlayerConfig    `mapstructure:"player" toml:"player" json:"player"`
	Media     MediaConfig     `mapstructure:"media" toml:"media" json:"media"`
	Profile   ProfileConfig   `mapstructure:"profile" toml:"profile" json:"profile"`
	Window    WindowConfig    `mapstructure:"window" toml:"window" json:"window"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level         string `mapstructure:"level" toml:"level" json:"level" validate:"oneof=trace debug info warn error" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	Format        string `mapstructure:"format" toml:"format" json:"format" validate:"oneof=console json" jsonschema:"enum=console,enum=json"`
	EnableFileLog bool   `mapstructure:"enable_file_log" toml:"enable_file_log" json:"enable_file_log" jsonschema:"description=Also write JSON logs to log_dir"`
	LogDir        string `mapstructure:"log_dir" toml:"log_dir" json:"log_dir" jsonschema:"description=Defaults to $XDG_STATE_HOME/twich/logs"`
	MaxSizeMB     int    `mapstructure:"max_size_mb" toml:"max_size_mb" json:"max_size_mb" validate:"min=1,max=1024"`
	MaxBackups    int    `mapstructure:"max_backups" toml:"max_backups" json:"max_backups" validate:"min=0"`
	MaxAgeDays    int    `mapstructure:"max_age_days" toml:"max_age_days" json:"max_age_days" validate:"min=0"`
}

// FilteringConfig extends the built-in ad filtering rules.
type FilteringConfig struct {
	Enabled                bool     `mapstructure:"enabled" toml:"enabled" json:"enabled" jsonschema:"description=Block ad domains and strip ad containers"`
	ExtraBlockPatterns     []string `mapstructure:"extra_block_patterns" toml:"extra_block_patterns" json:"extra_block_patterns" validate:"dive,required" jsonschema:"description=Additional scheme://host/path wildcard patterns to block"`
	ExtraSanitizeSelectors []string `mapstructure:"extra_sanitize_selectors" toml:"extra_sanitize_selectors" json:"extra_sanitize_selectors" validate:"dive,required" jsonschema:"description=Additional CSS selectors removed after each page load"`
	VerdictCacheSize       int      `mapstructure:"verdict_cache_size" toml:"verdict_cache_size" json:"verdict_cache_size" validate:"min=16,max=1048576"`
}

// PiPConfig controls picture-in-picture activation.
type PiPConfig struct {
	OnFocusLoss bool `mapstructure:"on_focus_loss" toml:"on_focus_loss" json:"on_focus_loss" jsonschema:"description=Float the current video when the window loses focus"`
}

// PlayerConfig controls the secondary native player.
type PlayerConfig struct {
	PanelWidth         int  `mapstructure:"panel_width" toml:"panel_width" json:"panel_width" validate:"min=120,max=4096"`
	OpenFloatingWindow bool `mapstructure:"open_floating_window" toml:"open_floating_window" json:"open_floating_window" jsonschema:"description=Open the always-on-top player window on first reveal"`
	WindowWidth        int  `mapstructure:"window_width" toml:"window_width" json:"window_width" validate:"min=64,max=8192"`
	WindowHeight       int  `mapstructure:"window_height" toml:"window_height" json:"window_height" validate:"min=36,max=8192"`
}

// MediaConfig tunes the GStreamer backend of the native player.
type MediaConfig struct {
	HardwareDecoding    bool            `mapstructure:"hardware_decoding" toml:"hardware_decoding" json:"hardware_decoding"`
	GLRenderingMode     GLRenderingMode `mapstructure:"gl_rendering_mode" toml:"gl_rendering_mode" json:"gl_rendering_mode" validate:"oneof=auto gles2 gl3 none" jsonschema:"enum=auto,enum=gles2,enum=gl3,enum=none"`
	GStreamerDebugLevel int             `mapstructure:"gstreamer_debug_level" toml:"gstreamer_debug_level" json:"gstreamer_debug_level" validate:"min=0,max=5"`
	ForceVSync          bool            `mapstructure:"force_vsync" toml:"force_vsync" json:"force_vsync"`
}

// ProfileConfig controls the persistent browser profile.
type ProfileConfig struct {
	DataDir          string       `mapstructure:"data_dir" toml:"data_dir" json:"data_dir" jsonschema:"description=Defaults to $XDG_DATA_HOME/twich/webkit"`
	PasswordAutosave bool         `mapstructure:"password_autosave" toml:"password_autosave" json:"password_autosave"`
	Autofill         bool         `mapstructure:"autofill" toml:"autofill" json:"autofill"`
	CookiePolicy     CookiePolicy `mapstructure:"cookie_policy" toml:"cookie_policy" json:"cookie_policy" validate:"oneof=always no_third_party never" jsonschema:"enum=always,enum=no_third_party,enum=never"`
}

// WindowConfig controls the main window chrome.
type WindowConfig struct {
	Maximized bool `mapstructure:"maximized" toml:"maximized" json:"maximized"`
	Decorated bool `mapstructure:"decorated" toml:"decorated" json:"decorated"`
	Width     int  `mapstructure:"width" toml:"width" json:"width" validate:"min=320,max=16384"`
	Height    int  `mapstructure:"height" toml:"height" json:"height" validate:"min=240,max=16384"`
}
