package config

import "github.com/bnema/twich/internal/filtering"

// DefaultHomeURL is the page loaded at startup.
const DefaultHomeURL = "https://www.twitch.tv/"

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		HomeURL: DefaultHomeURL,
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "console",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 7,
		},
		Filtering: FilteringConfig{
			Enabled:                true,
			ExtraBlockPatterns:     []string{},
			ExtraSanitizeSelectors: []string{},
			VerdictCacheSize:       filtering.DefaultVerdictCacheSize,
		},
		PiP: PiPConfig{
			OnFocusLoss: true,
		},
		Player: PlayerConfig{
			PanelWidth:         420,
			OpenFloatingWindow: true,
			WindowWidth:        360,
			WindowHeight:       203,
		},
		Media: MediaConfig{
			HardwareDecoding:    true,
			GLRenderingMode:     GLRenderingModeAuto,
			GStreamerDebugLevel: 0,
		},
		Profile: ProfileConfig{
			PasswordAutosave: true,
			Autofill:         true,
			CookiePolicy:     CookiePolicyNoThirdParty,
		},
		Window: WindowConfig{
			Maximized: true,
			Decorated: false,
			Width:     1280,
			Height:    800,
		},
	}
}
