package webkit

import (
	"context"

	webkit "github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"

	"github.com/bnema/twich/internal/infrastructure/config"
	"github.com/bnema/twich/internal/logging"
)

// applySettings configures a WebView's settings from config. Playback must
// start without a user gesture so PiP can be requested from a focus change.
func applySettings(ctx context.Context, settings *webkit.Settings, cfg *config.Config) {
	log := logging.FromContext(ctx)

	settings.SetEnableJavascript(true)
	settings.SetEnableSmoothScrolling(true)
	settings.SetEnableSiteSpecificQuirks(true)
	settings.SetEnableFullscreen(true)

	applyMediaSettings(settings, cfg)

	log.Debug().
		Bool("hardware_decoding", cfg.Media.HardwareDecoding).
		Msg("settings applied")
}

func applyMediaSettings(settings *webkit.Settings, cfg *config.Config) {
	settings.SetEnableMedia(true)
	settings.SetEnableMediasource(true)
	settings.SetEnableEncryptedMedia(true)
	settings.SetEnableWebaudio(true)
	settings.SetEnableWebgl(true)
	settings.SetMediaPlaybackRequiresUserGesture(false)
	settings.SetMediaPlaybackAllowsInline(true)

	if cfg.Media.HardwareDecoding {
		settings.SetHardwareAccelerationPolicy(webkit.HardwareAccelerationPolicyAlways)
	} else {
		settings.SetHardwareAccelerationPolicy(webkit.HardwareAccelerationPolicyNever)
	}
}
