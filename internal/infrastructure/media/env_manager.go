// Package media hosts the secondary player's native playback engine and the
// GStreamer environment it runs in.
package media

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bnema/twich/internal/application/port"
	"github.com/bnema/twich/internal/logging"
)

const defaultDRMBase = "/sys/class/drm"

// Hardware decoder elements promoted (or demoted) through GST_PLUGIN_FEATURE_RANK.
var hardwareDecoders = []string{
	"vah264dec", "vah265dec", "vavp9dec", "vaav1dec",
	"nvh264dec", "nvh265dec", "nvvp9dec", "nvav1dec",
}

// EnvManager implements port.GStreamerEnvManager for configuring
// GStreamer environment variables based on GPU vendor and user config.
type EnvManager struct {
	appliedVars map[string]string
	gpuVendor   port.GPUVendor
	drmBase     string
}

// NewEnvManager creates a new GStreamer environment manager.
func NewEnvManager() *EnvManager {
	return &EnvManager{
		appliedVars: make(map[string]string),
		gpuVendor:   port.GPUVendorUnknown,
		drmBase:     defaultDRMBase,
	}
}

// DetectGPUVendor identifies the primary GPU vendor from sysfs.
func (e *EnvManager) DetectGPUVendor(ctx context.Context) port.GPUVendor {
	log := logging.FromContext(ctx)

	e.gpuVendor = e.detectFromDRM()
	if e.gpuVendor == port.GPUVendorUnknown {
		log.Debug().Msg("could not detect GPU vendor, using unknown")
	} else {
		log.Debug().Str("vendor", string(e.gpuVendor)).Msg("detected GPU vendor from DRM")
	}
	return e.gpuVendor
}

// detectFromDRM reads card*/device/vendor, primary card first.
func (e *EnvManager) detectFromDRM() port.GPUVendor {
	for _, card := range []string{"card0", "card1"} {
		data, err := os.ReadFile(filepath.Join(e.drmBase, card, "device", "vendor"))
		if err != nil {
			continue
		}
		switch strings.TrimSpace(string(data)) {
		case "0x1002":
			return port.GPUVendorAMD
		case "0x8086":
			return port.GPUVendorIntel
		case "0x10de":
			return port.GPUVendorNVIDIA
		}
	}
	return port.GPUVendorUnknown
}

// ApplyEnvironment sets GStreamer environment variables from settings and
// the detected GPU. Must be called before GTK initializes.
func (e *EnvManager) ApplyEnvironment(ctx context.Context, settings port.GStreamerEnvSettings) error {
	log := logging.FromContext(ctx)

	e.appliedVars = make(map[string]string)

	if settings.ForceVSync {
		e.setEnv("__GL_SYNC_TO_VBLANK", "1")
		e.setEnv("vblank_mode", "3") // Mesa DRI: always sync
	}

	switch strings.ToLower(settings.GLRenderingMode) {
	case "gles2":
		e.setEnv("GST_GL_API", "gles2")
	case "gl3":
		e.setEnv("GST_GL_API", "opengl3")
	case "none":
		e.setEnv("GST_GL_API", "none")
	}

	if settings.GStreamerDebugLevel > 0 {
		e.setEnv("GST_DEBUG", strconv.Itoa(min(settings.GStreamerDebugLevel, 5)))
	}

	e.applyDecoderRanks(settings.HardwareDecoding)
	if settings.HardwareDecoding {
		e.applyGPUSpecificEnv()
	}

	log.Debug().
		Interface("vars", e.appliedVars).
		Str("gpu", string(e.gpuVendor)).
		Msg("applied gstreamer environment")
	return nil
}

// applyDecoderRanks leaves a user-provided GST_PLUGIN_FEATURE_RANK alone.
func (e *EnvManager) applyDecoderRanks(hardware bool) {
	if os.Getenv("GST_PLUGIN_FEATURE_RANK") != "" {
		return
	}
	rank := "NONE"
	if hardware {
		rank = "PRIMARY+1"
	}
	ranks := make([]string, 0, len(hardwareDecoders))
	for _, dec := range hardwareDecoders {
		ranks = append(ranks, dec+":"+rank)
	}
	e.setEnv("GST_PLUGIN_FEATURE_RANK", strings.Join(ranks, ","))
}

// applyGPUSpecificEnv picks the VA-API driver unless the user already did.
func (e *EnvManager) applyGPUSpecificEnv() {
	if os.Getenv("LIBVA_DRIVER_NAME") != "" {
		return
	}

	switch e.gpuVendor {
	case port.GPUVendorAMD:
		e.setEnv("LIBVA_DRIVER_NAME", "radeonsi")
	case port.GPUVendorIntel:
		// iHD covers Gen 8 and newer
		e.setEnv("LIBVA_DRIVER_NAME", "iHD")
	case port.GPUVendorNVIDIA:
		e.setEnv("LIBVA_DRIVER_NAME", "nvidia")
		if os.Getenv("GST_GL_PLATFORM") == "" {
			e.setEnv("GST_GL_PLATFORM", "egl")
		}
	}
}

func (e *EnvManager) setEnv(key, value string) {
	_ = os.Setenv(key, value) // setenv rarely fails
	e.appliedVars[key] = value
}

// GetAppliedVars returns a copy of the variables that were set.
func (e *EnvManager) GetAppliedVars() map[string]string {
	result := make(map[string]string, len(e.appliedVars))
	for k, v := range e.appliedVars {
		result[k] = v
	}
	return result
}

var _ port.GStreamerEnvManager = (*EnvManager)(nil)
