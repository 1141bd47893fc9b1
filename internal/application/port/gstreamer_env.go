package port

import "context"

//go:generate mockgen -source=gstreamer_env.go -destination=mocks/mock_gstreamer_env.go -package=mocks

// GPUVendor identifies the GPU manufacturer for vendor-specific decoder choices.
type GPUVendor string

const (
	// GPUVendorAMD represents AMD/ATI GPUs (vendor ID 0x1002)
	GPUVendorAMD GPUVendor = "amd"
	// GPUVendorIntel represents Intel GPUs (vendor ID 0x8086)
	GPUVendorIntel GPUVendor = "intel"
	// GPUVendorNVIDIA represents NVIDIA GPUs (vendor ID 0x10de)
	GPUVendorNVIDIA GPUVendor = "nvidia"
	// GPUVendorUnknown represents undetected or unsupported GPUs
	GPUVendorUnknown GPUVendor = "unknown"
)

// GStreamerEnvSettings configures the native player's decoding environment.
// Port-local to avoid an import cycle with the config package.
type GStreamerEnvSettings struct {
	// HardwareDecoding ranks VA/NVDEC decoders above software ones
	HardwareDecoding bool
	// ForceVSync enables vertical sync for video playback
	ForceVSync bool
	// GLRenderingMode selects the GL API: "auto", "gles2", "gl3", "none"
	GLRenderingMode string
	// GStreamerDebugLevel sets GStreamer debug verbosity (0-5)
	GStreamerDebugLevel int
}

// GStreamerEnvManager sets GStreamer environment variables.
// They must be set BEFORE GTK initializes the media backend.
type GStreamerEnvManager interface {
	// DetectGPUVendor identifies the primary GPU vendor from sysfs.
	DetectGPUVendor(ctx context.Context) GPUVendor

	// ApplyEnvironment sets the variables derived from settings and vendor.
	ApplyEnvironment(ctx context.Context, settings GStreamerEnvSettings) error

	// GetAppliedVars returns the variables that were set.
	GetAppliedVars() map[string]string
}
