// Package fmtconv converts pixel formats and multisample descriptors between
// the legacy enumeration and the native (gputypes) representation.
//
// Every function is pure. The tables here are the single source of truth for
// format translation; resource creation and description queries both go
// through them so a created resource always describes itself with the format
// the caller would expect after a round trip.
package fmtconv

import (
	"github.com/gogpu/gputypes"

	"github.com/Fraxinus001/d3d9-to-11/d3d9types"
)

// ToNative maps a legacy format to the native texture format.
// Formats without a native equivalent map to TextureFormatUndefined;
// the caller decides whether that is an error.
func ToNative(f d3d9types.Format) gputypes.TextureFormat {
	switch f {
	case d3d9types.FormatA8R8G8B8, d3d9types.FormatX8R8G8B8:
		return gputypes.TextureFormatBGRA8Unorm
	case d3d9types.FormatA8B8G8R8, d3d9types.FormatX8B8G8R8:
		return gputypes.TextureFormatRGBA8Unorm
	case d3d9types.FormatA2R10G10B10:
		return gputypes.TextureFormatRGB10A2Unorm
	case d3d9types.FormatL8, d3d9types.FormatA8:
		return gputypes.TextureFormatR8Unorm
	case d3d9types.FormatR16F:
		return gputypes.TextureFormatR16Float
	case d3d9types.FormatG16R16F:
		return gputypes.TextureFormatRG16Float
	case d3d9types.FormatA16B16G16R16F:
		return gputypes.TextureFormatRGBA16Float
	case d3d9types.FormatR32F:
		return gputypes.TextureFormatR32Float
	case d3d9types.FormatG32R32F:
		return gputypes.TextureFormatRG32Float
	case d3d9types.FormatA32B32G32R32F:
		return gputypes.TextureFormatRGBA32Float
	case d3d9types.FormatD16, d3d9types.FormatD16Lockable:
		return gputypes.TextureFormatDepth16Unorm
	case d3d9types.FormatD24S8, d3d9types.FormatD24X8:
		return gputypes.TextureFormatDepth24PlusStencil8
	case d3d9types.FormatD32, d3d9types.FormatD32FLockable:
		return gputypes.TextureFormatDepth32Float
	default:
		return gputypes.TextureFormatUndefined
	}
}

// ToLegacy maps a native texture format back to the legacy enumeration.
// Legacy formats that collapse onto the same native format (for example
// X8R8G8B8 and A8R8G8B8) map back to the alpha-carrying variant.
func ToLegacy(f gputypes.TextureFormat) d3d9types.Format {
	switch f {
	case gputypes.TextureFormatBGRA8Unorm:
		return d3d9types.FormatA8R8G8B8
	case gputypes.TextureFormatRGBA8Unorm:
		return d3d9types.FormatA8B8G8R8
	case gputypes.TextureFormatRGB10A2Unorm:
		return d3d9types.FormatA2R10G10B10
	case gputypes.TextureFormatR8Unorm:
		return d3d9types.FormatL8
	case gputypes.TextureFormatR16Float:
		return d3d9types.FormatR16F
	case gputypes.TextureFormatRG16Float:
		return d3d9types.FormatG16R16F
	case gputypes.TextureFormatRGBA16Float:
		return d3d9types.FormatA16B16G16R16F
	case gputypes.TextureFormatR32Float:
		return d3d9types.FormatR32F
	case gputypes.TextureFormatRG32Float:
		return d3d9types.FormatG32R32F
	case gputypes.TextureFormatRGBA32Float:
		return d3d9types.FormatA32B32G32R32F
	case gputypes.TextureFormatDepth16Unorm:
		return d3d9types.FormatD16
	case gputypes.TextureFormatDepth24PlusStencil8:
		return d3d9types.FormatD24S8
	case gputypes.TextureFormatDepth32Float:
		return d3d9types.FormatD32
	default:
		return d3d9types.FormatUnknown
	}
}

// NativeSampleCount maps a legacy multisample descriptor to a native
// per-pixel sample count. Non-maskable multisampling has no direct native
// equivalent and resolves to a single sample.
func NativeSampleCount(ms d3d9types.MultisampleType, _ uint32) uint32 {
	if ms < 2 {
		return 1
	}
	return uint32(ms)
}

// LegacySamples maps a native sample count back to the legacy multisample
// descriptor. Quality levels are not modeled and always report zero.
func LegacySamples(count uint32) (d3d9types.MultisampleType, uint32) {
	if count <= 1 {
		return d3d9types.MultisampleNone, 0
	}
	return d3d9types.MultisampleType(count), 0
}

// BytesPerPixel returns the per-pixel byte size of a native format.
// Only the formats producible by ToNative are covered; anything else
// reports zero.
func BytesPerPixel(f gputypes.TextureFormat) uint32 {
	switch f {
	case gputypes.TextureFormatR8Unorm:
		return 1
	case gputypes.TextureFormatR16Float, gputypes.TextureFormatDepth16Unorm:
		return 2
	case gputypes.TextureFormatBGRA8Unorm, gputypes.TextureFormatRGBA8Unorm,
		gputypes.TextureFormatRGB10A2Unorm, gputypes.TextureFormatRG16Float,
		gputypes.TextureFormatR32Float, gputypes.TextureFormatDepth24PlusStencil8,
		gputypes.TextureFormatDepth32Float:
		return 4
	case gputypes.TextureFormatRGBA16Float, gputypes.TextureFormatRG32Float:
		return 8
	case gputypes.TextureFormatRGBA32Float:
		return 16
	default:
		return 0
	}
}
