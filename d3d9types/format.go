package d3d9types

import "fmt"

// Format is the legacy pixel format enumeration.
// The values match the legacy API so callers round-trip exact bits.
type Format uint32

const (
	FormatUnknown Format = 0

	FormatR8G8B8   Format = 20
	FormatA8R8G8B8 Format = 21
	FormatX8R8G8B8 Format = 22
	FormatR5G6B5   Format = 23
	FormatX1R5G5B5 Format = 24
	FormatA1R5G5B5 Format = 25
	FormatA4R4G4B4 Format = 26
	FormatA8       Format = 28

	FormatA8B8G8R8    Format = 32
	FormatX8B8G8R8    Format = 33
	FormatG16R16      Format = 34
	FormatA2R10G10B10 Format = 35
	FormatA16B16G16R16 Format = 36

	FormatL8  Format = 50
	FormatL16 Format = 81

	FormatD16Lockable  Format = 70
	FormatD32          Format = 71
	FormatD24S8        Format = 75
	FormatD24X8        Format = 77
	FormatD16          Format = 80
	FormatD32FLockable Format = 82

	FormatR16F          Format = 111
	FormatG16R16F       Format = 112
	FormatA16B16G16R16F Format = 113
	FormatR32F          Format = 114
	FormatG32R32F       Format = 115
	FormatA32B32G32R32F Format = 116
)

// IsDepthStencil reports whether the format describes a depth or
// depth/stencil buffer.
func (f Format) IsDepthStencil() bool {
	switch f {
	case FormatD16Lockable, FormatD32, FormatD24S8, FormatD24X8, FormatD16, FormatD32FLockable:
		return true
	}
	return false
}

// String returns the legacy constant name for the format.
func (f Format) String() string {
	switch f {
	case FormatUnknown:
		return "D3DFMT_UNKNOWN"
	case FormatR8G8B8:
		return "D3DFMT_R8G8B8"
	case FormatA8R8G8B8:
		return "D3DFMT_A8R8G8B8"
	case FormatX8R8G8B8:
		return "D3DFMT_X8R8G8B8"
	case FormatR5G6B5:
		return "D3DFMT_R5G6B5"
	case FormatA8:
		return "D3DFMT_A8"
	case FormatA8B8G8R8:
		return "D3DFMT_A8B8G8R8"
	case FormatX8B8G8R8:
		return "D3DFMT_X8B8G8R8"
	case FormatA2R10G10B10:
		return "D3DFMT_A2R10G10B10"
	case FormatL8:
		return "D3DFMT_L8"
	case FormatD32:
		return "D3DFMT_D32"
	case FormatD24S8:
		return "D3DFMT_D24S8"
	case FormatD24X8:
		return "D3DFMT_D24X8"
	case FormatD16:
		return "D3DFMT_D16"
	case FormatR16F:
		return "D3DFMT_R16F"
	case FormatG16R16F:
		return "D3DFMT_G16R16F"
	case FormatA16B16G16R16F:
		return "D3DFMT_A16B16G16R16F"
	case FormatR32F:
		return "D3DFMT_R32F"
	case FormatG32R32F:
		return "D3DFMT_G32R32F"
	case FormatA32B32G32R32F:
		return "D3DFMT_A32B32G32R32F"
	default:
		return fmt.Sprintf("D3DFMT(%d)", uint32(f))
	}
}
