package d3d9types

import "fmt"

// Pool identifies the memory class backing a resource.
//
// The pool is fixed at creation time and determines how the native backend
// allocates the resource and which CPU access it grants.
type Pool uint32

const (
	// PoolDefault places the resource in GPU-resident memory.
	PoolDefault Pool = 0
	// PoolManaged mirrors the resource in system memory and uploads on demand.
	PoolManaged Pool = 1
	// PoolSystemMem keeps the resource in CPU memory; it is never bindable
	// to the pipeline.
	PoolSystemMem Pool = 2
	// PoolScratch is accepted for completeness but unused by this layer.
	PoolScratch Pool = 3
)

// String returns the legacy constant name for the pool.
func (p Pool) String() string {
	switch p {
	case PoolDefault:
		return "D3DPOOL_DEFAULT"
	case PoolManaged:
		return "D3DPOOL_MANAGED"
	case PoolSystemMem:
		return "D3DPOOL_SYSTEMMEM"
	case PoolScratch:
		return "D3DPOOL_SCRATCH"
	default:
		return fmt.Sprintf("D3DPOOL(%d)", uint32(p))
	}
}

// Usage is the legacy resource usage bit set.
// Only a subset is honored by this layer; see the device creation calls.
type Usage uint32

const (
	UsageRenderTarget       Usage = 0x00000001
	UsageDepthStencil       Usage = 0x00000002
	UsageWriteOnly          Usage = 0x00000008
	UsageSoftwareProcessing Usage = 0x00000010
	UsageDynamic            Usage = 0x00000200
	UsageAutoGenMipMap      Usage = 0x00000400
)

// Contains reports whether all bits of u2 are set in u.
func (u Usage) Contains(u2 Usage) bool { return u&u2 == u2 }

// Lock is the bit set accepted by the lock (map) calls.
type Lock uint32

const (
	LockReadOnly      Lock = 0x00000010
	LockNoSysLock     Lock = 0x00000800
	LockNoOverwrite   Lock = 0x00001000
	LockDiscard       Lock = 0x00002000
	LockDoNotWait     Lock = 0x00004000
	LockNoDirtyUpdate Lock = 0x00008000
)

// Contains reports whether all bits of l2 are set in l.
func (l Lock) Contains(l2 Lock) bool { return l&l2 == l2 }

// MultisampleType selects the number of samples per pixel.
// Values of 2 and above name the sample count directly.
type MultisampleType uint32

const (
	MultisampleNone        MultisampleType = 0
	MultisampleNonMaskable MultisampleType = 1
)

// ResourceType tags the concrete kind of a resource.
type ResourceType uint32

const (
	ResourceSurface       ResourceType = 1
	ResourceVolume        ResourceType = 2
	ResourceTexture       ResourceType = 3
	ResourceVolumeTexture ResourceType = 4
	ResourceCubeTexture   ResourceType = 5
	ResourceVertexBuffer  ResourceType = 6
	ResourceIndexBuffer   ResourceType = 7
)

// String returns the legacy constant name for the resource type.
func (t ResourceType) String() string {
	switch t {
	case ResourceSurface:
		return "D3DRTYPE_SURFACE"
	case ResourceVolume:
		return "D3DRTYPE_VOLUME"
	case ResourceTexture:
		return "D3DRTYPE_TEXTURE"
	case ResourceVolumeTexture:
		return "D3DRTYPE_VOLUMETEXTURE"
	case ResourceCubeTexture:
		return "D3DRTYPE_CUBETEXTURE"
	case ResourceVertexBuffer:
		return "D3DRTYPE_VERTEXBUFFER"
	case ResourceIndexBuffer:
		return "D3DRTYPE_INDEXBUFFER"
	default:
		return fmt.Sprintf("D3DRTYPE(%d)", uint32(t))
	}
}

// BackBufferType selects a back buffer of a swap chain.
// Stereo buffers (left/right) are not supported by this layer.
type BackBufferType uint32

const (
	BackBufferMono  BackBufferType = 0
	BackBufferLeft  BackBufferType = 1
	BackBufferRight BackBufferType = 2
)

// SwapEffect selects the presentation behavior of a swap chain.
type SwapEffect uint32

const (
	SwapEffectDiscard SwapEffect = 1
	SwapEffectFlip    SwapEffect = 2
	SwapEffectCopy    SwapEffect = 3
)

// Presentation flags carried in PresentParameters.Flags.
const (
	PresentFlagLockableBackBuffer   uint32 = 0x00000001
	PresentFlagDiscardDepthStencil  uint32 = 0x00000002
	PresentFlagDeviceClip           uint32 = 0x00000004
	PresentFlagVideo                uint32 = 0x00000010
	PresentFlagNoAutoRotate         uint32 = 0x00000020
	PresentFlagUnprunedMode         uint32 = 0x00000040
	PresentFlagOverlayLimitedRGB    uint32 = 0x00000080
	PresentFlagOverlayYCbCrBT709    uint32 = 0x00000100
	PresentFlagOverlayYCbCrXVYCC    uint32 = 0x00000200
	PresentFlagRestrictedContent    uint32 = 0x00000400
	PresentFlagRestrictSharedFences uint32 = 0x00000800
)

// DeviceType selects the legacy driver kind requested by the caller.
type DeviceType uint32

const (
	DeviceTypeHAL     DeviceType = 1
	DeviceTypeRef     DeviceType = 2
	DeviceTypeSW      DeviceType = 3
	DeviceTypeNullRef DeviceType = 4
)

// Behavior flags passed at device creation.
const (
	CreateMultithreaded            uint32 = 0x00000004
	CreateSoftwareVertexProcessing uint32 = 0x00000020
	CreateHardwareVertexProcessing uint32 = 0x00000040
	CreateMixedVertexProcessing    uint32 = 0x00000080
)

// Rect is the legacy rectangle shape: edges in pixels, right/bottom exclusive.
type Rect struct {
	Left   int32
	Top    int32
	Right  int32
	Bottom int32
}

// Width returns the rectangle width in pixels.
func (r Rect) Width() int32 { return r.Right - r.Left }

// Height returns the rectangle height in pixels.
func (r Rect) Height() int32 { return r.Bottom - r.Top }

// Point is the legacy 2D point shape.
type Point struct {
	X int32
	Y int32
}

// LockedRect is the result of a successful lock call: the byte pitch between
// consecutive rows and the mapped pixel memory. Bits aliases the mapped
// storage; it is valid only until the matching unlock call.
type LockedRect struct {
	Pitch int32
	Bits  []byte
}

// SurfaceDesc describes a surface as observed by legacy callers.
type SurfaceDesc struct {
	Format             Format
	Type               ResourceType
	Usage              Usage
	Pool               Pool
	MultiSampleType    MultisampleType
	MultiSampleQuality uint32
	Width              uint32
	Height             uint32
}

// RasterStatus reports the scanout position of a swap chain.
type RasterStatus struct {
	InVBlank bool
	ScanLine uint32
}

// DisplayMode describes the display a swap chain presents to.
type DisplayMode struct {
	Width       uint32
	Height      uint32
	RefreshRate uint32
	Format      Format
}
