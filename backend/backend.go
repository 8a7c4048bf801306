package backend

import (
	"errors"

	"github.com/gogpu/gputypes"
)

// Common backend errors.
var (
	// ErrStillDrawing is returned by Map when the resource is still in use
	// by the GPU and the caller asked not to wait. The condition is
	// transient; the caller should retry.
	ErrStillDrawing = errors.New("backend: resource still in use by the GPU")

	// ErrUnsupported is returned when a descriptor asks for something the
	// implementation cannot provide.
	ErrUnsupported = errors.New("backend: operation not supported")

	// ErrBadAccess is returned by Map when the requested mode does not
	// match the CPU access the resource was created with.
	ErrBadAccess = errors.New("backend: map mode does not match CPU access flags")

	// ErrOutOfRange is returned when a subresource or back-buffer index is
	// out of range.
	ErrOutOfRange = errors.New("backend: index out of range")

	// ErrBackendNotAvailable is returned when a requested backend is not
	// registered or fails to open.
	ErrBackendNotAvailable = errors.New("backend: not available")
)

// MaxRenderTargets is the number of simultaneous render-target slots the
// output-merger stage exposes.
const MaxRenderTargets = 8

// Usage describes where a texture's backing memory lives and how it may
// be updated.
type Usage int

const (
	// UsageDefault is GPU-resident memory with no CPU access.
	UsageDefault Usage = iota
	// UsageDynamic is GPU memory with CPU write access, updated by
	// discard-style maps.
	UsageDynamic
	// UsageStaging is CPU-resident memory, readable and writable by the
	// CPU and never bindable to the pipeline.
	UsageStaging
)

// String returns the usage name.
func (u Usage) String() string {
	switch u {
	case UsageDefault:
		return "default"
	case UsageDynamic:
		return "dynamic"
	case UsageStaging:
		return "staging"
	default:
		return "unknown"
	}
}

// CPUAccess is the set of CPU access rights granted to a texture.
type CPUAccess uint32

const (
	CPUAccessRead  CPUAccess = 1 << 0
	CPUAccessWrite CPUAccess = 1 << 1
)

// Contains reports whether all bits of a2 are set in a.
func (a CPUAccess) Contains(a2 CPUAccess) bool { return a&a2 == a2 }

// Bind is the set of pipeline stages a texture may be bound to.
type Bind uint32

const (
	BindShaderResource Bind = 1 << 0
	BindRenderTarget   Bind = 1 << 1
	BindDepthStencil   Bind = 1 << 2
)

// Contains reports whether all bits of b2 are set in b.
func (b Bind) Contains(b2 Bind) bool { return b&b2 == b2 }

// MapMode selects the semantics of a CPU map operation.
type MapMode int

const (
	// MapRead grants read-only access to the current contents.
	MapRead MapMode = iota
	// MapWrite grants write access preserving current contents.
	MapWrite
	// MapReadWrite grants both.
	MapReadWrite
	// MapWriteDiscard grants write access and discards previous contents.
	MapWriteDiscard
	// MapWriteNoOverwrite promises not to touch data the GPU may read.
	MapWriteNoOverwrite
)

// MapFlags modifies a map operation.
type MapFlags uint32

const (
	// MapDoNotWait makes Map return ErrStillDrawing instead of blocking
	// when the GPU is still using the resource.
	MapDoNotWait MapFlags = 1 << 0
)

// Texture2DDescriptor describes a 2D image to create, mip chain included.
type Texture2DDescriptor struct {
	Width       uint32
	Height      uint32
	MipLevels   uint32
	SampleCount uint32
	Format      gputypes.TextureFormat
	Usage       Usage
	CPUAccess   CPUAccess
	Bind        Bind
}

// Texture2D is a native 2D image. A texture may be referenced by several
// owners at once (views, swap chains, the translation layer's surfaces);
// Destroy releases the implementation's backing storage and must only be
// called once all owners are done with it.
type Texture2D interface {
	// Desc returns the descriptor the texture was created with.
	Desc() Texture2DDescriptor

	// Destroy releases the backing storage.
	Destroy()
}

// RenderTargetView is a view of a texture bindable as a color target.
type RenderTargetView interface {
	// Texture returns the viewed texture.
	Texture() Texture2D

	// Destroy releases the view.
	Destroy()
}

// DepthStencilView is a view of a texture bindable as a depth/stencil
// target.
type DepthStencilView interface {
	// Texture returns the viewed texture.
	Texture() Texture2D

	// Destroy releases the view.
	Destroy()
}

// Mapped is the result of a successful Map: the byte pitch between rows and
// a slice aliasing the mapped memory. The slice is valid until the matching
// Unmap call.
type Mapped struct {
	Pitch int
	Bits  []byte
}

// Box is a copy region in texels; Right and Bottom are exclusive.
type Box struct {
	Left   uint32
	Top    uint32
	Right  uint32
	Bottom uint32
}

// SwapChainDescriptor describes a presentation chain.
type SwapChainDescriptor struct {
	Width           uint32
	Height          uint32
	Format          gputypes.TextureFormat
	BackBufferCount uint32
	Window          uintptr
	Windowed        bool
}

// SwapChain is a source of presentable back buffers.
type SwapChain interface {
	// Desc returns the descriptor the chain was created with.
	Desc() SwapChainDescriptor

	// BackBuffer returns the i-th back buffer texture.
	// The texture is owned by the chain; callers must not destroy it.
	BackBuffer(i uint32) (Texture2D, error)

	// Present makes the current back buffer visible.
	Present() error

	// FrontBuffer returns the most recently presented pixels, tightly
	// packed, and their byte pitch.
	FrontBuffer() ([]byte, int, error)

	// Destroy releases the chain and its buffers.
	Destroy()
}

// Device creates resources. Device methods are safe for concurrent use;
// the immediate Context is not.
type Device interface {
	// Name identifies the implementation ("software", "wgpu", ...).
	Name() string

	// ImmediateContext returns the device's single immediate context.
	// Every call returns the same context.
	ImmediateContext() Context

	// CreateTexture2D creates a 2D image, mip chain included.
	CreateTexture2D(desc *Texture2DDescriptor) (Texture2D, error)

	// CreateRenderTargetView creates a render-target view over mip 0.
	// The texture must carry BindRenderTarget.
	CreateRenderTargetView(tex Texture2D) (RenderTargetView, error)

	// CreateDepthStencilView creates a depth/stencil view over mip 0.
	// The texture must carry BindDepthStencil.
	CreateDepthStencilView(tex Texture2D) (DepthStencilView, error)

	// CreateSwapChain creates a presentation chain.
	CreateSwapChain(desc *SwapChainDescriptor) (SwapChain, error)

	// AvailableMemory reports the texture memory available to callers,
	// in bytes.
	AvailableMemory() uint32

	// Close releases the device. The device must not be used afterwards.
	Close()
}

// Context issues commands against a Device. Command issuance is not safe
// for concurrent use; callers serialize externally.
type Context interface {
	// Map grants CPU access to one subresource. On success the returned
	// Mapped stays valid until the matching Unmap.
	Map(tex Texture2D, subresource uint32, mode MapMode, flags MapFlags) (Mapped, error)

	// Unmap ends CPU access to one subresource. Unmapping a subresource
	// that is not mapped is a no-op.
	Unmap(tex Texture2D, subresource uint32)

	// CopyRegion copies a region between subresources of two textures.
	// A nil box copies the whole source subresource.
	CopyRegion(dst Texture2D, dstSubresource, dstX, dstY uint32, src Texture2D, srcSubresource uint32, box *Box) error

	// SetRenderTargets binds the output-merger state in one call: count
	// slots from views (nil entries unbind their slot) and the depth
	// target (nil unbinds).
	SetRenderTargets(views [MaxRenderTargets]RenderTargetView, count uint32, depth DepthStencilView)
}
