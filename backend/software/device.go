package software

import (
	"fmt"
	"sync"

	"github.com/gogpu/gputypes"

	"github.com/Fraxinus001/d3d9-to-11/backend"
	"github.com/Fraxinus001/d3d9-to-11/internal/fmtconv"
)

// Name is the registry name of this backend.
const Name = "software"

func init() {
	backend.Register(Name, func() (backend.Device, error) {
		return New(), nil
	})
}

// Device is a CPU implementation of backend.Device.
type Device struct {
	mu     sync.Mutex
	ctx    *Context
	busy   bool
	closed bool
}

// New creates a software device.
func New() *Device {
	d := &Device{}
	d.ctx = &Context{device: d}
	return d
}

// Name returns the registry name of this backend.
func (d *Device) Name() string { return Name }

// ImmediateContext returns the device's single immediate context.
func (d *Device) ImmediateContext() backend.Context { return d.ctx }

// SetBusy simulates outstanding GPU work. While busy, Map calls carrying
// MapDoNotWait return ErrStillDrawing; calls without the flag behave as if
// they waited for the work to finish.
func (d *Device) SetBusy(busy bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.busy = busy
}

func (d *Device) isBusy() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.busy
}

// CreateTexture2D creates a 2D image with byte storage per mip level.
func (d *Device) CreateTexture2D(desc *backend.Texture2DDescriptor) (backend.Texture2D, error) {
	if desc.Width == 0 || desc.Height == 0 {
		return nil, fmt.Errorf("%w: zero texture extent", backend.ErrUnsupported)
	}
	if desc.Format == gputypes.TextureFormatUndefined {
		return nil, fmt.Errorf("%w: undefined texture format", backend.ErrUnsupported)
	}
	bpp := fmtconv.BytesPerPixel(desc.Format)
	if bpp == 0 {
		return nil, fmt.Errorf("%w: format %v has no storage mapping", backend.ErrUnsupported, desc.Format)
	}

	dc := *desc
	if dc.MipLevels == 0 {
		dc.MipLevels = fullMipCount(dc.Width, dc.Height)
	}
	if dc.SampleCount == 0 {
		dc.SampleCount = 1
	}

	t := &texture{desc: dc}
	for level := uint32(0); level < dc.MipLevels; level++ {
		w, h := mipExtent(dc.Width, dc.Height, level)
		pitch := int(w * bpp)
		t.levels = append(t.levels, make([]byte, pitch*int(h)))
		t.pitches = append(t.pitches, pitch)
		t.mapped = append(t.mapped, false)
	}
	return t, nil
}

// CreateRenderTargetView creates a render-target view over mip 0.
func (d *Device) CreateRenderTargetView(tex backend.Texture2D) (backend.RenderTargetView, error) {
	t, err := asTexture(tex)
	if err != nil {
		return nil, err
	}
	if !t.desc.Bind.Contains(backend.BindRenderTarget) {
		return nil, fmt.Errorf("%w: texture was not created with render-target binding", backend.ErrUnsupported)
	}
	return &renderTargetView{tex: t}, nil
}

// CreateDepthStencilView creates a depth/stencil view over mip 0.
func (d *Device) CreateDepthStencilView(tex backend.Texture2D) (backend.DepthStencilView, error) {
	t, err := asTexture(tex)
	if err != nil {
		return nil, err
	}
	if !t.desc.Bind.Contains(backend.BindDepthStencil) {
		return nil, fmt.Errorf("%w: texture was not created with depth/stencil binding", backend.ErrUnsupported)
	}
	return &depthStencilView{tex: t}, nil
}

// CreateSwapChain creates a presentation chain backed by CPU textures.
func (d *Device) CreateSwapChain(desc *backend.SwapChainDescriptor) (backend.SwapChain, error) {
	dc := *desc
	if dc.BackBufferCount == 0 {
		dc.BackBufferCount = 1
	}
	if dc.Format == gputypes.TextureFormatUndefined {
		dc.Format = gputypes.TextureFormatBGRA8Unorm
	}

	sc := &swapChain{device: d, desc: dc}
	for i := uint32(0); i < dc.BackBufferCount; i++ {
		tex, err := d.CreateTexture2D(&backend.Texture2DDescriptor{
			Width:       dc.Width,
			Height:      dc.Height,
			MipLevels:   1,
			SampleCount: 1,
			Format:      dc.Format,
			Usage:       backend.UsageDefault,
			Bind:        backend.BindRenderTarget,
		})
		if err != nil {
			return nil, fmt.Errorf("create back buffer %d: %w", i, err)
		}
		sc.buffers = append(sc.buffers, tex.(*texture))
	}
	return sc, nil
}

// AvailableMemory reports a fixed generous budget; the CPU backend is
// limited only by the process heap.
func (d *Device) AvailableMemory() uint32 { return 1 << 30 }

// Close releases the device.
func (d *Device) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.closed = true
}

// fullMipCount returns the length of a complete mip chain.
func fullMipCount(w, h uint32) uint32 {
	n := uint32(1)
	for w > 1 || h > 1 {
		w, h = w/2, h/2
		if w == 0 {
			w = 1
		}
		if h == 0 {
			h = 1
		}
		n++
	}
	return n
}

// mipExtent returns the extent of one mip level, clamped to 1.
func mipExtent(w, h, level uint32) (uint32, uint32) {
	w >>= level
	h >>= level
	if w == 0 {
		w = 1
	}
	if h == 0 {
		h = 1
	}
	return w, h
}
