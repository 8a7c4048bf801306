package wgpu

import (
	"fmt"
	"math"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	// Register the Vulkan backend.
	_ "github.com/gogpu/wgpu/hal/vulkan"

	"github.com/Fraxinus001/d3d9-to-11/backend"
	"github.com/Fraxinus001/d3d9-to-11/internal/fmtconv"
)

// Name is the registry name of this backend.
const Name = "wgpu"

func init() {
	backend.Register(Name, func() (backend.Device, error) {
		return New()
	})
}

// Device implements backend.Device over a hal.Device and its queue.
type Device struct {
	instance hal.Instance
	dev      hal.Device
	queue    hal.Queue
	ctx      *Context

	adapterName string
	external    bool
}

// New creates a standalone device on the first usable Vulkan adapter,
// preferring discrete and integrated GPUs.
func New() (*Device, error) {
	b, ok := hal.GetBackend(gputypes.BackendVulkan)
	if !ok {
		return nil, fmt.Errorf("%w: vulkan", backend.ErrBackendNotAvailable)
	}
	instance, err := b.CreateInstance(&hal.InstanceDescriptor{Flags: 0})
	if err != nil {
		return nil, fmt.Errorf("create instance: %w", err)
	}

	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		instance.Destroy()
		return nil, fmt.Errorf("%w: no adapters found", backend.ErrBackendNotAvailable)
	}

	var selected *hal.ExposedAdapter
	for i := range adapters {
		if adapters[i].Info.DeviceType == gputypes.DeviceTypeDiscreteGPU ||
			adapters[i].Info.DeviceType == gputypes.DeviceTypeIntegratedGPU {
			selected = &adapters[i]
			break
		}
	}
	if selected == nil {
		selected = &adapters[0]
	}

	openDev, err := selected.Adapter.Open(gputypes.Features(0), gputypes.DefaultLimits())
	if err != nil {
		instance.Destroy()
		return nil, fmt.Errorf("open adapter %q: %w", selected.Info.Name, err)
	}

	d := &Device{
		instance:    instance,
		dev:         openDev.Device,
		queue:       openDev.Queue,
		adapterName: selected.Info.Name,
	}
	d.ctx = &Context{device: d}
	return d, nil
}

// FromProvider wraps a GPU device shared by an external provider, for
// example a gogpu application's gpucontext.DeviceProvider. The provider
// must expose the underlying HAL device and queue. The returned device
// does not own the shared resources and will not destroy them on Close.
func FromProvider(provider gpucontext.DeviceProvider) (*Device, error) {
	type halProvider interface {
		HalDevice() any
		HalQueue() any
	}
	hp, ok := provider.(halProvider)
	if !ok {
		return nil, fmt.Errorf("%w: provider does not expose HAL types", backend.ErrBackendNotAvailable)
	}
	dev, ok := hp.HalDevice().(hal.Device)
	if !ok || dev == nil {
		return nil, fmt.Errorf("%w: provider device is not hal.Device", backend.ErrBackendNotAvailable)
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return nil, fmt.Errorf("%w: provider queue is not hal.Queue", backend.ErrBackendNotAvailable)
	}

	d := &Device{
		dev:         dev,
		queue:       queue,
		adapterName: "shared",
		external:    true,
	}
	d.ctx = &Context{device: d}
	return d, nil
}

// Name returns the registry name of this backend.
func (d *Device) Name() string { return Name }

// AdapterName returns the name of the GPU adapter in use.
func (d *Device) AdapterName() string { return d.adapterName }

// ImmediateContext returns the device's single immediate context.
func (d *Device) ImmediateContext() backend.Context { return d.ctx }

// CreateTexture2D creates a GPU texture with a CPU shadow copy per mip
// level backing the map emulation.
func (d *Device) CreateTexture2D(desc *backend.Texture2DDescriptor) (backend.Texture2D, error) {
	if desc.Width == 0 || desc.Height == 0 {
		return nil, fmt.Errorf("%w: zero texture extent", backend.ErrUnsupported)
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

	halTex, err := d.dev.CreateTexture(&hal.TextureDescriptor{
		Label: "d3d9_texture",
		Size: hal.Extent3D{
			Width:              dc.Width,
			Height:             dc.Height,
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: dc.MipLevels,
		SampleCount:   dc.SampleCount,
		Dimension:     gputypes.TextureDimension2D,
		Format:        dc.Format,
		Usage:         textureUsageFor(dc.Bind),
	})
	if err != nil {
		return nil, fmt.Errorf("create texture: %w", err)
	}

	t := &texture{device: d, hal: halTex, desc: dc}
	for level := uint32(0); level < dc.MipLevels; level++ {
		w, h := mipExtent(dc.Width, dc.Height, level)
		pitch := int(w * bpp)
		t.shadow = append(t.shadow, make([]byte, pitch*int(h)))
		t.pitches = append(t.pitches, pitch)
		t.mapped = append(t.mapped, mapNone)
	}
	return t, nil
}

// CreateRenderTargetView creates a color-target view over mip 0.
func (d *Device) CreateRenderTargetView(tex backend.Texture2D) (backend.RenderTargetView, error) {
	t, err := asTexture(tex)
	if err != nil {
		return nil, err
	}
	if !t.desc.Bind.Contains(backend.BindRenderTarget) {
		return nil, fmt.Errorf("%w: texture was not created with render-target binding", backend.ErrUnsupported)
	}
	view, err := d.dev.CreateTextureView(t.hal, &hal.TextureViewDescriptor{
		Label: "d3d9_render_target_view",
	})
	if err != nil {
		return nil, fmt.Errorf("create render target view: %w", err)
	}
	return &renderTargetView{device: d, tex: t, view: view}, nil
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
	view, err := d.dev.CreateTextureView(t.hal, &hal.TextureViewDescriptor{
		Label: "d3d9_depth_stencil_view",
	})
	if err != nil {
		return nil, fmt.Errorf("create depth/stencil view: %w", err)
	}
	return &depthStencilView{device: d, tex: t, view: view}, nil
}

// CreateSwapChain creates an offscreen presentation chain. Presenting
// reads the first back buffer back into a front-buffer snapshot; scanout
// to a window surface is the embedding application's concern.
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
			sc.Destroy()
			return nil, fmt.Errorf("create back buffer %d: %w", i, err)
		}
		sc.buffers = append(sc.buffers, tex.(*texture))
	}
	return sc, nil
}

// AvailableMemory reports the adapter's buffer budget, clamped to the
// legacy 32-bit quantity.
func (d *Device) AvailableMemory() uint32 {
	budget := gputypes.DefaultLimits().MaxBufferSize
	if budget > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(budget)
}

// Close releases the device and, for standalone devices, the instance.
// Shared devices are left untouched.
func (d *Device) Close() {
	if d.external {
		d.dev = nil
		d.queue = nil
		return
	}
	if d.dev != nil {
		d.dev.Destroy()
		d.dev = nil
	}
	if d.instance != nil {
		d.instance.Destroy()
		d.instance = nil
	}
	d.queue = nil
}

// textureUsageFor translates pipeline bindings to HAL usage bits.
// Copy usage is always granted: uploads and readbacks go through the
// transfer queue regardless of how the texture binds.
func textureUsageFor(bind backend.Bind) gputypes.TextureUsage {
	usage := gputypes.TextureUsageCopySrc | gputypes.TextureUsageCopyDst
	if bind.Contains(backend.BindShaderResource) {
		usage |= gputypes.TextureUsageTextureBinding
	}
	if bind.Contains(backend.BindRenderTarget) || bind.Contains(backend.BindDepthStencil) {
		usage |= gputypes.TextureUsageRenderAttachment
	}
	return usage
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
