package d3d9to11

import (
	"github.com/gogpu/gputypes"

	"github.com/Fraxinus001/d3d9-to-11/backend"
	"github.com/Fraxinus001/d3d9-to-11/d3d9types"
	"github.com/Fraxinus001/d3d9-to-11/internal/fmtconv"
)

// Device owns the rendering state of the legacy API: the implicit swap
// chain, the bound render targets and the depth/stencil buffer, and every
// resource created through it.
//
// Device methods are not safe for concurrent use, matching the legacy API
// without its multithread creation flag.
type Device struct {
	refCount

	backend backend.Device
	ctx     backend.Context

	creationParams d3d9types.CreationParameters
	window         uintptr

	// The implicit swap chain is always element 0 and always present.
	swapChains []*SwapChain

	renderTargets []*Surface
	depthStencil  *Surface
}

// NewDevice creates a device over a native backend device.
//
// The presentation window is taken from pp.DeviceWindow, falling back to
// cp.FocusWindow; having neither is an invalid call. Zero-value fields of
// pp are filled in with their defaults, visible to the caller. The
// implicit swap chain's first back buffer is bound as render target 0,
// and an automatic depth/stencil buffer is created and bound when pp asks
// for one.
func NewDevice(b backend.Device, cp d3d9types.CreationParameters, pp *d3d9types.PresentParameters) (*Device, error) {
	if b == nil || pp == nil {
		return nil, ErrInvalidCall
	}

	window := pp.DeviceWindow
	if window == 0 {
		window = cp.FocusWindow
	}
	if window == 0 {
		Logger().Error("no presentation window given")
		return nil, ErrInvalidCall
	}

	dev := &Device{
		backend:        b,
		ctx:            b.ImmediateContext(),
		creationParams: cp,
		window:         window,
	}
	dev.AddRef()

	sc, err := dev.CreateAdditionalSwapChain(pp)
	if err != nil {
		return nil, err
	}
	dev.swapChains = []*SwapChain{sc}

	bb, err := sc.chain.BackBuffer(0)
	if err != nil {
		sc.destroy()
		return nil, driverErr("failed to get implicit back buffer", err)
	}
	rt, err := dev.wrapRenderTarget(bb, d3d9types.UsageRenderTarget, d3d9types.PoolDefault)
	if err != nil {
		sc.destroy()
		return nil, err
	}
	dev.renderTargets = []*Surface{rt}

	if pp.EnableAutoDepthStencil {
		discard := pp.Flags&d3d9types.PresentFlagDiscardDepthStencil != 0
		ds, err := dev.CreateDepthStencilSurface(
			pp.BackBufferWidth, pp.BackBufferHeight,
			pp.AutoDepthStencilFormat,
			pp.MultiSampleType, pp.MultiSampleQuality,
			discard, 0,
		)
		if err != nil {
			if v, ok := rt.RenderTargetView(); ok {
				v.Destroy()
			}
			sc.destroy()
			return nil, err
		}
		dev.depthStencil = ds
	}

	dev.syncRenderTargets()

	Logger().Info("created device", "backend", b.Name())
	return dev, nil
}

// CreationParameters returns the parameters the device was created with.
func (d *Device) CreationParameters() d3d9types.CreationParameters {
	return d.creationParams
}

// TestCooperativeLevel reports whether the device is operational.
// Device loss does not exist on the native backend, so the device is
// always operational.
func (d *Device) TestCooperativeLevel() error { return nil }

// AvailableTextureMem returns the bytes of memory available for resource
// creation, as reported by the backend.
func (d *Device) AvailableTextureMem() uint32 {
	return d.backend.AvailableMemory()
}

// EvictManagedResources asks the device to drop managed resources from
// GPU memory. Residency is the backend's concern, so this is a no-op.
func (d *Device) EvictManagedResources() error { return nil }

// SwapChainCount returns the number of implicit swap chains, which is
// always 1. Chains created with CreateAdditionalSwapChain are not counted.
func (d *Device) SwapChainCount() uint32 { return 1 }

// GetSwapChain returns an implicit swap chain by index.
func (d *Device) GetSwapChain(i uint32) (*SwapChain, error) {
	if i >= uint32(len(d.swapChains)) {
		Logger().Warn("swap chain index out of bounds", "index", i)
		return nil, ErrInvalidCall
	}
	return d.swapChains[i], nil
}

// CreateAdditionalSwapChain creates an extra presentation chain on the
// device's window. The chain is owned by the caller and does not join the
// device's implicit chains.
func (d *Device) CreateAdditionalSwapChain(pp *d3d9types.PresentParameters) (*SwapChain, error) {
	if pp == nil {
		return nil, ErrInvalidCall
	}
	return newSwapChain(d, pp, d.window)
}

// Present displays the next frame of every implicit swap chain, in order.
// The first failure stops the iteration and is returned.
func (d *Device) Present(srcRect, destRect *d3d9types.Rect, destWindow uintptr, dirtyRegion uintptr) error {
	for _, sc := range d.swapChains {
		if err := sc.Present(srcRect, destRect, destWindow, dirtyRegion); err != nil {
			return err
		}
	}
	return nil
}

// GetBackBuffer returns a back buffer of an implicit swap chain.
func (d *Device) GetBackBuffer(chain, i uint32, ty d3d9types.BackBufferType) (*Surface, error) {
	sc, err := d.GetSwapChain(chain)
	if err != nil {
		return nil, err
	}
	return sc.GetBackBuffer(i, ty)
}

// GetFrontBufferData copies the front buffer of an implicit swap chain
// into a system-memory surface.
func (d *Device) GetFrontBufferData(chain uint32, dest *Surface) error {
	sc, err := d.GetSwapChain(chain)
	if err != nil {
		return err
	}
	return sc.GetFrontBufferData(dest)
}

// GetRasterStatus reports the scanout position of an implicit swap chain.
func (d *Device) GetRasterStatus(chain uint32) (d3d9types.RasterStatus, error) {
	sc, err := d.GetSwapChain(chain)
	if err != nil {
		return d3d9types.RasterStatus{}, err
	}
	return sc.RasterStatus()
}

// GetDisplayMode describes the display of an implicit swap chain.
func (d *Device) GetDisplayMode(chain uint32) (d3d9types.DisplayMode, error) {
	sc, err := d.GetSwapChain(chain)
	if err != nil {
		return d3d9types.DisplayMode{}, err
	}
	return sc.DisplayMode()
}

// CreateTexture creates a 2D texture. A level count of 0 asks for a
// complete mip chain. Shared handles are not supported.
func (d *Device) CreateTexture(width, height, levels uint32, usage d3d9types.Usage,
	format d3d9types.Format, pool d3d9types.Pool, sharedHandle uintptr) (*Texture, error) {
	if usage != 0 {
		unimplemented("Device.CreateTexture with usage flags")
	}
	if sharedHandle != 0 {
		Logger().Warn("shared resources are not supported")
		return nil, ErrInvalidCall
	}

	native := fmtconv.ToNative(format)
	if native == gputypes.TextureFormatUndefined {
		Logger().Error("unsupported texture format", "format", format)
		return nil, ErrInvalidCall
	}

	traits := traitsForPool(pool, backend.BindShaderResource)
	image, err := d.backend.CreateTexture2D(&backend.Texture2DDescriptor{
		Width:       width,
		Height:      height,
		MipLevels:   levels,
		SampleCount: 1,
		Format:      native,
		Usage:       traits.usage,
		CPUAccess:   traits.cpu,
		Bind:        traits.bind,
	})
	if err != nil {
		return nil, driverErr("failed to create 2D texture", err)
	}

	return &Texture{
		Resource: newResource(d, usage, pool, d3d9types.ResourceTexture),
		image:    image,
		levels:   image.Desc().MipLevels,
	}, nil
}

// CreateRenderTarget creates a surface bindable as a color target.
// Lockable render targets are not supported; the flag is logged and the
// surface is created non-lockable. Shared handles are not supported.
func (d *Device) CreateRenderTarget(width, height uint32, format d3d9types.Format,
	ms d3d9types.MultisampleType, msQuality uint32, lockable bool, sharedHandle uintptr) (*Surface, error) {
	if lockable {
		Logger().Error("lockable render targets are not supported")
	}
	if sharedHandle != 0 {
		Logger().Warn("shared resources are not supported")
		return nil, ErrInvalidCall
	}

	native := fmtconv.ToNative(format)
	if native == gputypes.TextureFormatUndefined {
		Logger().Error("unsupported render target format", "format", format)
		return nil, ErrInvalidCall
	}

	traits := traitsForPool(d3d9types.PoolDefault, backend.BindRenderTarget)
	image, err := d.backend.CreateTexture2D(&backend.Texture2DDescriptor{
		Width:       width,
		Height:      height,
		MipLevels:   1,
		SampleCount: fmtconv.NativeSampleCount(ms, msQuality),
		Format:      native,
		Usage:       traits.usage,
		CPUAccess:   traits.cpu,
		Bind:        traits.bind,
	})
	if err != nil {
		return nil, driverErr("failed to create render target", err)
	}

	return d.wrapRenderTarget(image, d3d9types.UsageRenderTarget, d3d9types.PoolDefault)
}

// CreateDepthStencilSurface creates a surface bindable as a depth/stencil
// buffer. Depth buffers cannot be multisampled on the native backend, so
// the sample count is forced to 1. The discard flag is logged and ignored.
func (d *Device) CreateDepthStencilSurface(width, height uint32, format d3d9types.Format,
	ms d3d9types.MultisampleType, msQuality uint32, discard bool, sharedHandle uintptr) (*Surface, error) {
	_, _ = ms, msQuality
	if discard {
		Logger().Warn("discarding depth/stencil contents is not supported")
	}
	if sharedHandle != 0 {
		Logger().Warn("shared resources are not supported")
		return nil, ErrInvalidCall
	}

	native := fmtconv.ToNative(format)
	if native == gputypes.TextureFormatUndefined || !format.IsDepthStencil() {
		Logger().Error("unsupported depth/stencil format", "format", format)
		return nil, ErrInvalidCall
	}

	traits := traitsForPool(d3d9types.PoolDefault, backend.BindDepthStencil)
	image, err := d.backend.CreateTexture2D(&backend.Texture2DDescriptor{
		Width:       width,
		Height:      height,
		MipLevels:   1,
		SampleCount: 1,
		Format:      native,
		Usage:       traits.usage,
		CPUAccess:   traits.cpu,
		Bind:        traits.bind,
	})
	if err != nil {
		return nil, driverErr("failed to create depth/stencil buffer", err)
	}

	view, err := d.backend.CreateDepthStencilView(image)
	if err != nil {
		return nil, driverErr("failed to create depth/stencil view", err)
	}

	return newSurface(d, image, d3d9types.UsageDepthStencil, d3d9types.PoolDefault,
		depthStencilRole{view: view}), nil
}

// SetRenderTarget binds a surface as color target i. Target 0 can never be
// unbound; other slots accept nil. The surface must have been created as a
// render target.
func (d *Device) SetRenderTarget(i uint32, rt *Surface) error {
	if i >= backend.MaxRenderTargets {
		Logger().Warn("render target index out of bounds", "index", i)
		return ErrInvalidCall
	}
	if rt == nil && i == 0 {
		Logger().Warn("cannot unbind render target 0")
		return ErrInvalidCall
	}
	if rt != nil {
		if _, ok := rt.RenderTargetView(); !ok {
			Logger().Warn("surface is not a render target")
			return ErrInvalidCall
		}
	}

	for uint32(len(d.renderTargets)) <= i {
		d.renderTargets = append(d.renderTargets, nil)
	}
	d.renderTargets[i] = rt
	d.syncRenderTargets()
	return nil
}

// GetRenderTarget returns the surface bound as color target i, or
// ErrNotFound when the slot is empty.
func (d *Device) GetRenderTarget(i uint32) (*Surface, error) {
	if i >= uint32(len(d.renderTargets)) || d.renderTargets[i] == nil {
		return nil, ErrNotFound
	}
	return d.renderTargets[i], nil
}

// SetDepthStencilSurface binds a surface as the depth/stencil buffer, or
// unbinds it when ds is nil.
func (d *Device) SetDepthStencilSurface(ds *Surface) error {
	if ds != nil {
		if _, ok := ds.DepthStencilView(); !ok {
			Logger().Warn("surface is not a depth/stencil buffer")
			return ErrInvalidCall
		}
	}
	d.depthStencil = ds
	d.syncRenderTargets()
	return nil
}

// GetDepthStencilSurface returns the bound depth/stencil buffer, or
// (nil, nil) when none is bound.
func (d *Device) GetDepthStencilSurface() (*Surface, error) {
	return d.depthStencil, nil
}

// UpdateSurface copies a region from a system-memory surface into a
// default-pool surface.
func (d *Device) UpdateSurface(src *Surface, srcRect *d3d9types.Rect, dst *Surface, dstPoint *d3d9types.Point) error {
	if src == nil || dst == nil || dstPoint == nil {
		return ErrInvalidCall
	}
	if src.Pool() != d3d9types.PoolSystemMem || dst.Pool() != d3d9types.PoolDefault {
		Logger().Warn("surface update requires a system-memory source and a default-pool destination",
			"src", src.Pool(), "dst", dst.Pool())
		return ErrInvalidCall
	}

	var box *backend.Box
	if srcRect != nil {
		box = &backend.Box{
			Left:   uint32(srcRect.Left),
			Top:    uint32(srcRect.Top),
			Right:  uint32(srcRect.Right),
			Bottom: uint32(srcRect.Bottom),
		}
	}

	srcImage, srcSub := src.subresource()
	dstImage, dstSub := dst.subresource()
	err := d.ctx.CopyRegion(dstImage, dstSub, uint32(dstPoint.X), uint32(dstPoint.Y),
		srcImage, srcSub, box)
	if err != nil {
		return driverErr("failed to update surface", err)
	}
	return nil
}

// Close releases the device's swap chains and the backend device.
func (d *Device) Close() {
	for _, sc := range d.swapChains {
		sc.destroy()
	}
	d.swapChains = nil
	d.backend.Close()
}

// wrapRenderTarget creates the render-target view for a native image and
// wraps both in a surface.
func (d *Device) wrapRenderTarget(image backend.Texture2D, usage d3d9types.Usage, pool d3d9types.Pool) (*Surface, error) {
	view, err := d.backend.CreateRenderTargetView(image)
	if err != nil {
		return nil, driverErr("failed to create render target view", err)
	}
	return newSurface(d, image, usage, pool, renderTargetRole{view: view}), nil
}

// syncRenderTargets pushes the bound targets to the native context.
// Must be called after every mutation of the color or depth bindings.
func (d *Device) syncRenderTargets() {
	var views [backend.MaxRenderTargets]backend.RenderTargetView
	for i, rt := range d.renderTargets {
		if rt == nil {
			continue
		}
		if v, ok := rt.RenderTargetView(); ok {
			views[i] = v
		}
	}
	var depth backend.DepthStencilView
	if d.depthStencil != nil {
		if v, ok := d.depthStencil.DepthStencilView(); ok {
			depth = v
		}
	}
	d.ctx.SetRenderTargets(views, uint32(len(d.renderTargets)), depth)
}
