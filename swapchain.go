package d3d9to11

import (
	"errors"

	"github.com/gogpu/gputypes"

	"github.com/Fraxinus001/d3d9-to-11/backend"
	"github.com/Fraxinus001/d3d9-to-11/d3d9types"
	"github.com/Fraxinus001/d3d9-to-11/internal/fmtconv"
)

// SwapChain presents rendered frames to a window.
type SwapChain struct {
	refCount
	device *Device
	chain  backend.SwapChain
	params d3d9types.PresentParameters
}

// newSwapChain creates a presentation chain from legacy parameters.
// Zero-value fields of pp are filled in with their defaults, visible to
// the caller, matching the legacy contract.
func newSwapChain(dev *Device, pp *d3d9types.PresentParameters, window uintptr) (*SwapChain, error) {
	if pp.BackBufferCount == 0 {
		pp.BackBufferCount = 1
	}
	if pp.BackBufferFormat == d3d9types.FormatUnknown {
		pp.BackBufferFormat = d3d9types.FormatA8R8G8B8
	}

	native := fmtconv.ToNative(pp.BackBufferFormat)
	if native == gputypes.TextureFormatUndefined {
		Logger().Error("unsupported back buffer format", "format", pp.BackBufferFormat)
		return nil, ErrInvalidCall
	}

	chain, err := dev.backend.CreateSwapChain(&backend.SwapChainDescriptor{
		Width:           pp.BackBufferWidth,
		Height:          pp.BackBufferHeight,
		Format:          native,
		BackBufferCount: pp.BackBufferCount,
		Window:          window,
		Windowed:        pp.Windowed,
	})
	if err != nil {
		return nil, driverErr("failed to create swap chain", err)
	}

	sc := &SwapChain{device: dev, chain: chain, params: *pp}
	sc.AddRef()
	return sc, nil
}

// PresentParameters returns the parameters the chain was created with,
// with defaults filled in.
func (sc *SwapChain) PresentParameters() d3d9types.PresentParameters {
	return sc.params
}

// Present displays the next back buffer.
//
// Partial presentation is not supported: source and destination rectangles
// and the dirty region are accepted and ignored.
func (sc *SwapChain) Present(srcRect, destRect *d3d9types.Rect, destWindow uintptr, dirtyRegion uintptr) error {
	_, _, _, _ = srcRect, destRect, destWindow, dirtyRegion
	if err := sc.chain.Present(); err != nil {
		return driverErr("failed to present swap chain", err)
	}
	return nil
}

// GetBackBuffer returns the i-th back buffer as a render-target surface.
// Only mono buffers exist; asking for a stereo buffer or an index past the
// chain's buffer count is an invalid call.
func (sc *SwapChain) GetBackBuffer(i uint32, ty d3d9types.BackBufferType) (*Surface, error) {
	if ty != d3d9types.BackBufferMono {
		Logger().Warn("stereo back buffers are not supported")
		return nil, ErrInvalidCall
	}
	tex, err := sc.chain.BackBuffer(i)
	if err != nil {
		if errors.Is(err, backend.ErrOutOfRange) {
			return nil, ErrInvalidCall
		}
		return nil, driverErr("failed to get back buffer", err)
	}
	return sc.device.wrapRenderTarget(tex, d3d9types.UsageRenderTarget, d3d9types.PoolDefault)
}

// GetFrontBufferData copies the most recently presented frame into dest.
// The destination surface must live in system memory.
func (sc *SwapChain) GetFrontBufferData(dest *Surface) error {
	if dest == nil {
		return ErrInvalidCall
	}
	if dest.Pool() != d3d9types.PoolSystemMem {
		Logger().Warn("front buffer data destination must be in system memory", "pool", dest.Pool())
		return ErrInvalidCall
	}

	front, pitch, err := sc.chain.FrontBuffer()
	if err != nil {
		return driverErr("failed to read front buffer", err)
	}

	lr, err := dest.LockRect(nil, 0)
	if err != nil {
		return err
	}
	defer dest.UnlockRect()

	desc := sc.chain.Desc()
	dd := dest.Desc()
	rows := int(min(desc.Height, dd.Height))
	rowBytes := min(pitch, int(lr.Pitch))
	for row := 0; row < rows; row++ {
		src := front[row*pitch : row*pitch+rowBytes]
		dst := lr.Bits[row*int(lr.Pitch):]
		copy(dst[:rowBytes], src)
	}
	return nil
}

// RasterStatus reports the scanout position of the chain's display.
// No real scanout is observable through the backend, so the chain always
// reports the start of the vertical blank.
func (sc *SwapChain) RasterStatus() (d3d9types.RasterStatus, error) {
	return d3d9types.RasterStatus{InVBlank: true, ScanLine: 0}, nil
}

// DisplayMode describes the display the chain presents to, derived from
// the chain's own extent and format.
func (sc *SwapChain) DisplayMode() (d3d9types.DisplayMode, error) {
	desc := sc.chain.Desc()
	return d3d9types.DisplayMode{
		Width:       desc.Width,
		Height:      desc.Height,
		RefreshRate: sc.params.FullScreenRefreshRateInHz,
		Format:      fmtconv.ToLegacy(desc.Format),
	}, nil
}

// destroy releases the native chain.
func (sc *SwapChain) destroy() {
	sc.chain.Destroy()
}
