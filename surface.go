package d3d9to11

import (
	"errors"

	"github.com/Fraxinus001/d3d9-to-11/backend"
	"github.com/Fraxinus001/d3d9-to-11/d3d9types"
	"github.com/Fraxinus001/d3d9-to-11/internal/fmtconv"
)

// surfaceRole describes what a surface is, beyond its pixels: a plain
// image, a color target owning a render-target view, a depth/stencil
// buffer owning its view, or one mip level of a texture.
type surfaceRole interface {
	isSurfaceRole()
}

type plainRole struct{}

type renderTargetRole struct {
	view backend.RenderTargetView
}

type depthStencilRole struct {
	view backend.DepthStencilView
}

type subresourceRole struct {
	level uint32
}

func (plainRole) isSurfaceRole()        {}
func (renderTargetRole) isSurfaceRole() {}
func (depthStencilRole) isSurfaceRole() {}
func (subresourceRole) isSurfaceRole()  {}

// Surface is a single 2D array of pixels. It either owns its native image
// outright or addresses one mip level of a texture's image.
type Surface struct {
	Resource
	image  backend.Texture2D
	role   surfaceRole
	locked bool
}

func newSurface(dev *Device, image backend.Texture2D, usage d3d9types.Usage, pool d3d9types.Pool, role surfaceRole) *Surface {
	s := &Surface{
		Resource: newResource(dev, usage, pool, d3d9types.ResourceSurface),
		image:    image,
		role:     role,
	}
	return s
}

// RenderTargetView returns the color-target view if this surface is a
// render target.
func (s *Surface) RenderTargetView() (backend.RenderTargetView, bool) {
	r, ok := s.role.(renderTargetRole)
	if !ok {
		return nil, false
	}
	return r.view, true
}

// DepthStencilView returns the depth/stencil view if this surface is a
// depth/stencil buffer.
func (s *Surface) DepthStencilView() (backend.DepthStencilView, bool) {
	r, ok := s.role.(depthStencilRole)
	if !ok {
		return nil, false
	}
	return r.view, true
}

// subresource returns the native image this surface addresses and the
// subresource index within it.
func (s *Surface) subresource() (backend.Texture2D, uint32) {
	if r, ok := s.role.(subresourceRole); ok {
		return s.image, r.level
	}
	return s.image, 0
}

// Desc describes the surface as legacy callers observe it.
func (s *Surface) Desc() d3d9types.SurfaceDesc {
	nd := s.image.Desc()
	w, h := nd.Width, nd.Height
	if r, ok := s.role.(subresourceRole); ok {
		w, h = mipExtent(w, h, r.level)
	}
	ms, q := fmtconv.LegacySamples(nd.SampleCount)
	return d3d9types.SurfaceDesc{
		Format:             fmtconv.ToLegacy(nd.Format),
		Type:               d3d9types.ResourceSurface,
		Usage:              s.usage,
		Pool:               s.pool,
		MultiSampleType:    ms,
		MultiSampleQuality: q,
		Width:              w,
		Height:             h,
	}
}

// LockRect grants CPU access to the surface's pixels.
//
// The whole surface is mapped even when a region is given; the region only
// expresses the caller's intent and is not tracked. Locking a surface in
// the default pool is an invalid call. With LockDoNotWait, a lock that
// would have to wait for the GPU fails with ErrWasStillDrawing.
func (s *Surface) LockRect(region *d3d9types.Rect, flags d3d9types.Lock) (d3d9types.LockedRect, error) {
	_ = region

	mode, mf, err := mapModeForLock(s.pool, flags)
	if err != nil {
		return d3d9types.LockedRect{}, err
	}

	image, sub := s.subresource()
	mapped, err := s.context().Map(image, sub, mode, mf)
	if err != nil {
		if errors.Is(err, backend.ErrStillDrawing) {
			return d3d9types.LockedRect{}, ErrWasStillDrawing
		}
		return d3d9types.LockedRect{}, driverErr("failed to map surface", err)
	}

	s.locked = true
	return d3d9types.LockedRect{
		Pitch: int32(mapped.Pitch),
		Bits:  mapped.Bits,
	}, nil
}

// UnlockRect ends CPU access started by LockRect. Unlocking a surface that
// is not locked is a no-op. Lock state is tracked per surface: a lock taken
// through one surface cannot be released through another surface over the
// same subresource.
func (s *Surface) UnlockRect() error {
	if !s.locked {
		return nil
	}
	image, sub := s.subresource()
	s.context().Unmap(image, sub)
	s.locked = false
	return nil
}

// GetContainer returns the object owning this surface.
func (s *Surface) GetContainer() {
	unimplemented("Surface.GetContainer")
}

// GetDC creates a GDI device context over the surface.
func (s *Surface) GetDC() {
	unimplemented("Surface.GetDC")
}

// ReleaseDC releases a GDI device context.
func (s *Surface) ReleaseDC() {
	unimplemented("Surface.ReleaseDC")
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
