package software

import (
	"fmt"

	"github.com/Fraxinus001/d3d9-to-11/backend"
	"github.com/Fraxinus001/d3d9-to-11/internal/fmtconv"
)

// Context is the CPU implementation of backend.Context.
//
// Besides the interface it exposes the currently bound output-merger state,
// which the test suite inspects to verify binding synchronization.
type Context struct {
	device *Device

	targets     [backend.MaxRenderTargets]backend.RenderTargetView
	targetCount uint32
	depth       backend.DepthStencilView
}

// Map grants CPU access to one mip level.
func (c *Context) Map(tex backend.Texture2D, subresource uint32, mode backend.MapMode, flags backend.MapFlags) (backend.Mapped, error) {
	t, err := asTexture(tex)
	if err != nil {
		return backend.Mapped{}, err
	}
	if subresource >= uint32(len(t.levels)) {
		return backend.Mapped{}, fmt.Errorf("%w: subresource %d of %d", backend.ErrOutOfRange, subresource, len(t.levels))
	}

	var need backend.CPUAccess
	switch mode {
	case backend.MapRead:
		need = backend.CPUAccessRead
	case backend.MapWrite, backend.MapWriteDiscard, backend.MapWriteNoOverwrite:
		need = backend.CPUAccessWrite
	case backend.MapReadWrite:
		need = backend.CPUAccessRead | backend.CPUAccessWrite
	default:
		return backend.Mapped{}, fmt.Errorf("%w: map mode %d", backend.ErrUnsupported, mode)
	}
	if !t.desc.CPUAccess.Contains(need) {
		return backend.Mapped{}, fmt.Errorf("%w: mode %d on %v texture", backend.ErrBadAccess, mode, t.desc.Usage)
	}

	if c.device.isBusy() && flags&backend.MapDoNotWait != 0 {
		return backend.Mapped{}, backend.ErrStillDrawing
	}

	if t.mapped[subresource] {
		return backend.Mapped{}, fmt.Errorf("%w: subresource %d is already mapped", backend.ErrUnsupported, subresource)
	}
	t.mapped[subresource] = true

	if mode == backend.MapWriteDiscard {
		clear(t.levels[subresource])
	}

	return backend.Mapped{
		Pitch: t.pitches[subresource],
		Bits:  t.levels[subresource],
	}, nil
}

// Unmap ends CPU access to one mip level. Unmapping a subresource that is
// not mapped is a no-op.
func (c *Context) Unmap(tex backend.Texture2D, subresource uint32) {
	t, ok := tex.(*texture)
	if !ok || t.destroyed || subresource >= uint32(len(t.mapped)) {
		return
	}
	t.mapped[subresource] = false
}

// CopyRegion copies texels between two subresources.
func (c *Context) CopyRegion(dst backend.Texture2D, dstSubresource, dstX, dstY uint32, src backend.Texture2D, srcSubresource uint32, box *backend.Box) error {
	d, err := asTexture(dst)
	if err != nil {
		return err
	}
	s, err := asTexture(src)
	if err != nil {
		return err
	}
	if dstSubresource >= uint32(len(d.levels)) || srcSubresource >= uint32(len(s.levels)) {
		return fmt.Errorf("%w: copy subresource", backend.ErrOutOfRange)
	}

	srcW, srcH := mipExtent(s.desc.Width, s.desc.Height, srcSubresource)
	b := backend.Box{Right: srcW, Bottom: srcH}
	if box != nil {
		b = *box
	}
	if b.Right <= b.Left || b.Bottom <= b.Top || b.Right > srcW || b.Bottom > srcH {
		return fmt.Errorf("%w: copy box", backend.ErrOutOfRange)
	}

	dstW, dstH := mipExtent(d.desc.Width, d.desc.Height, dstSubresource)
	w, h := b.Right-b.Left, b.Bottom-b.Top
	if dstX+w > dstW || dstY+h > dstH {
		return fmt.Errorf("%w: copy destination", backend.ErrOutOfRange)
	}

	bpp := fmtconv.BytesPerPixel(s.desc.Format)
	if bpp == 0 || bpp != fmtconv.BytesPerPixel(d.desc.Format) {
		return fmt.Errorf("%w: copy between incompatible formats %v and %v",
			backend.ErrUnsupported, s.desc.Format, d.desc.Format)
	}

	srcPitch := s.pitches[srcSubresource]
	dstPitch := d.pitches[dstSubresource]
	rowBytes := int(w * bpp)
	for row := uint32(0); row < h; row++ {
		srcOff := int(b.Top+row)*srcPitch + int(b.Left*bpp)
		dstOff := int(dstY+row)*dstPitch + int(dstX*bpp)
		copy(d.levels[dstSubresource][dstOff:dstOff+rowBytes], s.levels[srcSubresource][srcOff:srcOff+rowBytes])
	}
	return nil
}

// SetRenderTargets records the output-merger binding.
func (c *Context) SetRenderTargets(views [backend.MaxRenderTargets]backend.RenderTargetView, count uint32, depth backend.DepthStencilView) {
	c.targets = views
	c.targetCount = count
	c.depth = depth
}

// BoundRenderTargets returns the last synchronized color bindings.
func (c *Context) BoundRenderTargets() ([backend.MaxRenderTargets]backend.RenderTargetView, uint32) {
	return c.targets, c.targetCount
}

// BoundDepthStencil returns the last synchronized depth binding.
func (c *Context) BoundDepthStencil() backend.DepthStencilView {
	return c.depth
}
