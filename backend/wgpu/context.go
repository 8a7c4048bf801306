package wgpu

import (
	"fmt"

	"github.com/Fraxinus001/d3d9-to-11/backend"
	"github.com/Fraxinus001/d3d9-to-11/internal/fmtconv"
)

// Context is the immediate context of a Device.
//
// The HAL queue completes submitted work before returning from fence
// waits, so maps never observe the GPU still drawing and the do-not-wait
// flag has nothing to fail on.
type Context struct {
	device *Device

	targets     [backend.MaxRenderTargets]backend.RenderTargetView
	targetCount uint32
	depth       backend.DepthStencilView
}

// Map grants CPU access to one mip level through its shadow copy.
// Read modes refresh the shadow copy from the GPU first; discard maps
// clear it.
func (c *Context) Map(tex backend.Texture2D, subresource uint32, mode backend.MapMode, flags backend.MapFlags) (backend.Mapped, error) {
	_ = flags

	t, err := asTexture(tex)
	if err != nil {
		return backend.Mapped{}, err
	}
	if subresource >= uint32(len(t.shadow)) {
		return backend.Mapped{}, fmt.Errorf("%w: subresource %d of %d", backend.ErrOutOfRange, subresource, len(t.shadow))
	}

	var state mapState
	switch mode {
	case backend.MapRead:
		if !t.desc.CPUAccess.Contains(backend.CPUAccessRead) {
			return backend.Mapped{}, fmt.Errorf("%w: read map on %v texture", backend.ErrBadAccess, t.desc.Usage)
		}
		state = mapForRead
	case backend.MapWrite, backend.MapWriteDiscard, backend.MapWriteNoOverwrite:
		if !t.desc.CPUAccess.Contains(backend.CPUAccessWrite) {
			return backend.Mapped{}, fmt.Errorf("%w: write map on %v texture", backend.ErrBadAccess, t.desc.Usage)
		}
		state = mapForWrite
	case backend.MapReadWrite:
		if !t.desc.CPUAccess.Contains(backend.CPUAccessRead | backend.CPUAccessWrite) {
			return backend.Mapped{}, fmt.Errorf("%w: read-write map on %v texture", backend.ErrBadAccess, t.desc.Usage)
		}
		state = mapForWrite
	default:
		return backend.Mapped{}, fmt.Errorf("%w: map mode %d", backend.ErrUnsupported, mode)
	}

	if t.mapped[subresource] != mapNone {
		return backend.Mapped{}, fmt.Errorf("%w: subresource %d is already mapped", backend.ErrUnsupported, subresource)
	}

	switch mode {
	case backend.MapWriteDiscard:
		clear(t.shadow[subresource])
	case backend.MapRead, backend.MapReadWrite:
		if err := t.refresh(subresource); err != nil {
			return backend.Mapped{}, err
		}
	}

	t.mapped[subresource] = state
	return backend.Mapped{
		Pitch: t.pitches[subresource],
		Bits:  t.shadow[subresource],
	}, nil
}

// Unmap ends CPU access to one mip level, uploading the shadow copy when
// the map could have written to it. Unmapping an unmapped subresource is
// a no-op.
func (c *Context) Unmap(tex backend.Texture2D, subresource uint32) {
	t, ok := tex.(*texture)
	if !ok || t.destroyed || subresource >= uint32(len(t.mapped)) {
		return
	}
	state := t.mapped[subresource]
	t.mapped[subresource] = mapNone
	if state == mapForWrite {
		t.upload(subresource)
	}
}

// CopyRegion copies texels between two subresources. The copy runs through
// the shadow copies: the source is refreshed from the GPU, rows are moved
// on the CPU, and the destination is uploaded again.
func (c *Context) CopyRegion(dst backend.Texture2D, dstSubresource, dstX, dstY uint32, src backend.Texture2D, srcSubresource uint32, box *backend.Box) error {
	d, err := asTexture(dst)
	if err != nil {
		return err
	}
	s, err := asTexture(src)
	if err != nil {
		return err
	}
	if dstSubresource >= uint32(len(d.shadow)) || srcSubresource >= uint32(len(s.shadow)) {
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

	if err := s.refresh(srcSubresource); err != nil {
		return err
	}
	if err := d.refresh(dstSubresource); err != nil {
		return err
	}

	srcPitch := s.pitches[srcSubresource]
	dstPitch := d.pitches[dstSubresource]
	rowBytes := int(w * bpp)
	for row := uint32(0); row < h; row++ {
		srcOff := int(b.Top+row)*srcPitch + int(b.Left*bpp)
		dstOff := int(dstY+row)*dstPitch + int(dstX*bpp)
		copy(d.shadow[dstSubresource][dstOff:dstOff+rowBytes], s.shadow[srcSubresource][srcOff:srcOff+rowBytes])
	}

	d.upload(dstSubresource)
	return nil
}

// SetRenderTargets records the output-merger binding. The views are
// consumed when a render pass is encoded against the device.
func (c *Context) SetRenderTargets(views [backend.MaxRenderTargets]backend.RenderTargetView, count uint32, depth backend.DepthStencilView) {
	c.targets = views
	c.targetCount = count
	c.depth = depth
}
