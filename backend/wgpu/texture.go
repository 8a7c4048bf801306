package wgpu

import (
	"fmt"
	"unsafe"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/Fraxinus001/d3d9-to-11/backend"
)

// Rows in texture-buffer copies must be aligned to 256 bytes.
const copyPitchAlignment = 256

// alignPitch rounds a row pitch up to the copy alignment.
func alignPitch(pitch uint32) uint32 {
	return (pitch + copyPitchAlignment - 1) &^ uint32(copyPitchAlignment-1)
}

// stripPitchPadding copies rows of pitch bytes out of a staging buffer
// whose rows are alignedPitch bytes apart.
func stripPitchPadding(dst, src []byte, pitch, alignedPitch, rows uint32) {
	if alignedPitch == pitch {
		copy(dst, src[:uint64(pitch)*uint64(rows)])
		return
	}
	for row := uint32(0); row < rows; row++ {
		copy(dst[row*pitch:], src[row*alignedPitch:row*alignedPitch+pitch])
	}
}

// mapState tracks the active map mode of one subresource.
type mapState int

const (
	mapNone mapState = iota
	mapForRead
	mapForWrite
)

// texture is a GPU 2D image with a CPU shadow copy per mip level.
type texture struct {
	device *Device
	hal    hal.Texture
	desc   backend.Texture2DDescriptor

	shadow  [][]byte
	pitches []int
	mapped  []mapState

	destroyed bool
}

// Desc returns the descriptor the texture was created with.
func (t *texture) Desc() backend.Texture2DDescriptor { return t.desc }

// Destroy releases the GPU texture and the shadow storage.
func (t *texture) Destroy() {
	if t.destroyed {
		return
	}
	t.destroyed = true
	t.device.dev.DestroyTexture(t.hal)
	t.shadow = nil
}

// asTexture rejects textures that did not come from this backend.
func asTexture(tex backend.Texture2D) (*texture, error) {
	t, ok := tex.(*texture)
	if !ok {
		return nil, fmt.Errorf("%w: foreign texture %T", backend.ErrUnsupported, tex)
	}
	if t.destroyed {
		return nil, fmt.Errorf("%w: texture has been destroyed", backend.ErrUnsupported)
	}
	return t, nil
}

// upload pushes the shadow copy of one mip level to the GPU.
func (t *texture) upload(level uint32) {
	w, h := mipExtent(t.desc.Width, t.desc.Height, level)
	t.device.queue.WriteTexture(
		&hal.ImageCopyTexture{
			Texture:  t.hal,
			MipLevel: level,
			Origin:   hal.Origin3D{},
			Aspect:   gputypes.TextureAspectAll,
		},
		t.shadow[level],
		&hal.ImageDataLayout{
			Offset:       0,
			BytesPerRow:  uint32(t.pitches[level]),
			RowsPerImage: h,
		},
		&hal.Extent3D{Width: w, Height: h, DepthOrArrayLayers: 1},
	)
}

// refresh pulls one mip level from the GPU into the shadow copy, going
// through a staging buffer because textures cannot be mapped directly.
func (t *texture) refresh(level uint32) error {
	d := t.device
	w, h := mipExtent(t.desc.Width, t.desc.Height, level)
	pitch := uint32(t.pitches[level])
	alignedPitch := alignPitch(pitch)
	stagingSize := uint64(alignedPitch) * uint64(h)

	staging, err := d.dev.CreateBuffer(&hal.BufferDescriptor{
		Label: "d3d9_readback_staging",
		Size:  stagingSize,
		Usage: gputypes.BufferUsageMapRead | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("create staging buffer: %w", err)
	}
	defer d.dev.DestroyBuffer(staging)

	encoder, err := d.dev.CreateCommandEncoder(&hal.CommandEncoderDescriptor{
		Label: "d3d9_readback",
	})
	if err != nil {
		return fmt.Errorf("create command encoder: %w", err)
	}
	if err := encoder.BeginEncoding("texture_readback"); err != nil {
		return fmt.Errorf("begin encoding: %w", err)
	}

	encoder.CopyTextureToBuffer(t.hal, staging, []hal.BufferTextureCopy{{
		BufferLayout: hal.ImageDataLayout{Offset: 0, BytesPerRow: alignedPitch, RowsPerImage: h},
		TextureBase:  hal.ImageCopyTexture{Texture: t.hal, MipLevel: level},
		Size:         hal.Extent3D{Width: w, Height: h, DepthOrArrayLayers: 1},
	}})

	cmdBuf, err := encoder.EndEncoding()
	if err != nil {
		return fmt.Errorf("end encoding: %w", err)
	}
	defer d.dev.FreeCommandBuffer(cmdBuf)

	if _, err := d.queue.Submit([]hal.CommandBuffer{cmdBuf}); err != nil {
		return fmt.Errorf("submit: %w", err)
	}
	// The queue synchronizes its own submissions; the staging buffer is
	// safe to map once the device has drained.
	if err := d.dev.WaitIdle(); err != nil {
		return fmt.Errorf("wait for readback: %w", err)
	}

	mapping, err := d.dev.MapBuffer(staging, 0, stagingSize)
	if err != nil {
		return fmt.Errorf("map staging buffer: %w", err)
	}
	readback := unsafe.Slice((*byte)(mapping.Ptr), stagingSize)
	stripPitchPadding(t.shadow[level], readback, pitch, alignedPitch, h)
	if err := d.dev.UnmapBuffer(staging); err != nil {
		return fmt.Errorf("unmap staging buffer: %w", err)
	}
	return nil
}

// renderTargetView is a color-target view over mip 0.
type renderTargetView struct {
	device    *Device
	tex       *texture
	view      hal.TextureView
	destroyed bool
}

func (v *renderTargetView) Texture() backend.Texture2D { return v.tex }

func (v *renderTargetView) Destroy() {
	if v.destroyed {
		return
	}
	v.destroyed = true
	v.device.dev.DestroyTextureView(v.view)
}

// depthStencilView is a depth/stencil view over mip 0.
type depthStencilView struct {
	device    *Device
	tex       *texture
	view      hal.TextureView
	destroyed bool
}

func (v *depthStencilView) Texture() backend.Texture2D { return v.tex }

func (v *depthStencilView) Destroy() {
	if v.destroyed {
		return
	}
	v.destroyed = true
	v.device.dev.DestroyTextureView(v.view)
}
