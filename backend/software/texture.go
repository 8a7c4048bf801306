package software

import (
	"fmt"

	"github.com/Fraxinus001/d3d9-to-11/backend"
)

// texture is a CPU 2D image: one byte slice per mip level.
type texture struct {
	desc      backend.Texture2DDescriptor
	levels    [][]byte
	pitches   []int
	mapped    []bool
	destroyed bool
}

// Desc returns the descriptor the texture was created with.
func (t *texture) Desc() backend.Texture2DDescriptor { return t.desc }

// Destroy drops the backing storage.
func (t *texture) Destroy() {
	t.destroyed = true
	t.levels = nil
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

// renderTargetView marks a texture bindable as a color target.
type renderTargetView struct {
	tex       *texture
	destroyed bool
}

func (v *renderTargetView) Texture() backend.Texture2D { return v.tex }
func (v *renderTargetView) Destroy()                   { v.destroyed = true }

// depthStencilView marks a texture bindable as a depth/stencil target.
type depthStencilView struct {
	tex       *texture
	destroyed bool
}

func (v *depthStencilView) Texture() backend.Texture2D { return v.tex }
func (v *depthStencilView) Destroy()                   { v.destroyed = true }
