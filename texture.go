package d3d9to11

import (
	"github.com/Fraxinus001/d3d9-to-11/backend"
	"github.com/Fraxinus001/d3d9-to-11/d3d9types"
)

// Texture is a shader-bindable chain of mip levels.
type Texture struct {
	Resource
	image  backend.Texture2D
	levels uint32
}

// LevelCount returns the number of mip levels in the chain.
func (t *Texture) LevelCount() uint32 { return t.levels }

// GetSurfaceLevel returns a surface addressing one mip level of the
// texture. The surface shares the texture's storage.
func (t *Texture) GetSurfaceLevel(level uint32) (*Surface, error) {
	if level >= t.levels {
		Logger().Warn("texture mip level out of bounds", "level", level, "levels", t.levels)
		return nil, ErrInvalidCall
	}
	return newSurface(t.device, t.image, t.usage, t.pool, subresourceRole{level: level}), nil
}

// LevelDesc describes one mip level of the texture.
func (t *Texture) LevelDesc(level uint32) (d3d9types.SurfaceDesc, error) {
	s, err := t.GetSurfaceLevel(level)
	if err != nil {
		return d3d9types.SurfaceDesc{}, err
	}
	return s.Desc(), nil
}

// LockRect grants CPU access to one mip level of the texture.
//
// Textures in the managed pool map with discard semantics: locking for
// reading returns whatever the discarded storage holds, not the texels
// last uploaded.
func (t *Texture) LockRect(level uint32, region *d3d9types.Rect, flags d3d9types.Lock) (d3d9types.LockedRect, error) {
	if level >= t.levels {
		return d3d9types.LockedRect{}, ErrInvalidCall
	}
	if flags.Contains(d3d9types.LockReadOnly) && t.pool == d3d9types.PoolManaged {
		Logger().Warn("reading back a managed texture through a lock might not return its contents")
	}

	s := newSurface(t.device, t.image, t.usage, t.pool, subresourceRole{level: level})
	return s.LockRect(region, flags)
}

// UnlockRect ends CPU access to one mip level of the texture.
func (t *Texture) UnlockRect(level uint32) error {
	if level >= t.levels {
		return ErrInvalidCall
	}
	t.context().Unmap(t.image, level)
	return nil
}

// SetLOD clamps the most detailed mip level used for sampling.
func (t *Texture) SetLOD(uint32) {
	unimplemented("Texture.SetLOD")
}

// GetLOD returns the current sampling clamp.
func (t *Texture) GetLOD() {
	unimplemented("Texture.GetLOD")
}

// SetAutoGenFilterType selects the filter for automatic mip generation.
func (t *Texture) SetAutoGenFilterType(uint32) {
	unimplemented("Texture.SetAutoGenFilterType")
}

// GetAutoGenFilterType returns the automatic mip generation filter.
func (t *Texture) GetAutoGenFilterType() {
	unimplemented("Texture.GetAutoGenFilterType")
}

// GenerateMipSubLevels regenerates the mip chain from the top level.
func (t *Texture) GenerateMipSubLevels() {
	unimplemented("Texture.GenerateMipSubLevels")
}

// AddDirtyRect marks a region of the top level as modified.
func (t *Texture) AddDirtyRect(*d3d9types.Rect) {
	unimplemented("Texture.AddDirtyRect")
}
