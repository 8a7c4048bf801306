package d3d9to11

import (
	"image"

	xdraw "golang.org/x/image/draw"

	"github.com/Fraxinus001/d3d9-to-11/d3d9types"
)

// UploadImage copies img into the surface through the lock protocol,
// scaling it to the surface's extent when the sizes differ. The surface
// must use an 8-bit RGBA or BGRA format and live in a lockable pool.
func UploadImage(s *Surface, img image.Image) error {
	if s == nil || img == nil {
		return ErrInvalidCall
	}
	desc := s.Desc()
	bgra, ok := channelOrder(desc.Format)
	if !ok {
		Logger().Warn("cannot upload image to surface format", "format", desc.Format)
		return ErrInvalidCall
	}

	dst := image.NewRGBA(image.Rect(0, 0, int(desc.Width), int(desc.Height)))
	if img.Bounds().Dx() == int(desc.Width) && img.Bounds().Dy() == int(desc.Height) {
		xdraw.Draw(dst, dst.Bounds(), img, img.Bounds().Min, xdraw.Src)
	} else {
		xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	}

	lr, err := s.LockRect(nil, 0)
	if err != nil {
		return err
	}
	defer s.UnlockRect()

	rowBytes := int(desc.Width) * 4
	for y := 0; y < int(desc.Height); y++ {
		src := dst.Pix[y*dst.Stride : y*dst.Stride+rowBytes]
		row := lr.Bits[y*int(lr.Pitch) : y*int(lr.Pitch)+rowBytes]
		copy(row, src)
		if bgra {
			swapRB(row)
		}
	}
	return nil
}

// ReadImage returns the surface contents as an RGBA image, read through
// the lock protocol. The surface must use an 8-bit RGBA or BGRA format
// and grant read access.
func ReadImage(s *Surface) (*image.RGBA, error) {
	if s == nil {
		return nil, ErrInvalidCall
	}
	desc := s.Desc()
	bgra, ok := channelOrder(desc.Format)
	if !ok {
		Logger().Warn("cannot read image from surface format", "format", desc.Format)
		return nil, ErrInvalidCall
	}

	lr, err := s.LockRect(nil, d3d9types.LockReadOnly)
	if err != nil {
		return nil, err
	}
	defer s.UnlockRect()

	img := image.NewRGBA(image.Rect(0, 0, int(desc.Width), int(desc.Height)))
	rowBytes := int(desc.Width) * 4
	for y := 0; y < int(desc.Height); y++ {
		src := lr.Bits[y*int(lr.Pitch) : y*int(lr.Pitch)+rowBytes]
		row := img.Pix[y*img.Stride : y*img.Stride+rowBytes]
		copy(row, src)
		if bgra {
			swapRB(row)
		}
	}
	return img, nil
}

// channelOrder reports whether a format stores blue first, and whether it
// is an 8-bit four-channel format at all.
func channelOrder(f d3d9types.Format) (bgra, ok bool) {
	switch f {
	case d3d9types.FormatA8R8G8B8, d3d9types.FormatX8R8G8B8:
		return true, true
	case d3d9types.FormatA8B8G8R8, d3d9types.FormatX8B8G8R8:
		return false, true
	default:
		return false, false
	}
}

// swapRB exchanges the first and third channel of every pixel in a row.
func swapRB(row []byte) {
	for i := 0; i+3 < len(row); i += 4 {
		row[i], row[i+2] = row[i+2], row[i]
	}
}
