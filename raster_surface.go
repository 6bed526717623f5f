package heart

import (
	"image"
	"io"
	"math"

	"github.com/vitapredict/heart/internal/raster"
)

// RasterSurface is the default software Surface. Drawing coordinates are
// logical units; the backing pixmap holds logical size times pixel ratio.
//
// RasterSurface is NOT safe for concurrent use.
type RasterSurface struct {
	pm     *raster.Pixmap
	scale  float64
	mode   raster.BlendMode
	closed bool
}

// NewRasterSurface creates an empty surface. The Field sizes it on creation.
func NewRasterSurface() *RasterSurface {
	return &RasterSurface{
		pm:    raster.NewPixmap(0, 0),
		scale: 1,
	}
}

// Resize implements Surface.
func (s *RasterSurface) Resize(width, height, pixelRatio float64) error {
	if s.closed {
		return ErrSurfaceClosed
	}
	if !validDimension(width) || !validDimension(height) || !(pixelRatio > 0) || math.IsInf(pixelRatio, 0) {
		return ErrInvalidSize
	}
	s.scale = pixelRatio
	s.pm.Resize(int(width*pixelRatio), int(height*pixelRatio))
	return nil
}

// validDimension reports whether v is a usable, finite, non-negative size.
func validDimension(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0)
}

// ClearRect implements Canvas.
func (s *RasterSurface) ClearRect(x, y, w, h float64) {
	if s.closed {
		return
	}
	r := image.Rect(
		int(math.Floor(x*s.scale)), int(math.Floor(y*s.scale)),
		int(math.Ceil((x+w)*s.scale)), int(math.Ceil((y+h)*s.scale)),
	)
	s.pm.ClearRect(r)
}

// SetBlendMode implements Canvas.
func (s *RasterSurface) SetBlendMode(mode BlendMode) {
	if mode == BlendLighter {
		s.mode = raster.BlendPlus
		return
	}
	s.mode = raster.BlendSourceOver
}

// FillCircle implements Canvas.
func (s *RasterSurface) FillCircle(x, y, r float64, c Color, alpha float64) {
	if s.closed {
		return
	}
	s.pm.FillCircle(x*s.scale, y*s.scale, r*s.scale,
		raster.Color{R: c.R, G: c.G, B: c.B, A: clamp01(alpha)}, s.mode)
}

// Close implements Surface. The pixel buffer is released.
func (s *RasterSurface) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.pm = raster.NewPixmap(0, 0)
	return nil
}

// PixelSize returns the backing store size in pixels.
func (s *RasterSurface) PixelSize() (width, height int) {
	return s.pm.Width(), s.pm.Height()
}

// PixelRatio returns the current backing pixels per logical unit.
func (s *RasterSurface) PixelRatio() float64 {
	return s.scale
}

// Pix returns the premultiplied RGBA bytes of the backing store, suitable
// for uploading to a texture.
func (s *RasterSurface) Pix() []byte {
	return s.pm.Data()
}

// Image returns an image.RGBA view of the backing store. The view is
// invalidated by the next Resize.
func (s *RasterSurface) Image() *image.RGBA {
	return s.pm.Image()
}

// EncodePNG writes the backing store as PNG.
func (s *RasterSurface) EncodePNG(w io.Writer) error {
	return s.pm.EncodePNG(w)
}
