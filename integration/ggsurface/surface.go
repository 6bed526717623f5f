// Copyright 2026 The heartfield Authors
// SPDX-License-Identifier: MIT

package ggsurface

import (
	"fmt"
	"image"
	"io"
	"math"

	"github.com/gogpu/gg"

	"github.com/vitapredict/heart"
)

// Surface wraps gg.Context as a heart.Surface. Drawing coordinates are
// logical units; the context is scaled by the pixel ratio.
//
// Surface is NOT safe for concurrent use. Create one Surface per Field.
type Surface struct {
	ctx     *gg.Context
	width   int // pixels
	height  int // pixels
	ratio   float64
	layered bool // a screen layer is open
	dirty   bool
	closed  bool
}

var _ heart.Surface = (*Surface)(nil)

// New creates an unsized Surface. The Field sizes it on creation.
func New() *Surface {
	return &Surface{ratio: 1}
}

// Factory returns a heart.WithSurfaceFactory argument that hands out s.
func (s *Surface) Factory() func() (heart.Surface, error) {
	return func() (heart.Surface, error) {
		if s.closed {
			return nil, heart.ErrSurfaceClosed
		}
		return s, nil
	}
}

// Context returns the gg drawing context, or nil while the surface is
// unsized or closed. Callers may draw over the particles between frames.
func (s *Surface) Context() *gg.Context {
	if s.closed || s.width == 0 {
		return nil
	}
	return s.ctx
}

// PixelSize returns the context size in pixels.
func (s *Surface) PixelSize() (width, height int) {
	return s.width, s.height
}

// PixelRatio returns the scale applied to logical coordinates.
func (s *Surface) PixelRatio() float64 {
	return s.ratio
}

// IsDirty reports whether anything was drawn since the last MarkClean.
func (s *Surface) IsDirty() bool {
	return s.dirty
}

// MarkClean resets the dirty flag, typically after presenting a frame.
func (s *Surface) MarkClean() {
	s.dirty = false
}

// Resize implements heart.Surface. A zero pixel size is accepted; drawing
// is ignored until the next usable size since gg contexts cannot be empty.
func (s *Surface) Resize(width, height, pixelRatio float64) error {
	if s.closed {
		return heart.ErrSurfaceClosed
	}
	if !finiteNonNegative(width) || !finiteNonNegative(height) ||
		!(pixelRatio > 0) || math.IsInf(pixelRatio, 0) {
		return fmt.Errorf("%w: width=%v, height=%v, ratio=%v", heart.ErrInvalidSize, width, height, pixelRatio)
	}

	s.closeLayer()
	s.ratio = pixelRatio
	pw, ph := int(width*pixelRatio), int(height*pixelRatio)
	if pw <= 0 || ph <= 0 {
		s.width, s.height = 0, 0
		return nil
	}

	if s.ctx == nil {
		s.ctx = gg.NewContext(pw, ph)
	} else if err := s.ctx.Resize(pw, ph); err != nil {
		return fmt.Errorf("ggsurface: context resize failed: %w", err)
	}
	s.ctx.Clear()
	s.ctx.Identity()
	s.ctx.Scale(pixelRatio, pixelRatio)

	s.width, s.height = pw, ph
	s.dirty = true
	return nil
}

func finiteNonNegative(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0)
}

// drawable reports whether drawing calls reach the context.
func (s *Surface) drawable() bool {
	return !s.closed && s.ctx != nil && s.width > 0 && s.height > 0
}

// ClearRect implements heart.Canvas.
func (s *Surface) ClearRect(x, y, w, h float64) {
	if !s.drawable() {
		return
	}
	r := image.Rect(
		int(math.Floor(x*s.ratio)), int(math.Floor(y*s.ratio)),
		int(math.Ceil((x+w)*s.ratio)), int(math.Ceil((y+h)*s.ratio)),
	)
	bounds := image.Rect(0, 0, s.width, s.height)
	r = r.Intersect(bounds)
	switch {
	case r.Empty():
		return
	case r == bounds:
		s.ctx.Clear()
	default:
		for py := r.Min.Y; py < r.Max.Y; py++ {
			for px := r.Min.X; px < r.Max.X; px++ {
				s.ctx.SetPixel(px, py, gg.Transparent)
			}
		}
	}
	s.dirty = true
}

// SetBlendMode implements heart.Canvas. Lighter opens a screen-blended layer
// that is composited when normal mode returns.
func (s *Surface) SetBlendMode(mode heart.BlendMode) {
	if !s.drawable() {
		return
	}
	if mode == heart.BlendLighter {
		if !s.layered {
			s.ctx.PushLayer(gg.BlendScreen, 1)
			s.layered = true
		}
		return
	}
	s.closeLayer()
}

// closeLayer composites an open lighter layer.
func (s *Surface) closeLayer() {
	if !s.layered {
		return
	}
	s.layered = false
	if s.ctx != nil {
		s.ctx.PopLayer()
		s.dirty = true
	}
}

// FillCircle implements heart.Canvas.
func (s *Surface) FillCircle(x, y, r float64, c heart.Color, alpha float64) {
	if !s.drawable() || !(r > 0) || !(alpha > 0) {
		return
	}
	s.ctx.SetRGBA(float64(c.R)/255, float64(c.G)/255, float64(c.B)/255, min(alpha, 1))
	s.ctx.DrawCircle(x, y, r)
	if err := s.ctx.Fill(); err != nil {
		heart.Logger().Debug("ggsurface: fill failed", "err", err)
		return
	}
	s.dirty = true
}

// Image returns the current frame, or nil while unsized or closed.
// Any open lighter layer is composited first.
func (s *Surface) Image() image.Image {
	if !s.drawable() {
		return nil
	}
	s.closeLayer()
	return s.ctx.Image()
}

// EncodePNG writes the current frame as PNG.
func (s *Surface) EncodePNG(w io.Writer) error {
	if s.closed {
		return heart.ErrSurfaceClosed
	}
	if !s.drawable() {
		return fmt.Errorf("%w: nothing to encode at %dx%d", heart.ErrInvalidSize, s.width, s.height)
	}
	s.closeLayer()
	return s.ctx.EncodePNG(w)
}

// SavePNG writes the current frame to a PNG file.
func (s *Surface) SavePNG(path string) error {
	if s.closed {
		return heart.ErrSurfaceClosed
	}
	if !s.drawable() {
		return fmt.Errorf("%w: nothing to save at %dx%d", heart.ErrInvalidSize, s.width, s.height)
	}
	s.closeLayer()
	return s.ctx.SavePNG(path)
}

// Close implements heart.Surface. Close is idempotent.
func (s *Surface) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.layered = false
	if s.ctx != nil {
		err := s.ctx.Close()
		s.ctx = nil
		if err != nil {
			return fmt.Errorf("ggsurface: close context: %w", err)
		}
	}
	return nil
}
