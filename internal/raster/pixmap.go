// Package raster is a small software renderer for filled discs.
//
// Pixels are stored as premultiplied RGBA, 4 bytes per pixel, which is the
// layout of image.RGBA and of ebiten's WritePixels. Disc coverage is computed
// with golang.org/x/image/vector and composited with source-over or plus.
package raster

import (
	"image"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/vector"
)

// Color is an 8-bit RGB color with a float alpha in [0, 1].
type Color struct {
	R, G, B uint8
	A       float64
}

// Pixmap is a premultiplied RGBA pixel buffer.
type Pixmap struct {
	width  int
	height int
	data   []uint8

	rast    *vector.Rasterizer
	maskBuf []uint8
}

// NewPixmap creates a transparent pixmap. Negative dimensions are treated
// as zero.
func NewPixmap(width, height int) *Pixmap {
	width, height = max(width, 0), max(height, 0)
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw premultiplied RGBA bytes.
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// Bounds returns the pixmap rectangle.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// Resize changes the dimensions and clears the contents. The buffer is
// reallocated only when the size changes.
func (p *Pixmap) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if width == p.width && height == p.height {
		p.Clear()
		return
	}
	p.width = width
	p.height = height
	p.data = make([]uint8, width*height*4)
}

// Clear makes every pixel transparent.
func (p *Pixmap) Clear() {
	clear(p.data)
}

// ClearRect makes the pixels inside r transparent. r is clipped to the pixmap.
func (p *Pixmap) ClearRect(r image.Rectangle) {
	r = r.Intersect(p.Bounds())
	if r.Empty() {
		return
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := y * p.width
		clear(p.data[(row+r.Min.X)*4 : (row+r.Max.X)*4])
	}
}

// Pixel returns the premultiplied channels at (x, y). Out of range
// coordinates return transparent black.
func (p *Pixmap) Pixel(x, y int) (r, g, b, a uint8) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return 0, 0, 0, 0
	}
	i := (y*p.width + x) * 4
	return p.data[i], p.data[i+1], p.data[i+2], p.data[i+3]
}

// Image returns an image.RGBA that shares the pixmap's memory.
// The view is invalidated by Resize.
func (p *Pixmap) Image() *image.RGBA {
	return &image.RGBA{
		Pix:    p.data,
		Stride: p.width * 4,
		Rect:   p.Bounds(),
	}
}

// EncodePNG writes the pixmap as PNG.
func (p *Pixmap) EncodePNG(w io.Writer) error {
	return png.Encode(w, p.Image())
}

// circleKappa places cubic control points for a quarter circle.
const circleKappa = 0.5522847498

// FillCircle composites an anti-aliased disc of radius r centred on
// (cx, cy) using mode. Parts outside the pixmap are discarded.
func (p *Pixmap) FillCircle(cx, cy, r float64, c Color, mode BlendMode) {
	if !(r > 0) || !(c.A > 0) || p.width == 0 || p.height == 0 {
		return
	}
	if math.IsNaN(cx) || math.IsNaN(cy) || math.IsInf(cx, 0) || math.IsInf(cy, 0) || math.IsInf(r, 0) {
		return
	}

	box := image.Rect(
		int(math.Floor(cx-r)), int(math.Floor(cy-r)),
		int(math.Ceil(cx+r)), int(math.Ceil(cy+r)),
	)
	if !box.Overlaps(p.Bounds()) {
		return
	}

	mask := p.coverage(cx-float64(box.Min.X), cy-float64(box.Min.Y), r, box.Dx(), box.Dy())
	alpha := min(c.A, 1)
	blend := blendFor(mode)

	clip := box.Intersect(p.Bounds())
	for y := clip.Min.Y; y < clip.Max.Y; y++ {
		mrow := (y - box.Min.Y) * mask.Stride
		for x := clip.Min.X; x < clip.Max.X; x++ {
			m := mask.Pix[mrow+x-box.Min.X]
			if m == 0 {
				continue
			}
			sa := byte(alpha*float64(m) + 0.5)
			if sa == 0 {
				continue
			}
			i := (y*p.width + x) * 4
			d := p.data[i : i+4 : i+4]
			d[0], d[1], d[2], d[3] = blend(
				mulDiv255(c.R, sa), mulDiv255(c.G, sa), mulDiv255(c.B, sa), sa,
				d[0], d[1], d[2], d[3],
			)
		}
	}
}

// coverage rasterizes a disc into a w x h alpha mask whose origin is the
// top-left of the disc's bounding box. The mask is reused between calls.
func (p *Pixmap) coverage(cx, cy, r float64, w, h int) *image.Alpha {
	if p.rast == nil {
		p.rast = vector.NewRasterizer(w, h)
	} else {
		p.rast.Reset(w, h)
	}
	z := p.rast
	z.DrawOp = draw.Src

	n := w * h
	if cap(p.maskBuf) < n {
		p.maskBuf = make([]uint8, n)
	}
	mask := &image.Alpha{Pix: p.maskBuf[:n], Stride: w, Rect: image.Rect(0, 0, w, h)}

	x, y := float32(cx), float32(cy)
	rr := float32(r)
	k := float32(circleKappa * r)

	z.MoveTo(x+rr, y)
	z.CubeTo(x+rr, y+k, x+k, y+rr, x, y+rr)
	z.CubeTo(x-k, y+rr, x-rr, y+k, x-rr, y)
	z.CubeTo(x-rr, y-k, x-k, y-rr, x, y-rr)
	z.CubeTo(x+k, y-rr, x+rr, y-k, x+rr, y)
	z.ClosePath()
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	return mask
}
