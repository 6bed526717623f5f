package headless

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/draw"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/vitapredict/heart"
)

// ErrNoFrame is returned when the field's surface has no readable image.
var ErrNoFrame = errors.New("headless: surface has no readable frame")

// ExportOptions controls how a frame is flattened for export.
type ExportOptions struct {
	// Background is drawn under the particles. Nil keeps transparency.
	Background color.Color

	// Caption is drawn centred near the bottom edge when non-empty.
	Caption string

	// CaptionSize is the caption size in pixels. Zero selects 14.
	CaptionSize float64

	// CaptionColor defaults to heart.PrimaryRed.
	CaptionColor color.Color
}

// imageSource is satisfied by surfaces that expose their frame.
type imageSource interface {
	Image() image.Image
}

// frameOf returns the current image of a field's surface.
func frameOf(f *heart.Field) (image.Image, error) {
	if f == nil || f.Disposed() {
		return nil, ErrNoFrame
	}
	var img image.Image
	switch s := f.Surface().(type) {
	case *heart.RasterSurface:
		img = s.Image()
	case imageSource:
		img = s.Image()
	}
	if img == nil || img.Bounds().Empty() {
		return nil, ErrNoFrame
	}
	return img, nil
}

// Snapshot flattens the field's current frame onto opts.Background and
// draws the caption, if any.
func Snapshot(f *heart.Field, opts ExportOptions) (*image.RGBA, error) {
	src, err := frameOf(f)
	if err != nil {
		return nil, err
	}
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	if opts.Background != nil {
		draw.Draw(dst, dst.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)
	}
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Over)

	if opts.Caption == "" {
		return dst, nil
	}
	return drawCaption(dst, opts)
}

// drawCaption renders opts.Caption over img with gg's text pipeline.
func drawCaption(img *image.RGBA, opts ExportOptions) (*image.RGBA, error) {
	source, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("headless: load caption font: %w", err)
	}
	defer source.Close()

	size := opts.CaptionSize
	if size <= 0 {
		size = 14
	}
	col := opts.CaptionColor
	if col == nil {
		col = heart.PrimaryRed.NRGBA(1)
	}

	dc := gg.NewContextForImage(img)
	defer dc.Close()
	dc.SetFont(source.Face(size))
	dc.SetColor(col)
	w, h := float64(dc.Width()), float64(dc.Height())
	dc.DrawStringAnchored(opts.Caption, w/2, h-size, 0.5, 0)

	out := image.NewRGBA(img.Bounds())
	draw.Draw(out, out.Bounds(), dc.Image(), image.Point{}, draw.Src)
	return out, nil
}

// WritePNG encodes a snapshot of the field as PNG.
func WritePNG(w io.Writer, f *heart.Field, opts ExportOptions) error {
	img, err := Snapshot(f, opts)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("headless: encode png: %w", err)
	}
	return nil
}

// SavePNG writes a snapshot of the field to path.
func SavePNG(path string, f *heart.Field, opts ExportOptions) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("headless: create %s: %w", path, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("headless: close %s: %w", path, cerr)
		}
	}()
	return WritePNG(file, f, opts)
}
