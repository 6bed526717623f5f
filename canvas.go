package heart

import "errors"

// BlendMode selects how drawn discs combine with what is already on the canvas.
type BlendMode uint8

const (
	// BlendNormal composites source over destination.
	BlendNormal BlendMode = iota

	// BlendLighter adds source to destination so overlapping particles glow.
	BlendLighter
)

// String returns the blend mode name.
func (m BlendMode) String() string {
	switch m {
	case BlendNormal:
		return "normal"
	case BlendLighter:
		return "lighter"
	default:
		return "unknown"
	}
}

// Canvas is the set of drawing primitives the simulation needs.
// Coordinates and radii are in logical units.
type Canvas interface {
	// ClearRect makes the given rectangle fully transparent.
	ClearRect(x, y, w, h float64)

	// SetBlendMode sets the mode for subsequent FillCircle calls.
	SetBlendMode(mode BlendMode)

	// FillCircle fills a disc with c at the given alpha in [0, 1].
	FillCircle(x, y, r float64, c Color, alpha float64)
}

// Surface is a Canvas with a backing store that the Field sizes and owns.
type Surface interface {
	Canvas

	// Resize sets the logical size and the ratio of backing pixels to
	// logical units. Existing contents may be discarded.
	Resize(width, height, pixelRatio float64) error

	// Close releases the backing store. Further drawing is ignored.
	Close() error
}

// Common errors returned by surfaces.
var (
	// ErrInvalidSize is returned when a surface is given a negative or
	// non-finite size or pixel ratio.
	ErrInvalidSize = errors.New("heart: invalid surface size")

	// ErrSurfaceClosed is returned when a closed surface is resized.
	ErrSurfaceClosed = errors.New("heart: surface is closed")
)
