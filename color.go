package heart

import (
	"fmt"
	"image/color"
)

// Color is an opaque 8-bit RGB triple. Transparency is supplied separately
// at draw time so that twinkle can modulate it without touching the stored
// particle color.
type Color struct {
	R, G, B uint8
}

// NRGBA combines the color with a float alpha in [0, 1].
// Alpha outside the range is clamped.
func (c Color) NRGBA(alpha float64) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(clamp01(alpha)*255 + 0.5)}
}

// String returns the color in CSS rgb() notation.
func (c Color) String() string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}

// Heart palette.
var (
	PrimaryRed = Color{R: 220, G: 53, B: 69}
	SoftRose   = Color{R: 255, G: 107, B: 122}
	Pink       = Color{R: 233, G: 30, B: 99}
	BrightRed  = Color{R: 255, G: 71, B: 87}
	Blush      = Color{R: 248, G: 215, B: 218}
	VividRed   = Color{R: 255, G: 23, B: 68}
	DeepRed    = Color{R: 198, G: 40, B: 40}
)

// Palette lists the colors a particle may be assigned at random.
var Palette = [...]Color{PrimaryRed, SoftRose, Pink, BrightRed, Blush, VividRed, DeepRed}

// SparkleTint is the fixed pale color of sparkle particles.
var SparkleTint = Blush

// RandomHeartColor picks a palette entry uniformly.
func RandomHeartColor(rng Rand) Color {
	i := int(rng.Float64() * float64(len(Palette)))
	if i >= len(Palette) {
		i = len(Palette) - 1
	}
	return Palette[i]
}

// clamp01 restricts a value to [0, 1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
