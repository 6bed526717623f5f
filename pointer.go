package heart

// Pointer is the last known interaction point in logical units.
// Active is false while no mouse or touch is engaged.
type Pointer struct {
	X, Y   float64
	Active bool
}

// offscreen is where the pointer rests before any input arrives.
var offscreen = Pointer{X: -9999, Y: -9999}

// Touch is one touch point relative to the container.
type Touch struct {
	X, Y float64
}
