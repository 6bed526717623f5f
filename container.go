package heart

// Container is the host layout element a Field lives in.
type Container interface {
	// Size returns the visible size in logical units.
	Size() (width, height float64)

	// DevicePixelRatio returns backing pixels per logical unit.
	DevicePixelRatio() float64

	// AppendChild attaches the field's surface so the host can present it.
	AppendChild(s Surface)

	// RemoveChild detaches a surface previously passed to AppendChild.
	RemoveChild(s Surface)
}

// FrameID identifies a pending frame callback.
type FrameID uint64

// FrameScheduler runs callbacks once per display refresh.
// A Container that also implements FrameScheduler drives its Field
// automatically.
type FrameScheduler interface {
	// RequestFrame schedules fn for the next frame.
	RequestFrame(fn func()) FrameID

	// CancelFrame drops a pending callback. Unknown ids are ignored.
	CancelFrame(id FrameID)
}

// MaxPixelRatio caps the device pixel ratio used for backing stores.
const MaxPixelRatio = 2.0

// clampPixelRatio limits r to (0, MaxPixelRatio]; unusable values become 1.
func clampPixelRatio(r float64) float64 {
	if !(r > 0) {
		return 1
	}
	if r > MaxPixelRatio {
		return MaxPixelRatio
	}
	return r
}
