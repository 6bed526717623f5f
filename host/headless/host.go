// Package headless hosts a particle heart without a display.
//
// Host is a fixed-size heart.Container with a manual frame queue: frames
// advance only when Step or Run is called. It is used for rendering still
// images, for scripted pointer playback, and in tests.
package headless

import (
	"slices"

	"github.com/vitapredict/heart"
	"github.com/vitapredict/heart/internal/frames"
)

// Option configures a Host.
type Option func(*Host)

// WithPixelRatio sets the device pixel ratio the host reports.
func WithPixelRatio(r float64) Option {
	return func(h *Host) {
		h.ratio = r
	}
}

// Host is an offscreen Container and FrameScheduler.
//
// Host is NOT safe for concurrent use.
type Host struct {
	width, height float64
	ratio         float64
	children      []heart.Surface

	queue   frames.Queue
	stepped int
}

var (
	_ heart.Container      = (*Host)(nil)
	_ heart.FrameScheduler = (*Host)(nil)
)

// New creates a host with the given logical size.
func New(width, height float64, opts ...Option) *Host {
	h := &Host{width: width, height: height, ratio: 1}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Size implements heart.Container.
func (h *Host) Size() (width, height float64) {
	return h.width, h.height
}

// SetSize changes the reported size. The field picks it up on its next Resize.
func (h *Host) SetSize(width, height float64) {
	h.width, h.height = width, height
}

// DevicePixelRatio implements heart.Container.
func (h *Host) DevicePixelRatio() float64 {
	return h.ratio
}

// AppendChild implements heart.Container.
func (h *Host) AppendChild(s heart.Surface) {
	h.children = append(h.children, s)
}

// RemoveChild implements heart.Container.
func (h *Host) RemoveChild(s heart.Surface) {
	if i := slices.Index(h.children, s); i >= 0 {
		h.children = slices.Delete(h.children, i, i+1)
	}
}

// Children returns the attached surfaces.
func (h *Host) Children() []heart.Surface {
	return h.children
}

// RequestFrame implements heart.FrameScheduler.
func (h *Host) RequestFrame(fn func()) heart.FrameID {
	return h.queue.Request(fn)
}

// CancelFrame implements heart.FrameScheduler.
func (h *Host) CancelFrame(id heart.FrameID) {
	h.queue.Cancel(id)
}

// Pending returns the number of queued frame callbacks.
func (h *Host) Pending() int {
	return h.queue.Len()
}

// Frames returns how many frames have been stepped.
func (h *Host) Frames() int {
	return h.stepped
}

// Step runs the callbacks queued before the call, in request order.
// Callbacks requested while stepping wait for the next Step.
// It returns the number of callbacks run.
func (h *Host) Step() int {
	n := h.queue.Run()
	h.stepped++
	return n
}

// Run steps up to n frames and stops early once nothing is queued.
// It returns the number of frames stepped.
func (h *Host) Run(n int) int {
	stepped := 0
	for stepped < n && h.queue.Len() > 0 {
		h.Step()
		stepped++
	}
	return stepped
}
