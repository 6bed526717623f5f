package headless

import (
	"cmp"
	"math"
	"slices"

	"github.com/vitapredict/heart"
)

// InputKind is the type of a scripted input event.
type InputKind uint8

const (
	// InputMove moves the mouse pointer.
	InputMove InputKind = iota
	// InputLeave takes the mouse pointer away.
	InputLeave
	// InputTouch places a single touch.
	InputTouch
	// InputTouchEnd lifts all touches.
	InputTouchEnd
)

// Input is one scripted event, applied just before frame Frame runs.
type Input struct {
	Frame int
	Kind  InputKind
	X, Y  float64
}

// Apply delivers the event to f.
func (in Input) Apply(f *heart.Field) {
	switch in.Kind {
	case InputMove:
		f.PointerMove(in.X, in.Y)
	case InputLeave:
		f.PointerLeave()
	case InputTouch:
		f.TouchMove([]heart.Touch{{X: in.X, Y: in.Y}})
	case InputTouchEnd:
		f.TouchEnd()
	}
}

// Sweep moves the pointer in a straight line from a to b over frames
// frames starting at start, then leaves.
func Sweep(a, b heart.Point, start, frames int) []Input {
	if frames <= 0 {
		return nil
	}
	script := make([]Input, 0, frames+1)
	for i := range frames {
		t := float64(i) / float64(max(frames-1, 1))
		p := a.Lerp(b, t)
		script = append(script, Input{Frame: start + i, Kind: InputMove, X: p.X, Y: p.Y})
	}
	return append(script, Input{Frame: start + frames, Kind: InputLeave})
}

// Orbit circles the pointer once around center over frames frames starting
// at start, then leaves.
func Orbit(center heart.Point, radius float64, start, frames int) []Input {
	if frames <= 0 {
		return nil
	}
	script := make([]Input, 0, frames+1)
	for i := range frames {
		a := float64(i) / float64(frames) * 2 * math.Pi
		script = append(script, Input{
			Frame: start + i,
			Kind:  InputMove,
			X:     center.X + radius*math.Cos(a),
			Y:     center.Y + radius*math.Sin(a),
		})
	}
	return append(script, Input{Frame: start + frames, Kind: InputLeave})
}

// Play steps frames frames, applying each scripted input before the frame
// it names. Inputs outside [0, frames) are ignored. It returns the number of
// frames stepped, which is less than frames if the field stops requesting.
func (h *Host) Play(f *heart.Field, script []Input, frames int) int {
	script = slices.Clone(script)
	slices.SortStableFunc(script, func(a, b Input) int { return cmp.Compare(a.Frame, b.Frame) })

	next := 0
	for next < len(script) && script[next].Frame < 0 {
		next++
	}
	for i := range frames {
		for next < len(script) && script[next].Frame == i {
			script[next].Apply(f)
			next++
		}
		if h.Run(1) == 0 {
			return i
		}
	}
	return frames
}
