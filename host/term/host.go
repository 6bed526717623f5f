// Package term hosts a particle heart in a terminal using tcell.
//
// Each terminal cell shows two vertically stacked pixels with the upper half
// block rune: the foreground colors the top pixel and the background the
// bottom one. The field is simulated at a finer logical resolution and its
// software surface is filtered down to cell resolution every frame.
package term

import (
	"context"
	"errors"
	"fmt"
	"image"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/image/draw"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/vitapredict/heart"
	"github.com/vitapredict/heart/internal/frames"
)

const (
	// cellUnitsX and cellUnitsY are logical units per terminal cell.
	cellUnitsX = 2
	cellUnitsY = 4

	// DefaultFPS is the frame rate when none is configured.
	DefaultFPS = 30

	halfBlock = '▀'
)

// ErrNoField is returned when the field cannot be created.
var ErrNoField = errors.New("term: field could not be created")

// Option configures a Host.
type Option func(*Host)

// WithFPS sets the target frame rate. Non-positive values are ignored.
func WithFPS(fps float64) Option {
	return func(h *Host) {
		if fps > 0 {
			h.fps = fps
		}
	}
}

// WithFrameHook registers fn to run on the frame goroutine after every
// presented frame, with the number of frames presented so far.
func WithFrameHook(fn func(frame int)) Option {
	return func(h *Host) {
		h.hook = fn
	}
}

// Host is a terminal Container and FrameScheduler.
type Host struct {
	screen tcell.Screen
	fps    float64
	hook   func(int)

	queue    frames.Queue
	children []heart.Surface

	cols, rows int
	field      *heart.Field
	surface    *heart.RasterSurface
	cells      *image.RGBA
	presented  int
}

var (
	_ heart.Container      = (*Host)(nil)
	_ heart.FrameScheduler = (*Host)(nil)
)

// New creates a host on screen. Run initializes and finalizes the screen.
func New(screen tcell.Screen, opts ...Option) *Host {
	h := &Host{screen: screen, fps: DefaultFPS}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Size implements heart.Container.
func (h *Host) Size() (width, height float64) {
	return float64(h.cols * cellUnitsX), float64(h.rows * cellUnitsY)
}

// DevicePixelRatio implements heart.Container. The logical grid already
// oversamples the cells, so the surface is not scaled further.
func (h *Host) DevicePixelRatio() float64 {
	return 1
}

// AppendChild implements heart.Container.
func (h *Host) AppendChild(s heart.Surface) {
	h.children = append(h.children, s)
}

// RemoveChild implements heart.Container.
func (h *Host) RemoveChild(s heart.Surface) {
	for i, c := range h.children {
		if c == s {
			h.children = append(h.children[:i], h.children[i+1:]...)
			return
		}
	}
}

// RequestFrame implements heart.FrameScheduler.
func (h *Host) RequestFrame(fn func()) heart.FrameID {
	return h.queue.Request(fn)
}

// CancelFrame implements heart.FrameScheduler.
func (h *Host) CancelFrame(id heart.FrameID) {
	h.queue.Cancel(id)
}

// Field returns the running field. It is only safe to use from a frame hook.
func (h *Host) Field() *heart.Field {
	return h.field
}

// Run takes over the screen and animates a field until the user quits or
// ctx is done. Events are read on a helper goroutine; every field call
// happens on the frame goroutine.
func (h *Host) Run(ctx context.Context, opts ...heart.Option) error {
	if err := h.screen.Init(); err != nil {
		return fmt.Errorf("term: init screen: %w", err)
	}
	h.screen.EnableMouse(tcell.MouseMotionEvents)
	h.screen.EnableFocus()
	h.screen.HideCursor()
	h.screen.Clear()
	h.cols, h.rows = h.screen.Size()

	opts = append(opts, heart.WithSurfaceFactory(func() (heart.Surface, error) {
		h.surface = heart.NewRasterSurface()
		return h.surface, nil
	}))
	h.field = heart.New(h, opts...)
	if h.field == nil {
		h.screen.Fini()
		return ErrNoField
	}
	heart.Logger().Info("term: running", "cols", h.cols, "rows", h.rows, "fps", h.fps)

	events := make(chan tcell.Event, 64)
	done := make(chan struct{})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return h.readEvents(events, done)
	})
	g.Go(func() error {
		defer func() {
			h.field.Dispose()
			close(done)
			h.screen.Fini()
		}()
		return h.loop(gctx, events)
	})
	return g.Wait()
}

// readEvents forwards screen events until the screen is finalized.
func (h *Host) readEvents(events chan<- tcell.Event, done <-chan struct{}) error {
	for {
		ev := h.screen.PollEvent()
		if ev == nil {
			return nil
		}
		select {
		case events <- ev:
		case <-done:
			return nil
		}
	}
}

// loop paces frames, applies queued events and presents the result.
func (h *Host) loop(ctx context.Context, events <-chan tcell.Event) error {
	limiter := rate.NewLimiter(rate.Limit(h.fps), 1)
	for {
		if err := limiter.Wait(ctx); err != nil {
			// Only cancellation or a deadline can fail a single-token wait.
			heart.Logger().Debug("term: stopping", "err", err)
			return nil
		}

		for drained := false; !drained; {
			select {
			case ev := <-events:
				if !h.handle(ev) {
					heart.Logger().Info("term: quit requested")
					return nil
				}
			default:
				drained = true
			}
		}

		h.queue.Run()
		h.present()
		h.presented++
		if h.hook != nil {
			h.hook(h.presented)
		}
	}
}

// handle applies one event. It returns false when the user asked to quit.
func (h *Host) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q'):
			return false
		}
	case *tcell.EventResize:
		h.cols, h.rows = ev.Size()
		h.screen.Sync()
		h.field.Resize()
	case *tcell.EventMouse:
		x, y := ev.Position()
		h.field.PointerMove(float64(x*cellUnitsX)+cellUnitsX/2, float64(y*cellUnitsY)+cellUnitsY/2)
	case *tcell.EventFocus:
		if !ev.Focused {
			h.field.PointerLeave()
		}
	}
	return true
}

// present filters the surface to two pixels per cell and draws the cells.
func (h *Host) present() {
	if h.surface == nil {
		return
	}
	src := h.surface.Image()
	if h.cols <= 0 || h.rows <= 0 || src.Bounds().Empty() {
		h.screen.Clear()
		h.screen.Show()
		return
	}

	want := image.Rect(0, 0, h.cols, h.rows*2)
	if h.cells == nil || h.cells.Bounds() != want {
		h.cells = image.NewRGBA(want)
	}
	draw.BiLinear.Scale(h.cells, want, src, src.Bounds(), draw.Src, nil)

	for y := range h.rows {
		for x := range h.cols {
			top := h.cells.RGBAAt(x, 2*y)
			bottom := h.cells.RGBAAt(x, 2*y+1)
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B))).
				Background(tcell.NewRGBColor(int32(bottom.R), int32(bottom.G), int32(bottom.B)))
			h.screen.SetContent(x, y, halfBlock, nil, style)
		}
	}
	h.screen.Show()
}
