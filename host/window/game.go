// Package window hosts a particle heart in a desktop window using ebiten.
//
// Game implements ebiten.Game as well as heart.Container and
// heart.FrameScheduler: each ebiten tick feeds pointer input to the field
// and runs its pending frame, and each draw uploads the field's software
// surface to the screen.
package window

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vitapredict/heart"
	"github.com/vitapredict/heart/internal/frames"
)

// ErrNoField is returned when the field cannot be created.
var ErrNoField = errors.New("window: field could not be created")

// Config describes the window.
type Config struct {
	Width  int // window units
	Height int // window units
	Title  string
	TPS    int // ticks per second; 0 keeps ebiten's default
}

// Game drives one Field inside an ebiten window.
type Game struct {
	input    Input
	queue    frames.Queue
	children []heart.Surface

	width, height int
	ratio         float64
	resized       bool

	field   *heart.Field
	surface *heart.RasterSurface
	frame   *ebiten.Image

	cursorInside bool
	lastCursor   [2]int
	touching     bool
	touchBuf     [][2]int
	touches      []heart.Touch
}

var (
	_ ebiten.Game          = (*Game)(nil)
	_ heart.Container      = (*Game)(nil)
	_ heart.FrameScheduler = (*Game)(nil)
)

// NewGame creates a game with an initial window size. A nil input reads
// from ebiten.
func NewGame(width, height int, input Input) *Game {
	if input == nil {
		input = &ebitenInput{}
	}
	return &Game{
		input:  input,
		width:  width,
		height: height,
		ratio:  pixelRatio(input.DeviceScaleFactor()),
	}
}

// Attach creates the field. The field always renders to a software surface
// owned by the game; any surface factory in opts is overridden.
func (g *Game) Attach(opts ...heart.Option) error {
	opts = append(opts, heart.WithSurfaceFactory(func() (heart.Surface, error) {
		g.surface = heart.NewRasterSurface()
		return g.surface, nil
	}))
	g.field = heart.New(g, opts...)
	if g.field == nil {
		return ErrNoField
	}
	return nil
}

// Field returns the attached field.
func (g *Game) Field() *heart.Field {
	return g.field
}

// Close disposes the field and releases the GPU image.
func (g *Game) Close() {
	g.field.Dispose()
	if g.frame != nil {
		g.frame.Dispose()
		g.frame = nil
	}
}

// Size implements heart.Container.
func (g *Game) Size() (width, height float64) {
	return float64(g.width), float64(g.height)
}

// DevicePixelRatio implements heart.Container.
func (g *Game) DevicePixelRatio() float64 {
	return g.ratio
}

// AppendChild implements heart.Container.
func (g *Game) AppendChild(s heart.Surface) {
	g.children = append(g.children, s)
}

// RemoveChild implements heart.Container.
func (g *Game) RemoveChild(s heart.Surface) {
	for i, c := range g.children {
		if c == s {
			g.children = append(g.children[:i], g.children[i+1:]...)
			return
		}
	}
}

// RequestFrame implements heart.FrameScheduler. Callbacks run on the next
// ebiten tick.
func (g *Game) RequestFrame(fn func()) heart.FrameID {
	return g.queue.Request(fn)
}

// CancelFrame implements heart.FrameScheduler.
func (g *Game) CancelFrame(id heart.FrameID) {
	g.queue.Cancel(id)
}

// Layout implements ebiten.Game. The screen is sized in device pixels so
// the software surface maps onto it one to one.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	ratio := pixelRatio(g.input.DeviceScaleFactor())
	if outsideWidth != g.width || outsideHeight != g.height || ratio != g.ratio {
		g.width, g.height, g.ratio = outsideWidth, outsideHeight, ratio
		g.resized = true
	}
	return int(float64(outsideWidth) * ratio), int(float64(outsideHeight) * ratio)
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	if g.input.QuitRequested() {
		return ebiten.Termination
	}
	if g.field == nil {
		return nil
	}
	if g.resized {
		g.resized = false
		g.field.Resize()
		heart.Logger().Debug("window: resized", "width", g.width, "height", g.height, "pixel_ratio", g.ratio)
	}
	g.pollPointer()
	g.queue.Run()
	return nil
}

// pollPointer forwards touches, or the mouse when no finger is down.
func (g *Game) pollPointer() {
	g.touchBuf = g.input.Touches(g.touchBuf[:0])
	if len(g.touchBuf) > 0 {
		g.touches = g.touches[:0]
		for _, p := range g.touchBuf {
			g.touches = append(g.touches, heart.Touch{X: float64(p[0]) / g.ratio, Y: float64(p[1]) / g.ratio})
		}
		g.field.TouchMove(g.touches)
		g.touching = true
		return
	}
	if g.touching {
		g.touching = false
		g.field.TouchEnd()
	}

	x, y := g.input.CursorPosition()
	lx, ly := float64(x)/g.ratio, float64(y)/g.ratio
	inside := lx >= 0 && ly >= 0 && lx < float64(g.width) && ly < float64(g.height)
	cur := [2]int{x, y}
	switch {
	case inside && (!g.cursorInside || cur != g.lastCursor):
		g.field.PointerMove(lx, ly)
	case !inside && g.cursorInside:
		g.field.PointerLeave()
	}
	g.cursorInside = inside
	g.lastCursor = cur
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.surface == nil {
		return
	}
	w, h := g.surface.PixelSize()
	if w == 0 || h == 0 {
		return
	}
	if g.frame == nil || g.frame.Bounds().Dx() != w || g.frame.Bounds().Dy() != h {
		if g.frame != nil {
			g.frame.Dispose()
		}
		g.frame = ebiten.NewImage(w, h)
	}
	g.frame.WritePixels(g.surface.Pix())
	screen.DrawImage(g.frame, nil)
}

// pixelRatio clamps a device scale factor the way the field does.
func pixelRatio(s float64) float64 {
	if !(s > 0) {
		return 1
	}
	return min(s, heart.MaxPixelRatio)
}

// Run opens a window and blocks until it is closed.
func Run(cfg Config, opts ...heart.Option) error {
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
	}

	g := NewGame(cfg.Width, cfg.Height, nil)
	if err := g.Attach(opts...); err != nil {
		return err
	}
	defer g.Close()

	heart.Logger().Info("window: running", "width", cfg.Width, "height", cfg.Height, "title", cfg.Title)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: run: %w", err)
	}
	return nil
}
