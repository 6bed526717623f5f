package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input is the per-tick view of the window's input devices. Positions are
// in screen pixels, the coordinate space Layout returns.
type Input interface {
	// CursorPosition returns the mouse position.
	CursorPosition() (x, y int)

	// Touches appends the positions of active touches to dst.
	Touches(dst [][2]int) [][2]int

	// QuitRequested reports whether the user asked to close the window.
	QuitRequested() bool

	// DeviceScaleFactor returns physical pixels per window unit.
	DeviceScaleFactor() float64
}

// ebitenInput reads input from ebiten's global state.
type ebitenInput struct {
	ids []ebiten.TouchID
}

func (in *ebitenInput) CursorPosition() (int, int) {
	return ebiten.CursorPosition()
}

func (in *ebitenInput) Touches(dst [][2]int) [][2]int {
	in.ids = ebiten.AppendTouchIDs(in.ids[:0])
	for _, id := range in.ids {
		x, y := ebiten.TouchPosition(id)
		dst = append(dst, [2]int{x, y})
	}
	return dst
}

func (in *ebitenInput) QuitRequested() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ)
}

func (in *ebitenInput) DeviceScaleFactor() float64 {
	return ebiten.DeviceScaleFactor()
}
