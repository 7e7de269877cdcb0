package game

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// FrameInput is the sampled player input for one tick: a unit movement
// direction plus edge-triggered control events.
type FrameInput struct {
	MoveX, MoveY float64
	TogglePause  bool
	Restart      bool
}

// ReadFrameInput samples the pointer and held keys. The pointer position
// is taken relative to the viewport center and ignored inside a small
// dead zone; held directional keys are combined additively with it. An
// out-of-window pointer contributes zero movement, it is not an error.
func ReadFrameInput(screenW, screenH int) FrameInput {
	in := FrameInput{
		TogglePause: inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		Restart:     inpututil.IsKeyJustPressed(ebiten.KeyR),
	}

	cx, cy := ebiten.CursorPosition()
	if cx >= 0 && cy >= 0 && cx < screenW && cy < screenH {
		px := float64(cx - screenW/2)
		py := float64(cy - screenH/2)
		if math.Sqrt(px*px+py*py) > PointerDeadZone {
			in.MoveX, in.MoveY = Normalize(px, py)
		}
	}

	var kx, ky float64
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		kx--
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		kx++
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
		ky--
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
		ky++
	}

	// Keys add on top of the pointer direction; renormalize the sum so
	// diagonal input is not faster.
	in.MoveX, in.MoveY = Normalize(in.MoveX+kx, in.MoveY+ky)
	return in
}
