package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/dawkrish/flappy/internal/world"
)

// Input is the input gathered for one frame. Pointer positions are in
// virtual coordinates.
type Input struct {
	Jump    bool
	Restart bool

	Press          bool // mouse click or touch start
	PressX, PressY float64
}

// readInput polls keyboard, mouse and touch. Clicks and touches both count
// as a press.
func (c *Controller) readInput() Input {
	in := Input{
		Jump:    inpututil.IsKeyJustPressed(c.jumpKey),
		Restart: inpututil.IsKeyJustPressed(c.restartKey),
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		in.Press = true
		in.PressX, in.PressY = c.viewport.ToVirtual(float64(x), float64(y))
	}

	c.touches = inpututil.AppendJustPressedTouchIDs(c.touches[:0])
	if len(c.touches) > 0 && !in.Press {
		x, y := ebiten.TouchPosition(c.touches[0])
		in.Press = true
		in.PressX, in.PressY = c.viewport.ToVirtual(float64(x), float64(y))
	}
	return in
}

// handleInput routes one frame of input by lifecycle phase.
func (c *Controller) handleInput(in Input) {
	switch c.world.State() {
	case world.StateIdle:
		if in.Jump || in.Press || in.Restart {
			c.Start()
		}
	case world.StateRunning:
		if in.Jump || in.Press {
			c.Flap()
		}
	case world.StateOver:
		if in.Restart || (in.Press && c.overlay.RestartHit(in.PressX, in.PressY)) {
			c.Start()
			return
		}
		if in.Jump {
			c.Flap()
		}
	}
}
