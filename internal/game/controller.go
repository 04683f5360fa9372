// Package game ties the world to the window: it implements ebiten.Game,
// routes input, and drives the start and end transitions with their audio
// and overlay side effects.
package game

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/dawkrish/flappy/internal/config"
	"github.com/dawkrish/flappy/internal/render"
	"github.com/dawkrish/flappy/internal/ui"
	"github.com/dawkrish/flappy/internal/world"
)

// Audio plays the looped track and the one-shot cues.
type Audio interface {
	PlayMusic(id string)
	StopMusic()
	PlaySound(id string)
}

// Names provides the player's display name.
type Names interface {
	Name() string
}

// Poller is polled once per tick, typically the asset store.
type Poller interface {
	Poll()
}

// Options wires a Controller. Renderer and Assets may be nil when the
// controller is driven without a window, as in tests.
type Options struct {
	World    *world.World
	Audio    Audio
	Names    Names
	Overlay  *ui.Overlay
	Renderer *render.Renderer
	Assets   Poller
}

// Controller is the lifecycle controller and the ebiten.Game.
type Controller struct {
	world    *world.World
	audio    Audio
	names    Names
	overlay  *ui.Overlay
	renderer *render.Renderer
	assets   Poller

	jumpKey    ebiten.Key
	restartKey ebiten.Key
	touches    []ebiten.TouchID

	outsideW, outsideH int
	viewport           render.Viewport
}

// New creates a controller showing the title screen.
func New(opts Options) (*Controller, error) {
	in := opts.World.Config().Input
	var jump, restart ebiten.Key
	if err := jump.UnmarshalText([]byte(in.JumpKey)); err != nil {
		return nil, fmt.Errorf("invalid jump key %q: %w", in.JumpKey, err)
	}
	if err := restart.UnmarshalText([]byte(in.RestartKey)); err != nil {
		return nil, fmt.Errorf("invalid restart key %q: %w", in.RestartKey, err)
	}

	v := opts.World.Config().Viewport
	return &Controller{
		world:      opts.World,
		audio:      opts.Audio,
		names:      opts.Names,
		overlay:    opts.Overlay,
		renderer:   opts.Renderer,
		assets:     opts.Assets,
		jumpKey:    jump,
		restartKey: restart,
		viewport:   render.Fit(v.Width, v.Height, v.Width, v.Height),
	}, nil
}

// Start begins a new run from a clean state.
func (c *Controller) Start() {
	c.world.Start()
	c.overlay.SetScore(0)
	c.overlay.HideGameOver()
	c.audio.PlayMusic(config.AudioMusic)
	log.Printf("[Game] Run started")
}

// End stops the current run. It does nothing when no run is in progress.
func (c *Controller) End(cause world.EndCause) {
	if c.world.End(cause) {
		c.gameOver(cause)
	}
}

// Flap pushes the bird up. It is a no-op unless a run is in progress.
func (c *Controller) Flap() bool {
	return c.world.Flap()
}

func (c *Controller) gameOver(cause world.EndCause) {
	c.audio.StopMusic()
	c.audio.PlaySound(config.AudioCrash)
	c.overlay.ShowGameOver(c.names.Name(), c.world.Score, cause)
	log.Printf("[Game] Run ended by %s with score %d", cause, c.world.Score)
}

// Tick handles one frame of input and advances the world.
func (c *Controller) Tick(in Input) {
	c.handleInput(in)

	ev := c.world.Step()
	if ev.Scored > 0 {
		c.overlay.SetScore(c.world.Score)
	}
	if ev.Ended {
		c.gameOver(ev.Cause)
	}
}

// Update implements ebiten.Game.
func (c *Controller) Update() error {
	if c.assets != nil {
		c.assets.Poll()
	}
	c.Tick(c.readInput())
	return nil
}

// Draw implements ebiten.Game.
func (c *Controller) Draw(screen *ebiten.Image) {
	canvas := c.renderer.Canvas()
	c.renderer.DrawWorld(canvas, c.world)
	c.overlay.Draw(canvas)
	c.renderer.Present(screen, c.viewport)
}

// Layout implements ebiten.Game. The screen follows the window size and
// the viewport is refit whenever it changes.
func (c *Controller) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != c.outsideW || outsideHeight != c.outsideH {
		c.Resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// Resize refits the viewport to a surface of w x h pixels.
func (c *Controller) Resize(w, h int) {
	c.outsideW, c.outsideH = w, h
	v := c.world.Config().Viewport
	c.viewport = render.Fit(v.Width, v.Height, float64(w), float64(h))
}

// Viewport returns the current virtual-to-surface mapping.
func (c *Controller) Viewport() render.Viewport {
	return c.viewport
}
