// Package world owns the mutable state of one game session and the
// per-frame step function that advances it. Nothing here touches the
// display, audio or input, so a test can drive a whole run frame by frame.
package world

import (
	"image/color"
	"math/rand"

	"github.com/dawkrish/flappy/internal/config"
)

// State is the lifecycle phase of the world.
type State int

const (
	// StateIdle is the state before the first Start.
	StateIdle State = iota
	StateRunning
	StateOver
)

// EndCause tells why a run stopped.
type EndCause int

const (
	CauseNone EndCause = iota
	CauseGround
	CausePipe
)

func (c EndCause) String() string {
	switch c {
	case CauseGround:
		return "ground"
	case CausePipe:
		return "pipe"
	default:
		return "none"
	}
}

// Bird is the player.
type Bird struct {
	X, Y     float64
	W, H     float64
	Velocity float64 // vertical, positive is down
}

// Rect returns the bird's hit box.
func (b *Bird) Rect() Rect {
	return Rect{X: b.X, Y: b.Y, W: b.W, H: b.H}
}

// Pipe is a top/bottom obstacle pair with a vertical gap.
type Pipe struct {
	X         float64
	TopHeight float64 // gap start
	BottomY   float64 // gap end
	Passed    bool
}

// Particle is one feather of a flap burst.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Life    int
	MaxLife int
	Color   color.RGBA
}

// Alpha is the remaining lifetime fraction in [0, 1].
func (p *Particle) Alpha() float64 {
	if p.MaxLife <= 0 || p.Life <= 0 {
		return 0
	}
	return float64(p.Life) / float64(p.MaxLife)
}

// Cloud is a decorative background puff drifting left.
type Cloud struct {
	X, Y  float64
	Speed float64
	Size  float64
}

// A cloud is drawn as three ellipses spanning from X-0.6*Size to X+1.6*Size.
const (
	cloudLeftExtent  = 0.6
	cloudRightExtent = 1.6
)

// Right returns the rightmost x the cloud covers.
func (c *Cloud) Right() float64 {
	return c.X + cloudRightExtent*c.Size
}

// Events reports what happened during one or more steps.
type Events struct {
	Scored int
	Ended  bool
	Cause  EndCause
}

// World is one game session.
type World struct {
	cfg *config.Config
	rng *rand.Rand

	Bird      Bird
	Pipes     []Pipe
	Particles []Particle
	Clouds    []Cloud
	Score     int

	pipeTimer     int
	state         State
	cause         EndCause
	particleColor color.RGBA
}

// New creates an idle world. rng drives every random choice; pass a seeded
// source for reproducible runs.
func New(cfg *config.Config, rng *rand.Rand) *World {
	return &World{
		cfg:           cfg,
		rng:           rng,
		particleColor: config.MustColor(cfg.Particles.Color),
	}
}

// Config returns the tuning the world was built with.
func (w *World) Config() *config.Config { return w.cfg }

// State returns the lifecycle phase.
func (w *World) State() State { return w.state }

// Running reports whether a run is in progress.
func (w *World) Running() bool { return w.state == StateRunning }

// Cause returns why the last run ended.
func (w *World) Cause() EndCause { return w.cause }

// PipeTimer returns the frames counted since the last spawn.
func (w *World) PipeTimer() int { return w.pipeTimer }

// Start resets the session and begins a run. Clouds are seeded at random
// positions and the first pipes are placed at fixed offsets so the player
// has something to fly through right away.
func (w *World) Start() {
	b := w.cfg.Bird
	w.Bird = Bird{X: b.X, Y: b.Y, W: b.Width, H: b.Height}
	w.Pipes = w.Pipes[:0]
	w.Particles = w.Particles[:0]
	w.Clouds = w.Clouds[:0]
	w.Score = 0
	w.pipeTimer = 0
	w.cause = CauseNone

	for i := 0; i < w.cfg.Clouds.InitialCount; i++ {
		w.Clouds = append(w.Clouds, w.newCloud(w.uniform(0, w.cfg.Viewport.Width)))
	}
	for i := 0; i < w.cfg.Pipes.InitialCount; i++ {
		w.spawnPipe(w.cfg.Pipes.FirstX + float64(i)*w.cfg.Pipes.Spacing)
	}

	w.state = StateRunning
}

// End stops the run. It reports false when no run was in progress, which
// makes repeated calls harmless.
func (w *World) End(cause EndCause) bool {
	if w.state != StateRunning {
		return false
	}
	w.state = StateOver
	w.cause = cause
	return true
}

func (w *World) end(ev *Events, cause EndCause) {
	if w.End(cause) {
		ev.Ended = true
		ev.Cause = cause
	}
}

// Flap pushes the bird upward and emits a feather burst. It is a no-op
// returning false when no run is in progress.
func (w *World) Flap() bool {
	if w.state != StateRunning {
		return false
	}
	w.Bird.Velocity = w.cfg.Bird.FlapStrength
	w.burst(w.Bird.X+w.Bird.W/2, w.Bird.Y+w.Bird.H/2)
	return true
}

// BirdRotation is the pitch in radians derived from the vertical velocity.
func (w *World) BirdRotation() float64 {
	b := w.cfg.Bird
	r := w.Bird.Velocity * b.RotationFactor
	if r < b.MinRotation {
		return b.MinRotation
	}
	if r > b.MaxRotation {
		return b.MaxRotation
	}
	return r
}

func (w *World) uniform(lo, hi float64) float64 {
	return lo + w.rng.Float64()*(hi-lo)
}
