// Package render draws the world into the virtual coordinate space and
// presents that canvas on the window.
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/dawkrish/flappy/internal/config"
	"github.com/dawkrish/flappy/internal/world"
)

// ImageSource looks up loaded images. A nil result means not ready.
type ImageSource interface {
	Image(id string) *ebiten.Image
}

const discSize = 64

var (
	letterbox = color.RGBA{A: 0xff}
	pipeGreen = color.RGBA{30, 200, 15, 0xff}
	birdBody  = color.RGBA{247, 213, 29, 0xff}
	birdBeak  = color.RGBA{242, 120, 30, 0xff}
	birdEye   = color.RGBA{20, 20, 20, 0xff}
)

// Renderer owns the offscreen canvas and the procedural sprites.
type Renderer struct {
	cfg    *config.Config
	images ImageSource

	canvas *ebiten.Image
	disc   *ebiten.Image
	pixel  *ebiten.Image

	// Drawn when the manifest image is not loaded.
	pipeFallback *ebiten.Image
	birdFallback *ebiten.Image

	sky   color.RGBA
	cloud color.RGBA
}

// NewRenderer creates a renderer. Images are created lazily on first draw.
func NewRenderer(cfg *config.Config, images ImageSource) *Renderer {
	return &Renderer{
		cfg:    cfg,
		images: images,
		sky:    config.MustColor(cfg.Colors.Sky),
		cloud:  config.MustColor(cfg.Colors.Cloud),
	}
}

// Canvas returns the virtual-size offscreen image.
func (r *Renderer) Canvas() *ebiten.Image {
	if r.canvas == nil {
		v := r.cfg.Viewport
		r.canvas = ebiten.NewImage(int(v.Width), int(v.Height))
	}
	return r.canvas
}

func (r *Renderer) sprites() {
	if r.disc != nil {
		return
	}
	r.disc = ebiten.NewImage(discSize, discSize)
	vector.DrawFilledCircle(r.disc, discSize/2, discSize/2, discSize/2, color.White, true)
	r.pixel = ebiten.NewImage(1, 1)
	r.pixel.Fill(color.White)

	r.pipeFallback = ebiten.NewImage(1, 1)
	r.pipeFallback.Fill(pipeGreen)

	// drawBird stretches this to the hit box.
	const w, h = 34, 24
	r.birdFallback = ebiten.NewImage(w, h)
	vector.DrawFilledCircle(r.birdFallback, w*0.45, h/2, h/2, birdBody, true)
	vector.DrawFilledRect(r.birdFallback, w*0.45, h*0.1, w*0.3, h*0.8, birdBody, true)
	vector.DrawFilledRect(r.birdFallback, w*0.75, h*0.45, w*0.25, h*0.2, birdBeak, true)
	vector.DrawFilledCircle(r.birdFallback, w*0.62, h*0.32, h*0.1, birdEye, true)
}

// sprite returns the loaded image for id, or fallback while it is missing.
func (r *Renderer) sprite(id string, fallback *ebiten.Image) *ebiten.Image {
	if img := r.images.Image(id); img != nil {
		return img
	}
	return fallback
}

// DrawWorld paints the world back to front: sky, clouds, pipes, particles,
// bird.
func (r *Renderer) DrawWorld(dst *ebiten.Image, w *world.World) {
	r.sprites()
	dst.Fill(r.sky)

	for i := range w.Clouds {
		r.drawCloud(dst, &w.Clouds[i])
	}
	pipe := r.sprite(config.ImagePipe, r.pipeFallback)
	for i := range w.Pipes {
		r.drawPipe(dst, pipe, w, &w.Pipes[i])
	}
	for i := range w.Particles {
		r.drawParticle(dst, &w.Particles[i])
	}
	r.drawBird(dst, r.sprite(config.ImageBird, r.birdFallback), w)
}

// Present draws the canvas onto screen through vp.
func (r *Renderer) Present(screen *ebiten.Image, vp Viewport) {
	screen.Fill(letterbox)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = vp.GeoM()
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(r.Canvas(), op)
}

// drawCloud draws three overlapping ellipses.
func (r *Renderer) drawCloud(dst *ebiten.Image, c *world.Cloud) {
	s := c.Size
	r.drawEllipse(dst, c.X, c.Y, 0.6*s, 0.4*s)
	r.drawEllipse(dst, c.X+0.5*s, c.Y-0.2*s, 0.5*s, 0.45*s)
	r.drawEllipse(dst, c.X+s, c.Y, 0.6*s, 0.4*s)
}

func (r *Renderer) drawEllipse(dst *ebiten.Image, cx, cy, rx, ry float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(2*rx/discSize, 2*ry/discSize)
	op.GeoM.Translate(cx-rx, cy-ry)
	op.ColorScale.ScaleWithColor(r.cloud)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(r.disc, op)
}

// drawPipe stretches img over both segments. The top one is flipped so the
// pipe mouth faces the gap.
func (r *Renderer) drawPipe(dst, img *ebiten.Image, w *world.World, p *world.Pipe) {
	top, bottom := w.PipeRects(p)
	iw, ih := float64(img.Bounds().Dx()), float64(img.Bounds().Dy())

	if top.H > 0 {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(top.W/iw, -top.H/ih)
		op.GeoM.Translate(top.X, top.Y+top.H)
		dst.DrawImage(img, op)
	}
	if bottom.H > 0 {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(bottom.W/iw, bottom.H/ih)
		op.GeoM.Translate(bottom.X, bottom.Y)
		dst.DrawImage(img, op)
	}
}

func (r *Renderer) drawParticle(dst *ebiten.Image, p *world.Particle) {
	size := r.cfg.Particles.Size
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size, size)
	op.GeoM.Translate(p.X-size/2, p.Y-size/2)
	op.ColorScale.ScaleWithColor(p.Color)
	op.ColorScale.ScaleAlpha(float32(p.Alpha()))
	dst.DrawImage(r.pixel, op)
}

// drawBird scales the sprite to the hit box and pitches it around its
// center.
func (r *Renderer) drawBird(dst, img *ebiten.Image, w *world.World) {
	b := &w.Bird
	iw, ih := float64(img.Bounds().Dx()), float64(img.Bounds().Dy())

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-iw/2, -ih/2)
	op.GeoM.Scale(b.W/iw, b.H/ih)
	op.GeoM.Rotate(w.BirdRotation())
	op.GeoM.Translate(b.X+b.W/2, b.Y+b.H/2)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(img, op)
}
