// Package ui draws the in-game overlay: the score readout, the title
// prompt and the game-over panel with its restart button.
package ui

import (
	"bytes"
	"fmt"
	"image/color"
	"strconv"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/examples/resources/fonts"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/dawkrish/flappy/internal/config"
	"github.com/dawkrish/flappy/internal/world"
)

// ImageSource looks up loaded images. A nil result means not ready.
type ImageSource interface {
	Image(id string) *ebiten.Image
}

// Panel is the game-over panel content.
type Panel struct {
	Visible    bool
	Title      string
	Message    string
	FinalScore int
}

const (
	buttonW = 180
	buttonH = 48
	panelW  = 400
	panelH  = 260

	// maxNameLen keeps the panel title inside panelW at 16px per glyph.
	maxNameLen = 11
)

// Overlay holds the UI state shown over the world.
type Overlay struct {
	cfg    *config.Config
	images ImageSource
	face   *text.GoTextFaceSource

	score     int
	showTitle bool
	panel     Panel

	panelColor color.RGBA
	textColor  color.RGBA
}

// NewOverlay creates the overlay in its title-screen state.
func NewOverlay(cfg *config.Config, images ImageSource) (*Overlay, error) {
	s, err := text.NewGoTextFaceSource(bytes.NewReader(fonts.PressStart2P_ttf))
	if err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}
	return &Overlay{
		cfg:        cfg,
		images:     images,
		face:       s,
		showTitle:  true,
		panelColor: config.MustColor(cfg.Colors.Panel),
		textColor:  config.MustColor(cfg.Colors.Text),
	}, nil
}

// SetScore updates the score readout.
func (o *Overlay) SetScore(score int) { o.score = score }

// Score returns the value in the score readout.
func (o *Overlay) Score() int { return o.score }

// Panel returns the current game-over panel content.
func (o *Overlay) Panel() Panel { return o.panel }

// TitleVisible reports whether the title prompt is shown.
func (o *Overlay) TitleVisible() bool { return o.showTitle }

// ShowGameOver fills and shows the game-over panel.
func (o *Overlay) ShowGameOver(name string, score int, cause world.EndCause) {
	o.showTitle = false
	o.panel = Panel{
		Visible:    true,
		Title:      GameOverTitle(name),
		Message:    EndMessage(cause),
		FinalScore: score,
	}
}

// HideGameOver hides the panel and the title prompt.
func (o *Overlay) HideGameOver() {
	o.showTitle = false
	o.panel.Visible = false
}

// GameOverTitle personalizes the panel heading. Long names are cut with
// an ellipsis.
func GameOverTitle(name string) string {
	if utf8.RuneCountInString(name) > maxNameLen {
		name = string([]rune(name)[:maxNameLen-3]) + "..."
	}
	return fmt.Sprintf("Nice try, %s!", name)
}

// TitlePrompt is the first line of the title screen for the configured
// keys.
func TitlePrompt(in config.InputConfig) string {
	if in.RestartKey == "" || in.RestartKey == in.JumpKey {
		return fmt.Sprintf("Press %s", in.JumpKey)
	}
	return fmt.Sprintf("Press %s or %s", in.JumpKey, in.RestartKey)
}

// EndMessage describes why the run ended.
func EndMessage(cause world.EndCause) string {
	switch cause {
	case world.CauseGround:
		return "You hit the ground."
	case world.CausePipe:
		return "You crashed into a pipe."
	default:
		return "Game over."
	}
}

func (o *Overlay) panelRect() world.Rect {
	v := o.cfg.Viewport
	return world.Rect{X: (v.Width - panelW) / 2, Y: (v.Height - panelH) / 2, W: panelW, H: panelH}
}

// RestartButton is the restart control's box in virtual coordinates.
func (o *Overlay) RestartButton() world.Rect {
	p := o.panelRect()
	return world.Rect{X: p.X + (p.W-buttonW)/2, Y: p.Y + p.H - buttonH - 24, W: buttonW, H: buttonH}
}

// RestartHit reports whether the virtual point (x, y) lands on the restart
// button while the panel is visible.
func (o *Overlay) RestartHit(x, y float64) bool {
	if !o.panel.Visible {
		return false
	}
	b := o.RestartButton()
	return x >= b.X && x < b.X+b.W && y >= b.Y && y < b.Y+b.H
}

// Draw paints the overlay on the virtual canvas.
func (o *Overlay) Draw(dst *ebiten.Image) {
	w := o.cfg.Viewport.Width

	switch {
	case o.showTitle:
		o.drawText(dst, TitlePrompt(o.cfg.Input), w/2, o.cfg.Viewport.Height/2, 16)
		o.drawText(dst, "or click to start", w/2, o.cfg.Viewport.Height/2+30, 16)
	case o.panel.Visible:
		o.drawPanel(dst)
	default:
		o.drawText(dst, strconv.Itoa(o.score), w/2, 60, 40)
	}
}

func (o *Overlay) drawPanel(dst *ebiten.Image) {
	p := o.panelRect()
	cx := p.X + p.W/2

	if img := o.images.Image(config.ImageGameOver); img != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(cx-float64(img.Bounds().Dx())/2, p.Y-float64(img.Bounds().Dy())-12)
		dst.DrawImage(img, op)
	}

	vector.DrawFilledRect(dst, float32(p.X), float32(p.Y), float32(p.W), float32(p.H), o.panelColor, true)
	o.drawText(dst, o.panel.Title, cx, p.Y+40, 16)
	o.drawText(dst, o.panel.Message, cx, p.Y+80, 12)
	o.drawText(dst, fmt.Sprintf("Score: %d", o.panel.FinalScore), cx, p.Y+130, 20)

	b := o.RestartButton()
	vector.StrokeRect(dst, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 3, o.textColor, true)
	o.drawText(dst, "Restart", b.X+b.W/2, b.Y+b.H/2, 16)
}

// drawText draws a line centered on (x, y).
func (o *Overlay) drawText(dst *ebiten.Image, msg string, x, y, size float64) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(o.textColor)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(dst, msg, &text.GoTextFace{
		Source: o.face,
		Size:   size,
	}, op)
}
