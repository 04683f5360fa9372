package render

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/dawkrish/flappy/internal/config"
)

type imageMap map[string]*ebiten.Image

func (m imageMap) Image(id string) *ebiten.Image { return m[id] }

func TestSpriteFallsBackUntilLoaded(t *testing.T) {
	images := imageMap{}
	r := NewRenderer(config.Default(), images)
	r.pipeFallback = &ebiten.Image{}
	r.birdFallback = &ebiten.Image{}

	if got := r.sprite(config.ImagePipe, r.pipeFallback); got != r.pipeFallback {
		t.Error("missing pipe image did not use the procedural pipe")
	}
	if got := r.sprite(config.ImageBird, r.birdFallback); got != r.birdFallback {
		t.Error("missing bird image did not use the procedural bird")
	}

	loaded := &ebiten.Image{}
	images[config.ImageBird] = loaded
	if got := r.sprite(config.ImageBird, r.birdFallback); got != loaded {
		t.Error("loaded bird image did not replace the procedural bird")
	}
	if got := r.sprite(config.ImagePipe, r.pipeFallback); got != r.pipeFallback {
		t.Error("pipe switched away from its fallback without a loaded image")
	}
}
