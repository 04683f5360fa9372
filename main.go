package main

import (
	"context"
	"flag"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/dawkrish/flappy/internal/assets"
	"github.com/dawkrish/flappy/internal/config"
	"github.com/dawkrish/flappy/internal/game"
	"github.com/dawkrish/flappy/internal/render"
	"github.com/dawkrish/flappy/internal/session"
	"github.com/dawkrish/flappy/internal/sound"
	"github.com/dawkrish/flappy/internal/ui"
	"github.com/dawkrish/flappy/internal/world"
)

const appName = "flappy"

var (
	configPath = flag.String("config", "", "path to a YAML config (default: built-in)")
	assetsRoot = flag.String("assets", "", "asset directory, overrides assets.root")
	seed       = flag.Int64("seed", 0, "random seed, overrides the config seed")
	playerName = flag.String("name", os.Getenv("FLAPPY_PLAYER"), "display name for this session")
	fullscreen = flag.Bool("fullscreen", false, "start in fullscreen")
)

// loadConfig reads path, or the embedded default when path is empty.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Parse(Default_yaml)
	}
	return config.Load(path)
}

func newRand(cfg *config.Config) *rand.Rand {
	s := cfg.Seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	log.Printf("[Main] Random seed %d", s)
	return rand.New(rand.NewSource(s))
}

func main() {
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("[Main] %v", err)
	}
	if *assetsRoot != "" {
		cfg.Assets.Root = *assetsRoot
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *fullscreen {
		cfg.Window.Fullscreen = true
	}

	names := session.Open(appName)
	if prev, ok := names.Stored(); ok && prev != "" {
		log.Printf("[Main] Replacing name %q left by the previous session", prev)
	}
	if err := names.Begin(*playerName); err != nil {
		log.Printf("[Main] Warning: %v", err)
	}

	sounds := sound.NewManager(audio.NewContext(cfg.Audio.SampleRate), cfg.Audio, config.AudioMusic)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	results := assets.NewLoader(os.DirFS(cfg.Assets.Root)).Load(ctx, cfg.Assets)
	store := assets.NewStore(results, sounds)

	overlay, err := ui.NewOverlay(cfg, store)
	if err != nil {
		log.Fatalf("[Main] %v", err)
	}

	g, err := game.New(game.Options{
		World:    world.New(cfg, newRand(cfg)),
		Audio:    sounds,
		Names:    names,
		Overlay:  overlay,
		Renderer: render.NewRenderer(cfg, store),
		Assets:   store,
	})
	if err != nil {
		log.Fatalf("[Main] %v", err)
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(cfg.Window.Fullscreen)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
