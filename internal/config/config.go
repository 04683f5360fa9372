// Package config holds every tunable of the game: physics, spawn cadence,
// decoration, audio levels and the asset manifest. Values are read from
// YAML so that tests and players can parameterize a run without a rebuild.
package config

import (
	"fmt"
	"image/color"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the root of the YAML document.
type Config struct {
	Window    WindowConfig   `yaml:"window"`
	Viewport  ViewportConfig `yaml:"viewport"`
	Bird      BirdConfig     `yaml:"bird"`
	Pipes     PipeConfig     `yaml:"pipes"`
	Clouds    CloudConfig    `yaml:"clouds"`
	Particles ParticleConfig `yaml:"particles"`
	Colors    ColorConfig    `yaml:"colors"`
	Audio     AudioConfig    `yaml:"audio"`
	Input     InputConfig    `yaml:"input"`
	Assets    AssetManifest  `yaml:"assets"`

	// Seed for the world's random source. Zero means seed from the clock.
	Seed int64 `yaml:"seed"`
}

// WindowConfig describes the initial OS window.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
}

// ViewportConfig is the virtual coordinate space all gameplay math uses.
type ViewportConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	// FloorY is the y coordinate the bird dies on. Usually equal to Height.
	FloorY float64 `yaml:"floor_y"`
}

// BirdConfig defines the player sprite and its kinematics.
type BirdConfig struct {
	X            float64 `yaml:"x"`
	Y            float64 `yaml:"y"`
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Gravity      float64 `yaml:"gravity"`
	FlapStrength float64 `yaml:"flap_strength"` // negative is upward

	RotationFactor float64 `yaml:"rotation_factor"`
	MinRotation    float64 `yaml:"min_rotation"`
	MaxRotation    float64 `yaml:"max_rotation"`
}

// PipeConfig defines obstacle geometry and the spawn cadence.
type PipeConfig struct {
	Width         float64 `yaml:"width"`
	GapSize       float64 `yaml:"gap_size"`
	MinMargin     float64 `yaml:"min_margin"`
	Speed         float64 `yaml:"speed"`
	SpawnInterval int     `yaml:"spawn_interval"` // frames
	InitialCount  int     `yaml:"initial_count"`
	FirstX        float64 `yaml:"first_x"`
	Spacing       float64 `yaml:"spacing"`
}

// CloudConfig defines the decorative background clouds.
type CloudConfig struct {
	InitialCount int     `yaml:"initial_count"`
	MinSpeed     float64 `yaml:"min_speed"`
	MaxSpeed     float64 `yaml:"max_speed"`
	MinSize      float64 `yaml:"min_size"`
	MaxSize      float64 `yaml:"max_size"`
	MaxY         float64 `yaml:"max_y"`
	SpawnChance  float64 `yaml:"spawn_chance"` // per frame
}

// ParticleConfig defines the feather burst emitted on every flap.
type ParticleConfig struct {
	BurstCount int     `yaml:"burst_count"`
	Life       int     `yaml:"life"` // frames
	Size       float64 `yaml:"size"`
	MinVX      float64 `yaml:"min_vx"`
	MaxVX      float64 `yaml:"max_vx"`
	MinVY      float64 `yaml:"min_vy"`
	MaxVY      float64 `yaml:"max_vy"`
	Color      string  `yaml:"color"`
}

// ColorConfig holds the flat fills used by the renderer and overlay.
type ColorConfig struct {
	Sky   string `yaml:"sky"`
	Cloud string `yaml:"cloud"`
	Panel string `yaml:"panel"`
	Text  string `yaml:"text"`
}

// AudioConfig controls the audio context and mix levels.
type AudioConfig struct {
	SampleRate  int     `yaml:"sample_rate"`
	MusicVolume float64 `yaml:"music_volume"`
	SoundVolume float64 `yaml:"sound_volume"`
}

// InputConfig names the keys the controller listens to.
// Key names follow ebiten.Key text form ("Space", "ArrowUp", ...).
type InputConfig struct {
	JumpKey    string `yaml:"jump_key"`
	RestartKey string `yaml:"restart_key"`
}

// AssetManifest maps resource ids to file paths relative to Root.
type AssetManifest struct {
	Root   string            `yaml:"root"`
	Images map[string]string `yaml:"images"`
	Audio  map[string]string `yaml:"audio"`
}

// Parse decodes a YAML document on top of Default, so a partial file only
// overrides what it names, and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads and parses the config file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects configurations the world cannot run with.
func (c *Config) Validate() error {
	v := c.Viewport
	if v.Width <= 0 || v.Height <= 0 {
		return fmt.Errorf("invalid config: viewport must be positive, got %vx%v", v.Width, v.Height)
	}
	if v.FloorY <= c.Bird.Height || v.FloorY > v.Height {
		return fmt.Errorf("invalid config: floor_y %v must be in (bird height, viewport height]", v.FloorY)
	}
	if c.Bird.Width <= 0 || c.Bird.Height <= 0 {
		return fmt.Errorf("invalid config: bird size must be positive")
	}
	if c.Bird.MinRotation > c.Bird.MaxRotation {
		return fmt.Errorf("invalid config: bird min_rotation > max_rotation")
	}

	p := c.Pipes
	if p.Width <= 0 || p.GapSize <= 0 {
		return fmt.Errorf("invalid config: pipe width and gap_size must be positive")
	}
	if p.MinMargin < 0 {
		return fmt.Errorf("invalid config: pipe min_margin must not be negative")
	}
	if p.GapSize+2*p.MinMargin > v.Height {
		return fmt.Errorf("invalid config: gap_size %v plus two margins of %v exceeds viewport height %v",
			p.GapSize, p.MinMargin, v.Height)
	}
	if p.SpawnInterval <= 0 {
		return fmt.Errorf("invalid config: pipe spawn_interval must be positive, got %d", p.SpawnInterval)
	}
	if p.InitialCount < 0 {
		return fmt.Errorf("invalid config: pipe initial_count must not be negative")
	}

	cl := c.Clouds
	if cl.MinSpeed > cl.MaxSpeed || cl.MinSize > cl.MaxSize {
		return fmt.Errorf("invalid config: cloud min values exceed max values")
	}
	if cl.SpawnChance < 0 || cl.SpawnChance > 1 {
		return fmt.Errorf("invalid config: cloud spawn_chance must be within [0, 1]")
	}

	pt := c.Particles
	if pt.Life <= 0 {
		return fmt.Errorf("invalid config: particle life must be positive")
	}
	if pt.MinVX > pt.MaxVX || pt.MinVY > pt.MaxVY {
		return fmt.Errorf("invalid config: particle min velocity exceeds max velocity")
	}

	for name, hex := range map[string]string{
		"particles.color": pt.Color,
		"colors.sky":      c.Colors.Sky,
		"colors.cloud":    c.Colors.Cloud,
		"colors.panel":    c.Colors.Panel,
		"colors.text":     c.Colors.Text,
	} {
		if _, err := ParseHexColor(hex); err != nil {
			return fmt.Errorf("invalid config: %s: %w", name, err)
		}
	}

	if c.Audio.SampleRate <= 0 {
		return fmt.Errorf("invalid config: audio sample_rate must be positive")
	}
	return nil
}

// ParseHexColor parses "#rrggbb" or "#rrggbbaa".
func ParseHexColor(s string) (color.RGBA, error) {
	c := color.RGBA{A: 0xff}
	var err error
	switch len(s) {
	case 7:
		_, err = fmt.Sscanf(s, "#%02x%02x%02x", &c.R, &c.G, &c.B)
	case 9:
		_, err = fmt.Sscanf(s, "#%02x%02x%02x%02x", &c.R, &c.G, &c.B, &c.A)
	default:
		err = fmt.Errorf("color %q must look like #rrggbb or #rrggbbaa", s)
	}
	if err != nil {
		return color.RGBA{}, fmt.Errorf("bad color %q: %w", s, err)
	}
	return c, nil
}

// MustColor is ParseHexColor for values already checked by Validate.
func MustColor(s string) color.RGBA {
	c, err := ParseHexColor(s)
	if err != nil {
		panic(err)
	}
	return c
}
