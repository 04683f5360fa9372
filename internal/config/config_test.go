package config

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() error: %v", err)
	}
}

func TestParsePartialOverride(t *testing.T) {
	cfg, err := Parse([]byte("pipes:\n  spawn_interval: 42\nbird:\n  gravity: 1.5\nseed: 7\n"))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	if cfg.Pipes.SpawnInterval != 42 {
		t.Errorf("SpawnInterval: got %d, want 42", cfg.Pipes.SpawnInterval)
	}
	if cfg.Bird.Gravity != 1.5 {
		t.Errorf("Gravity: got %v, want 1.5", cfg.Bird.Gravity)
	}
	if cfg.Seed != 7 {
		t.Errorf("Seed: got %d, want 7", cfg.Seed)
	}
	// Untouched fields keep their defaults.
	if cfg.Pipes.GapSize != Default().Pipes.GapSize {
		t.Errorf("GapSize: got %v, want default %v", cfg.Pipes.GapSize, Default().Pipes.GapSize)
	}
	if cfg.Assets.Images[ImageBird] == "" {
		t.Error("default bird image lost after partial parse")
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"malformed", "pipes: [", "failed to parse config"},
		{"gap too large", "pipes:\n  gap_size: 600\n  min_margin: 60\n", "exceeds viewport height"},
		{"zero interval", "pipes:\n  spawn_interval: 0\n", "spawn_interval"},
		{"floor above bird", "viewport:\n  floor_y: 10\n", "floor_y"},
		{"bad color", "colors:\n  sky: blue\n", "colors.sky"},
		{"zero particle life", "particles:\n  life: 0\n", "particle life"},
		{"spawn chance", "clouds:\n  spawn_chance: 2\n", "spawn_chance"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			if err == nil {
				t.Fatal("Parse() succeeded, want error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.yaml")
	if err := os.WriteFile(path, []byte("window:\n  title: Test\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Window.Title != "Test" {
		t.Errorf("Title: got %q, want %q", cfg.Window.Title, "Test")
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() of a missing file succeeded")
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
		ok   bool
	}{
		{"#70c5ce", color.RGBA{0x70, 0xc5, 0xce, 0xff}, true},
		{"#000000b4", color.RGBA{0, 0, 0, 0xb4}, true},
		{"70c5ce", color.RGBA{}, false},
		{"#zzzzzz", color.RGBA{}, false},
	}

	for _, tt := range tests {
		got, err := ParseHexColor(tt.in)
		if (err == nil) != tt.ok {
			t.Errorf("ParseHexColor(%q) error = %v, want ok=%v", tt.in, err, tt.ok)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseHexColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
