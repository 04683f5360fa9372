package main

import (
	"reflect"
	"testing"

	"github.com/dawkrish/flappy/internal/config"
)

func TestEmbeddedConfigMatchesDefault(t *testing.T) {
	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig(\"\") error: %v", err)
	}
	if !reflect.DeepEqual(cfg, config.Default()) {
		t.Errorf("data/flappy.yaml drifted from config.Default():\n got %+v\nwant %+v", cfg, config.Default())
	}
}

func TestNewRandFixedSeed(t *testing.T) {
	cfg := config.Default()
	cfg.Seed = 42
	a, b := newRand(cfg), newRand(cfg)
	for i := 0; i < 10; i++ {
		if a.Int63() != b.Int63() {
			t.Fatal("same seed produced different sequences")
		}
	}
}
