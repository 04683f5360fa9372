package sound

import (
	"errors"
	"testing"

	"github.com/dawkrish/flappy/internal/config"
)

func TestCodecFor(t *testing.T) {
	for _, path := range []string{"a.ogg", "b.WAV", "dir/c.mp3"} {
		if _, err := codecFor(path); err != nil {
			t.Errorf("codecFor(%q) error: %v", path, err)
		}
	}
	if _, err := codecFor("d.flac"); err == nil {
		t.Error("codecFor(flac) succeeded")
	}
}

func TestManagerWithoutContext(t *testing.T) {
	m := NewManager(nil, config.Default().Audio, config.AudioMusic)

	if err := m.Register(config.AudioMusic, "music.ogg", []byte("x")); !errors.Is(err, ErrDisabled) {
		t.Errorf("Register() error = %v, want ErrDisabled", err)
	}

	// None of these may panic without players.
	m.PlayMusic(config.AudioMusic)
	if !m.MusicPlaying() {
		t.Error("music not marked playing after PlayMusic")
	}
	m.PlaySound(config.AudioCrash)
	m.StopMusic()
	if m.MusicPlaying() {
		t.Error("music still marked playing after StopMusic")
	}
	m.StopMusic()
}
