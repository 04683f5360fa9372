// Package sound plays the background track and the one-shot cues. Every
// failure is logged and swallowed: the game keeps running silently.
package sound

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"

	"github.com/dawkrish/flappy/internal/config"
)

// ErrDisabled is returned by Register when the manager has no audio context.
var ErrDisabled = errors.New("audio disabled")

type stream interface {
	io.ReadSeeker
	Length() int64
}

type decodeFunc func(sampleRate int, r io.ReadSeeker) (stream, error)

// codecFor picks a decoder from the file extension.
func codecFor(path string) (decodeFunc, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ogg":
		return func(sr int, r io.ReadSeeker) (stream, error) { return vorbis.DecodeWithSampleRate(sr, r) }, nil
	case ".wav":
		return func(sr int, r io.ReadSeeker) (stream, error) { return wav.DecodeWithSampleRate(sr, r) }, nil
	case ".mp3":
		return func(sr int, r io.ReadSeeker) (stream, error) { return mp3.DecodeWithSampleRate(sr, r) }, nil
	default:
		return nil, fmt.Errorf("unsupported audio format %q", filepath.Ext(path))
	}
}

// Manager owns one audio player per registered id.
type Manager struct {
	ctx   *audio.Context
	cfg   config.AudioConfig
	loops map[string]bool

	players map[string]*audio.Player

	// music is the id PlayMusic last asked for; it starts as soon as it
	// registers if it was not loaded yet.
	music        string
	musicPlaying bool
}

// NewManager creates a manager. ctx may be nil to run without audio. Ids in
// loops are wrapped in an infinite loop when registered.
func NewManager(ctx *audio.Context, cfg config.AudioConfig, loops ...string) *Manager {
	m := &Manager{
		ctx:     ctx,
		cfg:     cfg,
		loops:   make(map[string]bool),
		players: make(map[string]*audio.Player),
	}
	for _, id := range loops {
		m.loops[id] = true
	}
	return m
}

// Register decodes data and prepares a player for id.
func (m *Manager) Register(id, path string, data []byte) error {
	if m.ctx == nil {
		return ErrDisabled
	}

	decode, err := codecFor(path)
	if err != nil {
		return err
	}
	s, err := decode(m.ctx.SampleRate(), bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}

	var src io.Reader = s
	volume := m.cfg.SoundVolume
	if m.loops[id] {
		src = audio.NewInfiniteLoop(s, s.Length())
		volume = m.cfg.MusicVolume
	}

	player, err := m.ctx.NewPlayer(src)
	if err != nil {
		return fmt.Errorf("failed to create player for %s: %w", path, err)
	}
	player.SetVolume(volume)
	m.players[id] = player
	log.Printf("[Sound] Registered %q from %s", id, path)

	if m.musicPlaying && m.music == id {
		m.start(id, player)
	}
	return nil
}

// PlayMusic plays id from the beginning. If the track is still loading it
// starts once it arrives.
func (m *Manager) PlayMusic(id string) {
	m.StopMusic()
	m.music = id
	m.musicPlaying = true

	player := m.players[id]
	if player == nil {
		log.Printf("[Sound] Warning: music %q not ready, will start when loaded", id)
		return
	}
	m.start(id, player)
}

// StopMusic pauses the current track.
func (m *Manager) StopMusic() {
	if !m.musicPlaying {
		return
	}
	m.musicPlaying = false
	if player := m.players[m.music]; player != nil {
		player.Pause()
	}
}

// PlaySound plays a one-shot cue from the beginning.
func (m *Manager) PlaySound(id string) {
	player := m.players[id]
	if player == nil {
		log.Printf("[Sound] Warning: sound %q not available", id)
		return
	}
	m.start(id, player)
}

// MusicPlaying reports whether a track is meant to be playing.
func (m *Manager) MusicPlaying() bool {
	return m.musicPlaying
}

func (m *Manager) start(id string, player *audio.Player) {
	if err := player.Rewind(); err != nil {
		log.Printf("[Sound] Warning: failed to rewind %q: %v", id, err)
	}
	player.Play()
}
