package assets

import (
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// AudioSink receives raw audio files as they finish loading.
type AudioSink interface {
	Register(id, path string, data []byte) error
}

// Store holds the images that finished loading. Lookups of anything not
// yet loaded, or that failed, return nil so callers can skip drawing.
type Store struct {
	results <-chan Result
	audio   AudioSink

	images map[string]*ebiten.Image
	failed map[string]error
	done   bool

	newImage func(image.Image) *ebiten.Image
}

// NewStore consumes results from a Loader. audio may be nil, in which case
// loaded audio is dropped.
func NewStore(results <-chan Result, audio AudioSink) *Store {
	return &Store{
		results:  results,
		audio:    audio,
		images:   make(map[string]*ebiten.Image),
		failed:   make(map[string]error),
		newImage: ebiten.NewImageFromImage,
	}
}

// Poll takes every result available right now without blocking. Call it
// from the game goroutine once per tick.
func (s *Store) Poll() {
	if s.done {
		return
	}
	for {
		select {
		case r, ok := <-s.results:
			if !ok {
				s.done = true
				log.Printf("[Assets] Loading finished: %d images ready, %d failed", len(s.images), len(s.failed))
				return
			}
			s.accept(r)
		default:
			return
		}
	}
}

func (s *Store) accept(r Result) {
	if r.Err != nil {
		s.failed[r.ID] = r.Err
		log.Printf("[Assets] Warning: failed to load %s %q: %v", r.Kind, r.ID, r.Err)
		return
	}

	switch r.Kind {
	case KindImage:
		s.images[r.ID] = s.newImage(r.Image)
	case KindAudio:
		if s.audio == nil {
			return
		}
		if err := s.audio.Register(r.ID, r.Path, r.Data); err != nil {
			s.failed[r.ID] = err
			log.Printf("[Assets] Warning: failed to register audio %q: %v", r.ID, err)
		}
	}
}

// Image returns the loaded image for id, or nil.
func (s *Store) Image(id string) *ebiten.Image {
	return s.images[id]
}

// Failed returns the load error for id, if any.
func (s *Store) Failed(id string) error {
	return s.failed[id]
}

// Done reports whether the loader has delivered every result.
func (s *Store) Done() bool {
	return s.done
}
