package assets

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"testing"
	"testing/fstest"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/dawkrish/flappy/internal/config"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}
	return buf.Bytes()
}

func testFS(t *testing.T) fstest.MapFS {
	return fstest.MapFS{
		"images/bird.png":   {Data: pngBytes(t, 34, 24)},
		"images/broken.png": {Data: []byte("not a png")},
		"audio/music.ogg":   {Data: []byte("OggS fake")},
	}
}

func testManifest() config.AssetManifest {
	return config.AssetManifest{
		Images: map[string]string{
			"bird":     "images/bird.png",
			"broken":   "images/broken.png",
			"gameover": "images/missing.png",
		},
		Audio: map[string]string{
			"music": "audio/music.ogg",
			"crash": "audio/missing.wav",
		},
	}
}

func collect(t *testing.T, ch <-chan Result) map[string]Result {
	t.Helper()
	got := make(map[string]Result)
	timeout := time.After(5 * time.Second)
	for {
		select {
		case r, ok := <-ch:
			if !ok {
				return got
			}
			got[r.ID] = r
		case <-timeout:
			t.Fatal("loader did not finish")
		}
	}
}

func TestLoaderReportsEveryEntry(t *testing.T) {
	got := collect(t, NewLoader(testFS(t)).Load(context.Background(), testManifest()))

	if len(got) != 5 {
		t.Fatalf("results: got %d, want 5", len(got))
	}

	bird := got["bird"]
	if bird.Err != nil || bird.Image == nil {
		t.Fatalf("bird: err=%v image=%v", bird.Err, bird.Image)
	}
	if b := bird.Image.Bounds(); b.Dx() != 34 || b.Dy() != 24 {
		t.Errorf("bird bounds %v, want 34x24", b)
	}

	if got["broken"].Err == nil {
		t.Error("undecodable image reported no error")
	}
	if err := got["gameover"].Err; !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("missing image error = %v, want fs.ErrNotExist", err)
	}

	music := got["music"]
	if music.Err != nil || string(music.Data) != "OggS fake" || music.Kind != KindAudio {
		t.Errorf("music: %+v", music)
	}
	if !errors.Is(got["crash"].Err, fs.ErrNotExist) {
		t.Errorf("missing audio error = %v", got["crash"].Err)
	}
}

func TestLoaderCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got := collect(t, NewLoader(testFS(t)).Load(ctx, testManifest()))
	if len(got) > 5 {
		t.Errorf("results after cancel: %d", len(got))
	}
}

type recordingSink struct {
	ids []string
	err error
}

func (s *recordingSink) Register(id, path string, data []byte) error {
	s.ids = append(s.ids, id)
	return s.err
}

func TestStorePoll(t *testing.T) {
	results := make(chan Result, 4)
	sink := &recordingSink{}
	s := NewStore(results, sink)
	s.newImage = func(image.Image) *ebiten.Image { return &ebiten.Image{} }

	// Nothing available: Poll must not block.
	s.Poll()
	if s.Image("bird") != nil || s.Done() {
		t.Fatal("store ready before any result")
	}

	results <- Result{ID: "bird", Kind: KindImage, Image: image.NewRGBA(image.Rect(0, 0, 1, 1))}
	results <- Result{ID: "pipe", Kind: KindImage, Err: fs.ErrNotExist}
	results <- Result{ID: "music", Kind: KindAudio, Data: []byte("x")}
	s.Poll()

	if s.Image("bird") == nil {
		t.Error("bird not available after Poll")
	}
	if s.Image("pipe") != nil || !errors.Is(s.Failed("pipe"), fs.ErrNotExist) {
		t.Error("failed pipe image not recorded")
	}
	if len(sink.ids) != 1 || sink.ids[0] != "music" {
		t.Errorf("audio sink got %v, want [music]", sink.ids)
	}

	close(results)
	s.Poll()
	if !s.Done() {
		t.Error("store not done after channel closed")
	}
}

func TestStoreAudioRegisterFailure(t *testing.T) {
	results := make(chan Result, 1)
	sink := &recordingSink{err: errors.New("decode failed")}
	s := NewStore(results, sink)

	results <- Result{ID: "crash", Kind: KindAudio, Data: []byte("x")}
	s.Poll()

	if s.Failed("crash") == nil {
		t.Error("audio register failure not recorded")
	}
}
