// Package assets loads the images and audio named in the manifest without
// blocking the game loop. Files are read and decoded on background
// goroutines; the game goroutine picks up finished results with Store.Poll.
package assets

import (
	"context"
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io/fs"
	"log"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/dawkrish/flappy/internal/config"
)

// Kind distinguishes image and audio resources.
type Kind int

const (
	KindImage Kind = iota
	KindAudio
)

func (k Kind) String() string {
	if k == KindAudio {
		return "audio"
	}
	return "image"
}

// Result is one finished load. Exactly one of Image, Data or Err is set.
type Result struct {
	ID    string
	Kind  Kind
	Path  string
	Image image.Image
	Data  []byte
	Err   error
}

// DefaultConcurrency bounds the number of files read at once.
const DefaultConcurrency = 4

// Loader reads manifest entries from a filesystem.
type Loader struct {
	fsys  fs.FS
	limit int
}

// NewLoader creates a loader over fsys, typically os.DirFS(manifest.Root).
func NewLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys, limit: DefaultConcurrency}
}

type job struct {
	id   string
	kind Kind
	path string
}

// Load starts loading every manifest entry and returns a channel that
// yields one Result per entry and is closed when all are done or ctx is
// cancelled. Failures are reported as results, never as a stop.
func (l *Loader) Load(ctx context.Context, m config.AssetManifest) <-chan Result {
	jobs := manifestJobs(m)
	out := make(chan Result, len(jobs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(l.limit)

	go func() {
		defer close(out)
		for _, j := range jobs {
			j := j
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				out <- l.load(j)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			log.Printf("[Assets] Loading stopped: %v", err)
		}
	}()

	return out
}

func (l *Loader) load(j job) Result {
	r := Result{ID: j.id, Kind: j.kind, Path: j.path}
	switch j.kind {
	case KindImage:
		r.Image, r.Err = l.decodeImage(j.path)
	case KindAudio:
		r.Data, r.Err = fs.ReadFile(l.fsys, j.path)
		if r.Err != nil {
			r.Err = fmt.Errorf("failed to read audio %s: %w", j.path, r.Err)
		}
	}
	return r
}

func (l *Loader) decodeImage(path string) (image.Image, error) {
	f, err := l.fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	return img, nil
}

// manifestJobs flattens the manifest in a stable order.
func manifestJobs(m config.AssetManifest) []job {
	jobs := make([]job, 0, len(m.Images)+len(m.Audio))
	for id, path := range m.Images {
		jobs = append(jobs, job{id: id, kind: KindImage, path: path})
	}
	for id, path := range m.Audio {
		jobs = append(jobs, job{id: id, kind: KindAudio, path: path})
	}
	sort.Slice(jobs, func(i, k int) bool {
		if jobs[i].kind != jobs[k].kind {
			return jobs[i].kind < jobs[k].kind
		}
		return jobs[i].id < jobs[k].id
	})
	return jobs
}
