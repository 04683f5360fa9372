package world

// Rect is an axis-aligned box in virtual coordinates.
type Rect struct {
	X, Y, W, H float64
}

// Intersects reports whether r and o overlap strictly on both axes.
// Rectangles that only share an edge do not intersect.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.W && r.X+r.W > o.X &&
		r.Y < o.Y+o.H && r.Y+r.H > o.Y
}

// checkCollisions ends the run on the first pipe segment the bird touches.
func (w *World) checkCollisions(ev *Events) {
	bird := w.Bird.Rect()
	for i := range w.Pipes {
		top, bottom := w.PipeRects(&w.Pipes[i])
		if bird.Intersects(top) || bird.Intersects(bottom) {
			w.end(ev, CausePipe)
			return
		}
	}
}

// PipeRects returns the top segment, from the viewport top to the gap,
// and the bottom segment, from the gap end to the viewport bottom.
func (w *World) PipeRects(p *Pipe) (top, bottom Rect) {
	width := w.cfg.Pipes.Width
	top = Rect{X: p.X, Y: 0, W: width, H: p.TopHeight}
	bottom = Rect{X: p.X, Y: p.BottomY, W: width, H: w.cfg.Viewport.Height - p.BottomY}
	return top, bottom
}
