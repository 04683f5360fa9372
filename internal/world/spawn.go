package world

// spawnPipe appends a pipe at x with a random gap position. The top height
// is uniform in [MinMargin, Height-GapSize-MinMargin], which keeps both
// segments at least MinMargin tall.
func (w *World) spawnPipe(x float64) {
	p := w.cfg.Pipes
	top := w.uniform(p.MinMargin, w.cfg.Viewport.Height-p.GapSize-p.MinMargin)
	w.Pipes = append(w.Pipes, Pipe{
		X:         x,
		TopHeight: top,
		BottomY:   top + p.GapSize,
	})
}

func (w *World) newCloud(x float64) Cloud {
	c := w.cfg.Clouds
	return Cloud{
		X:     x,
		Y:     w.uniform(0, c.MaxY),
		Speed: w.uniform(c.MinSpeed, c.MaxSpeed),
		Size:  w.uniform(c.MinSize, c.MaxSize),
	}
}

// spawnCloud adds a cloud whose left edge sits on the right viewport edge.
func (w *World) spawnCloud() {
	cl := w.newCloud(0)
	cl.X = w.cfg.Viewport.Width + cloudLeftExtent*cl.Size
	w.Clouds = append(w.Clouds, cl)
}

// burst emits a feather burst centered on (x, y).
func (w *World) burst(x, y float64) {
	pc := w.cfg.Particles
	for i := 0; i < pc.BurstCount; i++ {
		w.Particles = append(w.Particles, Particle{
			X:       x,
			Y:       y,
			VX:      w.uniform(pc.MinVX, pc.MaxVX),
			VY:      w.uniform(pc.MinVY, pc.MaxVY),
			Life:    pc.Life,
			MaxLife: pc.Life,
			Color:   w.particleColor,
		})
	}
}
