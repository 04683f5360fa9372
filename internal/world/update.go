package world

// Step advances a running world by one frame: clouds, bird, pipes and
// particles in that order, then collisions. When a stage ends the run the
// remaining stages of the frame are skipped. Step does nothing unless a
// run is in progress.
func (w *World) Step() Events {
	var ev Events
	if w.state != StateRunning {
		return ev
	}

	w.updateClouds()
	w.updateBird(&ev)
	if !w.Running() {
		return ev
	}
	w.updatePipes(&ev)
	w.updateParticles()
	w.checkCollisions(&ev)
	return ev
}

// Advance runs up to n steps and merges their events. It stops early once
// the run ends.
func (w *World) Advance(n int) Events {
	var total Events
	for i := 0; i < n && w.Running(); i++ {
		ev := w.Step()
		total.Scored += ev.Scored
		if ev.Ended {
			total.Ended = true
			total.Cause = ev.Cause
		}
	}
	return total
}

func (w *World) updateClouds() {
	kept := w.Clouds[:0]
	for _, c := range w.Clouds {
		c.X -= c.Speed
		if c.Right() < 0 {
			continue
		}
		kept = append(kept, c)
	}
	w.Clouds = kept

	if w.rng.Float64() < w.cfg.Clouds.SpawnChance {
		w.spawnCloud()
	}
}

// updateBird integrates gravity and clamps to the floor and the ceiling.
// Only the floor is deadly.
func (w *World) updateBird(ev *Events) {
	b := &w.Bird
	b.Velocity += w.cfg.Bird.Gravity
	b.Y += b.Velocity

	floor := w.cfg.Viewport.FloorY
	if b.Y+b.H > floor {
		b.Y = floor - b.H
		b.Velocity = 0
		w.end(ev, CauseGround)
		return
	}
	if b.Y < 0 {
		b.Y = 0
		b.Velocity = 0
	}
}

func (w *World) updatePipes(ev *Events) {
	p := w.cfg.Pipes

	w.pipeTimer++
	if w.pipeTimer >= p.SpawnInterval {
		w.spawnPipe(w.cfg.Viewport.Width)
		w.pipeTimer = 0
	}

	kept := w.Pipes[:0]
	for _, pipe := range w.Pipes {
		pipe.X -= p.Speed
		if !pipe.Passed && pipe.X+p.Width < w.Bird.X {
			pipe.Passed = true
			w.Score++
			ev.Scored++
		}
		if pipe.X+p.Width < 0 {
			continue
		}
		kept = append(kept, pipe)
	}
	w.Pipes = kept
}

func (w *World) updateParticles() {
	kept := w.Particles[:0]
	for _, pt := range w.Particles {
		pt.X += pt.VX
		pt.Y += pt.VY
		pt.Life--
		if pt.Life <= 0 {
			continue
		}
		kept = append(kept, pt)
	}
	w.Particles = kept
}
