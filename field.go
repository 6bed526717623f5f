package heart

// TimeStep is the simulated time added per tick. It is fixed rather than
// measured, so visual speed follows the host's frame rate.
const TimeStep = 0.016

// Field is a live particle heart bound to one container.
//
// A Field is not safe for concurrent use. Hosts call every method, including
// the frame callback, from a single goroutine.
type Field struct {
	container Container
	scheduler FrameScheduler
	surface   Surface
	rng       Rand
	total     int

	particles     []*Particle
	width, height float64
	pixelRatio    float64
	sized         bool
	pointer       Pointer
	time          float64

	frame        FrameID
	framePending bool
	attached     bool
	disposed     bool
}

// New creates a Field inside container and starts its frame loop when a
// scheduler is available. It returns nil when container is nil or the
// surface cannot be created.
func New(container Container, opts ...Option) *Field {
	if container == nil {
		Logger().Debug("heart: no container, field not created")
		return nil
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = newTimeRand()
	}

	surface, err := o.newSurface()
	if err != nil || surface == nil {
		Logger().Warn("heart: surface creation failed", "err", err)
		return nil
	}

	f := &Field{
		container: container,
		scheduler: o.scheduler,
		surface:   surface,
		rng:       o.rng,
		total:     o.total,
		pointer:   offscreen,
	}
	if f.scheduler == nil {
		if s, ok := container.(FrameScheduler); ok {
			f.scheduler = s
		}
	}

	container.AppendChild(surface)
	f.attached = true

	f.measure()
	f.rebuild()
	f.requestFrame()

	Logger().Info("heart: field created",
		"width", f.width, "height", f.height, "pixel_ratio", f.pixelRatio, "particles", len(f.particles))
	return f
}

// Resize re-measures the container, resizes the surface and rebuilds every
// particle from scratch.
func (f *Field) Resize() {
	if f == nil || f.disposed || f.container == nil {
		return
	}
	f.measure()
	f.rebuild()
}

// measure reads the container size and sizes the surface to match.
func (f *Field) measure() {
	w, h := f.container.Size()
	f.width, f.height = max(w, 0), max(h, 0)
	f.pixelRatio = clampPixelRatio(f.container.DevicePixelRatio())

	if err := f.surface.Resize(f.width, f.height, f.pixelRatio); err != nil {
		Logger().Warn("heart: surface resize failed",
			"width", f.width, "height", f.height, "pixel_ratio", f.pixelRatio, "err", err)
		f.sized = false
		return
	}
	f.sized = true
}

// rebuild discards all particles and samples a fresh set for the current size.
func (f *Field) rebuild() {
	f.particles = nil
	if !f.sized || !(f.width > 0) || !(f.height > 0) {
		Logger().Debug("heart: degenerate geometry, no particles", "width", f.width, "height", f.height)
		return
	}

	center, scale := Layout(f.width, f.height)
	homes := SampleHeart(center, scale, f.total, f.rng)
	particles := make([]*Particle, len(homes))
	for i, h := range homes {
		particles[i] = NewParticle(h, f.rng)
	}
	f.particles = particles

	Logger().Debug("heart: particles rebuilt", "count", len(particles), "scale", scale)
}

// requestFrame schedules the next frame callback if a scheduler is present.
func (f *Field) requestFrame() {
	if f.scheduler == nil || f.disposed {
		return
	}
	f.frame = f.scheduler.RequestFrame(f.onFrame)
	f.framePending = true
}

// onFrame is the scheduler callback: queue the next frame, then tick.
func (f *Field) onFrame() {
	f.framePending = false
	if f.disposed {
		return
	}
	f.requestFrame()
	f.Tick()
}

// Tick advances simulated time by TimeStep and renders one frame:
// clear, switch to additive blending, update and draw every particle in
// order, restore normal blending. It does nothing after Dispose.
func (f *Field) Tick() {
	if f == nil || f.disposed || f.surface == nil {
		return
	}
	f.time += TimeStep

	s := f.surface
	s.ClearRect(0, 0, f.width, f.height)
	s.SetBlendMode(BlendLighter)
	for _, p := range f.particles {
		p.Update(f.time, f.pointer)
		p.Draw(s, f.time)
	}
	s.SetBlendMode(BlendNormal)
}

// PointerMove records a mouse position and marks the pointer active.
func (f *Field) PointerMove(x, y float64) {
	if f == nil {
		return
	}
	f.pointer = Pointer{X: x, Y: y, Active: true}
}

// PointerLeave marks the pointer inactive.
func (f *Field) PointerLeave() {
	if f == nil {
		return
	}
	f.pointer.Active = false
}

// TouchMove records the first touch point. An empty list is ignored.
func (f *Field) TouchMove(touches []Touch) {
	if f == nil || len(touches) == 0 {
		return
	}
	f.pointer = Pointer{X: touches[0].X, Y: touches[0].Y, Active: true}
}

// TouchEnd marks the pointer inactive.
func (f *Field) TouchEnd() {
	f.PointerLeave()
}

// Dispose stops the frame loop, detaches the surface from the container and
// releases it. It is safe to call more than once and on a zero Field.
func (f *Field) Dispose() {
	if f == nil || f.disposed {
		return
	}
	f.disposed = true

	if f.framePending && f.scheduler != nil {
		f.scheduler.CancelFrame(f.frame)
		f.framePending = false
	}
	if f.attached && f.container != nil && f.surface != nil {
		f.container.RemoveChild(f.surface)
		f.attached = false
	}
	if f.surface != nil {
		if err := f.surface.Close(); err != nil {
			Logger().Warn("heart: surface close failed", "err", err)
		}
	}
	f.particles = nil

	Logger().Info("heart: field disposed", "time", f.time)
}

// Particles returns the current particles in draw order. The slice is
// replaced, not modified, on rebuild.
func (f *Field) Particles() []*Particle { return f.particles }

// Len returns the number of live particles.
func (f *Field) Len() int { return len(f.particles) }

// Size returns the logical size last measured from the container.
func (f *Field) Size() (width, height float64) { return f.width, f.height }

// PixelRatio returns the clamped device pixel ratio in use.
func (f *Field) PixelRatio() float64 { return f.pixelRatio }

// Time returns the simulated clock.
func (f *Field) Time() float64 { return f.time }

// Pointer returns the current pointer state.
func (f *Field) Pointer() Pointer { return f.pointer }

// Surface returns the field's drawable.
func (f *Field) Surface() Surface { return f.surface }

// Disposed reports whether Dispose has been called.
func (f *Field) Disposed() bool { return f.disposed }
