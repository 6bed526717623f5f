package heart

// Option configures a Field during creation.
//
// Example:
//
//	// Default: 900 particles, software surface, time-seeded randomness
//	f := heart.New(container)
//
//	// Reproducible field with a custom surface
//	f := heart.New(container,
//	    heart.WithSeed(7),
//	    heart.WithSurfaceFactory(func() (heart.Surface, error) { return ggsurface.New(), nil }),
//	)
type Option func(*options)

// options holds optional configuration for Field creation.
type options struct {
	total      int
	rng        Rand
	newSurface func() (Surface, error)
	scheduler  FrameScheduler
}

// defaultOptions returns the default field options.
func defaultOptions() options {
	return options{
		total:      DefaultTotal,
		rng:        nil, // time-seeded in New if nil
		newSurface: func() (Surface, error) { return NewRasterSurface(), nil },
	}
}

// WithTotal sets how many particles each layout builds.
// Negative values are treated as zero.
func WithTotal(n int) Option {
	return func(o *options) {
		o.total = max(n, 0)
	}
}

// WithRand sets the random source for sampling and particle parameters.
func WithRand(r Rand) Option {
	return func(o *options) {
		o.rng = r
	}
}

// WithSeed is shorthand for WithRand(NewRand(seed)).
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.rng = NewRand(seed)
	}
}

// WithSurfaceFactory sets how the Field creates its drawable surface.
// Use this to render through a different backend.
func WithSurfaceFactory(fn func() (Surface, error)) Option {
	return func(o *options) {
		if fn != nil {
			o.newSurface = fn
		}
	}
}

// WithScheduler sets the frame scheduler explicitly. Without it the Field
// uses the container when it implements FrameScheduler, and otherwise
// advances only when Tick is called.
func WithScheduler(s FrameScheduler) Option {
	return func(o *options) {
		o.scheduler = s
	}
}
