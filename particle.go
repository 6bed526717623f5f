package heart

import "math"

// Particle physics and appearance constants.
const (
	// SpringConstant pulls velocity toward the drifting target each tick.
	SpringConstant = 0.045

	// Damping multiplies velocity on both axes once per tick, after all forces.
	Damping = 0.9

	// RepelRadius is the distance below which the pointer pushes particles.
	RepelRadius = 55.0

	// RepelStrength is the impulse magnitude at zero distance.
	RepelStrength = 1.2

	// MinRepelDistance is the distance at or below which repulsion is skipped.
	MinRepelDistance = 0.1

	// HaloThreshold is the radius above which a soft halo is drawn.
	HaloThreshold = 1.4

	haloRadiusScale = 2.5
	haloAlphaScale  = 0.12

	// spawnSpread is the width of the random offset from home at creation.
	spawnSpread = 20.0
)

// Particle is one point of the field. Its kinematic state is mutated only
// by its own Update; everything else is fixed at construction.
type Particle struct {
	home Point
	pos  Point
	vel  Point

	radius     float64
	color      Color
	alpha      float64
	phase      float64
	driftSpeed float64
	driftAmp   float64
}

// NewParticle creates a particle anchored at h. The particle starts within
// ±10 units of its home at rest; radius and color follow h.Kind.
func NewParticle(h Home, rng Rand) *Particle {
	p := &Particle{
		home: h.Point,
		pos: Point{
			X: h.X + (rng.Float64()-0.5)*spawnSpread,
			Y: h.Y + (rng.Float64()-0.5)*spawnSpread,
		},
	}
	base, span := h.Kind.radiusRange()
	p.radius = base + rng.Float64()*span
	p.phase = rng.Float64() * 2 * math.Pi
	p.driftSpeed = 0.2 + rng.Float64()*0.35
	p.driftAmp = 1 + rng.Float64()*2
	if h.Kind == KindSparkle {
		p.color = SparkleTint
	} else {
		p.color = RandomHeartColor(rng)
	}
	p.alpha = 0.55 + rng.Float64()*0.45
	return p
}

// Home returns the particle's anchor.
func (p *Particle) Home() Point { return p.home }

// Position returns the current position.
func (p *Particle) Position() Point { return p.pos }

// Velocity returns the current velocity.
func (p *Particle) Velocity() Point { return p.vel }

// Radius returns the disc radius.
func (p *Particle) Radius() float64 { return p.radius }

// Color returns the base color.
func (p *Particle) Color() Color { return p.color }

// Alpha returns the stored base alpha, always in [0, 1].
func (p *Particle) Alpha() float64 { return p.alpha }

// Target returns the drifting point the particle is pulled toward at time t.
func (p *Particle) Target(t float64) Point {
	return Point{
		X: p.home.X + math.Sin(t*p.driftSpeed+p.phase)*p.driftAmp,
		Y: p.home.Y + math.Cos(t*p.driftSpeed*0.8+p.phase)*p.driftAmp,
	}
}

// Update advances the particle by one tick.
func (p *Particle) Update(t float64, ptr Pointer) {
	target := p.Target(t)
	p.vel = p.vel.Add(target.Sub(p.pos).Mul(SpringConstant))
	p.vel = p.vel.Add(repulsion(p.pos, ptr))
	p.vel = p.vel.Mul(Damping)
	p.pos = p.pos.Add(p.vel)
}

// repulsion returns the impulse the pointer applies at pos. It is zero when
// the pointer is inactive, too far away, or too close to define a direction.
func repulsion(pos Point, ptr Pointer) Point {
	if !ptr.Active {
		return Point{}
	}
	d := pos.Sub(Point{X: ptr.X, Y: ptr.Y})
	dist := d.Length()
	if dist >= RepelRadius || dist <= MinRepelDistance {
		return Point{}
	}
	force := (RepelRadius - dist) / RepelRadius * RepelStrength
	return d.Mul(force / dist)
}

// Twinkle returns the alpha multiplier at time t, in [0.4, 1].
func (p *Particle) Twinkle(t float64) float64 {
	return 0.7 + 0.3*math.Sin(t*3+p.phase*5)
}

// Draw renders the particle onto c. Larger particles get a faint halo.
func (p *Particle) Draw(c Canvas, t float64) {
	alpha := p.alpha * p.Twinkle(t)
	c.FillCircle(p.pos.X, p.pos.Y, p.radius, p.color, alpha)
	if p.radius > HaloThreshold {
		c.FillCircle(p.pos.X, p.pos.Y, p.radius*haloRadiusScale, p.color, alpha*haloAlphaScale)
	}
}
