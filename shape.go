package heart

import "math"

// Shape sampling defaults.
const (
	// DefaultTotal is the number of particles a Field builds per layout.
	DefaultTotal = 900

	// OutlineShare is the fraction of particles placed along the curve.
	OutlineShare = 0.20

	// FillShare is the fraction of particles rejection-sampled inside the shape.
	FillShare = 0.75

	// FillAttemptFactor bounds rejection sampling at FillAttemptFactor
	// attempts per requested fill point.
	FillAttemptFactor = 30
)

// Kind tells particle construction which parameter ranges to use.
// It is a construction hint only; particles do not remember it.
type Kind uint8

const (
	// KindPlain uses the default radius range and a random palette color.
	KindPlain Kind = iota

	// KindOutline points sit on the jittered curve.
	KindOutline

	// KindFill points lie inside the silhouette.
	KindFill

	// KindSparkle points hug the outside of the curve in a pale tint.
	KindSparkle
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindPlain:
		return "plain"
	case KindOutline:
		return "outline"
	case KindFill:
		return "fill"
	case KindSparkle:
		return "sparkle"
	default:
		return "unknown"
	}
}

// radiusRange returns the base radius and random span for the kind.
func (k Kind) radiusRange() (base, span float64) {
	switch k {
	case KindOutline:
		return 0.7, 0.9
	case KindFill:
		return 0.6, 0.8
	case KindSparkle:
		return 0.4, 0.6
	default:
		return 0.8, 1.0
	}
}

// Home is a sampled anchor position plus its construction hint.
type Home struct {
	Point
	Kind Kind
}

// HeartPoint evaluates the parametric heart curve at t, in heart units
// (roughly [-16, 16] horizontally, y pointing down).
func HeartPoint(t float64) Point {
	s := math.Sin(t)
	return Point{
		X: 16 * s * s * s,
		Y: -(13*math.Cos(t) - 5*math.Cos(2*t) - 2*math.Cos(3*t) - math.Cos(4*t)),
	}
}

// InsideHeart reports whether (x, y), given in heart units with y pointing
// down, lies strictly inside the implicit heart
// (sx²+sy²−1)³ − sx²·sy³ < 0 with sx = x/16 and sy = −y/16.
func InsideHeart(x, y float64) bool {
	sx := x / 16
	sy := -y / 16
	a := sx*sx + sy*sy - 1
	return a*a*a-sx*sx*sy*sy*sy < 0
}

// Layout returns the center and scale the heart uses inside a
// width x height region.
func Layout(width, height float64) (center Point, scale float64) {
	return Point{X: width / 2, Y: height/2 - 10}, math.Min(width, height) * 0.025
}

// SplitCounts returns the outline count and the fill quota for total points.
// Sparkle takes whatever the other two leave.
func SplitCounts(total int) (outline, fill int) {
	if total <= 0 {
		return 0, 0
	}
	return int(math.Floor(float64(total) * OutlineShare)), int(math.Floor(float64(total) * FillShare))
}

// SampleHeart returns total home positions approximating a heart centred on
// center, in order: outline, fill, sparkle.
//
// Fill points are rejection-sampled from a box of half-width 16·scale and
// half-height 32·scale. Sampling gives up after FillAttemptFactor attempts
// per requested point; any shortfall is made up by extra sparkle points, so
// the result always has total entries.
//
// A non-positive or non-finite scale, or a non-positive total, yields nil.
func SampleHeart(center Point, scale float64, total int, rng Rand) []Home {
	if total <= 0 || !(scale > 0) || math.IsInf(scale, 0) {
		return nil
	}

	outlineN, fillN := SplitCounts(total)
	homes := make([]Home, 0, total)

	// Outline: evenly spaced along the curve with a slight jitter so the
	// edge is not a perfect line.
	for i := 0; i < outlineN; i++ {
		t := float64(i) / float64(outlineN) * 2 * math.Pi
		jitter := uniform(rng, 0.96, 1.04)
		hp := HeartPoint(t)
		homes = append(homes, Home{
			Point: Point{X: center.X + hp.X*scale*jitter, Y: center.Y + hp.Y*scale*jitter},
			Kind:  KindOutline,
		})
	}

	// Fill: rejection sampling against the implicit curve.
	halfW := 16 * scale
	halfH := 32 * scale
	filled := 0
	for tries := 0; filled < fillN && tries < fillN*FillAttemptFactor; tries++ {
		rx := (rng.Float64() - 0.5) * 2 * halfW
		ry := (rng.Float64() - 0.5) * 2 * halfH
		if !InsideHeart(rx/scale, ry/scale) {
			continue
		}
		homes = append(homes, Home{Point: Point{X: center.X + rx, Y: center.Y + ry}, Kind: KindFill})
		filled++
	}
	if filled < fillN {
		Logger().Debug("heart: fill budget exhausted", "filled", filled, "quota", fillN)
	}

	// Sparkle: random points just outside the outline.
	for i := len(homes); i < total; i++ {
		t := rng.Float64() * 2 * math.Pi
		spread := uniform(rng, 1.02, 1.14)
		hp := HeartPoint(t)
		homes = append(homes, Home{
			Point: Point{X: center.X + hp.X*scale*spread, Y: center.Y + hp.Y*scale*spread},
			Kind:  KindSparkle,
		})
	}

	return homes
}
