package heart

import (
	"math"
	"testing"
)

func TestHeartPoint(t *testing.T) {
	tests := []struct {
		name string
		t    float64
		want Point
	}{
		{"top notch", 0, Point{X: 0, Y: -5}},
		{"right lobe", math.Pi / 2, Point{X: 16, Y: -4}},
		{"bottom tip", math.Pi, Point{X: 0, Y: 17}},
		{"left lobe", 3 * math.Pi / 2, Point{X: -16, Y: -4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HeartPoint(tt.t)
			if !pointNear(got, tt.want, 1e-9) {
				t.Errorf("HeartPoint(%v) = %v, want %v", tt.t, got, tt.want)
			}
		})
	}
}

func TestInsideHeart(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"origin", 0, 0, true},
		{"lobe", 8, -8, true},
		{"far right", 40, 0, false},
		{"below tip", 0, 30, false},
		{"above notch", 0, -30, false},
		{"left of lobe", -20, -8, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InsideHeart(tt.x, tt.y); got != tt.want {
				t.Errorf("InsideHeart(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestLayout(t *testing.T) {
	center, scale := Layout(800, 400)
	if !pointNear(center, Point{X: 400, Y: 190}, 1e-12) {
		t.Errorf("center = %v, want (400, 190)", center)
	}
	if math.Abs(scale-10) > 1e-12 {
		t.Errorf("scale = %v, want 10", scale)
	}
}

func TestSplitCounts(t *testing.T) {
	tests := []struct {
		total         int
		outline, fill int
	}{
		{900, 180, 675},
		{3, 0, 2},
		{10, 2, 7},
		{0, 0, 0},
		{-5, 0, 0},
	}
	for _, tt := range tests {
		o, f := SplitCounts(tt.total)
		if o != tt.outline || f != tt.fill {
			t.Errorf("SplitCounts(%d) = (%d, %d), want (%d, %d)", tt.total, o, f, tt.outline, tt.fill)
		}
	}
}

func countKinds(homes []Home) map[Kind]int {
	n := make(map[Kind]int)
	for _, h := range homes {
		n[h.Kind]++
	}
	return n
}

func TestSampleHeartScenario(t *testing.T) {
	homes := SampleHeart(Point{X: 200, Y: 200}, 10, 900, NewRand(1))
	if len(homes) != 900 {
		t.Fatalf("len = %d, want 900", len(homes))
	}
	n := countKinds(homes)
	if n[KindOutline] != 180 || n[KindFill] != 675 || n[KindSparkle] != 45 {
		t.Errorf("counts = outline %d, fill %d, sparkle %d; want 180, 675, 45",
			n[KindOutline], n[KindFill], n[KindSparkle])
	}

	// Order is outline, fill, sparkle.
	for i, h := range homes {
		var want Kind
		switch {
		case i < 180:
			want = KindOutline
		case i < 855:
			want = KindFill
		default:
			want = KindSparkle
		}
		if h.Kind != want {
			t.Fatalf("homes[%d].Kind = %v, want %v", i, h.Kind, want)
		}
	}
}

func TestSampleHeartFillInside(t *testing.T) {
	center := Point{X: 120, Y: 90}
	for _, scale := range []float64{0.5, 3, 10, 42} {
		homes := SampleHeart(center, scale, 600, NewRand(uint64(scale*100)))
		for i, h := range homes {
			if h.Kind != KindFill {
				continue
			}
			sx := (h.X - center.X) / (16 * scale)
			sy := -(h.Y - center.Y) / (16 * scale)
			a := sx*sx + sy*sy - 1
			if v := a*a*a - sx*sx*sy*sy*sy; v >= 0 {
				t.Fatalf("scale %v: fill point %d %v outside heart (f=%v)", scale, i, h.Point, v)
			}
		}
	}
}

func TestSampleHeartExactTotal(t *testing.T) {
	rng := NewRand(99)
	for total := 3; total <= 200; total++ {
		homes := SampleHeart(Point{}, 5, total, rng)
		if len(homes) != total {
			t.Fatalf("SampleHeart(total=%d) returned %d points", total, len(homes))
		}
	}
}

// rejectAll places every fill candidate in a box corner, outside the heart.
type rejectAll struct{}

func (rejectAll) Float64() float64 { return 0 }

func TestSampleHeartBudgetExhausted(t *testing.T) {
	homes := SampleHeart(Point{}, 1, 100, rejectAll{})
	if len(homes) != 100 {
		t.Fatalf("len = %d, want 100", len(homes))
	}
	n := countKinds(homes)
	if n[KindFill] != 0 {
		t.Errorf("fill = %d, want 0 when every candidate is rejected", n[KindFill])
	}
	if n[KindOutline] != 20 || n[KindSparkle] != 80 {
		t.Errorf("outline = %d, sparkle = %d; want 20, 80", n[KindOutline], n[KindSparkle])
	}
}

func TestSampleHeartDegenerate(t *testing.T) {
	tests := []struct {
		name  string
		scale float64
		total int
	}{
		{"zero scale", 0, 900},
		{"negative scale", -1, 900},
		{"NaN scale", math.NaN(), 900},
		{"infinite scale", math.Inf(1), 900},
		{"zero total", 10, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SampleHeart(Point{}, tt.scale, tt.total, NewRand(1)); got != nil {
				t.Errorf("SampleHeart() returned %d points, want nil", len(got))
			}
		})
	}
}

func TestSampleHeartOutlineOnCurve(t *testing.T) {
	center := Point{X: 50, Y: 60}
	const scale = 4.0
	homes := SampleHeart(center, scale, 100, NewRand(5))
	outline, _ := SplitCounts(100)
	for i := range outline {
		tt := float64(i) / float64(outline) * 2 * math.Pi
		hp := HeartPoint(tt)
		d := homes[i].Sub(center)
		// Jitter scales both coordinates by the same factor in [0.96, 1.04).
		if hp.Length() == 0 {
			continue
		}
		ratio := d.Length() / (hp.Length() * scale)
		if ratio < 0.96-1e-9 || ratio >= 1.04+1e-9 {
			t.Errorf("outline %d jitter ratio = %v, want [0.96, 1.04)", i, ratio)
		}
	}
}

func TestSampleHeartDeterministic(t *testing.T) {
	a := SampleHeart(Point{X: 10, Y: 10}, 2, 300, NewRand(7))
	b := SampleHeart(Point{X: 10, Y: 10}, 2, 300, NewRand(7))
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("home %d differs with the same seed: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestKindString(t *testing.T) {
	for k, want := range map[Kind]string{
		KindPlain: "plain", KindOutline: "outline", KindFill: "fill", KindSparkle: "sparkle", Kind(42): "unknown",
	} {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", k, got, want)
		}
	}
}

func pointNear(a, b Point, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol
}
