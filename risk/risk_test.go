package risk

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// approx compares probabilities and impacts that come out of float sums.
var approx = cmpopts.EquateApprox(0, 1e-9)

func TestLevel(t *testing.T) {
	tests := []struct {
		level       Level
		name, label string
	}{
		{LevelUnknown, "unknown", "Unknown"},
		{LevelLow, "low", "Low Risk"},
		{LevelMedium, "medium", "Moderate Risk"},
		{LevelHigh, "high", "High Risk"},
		{Level(42), "unknown", "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.name {
			t.Errorf("Level(%d).String() = %q, want %q", tt.level, got, tt.name)
		}
		if got := tt.level.Label(); got != tt.label {
			t.Errorf("Level(%d).Label() = %q, want %q", tt.level, got, tt.label)
		}
	}
}

func TestLevelText(t *testing.T) {
	for _, l := range []Level{LevelUnknown, LevelLow, LevelMedium, LevelHigh} {
		b, err := l.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var got Level
		if err := got.UnmarshalText(b); err != nil {
			t.Fatalf("UnmarshalText(%q) = %v", b, err)
		}
		if got != l {
			t.Errorf("text round trip of %v = %v", l, got)
		}
	}
	var l Level
	if err := l.UnmarshalText([]byte("severe")); err == nil {
		t.Error("UnmarshalText(severe) should fail")
	}
}

func TestClampProbability(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{-1, MinProbability},
		{0, MinProbability},
		{0.05, 0.05},
		{0.42, 0.42},
		{0.95, 0.95},
		{3, MaxProbability},
		{math.Inf(1), MaxProbability},
		{math.NaN(), MinProbability},
	}
	for _, tt := range tests {
		if got := clampProbability(tt.in); got != tt.want {
			t.Errorf("clampProbability(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestThresholds(t *testing.T) {
	th := thresholds{high: 0.5, medium: 0.3}
	tests := []struct {
		p    float64
		want Level
	}{
		{0.05, LevelLow},
		{0.2999, LevelLow},
		{0.3, LevelMedium},
		{0.4999, LevelMedium},
		{0.5, LevelHigh},
		{0.95, LevelHigh},
	}
	for _, tt := range tests {
		if got := th.level(tt.p); got != tt.want {
			t.Errorf("level(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestTopFactorsStableAndCapped(t *testing.T) {
	in := []Factor{
		{"a", 0.1}, {"b", -0.3}, {"c", 0.3}, {"d", -0.1}, {"e", 0.05},
	}
	got := topFactors(in, 4)
	want := []Factor{{"b", -0.3}, {"c", 0.3}, {"a", 0.1}, {"d", -0.1}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("topFactors() mismatch (-want +got):\n%s", diff)
	}
	if in[0].Name != "a" {
		t.Error("topFactors reordered its input")
	}
	if got := topFactors(nil, 3); len(got) != 0 {
		t.Errorf("topFactors(nil) = %v", got)
	}
}

func TestFactorIncreases(t *testing.T) {
	if !(Factor{Impact: 0.1}).Increases() {
		t.Error("positive impact should increase risk")
	}
	if (Factor{Impact: -0.1}).Increases() || (Factor{}).Increases() {
		t.Error("non-positive impact should not increase risk")
	}
}
