package risk

import (
	"fmt"
	"math"
	"slices"
)

// Probability bounds applied to every model's raw score.
const (
	MinProbability = 0.05
	MaxProbability = 0.95
)

// Level is a coarse risk band.
type Level int

const (
	LevelUnknown Level = iota
	LevelLow
	LevelMedium
	LevelHigh
)

// String returns the lower-case band name used in JSON.
func (l Level) String() string {
	switch l {
	case LevelLow:
		return "low"
	case LevelMedium:
		return "medium"
	case LevelHigh:
		return "high"
	default:
		return "unknown"
	}
}

// Label returns the human readable band name.
func (l Level) Label() string {
	switch l {
	case LevelLow:
		return "Low Risk"
	case LevelMedium:
		return "Moderate Risk"
	case LevelHigh:
		return "High Risk"
	default:
		return "Unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Level) UnmarshalText(b []byte) error {
	switch string(b) {
	case "low":
		*l = LevelLow
	case "medium":
		*l = LevelMedium
	case "high":
		*l = LevelHigh
	case "unknown", "":
		*l = LevelUnknown
	default:
		return fmt.Errorf("risk: unknown level %q", b)
	}
	return nil
}

// Factor is one rule that fired. Positive impact raises the risk.
type Factor struct {
	Name   string  `json:"name"`
	Impact float64 `json:"impact"`
}

// Increases reports whether the factor raises the risk.
func (f Factor) Increases() bool { return f.Impact > 0 }

// Result is the outcome of one model.
type Result struct {
	Probability float64  `json:"probability"`
	Level       Level    `json:"riskLevel"`
	Factors     []Factor `json:"factors"`

	// BMI and Category are set by the obesity model only.
	BMI      float64 `json:"bmi,omitempty"`
	Category string  `json:"category,omitempty"`
}

// thresholds splits a probability into levels: high at or above high,
// medium at or above medium.
type thresholds struct {
	high, medium float64
}

func (t thresholds) level(p float64) Level {
	switch {
	case p >= t.high:
		return LevelHigh
	case p >= t.medium:
		return LevelMedium
	default:
		return LevelLow
	}
}

// tally accumulates a raw score and the factors that explain it.
type tally struct {
	score   float64
	factors []Factor
}

// add records a factor that moves the score.
func (t *tally) add(name string, impact float64) {
	t.score += impact
	t.factors = append(t.factors, Factor{Name: name, Impact: impact})
}

// note records an explanatory factor without moving the score.
func (t *tally) note(name string, impact float64) {
	t.factors = append(t.factors, Factor{Name: name, Impact: impact})
}

// result clamps the score, bands it and keeps the limit heaviest factors.
func (t *tally) result(th thresholds, limit int) Result {
	p := clampProbability(t.score)
	return Result{
		Probability: p,
		Level:       th.level(p),
		Factors:     topFactors(t.factors, limit),
	}
}

func clampProbability(score float64) float64 {
	if math.IsNaN(score) {
		return MinProbability
	}
	return max(MinProbability, min(MaxProbability, score))
}

// topFactors orders factors by descending absolute impact, keeping the
// original order among ties, and truncates to limit.
func topFactors(fs []Factor, limit int) []Factor {
	out := slices.Clone(fs)
	slices.SortStableFunc(out, func(a, b Factor) int {
		x, y := math.Abs(a.Impact), math.Abs(b.Impact)
		switch {
		case x > y:
			return -1
		case x < y:
			return 1
		}
		return 0
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
