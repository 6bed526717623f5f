package risk

import (
	"fmt"
	"math"
)

// ObesityInput describes one lifestyle questionnaire.
type ObesityInput struct {
	Height           float64 `json:"height"` // cm
	Weight           float64 `json:"weight"` // kg
	Age              int     `json:"age"`
	Gender           string  `json:"gender"`           // recorded but unscored
	Vegetables       float64 `json:"vegetables"`       // servings per day
	Meals            float64 `json:"meals"`            // main meals per day
	Water            float64 `json:"water"`            // glasses per day
	PhysicalActivity string  `json:"physicalActivity"` // "none", "low", "moderate" or "high"
	Alcohol          string  `json:"alcohol"`          // "never", "sometimes" or "frequently"
	FamilyHistory    bool    `json:"familyHistory"`
}

// Validate reports whether the body measurements allow a BMI.
func (in ObesityInput) Validate() error {
	if !(in.Height > 0) || math.IsInf(in.Height, 0) {
		return fmt.Errorf("%w: height %v cm", ErrInvalidInput, in.Height)
	}
	if !(in.Weight > 0) || math.IsInf(in.Weight, 0) {
		return fmt.Errorf("%w: weight %v kg", ErrInvalidInput, in.Weight)
	}
	return nil
}

// BMI returns weight / height² with height converted to meters.
func (in ObesityInput) BMI() float64 {
	m := in.Height / 100
	return in.Weight / (m * m)
}

var obesityBands = thresholds{high: 0.5, medium: 0.3}

// Obesity scores obesity risk from body measurements and habits. The
// result carries the BMI rounded to one decimal and its WHO category. At
// most six factors are returned. Inputs that fail Validate yield
// LevelUnknown and no factors.
func Obesity(in ObesityInput) Result {
	if in.Validate() != nil {
		return Result{Probability: MinProbability, Level: LevelUnknown}
	}
	bmi := in.BMI()
	var t tally

	switch {
	case bmi >= 40:
		t.add("Severe Obesity (BMI 40+)", 0.4)
	case bmi >= 35:
		t.add("Obesity Class II", 0.35)
	case bmi >= 30:
		t.add("Obesity Class I", 0.25)
	case bmi >= 25:
		t.add("Overweight", 0.15)
	case bmi >= 18.5:
		t.note("Healthy BMI", -0.15)
	default:
		t.note("Underweight", 0.05)
	}

	switch in.PhysicalActivity {
	case "none":
		t.add("No Physical Activity", 0.2)
	case "low":
		t.add("Low Activity", 0.1)
	case "high":
		t.add("High Activity", -0.15)
	}

	switch {
	case in.Vegetables < 2:
		t.add("Low Vegetable Intake", 0.1)
	case in.Vegetables >= 4:
		t.add("High Vegetable Intake", -0.1)
	}

	if in.Meals > 3 {
		t.add("Frequent Eating", 0.1)
	}
	if in.Water < 4 {
		t.add("Low Water Intake", 0.05)
	}
	if in.Alcohol == "frequently" {
		t.add("Frequent Alcohol", 0.1)
	}
	if in.FamilyHistory {
		t.add("Family History", 0.15)
	}
	if in.Age >= 50 {
		t.add("Age 50+", 0.1)
	}

	r := t.result(obesityBands, 6)
	r.BMI = math.Round(bmi*10) / 10
	r.Category = BMICategory(bmi)
	return r
}

// BMICategory names the weight class of a body mass index.
func BMICategory(bmi float64) string {
	switch {
	case bmi >= 40:
		return "Obesity Type III"
	case bmi >= 35:
		return "Obesity Type II"
	case bmi >= 30:
		return "Obesity Type I"
	case bmi >= 25:
		return "Overweight"
	case bmi < 18.5:
		return "Underweight"
	default:
		return "Normal Weight"
	}
}
