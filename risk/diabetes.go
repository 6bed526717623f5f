package risk

// DiabetesInput describes one diabetes screening.
type DiabetesInput struct {
	Glucose       float64 `json:"glucose"` // mg/dL
	BMI           float64 `json:"bmi"`
	BloodPressure float64 `json:"bloodPressure"` // diastolic, mmHg
	Age           int     `json:"age"`
	Insulin       float64 `json:"insulin"`       // µU/mL
	SkinThickness float64 `json:"skinThickness"` // mm, recorded but unscored
}

var diabetesBands = thresholds{high: 0.55, medium: 0.3}

// Diabetes scores type 2 diabetes risk. Glucose carries the most weight.
// At most five factors are returned.
func Diabetes(in DiabetesInput) Result {
	var t tally

	switch {
	case in.Glucose >= 200:
		t.add("Very High Glucose", 0.4)
	case in.Glucose >= 140:
		t.add("High Glucose", 0.3)
	case in.Glucose >= 100:
		t.add("Pre-Diabetic Glucose", 0.15)
	default:
		t.note("Normal Glucose", -0.15)
	}

	switch {
	case in.BMI >= 35:
		t.add("Severe Obesity", 0.25)
	case in.BMI >= 30:
		t.add("Obesity", 0.18)
	case in.BMI >= 25:
		t.add("Overweight", 0.1)
	default:
		t.note("Healthy BMI", -0.1)
	}

	switch {
	case in.Age >= 60:
		t.add("Age 60+", 0.15)
	case in.Age >= 45:
		t.add("Age 45-59", 0.1)
	default:
		t.note("Young Age", -0.05)
	}

	switch {
	case in.BloodPressure >= 140:
		t.add("High Blood Pressure", 0.12)
	case in.BloodPressure >= 120:
		t.add("Elevated BP", 0.06)
	default:
		t.note("Normal BP", -0.05)
	}

	switch {
	case in.Insulin > 150:
		t.add("High Insulin", 0.15)
	case in.Insulin > 80:
		t.add("Elevated Insulin", 0.08)
	}

	return t.result(diabetesBands, 5)
}
