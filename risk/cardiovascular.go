package risk

// CardiovascularInput describes one cardiovascular screening.
type CardiovascularInput struct {
	Age         int     `json:"age"`
	Gender      string  `json:"gender"`           // "male" or "female"
	SystolicBP  float64 `json:"bloodPressureSys"` // mmHg
	DiastolicBP float64 `json:"bloodPressureDia"` // mmHg, recorded but unscored
	Cholesterol string  `json:"cholesterol"`      // "normal", "borderline" or "high"
	BMI         float64 `json:"bmi"`
	Smoking     bool    `json:"smoking"`
	Alcohol     bool    `json:"alcohol"`
	Physical    bool    `json:"physical"` // exercises regularly
}

var cardiovascularBands = thresholds{high: 0.6, medium: 0.35}

// Cardiovascular scores cardiovascular disease risk. At most six factors
// are returned.
func Cardiovascular(in CardiovascularInput) Result {
	var t tally

	switch {
	case in.Age >= 65:
		t.add("Age (65+)", 0.25)
	case in.Age >= 55:
		t.add("Age (55-64)", 0.15)
	case in.Age >= 45:
		t.add("Age (45-54)", 0.08)
	default:
		t.note("Age (<45)", -0.1)
	}

	switch {
	case in.SystolicBP >= 180:
		t.add("Severe High BP", 0.3)
	case in.SystolicBP >= 140:
		t.add("High Blood Pressure", 0.2)
	case in.SystolicBP >= 130:
		t.add("Elevated BP", 0.1)
	default:
		t.note("Normal BP", -0.1)
	}

	switch in.Cholesterol {
	case "high":
		t.add("High Cholesterol", 0.2)
	case "borderline":
		t.add("Borderline Cholesterol", 0.1)
	default:
		t.note("Normal Cholesterol", -0.05)
	}

	switch {
	case in.BMI >= 35:
		t.add("Obesity (Class II+)", 0.2)
	case in.BMI >= 30:
		t.add("Obesity (Class I)", 0.15)
	case in.BMI >= 25:
		t.add("Overweight", 0.08)
	default:
		t.note("Healthy Weight", -0.05)
	}

	if in.Smoking {
		t.add("Smoking", 0.2)
	} else {
		t.note("Non-Smoker", -0.1)
	}
	if in.Alcohol {
		t.add("Alcohol Consumption", 0.1)
	}
	if in.Physical {
		t.add("Regular Exercise", -0.1)
	} else {
		t.add("Sedentary Lifestyle", 0.1)
	}

	if in.Gender == "male" && in.Age >= 45 {
		t.add("Male Gender (45+)", 0.05)
	}

	return t.result(cardiovascularBands, 6)
}
