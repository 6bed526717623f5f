package risk

// HeartDiseaseInput follows the clinical attributes of the UCI heart
// disease data set.
type HeartDiseaseInput struct {
	Age            int     `json:"age"`
	Sex            string  `json:"sex"`       // "male" or "female"
	ChestPain      string  `json:"chestPain"` // "typical", "atypical", "nonanginal" or "asymptomatic"
	RestingBP      float64 `json:"restingBP"`
	Cholesterol    float64 `json:"cholesterol"` // mg/dL
	FastingBS      bool    `json:"fastingBS"`   // fasting blood sugar above 120 mg/dL
	RestingECG     string  `json:"restingECG"`  // recorded but unscored
	MaxHR          float64 `json:"maxHR"`
	ExerciseAngina bool    `json:"exerciseAngina"`
	STDepression   float64 `json:"stDepression"`
	STSlope        string  `json:"stSlope"` // recorded but unscored
	Vessels        int     `json:"vessels"` // major vessels colored by fluoroscopy, 0-3
	Thalassemia    string  `json:"thalassemia"`
}

var heartDiseaseBands = thresholds{high: 0.5, medium: 0.3}

// HeartDisease scores coronary heart disease risk. At most eight factors
// are returned.
func HeartDisease(in HeartDiseaseInput) Result {
	var t tally

	switch {
	case in.Age >= 65:
		t.add("Age (65+)", 0.15)
	case in.Age >= 55:
		t.add("Age (55-64)", 0.1)
	}

	if in.Sex == "male" {
		t.add("Male Sex", 0.08)
	}

	switch in.ChestPain {
	case "typical":
		t.add("Typical Angina", 0.2)
	case "atypical":
		t.add("Atypical Angina", 0.12)
	case "nonanginal":
		t.add("Non-Anginal Pain", 0.05)
	}

	switch {
	case in.RestingBP >= 160:
		t.add("Very High BP", 0.15)
	case in.RestingBP >= 140:
		t.add("High BP", 0.1)
	}

	switch {
	case in.Cholesterol >= 280:
		t.add("Very High Cholesterol", 0.15)
	case in.Cholesterol >= 240:
		t.add("High Cholesterol", 0.1)
	}

	if in.FastingBS {
		t.add("High Fasting Sugar", 0.08)
	}

	switch {
	case in.MaxHR < 120:
		t.add("Low Max Heart Rate", 0.12)
	case in.MaxHR > 170:
		t.note("Good Max Heart Rate", -0.1)
	}

	if in.ExerciseAngina {
		t.add("Exercise Angina", 0.18)
	}

	switch {
	case in.STDepression >= 2:
		t.add("High ST Depression", 0.2)
	case in.STDepression >= 1:
		t.add("Moderate ST Depression", 0.1)
	}

	switch {
	case in.Vessels >= 2:
		t.add("Multiple Vessel Issues", 0.2)
	case in.Vessels == 1:
		t.add("Single Vessel Issue", 0.1)
	}

	switch in.Thalassemia {
	case "reversible":
		t.add("Reversible Defect", 0.15)
	case "fixed":
		t.add("Fixed Defect", 0.1)
	}

	return t.result(heartDiseaseBands, 8)
}
