package risk

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCardiovascular(t *testing.T) {
	tests := []struct {
		name string
		in   CardiovascularInput
		want Result
	}{
		{
			name: "high risk older smoker",
			in: CardiovascularInput{
				Age: 70, Gender: "male", SystolicBP: 150, Cholesterol: "high",
				BMI: 32, Smoking: true,
			},
			want: Result{
				Probability: 0.95,
				Level:       LevelHigh,
				Factors: []Factor{
					{"Age (65+)", 0.25},
					{"High Blood Pressure", 0.2},
					{"High Cholesterol", 0.2},
					{"Smoking", 0.2},
					{"Obesity (Class I)", 0.15},
					{"Sedentary Lifestyle", 0.1},
				},
			},
		},
		{
			name: "low risk active adult",
			in: CardiovascularInput{
				Age: 30, Gender: "female", SystolicBP: 110, Cholesterol: "normal",
				BMI: 22, Physical: true,
			},
			want: Result{
				Probability: 0.05,
				Level:       LevelLow,
				Factors: []Factor{
					{"Age (<45)", -0.1},
					{"Normal BP", -0.1},
					{"Non-Smoker", -0.1},
					{"Regular Exercise", -0.1},
					{"Normal Cholesterol", -0.05},
					{"Healthy Weight", -0.05},
				},
			},
		},
		{
			name: "moderate at the boundary",
			in: CardiovascularInput{
				Age: 50, Gender: "female", SystolicBP: 135, Cholesterol: "borderline",
				BMI: 27, Alcohol: true, Physical: true,
			},
			want: Result{
				Probability: 0.36,
				Level:       LevelMedium,
				Factors: []Factor{
					{"Elevated BP", 0.1},
					{"Borderline Cholesterol", 0.1},
					{"Non-Smoker", -0.1},
					{"Alcohol Consumption", 0.1},
					{"Regular Exercise", -0.1},
					{"Age (45-54)", 0.08},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Cardiovascular(tt.in)
			if diff := cmp.Diff(tt.want, got, approx); diff != "" {
				t.Errorf("Cardiovascular() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCardiovascularMaleUnder45(t *testing.T) {
	r := Cardiovascular(CardiovascularInput{Age: 40, Gender: "male", SystolicBP: 120})
	for _, f := range r.Factors {
		if f.Name == "Male Gender (45+)" {
			t.Error("male adjustment applied under 45")
		}
	}
}

func TestDiabetes(t *testing.T) {
	tests := []struct {
		name string
		in   DiabetesInput
		want Result
	}{
		{
			name: "very high glucose",
			in:   DiabetesInput{Glucose: 210, BMI: 36, Age: 62, BloodPressure: 130, Insulin: 160},
			want: Result{
				Probability: 0.95,
				Level:       LevelHigh,
				Factors: []Factor{
					{"Very High Glucose", 0.4},
					{"Severe Obesity", 0.25},
					{"Age 60+", 0.15},
					{"High Insulin", 0.15},
					{"Elevated BP", 0.06},
				},
			},
		},
		{
			name: "boundaries are inclusive",
			in:   DiabetesInput{Glucose: 100, BMI: 25, Age: 45},
			want: Result{
				Probability: 0.35,
				Level:       LevelMedium,
				Factors: []Factor{
					{"Pre-Diabetic Glucose", 0.15},
					{"Overweight", 0.1},
					{"Age 45-59", 0.1},
					{"Normal BP", -0.05},
				},
			},
		},
		{
			name: "insulin threshold is exclusive",
			in:   DiabetesInput{Glucose: 90, BMI: 22, Age: 30, BloodPressure: 80, Insulin: 80},
			want: Result{
				Probability: 0.05,
				Level:       LevelLow,
				Factors: []Factor{
					{"Normal Glucose", -0.15},
					{"Healthy BMI", -0.1},
					{"Young Age", -0.05},
					{"Normal BP", -0.05},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Diabetes(tt.in)
			if diff := cmp.Diff(tt.want, got, approx); diff != "" {
				t.Errorf("Diabetes() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestHeartDisease(t *testing.T) {
	tests := []struct {
		name string
		in   HeartDiseaseInput
		want Result
	}{
		{
			name: "every rule fires",
			in: HeartDiseaseInput{
				Age: 66, Sex: "male", ChestPain: "typical", RestingBP: 165,
				Cholesterol: 300, FastingBS: true, MaxHR: 100, ExerciseAngina: true,
				STDepression: 2.5, Vessels: 3, Thalassemia: "reversible",
			},
			want: Result{
				Probability: 0.95,
				Level:       LevelHigh,
				Factors: []Factor{
					{"Typical Angina", 0.2},
					{"High ST Depression", 0.2},
					{"Multiple Vessel Issues", 0.2},
					{"Exercise Angina", 0.18},
					{"Age (65+)", 0.15},
					{"Very High BP", 0.15},
					{"Very High Cholesterol", 0.15},
					{"Reversible Defect", 0.15},
				},
			},
		},
		{
			name: "zero max heart rate counts as low",
			in:   HeartDiseaseInput{},
			want: Result{
				Probability: 0.12,
				Level:       LevelLow,
				Factors:     []Factor{{"Low Max Heart Rate", 0.12}},
			},
		},
		{
			name: "good heart rate only explains",
			in:   HeartDiseaseInput{Age: 40, Sex: "female", MaxHR: 180},
			want: Result{
				Probability: 0.05,
				Level:       LevelLow,
				Factors:     []Factor{{"Good Max Heart Rate", -0.1}},
			},
		},
		{
			name: "moderate",
			in: HeartDiseaseInput{
				Age: 58, Sex: "male", ChestPain: "atypical", MaxHR: 150, Vessels: 1,
			},
			want: Result{
				Probability: 0.4,
				Level:       LevelMedium,
				Factors: []Factor{
					{"Atypical Angina", 0.12},
					{"Age (55-64)", 0.1},
					{"Single Vessel Issue", 0.1},
					{"Male Sex", 0.08},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HeartDisease(tt.in)
			if diff := cmp.Diff(tt.want, got, approx); diff != "" {
				t.Errorf("HeartDisease() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestObesity(t *testing.T) {
	tests := []struct {
		name string
		in   ObesityInput
		want Result
	}{
		{
			name: "class two with habits",
			in: ObesityInput{
				Height: 170, Weight: 110, Age: 55, Vegetables: 1, Meals: 4, Water: 2,
				PhysicalActivity: "none", Alcohol: "frequently", FamilyHistory: true,
			},
			want: Result{
				Probability: 0.95,
				Level:       LevelHigh,
				BMI:         38.1,
				Category:    "Obesity Type II",
				Factors: []Factor{
					{"Obesity Class II", 0.35},
					{"No Physical Activity", 0.2},
					{"Family History", 0.15},
					{"Low Vegetable Intake", 0.1},
					{"Frequent Eating", 0.1},
					{"Frequent Alcohol", 0.1},
				},
			},
		},
		{
			name: "healthy and active",
			in: ObesityInput{
				Height: 180, Weight: 70, Age: 30, Vegetables: 5, Meals: 3, Water: 8,
				PhysicalActivity: "high", Alcohol: "never",
			},
			want: Result{
				Probability: 0.05,
				Level:       LevelLow,
				BMI:         21.6,
				Category:    "Normal Weight",
				Factors: []Factor{
					{"Healthy BMI", -0.15},
					{"High Activity", -0.15},
					{"High Vegetable Intake", -0.1},
				},
			},
		},
		{
			name: "underweight is noted",
			in: ObesityInput{
				Height: 180, Weight: 50, Age: 25, Vegetables: 3, Meals: 3, Water: 6,
				PhysicalActivity: "moderate",
			},
			want: Result{
				Probability: 0.05,
				Level:       LevelLow,
				BMI:         15.4,
				Category:    "Underweight",
				Factors:     []Factor{{"Underweight", 0.05}},
			},
		},
		{
			name: "no height",
			in:   ObesityInput{Weight: 70},
			want: Result{Probability: MinProbability, Level: LevelUnknown},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Obesity(tt.in)
			if diff := cmp.Diff(tt.want, got, approx); diff != "" {
				t.Errorf("Obesity() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBMICategory(t *testing.T) {
	tests := []struct {
		bmi  float64
		want string
	}{
		{15, "Underweight"},
		{18.49, "Underweight"},
		{18.5, "Normal Weight"},
		{24.9, "Normal Weight"},
		{25, "Overweight"},
		{30, "Obesity Type I"},
		{35, "Obesity Type II"},
		{40, "Obesity Type III"},
		{55, "Obesity Type III"},
	}
	for _, tt := range tests {
		if got := BMICategory(tt.bmi); got != tt.want {
			t.Errorf("BMICategory(%v) = %q, want %q", tt.bmi, got, tt.want)
		}
	}
}

func TestObesityValidate(t *testing.T) {
	tests := []struct {
		name    string
		in      ObesityInput
		wantErr bool
	}{
		{"valid", ObesityInput{Height: 170, Weight: 60}, false},
		{"zero height", ObesityInput{Weight: 60}, true},
		{"negative weight", ObesityInput{Height: 170, Weight: -1}, true},
	}
	for _, tt := range tests {
		if err := tt.in.Validate(); (err != nil) != tt.wantErr {
			t.Errorf("%s: Validate() = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
	}
}
