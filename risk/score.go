package risk

import (
	"errors"
	"fmt"
	"strings"

	json "github.com/json-iterator/go"
)

var (
	// ErrUnknownModel is returned for a model name Score does not know.
	ErrUnknownModel = errors.New("risk: unknown model")

	// ErrInvalidInput is returned when a payload cannot be scored.
	ErrInvalidInput = errors.New("risk: invalid input")
)

// Model names a scoring model.
type Model string

const (
	ModelCardiovascular Model = "cardiovascular"
	ModelDiabetes       Model = "diabetes"
	ModelHeartDisease   Model = "heart-disease"
	ModelObesity        Model = "obesity"
)

// Models lists every model in display order.
func Models() []Model {
	return []Model{ModelCardiovascular, ModelDiabetes, ModelHeartDisease, ModelObesity}
}

// Title returns the display name of the model.
func (m Model) Title() string {
	switch m {
	case ModelCardiovascular:
		return "Cardiovascular Disease"
	case ModelDiabetes:
		return "Diabetes"
	case ModelHeartDisease:
		return "Heart Disease"
	case ModelObesity:
		return "Obesity"
	default:
		return string(m)
	}
}

// ParseModel resolves a model name. Case, surrounding space and the
// separators "-" / "_" are ignored, so "Heart_Disease" and "heartdisease"
// both name ModelHeartDisease.
func ParseModel(name string) (Model, error) {
	key := strings.NewReplacer("-", "", "_", "", " ", "").Replace(strings.ToLower(strings.TrimSpace(name)))
	switch key {
	case "cardiovascular", "cvd":
		return ModelCardiovascular, nil
	case "diabetes":
		return ModelDiabetes, nil
	case "heartdisease", "heart":
		return ModelHeartDisease, nil
	case "obesity":
		return ModelObesity, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownModel, name)
}

// Score decodes a JSON payload for model m and runs it. Fields absent from
// the payload keep their zero value.
func Score(m Model, data []byte) (Result, error) {
	switch m {
	case ModelCardiovascular:
		var in CardiovascularInput
		if err := decode(m, data, &in); err != nil {
			return Result{}, err
		}
		return Cardiovascular(in), nil
	case ModelDiabetes:
		var in DiabetesInput
		if err := decode(m, data, &in); err != nil {
			return Result{}, err
		}
		return Diabetes(in), nil
	case ModelHeartDisease:
		var in HeartDiseaseInput
		if err := decode(m, data, &in); err != nil {
			return Result{}, err
		}
		return HeartDisease(in), nil
	case ModelObesity:
		var in ObesityInput
		if err := decode(m, data, &in); err != nil {
			return Result{}, err
		}
		if err := in.Validate(); err != nil {
			return Result{}, err
		}
		return Obesity(in), nil
	}
	return Result{}, fmt.Errorf("%w: %q", ErrUnknownModel, string(m))
}

func decode(m Model, data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("risk: decode %s payload: %w", m, err)
	}
	return nil
}

// MarshalResult encodes r as indented JSON.
func MarshalResult(r Result) ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}
