// Package risk scores simple rule-based health risk estimates.
//
// Each model takes a typed input, adds up a fixed table of weighted rules
// and returns a [Result] with a probability clamped to [0.05, 0.95], a
// coarse [Level] and the contributing factors ordered by weight. The
// models are illustrative screening aids, not diagnostic tools.
//
// Payloads arriving as JSON are dispatched by model name with [Score]:
//
//	res, err := risk.Score(risk.ModelDiabetes, payload)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(res.Level.Label(), res.Probability)
package risk
