package predict

import (
	"fmt"
	"math"
)

// OutcomeProbabilities is the 1X2 probability triple every model produces.
// Values are fractions that sum to 1 within 1e-6.
type OutcomeProbabilities struct {
	HomeWin float64 `json:"home_win"`
	Draw    float64 `json:"draw"`
	AwayWin float64 `json:"away_win"`
}

// ScoreProbability pairs a scoreline like "2-1" with its probability
type ScoreProbability struct {
	Score       string  `json:"score"`
	Probability float64 `json:"probability"`
}

// Prediction is the standard per-model output. It is created fresh on every
// call and never shared between requests.
//
// Rounding contract: probabilities to 4 decimals, scores to 2 decimals,
// most likely score formatted "h-a".
type Prediction struct {
	Probabilities      OutcomeProbabilities `json:"probabilities"`
	PredictedHomeScore float64              `json:"predicted_home_score"`
	PredictedAwayScore float64              `json:"predicted_away_score"`
	MostLikelyScore    string               `json:"most_likely_score"`
	Confidence         float64              `json:"confidence"`
	ModelDetails       map[string]any       `json:"model_details"`
}

// newPrediction assembles the standard response shape shared by all models.
// Model specific diagnostics are merged into ModelDetails after the common fields.
func newPrediction(model ModelID, homeWin, draw, awayWin, homeExpected, awayExpected float64, mostLikelyScore string, details map[string]any) *Prediction {
	p := &Prediction{
		Probabilities: OutcomeProbabilities{
			HomeWin: round4(homeWin),
			Draw:    round4(draw),
			AwayWin: round4(awayWin),
		},
		PredictedHomeScore: round2(homeExpected),
		PredictedAwayScore: round2(awayExpected),
		MostLikelyScore:    mostLikelyScore,
		Confidence:         1.0,
		ModelDetails: map[string]any{
			"model":               string(model),
			"home_expected_goals": round2(homeExpected),
			"away_expected_goals": round2(awayExpected),
		},
	}

	for k, v := range details {
		p.ModelDetails[k] = v
	}

	return p
}

// formatScore renders a scoreline in the "h-a" wire form
func formatScore(homeGoals, awayGoals int) string {
	return fmt.Sprintf("%d-%d", homeGoals, awayGoals)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
