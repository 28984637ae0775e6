package predict

import (
	"math"
	"sort"
)

// Recommendation labels produced by the consensus aggregator
const (
	RecommendHomeWin = "Home Win"
	RecommendDraw    = "Draw"
	RecommendAwayWin = "Away Win"
	RecommendNone    = "No prediction available"
)

// Consensus is the combined prediction across all contributing models.
// Probabilities are percentages (0-100) rounded to 2 decimals.
type Consensus struct {
	HomeWin        float64 `json:"home_win"`
	Draw           float64 `json:"draw"`
	AwayWin        float64 `json:"away_win"`
	Recommendation string  `json:"recommendation"`
	Confidence     float64 `json:"confidence"`
	ModelsCount    int     `json:"models_count"`
}

// neutralConsensus is returned when no model contributed a usable triple
func neutralConsensus() Consensus {
	return Consensus{
		HomeWin:        33.33,
		Draw:           33.33,
		AwayWin:        33.33,
		Recommendation: RecommendNone,
		Confidence:     0.0,
		ModelsCount:    0,
	}
}

// wellFormed reports whether a probability triple is usable for aggregation
func wellFormed(p OutcomeProbabilities) bool {
	for _, v := range []float64{p.HomeWin, p.Draw, p.AwayWin} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return false
		}
	}
	return p.HomeWin+p.Draw+p.AwayWin > 0
}

// aggregationOrder fixes the iteration order over the prediction map: the
// engine's own models in presentation order, then any external identifiers
// sorted by name. Floating-point accumulation depends on summation order, so
// a map walk would make the consensus vary from run to run.
func aggregationOrder(predictions map[ModelID]*Prediction) []ModelID {
	order := make([]ModelID, 0, len(predictions))
	seen := make(map[ModelID]bool, len(predictions))

	for _, id := range AllModels() {
		if _, ok := predictions[id]; ok {
			order = append(order, id)
			seen[id] = true
		}
	}

	external := make([]ModelID, 0)
	for id := range predictions {
		if !seen[id] {
			external = append(external, id)
		}
	}
	sort.Slice(external, func(a, b int) bool { return external[a] < external[b] })

	return append(order, external...)
}

// CalculateConsensus merges per-model predictions into one weighted triple.
// Each model contributes with its own confidence as weight (1.0 when unset).
// The recommendation checks home first, then draw, then away; that evaluation
// order is the tie-break rule.
func CalculateConsensus(predictions map[ModelID]*Prediction) Consensus {
	var homeSum, drawSum, awaySum, weightSum float64
	contributing := 0

	for _, id := range aggregationOrder(predictions) {
		pred := predictions[id]
		if pred == nil || !wellFormed(pred.Probabilities) {
			continue
		}

		weight := pred.Confidence
		if weight == 0 {
			weight = 1.0
		}

		homeSum += pred.Probabilities.HomeWin * weight
		drawSum += pred.Probabilities.Draw * weight
		awaySum += pred.Probabilities.AwayWin * weight
		weightSum += weight
		contributing++
	}

	if contributing == 0 || weightSum == 0 {
		return neutralConsensus()
	}

	weightedHome := homeSum / weightSum
	weightedDraw := drawSum / weightSum
	weightedAway := awaySum / weightSum

	maxProb := math.Max(weightedHome, math.Max(weightedDraw, weightedAway))
	var recommendation string
	switch {
	case maxProb == weightedHome:
		recommendation = RecommendHomeWin
	case maxProb == weightedDraw:
		recommendation = RecommendDraw
	default:
		recommendation = RecommendAwayWin
	}

	return Consensus{
		HomeWin:        round2(weightedHome * 100),
		Draw:           round2(weightedDraw * 100),
		AwayWin:        round2(weightedAway * 100),
		Recommendation: recommendation,
		Confidence:     round2(maxProb * 100),
		ModelsCount:    contributing,
	}
}

// ModelComparison is one model's view in percent, for side-by-side display
type ModelComparison struct {
	Model      string  `json:"model"`
	HomeWin    float64 `json:"home_win"`
	Draw       float64 `json:"draw"`
	AwayWin    float64 `json:"away_win"`
	Confidence float64 `json:"confidence"`
	Prediction string  `json:"prediction"`
}

// CompareModels renders every prediction as percentages, most confident first
func CompareModels(predictions map[ModelID]*Prediction) []ModelComparison {
	comparisons := make([]ModelComparison, 0, len(predictions))

	for id, pred := range predictions {
		if pred == nil {
			continue
		}
		probs := pred.Probabilities

		var label string
		maxProb := math.Max(probs.HomeWin, math.Max(probs.Draw, probs.AwayWin))
		switch {
		case maxProb == probs.HomeWin:
			label = RecommendHomeWin
		case maxProb == probs.Draw:
			label = RecommendDraw
		default:
			label = RecommendAwayWin
		}

		comparisons = append(comparisons, ModelComparison{
			Model:      string(id),
			HomeWin:    round2(probs.HomeWin * 100),
			Draw:       round2(probs.Draw * 100),
			AwayWin:    round2(probs.AwayWin * 100),
			Confidence: round2(pred.Confidence * 100),
			Prediction: label,
		})
	}

	sort.SliceStable(comparisons, func(a, b int) bool {
		if comparisons[a].Confidence != comparisons[b].Confidence {
			return comparisons[a].Confidence > comparisons[b].Confidence
		}
		return comparisons[a].Model < comparisons[b].Model
	})

	return comparisons
}
