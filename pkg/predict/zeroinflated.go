package predict

// ZeroInflatedPoissonModel mixes a point mass at zero with a Poisson
// distribution per side:
//
//	P(X = 0) = pi + (1-pi) * exp(-lambda)
//	P(X = k) = (1-pi) * Poisson(k; lambda)   for k > 0
//
// This accounts for the excess of 0-0, 0-1 and 1-0 scorelines a plain
// Poisson underestimates in tight, defensive matches.
type ZeroInflatedPoissonModel struct {
	cfg Config
}

// NewZeroInflatedPoissonModel creates a zero-inflated Poisson model with
// configuration copied at construction
func NewZeroInflatedPoissonModel(cfg *Config) *ZeroInflatedPoissonModel {
	return &ZeroInflatedPoissonModel{cfg: *cfg}
}

func (m *ZeroInflatedPoissonModel) Name() ModelID {
	return ModelZeroInflatedPoisson
}

// zipMarginal calculates the inflated per-side pmf for goal counts 0..maxGoals-1
func zipMarginal(lambda, pi float64, maxGoals int) []float64 {
	probs := make([]float64, maxGoals)
	probs[0] = pi + (1-pi)*poissonPMF(0, lambda)
	for k := 1; k < maxGoals; k++ {
		probs[k] = (1 - pi) * poissonPMF(k, lambda)
	}
	return probs
}

// Predict builds the joint grid as the outer product of the two independent
// inflated marginals, renormalizes it in full, and extracts outcomes
func (m *ZeroInflatedPoissonModel) Predict(in MatchInput) (*Prediction, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	lambdaHome, lambdaAway := expectedGoals(in, &m.cfg)

	homeProbs := zipMarginal(lambdaHome, m.cfg.ZeroInflationHome, m.cfg.MaxGoals)
	awayProbs := zipMarginal(lambdaAway, m.cfg.ZeroInflationAway, m.cfg.MaxGoals)

	matrix := NewScoreMatrix(m.cfg.MaxGoals)
	for h := 0; h < m.cfg.MaxGoals; h++ {
		for a := 0; a < m.cfg.MaxGoals; a++ {
			matrix[h][a] = homeProbs[h] * awayProbs[a]
		}
	}

	matrix.Normalize()

	homeWin, draw, awayWin := matrix.Outcomes()
	bestHome, bestAway := matrix.MostLikelyScore()

	// Low-scoring diagnostics: 0-0 alone, and total goals <= 1
	prob00 := matrix[0][0]
	probLowScoring := matrix[0][0] + matrix[0][1] + matrix[1][0]

	return newPrediction(ModelZeroInflatedPoisson,
		homeWin, draw, awayWin,
		lambdaHome, lambdaAway,
		formatScore(bestHome, bestAway),
		map[string]any{
			"lambda_home":      round2(lambdaHome),
			"lambda_away":      round2(lambdaAway),
			"pi_home":          round3(m.cfg.ZeroInflationHome),
			"pi_away":          round3(m.cfg.ZeroInflationAway),
			"prob_0_0":         round4(prob00),
			"prob_low_scoring": round4(probLowScoring),
			"top_scores":       matrix.TopScorelines(m.cfg.TopScorelines),
		},
	), nil
}
