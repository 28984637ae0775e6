package predict

// PoissonModel predicts match outcomes assuming goals scored by each team
// follow independent Poisson distributions.
//
// This model deliberately computes its outcome probabilities from the
// truncated scoreline grid and renormalizes the three aggregated sums only.
// The grid itself is never renormalized here; other matrix models normalize
// the full grid instead. The asymmetry is load-bearing and must not be unified.
type PoissonModel struct {
	cfg Config
}

// NewPoissonModel creates a Poisson model with configuration copied at construction
func NewPoissonModel(cfg *Config) *PoissonModel {
	return &PoissonModel{cfg: *cfg}
}

func (m *PoissonModel) Name() ModelID {
	return ModelPoisson
}

// Predict calculates outcome probabilities and the most likely scoreline
// from the independent-goals product grid
func (m *PoissonModel) Predict(in MatchInput) (*Prediction, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	lambdaHome, lambdaAway := expectedGoals(in, &m.cfg)

	matrix := NewScoreMatrix(m.cfg.MaxGoals)
	for h := 0; h < m.cfg.MaxGoals; h++ {
		for a := 0; a < m.cfg.MaxGoals; a++ {
			matrix[h][a] = poissonPMF(h, lambdaHome) * poissonPMF(a, lambdaAway)
		}
	}

	homeWin, draw, awayWin := matrix.Outcomes()

	// Renormalize the three partial sums alone to absorb the truncation loss
	total := homeWin + draw + awayWin
	if total > 0 {
		homeWin /= total
		draw /= total
		awayWin /= total
	}

	bestHome, bestAway := matrix.MostLikelyScore()

	return newPrediction(ModelPoisson,
		homeWin, draw, awayWin,
		lambdaHome, lambdaAway,
		formatScore(bestHome, bestAway),
		nil,
	), nil
}
