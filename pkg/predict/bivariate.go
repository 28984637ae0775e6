package predict

// BivariatePoissonModel models home and away goals jointly through a shared
// common-shock component:
//
//	Home = W1 + W0, Away = W2 + W0
//	W1 ~ Poisson(lambda1), W2 ~ Poisson(lambda2), W0 ~ Poisson(lambda0)
//
// The shared W0 induces positive correlation while keeping Poisson marginals.
type BivariatePoissonModel struct {
	cfg Config
}

// NewBivariatePoissonModel creates a bivariate Poisson model with configuration
// copied at construction
func NewBivariatePoissonModel(cfg *Config) *BivariatePoissonModel {
	return &BivariatePoissonModel{cfg: *cfg}
}

func (m *BivariatePoissonModel) Name() ModelID {
	return ModelBivariatePoisson
}

// Predict calculates outcome probabilities from the common-shock grid,
// renormalized in full before extraction
func (m *BivariatePoissonModel) Predict(in MatchInput) (*Prediction, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	lambdaHome, lambdaAway := expectedGoals(in, &m.cfg)
	lambda0 := m.cfg.BivariateLambda0

	// Independent components; the marginals keep the supplied means.
	// Floor at 0.01 so a tiny marginal mean never goes non-positive.
	lambda1 := lambdaHome - lambda0
	if lambda1 < 0.01 {
		lambda1 = 0.01
	}
	lambda2 := lambdaAway - lambda0
	if lambda2 < 0.01 {
		lambda2 = 0.01
	}

	matrix := NewScoreMatrix(m.cfg.MaxGoals)
	for h := 0; h < m.cfg.MaxGoals; h++ {
		for a := 0; a < m.cfg.MaxGoals; a++ {
			maxShock := h
			if a < h {
				maxShock = a
			}

			prob := 0.0
			for k := 0; k <= maxShock; k++ {
				prob += poissonPMF(h-k, lambda1) *
					poissonPMF(a-k, lambda2) *
					poissonPMF(k, lambda0)
			}
			matrix[h][a] = prob
		}
	}

	matrix.Normalize()

	homeWin, draw, awayWin := matrix.Outcomes()
	bestHome, bestAway := matrix.MostLikelyScore()

	correlation := "negative"
	if lambda0 > 0 {
		correlation = "positive"
	}

	return newPrediction(ModelBivariatePoisson,
		homeWin, draw, awayWin,
		lambdaHome, lambdaAway,
		formatScore(bestHome, bestAway),
		map[string]any{
			"lambda_home": round2(lambdaHome),
			"lambda_away": round2(lambdaAway),
			"lambda_0":    round3(lambda0),
			"correlation": correlation,
			"top_scores":  matrix.TopScorelines(m.cfg.TopScorelines),
		},
	), nil
}
