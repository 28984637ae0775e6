package predict

// DixonColesModel extends the independent Poisson model with the Dixon-Coles
// tau correction, which adjusts the correlation of the four low-scoring
// outcomes (0-0, 0-1, 1-0, 1-1). All other cells keep factor 1.
type DixonColesModel struct {
	cfg Config
}

// NewDixonColesModel creates a Dixon-Coles model with configuration copied at construction
func NewDixonColesModel(cfg *Config) *DixonColesModel {
	return &DixonColesModel{cfg: *cfg}
}

func (m *DixonColesModel) Name() ModelID {
	return ModelDixonColes
}

// tau computes the Dixon-Coles correction factor for a scoreline
func (m *DixonColesModel) tau(homeGoals, awayGoals int, lambdaHome, lambdaAway float64) float64 {
	rho := m.cfg.DixonColesRho
	switch {
	case homeGoals == 0 && awayGoals == 0:
		return 1 - lambdaHome*lambdaAway*rho
	case homeGoals == 0 && awayGoals == 1:
		return 1 + lambdaHome*rho
	case homeGoals == 1 && awayGoals == 0:
		return 1 + lambdaAway*rho
	case homeGoals == 1 && awayGoals == 1:
		return 1 - rho
	default:
		return 1.0
	}
}

// Predict calculates outcome probabilities from the tau-corrected grid.
// Unlike the plain Poisson model the full grid is renormalized before
// outcome and scoreline extraction.
func (m *DixonColesModel) Predict(in MatchInput) (*Prediction, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	lambdaHome, lambdaAway := expectedGoals(in, &m.cfg)

	matrix := NewScoreMatrix(m.cfg.MaxGoals)
	for h := 0; h < m.cfg.MaxGoals; h++ {
		for a := 0; a < m.cfg.MaxGoals; a++ {
			base := poissonPMF(h, lambdaHome) * poissonPMF(a, lambdaAway)
			matrix[h][a] = base * m.tau(h, a, lambdaHome, lambdaAway)
		}
	}

	matrix.Normalize()

	homeWin, draw, awayWin := matrix.Outcomes()
	bestHome, bestAway := matrix.MostLikelyScore()

	return newPrediction(ModelDixonColes,
		homeWin, draw, awayWin,
		lambdaHome, lambdaAway,
		formatScore(bestHome, bestAway),
		map[string]any{
			"lambda_home": round2(lambdaHome),
			"lambda_away": round2(lambdaAway),
			"rho":         m.cfg.DixonColesRho,
			"top_scores":  matrix.TopScorelines(m.cfg.TopScorelines),
		},
	), nil
}
