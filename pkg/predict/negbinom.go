package predict

import (
	"fmt"
	"math"
	"math/rand"
)

// NegativeBinomialModel predicts goal totals with a distribution whose
// variance may exceed its mean, Var = mu + alpha*mu^2. Outcome probabilities
// have no closed form under this parameterization and are estimated by a
// fixed-seed Monte Carlo simulation, so identical inputs reproduce identical
// outputs.
type NegativeBinomialModel struct {
	cfg Config
}

// NewNegativeBinomialModel creates a negative binomial model with configuration
// copied at construction
func NewNegativeBinomialModel(cfg *Config) *NegativeBinomialModel {
	return &NegativeBinomialModel{cfg: *cfg}
}

func (m *NegativeBinomialModel) Name() ModelID {
	return ModelNegativeBinomial
}

// nbParams converts (mean, dispersion) to the distribution's native (n, p):
//
//	n = mu/alpha, p = 1/(1 + alpha*mu)
//
// A non-positive dispersion falls back to treating the count as
// non-overdispersed instead of dividing by zero.
func nbParams(mu, alpha float64) (n, p float64) {
	if mu <= 0 {
		return 1.0, 0.5
	}

	if alpha > 0 {
		n = mu / alpha
		p = 1 / (1 + alpha*mu)
	} else {
		n = mu
		p = 0.5
	}

	if n < 0.1 {
		n = 0.1
	}
	if p < 0.001 {
		p = 0.001
	} else if p > 0.999 {
		p = 0.999
	}

	return n, p
}

// nbMode returns the most likely count for NegBin(n, p)
func nbMode(n, p, mu float64) int {
	if n > 1 {
		return int(math.Floor((n - 1) * (1 - p) / p))
	}
	return int(math.Round(mu))
}

// Predict estimates outcome probabilities by simulating independent home and
// away negative binomial marginals, and reports over/under probabilities for
// the common total-goals lines
func (m *NegativeBinomialModel) Predict(in MatchInput) (*Prediction, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	lambdaHome, lambdaAway := expectedGoals(in, &m.cfg)
	alpha := m.cfg.Dispersion

	totalExpected := lambdaHome + lambdaAway
	nTotal, pTotal := nbParams(totalExpected, alpha)

	overUnder := make(map[string]float64, 12)
	for _, line := range []float64{0.5, 1.5, 2.5, 3.5, 4.5, 5.5} {
		under := negBinomCDF(line, nTotal, pTotal)
		overUnder[fmt.Sprintf("over_%.1f", line)] = round4(1 - under)
		overUnder[fmt.Sprintf("under_%.1f", line)] = round4(under)
	}

	nHome, pHome := nbParams(lambdaHome, alpha)
	nAway, pAway := nbParams(lambdaAway, alpha)

	homeWin, draw, awayWin := m.simulateOutcomes(nHome, pHome, nAway, pAway)

	homeMode := nbMode(nHome, pHome, lambdaHome)
	awayMode := nbMode(nAway, pAway, lambdaAway)

	return newPrediction(ModelNegativeBinomial,
		homeWin, draw, awayWin,
		lambdaHome, lambdaAway,
		formatScore(homeMode, awayMode),
		map[string]any{
			"total_expected_goals":     round2(totalExpected),
			"most_likely_total":        nbMode(nTotal, pTotal, totalExpected),
			"over_under_probabilities": overUnder,
			"dispersion_parameter":     alpha,
			"variance":                 round2(totalExpected * (1 + alpha*totalExpected)),
		},
	), nil
}

// simulateOutcomes reseeds a call-local source with the fixed configured seed,
// then draws both marginals to estimate win/draw/loss frequencies.
// Reseeding per call is a reproducibility contract, not an optimization.
func (m *NegativeBinomialModel) simulateOutcomes(nHome, pHome, nAway, pAway float64) (homeWin, draw, awayWin float64) {
	rng := rand.New(rand.NewSource(m.cfg.SimulationSeed))
	runs := m.cfg.SimulationRuns

	homeGoals := make([]int, runs)
	awayGoals := make([]int, runs)
	for i := 0; i < runs; i++ {
		homeGoals[i] = negBinomSample(rng, nHome, pHome)
	}
	for i := 0; i < runs; i++ {
		awayGoals[i] = negBinomSample(rng, nAway, pAway)
	}

	var homeWins, draws, awayWins int
	for i := 0; i < runs; i++ {
		switch {
		case homeGoals[i] > awayGoals[i]:
			homeWins++
		case homeGoals[i] == awayGoals[i]:
			draws++
		default:
			awayWins++
		}
	}

	total := float64(runs)
	return float64(homeWins) / total, float64(draws) / total, float64(awayWins) / total
}

// TotalsReport is the detailed total-goals view produced by PredictTotals
type TotalsReport struct {
	ExpectedTotal   float64
	Variance        float64
	MostLikelyTotal int
	TotalsPMF       []float64 // index is the total goal count
	OverUnder       map[string]float64
	Dispersion      float64
}

// PredictTotals returns the full total-goals distribution for a fixture,
// including the pmf for totals 0-14 and over/under splits for common lines
func (m *NegativeBinomialModel) PredictTotals(in MatchInput) (*TotalsReport, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	lambdaHome, lambdaAway := expectedGoals(in, &m.cfg)
	alpha := m.cfg.Dispersion
	totalExpected := lambdaHome + lambdaAway

	n, p := nbParams(totalExpected, alpha)

	const maxTotals = 15
	pmf := make([]float64, maxTotals)
	for k := 0; k < maxTotals; k++ {
		pmf[k] = round4(negBinomPMF(k, n, p))
	}

	overUnder := make(map[string]float64, 12)
	for _, line := range []float64{0.5, 1.5, 2.5, 3.5, 4.5, 5.5} {
		under := negBinomCDF(line, n, p)
		overUnder[fmt.Sprintf("over_%.1f", line)] = round4(1 - under)
		overUnder[fmt.Sprintf("under_%.1f", line)] = round4(under)
	}

	return &TotalsReport{
		ExpectedTotal:   round2(totalExpected),
		Variance:        round2(totalExpected * (1 + alpha*totalExpected)),
		MostLikelyTotal: nbMode(n, p, totalExpected),
		TotalsPMF:       pmf,
		OverUnder:       overUnder,
		Dispersion:      alpha,
	}, nil
}
