package predict

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZeroInflatedProbabilitiesSumToOne(t *testing.T) {
	model := NewZeroInflatedPoissonModel(DefaultConfig())

	pred, err := model.Predict(testInput())
	require.NoError(t, err)

	assert.InDelta(t, 1.0, tripleSum(pred), 1e-3)
	assert.Equal(t, "zero_inflated_poisson", pred.ModelDetails["model"])
}

func TestZeroInflatedWithoutInflationMatchesPoisson(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ZeroInflationHome = 0
	cfg.ZeroInflationAway = 0

	zip := NewZeroInflatedPoissonModel(cfg)
	poisson := NewPoissonModel(cfg)

	in := testInput()
	zPred, err := zip.Predict(in)
	require.NoError(t, err)
	pPred, err := poisson.Predict(in)
	require.NoError(t, err)

	assert.InDelta(t, pPred.Probabilities.HomeWin, zPred.Probabilities.HomeWin, 1e-9)
	assert.InDelta(t, pPred.Probabilities.Draw, zPred.Probabilities.Draw, 1e-9)
	assert.InDelta(t, pPred.Probabilities.AwayWin, zPred.Probabilities.AwayWin, 1e-9)
}

func TestZeroInflationRaisesGoallessProbability(t *testing.T) {
	in := testInput()

	plain := DefaultConfig()
	plain.ZeroInflationHome = 0
	plain.ZeroInflationAway = 0
	inflated := DefaultConfig() // 0.15 per side

	base, err := NewZeroInflatedPoissonModel(plain).Predict(in)
	require.NoError(t, err)
	zip, err := NewZeroInflatedPoissonModel(inflated).Predict(in)
	require.NoError(t, err)

	baseProb := base.ModelDetails["prob_0_0"].(float64)
	zipProb := zip.ModelDetails["prob_0_0"].(float64)
	assert.Greater(t, zipProb, baseProb)
}

func TestZeroInflatedLowScoringDiagnostics(t *testing.T) {
	model := NewZeroInflatedPoissonModel(DefaultConfig())

	pred, err := model.Predict(testInput())
	require.NoError(t, err)

	prob00, ok := pred.ModelDetails["prob_0_0"].(float64)
	require.True(t, ok)
	lowScoring, ok := pred.ModelDetails["prob_low_scoring"].(float64)
	require.True(t, ok)

	// prob_low_scoring covers 0-0, 0-1 and 1-0, so it contains prob_0_0
	assert.GreaterOrEqual(t, lowScoring, prob00)
	assert.Greater(t, prob00, 0.0)
	assert.LessOrEqual(t, lowScoring, 1.0)
}

func TestZipMarginalIsADistribution(t *testing.T) {
	probs := zipMarginal(1.4, 0.15, 64)

	total := 0.0
	for _, p := range probs {
		total += p
	}
	assert.InDelta(t, 1.0, total, 1e-9)

	// Inflated zero mass: pi + (1-pi) * exp(-lambda)
	assert.Greater(t, probs[0], 0.15)
}
