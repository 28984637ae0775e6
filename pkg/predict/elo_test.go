package predict

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEloProbabilitiesSumToOne(t *testing.T) {
	model := NewEloModel(DefaultConfig())

	pred, err := model.Predict(MatchInput{HomeRating: 1600, AwayRating: 1450})
	require.NoError(t, err)

	assert.InDelta(t, 1.0, tripleSum(pred), 1e-3)
	assert.Equal(t, "elo", pred.ModelDetails["model"])
}

func TestEloEqualRatingsWithoutHomeAdvantage(t *testing.T) {
	cfg := DefaultConfig()
	cfg.EloHomeAdvantage = 0
	model := NewEloModel(cfg)

	pred, err := model.Predict(MatchInput{HomeRating: 1500, AwayRating: 1500})
	require.NoError(t, err)

	assert.InDelta(t, pred.Probabilities.HomeWin, pred.Probabilities.AwayWin, 1e-9)
	// Evenly matched sides keep the full 0.30 draw share
	assert.InDelta(t, 0.30, pred.Probabilities.Draw, 1e-3)
}

func TestEloDefaultsUnsetRatings(t *testing.T) {
	model := NewEloModel(DefaultConfig())

	pred, err := model.Predict(MatchInput{})
	require.NoError(t, err)

	assert.Equal(t, 1500.0, pred.ModelDetails["home_rating"])
	assert.Equal(t, 1500.0, pred.ModelDetails["away_rating"])
	// Home advantage points alone favour the home side
	assert.Greater(t, pred.Probabilities.HomeWin, pred.Probabilities.AwayWin)
}

func TestEloDrawFactorFloors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.EloHomeAdvantage = 0
	model := NewEloModel(cfg)

	pred, err := model.Predict(MatchInput{HomeRating: 1900, AwayRating: 1300})
	require.NoError(t, err)

	// A 600-point gap pushes the raw draw factor below the 0.15 floor
	assert.InDelta(t, 0.15, pred.Probabilities.Draw, 1e-3)
}

func TestEloExpectedGoalsHeuristic(t *testing.T) {
	model := NewEloModel(DefaultConfig())

	pred, err := model.Predict(MatchInput{HomeRating: 1800, AwayRating: 1200})
	require.NoError(t, err)

	// 1.0 + (rating-1500)/300, floored at zero
	assert.InDelta(t, 2.0, pred.PredictedHomeScore, 1e-9)
	assert.InDelta(t, 0.0, pred.PredictedAwayScore, 1e-9)
}

func TestEloUpdateRatingsMovesWinnerUp(t *testing.T) {
	model := NewEloModel(DefaultConfig())

	newHome, newAway := model.UpdateRatings(1500, 1500, 2, 0)
	assert.Greater(t, newHome, 1500.0)
	assert.Less(t, newAway, 1500.0)

	// Rating changes are zero-sum
	assert.InDelta(t, 3000.0, newHome+newAway, 0.02)
}

func TestEloUpdateRatingsBiggerMarginBiggerSwing(t *testing.T) {
	model := NewEloModel(DefaultConfig())

	narrowHome, _ := model.UpdateRatings(1500, 1500, 1, 0)
	wideHome, _ := model.UpdateRatings(1500, 1500, 4, 0)

	assert.Greater(t, wideHome, narrowHome)
}

func TestEloUpdateRatingsDrawPenalisesFavourite(t *testing.T) {
	model := NewEloModel(DefaultConfig())

	// The home side is favoured through the 100-point home bonus, so a draw
	// costs it rating
	newHome, newAway := model.UpdateRatings(1500, 1500, 1, 1)
	assert.Less(t, newHome, 1500.0)
	assert.Greater(t, newAway, 1500.0)
}
