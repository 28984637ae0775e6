package predict

import "math"

// EloModel predicts outcomes from relative team ratings, adapting the chess
// Elo expectation formula to football by splitting off an empirical draw
// share that shrinks as the rating gap grows.
type EloModel struct {
	cfg Config
}

// NewEloModel creates an Elo model with configuration copied at construction
func NewEloModel(cfg *Config) *EloModel {
	return &EloModel{cfg: *cfg}
}

func (m *EloModel) Name() ModelID {
	return ModelElo
}

// expectedScore is the classic Elo expectation for team A against team B
func expectedScore(ratingA, ratingB float64) float64 {
	return 1 / (1 + math.Pow(10, (ratingB-ratingA)/400))
}

// Predict converts the rating gap into win/draw/loss probabilities.
// The draw share floors at 0.15 and starts at 0.30 for evenly matched sides.
func (m *EloModel) Predict(in MatchInput) (*Prediction, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	homeRating := rating(in.HomeRating, &m.cfg)
	awayRating := rating(in.AwayRating, &m.cfg)

	adjustedHome := homeRating + m.cfg.EloHomeAdvantage
	homeExpected := expectedScore(adjustedHome, awayRating)
	awayExpected := 1 - homeExpected

	ratingDiff := adjustedHome - awayRating
	drawFactor := 0.30 - math.Abs(ratingDiff)/1000
	if drawFactor < 0.15 {
		drawFactor = 0.15
	}

	homeWin := homeExpected * (1 - drawFactor)
	awayWin := awayExpected * (1 - drawFactor)
	draw := drawFactor

	total := homeWin + draw + awayWin
	homeWin /= total
	draw /= total
	awayWin /= total

	// Expected goals grow linearly with rating above the default
	homeGoals := 1.0 + (homeRating-m.cfg.EloDefaultRating)/m.cfg.EloGoalsPerRating
	awayGoals := 1.0 + (awayRating-m.cfg.EloDefaultRating)/m.cfg.EloGoalsPerRating
	homeGoals = math.Max(0, homeGoals)
	awayGoals = math.Max(0, awayGoals)

	return newPrediction(ModelElo,
		homeWin, draw, awayWin,
		homeGoals, awayGoals,
		formatScore(int(math.Round(homeGoals)), int(math.Round(awayGoals))),
		map[string]any{
			"home_rating":       homeRating,
			"away_rating":       awayRating,
			"rating_difference": round2(ratingDiff),
		},
	), nil
}

// UpdateRatings applies a match result to both ratings and returns the new
// pair. The change scales with the log of the goal margin, so big wins move
// ratings more than narrow ones.
func (m *EloModel) UpdateRatings(homeRating, awayRating float64, homeGoals, awayGoals int) (newHome, newAway float64) {
	adjustedHome := homeRating + m.cfg.EloHomeAdvantage
	homeExpected := expectedScore(adjustedHome, awayRating)
	awayExpected := 1 - homeExpected

	var homeActual, awayActual float64
	switch {
	case homeGoals > awayGoals:
		homeActual, awayActual = 1.0, 0.0
	case homeGoals < awayGoals:
		homeActual, awayActual = 0.0, 1.0
	default:
		homeActual, awayActual = 0.5, 0.5
	}

	goalDiff := homeGoals - awayGoals
	if goalDiff < 0 {
		goalDiff = -goalDiff
	}
	if goalDiff < 1 {
		goalDiff = 1
	}
	multiplier := math.Log(float64(goalDiff) + 1)

	newHome = homeRating + m.cfg.EloKFactor*multiplier*(homeActual-homeExpected)
	newAway = awayRating + m.cfg.EloKFactor*multiplier*(awayActual-awayExpected)

	return round2(newHome), round2(newAway)
}
