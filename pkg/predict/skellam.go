package predict

import (
	"fmt"
	"math"
)

// SkellamModel predicts outcomes from the goal-difference distribution
// D = Home - Away, which follows a Skellam distribution when both sides'
// goals are independent Poisson variables. No scoreline grid is built.
type SkellamModel struct {
	cfg Config
}

// NewSkellamModel creates a Skellam model with configuration copied at construction
func NewSkellamModel(cfg *Config) *SkellamModel {
	return &SkellamModel{cfg: *cfg}
}

func (m *SkellamModel) Name() ModelID {
	return ModelSkellam
}

// Predict reduces the goal-difference pmf over [-N, N] to outcome
// probabilities: positive mass is a home win, zero a draw, negative an away win
func (m *SkellamModel) Predict(in MatchInput) (*Prediction, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	lambdaHome, lambdaAway := expectedGoals(in, &m.cfg)
	maxDiff := m.cfg.MaxGoalDifference

	diffPMF := make(map[int]float64, 2*maxDiff+1)
	for d := -maxDiff; d <= maxDiff; d++ {
		diffPMF[d] = skellamPMF(d, lambdaHome, lambdaAway)
	}

	draw := diffPMF[0]
	homeWin := 0.0
	awayWin := 0.0
	for d := -maxDiff; d <= maxDiff; d++ {
		if d > 0 {
			homeWin += diffPMF[d]
		} else if d < 0 {
			awayWin += diffPMF[d]
		}
	}

	total := homeWin + draw + awayWin
	if total > 0 {
		homeWin /= total
		draw /= total
		awayWin /= total
	}

	// Most likely difference, first occurrence scanning from -N upward
	mostLikelyDiff := -maxDiff
	best := -1.0
	for d := -maxDiff; d <= maxDiff; d++ {
		if diffPMF[d] > best {
			best = diffPMF[d]
			mostLikelyDiff = d
		}
	}

	// Scoreline reconstructed from the most likely difference and the expected
	// goals. This is an approximation, not the joint mode.
	var homeScore, awayScore int
	switch {
	case mostLikelyDiff > 0:
		homeScore = int(math.Round(lambdaHome))
		awayScore = homeScore - mostLikelyDiff
		if awayScore < 0 {
			awayScore = 0
		}
	case mostLikelyDiff < 0:
		awayScore = int(math.Round(lambdaAway))
		homeScore = awayScore + mostLikelyDiff
		if homeScore < 0 {
			homeScore = 0
		}
	default:
		homeScore = int(math.Round((lambdaHome + lambdaAway) / 2))
		awayScore = homeScore
	}

	// Handicap coverage: P(difference > -handicap), from the truncated pmf
	handicapProbs := make(map[string]float64, 5)
	for _, handicap := range []int{-2, -1, 0, 1, 2} {
		coverage := 0.0
		for d := -maxDiff; d <= maxDiff; d++ {
			if d > -handicap {
				coverage += diffPMF[d]
			}
		}
		handicapProbs[fmt.Sprintf("home_%+d", handicap)] = round4(coverage)
	}

	return newPrediction(ModelSkellam,
		homeWin, draw, awayWin,
		lambdaHome, lambdaAway,
		formatScore(homeScore, awayScore),
		map[string]any{
			"lambda_home":                 round2(lambdaHome),
			"lambda_away":                 round2(lambdaAway),
			"expected_goal_difference":    round2(lambdaHome - lambdaAway),
			"most_likely_goal_difference": mostLikelyDiff,
			"handicap_probabilities":      handicapProbs,
		},
	), nil
}

// GoalDifferenceDistribution returns the full goal-difference pmf over
// [-maxDiff, maxDiff] for the fixture's expected goals
func (m *SkellamModel) GoalDifferenceDistribution(in MatchInput, maxDiff int) map[int]float64 {
	lambdaHome, lambdaAway := expectedGoals(in, &m.cfg)

	dist := make(map[int]float64, 2*maxDiff+1)
	for d := -maxDiff; d <= maxDiff; d++ {
		dist[d] = skellamPMF(d, lambdaHome, lambdaAway)
	}
	return dist
}
