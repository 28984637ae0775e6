package predict

import (
	"fmt"
	"math"
	"math/rand"
)

// CoxSurvivalModel treats goals as events of a per-minute hazard process,
// which makes it the in-play model: given the current minute it prices
// next-goal windows, conditional interval probabilities, and the outcome
// over the remaining time.
type CoxSurvivalModel struct {
	cfg Config
}

// NewCoxSurvivalModel creates a Cox survival model with configuration copied
// at construction
func NewCoxSurvivalModel(cfg *Config) *CoxSurvivalModel {
	return &CoxSurvivalModel{cfg: *cfg}
}

func (m *CoxSurvivalModel) Name() ModelID {
	return ModelCoxSurvival
}

// goalsToHazard converts expected goals per match to a per-minute hazard rate
func (m *CoxSurvivalModel) goalsToHazard(expectedGoals float64) float64 {
	return expectedGoals / float64(m.cfg.MatchDuration)
}

// probGoalWithin is P(at least one goal in the next t minutes) = 1 - exp(-h*t)
func probGoalWithin(hazard float64, minutes int) float64 {
	return 1 - math.Exp(-hazard*float64(minutes))
}

// Predict estimates the full-match outcome over the remaining minutes by a
// fixed-seed simulation of each side's Poisson goal count, and reports
// next-goal probabilities for the common in-play windows
func (m *CoxSurvivalModel) Predict(in MatchInput) (*Prediction, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	lambdaHome, lambdaAway := expectedGoals(in, &m.cfg)

	hazardHome := m.goalsToHazard(lambdaHome)
	hazardAway := m.goalsToHazard(lambdaAway)

	remaining := m.cfg.MatchDuration - in.Minute
	if remaining < 0 {
		remaining = 0
	}

	expectedHomeRemaining := hazardHome * float64(remaining)
	expectedAwayRemaining := hazardAway * float64(remaining)

	nextGoalProbs := make(map[string]map[string]float64, 4)
	for _, minutes := range []int{5, 10, 15, 30} {
		probHome := probGoalWithin(hazardHome, minutes)
		probAway := probGoalWithin(hazardAway, minutes)
		probAny := 1 - (1-probHome)*(1-probAway)

		nextGoalProbs[fmt.Sprintf("next_%d_min", minutes)] = map[string]float64{
			"any_goal":  round4(probAny),
			"home_goal": round4(probHome),
			"away_goal": round4(probAway),
		}
	}

	homeWin, draw, awayWin := m.simulateOutcomes(hazardHome, hazardAway, remaining)

	mostLikely := formatScore(
		int(math.Round(expectedHomeRemaining)),
		int(math.Round(expectedAwayRemaining)),
	)

	return newPrediction(ModelCoxSurvival,
		homeWin, draw, awayWin,
		expectedHomeRemaining, expectedAwayRemaining,
		mostLikely,
		map[string]any{
			"current_minute":          in.Minute,
			"remaining_minutes":       remaining,
			"hazard_rate_home":        round4(hazardHome),
			"hazard_rate_away":        round4(hazardAway),
			"next_goal_probabilities": nextGoalProbs,
			"baseline_hazard":         m.cfg.BaselineHazard,
		},
	), nil
}

// simulateOutcomes reseeds a call-local source with the fixed configured seed
// and draws each side's remaining-time goal count as a Poisson process.
// Determinism across identical calls is a correctness requirement.
func (m *CoxSurvivalModel) simulateOutcomes(hazardHome, hazardAway float64, remaining int) (homeWin, draw, awayWin float64) {
	rng := rand.New(rand.NewSource(m.cfg.SimulationSeed))
	runs := m.cfg.SimulationRuns

	lambdaHome := hazardHome * float64(remaining)
	lambdaAway := hazardAway * float64(remaining)

	homeGoals := make([]int, runs)
	awayGoals := make([]int, runs)
	for i := 0; i < runs; i++ {
		homeGoals[i] = poissonSample(rng, lambdaHome)
	}
	for i := 0; i < runs; i++ {
		awayGoals[i] = poissonSample(rng, lambdaAway)
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

// IntervalProbability is P(goal in [start, end] | no goal up to currentMinute).
// The interval start clamps to the current minute; an empty interval is 0.
func (m *CoxSurvivalModel) IntervalProbability(hazard float64, start, end, currentMinute int) float64 {
	if start < currentMinute {
		start = currentMinute
	}
	if start >= end {
		return 0.0
	}

	surviveToStart := math.Exp(-hazard * float64(start-currentMinute))
	surviveToEnd := math.Exp(-hazard * float64(end-currentMinute))
	return surviveToStart - surviveToEnd
}

// GoalTimingReport describes when the next goal is expected to arrive
type GoalTimingReport struct {
	ExpectedMinutesToGoal float64
	IntervalProbabilities map[string]float64
}

// NextGoalTiming prices the standard 15-minute match segments for a single
// side's hazard rate, conditioned on no goal up to the current minute
func (m *CoxSurvivalModel) NextGoalTiming(hazard float64, currentMinute int) *GoalTimingReport {
	intervals := [][2]int{
		{0, 15}, {15, 30}, {30, 45}, {45, 60}, {60, 75}, {75, 90},
	}

	intervalProbs := make(map[string]float64, len(intervals))
	for _, iv := range intervals {
		start, end := iv[0], iv[1]
		if start < currentMinute {
			continue
		}
		key := fmt.Sprintf("%d-%d_min", start, end)
		intervalProbs[key] = round4(m.IntervalProbability(hazard, start, end, currentMinute))
	}

	expected := math.Inf(1)
	if hazard > 0 {
		expected = round2(1 / hazard)
	}

	return &GoalTimingReport{
		ExpectedMinutesToGoal: expected,
		IntervalProbabilities: intervalProbs,
	}
}
