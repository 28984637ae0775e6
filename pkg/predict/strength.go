package predict

import (
	"fmt"
	"math"
)

// TeamStrength holds a team's attacking and defensive ratings relative to the
// league average. A value of 1.0 is exactly average; 1.2 means 20% above average.
type TeamStrength struct {
	Attack  float64
	Defense float64
}

// MatchInput carries everything the models need to predict a single fixture.
// Strength values come from the external strength provider; non-positive values
// are clamped at point of use rather than rejected.
type MatchInput struct {
	Home TeamStrength
	Away TeamStrength

	// HomeAdvantage multiplies the home side's expected goals.
	// Zero means "use the configured default".
	HomeAdvantage float64

	// Elo ratings. Zero means "use the configured default rating".
	HomeRating float64
	AwayRating float64

	// Minute is the current match minute for in-play models (0 = pre-match)
	Minute int
}

// Validate rejects inputs no model can do anything sensible with.
// Per the error taxonomy this is the only fatal precondition failure;
// merely non-positive values are clamped, not rejected.
func (in MatchInput) Validate() error {
	values := []float64{
		in.Home.Attack, in.Home.Defense,
		in.Away.Attack, in.Away.Defense,
		in.HomeAdvantage, in.HomeRating, in.AwayRating,
	}
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("match input contains non-finite value: %v", v)
		}
	}
	return nil
}

// clampStrength floors non-positive strength values at the configured epsilon
// so they remain usable as a distribution mean
func clampStrength(v, min float64) float64 {
	if v <= 0 {
		return min
	}
	return v
}

// expectedGoals converts team strengths into the Poisson means used by every
// goal-count model:
//
//	lambdaHome = homeAttack * awayDefense * homeAdvantage
//	lambdaAway = awayAttack * homeDefense
func expectedGoals(in MatchInput, cfg *Config) (lambdaHome, lambdaAway float64) {
	advantage := in.HomeAdvantage
	if advantage == 0 {
		advantage = cfg.DefaultHomeAdvantage
	}
	advantage = clampStrength(advantage, cfg.MinStrength)

	homeAttack := clampStrength(in.Home.Attack, cfg.MinStrength)
	homeDefense := clampStrength(in.Home.Defense, cfg.MinStrength)
	awayAttack := clampStrength(in.Away.Attack, cfg.MinStrength)
	awayDefense := clampStrength(in.Away.Defense, cfg.MinStrength)

	lambdaHome = homeAttack * awayDefense * advantage
	lambdaAway = awayAttack * homeDefense
	return lambdaHome, lambdaAway
}

// rating returns the supplied rating or the configured default when unset
func rating(r float64, cfg *Config) float64 {
	if r == 0 {
		return cfg.EloDefaultRating
	}
	return r
}

// DeriveStrengths calculates attack and defense strengths from raw season
// totals. Teams with no matches played are treated as exactly league average.
func DeriveStrengths(goalsScored, goalsConceded, matchesPlayed int, cfg *Config) TeamStrength {
	if matchesPlayed == 0 {
		return TeamStrength{Attack: 1.0, Defense: 1.0}
	}

	perMatch := float64(matchesPlayed)
	return TeamStrength{
		Attack:  (float64(goalsScored) / perMatch) / cfg.LeagueAvgGoals,
		Defense: (float64(goalsConceded) / perMatch) / cfg.LeagueAvgGoals,
	}
}
