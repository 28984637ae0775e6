package predict

import "fmt"

// Config contains all configurable parameters that influence prediction outcomes
// This centralizes all magic numbers and constants for easy adjustment
type Config struct {
	// === SCORELINE MATRIX SETTINGS ===

	MaxGoals      int // Goals considered per side, 0..MaxGoals-1 (default: 8)
	TopScorelines int // Scorelines reported in model details (default: 5)

	// === SIMULATION SETTINGS ===

	SimulationRuns int   // Monte Carlo draws for simulated outcomes (default: 10000)
	SimulationSeed int64 // Fixed seed applied at the start of every simulated call (default: 42)

	// === STRENGTH INPUT HANDLING ===

	DefaultHomeAdvantage float64 // Multiplier on home expected goals when none supplied (default: 1.3)
	MinStrength          float64 // Floor for non-positive strengths/advantages (default: 1e-6)
	LeagueAvgGoals       float64 // Average goals per team per match, used to derive strengths (default: 1.4)

	// === DIXON-COLES CORRECTION ===

	// Correlation parameter for low-scoring games, typically negative
	DixonColesRho float64 // (default: -0.13)

	// === BIVARIATE POISSON ===

	BivariateLambda0 float64 // Common-shock component shared by both sides (default: 0.1)

	// === ZERO-INFLATED POISSON ===

	ZeroInflationHome float64 // Structural-zero probability for home goals (default: 0.15)
	ZeroInflationAway float64 // Structural-zero probability for away goals (default: 0.15)

	// === SKELLAM ===

	MaxGoalDifference int // Goal-difference domain is [-N, N] (default: 10)

	// === NEGATIVE BINOMIAL ===

	Dispersion float64 // Overdispersion alpha, variance = mu + alpha*mu^2 (default: 1.5)

	// === COX SURVIVAL ===

	BaselineHazard float64 // Baseline per-minute goal hazard (default: 0.03)
	MatchDuration  int     // Match length in minutes (default: 90)

	// === ELO ===

	EloKFactor        float64 // Rating volatility (default: 40)
	EloHomeAdvantage  float64 // Rating points added to the home side (default: 100)
	EloDefaultRating  float64 // Rating assumed when none supplied (default: 1500)
	EloGoalsPerRating float64 // Rating points per expected goal above 1.0 (default: 300)
}

// DefaultConfig returns the default configuration with all standard values
func DefaultConfig() *Config {
	return &Config{
		MaxGoals:      8,
		TopScorelines: 5,

		SimulationRuns: 10000,
		SimulationSeed: 42,

		DefaultHomeAdvantage: 1.3,
		MinStrength:          1e-6,
		LeagueAvgGoals:       1.4,

		DixonColesRho: -0.13,

		BivariateLambda0: 0.1,

		ZeroInflationHome: 0.15,
		ZeroInflationAway: 0.15,

		MaxGoalDifference: 10,

		Dispersion: 1.5,

		BaselineHazard: 0.03,
		MatchDuration:  90,

		EloKFactor:        40.0,
		EloHomeAdvantage:  100.0,
		EloDefaultRating:  1500.0,
		EloGoalsPerRating: 300.0,
	}
}

// Validate ensures all configuration values are within reasonable ranges
func (c *Config) Validate() error {
	if c.MaxGoals < 3 {
		return fmt.Errorf("MaxGoals should be at least 3 to capture realistic scores, got: %d", c.MaxGoals)
	}

	if c.SimulationRuns < 1000 {
		return fmt.Errorf("SimulationRuns should be at least 1000 for accuracy, got: %d", c.SimulationRuns)
	}

	if c.DixonColesRho > 0 || c.DixonColesRho < -0.5 {
		return fmt.Errorf("DixonColesRho should be between -0.5 and 0, got: %f", c.DixonColesRho)
	}

	if c.BivariateLambda0 < 0 {
		return fmt.Errorf("BivariateLambda0 must not be negative, got: %f", c.BivariateLambda0)
	}

	if c.ZeroInflationHome < 0 || c.ZeroInflationHome >= 1 {
		return fmt.Errorf("ZeroInflationHome must be in [0, 1), got: %f", c.ZeroInflationHome)
	}

	if c.ZeroInflationAway < 0 || c.ZeroInflationAway >= 1 {
		return fmt.Errorf("ZeroInflationAway must be in [0, 1), got: %f", c.ZeroInflationAway)
	}

	if c.MaxGoalDifference < 1 {
		return fmt.Errorf("MaxGoalDifference should be at least 1, got: %d", c.MaxGoalDifference)
	}

	if c.BaselineHazard <= 0 {
		return fmt.Errorf("BaselineHazard must be positive, got: %f", c.BaselineHazard)
	}

	if c.MatchDuration <= 0 {
		return fmt.Errorf("MatchDuration must be positive, got: %d", c.MatchDuration)
	}

	if c.DefaultHomeAdvantage <= 0 {
		return fmt.Errorf("DefaultHomeAdvantage must be positive, got: %f", c.DefaultHomeAdvantage)
	}

	return nil
}
