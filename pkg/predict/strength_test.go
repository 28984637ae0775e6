package predict

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpectedGoalsFormula(t *testing.T) {
	cfg := DefaultConfig()

	lambdaHome, lambdaAway := expectedGoals(testInput(), cfg)
	assert.InDelta(t, 1.2*1.1*1.3, lambdaHome, 1e-12)
	assert.InDelta(t, 1.0*0.9, lambdaAway, 1e-12)
}

func TestExpectedGoalsExplicitAdvantage(t *testing.T) {
	cfg := DefaultConfig()

	in := testInput()
	in.HomeAdvantage = 1.0

	lambdaHome, _ := expectedGoals(in, cfg)
	assert.InDelta(t, 1.2*1.1, lambdaHome, 1e-12)
}

func TestExpectedGoalsClampsNonPositiveStrengths(t *testing.T) {
	cfg := DefaultConfig()

	in := MatchInput{
		Home: TeamStrength{Attack: -1.0, Defense: 0},
		Away: TeamStrength{Attack: 0, Defense: -0.5},
	}

	lambdaHome, lambdaAway := expectedGoals(in, cfg)
	assert.Greater(t, lambdaHome, 0.0)
	assert.Greater(t, lambdaAway, 0.0)
	assert.Less(t, lambdaHome, 1e-6)
	assert.Less(t, lambdaAway, 1e-6)
}

func TestClampStrength(t *testing.T) {
	assert.Equal(t, 1.2, clampStrength(1.2, 1e-6))
	assert.Equal(t, 1e-6, clampStrength(0, 1e-6))
	assert.Equal(t, 1e-6, clampStrength(-3, 1e-6))
}

func TestMatchInputValidate(t *testing.T) {
	require.NoError(t, testInput().Validate())

	in := testInput()
	in.Away.Defense = math.Inf(1)
	assert.Error(t, in.Validate())

	in = testInput()
	in.HomeRating = math.NaN()
	assert.Error(t, in.Validate())

	// Negative values clamp later; they are not a validation failure
	in = testInput()
	in.Home.Attack = -1
	assert.NoError(t, in.Validate())
}

func TestDeriveStrengths(t *testing.T) {
	cfg := DefaultConfig()

	// 28 scored and 14 conceded over 10 matches vs a 1.4-goal league average
	s := DeriveStrengths(28, 14, 10, cfg)
	assert.InDelta(t, 2.0, s.Attack, 1e-12)
	assert.InDelta(t, 1.0, s.Defense, 1e-12)
}

func TestDeriveStrengthsNoMatches(t *testing.T) {
	s := DeriveStrengths(0, 0, 0, DefaultConfig())
	assert.Equal(t, TeamStrength{Attack: 1.0, Defense: 1.0}, s)
}
