package predict

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *StrengthStore {
	t.Helper()

	store, err := OpenStore(filepath.Join(t.TempDir(), "predict_test.db"), DefaultConfig())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreUpsertAndLoad(t *testing.T) {
	store := openTestStore(t)

	profile := StrengthProfile{
		Team:          "Arsenal",
		League:        "premier-league",
		Season:        "2025/2026",
		Attack:        1.4,
		Defense:       0.8,
		HomeAdvantage: 1.25,
		EloRating:     1620,
	}
	require.NoError(t, store.UpsertStrength(profile))

	loaded, err := store.Strength("Arsenal", "premier-league", "2025/2026")
	require.NoError(t, err)
	assert.Equal(t, profile, *loaded)
}

func TestStoreUpsertAppliesDefaults(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.UpsertStrength(StrengthProfile{
		Team:    "Brentford",
		League:  "premier-league",
		Season:  "2025/2026",
		Attack:  1.0,
		Defense: 1.0,
	}))

	loaded, err := store.Strength("Brentford", "premier-league", "2025/2026")
	require.NoError(t, err)
	assert.Equal(t, 1.3, loaded.HomeAdvantage)
	assert.Equal(t, 1500.0, loaded.EloRating)
}

func TestStoreUpsertOverwrites(t *testing.T) {
	store := openTestStore(t)

	base := StrengthProfile{Team: "Chelsea", League: "premier-league", Season: "2025/2026", Attack: 1.0, Defense: 1.0}
	require.NoError(t, store.UpsertStrength(base))

	base.Attack = 1.3
	require.NoError(t, store.UpsertStrength(base))

	loaded, err := store.Strength("Chelsea", "premier-league", "2025/2026")
	require.NoError(t, err)
	assert.Equal(t, 1.3, loaded.Attack)
}

func TestStoreMatchInputRequiresBothProfiles(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.UpsertStrength(StrengthProfile{
		Team: "Liverpool", League: "premier-league", Season: "2025/2026",
		Attack: 1.5, Defense: 0.7, EloRating: 1700,
	}))
	require.NoError(t, store.UpsertStrength(StrengthProfile{
		Team: "Everton", League: "premier-league", Season: "2025/2026",
		Attack: 0.9, Defense: 1.2, EloRating: 1450,
	}))

	in, err := store.MatchInput("Liverpool", "Everton", "premier-league", "2025/2026")
	require.NoError(t, err)
	assert.Equal(t, TeamStrength{Attack: 1.5, Defense: 0.7}, in.Home)
	assert.Equal(t, TeamStrength{Attack: 0.9, Defense: 1.2}, in.Away)
	assert.Equal(t, 1700.0, in.HomeRating)
	assert.Equal(t, 1450.0, in.AwayRating)

	_, err = store.MatchInput("Liverpool", "Unknown FC", "premier-league", "2025/2026")
	assert.Error(t, err)
}

func TestStoreRecordResultMovesRatings(t *testing.T) {
	store := openTestStore(t)

	for _, team := range []string{"Leeds", "Burnley"} {
		require.NoError(t, store.UpsertStrength(StrengthProfile{
			Team: team, League: "premier-league", Season: "2025/2026",
			Attack: 1.0, Defense: 1.0,
		}))
	}

	require.NoError(t, store.RecordResult("Leeds", "Burnley", "premier-league", "2025/2026", 3, 0))

	home, err := store.Strength("Leeds", "premier-league", "2025/2026")
	require.NoError(t, err)
	away, err := store.Strength("Burnley", "premier-league", "2025/2026")
	require.NoError(t, err)

	assert.Greater(t, home.EloRating, 1500.0)
	assert.Less(t, away.EloRating, 1500.0)
}

func TestStoreSaveAndLoadPrediction(t *testing.T) {
	store := openTestStore(t)

	engine, err := NewEngine(nil)
	require.NoError(t, err)
	result, err := engine.Predict(testInput(), AllModels())
	require.NoError(t, err)

	id, err := store.SavePrediction("Arsenal", "Chelsea", "premier-league", "2025/2026", result)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	loaded, err := store.LoadPrediction(id)
	require.NoError(t, err)
	assert.Equal(t, result.Consensus, loaded.Consensus)
	assert.Equal(t, result.TotalModels, loaded.TotalModels)
	assert.Len(t, loaded.Predictions, len(result.Predictions))

	_, err = store.LoadPrediction("missing-id")
	assert.Error(t, err)
}
