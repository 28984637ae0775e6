package predict

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/climgabriel/SuperStatsFootball/internal/logger"
)

// StrengthProfile is one team's stored strength parameters for a league and
// season. This is the concrete form of the external strength provider input.
type StrengthProfile struct {
	Team          string
	League        string
	Season        string
	Attack        float64
	Defense       float64
	HomeAdvantage float64
	EloRating     float64
}

// StrengthStore persists team strength profiles, Elo ratings, and generated
// predictions in a local sqlite database
type StrengthStore struct {
	db  *sql.DB
	cfg *Config
}

// OpenStore opens (or creates) the sqlite database at the given path
func OpenStore(path string, cfg *Config) (*StrengthStore, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := &StrengthStore{db: db, cfg: cfg}
	if err := store.createTables(); err != nil {
		db.Close()
		return nil, err
	}

	logger.Info("Strength store initialized", path)
	return store, nil
}

// Close closes the underlying database connection
func (s *StrengthStore) Close() error {
	return s.db.Close()
}

func (s *StrengthStore) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS team_strengths (
		team TEXT NOT NULL,
		league TEXT NOT NULL,
		season TEXT NOT NULL,
		attack REAL NOT NULL,
		defense REAL NOT NULL,
		home_advantage REAL NOT NULL DEFAULT 1.3,
		elo_rating REAL NOT NULL DEFAULT 1500.0,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (team, league, season)
	);

	CREATE TABLE IF NOT EXISTS predictions (
		id TEXT PRIMARY KEY,
		home_team TEXT NOT NULL,
		away_team TEXT NOT NULL,
		league TEXT NOT NULL,
		season TEXT NOT NULL,
		consensus TEXT NOT NULL,
		payload TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_predictions_fixture
		ON predictions(home_team, away_team, league, season);
	`

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}
	return nil
}

// UpsertStrength writes (or overwrites) a team's strength profile
func (s *StrengthStore) UpsertStrength(p StrengthProfile) error {
	if p.HomeAdvantage == 0 {
		p.HomeAdvantage = s.cfg.DefaultHomeAdvantage
	}
	if p.EloRating == 0 {
		p.EloRating = s.cfg.EloDefaultRating
	}

	_, err := s.db.Exec(`
		INSERT INTO team_strengths (team, league, season, attack, defense, home_advantage, elo_rating)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(team, league, season) DO UPDATE SET
			attack = excluded.attack,
			defense = excluded.defense,
			home_advantage = excluded.home_advantage,
			elo_rating = excluded.elo_rating,
			updated_at = CURRENT_TIMESTAMP
	`, p.Team, p.League, p.Season, p.Attack, p.Defense, p.HomeAdvantage, p.EloRating)
	if err != nil {
		return fmt.Errorf("failed to upsert strength for %s: %w", p.Team, err)
	}
	return nil
}

// Strength loads one team's stored profile
func (s *StrengthStore) Strength(team, league, season string) (*StrengthProfile, error) {
	row := s.db.QueryRow(`
		SELECT team, league, season, attack, defense, home_advantage, elo_rating
		FROM team_strengths
		WHERE team = ? AND league = ? AND season = ?
	`, team, league, season)

	var p StrengthProfile
	err := row.Scan(&p.Team, &p.League, &p.Season, &p.Attack, &p.Defense, &p.HomeAdvantage, &p.EloRating)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("no strength profile for team %s in %s %s", team, league, season)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load strength for %s: %w", team, err)
	}
	return &p, nil
}

// MatchInput assembles the engine input for a fixture from both teams' stored
// profiles. A missing profile is the fatal precondition failure surfaced to
// the caller; it is never papered over with defaults.
func (s *StrengthStore) MatchInput(homeTeam, awayTeam, league, season string) (MatchInput, error) {
	home, err := s.Strength(homeTeam, league, season)
	if err != nil {
		return MatchInput{}, err
	}
	away, err := s.Strength(awayTeam, league, season)
	if err != nil {
		return MatchInput{}, err
	}

	return MatchInput{
		Home:          TeamStrength{Attack: home.Attack, Defense: home.Defense},
		Away:          TeamStrength{Attack: away.Attack, Defense: away.Defense},
		HomeAdvantage: home.HomeAdvantage,
		HomeRating:    home.EloRating,
		AwayRating:    away.EloRating,
	}, nil
}

// RecordResult applies a finished match to both teams' Elo ratings
func (s *StrengthStore) RecordResult(homeTeam, awayTeam, league, season string, homeGoals, awayGoals int) error {
	home, err := s.Strength(homeTeam, league, season)
	if err != nil {
		return err
	}
	away, err := s.Strength(awayTeam, league, season)
	if err != nil {
		return err
	}

	elo := NewEloModel(s.cfg)
	newHome, newAway := elo.UpdateRatings(home.EloRating, away.EloRating, homeGoals, awayGoals)

	for _, update := range []struct {
		team   string
		rating float64
	}{
		{homeTeam, newHome},
		{awayTeam, newAway},
	} {
		_, err := s.db.Exec(`
			UPDATE team_strengths
			SET elo_rating = ?, updated_at = CURRENT_TIMESTAMP
			WHERE team = ? AND league = ? AND season = ?
		`, update.rating, update.team, league, season)
		if err != nil {
			return fmt.Errorf("failed to update rating for %s: %w", update.team, err)
		}
	}

	logger.Info("Ratings updated after result",
		homeTeam, newHome, awayTeam, newAway)
	return nil
}

// SavePrediction persists a generated prediction and returns its identifier
func (s *StrengthStore) SavePrediction(homeTeam, awayTeam, league, season string, result *MatchPrediction) (string, error) {
	consensusJSON, err := json.Marshal(result.Consensus)
	if err != nil {
		return "", fmt.Errorf("failed to encode consensus: %w", err)
	}
	payloadJSON, err := json.Marshal(result)
	if err != nil {
		return "", fmt.Errorf("failed to encode prediction payload: %w", err)
	}

	id := uuid.NewString()
	_, err = s.db.Exec(`
		INSERT INTO predictions (id, home_team, away_team, league, season, consensus, payload)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, id, homeTeam, awayTeam, league, season, string(consensusJSON), string(payloadJSON))
	if err != nil {
		return "", fmt.Errorf("failed to save prediction: %w", err)
	}

	return id, nil
}

// LoadPrediction reads a saved prediction back by identifier
func (s *StrengthStore) LoadPrediction(id string) (*MatchPrediction, error) {
	row := s.db.QueryRow(`SELECT payload FROM predictions WHERE id = ?`, id)

	var payload string
	if err := row.Scan(&payload); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("no prediction with id %s", id)
		}
		return nil, fmt.Errorf("failed to load prediction %s: %w", id, err)
	}

	var result MatchPrediction
	if err := json.Unmarshal([]byte(payload), &result); err != nil {
		return nil, fmt.Errorf("failed to decode prediction %s: %w", id, err)
	}
	return &result, nil
}
