package predict

import (
	"fmt"

	"github.com/climgabriel/SuperStatsFootball/internal/logger"
)

// Engine runs every permitted model against a fixture and merges the results
// into a consensus. Models are constructed fresh per call from the immutable
// configuration, so one Engine may serve concurrent fixtures without locking.
type Engine struct {
	cfg *Config
}

// NewEngine creates an engine around the given configuration.
// A nil config uses the defaults.
func NewEngine(cfg *Config) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid engine configuration: %w", err)
	}
	return &Engine{cfg: cfg}, nil
}

// Config returns the engine's configuration
func (e *Engine) Config() *Config {
	return e.cfg
}

// MatchPrediction is the full result for one fixture: every successful
// model's prediction plus the consensus over them
type MatchPrediction struct {
	Predictions map[ModelID]*Prediction `json:"predictions"`
	Consensus   Consensus               `json:"consensus"`
	ModelsUsed  []ModelID               `json:"models_used"`
	TotalModels int                     `json:"total_models"`
}

// Predict runs the permitted models in order against the fixture input.
//
// Identifiers the engine does not implement are skipped with a warning, and a
// model that fails is excluded from the consensus rather than aborting the
// batch. Only a malformed input is a fatal error; if every model fails the
// caller still receives the neutral consensus.
func (e *Engine) Predict(in MatchInput, permitted []ModelID) (*MatchPrediction, error) {
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("rejecting prediction request: %w", err)
	}

	predictions := make(map[ModelID]*Prediction, len(permitted))
	used := make([]ModelID, 0, len(permitted))

	for _, id := range permitted {
		model, ok := modelFor(id, e.cfg)
		if !ok {
			logger.Warn("Model not available in engine, skipping:", string(id))
			continue
		}

		prediction, err := model.Predict(in)
		if err != nil {
			logger.Error("Model failed, excluding from consensus:", string(id), err)
			continue
		}

		predictions[id] = prediction
		used = append(used, id)
	}

	return &MatchPrediction{
		Predictions: predictions,
		Consensus:   CalculateConsensus(predictions),
		ModelsUsed:  used,
		TotalModels: len(used),
	}, nil
}

// Compare runs the permitted models and returns the per-model percent view,
// most confident first
func (e *Engine) Compare(in MatchInput, permitted []ModelID) ([]ModelComparison, error) {
	result, err := e.Predict(in, permitted)
	if err != nil {
		return nil, err
	}
	return CompareModels(result.Predictions), nil
}
