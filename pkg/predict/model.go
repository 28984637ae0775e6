package predict

// ModelID identifies one of the engine's prediction models. The set is closed:
// every ID is resolved through modelFor, so an identifier coming from the tier
// gate that the engine does not implement is detected there rather than by a
// silent string lookup.
type ModelID string

const (
	ModelPoisson             ModelID = "poisson"
	ModelDixonColes          ModelID = "dixon_coles"
	ModelElo                 ModelID = "elo"
	ModelBivariatePoisson    ModelID = "bivariate_poisson"
	ModelSkellam             ModelID = "skellam"
	ModelNegativeBinomial    ModelID = "negative_binomial"
	ModelZeroInflatedPoisson ModelID = "zero_inflated_poisson"
	ModelCoxSurvival         ModelID = "cox_survival"
)

// AllModels lists every model the engine implements, in presentation order
func AllModels() []ModelID {
	return []ModelID{
		ModelPoisson,
		ModelDixonColes,
		ModelElo,
		ModelBivariatePoisson,
		ModelSkellam,
		ModelNegativeBinomial,
		ModelZeroInflatedPoisson,
		ModelCoxSurvival,
	}
}

// Model is the single capability every prediction model implements.
// Implementations carry only immutable configuration copied at construction,
// so concurrent use across fixtures needs no synchronization.
type Model interface {
	Name() ModelID
	Predict(in MatchInput) (*Prediction, error)
}

// modelFor constructs a fresh model value for the given identifier.
// Returns false for identifiers the engine does not implement, such as the
// externally served classifier IDs a tier list may also contain.
func modelFor(id ModelID, cfg *Config) (Model, bool) {
	switch id {
	case ModelPoisson:
		return NewPoissonModel(cfg), true
	case ModelDixonColes:
		return NewDixonColesModel(cfg), true
	case ModelElo:
		return NewEloModel(cfg), true
	case ModelBivariatePoisson:
		return NewBivariatePoissonModel(cfg), true
	case ModelSkellam:
		return NewSkellamModel(cfg), true
	case ModelNegativeBinomial:
		return NewNegativeBinomialModel(cfg), true
	case ModelZeroInflatedPoisson:
		return NewZeroInflatedPoissonModel(cfg), true
	case ModelCoxSurvival:
		return NewCoxSurvivalModel(cfg), true
	default:
		return nil, false
	}
}
