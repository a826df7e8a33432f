package usecase

// Log prefixes
const (
	LogPrefixRoute    = "internal.routing.usecase.Route"
	LogPrefixEvaluate = "internal.routing.usecase.Evaluate"
	LogPrefixNew      = "internal.routing.usecase.New"
)

// Default policy constants. Empirically tuned on the Hinglish evaluation
// corpus; override via config, they are not hard-coded law.
const (
	DefaultClassifierThreshold = 0.55
	DefaultHinglishFactor      = 0.85
	DefaultHindiFactor         = 0.95
)
