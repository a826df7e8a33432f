package intentmodel

import (
	"context"

	"multilingual-tool-router/internal/model"
)

// IClassifier defines the interface for the intent classifier oracle.
// Implementations are safe for concurrent use.
type IClassifier interface {
	// Predict returns the predicted intent label and its confidence in
	// [0, 1]. Any error (network, timeout, malformed output) means the
	// oracle is degraded; callers treat it as non-fatal.
	Predict(ctx context.Context, text string) (model.Intent, float64, error)
}
