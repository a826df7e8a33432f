package routing

import (
	"context"

	"multilingual-tool-router/internal/model"
)

// UseCase defines the business logic interface for the routing domain.
type UseCase interface {
	// Route decides which tool should handle the utterance. It is the
	// sole production decision entrypoint.
	Route(ctx context.Context, input RouteInput) (model.RouteDecision, error)

	// Evaluate replays labeled test cases through Route and computes
	// accuracy metrics. Diagnostic/offline entrypoint.
	Evaluate(ctx context.Context, cases []AccuracyTestCase) (AccuracyMetrics, error)

	// Decisions returns the most recent routing decisions, newest last.
	// limit <= 0 returns the full log.
	Decisions(ctx context.Context, limit int) ([]model.RouteDecision, error)
}
