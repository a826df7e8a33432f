package repository

import (
	"context"

	"multilingual-tool-router/internal/model"
)

// DecisionLog is the append-only sink for routing decisions. Each engine
// instance owns its log; histories are never shared between instances.
// Implementations must support concurrent appends.
type DecisionLog interface {
	// Append records a decision. Records are immutable once appended.
	Append(ctx context.Context, d model.RouteDecision) error

	// List returns the most recent decisions, newest last. limit <= 0
	// returns everything.
	List(ctx context.Context, limit int) ([]model.RouteDecision, error)

	// Count returns the number of recorded decisions.
	Count(ctx context.Context) (int, error)
}
