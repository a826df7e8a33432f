package handlers

import (
	"context"

	"multilingual-tool-router/internal/model"
)

// Handler executes one routed tool against the raw utterance. Handlers
// extract their parameters (leftovers, themes, budgets) from the
// utterance text with keyword heuristics and must be deterministic for
// a given input.
type Handler interface {
	ToolID() model.ToolID
	Handle(ctx context.Context, utterance string) (interface{}, error)
}
