package usecase

import (
	"context"

	"multilingual-tool-router/internal/model"
)

// Decisions exposes the decision log for the audit endpoint.
func (uc *implUseCase) Decisions(ctx context.Context, limit int) ([]model.RouteDecision, error) {
	return uc.decisions.List(ctx, limit)
}
