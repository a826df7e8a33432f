// Package memory provides the in-process DecisionLog implementation.
package memory

import (
	"context"
	"sync"

	"multilingual-tool-router/internal/model"
	"multilingual-tool-router/internal/routing/repository"
)

// Log is a mutex-protected append-only decision log.
type Log struct {
	mu        sync.Mutex
	decisions []model.RouteDecision
}

var _ repository.DecisionLog = (*Log)(nil)

// New creates an empty decision log.
func New() *Log {
	return &Log{}
}

// Append records a decision.
func (l *Log) Append(_ context.Context, d model.RouteDecision) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.decisions = append(l.decisions, d)
	return nil
}

// List returns the most recent decisions, newest last.
func (l *Log) List(_ context.Context, limit int) ([]model.RouteDecision, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	n := len(l.decisions)
	if limit <= 0 || limit > n {
		limit = n
	}

	out := make([]model.RouteDecision, limit)
	copy(out, l.decisions[n-limit:])
	return out, nil
}

// Count returns the number of recorded decisions.
func (l *Log) Count(_ context.Context) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.decisions), nil
}
