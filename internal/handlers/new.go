// Package handlers executes the capability behind a routing decision.
// Each tool has a static handler working off curated content; the
// Dispatcher picks the handler for a decision and wraps the result with
// routing info.
package handlers

import (
	"context"
	"fmt"

	"multilingual-tool-router/internal/model"
	pkgLog "multilingual-tool-router/pkg/log"
)

// Dispatcher maps routing decisions onto tool handlers.
type Dispatcher struct {
	l        pkgLog.Logger
	handlers map[model.ToolID]Handler
}

// NewDispatcher registers the given handlers. Every registry tool must
// have exactly one handler.
func NewDispatcher(l pkgLog.Logger, hs ...Handler) (*Dispatcher, error) {
	handlers := make(map[model.ToolID]Handler, len(hs))
	for _, h := range hs {
		id := h.ToolID()
		if _, dup := handlers[id]; dup {
			return nil, fmt.Errorf("duplicate handler for tool %s", id)
		}
		handlers[id] = h
	}

	for _, id := range model.ToolIDs() {
		if _, ok := handlers[id]; !ok {
			return nil, fmt.Errorf("no handler for tool %s", id)
		}
	}

	return &Dispatcher{l: l, handlers: handlers}, nil
}

// DefaultHandlers returns one handler per tool.
func DefaultHandlers() []Handler {
	return []Handler{
		RecipeHandler{},
		StoryHandler{},
		PoemHandler{},
		MusicHandler{},
		FoodLocationHandler{},
	}
}

// Dispatch executes the tool a decision selected. A clarification
// decision yields the bilingual prompt instead of a tool result.
func (d *Dispatcher) Dispatch(ctx context.Context, utterance string, decision model.RouteDecision) (DispatchResult, error) {
	info := RoutingInfo{
		SelectedTool: decision.SelectedTool,
		Confidence:   decision.ConfidenceScore,
		Method:       decision.RoutingMethod,
		Language:     decision.LanguageDetected,
		Reasoning:    decision.Reasoning,
	}

	if decision.NeedsClarification() {
		return DispatchResult{
			Status:      StatusClarificationNeeded,
			UserQuery:   utterance,
			Message:     clarificationMessage,
			Suggestions: clarificationSuggestions,
			Routing:     info,
		}, nil
	}

	h, ok := d.handlers[decision.SelectedTool]
	if !ok {
		return DispatchResult{}, fmt.Errorf("no handler for tool %s", decision.SelectedTool)
	}

	result, err := h.Handle(ctx, utterance)
	if err != nil {
		d.l.Errorf(ctx, "%s: tool %s failed: %v", LogPrefixDispatch, decision.SelectedTool, err)
		return DispatchResult{}, fmt.Errorf("tool %s: %w", decision.SelectedTool, err)
	}

	d.l.Infof(ctx, "%s: executed %s for %q", LogPrefixDispatch, decision.SelectedTool, utterance)

	return DispatchResult{
		Status:     StatusSuccess,
		UserQuery:  utterance,
		ToolResult: result,
		Routing:    info,
	}, nil
}
