package model

import "time"

// RoutingMethod tags which branch of the hybrid policy produced a decision.
type RoutingMethod string

const (
	// MethodClassifier: intent classifier answered with sufficient confidence.
	MethodClassifier RoutingMethod = "classifier"
	// MethodSemantic: no classifier was attempted; semantic ranker accepted.
	MethodSemantic RoutingMethod = "semantic"
	// MethodFallback: classifier attempted and rejected; semantic ranker accepted.
	MethodFallback RoutingMethod = "fallback"
	// MethodClarification: neither branch produced a confident tool.
	MethodClarification RoutingMethod = "clarification"
)

// RouteDecision is the immutable record of a single routing decision.
// Once created it is appended to the decision log and never mutated.
type RouteDecision struct {
	ID                 string        `json:"id"`
	SelectedTool       ToolID        `json:"selected_tool"`
	ConfidenceScore    float64       `json:"confidence_score"`
	Reasoning          string        `json:"reasoning"`
	LanguageDetected   Language      `json:"language_detected"`
	SemanticSimilarity float64       `json:"semantic_similarity"`
	RoutingMethod      RoutingMethod `json:"routing_method"`

	// ClassifierConfidence and PredictedIntent are set only when a
	// classifier attempt was made.
	ClassifierConfidence *float64 `json:"classifier_confidence,omitempty"`
	PredictedIntent      *Intent  `json:"predicted_intent,omitempty"`

	Timestamp time.Time `json:"timestamp"`
}

// NeedsClarification reports whether the decision carries the sentinel
// instead of a routable tool.
func (d RouteDecision) NeedsClarification() bool {
	return d.SelectedTool == ToolClarificationNeeded
}
