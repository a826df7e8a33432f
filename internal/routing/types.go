package routing

import "multilingual-tool-router/internal/model"

// RouteInput is the input to Route. Empty text is permitted: the
// language detector defaults to English and both oracles are still
// consulted.
type RouteInput struct {
	Utterance string
}

// AccuracyTestCase is one labeled evaluation example.
type AccuracyTestCase struct {
	InputText      string         `json:"input_text"`
	ExpectedTool   model.ToolID   `json:"expected_tool"`
	ExpectedIntent model.Intent   `json:"expected_intent"`
	Language       model.Language `json:"language"`
	Description    string         `json:"description"`
}

// AccuracyMetrics is the computed result of an evaluation run. It is
// derived data, never persisted.
type AccuracyMetrics struct {
	TotalTests         int     `json:"total_tests"`
	CorrectPredictions int     `json:"correct_predictions"`
	Accuracy           float64 `json:"accuracy"`

	PrecisionPerTool map[model.ToolID]float64 `json:"precision_per_tool"`
	RecallPerTool    map[model.ToolID]float64 `json:"recall_per_tool"`

	// ConfusionMatrix is sparse: expected tool -> actual tool -> count.
	// The clarification sentinel can appear on the actual axis.
	ConfusionMatrix map[model.ToolID]map[model.ToolID]int `json:"confusion_matrix"`

	LanguageAccuracy map[model.Language]float64 `json:"language_accuracy"`
	AvgConfidence    float64                    `json:"avg_confidence"`

	// RoutingMethodCounts shows how often each branch of the hybrid
	// policy fired during the run.
	RoutingMethodCounts map[model.RoutingMethod]int `json:"routing_method_counts"`
}
