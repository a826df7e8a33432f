package http

import (
	"time"

	"multilingual-tool-router/internal/model"
	"multilingual-tool-router/internal/routing"
)

// --- Request DTOs ---

type routeReq struct {
	Text string `json:"text" binding:"required,max=2000"`
}

func (r routeReq) toInput() routing.RouteInput {
	return routing.RouteInput{Utterance: r.Text}
}

type evaluateReq struct {
	Cases []evaluateCaseReq `json:"cases"`
}

type evaluateCaseReq struct {
	InputText      string `json:"input_text"      binding:"required"`
	ExpectedTool   string `json:"expected_tool"   binding:"required"`
	ExpectedIntent string `json:"expected_intent"`
	Language       string `json:"language"        binding:"required"`
	Description    string `json:"description"`
}

func (r evaluateCaseReq) toCase() routing.AccuracyTestCase {
	return routing.AccuracyTestCase{
		InputText:      r.InputText,
		ExpectedTool:   model.ToolID(r.ExpectedTool),
		ExpectedIntent: model.Intent(r.ExpectedIntent),
		Language:       model.Language(r.Language),
		Description:    r.Description,
	}
}

type listDecisionsReq struct {
	Limit int `form:"limit"`
}

// --- Response DTOs ---

type decisionResp struct {
	ID                   string    `json:"id"`
	SelectedTool         string    `json:"selected_tool"`
	ConfidenceScore      float64   `json:"confidence_score"`
	Reasoning            string    `json:"reasoning"`
	LanguageDetected     string    `json:"language_detected"`
	SemanticSimilarity   float64   `json:"semantic_similarity"`
	RoutingMethod        string    `json:"routing_method"`
	ClassifierConfidence *float64  `json:"classifier_confidence,omitempty"`
	PredictedIntent      *string   `json:"predicted_intent,omitempty"`
	NeedsClarification   bool      `json:"needs_clarification"`
	Timestamp            time.Time `json:"timestamp"`
}

func newDecisionResp(d model.RouteDecision) decisionResp {
	resp := decisionResp{
		ID:                   d.ID,
		SelectedTool:         string(d.SelectedTool),
		ConfidenceScore:      d.ConfidenceScore,
		Reasoning:            d.Reasoning,
		LanguageDetected:     string(d.LanguageDetected),
		SemanticSimilarity:   d.SemanticSimilarity,
		RoutingMethod:        string(d.RoutingMethod),
		ClassifierConfidence: d.ClassifierConfidence,
		NeedsClarification:   d.NeedsClarification(),
		Timestamp:            d.Timestamp,
	}
	if d.PredictedIntent != nil {
		intent := string(*d.PredictedIntent)
		resp.PredictedIntent = &intent
	}
	return resp
}

type decisionsResp struct {
	Decisions []decisionResp `json:"decisions"`
	Total     int            `json:"total"`
}

func newDecisionsResp(decisions []model.RouteDecision) decisionsResp {
	out := make([]decisionResp, len(decisions))
	for i, d := range decisions {
		out[i] = newDecisionResp(d)
	}
	return decisionsResp{Decisions: out, Total: len(out)}
}
