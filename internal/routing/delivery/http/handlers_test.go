package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"multilingual-tool-router/config"
	"multilingual-tool-router/internal/handlers"
	"multilingual-tool-router/internal/middleware"
	"multilingual-tool-router/internal/model"
	"multilingual-tool-router/internal/routing"
	"multilingual-tool-router/pkg/response"
)

type nopLogger struct{}

func (nopLogger) Debug(context.Context, string)          {}
func (nopLogger) Debugf(context.Context, string, ...any) {}
func (nopLogger) Info(context.Context, string)           {}
func (nopLogger) Infof(context.Context, string, ...any)  {}
func (nopLogger) Warn(context.Context, string)           {}
func (nopLogger) Warnf(context.Context, string, ...any)  {}
func (nopLogger) Error(context.Context, string)          {}
func (nopLogger) Errorf(context.Context, string, ...any) {}

// mockUseCase scripts the routing engine's behavior per-test.
type mockUseCase struct {
	routeFn    func(ctx context.Context, input routing.RouteInput) (model.RouteDecision, error)
	evaluateFn func(ctx context.Context, cases []routing.AccuracyTestCase) (routing.AccuracyMetrics, error)
	decisions  []model.RouteDecision
}

func (m *mockUseCase) Route(ctx context.Context, input routing.RouteInput) (model.RouteDecision, error) {
	return m.routeFn(ctx, input)
}

func (m *mockUseCase) Evaluate(ctx context.Context, cases []routing.AccuracyTestCase) (routing.AccuracyMetrics, error) {
	return m.evaluateFn(ctx, cases)
}

func (m *mockUseCase) Decisions(_ context.Context, limit int) ([]model.RouteDecision, error) {
	if limit <= 0 || limit > len(m.decisions) {
		return m.decisions, nil
	}
	return m.decisions[len(m.decisions)-limit:], nil
}

func newTestServer(t *testing.T, uc routing.UseCase) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dispatcher, err := handlers.NewDispatcher(nopLogger{}, handlers.DefaultHandlers()...)
	if err != nil {
		t.Fatalf("NewDispatcher: %v", err)
	}

	h := New(nopLogger{}, uc, dispatcher)
	mw := middleware.New(nopLogger{}, &config.Config{})

	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"), h, mw)
	return r
}

func storyDecision() model.RouteDecision {
	conf := 0.91
	intent := model.IntentStoryTelling
	return model.RouteDecision{
		ID:                   "d-1",
		SelectedTool:         model.ToolNaniKahaniyan,
		ConfidenceScore:      0.91,
		Reasoning:            "Intent classifier: story_telling (confidence: 0.910), Language: hinglish",
		LanguageDetected:     model.LanguageHinglish,
		SemanticSimilarity:   0.74,
		RoutingMethod:        model.MethodClassifier,
		ClassifierConfidence: &conf,
		PredictedIntent:      &intent,
	}
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	r.ServeHTTP(w, req)
	return w
}

func TestRouteEndpoint(t *testing.T) {
	uc := &mockUseCase{
		routeFn: func(_ context.Context, input routing.RouteInput) (model.RouteDecision, error) {
			if input.Utterance != "kahani sunao" {
				return model.RouteDecision{}, fmt.Errorf("unexpected utterance %q", input.Utterance)
			}
			return storyDecision(), nil
		},
	}
	r := newTestServer(t, uc)

	w := doJSON(r, http.MethodPost, "/api/v1/route", `{"text":"kahani sunao"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp response.Resp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	data, ok := resp.Data.(map[string]interface{})
	if !ok {
		t.Fatalf("unexpected data payload: %v", resp.Data)
	}
	if data["selected_tool"] != "nani_kahaniyan" {
		t.Errorf("selected_tool = %v", data["selected_tool"])
	}
	if data["routing_method"] != "classifier" {
		t.Errorf("routing_method = %v", data["routing_method"])
	}
	if data["needs_clarification"] != false {
		t.Errorf("needs_clarification = %v", data["needs_clarification"])
	}
	if data["predicted_intent"] != "story_telling" {
		t.Errorf("predicted_intent = %v", data["predicted_intent"])
	}
}

func TestRouteEndpoint_BadRequest(t *testing.T) {
	uc := &mockUseCase{
		routeFn: func(context.Context, routing.RouteInput) (model.RouteDecision, error) {
			t.Fatal("use case should not be reached")
			return model.RouteDecision{}, nil
		},
	}
	r := newTestServer(t, uc)

	tests := []struct {
		name string
		body string
	}{
		{"Empty Body", ``},
		{"Missing Text", `{}`},
		{"Blank Text", `{"text":"   "}`},
		{"Malformed JSON", `{"text":`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := doJSON(r, http.MethodPost, "/api/v1/route", tc.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", w.Code)
			}
		})
	}
}

func TestRouteEndpoint_OracleFailure(t *testing.T) {
	uc := &mockUseCase{
		routeFn: func(context.Context, routing.RouteInput) (model.RouteDecision, error) {
			return model.RouteDecision{}, fmt.Errorf("%w: voyage api: 503", routing.ErrEmbeddingOracle)
		},
	}
	r := newTestServer(t, uc)

	w := doJSON(r, http.MethodPost, "/api/v1/route", `{"text":"kuch bhi"}`)
	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
}

func TestDispatchEndpoint(t *testing.T) {
	t.Run("Tool Executed", func(t *testing.T) {
		uc := &mockUseCase{
			routeFn: func(context.Context, routing.RouteInput) (model.RouteDecision, error) {
				return storyDecision(), nil
			},
		}
		r := newTestServer(t, uc)

		w := doJSON(r, http.MethodPost, "/api/v1/route/dispatch", `{"text":"kahani sunao"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
		}

		var resp response.Resp
		json.Unmarshal(w.Body.Bytes(), &resp)
		data := resp.Data.(map[string]interface{})
		if data["status"] != handlers.StatusSuccess {
			t.Errorf("status = %v", data["status"])
		}
		if data["tool_result"] == nil {
			t.Error("tool_result missing")
		}
	})

	t.Run("Clarification", func(t *testing.T) {
		uc := &mockUseCase{
			routeFn: func(context.Context, routing.RouteInput) (model.RouteDecision, error) {
				return model.RouteDecision{
					SelectedTool:     model.ToolClarificationNeeded,
					ConfidenceScore:  0.12,
					RoutingMethod:    model.MethodClarification,
					LanguageDetected: model.LanguageEnglish,
				}, nil
			},
		}
		r := newTestServer(t, uc)

		w := doJSON(r, http.MethodPost, "/api/v1/route/dispatch", `{"text":"hello"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}

		var resp response.Resp
		json.Unmarshal(w.Body.Bytes(), &resp)
		data := resp.Data.(map[string]interface{})
		if data["status"] != handlers.StatusClarificationNeeded {
			t.Errorf("status = %v", data["status"])
		}
		if data["tool_result"] != nil {
			t.Errorf("tool_result = %v, want absent", data["tool_result"])
		}
	})
}

func TestEvaluateEndpoint(t *testing.T) {
	t.Run("Empty Body Runs Builtin Dataset", func(t *testing.T) {
		var got []routing.AccuracyTestCase
		uc := &mockUseCase{
			evaluateFn: func(_ context.Context, cases []routing.AccuracyTestCase) (routing.AccuracyMetrics, error) {
				got = cases
				return routing.AccuracyMetrics{TotalTests: len(cases)}, nil
			},
		}
		r := newTestServer(t, uc)

		w := doJSON(r, http.MethodPost, "/api/v1/evaluate", "")
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}
		if len(got) != len(routing.BuiltinDataset()) {
			t.Errorf("evaluated %d cases, want builtin %d", len(got), len(routing.BuiltinDataset()))
		}
	})

	t.Run("Custom Cases", func(t *testing.T) {
		uc := &mockUseCase{
			evaluateFn: func(_ context.Context, cases []routing.AccuracyTestCase) (routing.AccuracyMetrics, error) {
				if len(cases) != 1 || cases[0].ExpectedTool != model.ToolLeftoverChef {
					return routing.AccuracyMetrics{}, errors.New("unexpected cases")
				}
				return routing.AccuracyMetrics{TotalTests: 1, CorrectPredictions: 1, Accuracy: 1}, nil
			},
		}
		r := newTestServer(t, uc)

		body := `{"cases":[{"input_text":"rice hai ghar mein","expected_tool":"leftover_chef","language":"hinglish"}]}`
		w := doJSON(r, http.MethodPost, "/api/v1/evaluate", body)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
		}
	})

	t.Run("Unknown Tool Rejected", func(t *testing.T) {
		uc := &mockUseCase{
			evaluateFn: func(context.Context, []routing.AccuracyTestCase) (routing.AccuracyMetrics, error) {
				t.Fatal("use case should not be reached")
				return routing.AccuracyMetrics{}, nil
			},
		}
		r := newTestServer(t, uc)

		body := `{"cases":[{"input_text":"x","expected_tool":"no_such_tool","language":"english"}]}`
		w := doJSON(r, http.MethodPost, "/api/v1/evaluate", body)
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})
}

func TestListDecisionsEndpoint(t *testing.T) {
	uc := &mockUseCase{
		decisions: []model.RouteDecision{
			storyDecision(),
			{ID: "d-2", SelectedTool: model.ToolVividhBharti, RoutingMethod: model.MethodSemantic, LanguageDetected: model.LanguageHinglish},
		},
	}
	r := newTestServer(t, uc)

	t.Run("All", func(t *testing.T) {
		w := doJSON(r, http.MethodGet, "/api/v1/decisions", "")
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}

		var resp response.Resp
		json.Unmarshal(w.Body.Bytes(), &resp)
		data := resp.Data.(map[string]interface{})
		if data["total"] != float64(2) {
			t.Errorf("total = %v, want 2", data["total"])
		}
	})

	t.Run("Limited", func(t *testing.T) {
		w := doJSON(r, http.MethodGet, "/api/v1/decisions?limit=1", "")
		var resp response.Resp
		json.Unmarshal(w.Body.Bytes(), &resp)
		data := resp.Data.(map[string]interface{})
		if data["total"] != float64(1) {
			t.Errorf("total = %v, want 1", data["total"])
		}
	})
}
