package usecase

import (
	"context"
	"math"
	"strings"
	"testing"

	"multilingual-tool-router/internal/model"
	"multilingual-tool-router/internal/routing/repository/memory"
	"multilingual-tool-router/internal/tool"
	"multilingual-tool-router/pkg/intentmodel"
)

// Test vector space: one axis per tool (registry order, sorted by id)
// plus a spare axis so utterance vectors can carry mass that matches no
// tool. Tool documents are recognized by their English description.
const testDim = 6

func axisVector(axis int) []float32 {
	v := make([]float32, testDim)
	v[axis] = 1
	return v
}

// utteranceVector builds a unit-length vector whose cosine against the
// tool on the given axis equals sim, with the remaining mass on the
// spare axis.
func utteranceVector(axis int, sim float64) []float32 {
	v := make([]float32, testDim)
	v[axis] = float32(sim)
	rest := 1 - sim*sim
	if rest < 0 {
		rest = 0
	}
	v[testDim-1] = float32(math.Sqrt(rest))
	return v
}

// toolAxis fixes each tool's axis in registry (sorted-by-id) order.
var toolAxis = map[model.ToolID]int{
	model.ToolFoodLocator:   0,
	model.ToolLeftoverChef:  1,
	model.ToolNaniKahaniyan: 2,
	model.ToolPoemGenerator: 3,
	model.ToolVividhBharti:  4,
}

type mockEmbedder struct {
	fn    func(text string) []float32
	err   error
	calls int
}

func (m *mockEmbedder) Embed(_ context.Context, texts []string) ([][]float32, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	out := make([][]float32, len(texts))
	for i, t := range texts {
		out[i] = m.fn(t)
	}
	return out, nil
}

// docAwareEmbedder maps each tool document onto its axis and everything
// else through byUtterance.
func docAwareEmbedder(reg *tool.Registry, byUtterance func(text string) []float32) *mockEmbedder {
	return &mockEmbedder{fn: func(text string) []float32 {
		for _, m := range reg.All() {
			if strings.Contains(text, m.DescriptionEN) {
				return axisVector(toolAxis[m.ID])
			}
		}
		return byUtterance(text)
	}}
}

type mockClassifier struct {
	fn    func(text string) (model.Intent, float64, error)
	calls int
}

func (m *mockClassifier) Predict(_ context.Context, text string) (model.Intent, float64, error) {
	m.calls++
	return m.fn(text)
}

func fixedClassifier(intent model.Intent, conf float64) *mockClassifier {
	return &mockClassifier{fn: func(string) (model.Intent, float64, error) {
		return intent, conf, nil
	}}
}

type nopLogger struct{}

func (nopLogger) Debug(context.Context, string)         {}
func (nopLogger) Debugf(context.Context, string, ...any) {}
func (nopLogger) Info(context.Context, string)          {}
func (nopLogger) Infof(context.Context, string, ...any)  {}
func (nopLogger) Warn(context.Context, string)          {}
func (nopLogger) Warnf(context.Context, string, ...any)  {}
func (nopLogger) Error(context.Context, string)         {}
func (nopLogger) Errorf(context.Context, string, ...any) {}

// newTestEngine wires an engine over mock oracles with a fresh in-memory
// decision log. A nil classifier leaves the engine semantic-only.
func newTestEngine(t *testing.T, classifier *mockClassifier, byUtterance func(string) []float32, cfg Config) (*implUseCase, *mockEmbedder, *memory.Log) {
	t.Helper()

	reg, err := tool.NewRegistry(0)
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}

	emb := docAwareEmbedder(reg, byUtterance)
	logRepo := memory.New()

	var ic intentmodel.IClassifier
	if classifier != nil {
		ic = classifier
	}

	uc, err := New(context.Background(), nopLogger{}, reg, emb, ic, logRepo, cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return uc, emb, logRepo
}
