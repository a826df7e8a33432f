package usecase

import (
	"context"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"multilingual-tool-router/internal/model"
	"multilingual-tool-router/internal/routing"
	"multilingual-tool-router/internal/routing/repository"
	"multilingual-tool-router/internal/tool"
	"multilingual-tool-router/pkg/intentmodel"
	pkgLog "multilingual-tool-router/pkg/log"
	"multilingual-tool-router/pkg/voyage"
)

// Config holds the tunable routing policy parameters.
type Config struct {
	// ClassifierThreshold is the minimum classifier confidence that
	// short-circuits the semantic path. Zero selects the default (0.55).
	ClassifierThreshold float64

	// HinglishFactor and HindiFactor scale each tool's base semantic
	// threshold for the respective detected language. English and Mixed
	// always use factor 1.0. Zero selects the defaults (0.85 / 0.95).
	HinglishFactor float64
	HindiFactor    float64

	// ClassifierTimeout bounds one classifier oracle call. A timeout is
	// treated exactly like an unavailable classifier. Zero disables.
	ClassifierTimeout time.Duration

	// EmbeddingTimeout bounds one embedding oracle call. A timeout is a
	// hard failure of the route call. Zero disables.
	EmbeddingTimeout time.Duration

	// EmbeddingCacheSize bounds the LRU of utterance embeddings.
	// Zero disables caching.
	EmbeddingCacheSize int
}

type implUseCase struct {
	l          pkgLog.Logger
	registry   *tool.Registry
	embedder   voyage.IVoyage
	classifier intentmodel.IClassifier // nil means oracle unavailable
	decisions  repository.DecisionLog
	cfg        Config

	// toolVectors is built once here and read-only afterwards.
	// Rebuilding requires a restart.
	toolVectors map[model.ToolID][]float32

	queryCache *lru.Cache[string, []float32]
}

var _ routing.UseCase = (*implUseCase)(nil)

// New creates the hybrid routing engine. It encodes every registry
// tool's composed document through the embedding oracle exactly once;
// an oracle failure here is fatal since the engine cannot serve without
// its tool vectors. classifier may be nil: the engine then runs
// semantic-only.
func New(
	ctx context.Context,
	l pkgLog.Logger,
	registry *tool.Registry,
	embedder voyage.IVoyage,
	classifier intentmodel.IClassifier,
	decisions repository.DecisionLog,
	cfg Config,
) (*implUseCase, error) {
	if registry == nil {
		return nil, fmt.Errorf("registry is required")
	}
	if embedder == nil {
		return nil, fmt.Errorf("embedder is required")
	}
	if decisions == nil {
		return nil, fmt.Errorf("decision log is required")
	}

	if cfg.ClassifierThreshold == 0 {
		cfg.ClassifierThreshold = DefaultClassifierThreshold
	}
	if cfg.HinglishFactor == 0 {
		cfg.HinglishFactor = DefaultHinglishFactor
	}
	if cfg.HindiFactor == 0 {
		cfg.HindiFactor = DefaultHindiFactor
	}

	uc := &implUseCase{
		l:          l,
		registry:   registry,
		embedder:   embedder,
		classifier: classifier,
		decisions:  decisions,
		cfg:        cfg,
	}

	if cfg.EmbeddingCacheSize > 0 {
		cache, err := lru.New[string, []float32](cfg.EmbeddingCacheSize)
		if err != nil {
			return nil, fmt.Errorf("failed to create embedding cache: %w", err)
		}
		uc.queryCache = cache
	}

	if err := uc.buildToolVectors(ctx); err != nil {
		return nil, err
	}

	if classifier == nil {
		l.Warnf(ctx, "%s: intent classifier not configured, running semantic-only", LogPrefixNew)
	}
	l.Infof(ctx, "%s: engine ready with %d tool vectors", LogPrefixNew, len(uc.toolVectors))

	return uc, nil
}

// buildToolVectors encodes all tool documents in one batch and caches
// the vectors keyed by tool id. Runs single-threaded before serving.
func (uc *implUseCase) buildToolVectors(ctx context.Context) error {
	all := uc.registry.All()

	docs := make([]string, len(all))
	for i, m := range all {
		docs[i] = m.Document()
	}

	vecs, err := uc.embedder.Embed(ctx, docs)
	if err != nil {
		return fmt.Errorf("failed to embed tool documents: %w", err)
	}
	if len(vecs) != len(all) {
		return fmt.Errorf("embedding oracle returned %d vectors for %d documents", len(vecs), len(all))
	}

	dim := len(vecs[0])
	uc.toolVectors = make(map[model.ToolID][]float32, len(all))
	for i, m := range all {
		if len(vecs[i]) != dim {
			return fmt.Errorf("tool %s: vector dimension %d, want %d", m.ID, len(vecs[i]), dim)
		}
		uc.toolVectors[m.ID] = vecs[i]
	}

	return nil
}

// embedUtterance returns the utterance vector, consulting the LRU cache
// first. Errors (including a deadline hit) propagate to the caller as a
// hard failure.
func (uc *implUseCase) embedUtterance(ctx context.Context, text string) ([]float32, error) {
	if uc.queryCache != nil {
		if vec, ok := uc.queryCache.Get(text); ok {
			return vec, nil
		}
	}

	ectx := ctx
	if uc.cfg.EmbeddingTimeout > 0 {
		var cancel context.CancelFunc
		ectx, cancel = context.WithTimeout(ctx, uc.cfg.EmbeddingTimeout)
		defer cancel()
	}

	vecs, err := uc.embedder.Embed(ectx, []string{text})
	if err != nil {
		return nil, err
	}
	if len(vecs) != 1 {
		return nil, fmt.Errorf("embedding oracle returned %d vectors for one text", len(vecs))
	}

	if uc.queryCache != nil {
		uc.queryCache.Add(text, vecs[0])
	}
	return vecs[0], nil
}
