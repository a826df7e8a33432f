package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"multilingual-tool-router/internal/langdetect"
	"multilingual-tool-router/internal/model"
	"multilingual-tool-router/internal/routing"
)

// Route runs the hybrid policy: classifier first, semantic fallback,
// clarification last. Classifier failures degrade silently to the
// semantic path; an embedding oracle failure is fatal for the call.
func (uc *implUseCase) Route(ctx context.Context, input routing.RouteInput) (model.RouteDecision, error) {
	lang := langdetect.Detect(input.Utterance)

	var (
		classifierConf *float64
		predicted      *model.Intent
	)
	attempted := uc.classifier != nil

	var (
		selected   model.ToolID
		confidence float64
		method     model.RoutingMethod
		reasoning  string
	)

	// Step 1: intent classifier, when available.
	if attempted {
		cctx := ctx
		cancel := context.CancelFunc(func() {})
		if uc.cfg.ClassifierTimeout > 0 {
			cctx, cancel = context.WithTimeout(ctx, uc.cfg.ClassifierTimeout)
		}
		intent, conf, err := uc.classifier.Predict(cctx, input.Utterance)
		cancel()

		if err != nil {
			// Unavailable, inference failure and timeout are all the
			// same non-fatal degradation trigger.
			uc.l.Infof(ctx, "%s: classifier degraded, using semantic path: %v", LogPrefixRoute, err)
		} else {
			c, i := conf, intent
			classifierConf, predicted = &c, &i

			if conf >= uc.cfg.ClassifierThreshold {
				if id, ok := uc.registry.ByIntent(intent); ok {
					selected = id
					confidence = conf
					method = model.MethodClassifier
					reasoning = fmt.Sprintf("Intent classifier: %s (confidence: %.3f)", intent, conf)
				} else {
					uc.l.Warnf(ctx, "%s: classifier intent %s has no tool, using semantic path", LogPrefixRoute, intent)
				}
			}
		}
	}

	// The utterance vector is needed on every path: the semantic
	// fallback consumes it and the similarity audit below requires it
	// even when the classifier already decided.
	utteranceVec, err := uc.embedUtterance(ctx, input.Utterance)
	if err != nil {
		uc.l.Errorf(ctx, "%s: embedding oracle failed: %v", LogPrefixRoute, err)
		return model.RouteDecision{}, fmt.Errorf("%w: %v", routing.ErrEmbeddingOracle, err)
	}

	var semanticSim float64

	if method == model.MethodClassifier {
		// Audit only: record how close the utterance sits to the tool
		// the classifier chose. Not a decision input on this branch.
		semanticSim = cosineSimilarity(utteranceVec, uc.toolVectors[selected])
	} else {
		// Step 2: semantic ranking with language-adjusted acceptance.
		best, bestSim := uc.rank(utteranceVec)
		adjusted := best.BaseThreshold * uc.languageFactor(lang)
		semanticSim = bestSim

		semanticReason := fmt.Sprintf("Semantic similarity: %.3f (threshold: %.3f)", bestSim, adjusted)

		if bestSim >= adjusted {
			selected = best.ID
			confidence = bestSim
			if attempted {
				method = model.MethodFallback
			} else {
				method = model.MethodSemantic
			}

			switch {
			case classifierConf != nil:
				reasoning = fmt.Sprintf("Classifier confidence too low (%.3f), fallback to %s", *classifierConf, semanticReason)
			case attempted:
				reasoning = "Classifier unavailable, fallback to " + semanticReason
			default:
				reasoning = "Semantic only: " + semanticReason
			}
		} else {
			// Step 3: neither branch is confident. The best similarity
			// is still reported for observability.
			selected = model.ToolClarificationNeeded
			confidence = bestSim
			method = model.MethodClarification

			if classifierConf != nil {
				reasoning = fmt.Sprintf("Both methods failed: classifier confidence %.3f < %.2f, semantic similarity %.3f < %.3f",
					*classifierConf, uc.cfg.ClassifierThreshold, bestSim, adjusted)
			} else {
				reasoning = fmt.Sprintf("Semantic similarity %.3f below threshold %.3f", bestSim, adjusted)
			}
		}
	}

	reasoning += fmt.Sprintf(", Language: %s", lang)

	decision := model.RouteDecision{
		ID:                   uuid.New().String(),
		SelectedTool:         selected,
		ConfidenceScore:      confidence,
		Reasoning:            reasoning,
		LanguageDetected:     lang,
		SemanticSimilarity:   semanticSim,
		RoutingMethod:        method,
		ClassifierConfidence: classifierConf,
		PredictedIntent:      predicted,
		Timestamp:            time.Now(),
	}

	if err := uc.decisions.Append(ctx, decision); err != nil {
		uc.l.Warnf(ctx, "%s: failed to append decision: %v", LogPrefixRoute, err)
	}

	uc.l.Infof(ctx, "%s: %q -> %s via %s (confidence: %.3f)", LogPrefixRoute, input.Utterance, selected, method, confidence)
	return decision, nil
}
