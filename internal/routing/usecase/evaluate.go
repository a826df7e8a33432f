package usecase

import (
	"context"
	"fmt"

	"multilingual-tool-router/internal/model"
	"multilingual-tool-router/internal/routing"
)

// Evaluate replays the labeled cases through Route and derives accuracy
// metrics. Precision and recall are 0.0 whenever their denominator is
// zero; an empty case list yields zeroed metrics, not an error.
func (uc *implUseCase) Evaluate(ctx context.Context, cases []routing.AccuracyTestCase) (routing.AccuracyMetrics, error) {
	uc.l.Infof(ctx, "%s: evaluating %d cases", LogPrefixEvaluate, len(cases))

	truePositives := make(map[model.ToolID]int)
	falsePositives := make(map[model.ToolID]int)
	falseNegatives := make(map[model.ToolID]int)
	confusion := make(map[model.ToolID]map[model.ToolID]int)
	langCorrect := make(map[model.Language]int)
	langTotal := make(map[model.Language]int)
	methodCounts := make(map[model.RoutingMethod]int)

	correct := 0
	var confidenceSum float64

	for _, tc := range cases {
		decision, err := uc.Route(ctx, routing.RouteInput{Utterance: tc.InputText})
		if err != nil {
			return routing.AccuracyMetrics{}, fmt.Errorf("failed to route %q: %w", tc.InputText, err)
		}

		expected, actual := tc.ExpectedTool, decision.SelectedTool

		if confusion[expected] == nil {
			confusion[expected] = make(map[model.ToolID]int)
		}
		confusion[expected][actual]++

		langTotal[tc.Language]++
		methodCounts[decision.RoutingMethod]++
		confidenceSum += decision.ConfidenceScore

		if actual == expected {
			correct++
			truePositives[expected]++
			langCorrect[tc.Language]++
		} else {
			falseNegatives[expected]++
			falsePositives[actual]++
		}
	}

	metrics := routing.AccuracyMetrics{
		TotalTests:          len(cases),
		CorrectPredictions:  correct,
		PrecisionPerTool:    make(map[model.ToolID]float64, uc.registry.Len()),
		RecallPerTool:       make(map[model.ToolID]float64, uc.registry.Len()),
		ConfusionMatrix:     confusion,
		LanguageAccuracy:    make(map[model.Language]float64, len(langTotal)),
		RoutingMethodCounts: methodCounts,
	}

	if len(cases) > 0 {
		metrics.Accuracy = float64(correct) / float64(len(cases))
		metrics.AvgConfidence = confidenceSum / float64(len(cases))
	}

	for _, m := range uc.registry.All() {
		tp := truePositives[m.ID]
		metrics.PrecisionPerTool[m.ID] = safeRatio(tp, tp+falsePositives[m.ID])
		metrics.RecallPerTool[m.ID] = safeRatio(tp, tp+falseNegatives[m.ID])
	}

	for lang, total := range langTotal {
		metrics.LanguageAccuracy[lang] = safeRatio(langCorrect[lang], total)
	}

	uc.l.Infof(ctx, "%s: accuracy %.2f%% (%d/%d), avg confidence %.3f",
		LogPrefixEvaluate, metrics.Accuracy*100, correct, len(cases), metrics.AvgConfidence)

	return metrics, nil
}

func safeRatio(num, den int) float64 {
	if den == 0 {
		return 0.0
	}
	return float64(num) / float64(den)
}
