package main

import (
	"context"
	"fmt"
	"os"
	"sort"

	"multilingual-tool-router/config"
	"multilingual-tool-router/internal/model"
	"multilingual-tool-router/internal/routing"
	"multilingual-tool-router/internal/routing/repository/memory"
	"multilingual-tool-router/internal/routing/usecase"
	"multilingual-tool-router/internal/tool"
	"multilingual-tool-router/pkg/intentmodel"
	"multilingual-tool-router/pkg/log"
	"multilingual-tool-router/pkg/voyage"
)

// main runs the builtin evaluation dataset against a freshly built
// routing engine and prints the accuracy report. It exercises the same
// wiring as cmd/api but needs no HTTP server.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()

	registry, err := tool.NewRegistry(cfg.Routing.BaseThreshold)
	if err != nil {
		logger.Errorf(ctx, "Failed to build tool registry: %v", err)
		os.Exit(1)
	}

	embedder, err := voyage.New(cfg.Voyage.APIKey)
	if err != nil {
		logger.Errorf(ctx, "Failed to create Voyage client: %v", err)
		os.Exit(1)
	}
	embedder.WithModel(cfg.Voyage.Model)

	var classifier intentmodel.IClassifier
	if cfg.IntentModel.Enabled && cfg.IntentModel.URL != "" {
		classifier, err = intentmodel.New(cfg.IntentModel.URL)
		if err != nil {
			logger.Errorf(ctx, "Failed to create intent classifier client: %v", err)
			os.Exit(1)
		}
	}

	uc, err := usecase.New(ctx, logger, registry, embedder, classifier, memory.New(), usecase.Config{
		ClassifierThreshold: cfg.Routing.ClassifierThreshold,
		HinglishFactor:      cfg.Routing.HinglishFactor,
		HindiFactor:         cfg.Routing.HindiFactor,
		ClassifierTimeout:   cfg.Routing.ClassifierTimeout,
		EmbeddingTimeout:    cfg.Routing.EmbeddingTimeout,
		EmbeddingCacheSize:  cfg.Routing.EmbeddingCacheSize,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize routing engine: %v", err)
		os.Exit(1)
	}

	cases := routing.BuiltinDataset()
	metrics, err := uc.Evaluate(ctx, cases)
	if err != nil {
		logger.Errorf(ctx, "Evaluation failed: %v", err)
		os.Exit(1)
	}

	printReport(metrics)
}

func printReport(m routing.AccuracyMetrics) {
	fmt.Println("=== Routing Accuracy Report ===")
	fmt.Printf("Total tests:         %d\n", m.TotalTests)
	fmt.Printf("Correct predictions: %d\n", m.CorrectPredictions)
	fmt.Printf("Accuracy:            %.2f%%\n", m.Accuracy*100)
	fmt.Printf("Avg confidence:      %.3f\n", m.AvgConfidence)

	fmt.Println("\nPer-tool precision / recall:")
	for _, id := range sortedTools(m.PrecisionPerTool) {
		fmt.Printf("  %-18s P=%.2f  R=%.2f\n", id, m.PrecisionPerTool[id], m.RecallPerTool[id])
	}

	fmt.Println("\nAccuracy per language:")
	langs := make([]string, 0, len(m.LanguageAccuracy))
	for lang := range m.LanguageAccuracy {
		langs = append(langs, string(lang))
	}
	sort.Strings(langs)
	for _, lang := range langs {
		fmt.Printf("  %-10s %.2f%%\n", lang, m.LanguageAccuracy[model.Language(lang)]*100)
	}

	fmt.Println("\nRouting method usage:")
	methods := make([]string, 0, len(m.RoutingMethodCounts))
	for method := range m.RoutingMethodCounts {
		methods = append(methods, string(method))
	}
	sort.Strings(methods)
	for _, method := range methods {
		fmt.Printf("  %-14s %d\n", method, m.RoutingMethodCounts[model.RoutingMethod(method)])
	}

	fmt.Println("\nConfusion matrix (expected -> actual):")
	for _, expected := range sortedTools(m.ConfusionMatrix) {
		row := m.ConfusionMatrix[expected]
		for _, actual := range sortedTools(row) {
			fmt.Printf("  %-18s -> %-20s %d\n", expected, actual, row[actual])
		}
	}
}

func sortedTools[V any](m map[model.ToolID]V) []model.ToolID {
	out := make([]model.ToolID, 0, len(m))
	for id := range m {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
