package usecase

import (
	"math"

	"multilingual-tool-router/internal/model"
	"multilingual-tool-router/internal/tool"
)

// cosineSimilarity computes the normalized dot product of two vectors
// in float64. Zero-norm input yields 0.
func cosineSimilarity(a, b []float32) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	var dot, normA, normB float64
	for i := 0; i < n; i++ {
		x, y := float64(a[i]), float64(b[i])
		dot += x * y
		normA += x * x
		normB += y * y
	}

	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// rank returns the tool whose cached vector is most similar to the
// utterance vector. Iteration follows registry order (sorted by id) and
// only a strictly greater similarity replaces the current best, so an
// exact tie goes to the lowest tool id.
func (uc *implUseCase) rank(utteranceVec []float32) (tool.Metadata, float64) {
	var best tool.Metadata
	bestSim := math.Inf(-1)

	for _, m := range uc.registry.All() {
		sim := cosineSimilarity(utteranceVec, uc.toolVectors[m.ID])
		if sim > bestSim {
			best = m
			bestSim = sim
		}
	}

	return best, bestSim
}

// languageFactor scales a tool's base threshold for the detected
// language. Hinglish gets the biggest reduction: code-mixed utterances
// land further from the tool documents in embedding space.
func (uc *implUseCase) languageFactor(lang model.Language) float64 {
	switch lang {
	case model.LanguageHinglish:
		return uc.cfg.HinglishFactor
	case model.LanguageHindi:
		return uc.cfg.HindiFactor
	default:
		return 1.0
	}
}
