package tool

import (
	"strings"

	"multilingual-tool-router/internal/model"
)

// Metadata describes one registry tool. Instances are immutable after
// NewRegistry returns; mutation requires a process restart.
type Metadata struct {
	ID               model.ToolID
	Intent           model.Intent
	DescriptionEN    string
	DescriptionHI    string
	KeywordsEN       []string
	KeywordsHI       []string
	KeywordsHinglish []string
	SemanticContext  []string

	// ExamplePhrases are hand-authored colloquial utterances that anchor
	// the tool's embedding document in real user phrasing.
	ExamplePhrases []string

	// BaseThreshold is the semantic acceptance threshold before the
	// language factor is applied. Range (0, 1].
	BaseThreshold float64
}

// Document composes the representative text that gets embedded once at
// startup: descriptions, keywords, the Hinglish keyword list twice (to
// double its representational weight), semantic context and example
// phrases.
func (m Metadata) Document() string {
	parts := []string{
		m.DescriptionEN,
		m.DescriptionHI,
		strings.Join(m.KeywordsEN, " "),
		strings.Join(m.KeywordsHI, " "),
		strings.Join(m.KeywordsHinglish, " "),
		strings.Join(m.KeywordsHinglish, " "),
		strings.Join(m.SemanticContext, " "),
		strings.Join(m.ExamplePhrases, " "),
	}
	return strings.Join(parts, " ")
}
