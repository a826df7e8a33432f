// Package langdetect classifies an utterance into Hindi, English,
// Hinglish (romanized code-mixed) or Mixed. Detection is a pure function
// of the input text: script ratios plus lexicon/pattern heuristics, no
// statistical model and no hidden state.
package langdetect

import (
	"strings"
	"unicode"

	"multilingual-tool-router/internal/model"
)

// Detect returns the language register of the given text.
// Empty or all-whitespace input defaults to English.
func Detect(text string) model.Language {
	var hindiChars, englishChars, totalChars int
	for _, r := range text {
		if unicode.IsSpace(r) {
			continue
		}
		totalChars++
		switch {
		case r >= 0x0900 && r <= 0x097F: // Devanagari block
			hindiChars++
		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
			englishChars++
		}
	}

	if totalChars == 0 {
		return model.LanguageEnglish
	}

	hindiRatio := float64(hindiChars) / float64(totalChars)
	englishRatio := float64(englishChars) / float64(totalChars)

	lower := strings.ToLower(text)

	isHinglish := hasLexiconHit(lower) ||
		hasPatternMatch(lower) ||
		(hindiRatio > mixedHindiFloor && englishRatio > mixedEnglishFloor) ||
		(hindiRatio > anyMixHindiFloor && englishRatio > anyMixEnglishFloor)

	switch {
	case isHinglish:
		return model.LanguageHinglish
	case hindiRatio > hindiDominantRatio:
		return model.LanguageHindi
	case englishRatio > englishDominantRatio:
		return model.LanguageEnglish
	default:
		return model.LanguageMixed
	}
}

func hasLexiconHit(lower string) bool {
	for _, tok := range strings.Fields(lower) {
		tok = strings.TrimFunc(tok, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsNumber(r)
		})
		if tok == "" {
			continue
		}
		if _, ok := hinglishLexicon[tok]; ok {
			return true
		}
	}
	return false
}

func hasPatternMatch(lower string) bool {
	for _, p := range hinglishPatterns {
		if p.MatchString(lower) {
			return true
		}
	}
	return false
}
