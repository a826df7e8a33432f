package langdetect

import "regexp"

// Ratio thresholds for script-based classification.
const (
	hindiDominantRatio   = 0.7
	englishDominantRatio = 0.9

	// Mixed-script floors that force Hinglish even without a lexicon hit.
	mixedHindiFloor    = 0.05
	mixedEnglishFloor  = 0.3
	anyMixHindiFloor   = 0.1
	anyMixEnglishFloor = 0.1
)

// hinglishLexicon holds romanized Hindi function words and markers.
// Content words (recipe, story, music, ...) are deliberately excluded:
// they appear in plain English sentences too.
var hinglishLexicon = map[string]struct{}{
	"ghar": {}, "mein": {}, "hai": {}, "kuch": {}, "batao": {}, "karo": {},
	"yaar": {}, "paas": {}, "koi": {}, "achha": {}, "accha": {}, "sunao": {},
	"kya": {}, "se": {}, "ka": {}, "ki": {}, "ko": {}, "ke": {}, "liye": {},
	"mera": {}, "tera": {}, "aur": {}, "bhi": {}, "toh": {}, "wala": {},
	"wali": {}, "kahan": {}, "kaise": {}, "kyun": {}, "kab": {}, "kitna": {},
	"kaun": {}, "na": {}, "ho": {}, "kar": {}, "chahiye": {}, "milega": {},
	"bahut": {}, "thoda": {}, "zyada": {}, "kam": {}, "hua": {}, "bacha": {},
}

// hinglishPatterns are the five pattern classes matched against the
// lowercased input: question words, copular verbs, connectors,
// postpositions, imperative command forms.
var hinglishPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b(kya|koi|kuch|kahan|kaise|kyun)\b`),
	regexp.MustCompile(`\b(hai|hain|tha|thi)\b`),
	regexp.MustCompile(`\b(aur|bhi|toh|wala|wali)\b`),
	regexp.MustCompile(`\b(mein|se|ka|ki|ko|ke|liye)\b`),
	regexp.MustCompile(`\b(batao|karo|sunao|dena|lena)\b`),
}
