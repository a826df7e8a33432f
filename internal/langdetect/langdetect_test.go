package langdetect

import (
	"testing"

	"multilingual-tool-router/internal/model"
)

func TestDetect(t *testing.T) {
	cases := []struct {
		name string
		text string
		want model.Language
	}{
		{"pure english", "Suggest a good restaurant nearby", model.LanguageEnglish},
		{"pure hindi", "बचे हुए खाने से क्या बना सकते हैं", model.LanguageHindi},
		{"hinglish lexicon hit", "Purane gaane recommend karo yaar", model.LanguageHinglish},
		{"hinglish postposition", "Ghar mein chawal hai", model.LanguageHinglish},
		{"hinglish question word", "Kya banau aaj", model.LanguageHinglish},
		{"hinglish imperative", "Ek kahani sunao", model.LanguageHinglish},
		{"mixed script is hinglish", "story सुनाओ please right now okay", model.LanguageHinglish},
		{"empty defaults to english", "", model.LanguageEnglish},
		{"whitespace defaults to english", "   \t\n", model.LanguageEnglish},
		{"digits only is mixed", "123 456", model.LanguageMixed},
		{"punctuation heavy english stays english", "Write a poem!", model.LanguageEnglish},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Detect(tc.text)
			if got != tc.want {
				t.Errorf("Detect(%q) = %s, want %s", tc.text, got, tc.want)
			}
		})
	}
}

func TestDetectDeterministic(t *testing.T) {
	input := "Bacchon ke liye moral story batao"
	first := Detect(input)
	for i := 0; i < 10; i++ {
		if got := Detect(input); got != first {
			t.Fatalf("Detect is not deterministic: run %d got %s, first was %s", i, got, first)
		}
	}
}

func TestDetectHindiDominant(t *testing.T) {
	// Mostly Devanagari with a little punctuation: ratio above 0.7,
	// no Latin letters so no Hinglish trigger.
	got := Detect("कोई नैतिक कहानी सुनाइए")
	if got != model.LanguageHindi {
		t.Errorf("expected hindi, got %s", got)
	}
}
