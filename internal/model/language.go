package model

// Language represents the detected register of a user utterance.
type Language string

const (
	LanguageHindi    Language = "hindi"
	LanguageEnglish  Language = "english"
	LanguageHinglish Language = "hinglish"
	LanguageMixed    Language = "mixed"
)

// Languages lists every value the detector can produce.
func Languages() []Language {
	return []Language{LanguageHindi, LanguageEnglish, LanguageHinglish, LanguageMixed}
}

// Valid reports whether l is a known language value.
func (l Language) Valid() bool {
	switch l {
	case LanguageHindi, LanguageEnglish, LanguageHinglish, LanguageMixed:
		return true
	}
	return false
}
