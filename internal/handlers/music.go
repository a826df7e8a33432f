package handlers

import (
	"context"
	"strings"

	"multilingual-tool-router/internal/model"
)

// MusicHandler recommends classic songs from the era hinted at in the
// utterance. Selection is deterministic: filters narrow the era list
// and the first three survivors are returned.
type MusicHandler struct{}

var _ Handler = MusicHandler{}

var songsByEra = map[string][]Song{
	"1950s": {
		{
			Title:         "Aayega Aanewala",
			Movie:         "Mahal (1949)",
			Singer:        "Lata Mangeshkar",
			MusicDirector: "Khemchand Prakash",
			Mood:          "mysterious",
			Description:   "A hauntingly beautiful song that became an instant classic",
		},
		{
			Title:         "Sare Jahan Se Achha",
			Movie:         "Patriotic Song",
			Singer:        "Various Artists",
			MusicDirector: "Traditional",
			Mood:          "patriotic",
			Description:   "The most beloved patriotic song of India",
		},
	},
	"1960s": {
		{
			Title:         "Lag Ja Gale",
			Movie:         "Woh Kaun Thi (1964)",
			Singer:        "Lata Mangeshkar",
			MusicDirector: "Madan Mohan",
			Mood:          "romantic",
			Description:   "One of the most romantic songs ever created in Bollywood",
		},
		{
			Title:         "Kahin Door Jab Din Dhal Jaye",
			Movie:         "Anand (1971)",
			Singer:        "Mukesh",
			MusicDirector: "Salil Chowdhury",
			Mood:          "nostalgic",
			Description:   "A deeply moving song about life's journey",
		},
	},
	"1970s": {
		{
			Title:         "Tere Bina Zindagi Se",
			Movie:         "Aandhi (1975)",
			Singer:        "Lata Mangeshkar, Kishore Kumar",
			MusicDirector: "R.D. Burman",
			Mood:          "romantic",
			Description:   "A timeless duet about incomplete love",
		},
		{
			Title:         "Rimjhim Gire Sawan",
			Movie:         "Manzil (1979)",
			Singer:        "Lata Mangeshkar, Kishore Kumar",
			MusicDirector: "R.D. Burman",
			Mood:          "monsoon",
			Description:   "The perfect song for rainy days",
		},
	},
}

func (MusicHandler) ToolID() model.ToolID { return model.ToolVividhBharti }

func (MusicHandler) Handle(_ context.Context, utterance string) (interface{}, error) {
	era := "1960s"
	switch {
	case strings.Contains(utterance, "1950"):
		era = "1950s"
	case strings.Contains(utterance, "1970"):
		era = "1970s"
	}

	mood := "nostalgic"

	songs := songsByEra[era]
	var filtered []Song
	for _, s := range songs {
		if s.Mood == mood {
			filtered = append(filtered, s)
		}
	}
	if len(filtered) > 0 {
		songs = filtered
	}
	if len(songs) > 3 {
		songs = songs[:3]
	}

	return MusicResult{
		Era:              era,
		Mood:             mood,
		RecommendedSongs: songs,
		ListeningTips: []string{
			"Best enjoyed with a cup of tea in the evening",
			"Close your eyes and let the melodies transport you",
			"Share with family to create bonding moments",
		},
		Trivia: "These songs represent the golden era of Indian cinema music, when melody was the king and lyrics touched the soul.",
	}, nil
}
