package handlers

import (
	"context"
	"strings"

	"multilingual-tool-router/internal/model"
)

// PoemHandler returns a bilingual poem for a theme extracted from the
// utterance, defaulting to love.
type PoemHandler struct{}

var _ Handler = PoemHandler{}

type poem struct {
	Title   string
	Content string
	Style   string
}

var poemsByTheme = map[string]poem{
	"love": {
		Title: "Dil Ki Baat / Heart's Voice",
		Content: `तेरी आँखों में छुपा है प्यार का एक समंदर,
Your smile brings sunshine to my darkest days.

मेरा दिल कहता है, तू है मेरी जिंदगी का सहारा,
In this beautiful journey, you're my guiding star always.

हर सुबह तेरे ख्यालों से शुरू होती है,
Every evening ends with dreams of you and me.

Love ke इस मौसम में, हम साथ चलेंगे हमेशा,
Together forever, that's our beautiful destiny.`,
		Style: "romantic",
	},
	"nature": {
		Title: "Prakriti Ka Geet / Song of Nature",
		Content: `हरे-भरे पेड़ों की छांव में,
Green trees dancing in the morning breeze,

चिड़ियों के मधुर गीत सुनाई देते हैं,
Sweet melodies fill the air with peace.

सूरज की किरणें फूलों को छूती हैं,
Sunlight kisses every blooming flower,

प्रकृति का यह नज़ारा है कितना सुंदर,
Nature's beauty shows divine power.`,
		Style: "descriptive",
	},
	"friendship": {
		Title: "Dosti Ka Rang / Colors of Friendship",
		Content: `दोस्तों के साथ हर दिन है खुशियों भरा,
With friends by side, life's a joyful ride.

हंसी-मज़ाक और प्यार से भरा है यह रिश्ता,
True friendship is life's most precious guide.

मुश्किल वक्त में साथ देते हैं ये,
In tough times, they never leave you alone,

दोस्ती का यह प्यार है अनमोल और सच्चा,
Real friends make your heart their home.`,
		Style: "cheerful",
	},
}

func (PoemHandler) ToolID() model.ToolID { return model.ToolPoemGenerator }

func (PoemHandler) Handle(_ context.Context, utterance string) (interface{}, error) {
	lower := strings.ToLower(utterance)

	theme := "love"
	switch {
	case strings.Contains(lower, "nature") || strings.Contains(lower, "prakriti"):
		theme = "nature"
	case strings.Contains(lower, "friend") || strings.Contains(lower, "dost"):
		theme = "friendship"
	}

	p := poemsByTheme[theme]
	return PoemResult{
		PoemTitle:   p.Title,
		PoemContent: p.Content,
		Theme:       theme,
		Style:       p.Style,
		RecitationTips: []string{
			"Read with emotion and proper pauses",
			"Emphasize the rhythm and rhyme",
			"Let the words flow naturally",
		},
		SharingSuggestion: "Perfect for sharing with loved ones or on social media",
	}, nil
}
