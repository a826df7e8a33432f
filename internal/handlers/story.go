package handlers

import (
	"context"
	"strings"

	"multilingual-tool-router/internal/model"
)

// StoryHandler returns a moral story matching a theme extracted from
// the utterance, defaulting to honesty.
type StoryHandler struct{}

var _ Handler = StoryHandler{}

type story struct {
	Title    string
	Content  string
	Moral    string
	Duration string
}

var storiesByTheme = map[string]story{
	"honesty": {
		Title: "Sach Bolne Wala Rajkumar / The Honest Prince",
		Content: `एक बार एक राज्य में एक छोटा राजकुमार रहता था। वह हमेशा सच बोलता था, चाहे उसे कितनी भी मुश्किल हो।

एक दिन उसने गलती से अपनी माँ का प्रिय गुलदस्ता तोड़ दिया। वह डर गया, लेकिन फिर भी उसने सच बता दिया।

"Mummy, maine galti se aapka favorite vase tod diya hai. I'm very sorry."

उसकी माँ को गुस्सा आने के बजाय खुशी हुई कि उसका बेटा इतना ईमानदार है।

Moral: सच बोलना हमेशा सही रास्ता है। Truth always wins in the end.`,
		Moral:    "Honesty is the best policy / सच्चाई सबसे अच्छी नीति है",
		Duration: "5 minutes",
	},
	"kindness": {
		Title: "Pyaari Chidiya aur Sher / The Kind Bird and Lion",
		Content: `जंगल में एक छोटी चिड़िया रहती थी। वह बहुत दयालु थी और सबकी मदद करती थी।

एक दिन उसने देखा कि एक बड़ा शेर कांटे में फंसा है और बहुत परेशान है।

"Don't worry, Uncle Sher! Main aapki help karungi," चिड़िया ने कहा।

छोटी चिड़िया ने अपनी छोटी चोंच से धीरे-धीरे कांटा निकाल दिया।

शेर बहुत खुश हुआ और बोला, "Thank you, little friend! आज से तुम मेरी सबसे अच्छी दोस्त हो।"

Moral: छोटे हो या बड़े, सबकी मदद करनी चाहिए। Kindness knows no size.`,
		Moral:    "Be kind to everyone / सभी के साथ दयालु बनें",
		Duration: "5 minutes",
	},
	"perseverance": {
		Title: "Mehnat Karne Wali Chiti / The Hardworking Ant",
		Content: `गर्मियों में एक चींटी दिन भर मेहनत करती थी और अनाज इकट्ठा करती थी।

उसका दोस्त टिड्डा हमेशा गाना गाता और खेलता रहता था।

"Arre yaar, itna kaam kyun karti ho? Come and play with me!" टिड्डा बोला।

चींटी ने कहा, "Sardi aane wali hai, hume prepare karna chahiye."

जब ठंड आई, चींटी के पास खाना था लेकिन टिड्डा भूखा रह गया।

फिर चींटी ने अपना खाना अपने दोस्त के साथ share किया।

Moral: मेहनत का फल हमेशा मीठा होता है। Hard work always pays off.`,
		Moral:    "Hard work and preparation are important / मेहनत और तैयारी जरूरी है",
		Duration: "6 minutes",
	},
}

func (StoryHandler) ToolID() model.ToolID { return model.ToolNaniKahaniyan }

func (StoryHandler) Handle(_ context.Context, utterance string) (interface{}, error) {
	lower := strings.ToLower(utterance)

	theme := "honesty"
	switch {
	case strings.Contains(lower, "kindness") || strings.Contains(utterance, "दयालु"):
		theme = "kindness"
	case strings.Contains(lower, "hard work") || strings.Contains(lower, "mehnat"):
		theme = "perseverance"
	}

	s := storiesByTheme[theme]
	return StoryResult{
		StoryTitle:        s.Title,
		StoryContent:      s.Content,
		MoralLesson:       s.Moral,
		AgeGroup:          "children",
		EstimatedDuration: s.Duration,
		BedtimeTips: []string{
			"Read in a calm, soothing voice",
			"Pause to ask questions about the moral",
			"Let the child retell the story in their own words",
		},
	}, nil
}
