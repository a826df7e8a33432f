package tool

import "multilingual-tool-router/internal/model"

// DefaultBaseThreshold is the tuned semantic acceptance threshold shared
// by all registry tools. Override per deployment via config.
const DefaultBaseThreshold = 0.3

// builtinMetadata returns the static tool table. Threshold is applied to
// every entry so deployments can tune a single knob.
func builtinMetadata(threshold float64) []Metadata {
	return []Metadata{
		{
			ID:            model.ToolLeftoverChef,
			Intent:        model.IntentRecipeSuggestion,
			DescriptionEN: "Recommends recipes based on leftover food ingredients available at home",
			DescriptionHI: "घर में बचे हुए खाने से रेसिपी बनाने की सलाह देता है",
			KeywordsEN:    []string{"recipe", "cook", "food", "ingredients", "leftover", "meal", "dish"},
			KeywordsHI:    []string{"रेसिपी", "खाना", "बनाना", "सामग्री", "बचा हुआ", "भोजन"},
			KeywordsHinglish: []string{
				"recipe batao", "khana banana", "leftover se kya banau", "cooking tips",
				"ghar mein kya hai", "kuch banana hai", "leftover food se", "recipe suggest",
				"khana banane ka tarika", "kya cook karu", "bacha hua khana", "meal idea",
				"cooking help", "recipe chahiye", "dish banao", "khana ready karo",
				"dal chawal se kya banau", "roti sabzi leftover", "khane ka jugaad",
			},
			SemanticContext: []string{
				"cooking guidance", "ingredient utilization", "meal preparation",
				"food waste reduction", "ghar ka khana", "leftover jugaad",
			},
			ExamplePhrases: []string{"ghar mein khana", "leftover se jugaad", "kya banau", "recipe chahiye"},
			BaseThreshold:  threshold,
		},
		{
			ID:            model.ToolNaniKahaniyan,
			Intent:        model.IntentStoryTelling,
			DescriptionEN: "Generates moral stories and bedtime tales for children",
			DescriptionHI: "बच्चों के लिए नैतिक कहानियां और सोने से पहले की कहानियां बनाता है",
			KeywordsEN:    []string{"story", "tale", "moral", "bedtime", "children", "narrative"},
			KeywordsHI:    []string{"कहानी", "किस्सा", "नैतिक", "सोने से पहले", "बच्चे"},
			KeywordsHinglish: []string{
				"story sunao", "kahani batao", "bedtime story", "bacchon ke liye",
				"moral story", "nani ki kahani", "sone se pehle", "bachon ko story",
				"kahani suna do", "story time", "tale sunao", "good story",
				"moral wali kahani", "kids story", "bacche story", "kahani chahiye",
				"interesting story", "story with moral", "sunane ke liye kahani",
			},
			SemanticContext: []string{
				"storytelling", "moral education", "children entertainment",
				"bedtime routine", "nani ki yaadein", "bachpan ki kahaniyan",
			},
			ExamplePhrases: []string{"bacchon ko story", "kahani sunao", "moral story chahiye", "bedtime tale"},
			BaseThreshold:  threshold,
		},
		{
			ID:            model.ToolPoemGenerator,
			Intent:        model.IntentPoemGeneration,
			DescriptionEN: "Creates beautiful poems and verses in Hindi and English",
			DescriptionHI: "हिंदी और अंग्रेजी में सुंदर कविताएं और छंद बनाता है",
			KeywordsEN:    []string{"poem", "poetry", "verse", "rhyme", "literature"},
			KeywordsHI:    []string{"कविता", "शायरी", "छंद", "तुकबंदी", "साहित्य"},
			KeywordsHinglish: []string{
				"kavita sunao", "poetry batao", "achhi si poem", "koi poem",
				"shayari sunao", "romantic poetry", "love poem", "kavita likhkar",
				"poem create karo", "beautiful poetry", "heart touching poem",
				"emotional kavita", "poetry suggest", "verse sunao", "rhyme banao",
				"poetry chahiye", "poem sunane ka", "kavita ka mood",
			},
			SemanticContext: []string{
				"creative writing", "artistic expression", "emotional expression",
				"literary creation", "dil ki baat", "feelings poetry",
			},
			ExamplePhrases: []string{"poetry sunao", "kavita chahiye", "poem likho", "shayari batao"},
			BaseThreshold:  threshold,
		},
		{
			ID:            model.ToolVividhBharti,
			Intent:        model.IntentMusicRecommendation,
			DescriptionEN: "Recommends nostalgic 1900s classic Indian songs and music",
			DescriptionHI: "1900 के दशक के पुराने भारतीय गाने और संगीत की सिफारिश करता है",
			KeywordsEN:    []string{"music", "songs", "classic", "old", "nostalgic", "1900s", "vintage"},
			KeywordsHI:    []string{"संगीत", "गाने", "पुराने", "क्लासिक", "नॉस्टेल्जिक"},
			KeywordsHinglish: []string{
				"purane gaane", "old songs", "classic music", "nostalgic songs",
				"gaane recommend karo", "music batao", "retro songs", "vintage music",
				"old bollywood", "classic hits", "gaane sunao", "music suggest",
				"nostalgic feeling", "old melodies", "gaane chahiye", "classic tracks",
				"purane zamane ke gaane", "golden era songs", "evergreen music",
			},
			SemanticContext: []string{
				"music recommendation", "nostalgia", "classic entertainment",
				"vintage music", "purane din", "golden memories",
			},
			ExamplePhrases: []string{"purane gaane sunao", "old music chahiye", "nostalgic songs", "classic tracks"},
			BaseThreshold:  threshold,
		},
		{
			ID:            model.ToolFoodLocator,
			Intent:        model.IntentFoodLocation,
			DescriptionEN: "Suggests good food places and restaurants near current location",
			DescriptionHI: "वर्तमान स्थान के पास अच्छे खाने की जगह और रेस्टोरेंट सुझाता है",
			KeywordsEN:    []string{"restaurant", "food", "nearby", "location", "eat", "dining"},
			KeywordsHI:    []string{"रेस्टोरेंट", "खाना", "पास में", "स्थान", "भोजन"},
			KeywordsHinglish: []string{
				"paas mein khana", "nearby restaurant", "kahan khana milega", "food places",
				"yahan ke paas dhaba", "restaurant batao", "food location", "khane ki jagah",
				"nearby food", "koi achha restaurant", "paas ka dhaba", "dining options",
				"food delivery", "restaurant suggest", "khana order karna", "food spots",
				"yahan ka food scene", "local restaurant", "food hunt", "achha khana kahan",
			},
			SemanticContext: []string{
				"location services", "dining recommendations", "local food discovery",
				"restaurant finder", "khana dhundna", "food exploration",
			},
			ExamplePhrases: []string{"yahan khana kahan", "nearby dhaba", "restaurant batao", "food places"},
			BaseThreshold:  threshold,
		},
	}
}
