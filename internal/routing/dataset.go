package routing

import "multilingual-tool-router/internal/model"

// BuiltinDataset returns the labeled evaluation corpus covering every
// tool across English, Hindi and Hinglish phrasings. It feeds the
// offline evaluation CLI and the diagnostic endpoint when the caller
// posts no cases of its own.
func BuiltinDataset() []AccuracyTestCase {
	return []AccuracyTestCase{
		// Recipe
		{InputText: "What can I cook with leftover rice and dal?", ExpectedTool: model.ToolLeftoverChef, ExpectedIntent: model.IntentRecipeSuggestion, Language: model.LanguageEnglish, Description: "English recipe query"},
		{InputText: "Ghar mein sirf chawal aur dal hai, kuch recipe batao", ExpectedTool: model.ToolLeftoverChef, ExpectedIntent: model.IntentRecipeSuggestion, Language: model.LanguageHinglish, Description: "Hinglish recipe query"},
		{InputText: "बचे हुए खाने से क्या बना सकते हैं?", ExpectedTool: model.ToolLeftoverChef, ExpectedIntent: model.IntentRecipeSuggestion, Language: model.LanguageHindi, Description: "Hindi recipe query"},
		{InputText: "Leftover roti se kya banau?", ExpectedTool: model.ToolLeftoverChef, ExpectedIntent: model.IntentRecipeSuggestion, Language: model.LanguageHinglish, Description: "Leftover roti query"},

		// Story
		{InputText: "Tell me a bedtime story", ExpectedTool: model.ToolNaniKahaniyan, ExpectedIntent: model.IntentStoryTelling, Language: model.LanguageEnglish, Description: "English bedtime story"},
		{InputText: "Bacchon ko sunane ke liye koi achhi kahani batao", ExpectedTool: model.ToolNaniKahaniyan, ExpectedIntent: model.IntentStoryTelling, Language: model.LanguageHinglish, Description: "Hinglish children story"},
		{InputText: "कोई नैतिक कहानी सुनाइए", ExpectedTool: model.ToolNaniKahaniyan, ExpectedIntent: model.IntentStoryTelling, Language: model.LanguageHindi, Description: "Hindi moral story"},
		{InputText: "Story with moral sunao", ExpectedTool: model.ToolNaniKahaniyan, ExpectedIntent: model.IntentStoryTelling, Language: model.LanguageHinglish, Description: "Hinglish moral story"},

		// Poem
		{InputText: "Write a beautiful poem", ExpectedTool: model.ToolPoemGenerator, ExpectedIntent: model.IntentPoemGeneration, Language: model.LanguageEnglish, Description: "English poem request"},
		{InputText: "Koi achhi kavita sunao", ExpectedTool: model.ToolPoemGenerator, ExpectedIntent: model.IntentPoemGeneration, Language: model.LanguageHinglish, Description: "Hinglish poem request"},
		{InputText: "प्रेम पर कविता लिखिए", ExpectedTool: model.ToolPoemGenerator, ExpectedIntent: model.IntentPoemGeneration, Language: model.LanguageHindi, Description: "Hindi love poem"},
		{InputText: "Romantic poetry batao", ExpectedTool: model.ToolPoemGenerator, ExpectedIntent: model.IntentPoemGeneration, Language: model.LanguageHinglish, Description: "Hinglish romantic poem"},

		// Music
		{InputText: "Suggest some old classic songs", ExpectedTool: model.ToolVividhBharti, ExpectedIntent: model.IntentMusicRecommendation, Language: model.LanguageEnglish, Description: "English music request"},
		{InputText: "Purane gaane recommend karo", ExpectedTool: model.ToolVividhBharti, ExpectedIntent: model.IntentMusicRecommendation, Language: model.LanguageHinglish, Description: "Hinglish music request"},
		{InputText: "कुछ पुराने गाने बताइए", ExpectedTool: model.ToolVividhBharti, ExpectedIntent: model.IntentMusicRecommendation, Language: model.LanguageHindi, Description: "Hindi music request"},
		{InputText: "1900s ke nostalgic songs batao", ExpectedTool: model.ToolVividhBharti, ExpectedIntent: model.IntentMusicRecommendation, Language: model.LanguageHinglish, Description: "Nostalgic songs request"},

		// Food location
		{InputText: "Good restaurants near me", ExpectedTool: model.ToolFoodLocator, ExpectedIntent: model.IntentFoodLocation, Language: model.LanguageEnglish, Description: "English restaurant search"},
		{InputText: "Yahan ke paas koi achha dhaba hai?", ExpectedTool: model.ToolFoodLocator, ExpectedIntent: model.IntentFoodLocation, Language: model.LanguageHinglish, Description: "Hinglish dhaba search"},
		{InputText: "पास में खाने की जगह बताइए", ExpectedTool: model.ToolFoodLocator, ExpectedIntent: model.IntentFoodLocation, Language: model.LanguageHindi, Description: "Hindi food place search"},
		{InputText: "Nearby food places batao", ExpectedTool: model.ToolFoodLocator, ExpectedIntent: model.IntentFoodLocation, Language: model.LanguageHinglish, Description: "Hinglish food search"},

		// Harder code-mixed phrasings
		{InputText: "Purane gaane recommend karo yaar", ExpectedTool: model.ToolVividhBharti, ExpectedIntent: model.IntentMusicRecommendation, Language: model.LanguageHinglish, Description: "Challenging Hinglish music request"},
		{InputText: "Koi achhi si kavita sunao na", ExpectedTool: model.ToolPoemGenerator, ExpectedIntent: model.IntentPoemGeneration, Language: model.LanguageHinglish, Description: "Casual Hinglish poem request"},
		{InputText: "Bacchon ke liye moral story batao", ExpectedTool: model.ToolNaniKahaniyan, ExpectedIntent: model.IntentStoryTelling, Language: model.LanguageHinglish, Description: "Hinglish children story request"},
		{InputText: "Dal chawal se kya banana hai", ExpectedTool: model.ToolLeftoverChef, ExpectedIntent: model.IntentRecipeSuggestion, Language: model.LanguageHinglish, Description: "Specific Hinglish recipe query"},
		{InputText: "Yahan ka food scene kaisa hai", ExpectedTool: model.ToolFoodLocator, ExpectedIntent: model.IntentFoodLocation, Language: model.LanguageHinglish, Description: "Complex Hinglish food inquiry"},
	}
}
