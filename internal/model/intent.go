package model

// Intent is one of the fixed semantic categories the classifier can output.
type Intent string

const (
	IntentRecipeSuggestion    Intent = "recipe_suggestion"
	IntentStoryTelling        Intent = "story_telling"
	IntentPoemGeneration      Intent = "poem_generation"
	IntentMusicRecommendation Intent = "music_recommendation"
	IntentFoodLocation        Intent = "food_location"
)

// Intents lists the closed intent set in label order.
// The classifier model's output labels index into this slice.
func Intents() []Intent {
	return []Intent{
		IntentRecipeSuggestion,
		IntentStoryTelling,
		IntentPoemGeneration,
		IntentMusicRecommendation,
		IntentFoodLocation,
	}
}

// Valid reports whether i is a known intent label.
func (i Intent) Valid() bool {
	switch i {
	case IntentRecipeSuggestion, IntentStoryTelling, IntentPoemGeneration,
		IntentMusicRecommendation, IntentFoodLocation:
		return true
	}
	return false
}

// ToolID identifies a downstream capability handler.
type ToolID string

const (
	ToolLeftoverChef  ToolID = "leftover_chef"
	ToolNaniKahaniyan ToolID = "nani_kahaniyan"
	ToolPoemGenerator ToolID = "poem_generator"
	ToolVividhBharti  ToolID = "vividh_bharti"
	ToolFoodLocator   ToolID = "food_locator"

	// ToolClarificationNeeded is the sentinel returned when no tool met
	// the confidence bar. It is not a registry entry.
	ToolClarificationNeeded ToolID = "clarification_needed"
)

// ToolIDs lists the registry tool set (the sentinel excluded).
func ToolIDs() []ToolID {
	return []ToolID{
		ToolLeftoverChef,
		ToolNaniKahaniyan,
		ToolPoemGenerator,
		ToolVividhBharti,
		ToolFoodLocator,
	}
}

// ToolForIntent maps an intent label to its tool. The mapping is a bijection;
// adding an intent without extending this switch is a compile-visible gap
// caught by the registry validation test.
func ToolForIntent(i Intent) (ToolID, bool) {
	switch i {
	case IntentRecipeSuggestion:
		return ToolLeftoverChef, true
	case IntentStoryTelling:
		return ToolNaniKahaniyan, true
	case IntentPoemGeneration:
		return ToolPoemGenerator, true
	case IntentMusicRecommendation:
		return ToolVividhBharti, true
	case IntentFoodLocation:
		return ToolFoodLocator, true
	}
	return "", false
}
