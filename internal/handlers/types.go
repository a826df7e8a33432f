package handlers

import "multilingual-tool-router/internal/model"

// RoutingInfo is the decision summary attached to every dispatch result.
type RoutingInfo struct {
	SelectedTool model.ToolID        `json:"selected_tool"`
	Confidence   float64             `json:"confidence"`
	Method       model.RoutingMethod `json:"method"`
	Language     model.Language      `json:"language"`
	Reasoning    string              `json:"reasoning"`
}

// DispatchResult is the outcome of routing plus tool execution. For a
// clarification decision ToolResult is nil and Suggestions carries the
// bilingual hints.
type DispatchResult struct {
	Status      string      `json:"status"`
	UserQuery   string      `json:"user_query"`
	Message     string      `json:"message,omitempty"`
	Suggestions []string    `json:"suggestions,omitempty"`
	ToolResult  interface{} `json:"tool_result,omitempty"`
	Routing     RoutingInfo `json:"routing_info"`
}

// Recipe is one suggested preparation.
type Recipe struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Ingredients  []string `json:"ingredients"`
	Instructions string   `json:"instructions"`
	PrepTime     string   `json:"prep_time"`
	Difficulty   string   `json:"difficulty"`
}

// RecipeResult is the leftover_chef payload.
type RecipeResult struct {
	LeftoversProvided  []string `json:"leftovers_provided"`
	CuisineType        string   `json:"cuisine_type"`
	RecommendedRecipes []Recipe `json:"recommended_recipes"`
	Tips               []string `json:"tips"`
}

// StoryResult is the nani_kahaniyan payload.
type StoryResult struct {
	StoryTitle        string   `json:"story_title"`
	StoryContent      string   `json:"story_content"`
	MoralLesson       string   `json:"moral_lesson"`
	AgeGroup          string   `json:"age_group"`
	EstimatedDuration string   `json:"estimated_duration"`
	BedtimeTips       []string `json:"bedtime_tips"`
}

// PoemResult is the poem_generator payload.
type PoemResult struct {
	PoemTitle         string   `json:"poem_title"`
	PoemContent       string   `json:"poem_content"`
	Theme             string   `json:"theme"`
	Style             string   `json:"style"`
	RecitationTips    []string `json:"recitation_tips"`
	SharingSuggestion string   `json:"sharing_suggestion"`
}

// Song is one classic recommendation.
type Song struct {
	Title         string `json:"title"`
	Movie         string `json:"movie"`
	Singer        string `json:"singer"`
	MusicDirector string `json:"music_director"`
	Mood          string `json:"mood"`
	Description   string `json:"description"`
}

// MusicResult is the vividh_bharti payload.
type MusicResult struct {
	Era              string   `json:"era"`
	Mood             string   `json:"mood"`
	RecommendedSongs []Song   `json:"recommended_songs"`
	ListeningTips    []string `json:"listening_tips"`
	Trivia           string   `json:"trivia"`
}

// Restaurant is one nearby food place.
type Restaurant struct {
	Name          string   `json:"name"`
	Type          string   `json:"type"`
	Speciality    string   `json:"speciality"`
	Budget        string   `json:"budget"`
	Rating        float64  `json:"rating"`
	DistanceKM    float64  `json:"distance_km"`
	Description   string   `json:"description"`
	Timings       string   `json:"timings"`
	PopularDishes []string `json:"popular_dishes"`
}

// FoodLocationResult is the food_locator payload.
type FoodLocationResult struct {
	FoodType          string       `json:"food_type"`
	BudgetRange       string       `json:"budget_range"`
	RecommendedPlaces []Restaurant `json:"recommended_places"`
	DiscoveryTips     []string     `json:"discovery_tips"`
	Note              string       `json:"note"`
}
