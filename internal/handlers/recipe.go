package handlers

import (
	"context"
	"fmt"
	"strings"

	"multilingual-tool-router/internal/model"
)

// RecipeHandler suggests preparations for leftover ingredients found in
// the utterance.
type RecipeHandler struct{}

var _ Handler = RecipeHandler{}

// knownLeftovers are the ingredients the extractor scans for, in both
// romanized and Devanagari form.
var knownLeftovers = []string{"rice", "dal", "roti", "sabzi", "bread", "chawal", "दाल", "रोटी"}

var recipeIndex = []struct {
	ingredients []string
	recipe      Recipe
}{
	{
		ingredients: []string{"rice", "chawal", "dal", "दाल"},
		recipe: Recipe{
			Name:         "Dal Chawal Khichdi",
			Description:  "Comfort food made with rice and dal, perfect for a quick meal",
			Ingredients:  []string{"rice", "dal", "turmeric", "salt", "ghee"},
			Instructions: "1. Wash rice and dal together\n2. Add turmeric and salt\n3. Cook with 3 cups water\n4. Garnish with ghee",
			PrepTime:     "20 minutes",
			Difficulty:   "Easy",
		},
	},
	{
		ingredients: []string{"roti", "रोटी", "sabzi"},
		recipe: Recipe{
			Name:         "Roti Roll",
			Description:  "Transform leftover roti and sabzi into a delicious wrap",
			Ingredients:  []string{"roti", "leftover sabzi", "onions", "chutney"},
			Instructions: "1. Heat the roti\n2. Add sabzi in center\n3. Add onions and chutney\n4. Roll tightly",
			PrepTime:     "10 minutes",
			Difficulty:   "Easy",
		},
	},
	{
		ingredients: []string{"bread", "vegetables"},
		recipe: Recipe{
			Name:         "Bread Upma",
			Description:  "South Indian style bread upma with vegetables",
			Ingredients:  []string{"bread", "vegetables", "mustard seeds", "curry leaves"},
			Instructions: "1. Cut bread into pieces\n2. Sauté vegetables\n3. Add bread and mix\n4. Season with spices",
			PrepTime:     "15 minutes",
			Difficulty:   "Medium",
		},
	},
}

func (RecipeHandler) ToolID() model.ToolID { return model.ToolLeftoverChef }

func (RecipeHandler) Handle(_ context.Context, utterance string) (interface{}, error) {
	lower := strings.ToLower(utterance)

	var leftovers []string
	for _, item := range knownLeftovers {
		if strings.Contains(lower, item) {
			leftovers = append(leftovers, item)
		}
	}
	if len(leftovers) == 0 {
		leftovers = []string{"mixed ingredients"}
	}

	var recipes []Recipe
	for _, entry := range recipeIndex {
		for _, ing := range entry.ingredients {
			if containsString(leftovers, ing) {
				recipes = append(recipes, entry.recipe)
				break
			}
		}
	}

	if len(recipes) == 0 {
		recipes = []Recipe{{
			Name:         "Creative Leftover Mix",
			Description:  fmt.Sprintf("Try making a stir-fry or curry with your %s", strings.Join(leftovers, ", ")),
			Ingredients:  append(append([]string{}, leftovers...), "spices", "oil", "onions"),
			Instructions: "1. Heat oil in pan\n2. Add onions and spices\n3. Add leftovers and mix\n4. Cook until heated through",
			PrepTime:     "15 minutes",
			Difficulty:   "Easy",
		}}
	}
	if len(recipes) > 3 {
		recipes = recipes[:3]
	}

	return RecipeResult{
		LeftoversProvided:  leftovers,
		CuisineType:        "Indian",
		RecommendedRecipes: recipes,
		Tips: []string{
			"Always check if leftovers are fresh before cooking",
			"Add fresh spices to enhance flavors",
			"Consider mixing leftovers with fresh ingredients",
		},
	}, nil
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
