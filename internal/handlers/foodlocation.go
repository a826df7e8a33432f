package handlers

import (
	"context"
	"sort"
	"strings"

	"multilingual-tool-router/internal/model"
)

// FoodLocationHandler suggests nearby food places filtered by the
// budget hinted at in the utterance.
type FoodLocationHandler struct{}

var _ Handler = FoodLocationHandler{}

var restaurants = []Restaurant{
	{
		Name:          "Sharma Ji Ka Dhaba",
		Type:          "North Indian",
		Speciality:    "Dal Makhani, Butter Naan",
		Budget:        "budget",
		Rating:        4.2,
		DistanceKM:    0.5,
		Description:   "Authentic homestyle North Indian food",
		Timings:       "8:00 AM - 11:00 PM",
		PopularDishes: []string{"Dal Makhani", "Paneer Butter Masala", "Garlic Naan"},
	},
	{
		Name:          "South Spice Corner",
		Type:          "South Indian",
		Speciality:    "Dosa, Idli Sambhar",
		Budget:        "budget",
		Rating:        4.0,
		DistanceKM:    0.8,
		Description:   "Crispy dosas and authentic South Indian breakfast",
		Timings:       "6:00 AM - 10:00 PM",
		PopularDishes: []string{"Masala Dosa", "Rava Idli", "Filter Coffee"},
	},
	{
		Name:          "Biryani Blues",
		Type:          "Mughlai",
		Speciality:    "Hyderabadi Biryani",
		Budget:        "moderate",
		Rating:        4.5,
		DistanceKM:    1.2,
		Description:   "Authentic Hyderabadi biryani with rich flavors",
		Timings:       "12:00 PM - 11:00 PM",
		PopularDishes: []string{"Chicken Biryani", "Mutton Biryani", "Raita"},
	},
	{
		Name:          "Pizza Paradise",
		Type:          "Italian",
		Speciality:    "Wood-fired Pizza",
		Budget:        "expensive",
		Rating:        4.3,
		DistanceKM:    1.5,
		Description:   "Authentic Italian pizzas with fresh ingredients",
		Timings:       "11:00 AM - 11:30 PM",
		PopularDishes: []string{"Margherita Pizza", "Pasta Alfredo", "Garlic Bread"},
	},
	{
		Name:          "Chaat Gali",
		Type:          "Street Food",
		Speciality:    "Pani Puri, Bhel Puri",
		Budget:        "budget",
		Rating:        4.1,
		DistanceKM:    0.3,
		Description:   "Best street food with authentic flavors",
		Timings:       "4:00 PM - 10:00 PM",
		PopularDishes: []string{"Pani Puri", "Sev Puri", "Aloo Tikki"},
	},
}

func (FoodLocationHandler) ToolID() model.ToolID { return model.ToolFoodLocator }

func (FoodLocationHandler) Handle(_ context.Context, utterance string) (interface{}, error) {
	lower := strings.ToLower(utterance)

	budget := "moderate"
	switch {
	case strings.Contains(lower, "cheap") || strings.Contains(lower, "budget"):
		budget = "budget"
	case strings.Contains(lower, "expensive") || strings.Contains(lower, "fine dining"):
		budget = "expensive"
	}

	var places []Restaurant
	for _, r := range restaurants {
		if r.Budget == budget {
			places = append(places, r)
		}
	}
	if len(places) == 0 {
		places = append(places, restaurants...)
	}

	// Highest rating first, nearest breaks the tie.
	sort.SliceStable(places, func(i, j int) bool {
		if places[i].Rating != places[j].Rating {
			return places[i].Rating > places[j].Rating
		}
		return places[i].DistanceKM < places[j].DistanceKM
	})
	if len(places) > 5 {
		places = places[:5]
	}

	return FoodLocationResult{
		FoodType:          "all",
		BudgetRange:       budget,
		RecommendedPlaces: places,
		DiscoveryTips: []string{
			"Check reviews and ratings before visiting",
			"Call ahead to confirm timings and availability",
			"Try local specialties for authentic experience",
			"Consider ordering online for convenience",
		},
		Note: "Distances are approximate. Actual travel time may vary based on traffic.",
	}, nil
}
