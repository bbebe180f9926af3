// Package recipe suggests a recipe from a list of pantry ingredients using
// an ordered keyword decision table. The rules overlap, so evaluation order
// is significant: an ingredient list with both chicken and pasta always
// yields the chicken recipe.
package recipe

import "strings"

// Recipe is a fixed suggestion record. Content is static, not generated.
type Recipe struct {
	Title        string   `json:"title"`
	Story        string   `json:"story"`
	Ingredients  []string `json:"ingredients"`
	Instructions []string `json:"instructions"`
	PrepTime     string   `json:"prep_time"`
	CookTime     string   `json:"cook_time"`
}

type rule struct {
	keywords []string
	recipe   Recipe
}

// Select returns the first recipe whose rule matches any ingredient.
// Matching is case-insensitive, unanchored substring containment, so
// "chickenstock" still matches the chicken rule. Falls back to the garden
// scramble when nothing matches.
func Select(ingredients []string) Recipe {
	pantry := make([]string, len(ingredients))
	for i, ing := range ingredients {
		pantry[i] = strings.ToLower(ing)
	}

	for _, ru := range rules {
		if anyContains(pantry, ru.keywords) {
			return ru.recipe
		}
	}
	return defaultRecipe
}

func anyContains(pantry []string, keywords []string) bool {
	for _, item := range pantry {
		for _, kw := range keywords {
			if strings.Contains(item, kw) {
				return true
			}
		}
	}
	return false
}

var rules = []rule{
	{
		keywords: []string{"chicken"},
		recipe: Recipe{
			Title: "Roasted Garlic Chicken",
			Story: "Since you have chicken and garlic in your pantry, this aromatic roast is the perfect way to use them up!",
			Ingredients: []string{
				"Chicken", "Garlic (Minced)", "Olive Oil", "Salt", "Pepper",
			},
			Instructions: []string{
				"Preheat oven to 400°F.",
				"Rub the chicken with olive oil and plenty of minced garlic.",
				"Season generously with salt and pepper.",
				"Roast for 25-30 minutes until juices run clear.",
				"Let rest for 5 minutes before serving.",
			},
			PrepTime: "10 mins",
			CookTime: "30 mins",
		},
	},
	{
		keywords: []string{"pasta", "spaghetti"},
		recipe: Recipe{
			Title: "Pantry Pasta Aglio e Olio",
			Story: "A classic Italian 'poor man's meal' that turns simple pantry staples into a gourmet dinner.",
			Ingredients: []string{
				"Pasta", "Garlic", "Olive Oil", "Red Pepper Flakes (optional)",
			},
			Instructions: []string{
				"Boil a large pot of salted water and cook pasta until al dente.",
				"While pasta cooks, heat olive oil in a pan over medium heat.",
				"Sauté thinly sliced garlic until golden (don't burn it!).",
				"Toss the cooked pasta into the oil and garlic. Add a splash of pasta water to make it glossy.",
			},
			PrepTime: "5 mins",
			CookTime: "10 mins",
		},
	},
	{
		keywords: []string{"tortilla", "bean"},
		recipe: Recipe{
			Title: "Quick Pantry Quesadillas",
			Story: "Using your tortillas and pantry staples for a quick, cheesy, and satisfying meal.",
			Ingredients: []string{
				"Tortillas", "Cheese", "Beans", "Any leftover protein",
			},
			Instructions: []string{
				"Place a tortilla in a dry pan over medium heat.",
				"Sprinkle cheese and beans (and garlic!) on one half.",
				"Fold the tortilla over and cook until golden brown on both sides.",
				"Slice into triangles and serve.",
			},
			PrepTime: "5 mins",
			CookTime: "6 mins",
		},
	},
	{
		keywords: []string{"shrimp", "fish", "salmon"},
		recipe: Recipe{
			Title: "Lemon Garlic Butter Seafood",
			Story: "Seafood cooks fast! This recipe highlights the fresh flavors of your pantry ingredients.",
			Ingredients: []string{
				"Seafood of choice", "Butter or Oil", "Garlic", "Lemon (if available)",
			},
			Instructions: []string{
				"Pat the seafood dry with paper towels.",
				"Heat butter and garlic in a pan until fragrant.",
				"Sear the seafood for 2-3 minutes per side.",
				"Squeeze lemon over the top and serve immediately.",
			},
			PrepTime: "5 mins",
			CookTime: "8 mins",
		},
	},
}

var defaultRecipe = Recipe{
	Title: "FreshKeep Garden Scramble",
	Story: "A healthy way to use up your miscellaneous pantry items and eggs.",
	Ingredients: []string{
		"3 Eggs", "Miscellaneous Veggies", "Salt & Pepper",
	},
	Instructions: []string{
		"Whisk the eggs in a small bowl.",
		"Sauté your pantry veggies in a pan.",
		"Pour in eggs and scramble until fluffy.",
		"Season and serve immediately.",
	},
	PrepTime: "5 mins",
	CookTime: "5 mins",
}
