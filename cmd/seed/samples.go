package main

import (
	"github.com/bodyfuel/bodyfuel-backend/internal/domain"
	recipesvc "github.com/bodyfuel/bodyfuel-backend/internal/service/recipe"
)

func f(v float64) *float64 { return &v }

func n(v int) *int { return &v }

func s(v string) *string { return &v }

func difficulty(d domain.Difficulty) *domain.Difficulty { return &d }

func sampleRecipes() []recipesvc.CreateRecipeInput {
	return []recipesvc.CreateRecipeInput{
		{
			Name:        "Greek Salad",
			Description: "Tomatoes, cucumber and feta with olive oil.",
			Servings:    2,
			Category:    s("Salads"),
			Difficulty:  difficulty(domain.DifficultyEasy),
			PrepTime:    n(15),
			Shared:      true,
			Ingredients: []recipesvc.IngredientInput{
				{Name: "Tomato", Quantity: "2", Calories: f(44), Protein: f(2), Fat: f(0.4), Carbohydrates: f(9.6)},
				{Name: "Cucumber", Quantity: "1", Calories: f(45), Protein: f(2), Fat: f(0.3), Carbohydrates: f(11)},
				{Name: "Feta", Quantity: "100 g", Calories: f(264), Protein: f(14), Fat: f(21), Carbohydrates: f(4)},
				{Name: "Olive oil", Quantity: "1 tbsp", Calories: f(119), Fat: f(13.5)},
			},
			Instructions: []string{
				"Chop the tomatoes and cucumber.",
				"Crumble the feta on top.",
				"Dress with olive oil and season.",
			},
		},
		{
			Name:        "Chicken Soup",
			Description: "A clear broth with chicken, carrots and noodles.",
			Servings:    4,
			Category:    s("MainCourse"),
			Difficulty:  difficulty(domain.DifficultyMedium),
			PrepTime:    n(20),
			CookTime:    n(60),
			Shared:      true,
			Ingredients: []recipesvc.IngredientInput{
				{Name: "Chicken thighs", Quantity: "500 g", Calories: f(880), Protein: f(95), Fat: f(55)},
				{Name: "Carrot", Quantity: "2", Calories: f(50), Protein: f(1), Carbohydrates: f(12)},
				{Name: "Egg noodles", Quantity: "150 g", Calories: f(570), Protein: f(21), Fat: f(6), Carbohydrates: f(107)},
			},
			Instructions: []string{
				"Simmer the chicken in salted water for 45 minutes.",
				"Add the sliced carrots and the noodles.",
				"Cook until the noodles are tender.",
			},
		},
		{
			Name:        "Overnight Oats",
			Description: "Oats soaked in milk with berries.",
			Servings:    1,
			Category:    s("Breakfast"),
			Difficulty:  difficulty(domain.DifficultyEasy),
			PrepTime:    n(5),
			Ingredients: []recipesvc.IngredientInput{
				{Name: "Rolled oats", Quantity: "50 g", Calories: f(190), Protein: f(6.5), Fat: f(3.5), Carbohydrates: f(33)},
				{Name: "Milk", Quantity: "150 ml", Calories: f(96), Protein: f(5), Fat: f(5), Carbohydrates: f(7)},
				{Name: "Blueberries", Quantity: "a handful", Calories: f(40), Carbohydrates: f(10)},
			},
			Instructions: []string{"Mix everything in a jar and refrigerate overnight."},
		},
	}
}
