package domain

import (
	"errors"

	"FreshPlan-Backend/entities"
)

var (
	MessageSuccessSuggestRecipes    = "recipe suggestions generated successfully"
	MessageSuccessInspireRecipes    = "inspiration recipes generated successfully"
	MessageSuccessGetRecipeDetails  = "recipe details generated successfully"
	MessageSuccessToggleSaveRecipe  = "recipe save toggled successfully"
	MessageSuccessGetSavedRecipes   = "saved recipes retrieved successfully"

	MessageFailedSuggestRecipes   = "failed to generate recipe suggestions"
	MessageFailedInspireRecipes   = "failed to generate inspiration recipes"
	MessageFailedGetRecipeDetails = "failed to generate recipe details"
	MessageFailedToggleSaveRecipe = "failed to toggle recipe save"
	MessageFailedGetSavedRecipes  = "failed to retrieve saved recipes"

	ErrGeminiAPIFailed = errors.New("gemini API processing failed")
)

type (
	RecipeDetailsRequest struct {
		Title       string `json:"title" validate:"required"`
		Description string `json:"description"`
	}

	ToggleSaveRecipeRequest struct {
		Recipe entities.Recipe `json:"recipe" validate:"required"`
	}

	ToggleSaveRecipeResponse struct {
		Saved   bool              `json:"saved"`
		Recipes []entities.Recipe `json:"recipes"`
	}

	SuggestRecipesResponse struct {
		Recipes []entities.Recipe `json:"recipes"`
	}
)
