package domain

import (
	"errors"

	"FreshPlan-Backend/entities"
)

var (
	MessageSuccessGetGroceryList      = "grocery list retrieved successfully"
	MessageSuccessAddGroceryItem      = "grocery item added successfully"
	MessageSuccessMergeGroceryItems   = "grocery items merged successfully"
	MessageSuccessGenerateGroceryList = "grocery list generated successfully"
	MessageSuccessRestockSuggestions  = "restock suggestions generated successfully"
	MessageSuccessImportIngredients   = "recipe ingredients imported successfully"
	MessageSuccessToggleGroceryItem   = "grocery item toggled successfully"
	MessageSuccessRemoveGroceryItem   = "grocery item removed successfully"
	MessageSuccessClearCompleted      = "completed items cleared successfully"

	MessageFailedGetGroceryList      = "failed to retrieve grocery list"
	MessageFailedAddGroceryItem      = "failed to add grocery item"
	MessageFailedMergeGroceryItems   = "failed to merge grocery items"
	MessageFailedGenerateGroceryList = "failed to generate grocery list"
	MessageFailedRestockSuggestions  = "failed to generate restock suggestions"
	MessageFailedImportIngredients   = "failed to import recipe ingredients"
	MessageFailedToggleGroceryItem   = "failed to toggle grocery item"
	MessageFailedRemoveGroceryItem   = "failed to remove grocery item"
	MessageFailedClearCompleted      = "failed to clear completed items"

	ErrGroceryItemNotFound = errors.New("grocery item not found")
	ErrNoMealPlan          = errors.New("no meal plan available, generate a plan first")
	ErrRecipeNoIngredients = errors.New("recipe has no ingredients to import")
)

type (
	AddGroceryItemRequest struct {
		Name     string `json:"name" validate:"required"`
		Quantity string `json:"quantity"`
		Category string `json:"category"`
	}

	MergeGroceryItemsRequest struct {
		Items []entities.GroceryItem `json:"items" validate:"required,min=1,dive"`
	}

	ImportIngredientsRequest struct {
		Recipe entities.Recipe `json:"recipe" validate:"required"`
	}

	GroceryListResponse struct {
		Items     []entities.GroceryItem `json:"items"`
		TotalCost float64                `json:"total_cost"` // unchecked items only
	}

	RestockResponse struct {
		Suggestions []entities.RestockSuggestion `json:"suggestions"`
	}
)
