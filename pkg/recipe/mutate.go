package recipe

import (
	"strings"

	"FreshPlan-Backend/entities"
)

// sameRecipe is the dedup test for the saved collection, matching by id or
// by title (case-insensitive).
func sameRecipe(a, b entities.Recipe) bool {
	if a.ID != "" && a.ID == b.ID {
		return true
	}
	return strings.EqualFold(a.Title, b.Title)
}

// ToggleSaved removes the recipe when it is already in the collection and
// appends it with the saved flag set otherwise. Applying it twice with the
// same recipe restores the original collection.
func ToggleSaved(saved []entities.Recipe, recipe entities.Recipe) ([]entities.Recipe, bool) {
	next := make([]entities.Recipe, 0, len(saved)+1)
	removed := false
	for _, existing := range saved {
		if sameRecipe(existing, recipe) {
			removed = true
			continue
		}
		next = append(next, existing)
	}
	if removed {
		return next, false
	}

	recipe.IsSaved = true
	next = append(next, recipe)
	return next, true
}
