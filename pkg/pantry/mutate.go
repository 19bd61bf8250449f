package pantry

import (
	"strings"

	"FreshPlan-Backend/domain"
	"FreshPlan-Backend/entities"
)

// Reducers over the pantry collection. Each returns a new slice and leaves
// its input untouched.

func AddItem(items []entities.PantryItem, item entities.PantryItem) []entities.PantryItem {
	next := make([]entities.PantryItem, 0, len(items)+1)
	next = append(next, items...)
	next = append(next, item)
	return next
}

func AddItems(items []entities.PantryItem, incoming []entities.PantryItem) []entities.PantryItem {
	next := make([]entities.PantryItem, 0, len(items)+len(incoming))
	next = append(next, items...)
	next = append(next, incoming...)
	return next
}

func RemoveItem(items []entities.PantryItem, id string) ([]entities.PantryItem, bool) {
	next := make([]entities.PantryItem, 0, len(items))
	removed := false
	for _, item := range items {
		if item.ID == id {
			removed = true
			continue
		}
		next = append(next, item)
	}
	return next, removed
}

func UpdateItem(items []entities.PantryItem, id string, patch domain.UpdatePantryItemRequest) ([]entities.PantryItem, bool) {
	next := make([]entities.PantryItem, len(items))
	updated := false
	for i, item := range items {
		if item.ID == id {
			if patch.Name != nil {
				item.Name = *patch.Name
			}
			if patch.Quantity != nil {
				item.Quantity = *patch.Quantity
			}
			if patch.Unit != nil {
				item.Unit = *patch.Unit
			}
			if patch.Category != nil {
				item.Category = *patch.Category
			}
			if patch.ExpiryDate != nil {
				item.ExpiryDate = *patch.ExpiryDate
			}
			if patch.Macros != nil {
				item.Macros = patch.Macros
			}
			updated = true
		}
		next[i] = item
	}
	return next, updated
}

// MergeItems appends incoming items, dropping any whose name matches an
// existing item's name case-insensitively. At most once per name, merging
// the same batch twice is a no-op the second time.
func MergeItems(items []entities.PantryItem, incoming []entities.PantryItem) []entities.PantryItem {
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		seen[strings.ToLower(item.Name)] = struct{}{}
	}

	next := make([]entities.PantryItem, 0, len(items)+len(incoming))
	next = append(next, items...)
	for _, candidate := range incoming {
		key := strings.ToLower(candidate.Name)
		if _, exists := seen[key]; exists {
			continue
		}
		seen[key] = struct{}{}
		next = append(next, candidate)
	}
	return next
}
