package grocery

import (
	"strings"

	"FreshPlan-Backend/entities"
)

// MergeItems appends incoming items, dropping any whose name already exists
// in the list case-insensitively.
func MergeItems(items []entities.GroceryItem, incoming []entities.GroceryItem) []entities.GroceryItem {
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		seen[strings.ToLower(item.Name)] = struct{}{}
	}

	next := make([]entities.GroceryItem, 0, len(items)+len(incoming))
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

func ToggleItem(items []entities.GroceryItem, id string) ([]entities.GroceryItem, bool) {
	next := make([]entities.GroceryItem, len(items))
	toggled := false
	for i, item := range items {
		if item.ID == id {
			item.Checked = !item.Checked
			toggled = true
		}
		next[i] = item
	}
	return next, toggled
}

func RemoveItem(items []entities.GroceryItem, id string) ([]entities.GroceryItem, bool) {
	next := make([]entities.GroceryItem, 0, len(items))
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

// ClearCompleted drops every checked item.
func ClearCompleted(items []entities.GroceryItem) []entities.GroceryItem {
	next := make([]entities.GroceryItem, 0, len(items))
	for _, item := range items {
		if !item.Checked {
			next = append(next, item)
		}
	}
	return next
}
