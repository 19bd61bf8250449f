package pantry

import (
	"FreshPlan-Backend/entities"
)

var Categories = []string{"Produce", "Meat", "Dairy", "Grains", "Canned", "Spices", "Snacks", "Beverages", "Other"}

// SafeConsumeBuffer is the number of days past expiry an item is generally
// still safe to consume, by category. Estimates.
var SafeConsumeBuffer = map[string]int{
	"Produce": 2,
	"Meat":    1,
	"Dairy":   5,
	"Grains":  90,
	"Canned":  365,
	"Spices":  180,
	"Other":   7,
}

const DefaultSafeConsumeBufferDays = 7

// SeedPantry is the starter collection a new user gets before their first scan.
func SeedPantry() []entities.PantryItem {
	return []entities.PantryItem{
		{
			ID:         "1",
			Name:       "Pasta",
			Quantity:   2,
			Unit:       "packs",
			ExpiryDate: "2025-12-01",
			Category:   "Grains",
			Macros:     &entities.Macros{Calories: 350, Protein: 12, Carbs: 70, Fats: 2, Sugar: 2},
		},
		{
			ID:         "2",
			Name:       "Tomato Sauce",
			Quantity:   3,
			Unit:       "cans",
			ExpiryDate: "2024-08-15",
			Category:   "Canned",
			Macros:     &entities.Macros{Calories: 80, Protein: 2, Carbs: 15, Fats: 0, Sugar: 8},
		},
		{
			ID:         "3",
			Name:       "Eggs",
			Quantity:   6,
			Unit:       "pcs",
			ExpiryDate: "2024-05-20",
			Category:   "Dairy",
			Macros:     &entities.Macros{Calories: 70, Protein: 6, Carbs: 0, Fats: 5, Sugar: 0},
		},
		{
			ID:         "4",
			Name:       "Spinach",
			Quantity:   1,
			Unit:       "bag",
			ExpiryDate: "2024-05-18",
			Category:   "Produce",
			Macros:     &entities.Macros{Calories: 23, Protein: 2.9, Carbs: 3.6, Fats: 0.4, Sugar: 0.4},
		},
		{
			ID:         "5",
			Name:       "Chicken Breast",
			Quantity:   500,
			Unit:       "g",
			ExpiryDate: "2024-05-19",
			Category:   "Meat",
			Macros:     &entities.Macros{Calories: 165, Protein: 31, Carbs: 0, Fats: 3.6, Sugar: 0},
		},
		{
			ID:         "6",
			Name:       "Rice",
			Quantity:   1,
			Unit:       "kg",
			ExpiryDate: "2026-01-01",
			Category:   "Grains",
			Macros:     &entities.Macros{Calories: 130, Protein: 2.7, Carbs: 28, Fats: 0.3, Sugar: 0.1},
		},
	}
}
