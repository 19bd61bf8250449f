package planner

import (
	"math"

	"FreshPlan-Backend/entities"
)

// AveragePlanMacros sums macros across every meal in the plan and averages
// per day, rounding the averages. Returns nil for an empty plan.
func AveragePlanMacros(plan []entities.DayPlan) *entities.Macros {
	if len(plan) == 0 {
		return nil
	}

	var total entities.Macros
	for _, day := range plan {
		for _, meal := range []*entities.Recipe{day.Meals.Breakfast, day.Meals.Lunch, day.Meals.Dinner} {
			if meal != nil && meal.Macros != nil {
				total = total.Add(*meal.Macros)
			}
		}
	}

	days := float64(len(plan))
	return &entities.Macros{
		Calories: math.Round(total.Calories / days),
		Protein:  math.Round(total.Protein / days),
		Carbs:    math.Round(total.Carbs / days),
		Fats:     math.Round(total.Fats / days),
		Sugar:    math.Round(total.Sugar / days),
	}
}

// DailyMacros totals one day's meals. Returns nil when no meal carries macros.
func DailyMacros(day entities.DayPlan) *entities.Macros {
	var total entities.Macros
	seen := false
	for _, meal := range []*entities.Recipe{day.Meals.Breakfast, day.Meals.Lunch, day.Meals.Dinner} {
		if meal != nil && meal.Macros != nil {
			total = total.Add(*meal.Macros)
			seen = true
		}
	}
	if !seen {
		return nil
	}
	return &total
}
