package profile

import (
	"math"

	"FreshPlan-Backend/entities"
)

var activityMultipliers = map[entities.ActivityLevel]float64{
	entities.ActivitySedentary:  1.2,
	entities.ActivityLight:      1.375,
	entities.ActivityModerate:   1.55,
	entities.ActivityActive:     1.725,
	entities.ActivityVeryActive: 1.9,
}

// CalculateTargets derives daily macro targets with the Mifflin-St Jeor
// equation. Weight comes in pounds and height in inches, only the final
// calorie and gram values are rounded.
func CalculateTargets(weightLbs, heightInches float64, age int, gender string, activity entities.ActivityLevel, goal entities.UserGoal) entities.Macros {
	weightKg := weightLbs * 0.453592
	heightCm := heightInches * 2.54

	bmr := 10*weightKg + 6.25*heightCm - 5*float64(age)
	if gender == "male" {
		bmr += 5
	} else {
		bmr -= 161
	}

	multiplier, ok := activityMultipliers[activity]
	if !ok {
		multiplier = 1.2
	}
	tdee := bmr * multiplier

	switch goal {
	case entities.GoalLose:
		tdee -= 500
	case entities.GoalGain:
		tdee += 500
	}

	calories := math.Round(tdee)
	return entities.Macros{
		Calories: calories,
		Protein:  math.Round(calories * 0.30 / 4),
		Carbs:    math.Round(calories * 0.35 / 4),
		Fats:     math.Round(calories * 0.35 / 9),
		Sugar:    0,
	}
}

// ProgressPercent compares consumed against target for one macro field,
// capped at 100 for progress bars.
func ProgressPercent(consumed, target float64) float64 {
	if target <= 0 {
		return 0
	}
	pct := consumed / target * 100
	if pct > 100 {
		return 100
	}
	return pct
}
