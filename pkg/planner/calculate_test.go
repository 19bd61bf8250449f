package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"FreshPlan-Backend/entities"
)

func mealWith(calories, protein float64) *entities.Recipe {
	return &entities.Recipe{
		Title:  "meal",
		Macros: &entities.Macros{Calories: calories, Protein: protein},
	}
}

func TestAveragePlanMacrosEmptyPlan(t *testing.T) {
	assert.Nil(t, AveragePlanMacros(nil))
}

func TestAveragePlanMacrosAveragesPerDay(t *testing.T) {
	plan := []entities.DayPlan{
		{
			Day: "Monday",
			Meals: entities.MealSet{
				Breakfast: mealWith(400, 20),
				Lunch:     mealWith(600, 35),
				Dinner:    mealWith(700, 40),
			},
		},
		{
			Day: "Tuesday",
			Meals: entities.MealSet{
				Breakfast: mealWith(500, 25),
				Dinner:    mealWith(800, 45),
			},
		},
	}

	avg := AveragePlanMacros(plan)

	require.NotNil(t, avg)
	assert.Equal(t, 1500.0, avg.Calories)
	assert.Equal(t, 83.0, avg.Protein) // 165 / 2 rounds up
}

func TestAveragePlanMacrosSkipsMealsWithoutMacros(t *testing.T) {
	plan := []entities.DayPlan{
		{
			Day: "Monday",
			Meals: entities.MealSet{
				Breakfast: &entities.Recipe{Title: "no macros"},
				Lunch:     mealWith(600, 30),
			},
		},
	}

	avg := AveragePlanMacros(plan)

	require.NotNil(t, avg)
	assert.Equal(t, 600.0, avg.Calories)
}

func TestDailyMacros(t *testing.T) {
	day := entities.DayPlan{
		Meals: entities.MealSet{
			Breakfast: mealWith(400, 20),
			Lunch:     mealWith(600, 35),
		},
	}

	total := DailyMacros(day)

	require.NotNil(t, total)
	assert.Equal(t, 1000.0, total.Calories)
	assert.Equal(t, 55.0, total.Protein)
}

func TestDailyMacrosNoneTracked(t *testing.T) {
	day := entities.DayPlan{
		Meals: entities.MealSet{Breakfast: &entities.Recipe{Title: "untracked"}},
	}

	assert.Nil(t, DailyMacros(day))
}
