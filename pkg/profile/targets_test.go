package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"FreshPlan-Backend/entities"
)

func TestCalculateTargetsSedentaryMaintain(t *testing.T) {
	targets := CalculateTargets(150, 70, 25, "male", entities.ActivitySedentary, entities.GoalMaintain)

	// BMR 1671.64, TDEE 2005.97
	assert.Equal(t, 2006.0, targets.Calories)
	assert.Equal(t, 150.0, targets.Protein)
	assert.Equal(t, 176.0, targets.Carbs)
	assert.Equal(t, 78.0, targets.Fats)
	assert.Equal(t, 0.0, targets.Sugar)
}

func TestCalculateTargetsGenderOffset(t *testing.T) {
	male := CalculateTargets(150, 70, 25, "male", entities.ActivitySedentary, entities.GoalMaintain)
	female := CalculateTargets(150, 70, 25, "female", entities.ActivitySedentary, entities.GoalMaintain)

	// the 166 kcal BMR gap scales by the 1.2 activity multiplier
	assert.InDelta(t, 166*1.2, male.Calories-female.Calories, 1.0)
}

func TestCalculateTargetsGoalAdjustment(t *testing.T) {
	maintain := CalculateTargets(150, 70, 25, "male", entities.ActivitySedentary, entities.GoalMaintain)
	lose := CalculateTargets(150, 70, 25, "male", entities.ActivitySedentary, entities.GoalLose)
	gain := CalculateTargets(150, 70, 25, "male", entities.ActivitySedentary, entities.GoalGain)

	assert.Equal(t, maintain.Calories-500, lose.Calories)
	assert.Equal(t, maintain.Calories+500, gain.Calories)
}

func TestCalculateTargetsActivityOrdering(t *testing.T) {
	levels := []entities.ActivityLevel{
		entities.ActivitySedentary,
		entities.ActivityLight,
		entities.ActivityModerate,
		entities.ActivityActive,
		entities.ActivityVeryActive,
	}

	var previous float64
	for _, level := range levels {
		targets := CalculateTargets(150, 70, 25, "male", level, entities.GoalMaintain)
		assert.Greater(t, targets.Calories, previous)
		previous = targets.Calories
	}
}

func TestCalculateTargetsUnknownActivityFallsBack(t *testing.T) {
	sedentary := CalculateTargets(150, 70, 25, "male", entities.ActivitySedentary, entities.GoalMaintain)
	unknown := CalculateTargets(150, 70, 25, "male", entities.ActivityLevel("couch"), entities.GoalMaintain)

	assert.Equal(t, sedentary, unknown)
}

func TestProgressPercent(t *testing.T) {
	assert.Equal(t, 50.0, ProgressPercent(1000, 2000))
	assert.Equal(t, 100.0, ProgressPercent(2500, 2000))
	assert.Equal(t, 0.0, ProgressPercent(500, 0))
}

func TestMacrosAddOrderIndependent(t *testing.T) {
	a := entities.Macros{Calories: 500, Protein: 30, Carbs: 50, Fats: 20, Sugar: 10}
	b := entities.Macros{Calories: 300, Protein: 10, Carbs: 40, Fats: 5, Sugar: 3}

	assert.Equal(t, a.Add(b), b.Add(a))
	assert.Equal(t, 800.0, a.Add(b).Calories)
}
