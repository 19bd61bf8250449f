package entities

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMealSetUnmarshalNormalizesKeys(t *testing.T) {
	payload := `{"Breakfast": {"title": "Oatmeal"}, "LUNCH": {"title": "Salad"}, " dinner ": {"title": "Stew"}}`

	var meals MealSet
	require.NoError(t, json.Unmarshal([]byte(payload), &meals))

	require.NotNil(t, meals.Breakfast)
	assert.Equal(t, "Oatmeal", meals.Breakfast.Title)
	require.NotNil(t, meals.Lunch)
	assert.Equal(t, "Salad", meals.Lunch.Title)
	require.NotNil(t, meals.Dinner)
	assert.Equal(t, "Stew", meals.Dinner.Title)
}

func TestMealSetUnmarshalIgnoresUnknownKeys(t *testing.T) {
	payload := `{"brunch": {"title": "Pancakes"}, "lunch": {"title": "Salad"}}`

	var meals MealSet
	require.NoError(t, json.Unmarshal([]byte(payload), &meals))

	assert.Nil(t, meals.Breakfast)
	require.NotNil(t, meals.Lunch)
}

func TestMealSetUnmarshalRejectsNonObject(t *testing.T) {
	var meals MealSet
	assert.Error(t, json.Unmarshal([]byte(`["breakfast"]`), &meals))
}
