package entities

import (
	"encoding/json"
	"strings"
)

// MealSet holds one day's breakfast/lunch/dinner slots. Gateway responses
// sometimes capitalize the meal keys, so decoding normalizes them to the
// canonical lowercase names at the boundary.
type MealSet struct {
	Breakfast *Recipe `json:"breakfast,omitempty"`
	Lunch     *Recipe `json:"lunch,omitempty"`
	Dinner    *Recipe `json:"dinner,omitempty"`
}

// UnmarshalJSON implements the json.Unmarshaler interface for MealSet.
func (m *MealSet) UnmarshalJSON(data []byte) error {
	var raw map[string]*Recipe
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	for key, recipe := range raw {
		switch strings.ToLower(strings.TrimSpace(key)) {
		case "breakfast":
			m.Breakfast = recipe
		case "lunch":
			m.Lunch = recipe
		case "dinner":
			m.Dinner = recipe
		}
	}
	return nil
}

type DayPlan struct {
	Day         string  `json:"day"`
	Meals       MealSet `json:"meals"`
	DailyMacros *Macros `json:"daily_macros,omitempty"`
}
