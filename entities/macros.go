package entities

// Macros carries calories plus macronutrient grams. It doubles as a per-item
// estimate, a recipe total, and a daily target/consumed aggregate.
type Macros struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
	Sugar    float64 `json:"sugar"`
}

// Add returns the field-wise sum of m and delta.
func (m Macros) Add(delta Macros) Macros {
	return Macros{
		Calories: m.Calories + delta.Calories,
		Protein:  m.Protein + delta.Protein,
		Carbs:    m.Carbs + delta.Carbs,
		Fats:     m.Fats + delta.Fats,
		Sugar:    m.Sugar + delta.Sugar,
	}
}
