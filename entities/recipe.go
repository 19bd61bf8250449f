package entities

type Ingredient struct {
	Name         string `json:"name"`
	Amount       string `json:"amount"`
	IsPantryItem bool   `json:"is_pantry_item,omitempty"`
}

type Recipe struct {
	ID                      string       `json:"id"`
	Title                   string       `json:"title"`
	Description             string       `json:"description"`
	Ingredients             []Ingredient `json:"ingredients,omitempty"`
	Steps                   []string     `json:"steps,omitempty"`
	PrepTimeMinutes         int          `json:"prep_time_minutes"`
	Macros                  *Macros      `json:"macros,omitempty"` // total for the recipe
	ImageURL                string       `json:"image_url,omitempty"`
	MissingIngredientsCount int          `json:"missing_ingredients_count"`
	MissingIngredients      []string     `json:"missing_ingredients,omitempty"`
	IsSaved                 bool         `json:"is_saved,omitempty"`
}
