package entities

type GroceryItem struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Quantity       string  `json:"quantity"` // free-form, e.g. "2 cans"
	Category       string  `json:"category"`
	EstimatedPrice float64 `json:"estimated_price"`
	Checked        bool    `json:"checked"`
}

// RestockSuggestion groups suggested grocery items under one of four fixed
// gateway categories. Suggestions are transient and never persisted.
type RestockSuggestion struct {
	Category string        `json:"category"`
	Items    []GroceryItem `json:"items"`
}
