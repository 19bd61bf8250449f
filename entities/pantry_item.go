package entities

type PantryItem struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Quantity   float64 `json:"quantity"`
	Unit       string  `json:"unit"`
	Category   string  `json:"category"`
	ExpiryDate string  `json:"expiry_date,omitempty"` // YYYY-MM-DD, empty when unknown
	Macros     *Macros `json:"macros,omitempty"`      // estimated per unit
}
