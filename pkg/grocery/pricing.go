package grocery

import (
	"regexp"
	"strings"

	"FreshPlan-Backend/entities"
)

var (
	meatPattern    = regexp.MustCompile(`chicken|beef|steak|salmon|pork|meat|fish|lamb`)
	dairyPattern   = regexp.MustCompile(`milk|cheese|butter|cream|yogurt|eggs`)
	grainPattern   = regexp.MustCompile(`bread|rice|pasta|cereal|oats|grain`)
	producePattern = regexp.MustCompile(`onion|garlic|tomato|potato|carrot|lettuce|spinach|fruit|veg`)
	staplePattern  = regexp.MustCompile(`oil|sauce|spice|condiment`)
)

// EstimatePrice guesses a USD price for an ingredient by keyword. Rough
// store-shelf averages, used when no price came from the model.
func EstimatePrice(name string) float64 {
	n := strings.ToLower(name)
	switch {
	case meatPattern.MatchString(n):
		return 12.00
	case dairyPattern.MatchString(n):
		return 5.50
	case grainPattern.MatchString(n):
		return 4.00
	case producePattern.MatchString(n):
		return 2.50
	case staplePattern.MatchString(n):
		return 6.00
	default:
		return 3.50
	}
}

// TotalCost sums estimated prices over unchecked items only. Checked items
// stay in the list but leave the running total.
func TotalCost(items []entities.GroceryItem) float64 {
	var total float64
	for _, item := range items {
		if !item.Checked {
			total += item.EstimatedPrice
		}
	}
	return total
}
