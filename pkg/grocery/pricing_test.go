package grocery

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"FreshPlan-Backend/entities"
)

func TestEstimatePrice(t *testing.T) {
	tests := []struct {
		name  string
		price float64
	}{
		{"Chicken Breast", 12.00},
		{"Smoked Salmon", 12.00},
		{"Greek Yogurt", 5.50},
		{"Eggs", 5.50},
		{"Basmati Rice", 4.00},
		{"Cherry Tomatoes", 2.50},
		{"Olive Oil", 6.00},
		{"Soy Sauce", 6.00},
		{"Dark Chocolate", 3.50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.price, EstimatePrice(tt.name))
		})
	}
}

func TestTotalCostSkipsCheckedItems(t *testing.T) {
	items := []entities.GroceryItem{
		{ID: "1", Name: "Milk", EstimatedPrice: 5.00, Checked: false},
		{ID: "2", Name: "Bread", EstimatedPrice: 3.00, Checked: true},
	}

	assert.InDelta(t, 5.00, TotalCost(items), 0.001)
}

func TestTotalCostEmpty(t *testing.T) {
	assert.Equal(t, 0.0, TotalCost(nil))
}
