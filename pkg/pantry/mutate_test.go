package pantry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"FreshPlan-Backend/domain"
	"FreshPlan-Backend/entities"
)

func TestAddItemPreservesOrder(t *testing.T) {
	items := []entities.PantryItem{{ID: "1", Name: "Rice"}}

	next := AddItem(items, entities.PantryItem{ID: "2", Name: "Beans"})

	require.Len(t, next, 2)
	assert.Equal(t, "Rice", next[0].Name)
	assert.Equal(t, "Beans", next[1].Name)
	assert.Len(t, items, 1)
}

func TestRemoveItem(t *testing.T) {
	items := []entities.PantryItem{
		{ID: "1", Name: "Rice"},
		{ID: "2", Name: "Beans"},
	}

	next, removed := RemoveItem(items, "1")
	require.True(t, removed)
	require.Len(t, next, 1)
	assert.Equal(t, "Beans", next[0].Name)

	_, removed = RemoveItem(items, "missing")
	assert.False(t, removed)
}

func TestUpdateItemPartialPatch(t *testing.T) {
	items := []entities.PantryItem{
		{ID: "1", Name: "Milk", Quantity: 1, Unit: "l", Category: "Dairy"},
	}

	newQuantity := 2.0
	newExpiry := "2025-07-01"
	next, updated := UpdateItem(items, "1", domain.UpdatePantryItemRequest{
		Quantity:   &newQuantity,
		ExpiryDate: &newExpiry,
	})

	require.True(t, updated)
	assert.Equal(t, 2.0, next[0].Quantity)
	assert.Equal(t, "2025-07-01", next[0].ExpiryDate)
	// untouched fields survive the patch
	assert.Equal(t, "Milk", next[0].Name)
	assert.Equal(t, "Dairy", next[0].Category)

	// original collection stays intact
	assert.Equal(t, 1.0, items[0].Quantity)
}

func TestUpdateItemNotFound(t *testing.T) {
	items := []entities.PantryItem{{ID: "1", Name: "Milk"}}

	_, updated := UpdateItem(items, "missing", domain.UpdatePantryItemRequest{})
	assert.False(t, updated)
}

func TestMergeItemsDropsDuplicateNames(t *testing.T) {
	items := []entities.PantryItem{
		{ID: "1", Name: "Eggs"},
		{ID: "2", Name: "Spinach"},
	}
	incoming := []entities.PantryItem{
		{ID: "3", Name: "EGGS"}, // case-insensitive duplicate
		{ID: "4", Name: "Butter"},
	}

	next := MergeItems(items, incoming)

	require.Len(t, next, 3)
	assert.Equal(t, "Butter", next[2].Name)
}

func TestMergeItemsIdempotent(t *testing.T) {
	items := []entities.PantryItem{{ID: "1", Name: "Eggs"}}
	incoming := []entities.PantryItem{
		{ID: "2", Name: "Butter"},
		{ID: "3", Name: "Flour"},
	}

	once := MergeItems(items, incoming)
	twice := MergeItems(once, incoming)

	assert.Equal(t, once, twice)
}

func TestMergeItemsDropsDuplicatesWithinBatch(t *testing.T) {
	incoming := []entities.PantryItem{
		{ID: "1", Name: "Butter"},
		{ID: "2", Name: "butter"},
	}

	next := MergeItems(nil, incoming)
	assert.Len(t, next, 1)
}
