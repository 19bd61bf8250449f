package grocery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"FreshPlan-Backend/entities"
)

func TestMergeItemsDropsDuplicateNames(t *testing.T) {
	items := []entities.GroceryItem{{ID: "1", Name: "Milk"}}
	incoming := []entities.GroceryItem{
		{ID: "2", Name: "MILK"},
		{ID: "3", Name: "Bread"},
	}

	next := MergeItems(items, incoming)

	require.Len(t, next, 2)
	assert.Equal(t, "Bread", next[1].Name)
}

func TestMergeItemsIdempotent(t *testing.T) {
	incoming := []entities.GroceryItem{
		{ID: "1", Name: "Milk"},
		{ID: "2", Name: "Bread"},
	}

	once := MergeItems(nil, incoming)
	twice := MergeItems(once, incoming)

	assert.Equal(t, once, twice)
}

func TestToggleItem(t *testing.T) {
	items := []entities.GroceryItem{{ID: "1", Name: "Milk", Checked: false}}

	next, toggled := ToggleItem(items, "1")
	require.True(t, toggled)
	assert.True(t, next[0].Checked)

	again, _ := ToggleItem(next, "1")
	assert.False(t, again[0].Checked)

	_, toggled = ToggleItem(items, "missing")
	assert.False(t, toggled)
}

func TestRemoveItem(t *testing.T) {
	items := []entities.GroceryItem{
		{ID: "1", Name: "Milk"},
		{ID: "2", Name: "Bread"},
	}

	next, removed := RemoveItem(items, "2")
	require.True(t, removed)
	require.Len(t, next, 1)
	assert.Equal(t, "Milk", next[0].Name)

	_, removed = RemoveItem(items, "missing")
	assert.False(t, removed)
}

func TestClearCompleted(t *testing.T) {
	items := []entities.GroceryItem{
		{ID: "1", Name: "Milk", Checked: true},
		{ID: "2", Name: "Bread", Checked: false},
		{ID: "3", Name: "Eggs", Checked: true},
	}

	next := ClearCompleted(items)

	require.Len(t, next, 1)
	assert.Equal(t, "Bread", next[0].Name)
}
