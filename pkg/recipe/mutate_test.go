package recipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"FreshPlan-Backend/entities"
)

func TestToggleSavedAddsWithFlag(t *testing.T) {
	next, added := ToggleSaved(nil, entities.Recipe{ID: "r1", Title: "Carbonara"})

	require.True(t, added)
	require.Len(t, next, 1)
	assert.True(t, next[0].IsSaved)
}

func TestToggleSavedRemovesById(t *testing.T) {
	saved := []entities.Recipe{
		{ID: "r1", Title: "Carbonara", IsSaved: true},
		{ID: "r2", Title: "Fried Rice", IsSaved: true},
	}

	next, added := ToggleSaved(saved, entities.Recipe{ID: "r1", Title: "Something Else"})

	assert.False(t, added)
	require.Len(t, next, 1)
	assert.Equal(t, "r2", next[0].ID)
}

func TestToggleSavedRemovesByTitleCaseInsensitive(t *testing.T) {
	saved := []entities.Recipe{{ID: "r1", Title: "Carbonara", IsSaved: true}}

	next, added := ToggleSaved(saved, entities.Recipe{ID: "other", Title: "CARBONARA"})

	assert.False(t, added)
	assert.Empty(t, next)
}

func TestToggleSavedSelfInverse(t *testing.T) {
	saved := []entities.Recipe{{ID: "r1", Title: "Carbonara", IsSaved: true}}
	recipe := entities.Recipe{ID: "r2", Title: "Fried Rice"}

	once, _ := ToggleSaved(saved, recipe)
	twice, _ := ToggleSaved(once, recipe)

	assert.Equal(t, saved, twice)
}
