package gemini

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripMarkdownFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		out  string
	}{
		{"json fence", "```json\n[{\"a\":1}]\n```", `[{"a":1}]`},
		{"bare fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"no fence", `  [{"a":1}]  `, `[{"a":1}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.out, stripMarkdownFences(tt.in))
		})
	}
}

func TestExtractJSONArray(t *testing.T) {
	jsonText, ok := extractJSONArray("Here are the items:\n[{\"name\":\"Rice\"}]\nEnjoy!")
	require.True(t, ok)
	assert.Equal(t, `[{"name":"Rice"}]`, jsonText)
}

func TestExtractJSONArrayWrapsLoneObject(t *testing.T) {
	jsonText, ok := extractJSONArray(`{"name":"Rice"}`)
	require.True(t, ok)
	assert.Equal(t, `[{"name":"Rice"}]`, jsonText)
}

func TestExtractJSONArrayNoJSON(t *testing.T) {
	_, ok := extractJSONArray("I could not identify any food items.")
	assert.False(t, ok)
}

func TestExtractJSONObject(t *testing.T) {
	jsonText, ok := extractJSONObject("```json\n{\"calories\": 500}\n```")
	require.True(t, ok)
	assert.Equal(t, `{"calories": 500}`, jsonText)

	_, ok = extractJSONObject("no structured data here")
	assert.False(t, ok)
}

func TestDecodeRecipes(t *testing.T) {
	recipes := decodeRecipes("```json\n[{\"title\":\"Fried Rice\",\"prep_time_minutes\":20}]\n```")

	require.Len(t, recipes, 1)
	assert.Equal(t, "Fried Rice", recipes[0].Title)
	assert.Equal(t, 20, recipes[0].PrepTimeMinutes)
}

func TestDecodeRecipesMalformed(t *testing.T) {
	assert.Empty(t, decodeRecipes("[{broken"))
	assert.Empty(t, decodeRecipes("sorry, nothing matched"))
}
