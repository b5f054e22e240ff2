package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggestionsDairy(t *testing.T) {
	got := Suggestions("volle melk")
	assert.Contains(t, got[0], "havermelk")
}

func TestSuggestionsMeat(t *testing.T) {
	got := Suggestions("rundvlees")
	assert.Contains(t, got[0], "tofu")
}

func TestSuggestionsNoOrganicHint(t *testing.T) {
	got := Suggestions("kaas")
	require.Len(t, got, 1)
	assert.Contains(t, got[0], "biologische")
}

func TestSuggestionsPositiveFallback(t *testing.T) {
	got := Suggestions("bio havermelk")
	require.Len(t, got, 1)
	assert.Contains(t, got[0], "Geweldig")
}

func TestSuggestionsPlantAlternativeSkipped(t *testing.T) {
	// soja milk already is the alternative, so no dairy tip
	got := Suggestions("sojamelk")
	for _, s := range got {
		assert.NotContains(t, s, "75%")
	}
}
