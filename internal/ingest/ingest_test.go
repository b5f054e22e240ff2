package ingest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"greencart/internal"
	"greencart/internal/util"
)

var testNow = time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC)

func TestCleanSlugFromURL(t *testing.T) {
	items := []internal.ScrapedItem{{
		Name:  "AH Halfvolle melk 1L",
		URL:   "https://www.ah.nl/producten/product/halfvolle-melk",
		Price: util.FloatPtr(1.39),
	}}

	products := Clean(items, "ah_bonus", testNow)

	require.Len(t, products, 1)
	assert.Equal(t, "halfvolle-melk", products[0].ID)
	assert.Equal(t, "Halfvolle Melk", products[0].Name)
	assert.Equal(t, "halfvolle melk", products[0].NormalizedName)
	assert.Equal(t, "ah_bonus", products[0].Source)
	assert.Equal(t, "2025-04-01T10:00:00Z", products[0].UpdatedAt)
}

func TestCleanFallbackIDWithoutURL(t *testing.T) {
	items := []internal.ScrapedItem{{Name: "Bio Melk!", Source: "manual"}}

	products := Clean(items, "ah_bonus", testNow)

	require.Len(t, products, 1)
	assert.Equal(t, "ah-bio-melk", products[0].ID)
	assert.Equal(t, "Bio Melk!", products[0].Name)
	assert.Equal(t, "manual", products[0].Source)
	assert.Nil(t, products[0].URL)
}

func TestCleanSkipsNamelessAndDedupes(t *testing.T) {
	items := []internal.ScrapedItem{
		{Name: "   "},
		{Name: "!!!"},
		{Name: "Melk", URL: "https://www.ah.nl/producten/product/halfvolle-melk"},
		{Name: "Melk weer", URL: "https://www.ah.nl/producten/product/halfvolle-melk"},
		{Name: "Kaas"},
		{Name: "kaas"},
	}

	products := Clean(items, "ah_bonus", testNow)

	require.Len(t, products, 2)
	assert.Equal(t, "halfvolle-melk", products[0].ID)
	assert.Equal(t, "ah-kaas", products[1].ID)
}

func TestCleanDedupesByFinalID(t *testing.T) {
	// different URLs, same trailing slug
	items := []internal.ScrapedItem{
		{Name: "Melk", URL: "https://www.ah.nl/producten/product/melk"},
		{Name: "Melk", URL: "https://www.ah.nl/bonus/product/melk"},
	}

	products := Clean(items, "ah_bonus", testNow)

	require.Len(t, products, 1)
	assert.Equal(t, "melk", products[0].ID)
}

func TestCleanRejectsNonSlugSegment(t *testing.T) {
	items := []internal.ScrapedItem{{
		Name: "Melk",
		URL:  "https://www.ah.nl/producten/product/WI123%20x",
	}}

	products := Clean(items, "ah_bonus", testNow)

	require.Len(t, products, 1)
	assert.Equal(t, "ah-melk", products[0].ID)
	assert.Equal(t, "Melk", products[0].Name)
}
