package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"greencart/internal/catalog"
	"greencart/internal/config"
	"greencart/internal/storage"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	db, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	cfg := config.Config{IngestDefaultSource: "ah_bonus", CatalogRefreshIntervalMs: 900000}
	return New(cfg, catalog.NewIndex(nil, time.Hour), db)
}

func doJSON(t *testing.T, handler http.Handler, method, target, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	payload := map[string]any{}
	_ = json.Unmarshal(rec.Body.Bytes(), &payload)
	return rec, payload
}

func TestScoreEndpoint(t *testing.T) {
	handler := newTestServer(t).Handler()

	rec, payload := doJSON(t, handler, http.MethodGet, "/api/score?product=bio+melk", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 10.0, payload["score"])
	assert.Equal(t, "bio melk", payload["product"])

	// "item" is accepted as an alias
	rec, payload = doJSON(t, handler, http.MethodPost, "/api/score", `{"item":"rundvlees"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0.0, payload["score"])
}

func TestScoreEndpointMissingProduct(t *testing.T) {
	handler := newTestServer(t).Handler()

	rec, payload := doJSON(t, handler, http.MethodGet, "/api/score", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "missing_product", payload["error"])

	rec, payload = doJSON(t, handler, http.MethodPost, "/api/score", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "missing_product", payload["error"])
}

func TestSearchEndpoint(t *testing.T) {
	handler := newTestServer(t).Handler()

	rec, payload := doJSON(t, handler, http.MethodGet, "/api/score/search?q=melk", "")
	require.Equal(t, http.StatusOK, rec.Code)

	results, ok := payload["results"].([]any)
	require.True(t, ok)
	require.NotEmpty(t, results)
	assert.LessOrEqual(t, len(results), 10)

	first, ok := results[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "cow_milk", first["id"])

	rec, payload = doJSON(t, handler, http.MethodGet, "/api/score/search", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "missing_query", payload["error"])
}

func TestSuggestionsEndpoint(t *testing.T) {
	handler := newTestServer(t).Handler()

	rec, payload := doJSON(t, handler, http.MethodGet, "/api/suggestions?product=melk", "")
	require.Equal(t, http.StatusOK, rec.Code)
	suggestions, ok := payload["suggestions"].([]any)
	require.True(t, ok)
	assert.NotEmpty(t, suggestions)
}

func TestSuggestionsIgnoreCatalogueEntry(t *testing.T) {
	handler := newTestServer(t).Handler()

	// bananas matches a catalogue entry with its own suggestion list; this
	// endpoint must still answer with the name-based tips only.
	rec, payload := doJSON(t, handler, http.MethodGet, "/api/suggestions?product=bananas", "")
	require.Equal(t, http.StatusOK, rec.Code)

	suggestions, ok := payload["suggestions"].([]any)
	require.True(t, ok)
	require.Len(t, suggestions, 1)
	assert.Contains(t, suggestions[0], "biologische")
	for _, s := range suggestions {
		assert.NotContains(t, s, "Fair Trade bananen")
	}
}

func TestPurchaseFlow(t *testing.T) {
	handler := newTestServer(t).Handler()

	rec, payload := doJSON(t, handler, http.MethodPost, "/api/purchases",
		`{"product":"bio melk","quantity":2,"price":1.89,"date":"2025-04-01"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, payload["success"])

	purchase, ok := payload["purchase"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 10.0, purchase["sustainability_score"])

	rec, payload = doJSON(t, handler, http.MethodPost, "/api/purchases", `{"product":"rundvlees"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, payload = doJSON(t, handler, http.MethodGet, "/api/purchases", "")
	require.Equal(t, http.StatusOK, rec.Code)
	purchases, ok := payload["purchases"].([]any)
	require.True(t, ok)
	assert.Len(t, purchases, 2)
}

func TestPurchaseDefaults(t *testing.T) {
	handler := newTestServer(t).Handler()

	rec, payload := doJSON(t, handler, http.MethodPost, "/api/purchases", `{"product":"tofu"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	purchase := payload["purchase"].(map[string]any)
	assert.Equal(t, 1.0, purchase["quantity"])
	assert.NotEmpty(t, purchase["date"])
}

func TestInsightsEndpoint(t *testing.T) {
	handler := newTestServer(t).Handler()

	rec, payload := doJSON(t, handler, http.MethodGet, "/api/insights", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0.0, payload["total_purchases"])
	assert.Nil(t, payload["best_purchase"])

	_, _ = doJSON(t, handler, http.MethodPost, "/api/purchases", `{"product":"bio melk","quantity":2,"price":2}`)
	_, _ = doJSON(t, handler, http.MethodPost, "/api/purchases", `{"product":"rundvlees","price":7}`)

	rec, payload = doJSON(t, handler, http.MethodGet, "/api/insights", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2.0, payload["total_purchases"])
	assert.Equal(t, 5.0, payload["average_score"])
	// sum of prices, quantity does not multiply in
	assert.Equal(t, 9.0, payload["total_spent"])
	assert.Equal(t, "bio melk", payload["best_purchase"])
	assert.Equal(t, "rundvlees", payload["worst_purchase"])
}

func TestCatalogMetaEndpoint(t *testing.T) {
	handler := newTestServer(t).Handler()

	rec, payload := doJSON(t, handler, http.MethodGet, "/api/catalog/meta", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "local:fallback", payload["source"])
	assert.Equal(t, false, payload["remoteEnabled"])
	assert.Positive(t, payload["itemCount"])

	rec, payload = doJSON(t, handler, http.MethodGet, "/api/catalog/meta?refresh=true", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "local:fallback", payload["source"])
	assert.Positive(t, payload["lastRefreshTs"])
}

func TestScrapeEndpoint(t *testing.T) {
	handler := newTestServer(t).Handler()

	rec, payload := doJSON(t, handler, http.MethodPost, "/api/ingest/scrape",
		`{"items":[{"name":"Halfvolle melk","url":"https://www.ah.nl/producten/product/halfvolle-melk","price":1.39}]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1.0, payload["ingested"])

	rec, payload = doJSON(t, handler, http.MethodPost, "/api/ingest/scrape", `{"items":[]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "missing_items", payload["error"])
}
