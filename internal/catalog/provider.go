package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"greencart/internal"
	"greencart/internal/config"
)

// Provider hands back catalogue rows from an external source.
type Provider interface {
	Name() string
	FetchEntries(ctx context.Context) ([]internal.CatalogEntry, error)
}

// Client fetches the curated catalogue from a PostgREST-style endpoint:
// GET {base}/{table}?select=...&order=id.asc&limit=N with an apikey header.
type Client struct {
	cfg        config.Config
	httpClient *http.Client
	limiter    *RateLimiter
}

func NewClient(cfg config.Config) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: time.Duration(cfg.CatalogTimeoutMs) * time.Millisecond},
		limiter:    NewRateLimiter(cfg.CatalogRateLimitRPS),
	}
}

func (c *Client) Name() string {
	return c.cfg.CatalogTable
}

func (c *Client) FetchEntries(ctx context.Context) ([]internal.CatalogEntry, error) {
	body, err := c.fetchJSON(ctx)
	if err != nil {
		return nil, err
	}

	var rows []map[string]any
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, fmt.Errorf("catalog decode error: %w", err)
	}

	entries := make([]internal.CatalogEntry, 0, len(rows))
	for _, raw := range rows {
		entry, err := toCatalogEntry(raw)
		if err != nil {
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (c *Client) fetchJSON(ctx context.Context) ([]byte, error) {
	if strings.TrimSpace(c.cfg.CatalogAPIKey) == "" {
		return nil, errors.New("missing CATALOG_API_KEY")
	}

	baseURL := strings.TrimRight(c.cfg.CatalogAPIBaseURL, "/") + "/"
	u, err := url.Parse(baseURL + c.cfg.CatalogTable)
	if err != nil {
		return nil, err
	}

	q := u.Query()
	q.Set("select", "id,names,base_score,categories,adjustments,suggestions,notes")
	q.Set("order", "id.asc")
	q.Set("limit", strconv.Itoa(c.cfg.CatalogFetchLimit))
	u.RawQuery = q.Encode()

	var lastErr error
	for attempt := 1; attempt <= 5; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("apikey", c.cfg.CatalogAPIKey)
		req.Header.Set("Authorization", "Bearer "+c.cfg.CatalogAPIKey)
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		body, readErr := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		if readErr != nil {
			lastErr = readErr
			continue
		}

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			if isRetryableStatus(resp.StatusCode) && attempt < 5 {
				backoff := time.Duration(250*(1<<(attempt-1))+rand.Intn(100)) * time.Millisecond
				time.Sleep(backoff)
				lastErr = fmt.Errorf("catalog status %d", resp.StatusCode)
				continue
			}
			return nil, fmt.Errorf("catalog api error: status=%d body=%s", resp.StatusCode, string(body))
		}

		return body, nil
	}

	if lastErr == nil {
		lastErr = errors.New("catalog request failed")
	}
	return nil, lastErr
}

func isRetryableStatus(status int) bool {
	switch status {
	case 429, 500, 502, 503, 504:
		return true
	default:
		return false
	}
}

// toCatalogEntry decodes one remote row, tolerating the loose shapes the
// table accumulated over time (names as array or comma/newline string,
// adjustments as array, JSON string, or object). Rows without an id or
// without a single parsable name are rejected.
func toCatalogEntry(raw map[string]any) (internal.CatalogEntry, error) {
	names := toStringList(raw["names"])
	id, _ := raw["id"].(string)
	id = strings.TrimSpace(id)
	if id == "" && len(names) > 0 {
		id = names[0]
	}
	if id == "" || len(names) == 0 {
		return internal.CatalogEntry{}, errors.New("missing id or names")
	}

	entry := internal.CatalogEntry{
		ID:          id,
		Names:       names,
		BaseScore:   5,
		Categories:  toStringList(raw["categories"]),
		Adjustments: toAdjustments(raw["adjustments"]),
		Suggestions: toStringList(raw["suggestions"]),
	}
	if score, ok := toInt(raw["base_score"]); ok {
		entry.BaseScore = score
	} else if score, ok := toInt(raw["baseScore"]); ok {
		entry.BaseScore = score
	}
	if notes, ok := raw["notes"].(string); ok && strings.TrimSpace(notes) != "" {
		entry.Notes = &notes
	}
	return entry, nil
}

func toStringList(v any) []string {
	switch t := v.(type) {
	case []any:
		out := make([]string, 0, len(t))
		for _, item := range t {
			s := strings.TrimSpace(fmt.Sprintf("%v", item))
			if s != "" {
				out = append(out, s)
			}
		}
		return out
	case []string:
		out := make([]string, 0, len(t))
		for _, s := range t {
			if strings.TrimSpace(s) != "" {
				out = append(out, strings.TrimSpace(s))
			}
		}
		return out
	case string:
		parts := strings.FieldsFunc(t, func(r rune) bool { return r == ',' || r == '\n' })
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if s := strings.TrimSpace(p); s != "" {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

func toAdjustments(v any) []internal.Adjustment {
	switch t := v.(type) {
	case []any:
		out := make([]internal.Adjustment, 0, len(t))
		for _, item := range t {
			if adj, ok := toAdjustment(item); ok {
				out = append(out, adj)
			}
		}
		return out
	case string:
		var parsed any
		if err := json.Unmarshal([]byte(t), &parsed); err != nil {
			return nil
		}
		return toAdjustments(parsed)
	case map[string]any:
		out := make([]internal.Adjustment, 0, len(t))
		for _, item := range t {
			if adj, ok := toAdjustment(item); ok {
				out = append(out, adj)
			}
		}
		return out
	default:
		return nil
	}
}

func toAdjustment(v any) (internal.Adjustment, bool) {
	m, ok := v.(map[string]any)
	if !ok {
		return internal.Adjustment{}, false
	}
	code, _ := m["code"].(string)
	if strings.TrimSpace(code) == "" {
		code, _ = m["id"].(string)
	}
	code = strings.TrimSpace(code)

	deltaValue := m["delta"]
	if deltaValue == nil {
		deltaValue = m["value"]
	}
	delta, ok := toFloat(deltaValue)
	if code == "" || !ok {
		return internal.Adjustment{}, false
	}
	return internal.Adjustment{Code: code, Delta: delta}, true
}

func toInt(v any) (int, bool) {
	f, ok := toFloat(v)
	if !ok {
		return 0, false
	}
	return int(f), true
}

func toFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case int:
		return float64(t), true
	case json.Number:
		f, err := t.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		return f, err == nil
	default:
		return 0, false
	}
}
