package ingest

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	"greencart/internal"
	"greencart/internal/storage"
	"greencart/internal/util"
)

var reSlug = regexp.MustCompile(`^[a-z0-9-]+$`)

// Clean turns raw scraped tuples into storable products: it drops nameless
// rows, dedupes by URL (falling back to normalized name + source), derives a
// stable id, and stamps everything with now. Items without a source get
// defaultSource.
func Clean(items []internal.ScrapedItem, defaultSource string, now time.Time) []internal.ScrapedProduct {
	ts := now.UTC().Format(time.RFC3339)

	seen := map[string]struct{}{}
	out := make([]internal.ScrapedProduct, 0, len(items))
	for _, item := range items {
		name := strings.TrimSpace(item.Name)
		normalized := util.Normalize(name)
		if normalized == "" {
			continue
		}

		source := item.Source
		if source == "" {
			source = defaultSource
		}

		itemURL := strings.TrimSpace(item.URL)
		dedupeKey := itemURL
		if dedupeKey == "" {
			dedupeKey = normalized + "|" + source
		}
		if _, dup := seen[dedupeKey]; dup {
			continue
		}
		seen[dedupeKey] = struct{}{}

		id := "ah-" + strings.ReplaceAll(normalized, " ", "-")
		if slug := urlSlug(itemURL); slug != "" {
			id = slug
			name = titleFromSlug(slug)
			normalized = util.Normalize(name)
		}

		product := internal.ScrapedProduct{
			ID:             id,
			Name:           name,
			NormalizedName: normalized,
			Price:          item.Price,
			Source:         source,
			UpdatedAt:      ts,
		}
		if itemURL != "" {
			product.URL = util.StringPtr(itemURL)
		}
		if image := strings.TrimSpace(item.Image); image != "" {
			product.ImageURL = util.StringPtr(image)
		}
		out = append(out, product)
	}

	// Different URLs can collapse to the same slug; keep the first.
	byID := map[string]struct{}{}
	deduped := out[:0]
	for _, product := range out {
		if _, dup := byID[product.ID]; dup {
			continue
		}
		byID[product.ID] = struct{}{}
		deduped = append(deduped, product)
	}
	return deduped
}

// urlSlug extracts the trailing path segment of a product URL when it looks
// like a proper slug, e.g. /producten/product/halfvolle-melk -> halfvolle-melk.
func urlSlug(raw string) string {
	if raw == "" {
		return ""
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	path := strings.TrimRight(parsed.Path, "/")
	idx := strings.LastIndex(path, "/")
	if idx < 0 {
		return ""
	}
	slug := path[idx+1:]
	if !reSlug.MatchString(slug) {
		return ""
	}
	return slug
}

func titleFromSlug(slug string) string {
	words := strings.Split(slug, "-")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}

// Service persists cleaned scrapes.
type Service struct {
	db            *storage.DB
	defaultSource string
}

func NewService(db *storage.DB, defaultSource string) *Service {
	return &Service{db: db, defaultSource: defaultSource}
}

// Ingest cleans and stores the given items, returning how many survived
// cleanup.
func (s *Service) Ingest(items []internal.ScrapedItem) (int, error) {
	products := Clean(items, s.defaultSource, time.Now())
	if len(products) == 0 {
		return 0, nil
	}
	if err := s.db.UpsertScrapedProducts(products); err != nil {
		return 0, fmt.Errorf("store scraped products: %w", err)
	}
	if err := s.db.SetMetadata("last_ingest", products[0].UpdatedAt); err != nil {
		return 0, err
	}
	return len(products), nil
}
