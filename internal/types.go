package internal

type CatalogEntry struct {
	ID          string       `json:"id"`
	Names       []string     `json:"names"`
	BaseScore   int          `json:"baseScore"`
	Categories  []string     `json:"categories"`
	Adjustments []Adjustment `json:"adjustments"`
	Suggestions []string     `json:"suggestions"`
	Notes       *string      `json:"notes"`
}

// Adjustment is an extra nudge attached to a catalogue entry, e.g.
// {code: "trait_high_methane", delta: -2}.
type Adjustment struct {
	Code  string  `json:"code"`
	Delta float64 `json:"delta"`
}

// IndexedEntry is a CatalogEntry with its names pre-normalized for matching.
// NormalizedNames is positionally aligned with Names.
type IndexedEntry struct {
	CatalogEntry
	NormalizedNames []string
}

type CatalogMeta struct {
	Source        string  `json:"source"`
	RemoteEnabled bool    `json:"remoteEnabled"`
	LastRefreshTs int64   `json:"lastRefreshTs"`
	ItemCount     int     `json:"itemCount"`
	LastError     *string `json:"lastError"`
}

type ScoreAdjustment struct {
	Type           string  `json:"type"`
	Code           string  `json:"code"`
	Category       string  `json:"category,omitempty"`
	Delta          float64 `json:"delta"`
	ResultingScore float64 `json:"resultingScore"`
}

type MatchedCategory struct {
	Category       string `json:"category"`
	Icon           string `json:"icon"`
	ReferenceScore int    `json:"referenceScore"`
}

type MatchedProduct struct {
	ID            string `json:"id"`
	CanonicalName string `json:"canonicalName"`
	MatchedName   string `json:"matchedName"`
	Rank          int    `json:"rank"`
	BaseScore     int    `json:"baseScore"`
}

type Evaluation struct {
	Product     string            `json:"product"`
	Normalized  string            `json:"normalized"`
	BaseScore   int               `json:"baseScore"`
	RawScore    float64           `json:"rawScore"`
	Score       int               `json:"score"`
	Adjustments []ScoreAdjustment `json:"adjustments"`
	Categories  []MatchedCategory `json:"categories"`
	Keywords    []string          `json:"keywords"`
	Suggestions []string          `json:"suggestions"`
	Rating      string            `json:"rating"`
	Notes       *string           `json:"notes"`
	Matched     *MatchedProduct   `json:"matched"`
}

type SearchResult struct {
	Name       string   `json:"name"`
	Score      int      `json:"score"`
	Categories []string `json:"categories"`
	Rank       int      `json:"rank"`
	ID         string   `json:"id"`
}

type Purchase struct {
	ID                  int64   `json:"-"`
	Date                string  `json:"date"`
	Product             string  `json:"product"`
	Quantity            int     `json:"quantity"`
	Price               float64 `json:"price"`
	SustainabilityScore int     `json:"sustainability_score"`
}

// ScrapedItem is a raw tuple produced by the browser extension or the
// bonus-page parser before cleanup.
type ScrapedItem struct {
	Name   string   `json:"name"`
	URL    string   `json:"url"`
	Price  *float64 `json:"price"`
	Image  string   `json:"image"`
	Source string   `json:"source"`
}

// ScrapedProduct is a cleaned, deduplicated scrape row ready for storage.
type ScrapedProduct struct {
	ID             string
	Name           string
	NormalizedName string
	URL            *string
	ImageURL       *string
	Price          *float64
	Source         string
	UpdatedAt      string
}
