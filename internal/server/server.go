package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"greencart/internal"
	"greencart/internal/catalog"
	"greencart/internal/config"
	"greencart/internal/ingest"
	"greencart/internal/scoring"
	"greencart/internal/storage"
)

type Server struct {
	cfg    config.Config
	index  *catalog.Index
	engine *scoring.Engine
	db     *storage.DB
	ingest *ingest.Service
}

func New(cfg config.Config, index *catalog.Index, db *storage.DB) *Server {
	return &Server{
		cfg:    cfg,
		index:  index,
		engine: scoring.NewEngine(index),
		db:     db,
		ingest: ingest.NewService(db, cfg.IngestDefaultSource),
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/score", s.handleScore)
	mux.HandleFunc("POST /api/score", s.handleScore)
	mux.HandleFunc("GET /api/score/search", s.handleSearch)
	mux.HandleFunc("GET /api/suggestions", s.handleSuggestions)
	mux.HandleFunc("GET /api/purchases", s.handleListPurchases)
	mux.HandleFunc("POST /api/purchases", s.handleAddPurchase)
	mux.HandleFunc("GET /api/insights", s.handleInsights)
	mux.HandleFunc("GET /api/catalog/meta", s.handleCatalogMeta)
	mux.HandleFunc("POST /api/ingest/scrape", s.handleScrape)
	return mux
}

// Run serves the API and keeps the catalogue fresh until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	s.index.EnsureLoaded(ctx)
	go s.refreshLoop(ctx)

	srv := &http.Server{Addr: s.cfg.HTTPAddr, Handler: s.Handler()}
	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	fmt.Printf("listening on %s\n", s.cfg.HTTPAddr)
	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

func (s *Server) refreshLoop(ctx context.Context) {
	interval := time.Duration(s.cfg.CatalogRefreshIntervalMs) * time.Millisecond
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			meta := s.index.Refresh(ctx, false)
			if meta.LastError != nil {
				fmt.Printf("catalog refresh failed source=%s err=%s\n", meta.Source, *meta.LastError)
			}
		}
	}
}

type scoreRequest struct {
	Product string `json:"product"`
	Item    string `json:"item"`
}

func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	product := r.URL.Query().Get("product")
	if product == "" {
		product = r.URL.Query().Get("item")
	}
	if r.Method == http.MethodPost {
		var req scoreRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err == nil {
			if req.Product != "" {
				product = req.Product
			} else if req.Item != "" {
				product = req.Item
			}
		}
	}
	if product == "" {
		writeError(w, http.StatusBadRequest, "missing_product")
		return
	}

	s.index.EnsureLoaded(r.Context())
	writeJSON(w, http.StatusOK, s.engine.Evaluate(product))
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if query == "" {
		query = r.URL.Query().Get("q")
	}
	if query == "" {
		writeError(w, http.StatusBadRequest, "missing_query")
		return
	}

	s.index.EnsureLoaded(r.Context())
	writeJSON(w, http.StatusOK, map[string]any{"results": s.engine.Search(query)})
}

func (s *Server) handleSuggestions(w http.ResponseWriter, r *http.Request) {
	product := r.URL.Query().Get("product")
	if product == "" {
		writeError(w, http.StatusBadRequest, "missing_product")
		return
	}

	// Tips come from the name-based rules only; a catalogue entry's own
	// suggestion list is part of the score payload, not this endpoint.
	writeJSON(w, http.StatusOK, map[string]any{
		"product":     product,
		"suggestions": scoring.Suggestions(product),
	})
}

func (s *Server) handleListPurchases(w http.ResponseWriter, r *http.Request) {
	purchases, err := s.db.ListPurchases()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "storage_error")
		return
	}
	if purchases == nil {
		purchases = []internal.Purchase{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"purchases": purchases})
}

type purchaseRequest struct {
	Date     string  `json:"date"`
	Product  string  `json:"product"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

func (s *Server) handleAddPurchase(w http.ResponseWriter, r *http.Request) {
	var req purchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Product == "" {
		writeError(w, http.StatusBadRequest, "missing_product")
		return
	}
	if req.Date == "" {
		req.Date = time.Now().Format("2006-01-02")
	}
	if req.Quantity <= 0 {
		req.Quantity = 1
	}

	s.index.EnsureLoaded(r.Context())
	eval := s.engine.Evaluate(req.Product)

	purchase := internal.Purchase{
		Date:                req.Date,
		Product:             req.Product,
		Quantity:            req.Quantity,
		Price:               req.Price,
		SustainabilityScore: eval.Score,
	}
	if _, err := s.db.InsertPurchase(purchase); err != nil {
		writeError(w, http.StatusInternalServerError, "storage_error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"purchase": purchase,
	})
}

func (s *Server) handleInsights(w http.ResponseWriter, r *http.Request) {
	purchases, err := s.db.ListPurchases()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "storage_error")
		return
	}
	stats, err := s.db.GetPurchaseStats()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "storage_error")
		return
	}

	var best, worst any
	var bestScore, worstScore int
	for _, p := range purchases {
		if best == nil || p.SustainabilityScore > bestScore {
			best, bestScore = p.Product, p.SustainabilityScore
		}
		if worst == nil || p.SustainabilityScore < worstScore {
			worst, worstScore = p.Product, p.SustainabilityScore
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"total_purchases": stats.Total,
		"average_score":   stats.AverageScore,
		"total_spent":     stats.TotalSpent,
		"rating":          scoring.Rating(stats.AverageScore),
		"best_purchase":   best,
		"worst_purchase":  worst,
	})
}

func (s *Server) handleCatalogMeta(w http.ResponseWriter, r *http.Request) {
	var meta internal.CatalogMeta
	if r.URL.Query().Get("refresh") == "true" {
		meta = s.index.Refresh(r.Context(), true)
	} else {
		meta = s.index.EnsureLoaded(r.Context())
	}
	writeJSON(w, http.StatusOK, meta)
}

type scrapeRequest struct {
	Items []internal.ScrapedItem `json:"items"`
}

func (s *Server) handleScrape(w http.ResponseWriter, r *http.Request) {
	var req scrapeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body")
		return
	}
	if len(req.Items) == 0 {
		writeError(w, http.StatusBadRequest, "missing_items")
		return
	}

	count, err := s.ingest.Ingest(req.Items)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "storage_error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ingested": count})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, map[string]string{"error": code})
}
