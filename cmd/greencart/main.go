package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"greencart/internal/catalog"
	"greencart/internal/config"
	"greencart/internal/ingest"
	"greencart/internal/report"
	"greencart/internal/scoring"
	"greencart/internal/server"
	"greencart/internal/storage"
)

func main() {
	cfg, err := config.Load()
	must(err)

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	db, err := storage.Open(cfg.DBPath)
	must(err)
	defer db.Close()

	index := newIndex(cfg)
	engine := scoring.NewEngine(index)
	ctx := context.Background()

	cmd := os.Args[1]
	switch cmd {
	case "serve":
		srv := server.New(cfg, index, db)
		must(srv.Run(ctx))
	case "score":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		product := fs.String("product", "", "product name")
		_ = fs.Parse(os.Args[2:])
		if strings.TrimSpace(*product) == "" {
			must(fmt.Errorf("--product is required"))
		}
		index.EnsureLoaded(ctx)
		printJSON(engine.Evaluate(*product))
	case "search":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		query := fs.String("query", "", "partial product name")
		_ = fs.Parse(os.Args[2:])
		if strings.TrimSpace(*query) == "" {
			must(fmt.Errorf("--query is required"))
		}
		index.EnsureLoaded(ctx)
		printJSON(engine.Search(*query))
	case "suggest":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		product := fs.String("product", "", "product name")
		_ = fs.Parse(os.Args[2:])
		if strings.TrimSpace(*product) == "" {
			must(fmt.Errorf("--product is required"))
		}
		printJSON(scoring.Suggestions(*product))
	case "catalog:refresh":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		force := fs.Bool("force", true, "refresh even within the interval")
		_ = fs.Parse(os.Args[2:])
		meta := index.Refresh(ctx, *force)
		fmt.Printf("catalog refresh done source=%s items=%d\n", meta.Source, meta.ItemCount)
		if meta.LastError != nil {
			fmt.Printf("last error: %s\n", *meta.LastError)
		}
	case "catalog:meta":
		printJSON(index.EnsureLoaded(ctx))
	case "ingest:page":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		input := fs.String("input", "", "saved bonus page html")
		source := fs.String("source", cfg.IngestDefaultSource, "scrape source tag")
		_ = fs.Parse(os.Args[2:])
		if strings.TrimSpace(*input) == "" {
			must(fmt.Errorf("--input is required"))
		}
		f, err := os.Open(*input)
		must(err)
		defer f.Close()
		items, err := ingest.ParseBonusPage(f, *source)
		must(err)
		svc := ingest.NewService(db, cfg.IngestDefaultSource)
		count, err := svc.Ingest(items)
		must(err)
		fmt.Printf("ingested %d products from %s\n", count, *input)
	case "purchases:list":
		purchases, err := db.ListPurchases()
		must(err)
		printJSON(purchases)
	case "export:xlsx":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		out := fs.String("out", "", "output xlsx path")
		_ = fs.Parse(os.Args[2:])
		outputPath := *out
		if strings.TrimSpace(outputPath) == "" {
			outputPath = filepath.Join(cfg.OutputDir, fmt.Sprintf("purchases_%s.xlsx", time.Now().Format("20060102")))
		}
		purchases, err := db.ListPurchases()
		must(err)
		if len(purchases) == 0 {
			must(fmt.Errorf("no purchases to export"))
		}
		must(report.ExportPurchasesToXLSX(purchases, outputPath))
		fmt.Printf("exported %d purchases to %s\n", len(purchases), outputPath)
	default:
		usage()
		os.Exit(1)
	}
}

func newIndex(cfg config.Config) *catalog.Index {
	interval := time.Duration(cfg.CatalogRefreshIntervalMs) * time.Millisecond
	if cfg.RemoteEnabled() {
		return catalog.NewIndex(catalog.NewClient(cfg), interval)
	}
	return catalog.NewIndex(nil, interval)
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

func usage() {
	fmt.Println("usage: greencart <command>")
	fmt.Println("commands:")
	fmt.Println("  serve")
	fmt.Println("  score --product=\"bio melk\"")
	fmt.Println("  search --query=melk")
	fmt.Println("  suggest --product=\"rundvlees\"")
	fmt.Println("  catalog:refresh [--force=false]")
	fmt.Println("  catalog:meta")
	fmt.Println("  ingest:page --input=./bonus.html [--source=ah_bonus]")
	fmt.Println("  purchases:list")
	fmt.Println("  export:xlsx [--out=./out/purchases.xlsx]")
}

func must(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
