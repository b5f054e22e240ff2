package storage

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"greencart/internal"
)

type DB struct {
	conn *sql.DB
}

func Open(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if _, err := conn.Exec(`PRAGMA journal_mode = WAL;`); err != nil {
		_ = conn.Close()
		return nil, err
	}

	db := &DB{conn: conn}
	if err := db.init(); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return db, nil
}

func (d *DB) Close() error {
	return d.conn.Close()
}

func (d *DB) init() error {
	schema := `
CREATE TABLE IF NOT EXISTS purchases (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  date TEXT NOT NULL,
  product TEXT NOT NULL,
  quantity INTEGER NOT NULL DEFAULT 1,
  price REAL NOT NULL DEFAULT 0,
  sustainability_score INTEGER NOT NULL,
  createdAt TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_purchases_date ON purchases(date);

CREATE TABLE IF NOT EXISTS scraped_products (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  normalized_name TEXT NOT NULL,
  url TEXT,
  image_url TEXT,
  price REAL,
  source TEXT NOT NULL,
  updatedAt TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_scraped_normalized ON scraped_products(normalized_name);
CREATE INDEX IF NOT EXISTS idx_scraped_source ON scraped_products(source);

CREATE TABLE IF NOT EXISTS metadata (
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL,
  updatedAt TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

	_, err := d.conn.Exec(schema)
	return err
}

func (d *DB) InsertPurchase(p internal.Purchase) (int64, error) {
	result, err := d.conn.Exec(`
INSERT INTO purchases (date, product, quantity, price, sustainability_score)
VALUES (?, ?, ?, ?, ?)
`, p.Date, p.Product, p.Quantity, p.Price, p.SustainabilityScore)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// ListPurchases returns purchases newest first.
func (d *DB) ListPurchases() ([]internal.Purchase, error) {
	rows, err := d.conn.Query(`
SELECT id, date, product, quantity, price, sustainability_score
FROM purchases ORDER BY date DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []internal.Purchase
	for rows.Next() {
		var p internal.Purchase
		if err := rows.Scan(&p.ID, &p.Date, &p.Product, &p.Quantity, &p.Price, &p.SustainabilityScore); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// PurchaseStats aggregates purchase history for the insights view.
type PurchaseStats struct {
	Total        int
	AverageScore float64
	TotalSpent   float64
}

func (d *DB) GetPurchaseStats() (PurchaseStats, error) {
	var stats PurchaseStats
	err := d.conn.QueryRow(`
SELECT COUNT(*),
       COALESCE(AVG(sustainability_score), 0),
       COALESCE(SUM(price), 0)
FROM purchases`).Scan(&stats.Total, &stats.AverageScore, &stats.TotalSpent)
	return stats, err
}

func (d *DB) UpsertScrapedProducts(products []internal.ScrapedProduct) error {
	tx, err := d.conn.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.Prepare(`
INSERT INTO scraped_products (id, name, normalized_name, url, image_url, price, source, updatedAt)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
  name=excluded.name,
  normalized_name=excluded.normalized_name,
  url=excluded.url,
  image_url=excluded.image_url,
  price=excluded.price,
  source=excluded.source,
  updatedAt=excluded.updatedAt
`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, p := range products {
		if _, err := stmt.Exec(p.ID, p.Name, p.NormalizedName, p.URL, p.ImageURL, p.Price, p.Source, p.UpdatedAt); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (d *DB) ListScrapedProducts(source string) ([]internal.ScrapedProduct, error) {
	query := `
SELECT id, name, normalized_name, url, image_url, price, source, updatedAt
FROM scraped_products`
	args := []any{}
	if source != "" {
		query += ` WHERE source = ?`
		args = append(args, source)
	}
	query += ` ORDER BY name ASC`

	rows, err := d.conn.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []internal.ScrapedProduct
	for rows.Next() {
		var p internal.ScrapedProduct
		if err := rows.Scan(&p.ID, &p.Name, &p.NormalizedName, &p.URL, &p.ImageURL, &p.Price, &p.Source, &p.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (d *DB) SetMetadata(key, value string) error {
	_, err := d.conn.Exec(`
INSERT INTO metadata (key, value) VALUES (?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updatedAt = CURRENT_TIMESTAMP
`, key, value)
	return err
}

func (d *DB) GetMetadata(key string) (*string, error) {
	var value string
	err := d.conn.QueryRow(`SELECT value FROM metadata WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &value, nil
}
