package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	DBPath    string
	OutputDir string
	HTTPAddr  string

	CatalogAPIBaseURL        string
	CatalogAPIKey            string
	CatalogTable             string
	CatalogFetchLimit        int
	CatalogTimeoutMs         int
	CatalogRateLimitRPS      int
	CatalogRefreshIntervalMs int

	IngestDefaultSource string
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cwd, err := os.Getwd()
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		DBPath:    getEnv("DB_PATH", filepath.Join(cwd, "data", "app.db")),
		OutputDir: getEnv("OUTPUT_DIR", filepath.Join(cwd, "out")),
		HTTPAddr:  getEnv("HTTP_ADDR", ":3001"),

		CatalogAPIBaseURL:        getEnv("CATALOG_API_BASE_URL", ""),
		CatalogAPIKey:            getEnv("CATALOG_API_KEY", ""),
		CatalogTable:             getEnv("CATALOG_TABLE", "product_catalog"),
		CatalogFetchLimit:        getEnvInt("CATALOG_FETCH_LIMIT", 2000),
		CatalogTimeoutMs:         getEnvInt("CATALOG_TIMEOUT_MS", 30000),
		CatalogRateLimitRPS:      getEnvInt("CATALOG_RATE_LIMIT_RPS", 5),
		CatalogRefreshIntervalMs: getEnvInt("CATALOG_REFRESH_INTERVAL_MS", 900000),

		IngestDefaultSource: getEnv("INGEST_DEFAULT_SOURCE", "ah_bonus"),
	}

	return cfg, nil
}

// RemoteEnabled reports whether a remote catalogue provider is configured.
// Without one the bundled catalogue is used for the whole process lifetime.
func (c Config) RemoteEnabled() bool {
	return strings.TrimSpace(c.CatalogAPIBaseURL) != "" && strings.TrimSpace(c.CatalogAPIKey) != ""
}

func (c Config) Require(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("missing required env var: %s", name)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
