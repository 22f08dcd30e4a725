package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	CatalogPath   string
	DBDSN         string
	LogFile       string
	SessionSecret string
}

func Load() Config {
	// .env is optional; real env always wins.
	_ = godotenv.Load()

	cfg := Config{
		Port:          getenv("PORT", "8080"),
		CatalogPath:   getenv("CATALOG_PATH", "./data/products.json"),
		DBDSN:         getenv("DB_DSN", "./data/orders.db"),
		LogFile:       getenv("LOG_FILE", "./shopfront.log"),
		SessionSecret: getenv("SESSION_SECRET", "dev-secret-change-me"),
	}
	log.Printf("[config] PORT=%s CATALOG_PATH=%s DB_DSN=%s LOG_FILE=%s", cfg.Port, cfg.CatalogPath, cfg.DBDSN, cfg.LogFile)
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
