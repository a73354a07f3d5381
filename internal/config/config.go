package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Addr       string
	CORSOrigin string
	// Ontology
	OntologyBase   string
	OntologyPrefix string
	// Knowledge store
	KnowledgeStoreURL     string
	KnowledgeStoreTimeout time.Duration
	// Postgres backend, used instead of the HTTP store when set
	DatabaseURL   string
	MigrationsDir string
}

func Load() Config {
	return Config{
		Addr:                  getenv("API_ADDR", ":8790"),
		CORSOrigin:            getenv("HERITAGE_CORS_ORIGIN", "*"),
		OntologyBase:          getenv("HERITAGE_ONTOLOGY_BASE", "https://w3id.org/heritage/ontology"),
		OntologyPrefix:        getenv("HERITAGE_ONTOLOGY_PREFIX", "heritage"),
		KnowledgeStoreURL:     getenv("KNOWLEDGE_STORE_URL", "http://localhost:8000/api"),
		KnowledgeStoreTimeout: time.Duration(getenvInt("KNOWLEDGE_STORE_TIMEOUT_SECONDS", 10)) * time.Second,
		// Empty by default: the HTTP knowledge store is used
		DatabaseURL:   getenv("DATABASE_URL", ""),
		MigrationsDir: getenv("HERITAGE_MIGRATIONS_DIR", "./db/migrations"),
	}
}

func getenv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func getenvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
