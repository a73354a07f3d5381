package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"heritage/api/internal/app"
	"heritage/api/internal/config"
	"heritage/api/internal/gateway"
	"heritage/api/internal/metrics"
	"heritage/api/internal/store"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	var knowledgeStore app.Gateway
	if strings.TrimSpace(cfg.DatabaseURL) != "" {
		log.Printf("Using PostgreSQL knowledge store")
		db, err := store.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("database connection failed: %v", err)
		}
		defer db.Close()

		applied, err := store.ApplyMigrations(ctx, db, cfg.MigrationsDir)
		if err != nil {
			log.Fatalf("migrations failed: %v", err)
		}
		log.Printf("applied %d migration(s)", applied)
		knowledgeStore = store.NewEntityStore(db)
	} else {
		log.Printf("Using HTTP knowledge store at %s", cfg.KnowledgeStoreURL)
		knowledgeStore = gateway.New(cfg.KnowledgeStoreURL, cfg.KnowledgeStoreTimeout)
	}

	service := app.New(cfg, knowledgeStore, metrics.New())
	httpServer := app.NewHTTPServer(service, cfg.CORSOrigin)
	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           httpServer.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("Heritage resolver listening on %s (ontology %s)", cfg.Addr, service.Namespace().Base())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}
