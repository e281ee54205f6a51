package main

import (
	"log"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	apiserver "github.com/bhanu2006-24/imdb-analysis/internal/api/server"
	"github.com/bhanu2006-24/imdb-analysis/internal/api/middleware"
	"github.com/bhanu2006-24/imdb-analysis/internal/config"
	"github.com/bhanu2006-24/imdb-analysis/internal/dataset"
	"github.com/bhanu2006-24/imdb-analysis/internal/storage"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("Starting IMDb Analytics API Server...")

	// 1. Setup Configuration
	cfg := config.Load()

	// 2. Dataset source (local dir or S3 bucket)
	store := storage.New(cfg)

	// 3. One-time load — a missing or malformed export is fatal and the
	// server never starts serving (there is nothing to render without it)
	catalog, err := dataset.Load(store, cfg)
	if err != nil {
		log.Fatalf("❌ Failed to load datasets: %v", err)
	}
	log.Printf("📚 Loaded %d movies, %d cast rows, %d genre rows",
		len(catalog.Movies), len(catalog.Cast), len(catalog.Genres))

	// 4. Setup Metrics
	middleware.RegisterMetrics()
	go func() {
		http.Handle("/_metrics", promhttp.Handler())
		log.Printf("📊 Metrics exposed at http://localhost%s/_metrics", cfg.Server.MetricsPort)
		if err := http.ListenAndServe(cfg.Server.MetricsPort, nil); err != nil {
			log.Printf("⚠️ Metrics server error: %v", err)
		}
	}()

	// 5. Start Server
	srv := apiserver.New(cfg, catalog)

	log.Printf("🚀 API Server starting on %s", cfg.Server.Addr)
	if err := srv.Start(cfg.Server.Addr); err != nil {
		log.Fatalf("❌ Server failed to start: %v", err)
	}
}
