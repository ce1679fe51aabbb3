package main

import (
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"go-process-dashboard/internal/api"
	"go-process-dashboard/internal/api/handler"
	"go-process-dashboard/internal/config"
	"go-process-dashboard/internal/dataset"
	"go-process-dashboard/internal/store"

	_ "go-process-dashboard/docs"
)

// @title Process Control Dashboard API
// @version 1.0
// @description Filter, aggregate and export queries over the process-control spreadsheet.
// @BasePath /api/v1
func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found, using environment as-is")
	}
	cfg := config.Load()

	if err := store.InitDB(cfg.DBPath); err != nil {
		log.Fatalf("❌ Failed to open audit database %s: %v", cfg.DBPath, err)
	}

	// First load is startup-fatal: the dashboard cannot serve without a dataset.
	loadID := uuid.New().String()
	store.SaveLoad(loadID, cfg.ExcelPath, cfg.SheetName)
	ds, stats, err := dataset.Load(cfg.ExcelPath, cfg.SheetName)
	if err != nil {
		store.FailLoad(loadID, err)
		log.Fatalf("❌ Initial load failed: %v", err)
	}
	store.CompleteLoad(loadID, stats)

	snap := dataset.NewSnapshot()
	snap.Swap(ds, stats)

	r := api.NewRouter(handler.New(snap, cfg))

	log.Printf("🚀 Dashboard serving %d records on http://localhost:%s", stats.Rows, cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, r))
}
