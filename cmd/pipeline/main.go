// Package main provides the unified pipeline command that ingests, cleans,
// validates, and reports on scraped records.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"scrubber/internal/config"
	"scrubber/internal/loader"
	"scrubber/internal/logger"
	"scrubber/internal/models"
	"scrubber/internal/output"
	"scrubber/internal/pipeline"
	"scrubber/internal/scraper"
	"scrubber/pkg/metadata"
)

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	// 1. Define Command-Line Flags
	// ---------------------------
	inputPath := flag.String("input", "", "Path to raw records JSON array (default from config)")
	scrapeURL := flag.String("scrape-url", "", "Wikipedia article URL to scrape instead of reading a file")
	configPath := flag.String("config", "", "Path to YAML config file (optional)")

	flag.Parse()

	// 2. Load Configuration
	// ---------------------
	cfg := config.DefaultConfig()

	if *configPath != "" {
		loaded, err := config.LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	if *inputPath != "" {
		cfg.Pipeline.InputPath = *inputPath
	}

	// Initialize Logger
	log := logger.NewLogger(cfg.Logging.Level)

	if level := os.Getenv("SCRUBBER_LOG_LEVEL"); level != "" {
		log.SetLevel(level)
	}

	log.Info("🚀 Starting Scrubber Pipeline")

	startTime := time.Now()

	// 3. Ingestion
	// ------------
	var records []models.Record

	if *scrapeURL != "" {
		log.Info("Phase 1: Ingestion (Scraping)...")
		log.Info(fmt.Sprintf("📍 Source: %s", *scrapeURL))

		s := scraper.NewScraper(cfg.Scraper)

		record, metrics, err := s.ScrapeArticle(*scrapeURL)
		if err != nil {
			log.Error(fmt.Sprintf("❌ Scrape failed: %v", err))
			os.Exit(1)
		}

		log.Info(fmt.Sprintf("✅ Fetched %d bytes in %v (HTTP %d)", metrics.Bytes, metrics.Duration, metrics.StatusCode))

		records = []models.Record{record}
	} else {
		log.Info("Phase 1: Ingestion (Loading)...")
		log.Info(fmt.Sprintf("📍 Source: %s", cfg.Pipeline.InputPath))

		loaded, err := loader.LoadRecords(cfg.Pipeline.InputPath)
		if err != nil {
			log.Error(fmt.Sprintf("❌ Load failed: %v", err))
			os.Exit(1)
		}

		log.Info(fmt.Sprintf("✅ Loaded %d records", len(loaded)))

		records = loaded
	}

	// 4. Processing
	// -------------
	log.Info("Phase 2: Processing (Cleaning & Validation)...")

	result := pipeline.New(cfg, log).Run(records)

	log.Info(fmt.Sprintf("✅ Processed %d records in %v: %d valid, %d invalid",
		len(result.Cleaned), time.Since(startTime), len(result.Valid), len(result.Invalid)))

	// 5. Output
	// ---------
	log.Info("Phase 3: Output (Writing artifacts)...")

	if err := output.WriteRecords(cfg.Pipeline.CleanedOutputPath, result.Valid); err != nil {
		log.Error(fmt.Sprintf("❌ Failed to write cleaned records: %v", err))
		os.Exit(1)
	}

	if err := output.WriteReport(cfg.Pipeline.ReportPath, result.Report); err != nil {
		log.Error(fmt.Sprintf("❌ Failed to write report: %v", err))
		os.Exit(1)
	}

	if cfg.Features.SignOutputs {
		if err := signArtifacts(log, cfg.Pipeline.CleanedOutputPath, cfg.Pipeline.ReportPath); err != nil {
			log.Error(fmt.Sprintf("❌ Signing failed: %v", err))
			os.Exit(1)
		}
	}

	fmt.Println("Pipeline complete.")
	fmt.Printf("Saved: %s, %s\n", cfg.Pipeline.CleanedOutputPath, cfg.Pipeline.ReportPath)
}

// signArtifacts writes a detached signature next to each artifact.
func signArtifacts(log *logger.Logger, paths ...string) error {
	secret := os.Getenv("SCRUBBER_SIGNING_SECRET")
	if secret == "" {
		return errors.New("SCRUBBER_SIGNING_SECRET must be set when features.sign_outputs is enabled")
	}

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read artifact %s: %w", path, err)
		}

		if err := metadata.WriteFile(path, metadata.Sign(data, secret)); err != nil {
			return err
		}

		log.Info(fmt.Sprintf("✍️  Signed: %s", metadata.SigPath(path)))
	}

	return nil
}
