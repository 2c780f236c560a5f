// Package main provides the scraper command-line tool for fetching Wikipedia article summaries.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"scrubber/internal/config"
	"scrubber/internal/models"
	"scrubber/internal/output"
	"scrubber/internal/scraper"
	"scrubber/pkg/utils"
)

func main() {
	articleURL := flag.String("url", "", "Wikipedia article URL (e.g., https://en.wikipedia.org/wiki/Go_(programming_language))")
	outputPath := flag.String("output", "scraped_data.json", "Path to output JSON file")
	flag.Parse()

	if *articleURL == "" {
		fmt.Println("Usage: scraper -url <article-url> [-output <output.json>]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	cfg := config.DefaultConfig()

	fmt.Printf("🌐 Fetching: %s\n", *articleURL)

	s := scraper.NewScraper(cfg.Scraper)

	record, metrics, err := s.ScrapeArticle(*articleURL)
	if err != nil {
		log.Fatalf("Error scraping article: %v\n", err)
	}

	fmt.Printf("✅ Fetched %d bytes in %v (HTTP %d)\n", metrics.Bytes, metrics.Duration, metrics.StatusCode)
	title, _ := record[models.FieldTitle].(string)
	fmt.Printf("🔍 Title: %s\n", utils.NewStringHelper().Truncate(title, 60))

	if err := output.WriteRecords(*outputPath, []models.Record{record}); err != nil {
		log.Fatalf("Error writing file: %v\n", err)
	}

	fmt.Printf("✅ Saved to: %s\n", *outputPath)
}
