// Package main provides the cleaner command-line tool for normalizing raw records.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"scrubber/internal/loader"
	"scrubber/internal/normalizer"
	"scrubber/internal/output"
)

func main() {
	inputPath := flag.String("input", "", "Path to raw records JSON array")
	outputPath := flag.String("output", "", "Path to output JSON file")
	flag.Parse()

	if *inputPath == "" || *outputPath == "" {
		fmt.Println("Usage: cleaner -input <raw.json> -output <cleaned.json>")
		flag.PrintDefaults()
		os.Exit(1)
	}

	records, err := loader.LoadRecords(*inputPath)
	if err != nil {
		log.Fatalf("Error loading records: %v\n", err)
	}

	fmt.Printf("📂 Loaded: %s (%d records)\n", *inputPath, len(records))

	cleaned := normalizer.NewCleaner().CleanBatch(records)

	fmt.Printf("🧹 Cleaned %d records\n", len(cleaned))

	if err := output.WriteRecords(*outputPath, cleaned); err != nil {
		log.Fatalf("Error writing file: %v\n", err)
	}

	fmt.Printf("✅ Saved to: %s\n", *outputPath)
}
