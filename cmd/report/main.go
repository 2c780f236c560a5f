// Package main provides the report command-line tool for validating cleaned records
// and rendering a quality report.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"scrubber/internal/config"
	"scrubber/internal/loader"
	"scrubber/internal/output"
	"scrubber/internal/report"
	"scrubber/internal/validator"
)

func main() {
	inputPath := flag.String("input", "", "Path to cleaned records JSON array")
	outputPath := flag.String("output", config.DefaultReportPath, "Path to output report file")
	printReport := flag.Bool("print", false, "Also print the report to stdout")
	flag.Parse()

	if *inputPath == "" {
		fmt.Println("Usage: report -input <cleaned.json> [-output <report.txt>] [-print]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	cfg := config.DefaultConfig()

	records, err := loader.LoadRecords(*inputPath)
	if err != nil {
		log.Fatalf("Error loading records: %v\n", err)
	}

	fmt.Printf("📂 Loaded: %s (%d records)\n", *inputPath, len(records))

	result := validator.NewRecordValidator(cfg.Pipeline.MinContentLength).ValidateBatch(records)

	fmt.Printf("📊 %s\n", result.Stats.String())

	text := report.NewGeneratorWithTopFailures(cfg.Pipeline.TopFailures).
		Generate(records, result.Valid, result.Invalid, result.Reasons)

	if err := output.WriteReport(*outputPath, text); err != nil {
		log.Fatalf("Error writing file: %v\n", err)
	}

	fmt.Printf("✅ Saved to: %s\n", *outputPath)

	if *printReport {
		fmt.Println(text)
	}
}
