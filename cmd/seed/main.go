// Package main provides the seed command-line tool for generating a sample
// raw dataset that exercises every cleaning and validation path.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"scrubber/internal/config"
)

// ANSI color codes for terminal output.
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[0;31m"
	colorGreen  = "\033[0;32m"
	colorYellow = "\033[1;33m"
)

func logInfo(msg string) {
	fmt.Printf("%s[SEED]%s %s\n", colorGreen, colorReset, msg)
}

func logWarn(msg string) {
	fmt.Printf("%s[SEED]%s %s\n", colorYellow, colorReset, msg)
}

func logError(msg string) {
	fmt.Printf("%s[SEED]%s %s\n", colorRed, colorReset, msg)
}

func main() {
	outputPath := flag.String("output", config.DefaultInputPath, "Path to output JSON file")
	force := flag.Bool("force", false, "Overwrite the output file if it exists")
	flag.Parse()

	if _, err := os.Stat(*outputPath); err == nil && !*force {
		logError(fmt.Sprintf("%s already exists, use --force to overwrite", *outputPath))
		os.Exit(1)
	}

	logInfo("Generating sample dataset...")

	entries := sampleEntries()

	if err := writeDataset(*outputPath, entries); err != nil {
		logError(fmt.Sprintf("Failed to write dataset: %v", err))
		os.Exit(1)
	}

	logInfo(fmt.Sprintf("Wrote %d entries to %s", len(entries), *outputPath))
	logWarn("Dataset includes malformed entries on purpose, expect invalid records")
	logInfo("===========================================")
	logInfo("Seeding complete!")
	logInfo("===========================================")
}

// sampleEntries builds a raw batch covering messy HTML, Unicode edge cases,
// every supported date alias, validation failures, and one non-object entry.
func sampleEntries() []any {
	return []any{
		map[string]any{
			"title":        "  Breaking <b>News</b>: Go 1.22 Released!  ",
			"content":      "<p>The Go team &amp; community announced the release today, with details inside.</p>",
			"url":          "https://example.com/news/go-1-22",
			"published_at": "2024-02-06T10:30:00Z",
			"author":       "  Jane\u00a0Doe  ",
		},
		map[string]any{
			"title":     "Ｕｎｉｃｏｄｅ\u200bＳｐｏｔｌｉｇｈｔ",
			"content":   "Ｆｕｌｌ－ｗｉｄｔｈ ｔｅｘｔ ｓｈｏｕｌｄ ｂｅｃｏｍｅ ｐｌａｉｎ ＡＳＣＩＩ．",
			"url":       "https://example.com/unicode",
			"timestamp": 1700000000,
		},
		map[string]any{
			"title":      "Caf&eacute; culture: a field survey",
			"content":    "Nothing pairs with an espresso like a long read about café terraces.",
			"url":        "http://example.com/cafe",
			"date":       "15/01/2024",
			"updated_at": 1700000000.25,
		},
		map[string]any{
			"title":      "Archive\r\nnotes,\ttabbed",
			"content":    "Carriage returns and tabs in source text collapse into single spaces.",
			"url":        "https://example.com/archive",
			"created_at": "February 6, 2024",
		},
		map[string]any{
			"content": "This record has plenty of content but never declares a title.",
			"url":     "https://example.com/untitled",
			"date":    "2024-3-9",
		},
		map[string]any{
			"title":   "Too short",
			"content": "tiny",
			"url":     "https://example.com/short",
			"date":    "2024-03-09",
		},
		map[string]any{
			"title":   "Hosted on the wrong protocol",
			"content": "The link below points at an FTP mirror instead of the web.",
			"url":     "ftp://files.example.com/archive",
			"time":    "2023/07/08 14:05",
		},
		map[string]any{
			"title":          "Dates gone missing",
			"url":            "https://example.com/no-dates",
			"published_date": nil,
			"time":           "sometime last week",
		},
		"not-a-record",
	}
}

// writeDataset saves the batch as indented JSON with HTML left unescaped,
// so the messy inputs stay readable in the fixture.
func writeDataset(path string, entries []any) error {
	var buf bytes.Buffer

	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(entries); err != nil {
		return fmt.Errorf("failed to encode dataset: %w", err)
	}

	return os.WriteFile(path, buf.Bytes(), 0644)
}
