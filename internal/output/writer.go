// Package output writes pipeline artifacts to disk.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"scrubber/internal/models"
)

// WriteRecords writes records as pretty-printed JSON. HTML escaping is
// disabled so characters like "&" and non-ASCII text survive literally.
func WriteRecords(path string, records []models.Record) error {
	if records == nil {
		records = []models.Record{}
	}

	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("failed to encode records: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	return nil
}

// WriteReport writes the report text verbatim.
func WriteReport(path string, text string) error {
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return fmt.Errorf("failed to write report file: %w", err)
	}

	return nil
}
