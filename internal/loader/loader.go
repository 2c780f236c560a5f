// Package loader reads raw record batches from JSON files.
package loader

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"scrubber/internal/models"
)

// ErrNotArray is returned when the input file does not hold a JSON array.
var ErrNotArray = errors.New("input JSON must be an array of records")

// LoadRecords reads a JSON file holding an array of records. Array
// elements that are not objects become placeholder records carrying the
// raw value and an error marker, so a malformed element never aborts the
// batch. Numbers keep their literal form.
func LoadRecords(path string) ([]models.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	dec.UseNumber()

	var data any
	if err := dec.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to parse input JSON: %w", err)
	}

	items, ok := data.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotArray, path)
	}

	records := make([]models.Record, 0, len(items))
	for i, item := range items {
		if obj, ok := item.(map[string]any); ok {
			records = append(records, models.Record(obj))

			continue
		}

		records = append(records, models.Record{
			models.FieldRaw:   item,
			models.FieldError: fmt.Sprintf("non_object_record_at_index_%d", i),
		})
	}

	return records, nil
}
