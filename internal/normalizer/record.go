package normalizer

import (
	"scrubber/internal/models"
)

// DefaultDateKeys lists field names that commonly hold dates in scraped
// data. Fields with these names are normalized to ISO 8601 when present.
var DefaultDateKeys = []string{
	"date",
	"published_date",
	"published_at",
	"created_at",
	"updated_at",
	"timestamp",
	"time",
}

// Cleaner normalizes raw records field by field.
type Cleaner struct {
	dateKeys []string
}

// NewCleaner creates a cleaner with the default date key set.
func NewCleaner() *Cleaner {
	return NewCleanerWithDateKeys(nil)
}

// NewCleanerWithDateKeys creates a cleaner recognizing the given date
// keys. An empty set falls back to DefaultDateKeys.
func NewCleanerWithDateKeys(dateKeys []string) *Cleaner {
	if len(dateKeys) == 0 {
		dateKeys = DefaultDateKeys
	}

	return &Cleaner{dateKeys: dateKeys}
}

// CleanRecord returns a cleaned copy of record. Title and content lose
// their HTML artifacts, recognized date fields become ISO 8601 where
// possible (falling back to plain text normalization), and every other
// text field is normalized. Non-text values outside date fields pass
// through unchanged. The input record is never modified.
func (c *Cleaner) CleanRecord(record models.Record) models.Record {
	cleaned := record.Clone()

	if cleaned.Has(models.FieldTitle) {
		cleaned[models.FieldTitle] = RemoveHTMLArtifacts(cleaned[models.FieldTitle])
	}

	if cleaned.Has(models.FieldContent) {
		cleaned[models.FieldContent] = RemoveHTMLArtifacts(cleaned[models.FieldContent])
	}

	if cleaned.Has(models.FieldURL) {
		cleaned[models.FieldURL] = NormalizeText(cleaned[models.FieldURL])
	}

	for _, key := range c.dateKeys {
		if !cleaned.Has(key) {
			continue
		}

		if iso, ok := ParseDateToISO(cleaned[key]); ok {
			cleaned[key] = iso
		} else {
			cleaned[key] = NormalizeText(cleaned[key])
		}
	}

	for key, value := range cleaned {
		if key == models.FieldTitle || key == models.FieldContent || key == models.FieldURL {
			continue
		}

		switch v := value.(type) {
		case string:
			cleaned[key] = NormalizeText(v)
		case []byte:
			cleaned[key] = NormalizeText(v)
		}
	}

	return cleaned
}

// CleanBatch cleans every record, preserving order.
func (c *Cleaner) CleanBatch(records []models.Record) []models.Record {
	cleaned := make([]models.Record, 0, len(records))
	for _, record := range records {
		cleaned = append(cleaned, c.CleanRecord(record))
	}

	return cleaned
}
