// Package validator checks cleaned records against the pipeline's
// acceptance rules.
package validator

import (
	"fmt"
	"net/url"
	"unicode/utf8"

	"scrubber/internal/models"
	"scrubber/internal/normalizer"
)

// DefaultMinContentLength is the minimum accepted content length in
// characters.
const DefaultMinContentLength = 10

// RecordValidator applies the acceptance rules to cleaned records.
type RecordValidator struct {
	minContentLength int
}

// NewRecordValidator creates a validator. A non-positive minimum content
// length falls back to DefaultMinContentLength.
func NewRecordValidator(minContentLength int) *RecordValidator {
	if minContentLength < 1 {
		minContentLength = DefaultMinContentLength
	}

	return &RecordValidator{minContentLength: minContentLength}
}

// IsValidURL reports whether s is an absolute http or https URL with a
// host.
func IsValidURL(s string) bool {
	if s == "" {
		return false
	}

	u, err := url.Parse(s)
	if err != nil {
		return false
	}

	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// Validate returns the failure reasons for one record. Checks run
// independently and reasons accumulate in a fixed order: missing required
// fields first, then URL format, then content length. An empty result
// means the record is valid. Only a non-empty URL can fail the format
// check, and only non-empty content can be too short.
func (v *RecordValidator) Validate(record models.Record) []models.Reason {
	var reasons []models.Reason

	for _, field := range models.RequiredFields {
		if normalizer.NormalizeText(record[field]) == "" {
			reasons = append(reasons, models.MissingRequiredField(field))
		}
	}

	if u := normalizer.NormalizeText(record[models.FieldURL]); u != "" && !IsValidURL(u) {
		reasons = append(reasons, models.ReasonInvalidURLFormat)
	}

	content := normalizer.NormalizeText(record[models.FieldContent])
	if content != "" && utf8.RuneCountInString(content) < v.minContentLength {
		reasons = append(reasons, models.ContentTooShort(v.minContentLength))
	}

	return reasons
}

// Stats summarizes a batch validation pass.
type Stats struct {
	Total   int
	Valid   int
	Invalid int
}

// String returns a one-line summary.
func (s Stats) String() string {
	return fmt.Sprintf("%d records: %d valid, %d invalid", s.Total, s.Valid, s.Invalid)
}

// BatchResult holds the outcome of validating a batch.
type BatchResult struct {
	Valid   []models.Record
	Invalid []models.InvalidRecord
	Reasons []models.Reason
	Stats   Stats
}

// ValidateBatch validates records in order. Every record lands in exactly
// one of the two partitions, invalid entries keep their input index, and
// Reasons is the flat concatenation of all invalid records' reasons.
func (v *RecordValidator) ValidateBatch(records []models.Record) *BatchResult {
	result := &BatchResult{
		Valid:   make([]models.Record, 0, len(records)),
		Invalid: make([]models.InvalidRecord, 0),
		Reasons: make([]models.Reason, 0),
	}

	for i, record := range records {
		reasons := v.Validate(record)
		if len(reasons) > 0 {
			result.Invalid = append(result.Invalid, models.InvalidRecord{
				Record:  record,
				Reasons: reasons,
				Index:   i,
			})
			result.Reasons = append(result.Reasons, reasons...)

			continue
		}

		result.Valid = append(result.Valid, record)
	}

	result.Stats = Stats{
		Total:   len(records),
		Valid:   len(result.Valid),
		Invalid: len(result.Invalid),
	}

	return result
}
