// Package models defines data structures shared by the cleaning pipeline.
package models

// Well-known record fields.
const (
	FieldTitle     = "title"
	FieldContent   = "content"
	FieldURL       = "url"
	FieldSource    = "source"
	FieldScrapedAt = "scraped_at"
	FieldLang      = "lang"

	// Placeholder fields injected by the loader for malformed batch elements.
	FieldRaw   = "_raw"
	FieldError = "_error"
)

// RequiredFields lists the fields every record must carry as non-empty text.
var RequiredFields = []string{FieldTitle, FieldContent, FieldURL}

// Record is one scraped item: an open mapping from field name to value.
// Values are whatever the JSON decoder produced (string, json.Number,
// bool, nested maps and slices, nil). Records have no fixed schema beyond
// the required fields; unknown fields ride along untouched.
type Record map[string]any

// Has reports whether the field is present, regardless of its value.
func (r Record) Has(key string) bool {
	_, ok := r[key]

	return ok
}

// Clone returns a fresh shallow copy. Cleaning works on copies so the
// caller's record is never mutated.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}

	return out
}
