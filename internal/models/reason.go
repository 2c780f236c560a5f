package models

import "fmt"

// Reason identifies one validation failure. The string form is the wire
// format: it appears verbatim in invalid-record JSON and in the quality
// report. Parameterized variants come only from the constructors below.
type Reason string

// ReasonInvalidURLFormat flags a non-empty url that does not parse as an
// absolute http(s) URL with a host.
const ReasonInvalidURLFormat Reason = "invalid_url_format"

// MissingRequiredField reports an absent or empty required field.
func MissingRequiredField(field string) Reason {
	return Reason("missing_required_field:" + field)
}

// ContentTooShort reports non-empty content below the minimum length.
func ContentTooShort(minLength int) Reason {
	return Reason(fmt.Sprintf("content_too_short:min_%d", minLength))
}

func (r Reason) String() string {
	return string(r)
}

// InvalidRecord pairs a failed record with its position in the input
// batch and the reasons it failed.
type InvalidRecord struct {
	Record  Record   `json:"record"`
	Reasons []Reason `json:"reasons"`
	Index   int      `json:"index"`
}
