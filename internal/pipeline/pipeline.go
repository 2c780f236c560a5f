// Package pipeline wires cleaning, validation and reporting into one
// batch run.
package pipeline

import (
	"scrubber/internal/config"
	"scrubber/internal/logger"
	"scrubber/internal/models"
	"scrubber/internal/normalizer"
	"scrubber/internal/report"
	"scrubber/internal/validator"
)

// Result holds everything one batch run produces.
type Result struct {
	Cleaned []models.Record
	Valid   []models.Record
	Invalid []models.InvalidRecord
	Reasons []models.Reason
	Report  string
}

// Pipeline runs the clean, validate, report sequence over record
// batches. It holds no state between runs.
type Pipeline struct {
	cleaner   *normalizer.Cleaner
	validator *validator.RecordValidator
	reporter  *report.Generator
	log       *logger.Logger
}

// New creates a pipeline from configuration.
func New(cfg *config.Config, log *logger.Logger) *Pipeline {
	return &Pipeline{
		cleaner:   normalizer.NewCleanerWithDateKeys(cfg.Pipeline.DateKeys),
		validator: validator.NewRecordValidator(cfg.Pipeline.MinContentLength),
		reporter:  report.NewGeneratorWithTopFailures(cfg.Pipeline.TopFailures),
		log:       log,
	}
}

// Run processes one batch in a single pass: clean every record, validate
// the cleaned batch, render the quality report. The input records are
// never modified.
func (p *Pipeline) Run(records []models.Record) *Result {
	p.log.Info("Cleaning records", "count", len(records))
	cleaned := p.cleaner.CleanBatch(records)

	validated := p.validator.ValidateBatch(cleaned)
	p.log.Info("Validation finished",
		"total", validated.Stats.Total,
		"valid", validated.Stats.Valid,
		"invalid", validated.Stats.Invalid)

	reportText := p.reporter.Generate(cleaned, validated.Valid, validated.Invalid, validated.Reasons)

	return &Result{
		Cleaned: cleaned,
		Valid:   validated.Valid,
		Invalid: validated.Invalid,
		Reasons: validated.Reasons,
		Report:  reportText,
	}
}
