// Package report renders quality reports for cleaned record batches.
package report

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"

	"scrubber/internal/models"
	"scrubber/internal/normalizer"
)

// DefaultTopFailures caps how many failure reasons the report lists.
const DefaultTopFailures = 5

const (
	bannerWidth   = 60
	fieldPadWidth = 10
)

// Generator renders quality reports with a fixed layout.
type Generator struct {
	topFailures int
}

// NewGenerator creates a generator listing the default number of top
// failures.
func NewGenerator() *Generator {
	return NewGeneratorWithTopFailures(DefaultTopFailures)
}

// NewGeneratorWithTopFailures creates a generator listing up to n
// failure reasons. A non-positive n falls back to DefaultTopFailures.
func NewGeneratorWithTopFailures(n int) *Generator {
	if n < 1 {
		n = DefaultTopFailures
	}

	return &Generator{topFailures: n}
}

// reasonCount pairs a failure reason with its occurrence count.
type reasonCount struct {
	Reason models.Reason
	Count  int
}

// reasonCounter counts reasons while remembering first-appearance order
// so that ties rank deterministically.
type reasonCounter struct {
	counts map[models.Reason]int
	order  []models.Reason
}

func newReasonCounter(reasons []models.Reason) *reasonCounter {
	c := &reasonCounter{counts: make(map[models.Reason]int)}
	for _, r := range reasons {
		if _, seen := c.counts[r]; !seen {
			c.order = append(c.order, r)
		}

		c.counts[r]++
	}

	return c
}

// mostCommon returns up to n reasons by descending count. Equal counts
// keep first-appearance order.
func (c *reasonCounter) mostCommon(n int) []reasonCount {
	ranked := make([]reasonCount, 0, len(c.order))
	for _, r := range c.order {
		ranked = append(ranked, reasonCount{Reason: r, Count: c.counts[r]})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	if n < len(ranked) {
		ranked = ranked[:n]
	}

	return ranked
}

// completenessPercent is the share of records whose normalized field
// value is non-empty, in percent.
func completenessPercent(records []models.Record, field string) float64 {
	if len(records) == 0 {
		return 0.0
	}

	present := 0
	for _, r := range records {
		if normalizer.NormalizeText(r[field]) != "" {
			present++
		}
	}

	return float64(present) / float64(len(records)) * 100.0
}

// Generate renders the quality report for one batch run. cleaned is the
// full processed batch; valid and invalid are its partitions and reasons
// the flat failure list. Completeness is measured against the full
// batch, not just the valid part.
func (g *Generator) Generate(cleaned, valid []models.Record, invalid []models.InvalidRecord, reasons []models.Reason) string {
	total := len(cleaned)
	banner := strings.Repeat("=", bannerWidth)
	rule := strings.Repeat("-", bannerWidth)

	lines := []string{
		banner,
		"Data Quality Report",
		banner,
		"Generated at (UTC): " + normalizer.FormatISO(time.Now().UTC(), true),
		"",
		"Summary",
		rule,
		fmt.Sprintf("Total records processed: %d", total),
		fmt.Sprintf("Valid records: %d", len(valid)),
		fmt.Sprintf("Invalid records: %d", len(invalid)),
	}

	if total > 0 {
		rate := float64(len(valid)) / float64(total) * 100.0
		lines = append(lines, fmt.Sprintf("Valid rate: %.1f%%", rate))
	} else {
		lines = append(lines, "Valid rate: 0.0%")
	}

	lines = append(lines, "", "Completeness by field (%)", rule)
	for _, field := range models.RequiredFields {
		pct := completenessPercent(cleaned, field)
		lines = append(lines, fmt.Sprintf("%s: %5.1f%%", runewidth.FillRight(field, fieldPadWidth), pct))
	}

	lines = append(lines, "", "Common validation failures", rule)
	if len(reasons) > 0 {
		for _, rc := range newReasonCounter(reasons).mostCommon(g.topFailures) {
			lines = append(lines, fmt.Sprintf("%s: %d", rc.Reason, rc.Count))
		}
	} else {
		lines = append(lines, "None")
	}

	lines = append(lines, banner)

	return strings.Join(lines, "\n")
}
