package integration

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"scrubber/internal/config"
	"scrubber/internal/loader"
	"scrubber/internal/logger"
	"scrubber/internal/models"
	"scrubber/internal/output"
	"scrubber/internal/pipeline"
)

func TestPipelineFlow_RawBatch(t *testing.T) {
	// Path to fixture
	fixturePath := filepath.Join("..", "fixtures", "raw_records.json")

	// 1. Ingestion (Loader)
	records, err := loader.LoadRecords(fixturePath)
	if err != nil {
		t.Fatalf("LoadRecords failed: %v", err)
	}

	if len(records) != 6 {
		t.Fatalf("Expected 6 records, got %d", len(records))
	}

	// The non-object element becomes a placeholder record
	if records[4][models.FieldError] != "non_object_record_at_index_4" {
		t.Errorf("Expected placeholder error marker, got %v", records[4][models.FieldError])
	}

	// 2. Processing (Pipeline)
	cfg := config.DefaultConfig()
	result := pipeline.New(cfg, logger.NewLogger("error")).Run(records)

	if len(result.Cleaned) != 6 {
		t.Fatalf("Expected 6 cleaned records, got %d", len(result.Cleaned))
	}

	if len(result.Valid) != 3 {
		t.Fatalf("Expected 3 valid records, got %d", len(result.Valid))
	}

	if len(result.Invalid) != 3 {
		t.Fatalf("Expected 3 invalid records, got %d", len(result.Invalid))
	}

	// 3. Verification (cleaned values)
	first := result.Valid[0]
	if first[models.FieldTitle] != "Breaking News: Go 1.22 Released!" {
		t.Errorf("Unexpected cleaned title: %v", first[models.FieldTitle])
	}

	if first[models.FieldContent] != "The Go team & community announced the release today." {
		t.Errorf("Unexpected cleaned content: %v", first[models.FieldContent])
	}

	if first["published_at"] != "2024-02-06T10:30:00+00:00" {
		t.Errorf("Unexpected published_at: %v", first["published_at"])
	}

	if first["author"] != "Jane Doe" {
		t.Errorf("Unexpected author: %v", first["author"])
	}

	second := result.Valid[1]
	if second[models.FieldTitle] != "Go News" {
		t.Errorf("Unexpected full-width title: %v", second[models.FieldTitle])
	}

	if second[models.FieldContent] != "Full-width text becomes plain ASCII here." {
		t.Errorf("Unexpected full-width content: %v", second[models.FieldContent])
	}

	if second["timestamp"] != "2023-11-14T22:13:20+00:00" {
		t.Errorf("Unexpected epoch timestamp: %v", second["timestamp"])
	}

	third := result.Valid[2]
	if third[models.FieldTitle] != "Café & Bistro" {
		t.Errorf("Unexpected entity title: %v", third[models.FieldTitle])
	}

	if third["created_at"] != "2024-02-06" {
		t.Errorf("Unexpected created_at: %v", third["created_at"])
	}

	if third["views"] != json.Number("1234") {
		t.Errorf("Expected views to pass through untouched, got %v", third["views"])
	}

	// 4. Verification (partition and reasons)
	wantInvalid := []struct {
		index   int
		reasons []models.Reason
	}{
		{2, []models.Reason{models.MissingRequiredField(models.FieldTitle), models.ContentTooShort(10)}},
		{3, []models.Reason{models.ReasonInvalidURLFormat}},
		{4, []models.Reason{
			models.MissingRequiredField(models.FieldTitle),
			models.MissingRequiredField(models.FieldContent),
			models.MissingRequiredField(models.FieldURL),
		}},
	}

	for i, want := range wantInvalid {
		got := result.Invalid[i]
		if got.Index != want.index {
			t.Errorf("Invalid[%d].Index = %d, want %d", i, got.Index, want.index)
		}

		if len(got.Reasons) != len(want.reasons) {
			t.Fatalf("Invalid[%d] has %d reasons, want %d", i, len(got.Reasons), len(want.reasons))
		}

		for j, reason := range want.reasons {
			if got.Reasons[j] != reason {
				t.Errorf("Invalid[%d].Reasons[%d] = %q, want %q", i, j, got.Reasons[j], reason)
			}
		}
	}

	if len(result.Reasons) != 6 {
		t.Errorf("Expected 6 flat reasons, got %d", len(result.Reasons))
	}

	// 5. Verification (report)
	for _, want := range []string{
		"Data Quality Report",
		"Total records processed: 6",
		"Valid records: 3",
		"Invalid records: 3",
		"Valid rate: 50.0%",
		"title     :  66.7%",
		"content   :  83.3%",
		"url       :  83.3%",
		"missing_required_field:title: 2",
		"invalid_url_format: 1",
	} {
		if !strings.Contains(result.Report, want) {
			t.Errorf("Report missing %q", want)
		}
	}
}

func TestPipelineFlow_WriterRoundTrip(t *testing.T) {
	records, err := loader.LoadRecords(filepath.Join("..", "fixtures", "raw_records.json"))
	if err != nil {
		t.Fatalf("LoadRecords failed: %v", err)
	}

	result := pipeline.New(config.DefaultConfig(), logger.NewLogger("error")).Run(records)

	outPath := filepath.Join(t.TempDir(), "cleaned_output.json")
	if err := output.WriteRecords(outPath, result.Valid); err != nil {
		t.Fatalf("WriteRecords failed: %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}

	// Ampersands and non-ASCII text stay literal in the output file
	if !strings.Contains(string(data), "The Go team & community") {
		t.Error("Expected literal ampersand in output JSON")
	}

	if strings.Contains(string(data), `\u0026`) {
		t.Error("Expected no escaped ampersand in output JSON")
	}

	if !strings.Contains(string(data), "Café & Bistro") {
		t.Error("Expected literal non-ASCII text in output JSON")
	}

	reloaded, err := loader.LoadRecords(outPath)
	if err != nil {
		t.Fatalf("Reload failed: %v", err)
	}

	if len(reloaded) != len(result.Valid) {
		t.Fatalf("Reloaded %d records, want %d", len(reloaded), len(result.Valid))
	}

	if reloaded[0][models.FieldTitle] != result.Valid[0][models.FieldTitle] {
		t.Errorf("Reloaded title = %v, want %v", reloaded[0][models.FieldTitle], result.Valid[0][models.FieldTitle])
	}
}
