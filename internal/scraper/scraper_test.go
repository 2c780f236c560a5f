package scraper

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"scrubber/internal/config"
)

func testConfig() config.ScraperConfig {
	return config.ScraperConfig{
		UserAgent:  "scrubber-test/1.0",
		TimeoutSec: 5,
		MaxBodyKb:  64,
	}
}

func TestArticleTitle(t *testing.T) {
	tests := []struct {
		name        string
		url         string
		expected    string
		expectError error
	}{
		{
			name:     "plain article",
			url:      "https://en.wikipedia.org/wiki/Go_(programming_language)",
			expected: "Go_(programming_language)",
		},
		{
			name:     "www host",
			url:      "https://www.en.wikipedia.org/wiki/Data_cleansing",
			expected: "Data_cleansing",
		},
		{
			name:     "title with slash",
			url:      "https://en.wikipedia.org/wiki/AS/400",
			expected: "AS/400",
		},
		{
			name:        "foreign language host",
			url:         "https://de.wikipedia.org/wiki/Go",
			expectError: ErrUnsupportedHost,
		},
		{
			name:        "unrelated host",
			url:         "https://example.com/wiki/Go",
			expectError: ErrUnsupportedHost,
		},
		{
			name:        "non-article path",
			url:         "https://en.wikipedia.org/w/index.php?title=Go",
			expectError: ErrNotArticlePath,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			title, err := articleTitle(tt.url)

			if tt.expectError != nil {
				if !errors.Is(err, tt.expectError) {
					t.Fatalf("Expected error %v, got %v", tt.expectError, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("articleTitle failed: %v", err)
			}
			if title != tt.expected {
				t.Errorf("articleTitle = %q, want %q", title, tt.expected)
			}
		})
	}
}

func TestEscapeTitle(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		expected string
	}{
		{"ascii", "Data_cleansing", "Data_cleansing"},
		{"slash preserved", "AS/400", "AS/400"},
		{"non-ascii escaped", "Café", "Caf%C3%A9"},
		{"space escaped", "A B", "A%20B"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := escapeTitle(tt.title); got != tt.expected {
				t.Errorf("escapeTitle(%q) = %q, want %q", tt.title, got, tt.expected)
			}
		})
	}
}

func TestFetchSummary(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("User-Agent"); got != "scrubber-test/1.0" {
			t.Errorf("User-Agent = %q, want %q", got, "scrubber-test/1.0")
		}
		if got := r.Header.Get("Accept"); got != "application/json" {
			t.Errorf("Accept = %q, want %q", got, "application/json")
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"title": "Data cleansing",
			"extract": "Data cleansing is the process of fixing data.",
			"content_urls": {"desktop": {"page": "https://en.wikipedia.org/wiki/Data_cleansing"}}
		}`))
	}))
	defer server.Close()

	s := NewScraper(testConfig())

	summary, metrics, err := s.fetchSummary(server.URL)
	if err != nil {
		t.Fatalf("fetchSummary failed: %v", err)
	}

	if summary.Title != "Data cleansing" {
		t.Errorf("Title = %q, want %q", summary.Title, "Data cleansing")
	}
	if summary.ContentURLs.Desktop.Page != "https://en.wikipedia.org/wiki/Data_cleansing" {
		t.Errorf("Desktop page = %q", summary.ContentURLs.Desktop.Page)
	}

	if metrics == nil {
		t.Fatal("Expected metrics, got nil")
	}
	if metrics.StatusCode != http.StatusOK {
		t.Errorf("StatusCode = %d, want 200", metrics.StatusCode)
	}
	if metrics.Bytes == 0 {
		t.Error("Expected nonzero byte count")
	}
}

func TestFetchSummary_UnexpectedStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer server.Close()

	s := NewScraper(testConfig())

	_, metrics, err := s.fetchSummary(server.URL)
	if !errors.Is(err, ErrUnexpectedStatusCode) {
		t.Fatalf("Expected ErrUnexpectedStatusCode, got %v", err)
	}

	if metrics == nil || metrics.StatusCode != http.StatusNotFound {
		t.Errorf("Expected metrics with status 404, got %+v", metrics)
	}
}

func TestFetchSummary_BodyLimit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Valid JSON far beyond the 1 KB cap set below; the truncated
		// read must fail to parse rather than hang or overrun.
		w.Write([]byte(`{"extract": "` + strings.Repeat("x", 4096) + `"}`))
	}))
	defer server.Close()

	cfg := testConfig()
	cfg.MaxBodyKb = 1

	s := NewScraper(cfg)

	_, metrics, err := s.fetchSummary(server.URL)
	if err == nil {
		t.Fatal("Expected parse error for truncated body, got nil")
	}

	if metrics == nil || metrics.Bytes != 1024 {
		t.Errorf("Expected exactly 1024 bytes read, got %+v", metrics)
	}
}

func TestBuildRecord(t *testing.T) {
	summary := &articleSummary{
		Title:   "Data cleansing",
		Extract: "Some extract text.",
	}
	summary.ContentURLs.Desktop.Page = "https://en.wikipedia.org/wiki/Data_cleansing"

	record := buildRecord(summary, "Data_cleansing", "https://en.wikipedia.org/wiki/Data_cleansing?x=1")

	if record["title"] != "Data cleansing" {
		t.Errorf("title = %v", record["title"])
	}
	if record["content"] != "Some extract text." {
		t.Errorf("content = %v", record["content"])
	}
	if record["url"] != "https://en.wikipedia.org/wiki/Data_cleansing" {
		t.Errorf("url = %v", record["url"])
	}
	if record["source"] != "wikipedia" {
		t.Errorf("source = %v", record["source"])
	}
	if record["lang"] != "en" {
		t.Errorf("lang = %v", record["lang"])
	}

	scrapedAt, ok := record["scraped_at"].(string)
	if !ok || !strings.HasSuffix(scrapedAt, "+00:00") {
		t.Errorf("scraped_at = %v, want UTC ISO timestamp", record["scraped_at"])
	}
}

func TestBuildRecord_Fallbacks(t *testing.T) {
	articleURL := "https://en.wikipedia.org/wiki/Data_cleansing"

	record := buildRecord(&articleSummary{}, "Data_cleansing", articleURL)

	if record["title"] != "Data cleansing" {
		t.Errorf("title = %v, want underscore-free path title", record["title"])
	}
	if record["content"] != "" {
		t.Errorf("content = %v, want empty", record["content"])
	}
	if record["url"] != articleURL {
		t.Errorf("url = %v, want input URL", record["url"])
	}
}
