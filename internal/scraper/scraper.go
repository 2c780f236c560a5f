// Package scraper fetches single Wikipedia articles as raw records.
package scraper

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"scrubber/internal/config"
	"scrubber/internal/models"
	"scrubber/internal/normalizer"
	"scrubber/pkg/utils"
)

// Scraping errors.
var (
	ErrUnsupportedHost      = errors.New("only en.wikipedia.org URLs are supported")
	ErrNotArticlePath       = errors.New("article URL path must start with /wiki/")
	ErrUnexpectedStatusCode = errors.New("unexpected status code")
)

// summaryEndpoint serves the article summary for a title.
const summaryEndpoint = "https://en.wikipedia.org/api/rest_v1/page/summary/"

// FetchMetrics describes one fetch for logging.
type FetchMetrics struct {
	URL        string
	StatusCode int
	Bytes      int
	Duration   time.Duration
}

// articleSummary is the subset of the summary payload the record needs.
type articleSummary struct {
	Title       string `json:"title"`
	Extract     string `json:"extract"`
	ContentURLs struct {
		Desktop struct {
			Page string `json:"page"`
		} `json:"desktop"`
	} `json:"content_urls"`
}

// Scraper fetches article summaries over HTTP. It performs a single
// attempt per article with a fixed timeout.
type Scraper struct {
	client   *http.Client
	cfg      config.ScraperConfig
	endpoint string
}

// NewScraper creates a scraper with the configured timeout.
func NewScraper(cfg config.ScraperConfig) *Scraper {
	return NewScraperWithEndpoint(cfg, summaryEndpoint)
}

// NewScraperWithEndpoint creates a scraper that fetches summaries from a
// custom endpoint.
func NewScraperWithEndpoint(cfg config.ScraperConfig, endpoint string) *Scraper {
	return &Scraper{
		client: &http.Client{
			Timeout: cfg.GetTimeout(),
		},
		cfg:      cfg,
		endpoint: endpoint,
	}
}

// ScrapeArticle fetches one article summary and maps it onto a raw
// record shaped like file input. Only en.wikipedia.org article URLs are
// accepted. Metrics are returned whenever a response was received, even
// on error.
func (s *Scraper) ScrapeArticle(articleURL string) (models.Record, *FetchMetrics, error) {
	title, err := articleTitle(articleURL)
	if err != nil {
		return nil, nil, err
	}

	summary, metrics, err := s.fetchSummary(s.endpoint + escapeTitle(title))
	if err != nil {
		return nil, metrics, err
	}

	return buildRecord(summary, title, articleURL), metrics, nil
}

// articleTitle validates an article URL and extracts the title from its
// path.
func articleTitle(articleURL string) (string, error) {
	u, err := url.Parse(articleURL)
	if err != nil {
		return "", fmt.Errorf("invalid article URL: %w", err)
	}

	if u.Host != "en.wikipedia.org" && u.Host != "www.en.wikipedia.org" {
		return "", fmt.Errorf("%w, got host %q", ErrUnsupportedHost, u.Host)
	}

	if !strings.HasPrefix(u.Path, "/wiki/") {
		return "", fmt.Errorf("%w, got path %q", ErrNotArticlePath, u.Path)
	}

	return strings.TrimPrefix(u.Path, "/wiki/"), nil
}

// escapeTitle percent-encodes a title for the summary endpoint. Slashes
// are part of the article name and stay as segment separators.
func escapeTitle(title string) string {
	segments := strings.Split(title, "/")
	for i, segment := range segments {
		segments[i] = url.PathEscape(segment)
	}

	return strings.Join(segments, "/")
}

func (s *Scraper) fetchSummary(apiURL string) (*articleSummary, *FetchMetrics, error) {
	startTime := time.Now()

	req, err := http.NewRequest(http.MethodGet, apiURL, http.NoBody)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header = utils.NewHTTPHelper().BuildHeaders(s.cfg.UserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	metrics := &FetchMetrics{
		URL:        apiURL,
		StatusCode: resp.StatusCode,
		Duration:   time.Since(startTime),
	}

	if resp.StatusCode != http.StatusOK {
		return nil, metrics, fmt.Errorf("%w: %d", ErrUnexpectedStatusCode, resp.StatusCode)
	}

	// Read with buffer limit
	body, err := io.ReadAll(io.LimitReader(resp.Body, s.cfg.GetMaxBodyBytes()))
	if err != nil {
		return nil, metrics, fmt.Errorf("failed to read response body: %w", err)
	}

	metrics.Bytes = len(body)
	metrics.Duration = time.Since(startTime)

	var summary articleSummary
	if err := json.Unmarshal(body, &summary); err != nil {
		return nil, metrics, fmt.Errorf("failed to parse summary JSON: %w", err)
	}

	return &summary, metrics, nil
}

// buildRecord maps a summary onto a raw record. Missing summary fields
// fall back to values derived from the article URL.
func buildRecord(summary *articleSummary, title, articleURL string) models.Record {
	str := utils.NewStringHelper()

	return models.Record{
		models.FieldTitle:     str.FirstNonEmpty(summary.Title, strings.ReplaceAll(title, "_", " ")),
		models.FieldContent:   summary.Extract,
		models.FieldURL:       str.FirstNonEmpty(summary.ContentURLs.Desktop.Page, articleURL),
		models.FieldSource:    "wikipedia",
		models.FieldScrapedAt: normalizer.FormatISO(time.Now().UTC(), true),
		models.FieldLang:      "en",
	}
}
