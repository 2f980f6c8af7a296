// Package ingestion loads job descriptions from local files and web pages.
package ingestion

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const (
	fetchTimeout = 20 * time.Second
	userAgent    = "resume-screener/1.0"

	// maxBodyBytes bounds how much of a response we are willing to read.
	maxBodyBytes = 4 << 20
)

// FetchError describes a failure to retrieve or parse a job posting URL.
type FetchError struct {
	URL     string
	Message string
	Cause   error
}

func (e *FetchError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fetch %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("fetch %s: %s", e.URL, e.Message)
}

func (e *FetchError) Unwrap() error {
	return e.Cause
}

// FromFile reads a job description from a plain-text file.
func FromFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read job description file: %w", err)
	}
	return cleanWhitespace(string(data)), nil
}

// FromURL downloads a job posting page and extracts its readable text.
// Navigation, scripts and other page chrome are stripped before extraction.
func FromURL(ctx context.Context, rawURL string) (string, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return "", &FetchError{URL: rawURL, Message: "invalid URL", Cause: err}
	}

	client := &http.Client{Timeout: fetchTimeout}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", &FetchError{URL: rawURL, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := client.Do(req)
	if err != nil {
		return "", &FetchError{URL: rawURL, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", &FetchError{URL: rawURL, Message: fmt.Sprintf("HTTP status %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", &FetchError{URL: rawURL, Message: "failed to read response body", Cause: err}
	}

	text, err := extractText(string(body))
	if err != nil {
		return "", &FetchError{URL: rawURL, Message: "failed to parse HTML", Cause: err}
	}
	if text == "" {
		return "", &FetchError{URL: rawURL, Message: "page contains no readable text"}
	}
	return text, nil
}

// extractText parses HTML and returns the visible text of the main content,
// preferring job-posting containers and falling back to the whole body.
func extractText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", err
	}

	doc.Find("nav, footer, header, script, style, noscript, .ad, .sidebar, .cookie-banner").Remove()

	var content *goquery.Selection
	for _, selector := range []string{".job-description", "#job-description", "main", "article"} {
		if sel := doc.Find(selector); sel.Length() > 0 {
			content = sel.First()
			break
		}
	}
	if content == nil {
		content = doc.Find("body")
	}

	return cleanWhitespace(content.Text()), nil
}

// cleanWhitespace collapses runs of whitespace inside lines and drops blank
// lines, keeping the text compact for token-based matching.
func cleanWhitespace(s string) string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.Join(strings.Fields(line), " ")
		if line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}
