package sheet

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"
)

const (
	// DefaultSheetID is the published survey spreadsheet.
	DefaultSheetID = "1d61LeVAPxdT7Ivx5pEmNJkJYb3YMLqyKbYSPOYivk-Q"

	exportURLFormat = "https://docs.google.com/spreadsheets/d/%s/export?format=csv&gid=0"
)

// Client fetches the survey CSV export over HTTPS.
type Client struct {
	url        string
	httpClient *http.Client
}

// NewClient creates a client for a specific export URL.
func NewClient(url string) *Client {
	return &Client{
		url: url,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// NewClientFromEnv builds a client from SHEET_URL, falling back to the
// export URL of SHEET_ID (or the default sheet).
func NewClientFromEnv() *Client {
	if url := os.Getenv("SHEET_URL"); url != "" {
		return NewClient(url)
	}
	id := os.Getenv("SHEET_ID")
	if id == "" {
		id = DefaultSheetID
	}
	return NewClient(fmt.Sprintf(exportURLFormat, id))
}

// URL returns the export URL this client fetches. Used as the cache key.
func (c *Client) URL() string {
	return c.url
}

// FetchCSV downloads and parses the sheet. No retry: a failed fetch is
// reported and the load cycle ends.
func (c *Client) FetchCSV(ctx context.Context) (*Sheet, error) {
	start := time.Now()
	log.Printf("[sheet] GET %s", c.url)

	req, err := http.NewRequestWithContext(ctx, "GET", c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("[sheet] fetch error: %v", err)
		return nil, fmt.Errorf("fetch sheet: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("sheet export status %d", resp.StatusCode)
		log.Printf("[sheet] fetch error: %v", err)
		return nil, err
	}

	s, err := Parse(resp.Body)
	if err != nil {
		log.Printf("[sheet] parse error: %v", err)
		return nil, fmt.Errorf("parse sheet: %w", err)
	}

	log.Printf("[sheet] response status=%d duration=%dms rows=%d",
		resp.StatusCode, time.Since(start).Milliseconds(), len(s.Rows))
	return s, nil
}
