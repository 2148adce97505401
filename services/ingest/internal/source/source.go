package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/02loveslollipop/floatchat-dashboard/services/ingest/internal/models"
)

// IsURL reports whether location should be fetched over HTTP.
func IsURL(location string) bool {
	return strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://")
}

// Load reads float records from an HTTP(S) URL or a local file.
func Load(ctx context.Context, client *http.Client, location string) ([]models.Record, error) {
	if IsURL(location) {
		return Fetch(ctx, client, location)
	}

	f, err := os.Open(location)
	if err != nil {
		return nil, fmt.Errorf("open source: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Fetch retrieves a float export from url.
func Fetch(ctx context.Context, client *http.Client, url string) ([]models.Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request float export: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}

	return Decode(resp.Body)
}

// Decode parses a JSON array of float records.
func Decode(r io.Reader) ([]models.Record, error) {
	var records []models.Record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode payload: %w", err)
	}
	return records, nil
}
