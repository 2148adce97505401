package argo

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
)

// Catalog is the immutable measurement collection of a session.
type Catalog struct {
	records  []Measurement
	floatIDs []int64
}

// NewCatalog copies records into a catalog and discovers its float ids in first-seen order.
func NewCatalog(records []Measurement) *Catalog {
	c := &Catalog{records: make([]Measurement, len(records))}
	copy(c.records, records)

	seen := make(map[int64]struct{}, len(records))
	for _, m := range c.records {
		if _, ok := seen[m.FloatID]; ok {
			continue
		}
		seen[m.FloatID] = struct{}{}
		c.floatIDs = append(c.floatIDs, m.FloatID)
	}
	return c
}

// DecodeCatalog reads a JSON array of measurements.
func DecodeCatalog(r io.Reader) (*Catalog, error) {
	var records []Measurement
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return NewCatalog(records), nil
}

// LoadCatalogFile reads a catalog from a JSON file.
func LoadCatalogFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	return DecodeCatalog(f)
}

// Len returns the number of records.
func (c *Catalog) Len() int { return len(c.records) }

// Records returns a copy of the records in catalog order.
func (c *Catalog) Records() []Measurement {
	out := make([]Measurement, len(c.records))
	copy(out, c.records)
	return out
}

// FloatIDs returns the distinct float ids in first-seen order.
func (c *Catalog) FloatIDs() []int64 {
	out := make([]int64, len(c.floatIDs))
	copy(out, c.floatIDs)
	return out
}

// RecordCounts returns the number of records per float.
func (c *Catalog) RecordCounts() map[int64]int {
	counts := make(map[int64]int, len(c.floatIDs))
	for _, m := range c.records {
		counts[m.FloatID]++
	}
	return counts
}

// Chronological returns a new catalog stably sorted by date.
// Float ids are rediscovered, so first-seen order may change.
func (c *Catalog) Chronological() *Catalog {
	records := c.Records()
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Date.Before(records[j].Date)
	})
	return NewCatalog(records)
}
