package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/02loveslollipop/floatchat-dashboard/services/api/argo"
)

// Store wraps database access helpers.
type Store struct {
	pool *pgxpool.Pool
}

// New creates a Store backed by a pgx pool.
func New(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, err
	}
	return &Store{pool: pool}, nil
}

// Close releases the pool resources.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Ping checks that the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// The serial id preserves ingest order, which is the catalog's first-seen order.
const loadCatalogSQL = `
    SELECT float_id, temperature, salinity, pressure, latitude, longitude, measured_on
    FROM floatchat.measurements
    ORDER BY id
`

// LoadCatalog reads every stored measurement into an immutable catalog.
func (s *Store) LoadCatalog(ctx context.Context) (*argo.Catalog, error) {
	rows, err := s.pool.Query(ctx, loadCatalogSQL)
	if err != nil {
		return nil, fmt.Errorf("query measurements: %w", err)
	}
	defer rows.Close()

	records := make([]argo.Measurement, 0)
	for rows.Next() {
		var m argo.Measurement
		var measuredOn time.Time
		if err := rows.Scan(
			&m.FloatID,
			&m.Temperature,
			&m.Salinity,
			&m.Pressure,
			&m.Latitude,
			&m.Longitude,
			&measuredOn,
		); err != nil {
			return nil, fmt.Errorf("scan measurement: %w", err)
		}
		m.Date = time.Date(measuredOn.Year(), measuredOn.Month(), measuredOn.Day(), 0, 0, 0, 0, time.UTC)
		records = append(records, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return argo.NewCatalog(records), nil
}
