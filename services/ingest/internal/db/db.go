package db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/02loveslollipop/floatchat-dashboard/services/ingest/internal/models"
)

// The API reads measurements ORDER BY id, so the serial id preserves source order.
const schemaDDL = `
CREATE SCHEMA IF NOT EXISTS floatchat;

CREATE TABLE IF NOT EXISTS floatchat.floats (
    float_id     BIGINT PRIMARY KEY,
    first_seen   DATE NOT NULL,
    last_seen    DATE NOT NULL,
    record_count INTEGER NOT NULL DEFAULT 0,
    created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS floatchat.measurements (
    id          BIGSERIAL PRIMARY KEY,
    float_id    BIGINT NOT NULL REFERENCES floatchat.floats (float_id),
    temperature DOUBLE PRECISION NOT NULL,
    salinity    DOUBLE PRECISION NOT NULL,
    pressure    DOUBLE PRECISION NOT NULL,
    latitude    DOUBLE PRECISION NOT NULL,
    longitude   DOUBLE PRECISION NOT NULL,
    measured_on DATE NOT NULL,
    ingested_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    UNIQUE (float_id, measured_on, pressure)
);`

// EnsureSchema creates the floatchat schema and tables when missing.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, schemaDDL)
	return err
}

// UpsertFloats inserts/updates float metadata records.
func UpsertFloats(ctx context.Context, pool *pgxpool.Pool, floats []models.FloatRow) error {
	if len(floats) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	query := `INSERT INTO floatchat.floats (float_id, first_seen, last_seen, record_count, created_at, updated_at)
VALUES ($1,$2,$3,$4,NOW(),NOW())
ON CONFLICT (float_id) DO UPDATE
SET first_seen = LEAST(floatchat.floats.first_seen, EXCLUDED.first_seen),
    last_seen = GREATEST(floatchat.floats.last_seen, EXCLUDED.last_seen),
    updated_at = NOW()`

	for _, f := range floats {
		batch.Queue(query, f.ID, f.FirstSeen, f.LastSeen, f.Records)
	}

	res := pool.SendBatch(ctx, batch)
	defer res.Close()

	for range floats {
		if _, err := res.Exec(); err != nil {
			return err
		}
	}

	return nil
}

// InsertMeasurements writes measurement rows, skipping ones already stored.
// It returns the number of rows actually inserted.
func InsertMeasurements(ctx context.Context, pool *pgxpool.Pool, rows []models.MeasurementRow) (int64, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	query := `INSERT INTO floatchat.measurements (float_id, temperature, salinity, pressure, latitude, longitude, measured_on, ingested_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,NOW())
ON CONFLICT (float_id, measured_on, pressure) DO NOTHING`

	for _, m := range rows {
		batch.Queue(query, m.FloatID, m.Temperature, m.Salinity, m.Pressure, m.Latitude, m.Longitude, m.MeasuredOn)
	}

	res := pool.SendBatch(ctx, batch)
	defer res.Close()

	var inserted int64
	for range rows {
		tag, err := res.Exec()
		if err != nil {
			return inserted, err
		}
		inserted += tag.RowsAffected()
	}

	return inserted, nil
}

// RefreshRecordCounts recomputes floats.record_count from stored measurements.
func RefreshRecordCounts(ctx context.Context, pool *pgxpool.Pool, floatIDs []int64) error {
	if len(floatIDs) == 0 {
		return nil
	}
	_, err := pool.Exec(ctx, `
UPDATE floatchat.floats f
SET record_count = (SELECT COUNT(*) FROM floatchat.measurements m WHERE m.float_id = f.float_id),
    updated_at = NOW()
WHERE f.float_id = ANY($1)`, floatIDs)
	return err
}
