package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/02loveslollipop/floatchat-dashboard/services/ingest/internal/config"
	"github.com/02loveslollipop/floatchat-dashboard/services/ingest/internal/db"
	"github.com/02loveslollipop/floatchat-dashboard/services/ingest/internal/source"
	"github.com/02loveslollipop/floatchat-dashboard/services/ingest/internal/utils"
)

var log = logrus.New()

func main() {
	log.SetOutput(os.Stdout)
	log.SetFormatter(&logrus.JSONFormatter{})

	if err := run(); err != nil {
		log.Fatalf("ingest failed: %v", err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log.SetLevel(cfg.LogLevel)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.RequestTimeout+30*time.Second)
	defer cancel()

	client := &http.Client{Timeout: cfg.RequestTimeout}

	records, err := source.Load(ctx, client, cfg.Source)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{"source": cfg.Source, "records": len(records)}).Info("loaded float export")

	rows, dropped := utils.BuildMeasurementRows(records, cfg.FillValueThreshold)
	floats := utils.BuildFloatRows(rows)
	log.WithFields(logrus.Fields{
		"kept":            len(rows),
		"floats":          len(floats),
		"dropped_id":      dropped.FloatID,
		"dropped_missing": dropped.Missing,
		"dropped_fill":    dropped.FillValue,
		"dropped_date":    dropped.Date,
		"dropped_dup":     dropped.Duplicate,
		"dropped_total":   dropped.Total(),
	}).Info("cleaned records")

	if len(rows) == 0 {
		log.Info("no measurements to insert")
		return nil
	}

	if cfg.DryRun {
		for _, r := range rows {
			log.Debugf("dry-run: would insert float=%d date=%s temp=%.3f psal=%.3f pres=%.3f",
				r.FloatID, r.MeasuredOn.Format(utils.DateLayout), r.Temperature, r.Salinity, r.Pressure)
		}
		log.Infof("dry-run: skipping upsert of %d floats and %d measurements", len(floats), len(rows))
		return nil
	}

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := db.EnsureSchema(ctx, pool); err != nil {
		return err
	}
	if err := db.UpsertFloats(ctx, pool, floats); err != nil {
		return err
	}

	inserted, err := db.InsertMeasurements(ctx, pool, rows)
	if err != nil {
		return err
	}
	if err := db.RefreshRecordCounts(ctx, pool, utils.FloatIDs(floats)); err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"inserted": inserted,
		"skipped":  int64(len(rows)) - inserted,
	}).Info("ingest complete")
	return nil
}
