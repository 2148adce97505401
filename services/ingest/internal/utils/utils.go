package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/02loveslollipop/floatchat-dashboard/services/ingest/internal/models"
)

// DateLayout is the only accepted measurement date format.
const DateLayout = "2006-01-02"

// missingSentinel is the lower fill value used by older exports.
const missingSentinel = -999

// NormalizeValue cleans a raw value; NaN and fill values -> nil.
func NormalizeValue(v *float64, fillThreshold float64) *float64 {
	if v == nil {
		return nil
	}
	if math.IsNaN(*v) || *v >= fillThreshold || *v <= missingSentinel {
		return nil
	}
	val := *v
	return &val
}

// BuildMeasurementRows keeps complete records in source order and drops the rest.
// Duplicates on (float, date, pressure) keep the first occurrence.
func BuildMeasurementRows(records []models.Record, fillThreshold float64) ([]models.MeasurementRow, models.DropCounts) {
	rows := make([]models.MeasurementRow, 0, len(records))
	var dropped models.DropCounts
	seen := make(map[string]struct{}, len(records))

	for _, rec := range records {
		id, err := strconv.ParseInt(strings.TrimSpace(rec.FloatID.String()), 10, 64)
		if err != nil || id <= 0 {
			dropped.FloatID++
			continue
		}

		raw := []*float64{rec.Temperature, rec.Salinity, rec.Pressure, rec.Latitude, rec.Longitude}
		values := make([]float64, 0, len(raw))
		missing, fill := false, false
		for _, v := range raw {
			if v == nil {
				missing = true
				break
			}
			n := NormalizeValue(v, fillThreshold)
			if n == nil {
				fill = true
				break
			}
			values = append(values, *n)
		}
		if missing {
			dropped.Missing++
			continue
		}
		if fill {
			dropped.FillValue++
			continue
		}

		day, err := time.Parse(DateLayout, strings.TrimSpace(rec.Date))
		if err != nil {
			dropped.Date++
			continue
		}

		row := models.MeasurementRow{
			FloatID:     id,
			Temperature: values[0],
			Salinity:    values[1],
			Pressure:    values[2],
			Latitude:    values[3],
			Longitude:   values[4],
			MeasuredOn:  day,
		}
		key := fmt.Sprintf("%d|%s|%g", row.FloatID, day.Format(DateLayout), row.Pressure)
		if _, ok := seen[key]; ok {
			dropped.Duplicate++
			continue
		}
		seen[key] = struct{}{}
		rows = append(rows, row)
	}

	return rows, dropped
}

// BuildFloatRows summarizes measurement rows per float, in first-seen order.
func BuildFloatRows(rows []models.MeasurementRow) []models.FloatRow {
	index := make(map[int64]int)
	floats := make([]models.FloatRow, 0)
	for _, r := range rows {
		i, ok := index[r.FloatID]
		if !ok {
			index[r.FloatID] = len(floats)
			floats = append(floats, models.FloatRow{
				ID:        r.FloatID,
				FirstSeen: r.MeasuredOn,
				LastSeen:  r.MeasuredOn,
				Records:   1,
			})
			continue
		}
		f := &floats[i]
		if r.MeasuredOn.Before(f.FirstSeen) {
			f.FirstSeen = r.MeasuredOn
		}
		if r.MeasuredOn.After(f.LastSeen) {
			f.LastSeen = r.MeasuredOn
		}
		f.Records++
	}
	return floats
}

// FloatIDs extracts float identifiers from float rows.
func FloatIDs(rows []models.FloatRow) []int64 {
	ids := make([]int64, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}
	return ids
}
