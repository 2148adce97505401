package models

import (
	"encoding/json"
	"time"
)

// Record is one entry of a float export. Numeric fields are nullable in the source.
type Record struct {
	FloatID     json.Number `json:"FLOAT_ID"`
	Temperature *float64    `json:"TEMP"`
	Salinity    *float64    `json:"PSAL"`
	Pressure    *float64    `json:"PRES"`
	Latitude    *float64    `json:"LAT"`
	Longitude   *float64    `json:"LON"`
	Date        string      `json:"DATE"`
}

// FloatRow captures per-float metadata for the floats table.
type FloatRow struct {
	ID        int64
	FirstSeen time.Time
	LastSeen  time.Time
	Records   int
}

// MeasurementRow is a cleaned record ready for insertion.
type MeasurementRow struct {
	FloatID     int64
	Temperature float64
	Salinity    float64
	Pressure    float64
	Latitude    float64
	Longitude   float64
	MeasuredOn  time.Time
}

// DropCounts tallies the records rejected while cleaning, by reason.
type DropCounts struct {
	FloatID   int
	Missing   int
	FillValue int
	Date      int
	Duplicate int
}

// Total returns the number of dropped records.
func (d DropCounts) Total() int {
	return d.FloatID + d.Missing + d.FillValue + d.Date + d.Duplicate
}
