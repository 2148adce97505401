package argo

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// DateLayout is the wire format of a measurement date.
const DateLayout = "2006-01-02"

// Measurement is a single float observation. Values are never mutated once decoded.
type Measurement struct {
	FloatID     int64
	Temperature float64
	Salinity    float64
	Pressure    float64
	Latitude    float64
	Longitude   float64
	Date        time.Time
}

// wireMeasurement mirrors the upstream JSON shape.
type wireMeasurement struct {
	FloatID     int64   `json:"FLOAT_ID"`
	Temperature float64 `json:"TEMP"`
	Salinity    float64 `json:"PSAL"`
	Pressure    float64 `json:"PRES"`
	Latitude    float64 `json:"LAT"`
	Longitude   float64 `json:"LON"`
	Date        string  `json:"DATE"`
}

// FloatIDText renders the float identifier the way users type it.
func (m Measurement) FloatIDText() string {
	return strconv.FormatInt(m.FloatID, 10)
}

// DateText returns the measurement date as YYYY-MM-DD.
func (m Measurement) DateText() string {
	return m.Date.Format(DateLayout)
}

// MarshalJSON encodes the measurement in the upstream shape.
func (m Measurement) MarshalJSON() ([]byte, error) {
	return json.Marshal(wireMeasurement{
		FloatID:     m.FloatID,
		Temperature: m.Temperature,
		Salinity:    m.Salinity,
		Pressure:    m.Pressure,
		Latitude:    m.Latitude,
		Longitude:   m.Longitude,
		Date:        m.DateText(),
	})
}

// UnmarshalJSON decodes the upstream shape and parses DATE.
func (m *Measurement) UnmarshalJSON(data []byte) error {
	var w wireMeasurement
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	date, err := ParseDate(w.Date)
	if err != nil {
		return fmt.Errorf("float %d: %w", w.FloatID, err)
	}
	*m = Measurement{
		FloatID:     w.FloatID,
		Temperature: w.Temperature,
		Salinity:    w.Salinity,
		Pressure:    w.Pressure,
		Latitude:    w.Latitude,
		Longitude:   w.Longitude,
		Date:        date,
	}
	return nil
}

// ParseDate parses a YYYY-MM-DD date as UTC midnight.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return t.UTC(), nil
}
