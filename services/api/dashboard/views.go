package dashboard

import (
	"time"

	"github.com/02loveslollipop/floatchat-dashboard/services/api/argo"
)

// NotApplicable is shown in place of a statistic of an empty subset.
const NotApplicable = "N/A"

// displayDateLayout matches the long en-US form used by the stats bar.
const displayDateLayout = "January 2, 2006"

// State is the filter state of a session.
type State string

const (
	Unfiltered State = "unfiltered"
	Filtered   State = "filtered"
)

// Stats feeds the stats bar.
type Stats struct {
	ActiveFloats       int       `json:"active_floats"`
	DataPoints         int       `json:"data_points"`
	AvgTemperature     *float64  `json:"avg_temperature,omitempty"`
	AvgTemperatureText string    `json:"avg_temperature_text"`
	AvgSalinity        *float64  `json:"avg_salinity,omitempty"`
	AvgSalinityText    string    `json:"avg_salinity_text"`
	DateFrom           string    `json:"date_from"`
	DateTo             string    `json:"date_to"`
	RefreshedAt        time.Time `json:"refreshed_at"`
}

// LabeledValue is one category-axis sample.
type LabeledValue struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// TimeSeries feeds the main line chart.
type TimeSeries struct {
	Label     string         `json:"label"`
	Unit      string         `json:"unit"`
	AxisTitle string         `json:"axis_title"`
	Points    []LabeledValue `json:"points"`
}

// Position is a longitude/latitude pair.
type Position struct {
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
}

// TrajectorySeries is the track of one float.
type TrajectorySeries struct {
	FloatID int64      `json:"float_id"`
	Label   string     `json:"label"`
	Color   string     `json:"color"`
	Points  []Position `json:"points"`
}

// Trajectories feeds the position scatter plot.
type Trajectories struct {
	Title  string             `json:"title"`
	Series []TrajectorySeries `json:"series"`
}

// Bar is the per-float mean shown in the comparative chart.
type Bar struct {
	FloatID int64   `json:"float_id"`
	Label   string  `json:"label"`
	Color   string  `json:"color"`
	Value   float64 `json:"value"`
}

// Comparative feeds the per-float bar chart.
type Comparative struct {
	Title     string `json:"title"`
	AxisTitle string `json:"axis_title"`
	Bars      []Bar  `json:"bars"`
}

// Views is everything the rendering side needs after one synchronization pass.
type Views struct {
	State              State          `json:"state"`
	Parameter          argo.Parameter `json:"parameter"`
	Filter             []string       `json:"filter"`
	Stats              Stats          `json:"stats"`
	TimeSeries         TimeSeries     `json:"time_series"`
	Trajectories       Trajectories   `json:"trajectories"`
	ComparativeVisible bool           `json:"comparative_visible"`
	Comparative        *Comparative   `json:"comparative,omitempty"`
}
