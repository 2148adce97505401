package aggregate

import (
	"time"

	"github.com/02loveslollipop/floatchat-dashboard/services/api/argo"
)

// DateRange is the inclusive span of measurement dates in a subset.
type DateRange struct {
	From time.Time
	To   time.Time
}

// SeriesPoint is one time-series sample of the selected parameter.
type SeriesPoint struct {
	Date  time.Time
	Value float64
}

// Result holds the statistics of one subset for one parameter. Nil pointers mean "not applicable".
type Result struct {
	Parameter       argo.Parameter
	Count           int
	FloatIDs        []int64
	ActiveFloats    int
	MeanTemperature *float64
	MeanSalinity    *float64
	DateRange       *DateRange
	Series          []SeriesPoint
	Groups          map[int64][]argo.Measurement
	GroupMeans      map[int64]float64
}

// Summarize computes overall and per-float statistics of subset for p.
// p must be valid.
func Summarize(subset []argo.Measurement, p argo.Parameter) Result {
	res := Result{
		Parameter:  p,
		Count:      len(subset),
		FloatIDs:   make([]int64, 0),
		Series:     make([]SeriesPoint, 0, len(subset)),
		Groups:     make(map[int64][]argo.Measurement),
		GroupMeans: make(map[int64]float64),
	}

	var sumTemp, sumSal float64
	for i, m := range subset {
		if _, ok := res.Groups[m.FloatID]; !ok {
			res.FloatIDs = append(res.FloatIDs, m.FloatID)
		}
		res.Groups[m.FloatID] = append(res.Groups[m.FloatID], m)
		res.Series = append(res.Series, SeriesPoint{Date: m.Date, Value: p.Value(m)})

		sumTemp += m.Temperature
		sumSal += m.Salinity

		if i == 0 {
			res.DateRange = &DateRange{From: m.Date, To: m.Date}
			continue
		}
		if m.Date.Before(res.DateRange.From) {
			res.DateRange.From = m.Date
		}
		if m.Date.After(res.DateRange.To) {
			res.DateRange.To = m.Date
		}
	}
	res.ActiveFloats = len(res.FloatIDs)

	if res.Count > 0 {
		meanTemp := sumTemp / float64(res.Count)
		meanSal := sumSal / float64(res.Count)
		res.MeanTemperature = &meanTemp
		res.MeanSalinity = &meanSal
	}

	for id, group := range res.Groups {
		var sum float64
		for _, m := range group {
			sum += p.Value(m)
		}
		res.GroupMeans[id] = sum / float64(len(group))
	}
	return res
}
