package dashboard

import (
	"fmt"
	"time"

	"github.com/02loveslollipop/floatchat-dashboard/services/api/aggregate"
	"github.com/02loveslollipop/floatchat-dashboard/services/api/argo"
	"github.com/02loveslollipop/floatchat-dashboard/services/api/filter"
	"github.com/02loveslollipop/floatchat-dashboard/services/api/palette"
)

// Synchronizer derives every view from a catalog, a filter and a parameter.
// It holds no mutable state and is safe for concurrent use.
type Synchronizer struct {
	catalog *argo.Catalog
	colors  *palette.Assigner
	now     func() time.Time
}

// Option configures a Synchronizer.
type Option func(*Synchronizer)

// WithClock overrides the clock used for Stats.RefreshedAt.
func WithClock(now func() time.Time) Option {
	return func(s *Synchronizer) { s.now = now }
}

// NewSynchronizer binds a catalog to a palette. Colors are assigned once, from the whole catalog.
func NewSynchronizer(catalog *argo.Catalog, p palette.Palette, opts ...Option) *Synchronizer {
	s := &Synchronizer{
		catalog: catalog,
		colors:  palette.New(catalog.FloatIDs(), p),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Catalog returns the bound catalog.
func (s *Synchronizer) Catalog() *argo.Catalog { return s.catalog }

// ColorFor returns the session color of a float.
func (s *Synchronizer) ColorFor(id int64) string { return s.colors.ColorFor(id) }

// Synchronize runs one pass: filter, aggregate, then shape each view.
func (s *Synchronizer) Synchronize(set filter.Set, p argo.Parameter) (Views, error) {
	if !p.Valid() {
		return Views{}, fmt.Errorf("%w: %q", argo.ErrInvalidParameter, string(p))
	}

	subset := filter.Apply(s.catalog.Records(), set)
	agg := aggregate.Summarize(subset, p)

	state := Unfiltered
	if !set.Empty() {
		state = Filtered
	}

	v := Views{
		State:              state,
		Parameter:          p,
		Filter:             set.Strings(),
		Stats:              s.stats(agg),
		TimeSeries:         timeSeries(agg),
		Trajectories:       s.trajectories(agg),
		ComparativeVisible: agg.ActiveFloats > 1,
	}
	if v.ComparativeVisible {
		c := s.comparative(agg)
		v.Comparative = &c
	}
	return v, nil
}

func (s *Synchronizer) stats(agg aggregate.Result) Stats {
	st := Stats{
		ActiveFloats:       agg.ActiveFloats,
		DataPoints:         agg.Count,
		AvgTemperature:     agg.MeanTemperature,
		AvgTemperatureText: NotApplicable,
		AvgSalinity:        agg.MeanSalinity,
		AvgSalinityText:    NotApplicable,
		DateFrom:           NotApplicable,
		DateTo:             NotApplicable,
		RefreshedAt:        s.now(),
	}
	if agg.MeanTemperature != nil {
		st.AvgTemperatureText = fmt.Sprintf("%.1f°C", *agg.MeanTemperature)
	}
	if agg.MeanSalinity != nil {
		st.AvgSalinityText = fmt.Sprintf("%.1f", *agg.MeanSalinity)
	}
	if agg.DateRange != nil {
		st.DateFrom = agg.DateRange.From.Format(displayDateLayout)
		st.DateTo = agg.DateRange.To.Format(displayDateLayout)
	}
	return st
}

func timeSeries(agg aggregate.Result) TimeSeries {
	cfg := agg.Parameter.Config()
	ts := TimeSeries{
		Label:     cfg.Label,
		Unit:      cfg.Unit,
		AxisTitle: fmt.Sprintf("%s (%s)", cfg.Label, cfg.Unit),
		Points:    make([]LabeledValue, 0, len(agg.Series)),
	}
	for _, pt := range agg.Series {
		ts.Points = append(ts.Points, LabeledValue{Label: pt.Date.Format(argo.DateLayout), Value: pt.Value})
	}
	return ts
}

func (s *Synchronizer) trajectories(agg aggregate.Result) Trajectories {
	tr := Trajectories{
		Title:  "Float Positions",
		Series: make([]TrajectorySeries, 0, len(agg.FloatIDs)),
	}
	for _, id := range agg.FloatIDs {
		group := agg.Groups[id]
		points := make([]Position, 0, len(group))
		for _, m := range group {
			points = append(points, Position{Lon: m.Longitude, Lat: m.Latitude})
		}
		tr.Series = append(tr.Series, TrajectorySeries{
			FloatID: id,
			Label:   FloatLabel(id),
			Color:   s.colors.ColorFor(id),
			Points:  points,
		})
	}
	return tr
}

func (s *Synchronizer) comparative(agg aggregate.Result) Comparative {
	cfg := agg.Parameter.Config()
	c := Comparative{
		Title:     fmt.Sprintf("Average %s by Float", cfg.Label),
		AxisTitle: fmt.Sprintf("Average %s (%s)", cfg.Label, cfg.Unit),
		Bars:      make([]Bar, 0, len(agg.FloatIDs)),
	}
	for _, id := range agg.FloatIDs {
		c.Bars = append(c.Bars, Bar{
			FloatID: id,
			Label:   FloatLabel(id),
			Color:   s.colors.ColorFor(id),
			Value:   agg.GroupMeans[id],
		})
	}
	return c
}

// FloatLabel is the display name of a float.
func FloatLabel(id int64) string {
	return fmt.Sprintf("Float %d", id)
}
