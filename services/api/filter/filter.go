package filter

import (
	"fmt"
	"strings"
	"time"

	"github.com/02loveslollipop/floatchat-dashboard/services/api/argo"
)

// Predicate decides whether a measurement belongs to the working subset.
type Predicate interface {
	Match(m argo.Measurement) bool
	String() string
}

// Set is a conjunction of predicates. An empty set matches everything.
type Set []Predicate

// Input is the raw filter form as typed by a user.
type Input struct {
	FloatID string
	From    string
	To      string
}

// FloatIDEquals matches a float id against its decimal text.
type FloatIDEquals string

func (f FloatIDEquals) Match(m argo.Measurement) bool {
	return m.FloatIDText() == string(f)
}

func (f FloatIDEquals) String() string {
	return "float_id=" + string(f)
}

// DateWithin matches dates inside an inclusive window. A nil bound is open.
type DateWithin struct {
	From *time.Time
	To   *time.Time
}

func (d DateWithin) Match(m argo.Measurement) bool {
	if d.From != nil && m.Date.Before(*d.From) {
		return false
	}
	if d.To != nil && m.Date.After(*d.To) {
		return false
	}
	return true
}

func (d DateWithin) String() string {
	from, to := "*", "*"
	if d.From != nil {
		from = d.From.Format(argo.DateLayout)
	}
	if d.To != nil {
		to = d.To.Format(argo.DateLayout)
	}
	return fmt.Sprintf("date=%s..%s", from, to)
}

// FromInput builds a predicate set. Blank fields add no constraint.
func FromInput(in Input) (Set, error) {
	var set Set
	if id := strings.TrimSpace(in.FloatID); id != "" {
		set = append(set, FloatIDEquals(id))
	}

	window := DateWithin{}
	if s := strings.TrimSpace(in.From); s != "" {
		t, err := argo.ParseDate(s)
		if err != nil {
			return nil, fmt.Errorf("from: %w", err)
		}
		window.From = &t
	}
	if s := strings.TrimSpace(in.To); s != "" {
		t, err := argo.ParseDate(s)
		if err != nil {
			return nil, fmt.Errorf("to: %w", err)
		}
		window.To = &t
	}
	if window.From != nil || window.To != nil {
		set = append(set, window)
	}
	return set, nil
}

// Empty reports whether the set has no constraints.
func (s Set) Empty() bool { return len(s) == 0 }

// Match reports whether m satisfies every predicate of the set.
func (s Set) Match(m argo.Measurement) bool {
	for _, p := range s {
		if !p.Match(m) {
			return false
		}
	}
	return true
}

// Strings returns the textual form of each predicate.
func (s Set) Strings() []string {
	out := make([]string, 0, len(s))
	for _, p := range s {
		out = append(out, p.String())
	}
	return out
}

// Apply returns the records matching set, in their original order.
// An empty set returns every record; a set that matches nothing returns an empty, non-nil slice.
func Apply(records []argo.Measurement, set Set) []argo.Measurement {
	out := make([]argo.Measurement, 0, len(records))
	for _, m := range records {
		if set.Match(m) {
			out = append(out, m)
		}
	}
	return out
}
