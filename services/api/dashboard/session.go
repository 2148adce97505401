package dashboard

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/02loveslollipop/floatchat-dashboard/services/api/argo"
	"github.com/02loveslollipop/floatchat-dashboard/services/api/filter"
)

// Trigger names the event that caused a synchronization pass.
type Trigger string

const (
	TriggerInit      Trigger = "init"
	TriggerApply     Trigger = "apply_filter"
	TriggerClear     Trigger = "clear_filter"
	TriggerParameter Trigger = "select_parameter"
)

// Observer is notified after every session pass. Observers run once the session lock
// is released, so they may read the session; passes racing each other may notify out of order.
type Observer func(trigger Trigger, v Views, elapsed time.Duration)

// Session is the interactive dashboard: one active filter, one selected parameter, the last views.
// Events are serialized; each pass completes before the next one starts.
type Session struct {
	mu        sync.Mutex
	syncer    *Synchronizer
	set       filter.Set
	parameter argo.Parameter
	current   Views
	observers []Observer
	log       logrus.FieldLogger
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithObserver registers a pass observer.
func WithObserver(o Observer) SessionOption {
	return func(s *Session) { s.observers = append(s.observers, o) }
}

// WithLogger sets the session logger.
func WithLogger(l logrus.FieldLogger) SessionOption {
	return func(s *Session) { s.log = l }
}

// NewSession starts unfiltered over the whole catalog.
func NewSession(syncer *Synchronizer, p argo.Parameter, opts ...SessionOption) (*Session, error) {
	s := &Session{syncer: syncer, parameter: p, log: logrus.StandardLogger()}
	for _, opt := range opts {
		opt(s)
	}
	if _, err := s.update(TriggerInit, func() (filter.Set, argo.Parameter) { return nil, p }); err != nil {
		return nil, err
	}
	return s, nil
}

// ApplyFilter replaces the active filter. Blank input leaves the session unfiltered.
func (s *Session) ApplyFilter(in filter.Input) (Views, error) {
	set, err := filter.FromInput(in)
	if err != nil {
		return Views{}, err
	}
	return s.update(TriggerApply, func() (filter.Set, argo.Parameter) { return set, s.parameter })
}

// ClearFilter drops every constraint.
func (s *Session) ClearFilter() (Views, error) {
	return s.update(TriggerClear, func() (filter.Set, argo.Parameter) { return nil, s.parameter })
}

// SelectParameter switches the parameter and keeps the active filter.
func (s *Session) SelectParameter(p argo.Parameter) (Views, error) {
	return s.update(TriggerParameter, func() (filter.Set, argo.Parameter) { return s.set, p })
}

// Current returns the views of the last pass.
func (s *Session) Current() Views {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// State reports whether a filter is active.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.State
}

// Parameter returns the selected parameter.
func (s *Session) Parameter() argo.Parameter {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.parameter
}

// Synchronizer exposes the underlying stateless synchronizer.
func (s *Session) Synchronizer() *Synchronizer { return s.syncer }

// update runs one pass with the filter and parameter chosen by next, which is called with mu held.
// A failed pass leaves the session unchanged.
func (s *Session) update(trigger Trigger, next func() (filter.Set, argo.Parameter)) (Views, error) {
	s.mu.Lock()
	set, p := next()
	start := time.Now()
	v, err := s.syncer.Synchronize(set, p)
	elapsed := time.Since(start)
	if err == nil {
		s.set = set
		s.parameter = p
		s.current = v
	}
	s.mu.Unlock()

	if err != nil {
		return Views{}, err
	}

	s.log.WithFields(logrus.Fields{
		"trigger":       trigger,
		"state":         v.State,
		"parameter":     p,
		"data_points":   v.Stats.DataPoints,
		"active_floats": v.Stats.ActiveFloats,
		"elapsed":       elapsed,
	}).Debug("dashboard synchronized")

	for _, o := range s.observers {
		o(trigger, v, elapsed)
	}
	return v, nil
}
