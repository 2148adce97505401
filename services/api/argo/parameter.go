package argo

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidParameter is returned when a parameter outside TEMP, PSAL and PRES is requested.
var ErrInvalidParameter = errors.New("invalid parameter")

// Parameter selects the measured quantity that drives the time series and comparative views.
type Parameter string

const (
	Temperature Parameter = "TEMP"
	Salinity    Parameter = "PSAL"
	Pressure    Parameter = "PRES"
)

// Parameters lists the known parameters in display order.
var Parameters = []Parameter{Temperature, Salinity, Pressure}

// ParameterConfig holds the display metadata of a parameter.
type ParameterConfig struct {
	Parameter Parameter `json:"parameter"`
	Label     string    `json:"label"`
	Unit      string    `json:"unit"`
}

// ParseParameter validates a user-supplied parameter name. Matching is case-insensitive.
func ParseParameter(s string) (Parameter, error) {
	p := Parameter(strings.ToUpper(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidParameter, s)
	}
	return p, nil
}

// Valid reports whether p is one of the known parameters.
func (p Parameter) Valid() bool {
	switch p {
	case Temperature, Salinity, Pressure:
		return true
	}
	return false
}

// Config returns label and unit for p. Unknown parameters yield a zero config.
func (p Parameter) Config() ParameterConfig {
	switch p {
	case Temperature:
		return ParameterConfig{Parameter: p, Label: "Temperature", Unit: "°C"}
	case Salinity:
		return ParameterConfig{Parameter: p, Label: "Salinity", Unit: "PSU"}
	case Pressure:
		return ParameterConfig{Parameter: p, Label: "Pressure", Unit: "dbar"}
	}
	return ParameterConfig{Parameter: p}
}

// Label returns the display name of p.
func (p Parameter) Label() string { return p.Config().Label }

// Unit returns the display unit of p.
func (p Parameter) Unit() string { return p.Config().Unit }

// Value extracts the value of p from m. It panics on an unknown parameter; callers validate first.
func (p Parameter) Value(m Measurement) float64 {
	switch p {
	case Temperature:
		return m.Temperature
	case Salinity:
		return m.Salinity
	case Pressure:
		return m.Pressure
	}
	panic(fmt.Sprintf("argo: %v %q", ErrInvalidParameter, string(p)))
}
