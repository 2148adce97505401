package argo

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleJSON = `[
	{"FLOAT_ID": 7902246, "TEMP": 28.7, "PSAL": 34.6, "PRES": 10, "LAT": -1.0, "LON": 78.3, "DATE": "2025-01-01"},
	{"FLOAT_ID": 7902247, "TEMP": 29.1, "PSAL": 34.8, "PRES": 11, "LAT": -2.5, "LON": 80.1, "DATE": "2025-01-15"},
	{"FLOAT_ID": 7902246, "TEMP": 28.9, "PSAL": 34.6, "PRES": 12, "LAT": -1.1, "LON": 78.4, "DATE": "2024-12-31"}
]`

func TestDecodeCatalog(t *testing.T) {
	c, err := DecodeCatalog(strings.NewReader(sampleJSON))
	require.NoError(t, err)

	assert.Equal(t, 3, c.Len())
	assert.Equal(t, []int64{7902246, 7902247}, c.FloatIDs())

	first := c.Records()[0]
	assert.Equal(t, int64(7902246), first.FloatID)
	assert.Equal(t, 28.7, first.Temperature)
	assert.Equal(t, 78.3, first.Longitude)
	assert.Equal(t, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), first.Date)
}

func TestDecodeCatalogRejectsMalformedDate(t *testing.T) {
	_, err := DecodeCatalog(strings.NewReader(`[{"FLOAT_ID": 1, "DATE": "01/02/2025"}]`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "float 1")
	assert.Contains(t, err.Error(), "YYYY-MM-DD")
}

func TestMeasurementJSONShape(t *testing.T) {
	m := MockCatalog().Records()[0]

	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(m))
	assert.JSONEq(t,
		`{"FLOAT_ID":7902246,"TEMP":28.7,"PSAL":34.6,"PRES":10,"LAT":-1,"LON":78.3,"DATE":"2025-01-01"}`,
		buf.String())
}

func TestCatalogIsImmutable(t *testing.T) {
	c := MockCatalog()

	records := c.Records()
	records[0].Temperature = -99
	ids := c.FloatIDs()
	ids[0] = 0

	assert.Equal(t, 28.7, c.Records()[0].Temperature)
	assert.Equal(t, int64(7902246), c.FloatIDs()[0])
}

func TestMockCatalog(t *testing.T) {
	c := MockCatalog()
	assert.Equal(t, 10, c.Len())
	assert.Len(t, c.FloatIDs(), 7)
	assert.Equal(t, 2, c.RecordCounts()[7902246])
	assert.Equal(t, 1, c.RecordCounts()[7902252])
}

func TestChronological(t *testing.T) {
	c, err := DecodeCatalog(strings.NewReader(sampleJSON))
	require.NoError(t, err)

	sorted := c.Chronological()
	require.Equal(t, 3, sorted.Len())
	assert.Equal(t, "2024-12-31", sorted.Records()[0].DateText())
	assert.Equal(t, "2025-01-15", sorted.Records()[2].DateText())

	// the source catalog keeps its order
	assert.Equal(t, "2025-01-01", c.Records()[0].DateText())
}

func TestParseParameter(t *testing.T) {
	for _, in := range []string{"TEMP", "psal", " PRES "} {
		p, err := ParseParameter(in)
		require.NoError(t, err, in)
		assert.True(t, p.Valid())
	}

	_, err := ParseParameter("DOXY")
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestParameterConfig(t *testing.T) {
	assert.Equal(t, "Temperature", Temperature.Label())
	assert.Equal(t, "°C", Temperature.Unit())
	assert.Equal(t, "PSU", Salinity.Unit())
	assert.Equal(t, "dbar", Pressure.Unit())

	m := Measurement{Temperature: 1, Salinity: 2, Pressure: 3}
	assert.Equal(t, 1.0, Temperature.Value(m))
	assert.Equal(t, 2.0, Salinity.Value(m))
	assert.Equal(t, 3.0, Pressure.Value(m))
	assert.Panics(t, func() { Parameter("DOXY").Value(m) })
}
