package http

import (
	"encoding/json"
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/02loveslollipop/floatchat-dashboard/services/api/argo"
	"github.com/02loveslollipop/floatchat-dashboard/services/api/config"
	"github.com/02loveslollipop/floatchat-dashboard/services/api/dashboard"
	"github.com/02loveslollipop/floatchat-dashboard/services/api/palette"
)

type viewsEnvelope struct {
	Data dashboard.Views `json:"data"`
}

func newTestServer(t *testing.T, token string) *Server {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	cfg := config.Config{
		Port:             8080,
		DefaultParameter: argo.Temperature,
		Palette:          palette.Default,
		BearerToken:      token,
		ChartWidth:       400,
		ChartHeight:      200,
	}
	metrics := NewMetrics(prometheus.NewRegistry())
	syncer := dashboard.NewSynchronizer(argo.MockCatalog(), cfg.Palette)
	session, err := dashboard.NewSession(syncer, cfg.DefaultParameter,
		dashboard.WithLogger(logger), dashboard.WithObserver(metrics.ObservePass))
	require.NoError(t, err)

	return New(cfg, session, nil, metrics, logger)
}

func do(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.Engine().ServeHTTP(rec, req)
	return rec
}

func decodeViews(t *testing.T, rec *httptest.ResponseRecorder) dashboard.Views {
	t.Helper()
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var env viewsEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env.Data
}

func TestHealthz(t *testing.T) {
	s := newTestServer(t, "")

	rec := do(t, s, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(requestIDHeader))
}

func TestRequestIDIsEchoed(t *testing.T) {
	s := newTestServer(t, "")

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	s.Engine().ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Header().Get(requestIDHeader))
}

func TestDashboardFilterCycle(t *testing.T) {
	s := newTestServer(t, "")

	initial := decodeViews(t, do(t, s, http.MethodGet, "/api/v1/dashboard", ""))
	assert.Equal(t, dashboard.Unfiltered, initial.State)
	assert.Equal(t, 10, initial.Stats.DataPoints)
	assert.Equal(t, 7, initial.Stats.ActiveFloats)
	assert.True(t, initial.ComparativeVisible)

	filtered := decodeViews(t, do(t, s, http.MethodPost, "/api/v1/dashboard/filters", `{"float_id": 7902246}`))
	assert.Equal(t, dashboard.Filtered, filtered.State)
	assert.Equal(t, 2, filtered.Stats.DataPoints)
	assert.Equal(t, "28.8°C", filtered.Stats.AvgTemperatureText)
	assert.False(t, filtered.ComparativeVisible)
	assert.Nil(t, filtered.Comparative)

	none := decodeViews(t, do(t, s, http.MethodPost, "/api/v1/dashboard/filters", `{"float_id": "9999999"}`))
	assert.Equal(t, 0, none.Stats.DataPoints)
	assert.Equal(t, "N/A", none.Stats.AvgTemperatureText)

	cleared := decodeViews(t, do(t, s, http.MethodDelete, "/api/v1/dashboard/filters", ""))
	assert.Equal(t, dashboard.Unfiltered, cleared.State)
	assert.Equal(t, initial.Stats.DataPoints, cleared.Stats.DataPoints)
	assert.Equal(t, initial.Trajectories, cleared.Trajectories)
	assert.Equal(t, initial.Comparative, cleared.Comparative)
}

func TestApplyBlankFilterStaysUnfiltered(t *testing.T) {
	s := newTestServer(t, "")

	v := decodeViews(t, do(t, s, http.MethodPost, "/api/v1/dashboard/filters", ""))
	assert.Equal(t, dashboard.Unfiltered, v.State)

	v = decodeViews(t, do(t, s, http.MethodPost, "/api/v1/dashboard/filters", `{"float_id": "  "}`))
	assert.Equal(t, dashboard.Unfiltered, v.State)
	assert.Equal(t, 10, v.Stats.DataPoints)
}

func TestApplyFilterNormalizesNumericFloatID(t *testing.T) {
	s := newTestServer(t, "")

	for _, body := range []string{
		`{"float_id": 7902246}`,
		`{"float_id": 7902246.0}`,
		`{"float_id": 7.902246e6}`,
	} {
		v := decodeViews(t, do(t, s, http.MethodPost, "/api/v1/dashboard/filters", body))
		assert.Equal(t, []string{"float_id=7902246"}, v.Filter, body)
		assert.Equal(t, 2, v.Stats.DataPoints, body)
	}

	rec := do(t, s, http.MethodPost, "/api/v1/dashboard/filters", `{"float_id": 7902246.5}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestApplyFilterRejectsBadInput(t *testing.T) {
	s := newTestServer(t, "")

	rec := do(t, s, http.MethodPost, "/api/v1/dashboard/filters", `{"from": "June 1"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, s, http.MethodPost, "/api/v1/dashboard/filters", `{"float_id": [1]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSelectParameter(t *testing.T) {
	s := newTestServer(t, "")

	v := decodeViews(t, do(t, s, http.MethodPut, "/api/v1/dashboard/parameter", `{"parameter": "PSAL"}`))
	assert.Equal(t, argo.Salinity, v.Parameter)
	assert.Equal(t, "Salinity (PSU)", v.TimeSeries.AxisTitle)
	require.NotNil(t, v.Comparative)
	assert.Equal(t, "Average Salinity by Float", v.Comparative.Title)

	rec := do(t, s, http.MethodPut, "/api/v1/dashboard/parameter", `{"parameter": "DOXY"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid parameter")

	current := decodeViews(t, do(t, s, http.MethodGet, "/api/v1/dashboard", ""))
	assert.Equal(t, argo.Salinity, current.Parameter)
}

func TestStatelessViews(t *testing.T) {
	s := newTestServer(t, "")

	v := decodeViews(t, do(t, s, http.MethodGet, "/api/v1/views?float_id=7902247&parameter=pres", ""))
	assert.Equal(t, dashboard.Filtered, v.State)
	assert.Equal(t, argo.Pressure, v.Parameter)
	assert.Len(t, v.TimeSeries.Points, 2)

	// the session is untouched
	current := decodeViews(t, do(t, s, http.MethodGet, "/api/v1/dashboard", ""))
	assert.Equal(t, dashboard.Unfiltered, current.State)
	assert.Equal(t, argo.Temperature, current.Parameter)

	rec := do(t, s, http.MethodGet, "/api/v1/views?parameter=CHLA", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCharts(t *testing.T) {
	s := newTestServer(t, "")

	for _, view := range []string{"timeseries", "trajectories", "comparative"} {
		rec := do(t, s, http.MethodGet, "/api/v1/dashboard/charts/"+view, "")
		require.Equal(t, http.StatusOK, rec.Code, view)
		assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
		img, err := png.Decode(rec.Body)
		require.NoError(t, err, view)
		assert.Equal(t, 400, img.Bounds().Dx())
	}

	rec := do(t, s, http.MethodGet, "/api/v1/dashboard/charts/heatmap", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	do(t, s, http.MethodPost, "/api/v1/dashboard/filters", `{"float_id": "7902246"}`)
	rec = do(t, s, http.MethodGet, "/api/v1/dashboard/charts/comparative", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	do(t, s, http.MethodPost, "/api/v1/dashboard/filters", `{"float_id": "9999999"}`)
	rec = do(t, s, http.MethodGet, "/api/v1/dashboard/charts/timeseries", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestChartSingleRecordFloat(t *testing.T) {
	s := newTestServer(t, "")

	v := decodeViews(t, do(t, s, http.MethodPost, "/api/v1/dashboard/filters", `{"float_id": "7902249"}`))
	require.Len(t, v.TimeSeries.Points, 1)

	rec := do(t, s, http.MethodGet, "/api/v1/dashboard/charts/timeseries", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	_, err := png.Decode(rec.Body)
	require.NoError(t, err)

	rec = do(t, s, http.MethodGet, "/api/v1/dashboard/charts/trajectories", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCoreFloats(t *testing.T) {
	s := newTestServer(t, "")

	rec := do(t, s, http.MethodGet, "/api/v1/core/floats", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "v1", rec.Header().Get("X-API-Version"))

	var body struct {
		Data []floatInfo `json:"data"`
		Meta struct {
			Count        int `json:"count"`
			TotalRecords int `json:"total_records"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Data, 7)
	assert.Equal(t, 10, body.Meta.TotalRecords)
	assert.Equal(t, int64(7902246), body.Data[0].FloatID)
	assert.Equal(t, palette.Default[0], body.Data[0].Color)
	assert.Equal(t, 2, body.Data[0].RecordCount)
}

func TestCoreParameters(t *testing.T) {
	s := newTestServer(t, "")

	rec := do(t, s, http.MethodGet, "/api/v1/core/parameters", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"unit":"dbar"`)
	assert.Contains(t, rec.Body.String(), `"selected":"TEMP"`)
}

func TestBearerAuth(t *testing.T) {
	s := newTestServer(t, "secret")

	rec := do(t, s, http.MethodGet, "/api/v1/dashboard", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil)
	req.Header.Set("Authorization", "Bearer secret")
	rec = httptest.NewRecorder()
	s.Engine().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(t, "")
	do(t, s, http.MethodPost, "/api/v1/dashboard/filters", `{"float_id": "7902248"}`)

	rec := do(t, s, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `floatchat_sync_passes_total{trigger="apply_filter"} 1`)
	assert.Contains(t, body, `floatchat_sync_passes_total{trigger="init"} 1`)
	assert.Contains(t, body, "floatchat_session_active_floats 1")
	assert.Contains(t, body, `floatchat_http_requests_total{method="POST",route="/api/v1/dashboard/filters",status="200"} 1`)
}
