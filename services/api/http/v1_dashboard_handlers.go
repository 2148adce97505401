package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/02loveslollipop/floatchat-dashboard/services/api/argo"
	"github.com/02loveslollipop/floatchat-dashboard/services/api/dashboard"
	"github.com/02loveslollipop/floatchat-dashboard/services/api/filter"
	"github.com/02loveslollipop/floatchat-dashboard/services/api/render"
)

// idText accepts a float id typed as either a JSON string or a JSON number.
type idText string

func (t *idText) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*t = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*t = idText(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("float_id must be a string or a number")
	}
	if i, err := n.Int64(); err == nil {
		*t = idText(strconv.FormatInt(i, 10))
		return nil
	}
	// 7902246.0 and 7.902246e6 name the same float
	f, err := n.Float64()
	if err != nil || f != math.Trunc(f) || math.Abs(f) > 1<<53 {
		return fmt.Errorf("float_id must be an integer")
	}
	*t = idText(strconv.FormatInt(int64(f), 10))
	return nil
}

type filterRequest struct {
	FloatID idText `json:"float_id"`
	From    string `json:"from"`
	To      string `json:"to"`
}

type parameterRequest struct {
	Parameter string `json:"parameter"`
}

func viewsResponse(v dashboard.Views) gin.H {
	return gin.H{
		"data": v,
		"meta": gin.H{
			"state":               v.State,
			"parameter":           v.Parameter,
			"comparative_visible": v.ComparativeVisible,
		},
	}
}

// handleV1Dashboard returns the views of the current session
// GET /api/v1/dashboard
func (s *Server) handleV1Dashboard(c *gin.Context) {
	c.JSON(http.StatusOK, viewsResponse(s.session.Current()))
}

// handleV1ApplyFilter replaces the active filter; an empty body or blank fields clear it
// POST /api/v1/dashboard/filters {"float_id": "7902246", "from": "2025-01-01", "to": "2025-06-30"}
func (s *Server) handleV1ApplyFilter(c *gin.Context) {
	var req filterRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	v, err := s.session.ApplyFilter(filter.Input{FloatID: string(req.FloatID), From: req.From, To: req.To})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, viewsResponse(v))
}

// handleV1ClearFilter drops the active filter
// DELETE /api/v1/dashboard/filters
func (s *Server) handleV1ClearFilter(c *gin.Context) {
	v, err := s.session.ClearFilter()
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, viewsResponse(v))
}

// handleV1SelectParameter switches the parameter driving the time series and comparative views
// PUT /api/v1/dashboard/parameter {"parameter": "PSAL"}
func (s *Server) handleV1SelectParameter(c *gin.Context) {
	var req parameterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p, err := argo.ParseParameter(req.Parameter)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	v, err := s.session.SelectParameter(p)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, viewsResponse(v))
}

// handleV1Chart renders one view of the current session as PNG
// GET /api/v1/dashboard/charts/:view  (timeseries | trajectories | comparative)
func (s *Server) handleV1Chart(c *gin.Context) {
	v := s.session.Current()
	size := render.Size{Width: s.cfg.ChartWidth, Height: s.cfg.ChartHeight}

	var buf bytes.Buffer
	var err error
	switch view := c.Param("view"); view {
	case "timeseries":
		err = render.TimeSeries(&buf, v.TimeSeries, size)
	case "trajectories":
		err = render.Trajectories(&buf, v.Trajectories, size)
	case "comparative":
		err = render.Comparative(&buf, v.ComparativeVisible, v.Comparative, size)
	default:
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("unknown view %q", view)})
		return
	}

	switch {
	case errors.Is(err, render.ErrNoData):
		c.Status(http.StatusNoContent)
		return
	case errors.Is(err, render.ErrHidden):
		c.JSON(http.StatusNotFound, gin.H{"error": "comparative view is hidden: fewer than two active floats"})
		return
	case err != nil:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Data(http.StatusOK, "image/png", buf.Bytes())
}
