package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/02loveslollipop/floatchat-dashboard/services/api/argo"
	"github.com/02loveslollipop/floatchat-dashboard/services/api/dashboard"
)

type floatInfo struct {
	FloatID     int64  `json:"float_id"`
	Label       string `json:"label"`
	Color       string `json:"color"`
	RecordCount int    `json:"record_count"`
}

// handleV1ListFloats returns every float of the catalog with its session color
// GET /api/v1/core/floats
func (s *Server) handleV1ListFloats(c *gin.Context) {
	syncer := s.session.Synchronizer()
	catalog := syncer.Catalog()
	counts := catalog.RecordCounts()

	floats := make([]floatInfo, 0, len(counts))
	for _, id := range catalog.FloatIDs() {
		floats = append(floats, floatInfo{
			FloatID:     id,
			Label:       dashboard.FloatLabel(id),
			Color:       syncer.ColorFor(id),
			RecordCount: counts[id],
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"data": floats,
		"meta": gin.H{
			"count":         len(floats),
			"total_records": catalog.Len(),
		},
	})
}

// handleV1ListParameters returns label and unit of each selectable parameter
// GET /api/v1/core/parameters
func (s *Server) handleV1ListParameters(c *gin.Context) {
	params := make([]argo.ParameterConfig, 0, len(argo.Parameters))
	for _, p := range argo.Parameters {
		params = append(params, p.Config())
	}

	c.JSON(http.StatusOK, gin.H{
		"data": params,
		"meta": gin.H{
			"count":    len(params),
			"selected": s.session.Parameter(),
		},
	})
}
