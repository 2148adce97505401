package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/02loveslollipop/floatchat-dashboard/services/api/argo"
	"github.com/02loveslollipop/floatchat-dashboard/services/api/filter"
)

// handleV1Views derives views for an explicit filter and parameter without touching the session
// GET /api/v1/views?float_id=7902246&parameter=PSAL&from=2025-01-01&to=2025-12-31
func (s *Server) handleV1Views(c *gin.Context) {
	p := s.cfg.DefaultParameter
	if raw := c.Query("parameter"); raw != "" {
		parsed, err := argo.ParseParameter(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		p = parsed
	}

	set, err := filter.FromInput(filter.Input{
		FloatID: c.Query("float_id"),
		From:    c.Query("from"),
		To:      c.Query("to"),
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	v, err := s.session.Synchronizer().Synchronize(set, p)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, viewsResponse(v))
}
