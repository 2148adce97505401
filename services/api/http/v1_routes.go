package http

import "github.com/gin-gonic/gin"

// registerV1Routes sets up the v1 API structure
// Groups: /api/v1/core, /api/v1/dashboard, /api/v1/views
func (s *Server) registerV1Routes() {
	v1 := s.engine.Group("/api/v1")
	v1.Use(apiVersionMiddleware()) // Add X-API-Version: v1 header

	// Core endpoints - catalog metadata
	core := v1.Group("/core")
	{
		core.GET("/floats", s.handleV1ListFloats)
		core.GET("/parameters", s.handleV1ListParameters)
	}

	// Dashboard endpoints - the interactive session
	dash := v1.Group("/dashboard")
	{
		dash.GET("", s.handleV1Dashboard)
		dash.POST("/filters", s.handleV1ApplyFilter)
		dash.DELETE("/filters", s.handleV1ClearFilter)
		dash.PUT("/parameter", s.handleV1SelectParameter)
		dash.GET("/charts/:view", s.handleV1Chart)
	}

	// Stateless views - same derivation, no session state touched
	v1.GET("/views", s.handleV1Views)
}

func apiVersionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-API-Version", "v1")
		c.Next()
	}
}
