package server

import (
	"github.com/citenet/backend/internal/metrics"
	"github.com/citenet/backend/internal/server/routes"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo) {
	// Health check route
	e.GET("/health", func(c echo.Context) error {
		return c.String(200, "OK")
	})

	e.GET("/metrics", metrics.Handler())

	apiRoutes := e.Group("/api")

	// Graph routes
	apiRoutes.GET("/citation-network", routes.GetCitationNetworkHandler)
	apiRoutes.GET("/collaboration-network", routes.GetCollaborationNetworkHandler)
	apiRoutes.GET("/enhanced-citation-network", routes.GetEnhancedCitationNetworkHandler)

	// Demo series routes
	apiRoutes.GET("/paper-counts", routes.GetPaperCountsHandler)
	apiRoutes.GET("/patent-citations", routes.GetPatentCitationsHandler)
}
