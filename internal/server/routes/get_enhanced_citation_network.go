package routes

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/citenet/backend/internal/server/middleware"
	"github.com/citenet/backend/pkg/logger"
	"github.com/citenet/backend/pkg/network"
)

func GetEnhancedCitationNetworkHandler(c echo.Context) error {
	path := c.(*middleware.AppContext).App.CitationTablePath

	start := time.Now()
	res := network.BuildEnhancedCitationNetwork(path)
	observeBuild("enhanced_citation", res, time.Since(start))

	if res.Failed() {
		logger.Error("Enhanced citation network build failed", "err", res.Error)
	}

	return c.JSON(http.StatusOK, res)
}
