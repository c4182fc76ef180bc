package routes

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/citenet/backend/internal/server/middleware"
	"github.com/citenet/backend/pkg/logger"
	"github.com/citenet/backend/pkg/network"
)

func GetCollaborationNetworkHandler(c echo.Context) error {
	path := c.(*middleware.AppContext).App.AffiliationTablePath

	start := time.Now()
	res := network.BuildCollaborationNetwork(path)
	observeBuild("collaboration", res, time.Since(start))

	if res.Failed() {
		logger.Error("Collaboration network build failed", "err", res.Error)
	}

	return c.JSON(http.StatusOK, res)
}
