package routes

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/citenet/backend/internal/metrics"
	"github.com/citenet/backend/internal/server/middleware"
	"github.com/citenet/backend/pkg/logger"
	"github.com/citenet/backend/pkg/network"
)

func GetCitationNetworkHandler(c echo.Context) error {
	path := c.(*middleware.AppContext).App.CitationTablePath

	start := time.Now()
	res := network.BuildCitationNetwork(path)
	observeBuild("citation", res, time.Since(start))

	if res.Failed() {
		logger.Error("Citation network build failed", "err", res.Error)
	}

	// Failures ship inside the payload, callers check the error key.
	return c.JSON(http.StatusOK, res)
}

func observeBuild(name string, res network.Result, elapsed time.Duration) {
	status := "ok"
	if res.Failed() {
		status = "error"
	}
	metrics.BuildTotal.WithLabelValues(name, status).Inc()
	metrics.BuildDuration.WithLabelValues(name).Observe(elapsed.Seconds())
	if !res.Failed() {
		metrics.GraphNodes.WithLabelValues(name).Set(float64(len(res.Nodes)))
		metrics.GraphLinks.WithLabelValues(name).Set(float64(len(res.Links)))
	}
}
