package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/citenet/backend/pkg/network"
	"github.com/citenet/backend/pkg/sanitize"
)

func GetPaperCountsHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, sanitize.Normalize(network.PaperCounts()))
}

func GetPatentCitationsHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, sanitize.Normalize(network.PatentCitations()))
}
