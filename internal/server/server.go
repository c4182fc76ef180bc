package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/citenet/backend/internal/metrics"
	mid "github.com/citenet/backend/internal/server/middleware"
	"github.com/citenet/backend/internal/util"
	"github.com/citenet/backend/pkg/logger"
)

type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validator.Struct(i); err != nil {
		return err
	}
	return nil
}

// Config holds the server configuration resolved from the environment.
type Config struct {
	Port             string `validate:"required,numeric"`
	DataDir          string `validate:"required"`
	CitationTable    string `validate:"required"`
	AffiliationTable string `validate:"required"`
}

func configFromEnv() Config {
	return Config{
		Port:             util.EnvString("PORT", "5000"),
		DataDir:          util.EnvString("DATA_DIR", "."),
		CitationTable:    util.EnvString("CITATION_TABLE", "refs_yeshiva_cs_20_25.csv"),
		AffiliationTable: util.EnvString("AFFILIATION_TABLE", "affils_yeshiva_cs_20_25.csv"),
	}
}

func Init() {
	e := echo.New()
	e.Validator = &CustomValidator{validator: validator.New()}
	e.HTTPErrorHandler = errorHandler

	cfg := configFromEnv()
	if err := e.Validator.Validate(cfg); err != nil {
		logger.Fatal("Invalid server configuration", "err", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	metrics.Init()

	app := &mid.App{
		CitationTablePath:    filepath.Join(cfg.DataDir, cfg.CitationTable),
		AffiliationTablePath: filepath.Join(cfg.DataDir, cfg.AffiliationTable),
	}

	e.Use(mid.AppContextMiddleware(app))
	e.Use(middleware.CORS())
	e.Use(middleware.RequestLogger())
	e.Use(middleware.Recover())

	RegisterRoutes(e)

	go func() {
		logger.Info("Starting server", "port", cfg.Port)
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed shutting down server", "err", err)
		}
	}()

	<-ctx.Done()
	timeout := time.Duration(util.EnvInt("SHUTDOWN_TIMEOUT", 10)) * time.Second
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Failed to shutdown server", "err", err)
	}
}

// errorHandler renders every unhandled error as {"error": message} so the
// transport-level failure shape matches the payload-level one.
func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := http.StatusText(code)
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		code = httpErr.Code
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}
	}

	if err := c.JSON(code, map[string]string{"error": message}); err != nil {
		logger.Error("Failed to write error response", "err", err)
	}
}
