package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-playground/validator"
	"github.com/labstack/echo/v4"

	mid "github.com/citenet/backend/internal/server/middleware"
)

func newTestServer(t *testing.T, citationPath, affiliationPath string) *echo.Echo {
	t.Helper()

	e := echo.New()
	e.Validator = &CustomValidator{validator: validator.New()}
	e.HTTPErrorHandler = errorHandler

	app := &mid.App{
		CitationTablePath:    citationPath,
		AffiliationTablePath: affiliationPath,
	}
	e.Use(mid.AppContextMiddleware(app))
	RegisterRoutes(e)
	return e
}

func writeTestTable(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

type graphPayload struct {
	Error string           `json:"error"`
	Nodes []map[string]any `json:"nodes"`
	Links []map[string]any `json:"links"`
}

func TestGraphEndpoints(t *testing.T) {
	dir := t.TempDir()
	citation := writeTestTable(t, dir, "refs.csv",
		"citing_paperid,cited_paperid,year,ref_year\nP1,P2,2021,2021\nP1,P2,2022,2021\n")
	affiliation := writeTestTable(t, dir, "affils.csv",
		"paperid,authorid,institutionid,author_position\nPA,alice,I1,1\nPA,bob,I1,2\n")
	e := newTestServer(t, citation, affiliation)

	tests := []struct {
		name      string
		target    string
		wantNodes int
		wantLinks int
	}{
		{"citation network", "/api/citation-network", 2, 1},
		{"collaboration network", "/api/collaboration-network", 2, 1},
		{"enhanced citation network", "/api/enhanced-citation-network", 2, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			if rec.Code != http.StatusOK {
				t.Fatalf("GET %s = %d, want %d", tt.target, rec.Code, http.StatusOK)
			}
			var payload graphPayload
			if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
				t.Fatalf("decoding response: %v", err)
			}
			if payload.Error != "" {
				t.Fatalf("unexpected error in payload: %s", payload.Error)
			}
			if len(payload.Nodes) != tt.wantNodes || len(payload.Links) != tt.wantLinks {
				t.Errorf("GET %s returned %d nodes and %d links, want %d and %d",
					tt.target, len(payload.Nodes), len(payload.Links), tt.wantNodes, tt.wantLinks)
			}
		})
	}
}

func TestGraphEndpointMissingTable(t *testing.T) {
	dir := t.TempDir()
	citation := filepath.Join(dir, "missing.csv")
	affiliation := filepath.Join(dir, "also-missing.csv")
	e := newTestServer(t, citation, affiliation)

	req := httptest.NewRequest(http.MethodGet, "/api/citation-network", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	// Build failures still answer 200, the error travels in the payload.
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /api/citation-network = %d, want %d", rec.Code, http.StatusOK)
	}
	var payload graphPayload
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if !strings.Contains(payload.Error, citation) {
		t.Errorf("payload error %q does not contain the searched path %q", payload.Error, citation)
	}
	if len(payload.Nodes) != 0 || len(payload.Links) != 0 {
		t.Errorf("failed build returned %d nodes and %d links, want none", len(payload.Nodes), len(payload.Links))
	}
}

func TestSyntheticEndpoints(t *testing.T) {
	dir := t.TempDir()
	e := newTestServer(t, filepath.Join(dir, "refs.csv"), filepath.Join(dir, "affils.csv"))

	tests := []struct {
		name       string
		target     string
		wantPoints int
	}{
		{"paper counts", "/api/paper-counts", 10},
		{"patent citations", "/api/patent-citations", 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			if rec.Code != http.StatusOK {
				t.Fatalf("GET %s = %d, want %d", tt.target, rec.Code, http.StatusOK)
			}
			var series []map[string]any
			if err := json.Unmarshal(rec.Body.Bytes(), &series); err != nil {
				t.Fatalf("decoding response: %v", err)
			}
			if len(series) != tt.wantPoints {
				t.Errorf("GET %s returned %d points, want %d", tt.target, len(series), tt.wantPoints)
			}
		})
	}
}

func TestHealthEndpoint(t *testing.T) {
	dir := t.TempDir()
	e := newTestServer(t, filepath.Join(dir, "refs.csv"), filepath.Join(dir, "affils.csv"))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("GET /health = %d, want %d", rec.Code, http.StatusOK)
	}
	if rec.Body.String() != "OK" {
		t.Errorf("GET /health body = %q, want %q", rec.Body.String(), "OK")
	}
}

func TestErrorHandlerShape(t *testing.T) {
	dir := t.TempDir()
	e := newTestServer(t, filepath.Join(dir, "refs.csv"), filepath.Join(dir, "affils.csv"))

	req := httptest.NewRequest(http.MethodGet, "/no-such-route", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("GET /no-such-route = %d, want %d", rec.Code, http.StatusNotFound)
	}
	var payload map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if payload["error"] == "" {
		t.Errorf("error response %q does not carry an error key", rec.Body.String())
	}
}

func TestConfigValidation(t *testing.T) {
	cv := &CustomValidator{validator: validator.New()}

	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name:    "complete configuration",
			cfg:     Config{Port: "5000", DataDir: ".", CitationTable: "refs.csv", AffiliationTable: "affils.csv"},
			wantErr: false,
		},
		{
			name:    "non-numeric port",
			cfg:     Config{Port: "http", DataDir: ".", CitationTable: "refs.csv", AffiliationTable: "affils.csv"},
			wantErr: true,
		},
		{
			name:    "missing table names",
			cfg:     Config{Port: "5000", DataDir: "."},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := cv.Validate(tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("PORT", "8123")
	t.Setenv("DATA_DIR", "/srv/data")

	cfg := configFromEnv()

	if cfg.Port != "8123" {
		t.Errorf("Port = %q, want %q", cfg.Port, "8123")
	}
	if cfg.DataDir != "/srv/data" {
		t.Errorf("DataDir = %q, want %q", cfg.DataDir, "/srv/data")
	}
	if cfg.CitationTable != "refs_yeshiva_cs_20_25.csv" {
		t.Errorf("CitationTable = %q, want the default table name", cfg.CitationTable)
	}
	if cfg.AffiliationTable != "affils_yeshiva_cs_20_25.csv" {
		t.Errorf("AffiliationTable = %q, want the default table name", cfg.AffiliationTable)
	}
}
