package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/diskwise/backend/internal/api/ws"
	"github.com/diskwise/backend/internal/infrastructure/logging"
	"github.com/diskwise/backend/internal/infrastructure/monitoring"
	"github.com/diskwise/backend/internal/providers/safety"
	safetycore "github.com/diskwise/backend/internal/safety"
	"github.com/diskwise/backend/internal/service"
)

// Prometheus collectors register globally, so share one instance.
var testMetrics = monitoring.NewMetrics()

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	classifier := safetycore.New(
		safetycore.WithProbe(safetycore.MapProbe{
			"/home/alice/Downloads": true,
			"/etc":                  true,
			"/srv/file.txt":         false,
		}),
		safetycore.WithPlatform(safetycore.Linux),
		safetycore.WithHome("/home/alice"),
	)

	registry := service.NewRegistry()
	registry.Register(safety.NewProvider(classifier))

	log := &logging.Logger{Logger: zap.NewNop()}
	hub := ws.NewHub(registry, log, testMetrics)
	handlers := NewHandlers(registry, classifier, hub, testMetrics)

	router := gin.New()
	router.GET("/", handlers.Root)
	router.GET("/health", handlers.Health)
	router.GET("/services", handlers.ListServices)
	router.POST("/services/execute", handlers.ExecuteService)
	router.POST("/safety/validate", handlers.ValidatePath)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRoot(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "online", resp["status"])
	assert.Equal(t, "DiskWise Backend", resp["service"])
}

func TestHealth(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp["status"])
	assert.Contains(t, resp, "service_registry")
}

func TestListServices(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/services", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Services []map[string]interface{} `json:"services"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Services, 1)
	assert.Equal(t, "safety", resp.Services[0]["id"])
}

func TestListServicesRejectsUnknownCategory(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/services?category=bogus", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExecuteService(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/services/execute", map[string]interface{}{
		"tool_id": "safety.validate",
		"params":  map[string]interface{}{"path": "/home/alice/Downloads"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool                   `json:"success"`
		Data    map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, true, resp.Data["is_safe"])
}

func TestExecuteServiceBadToolID(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/services/execute", map[string]interface{}{
		"tool_id": "nodot",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExecuteServiceUnknownService(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/services/execute", map[string]interface{}{
		"tool_id": "ghost.tool",
	})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestValidatePath(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name     string
		path     string
		wantSafe bool
		wantRisk string
	}{
		{"safe directory", "/home/alice/Downloads", true, "Low"},
		{"system directory", "/etc", false, "High"},
		{"missing path", "/nowhere", false, "Critical"},
		{"plain file", "/srv/file.txt", false, "Critical"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, router, http.MethodPost, "/safety/validate", map[string]interface{}{
				"path": tt.path,
			})
			require.Equal(t, http.StatusOK, w.Code)

			var verdict struct {
				IsSafe    bool   `json:"is_safe"`
				RiskLevel string `json:"risk_level"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &verdict))
			assert.Equal(t, tt.wantSafe, verdict.IsSafe)
			assert.Equal(t, tt.wantRisk, verdict.RiskLevel)
		})
	}
}

func TestValidatePathRequiresBody(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/safety/validate", map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
