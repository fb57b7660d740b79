package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/diskwise/backend/internal/api/ws"
	"github.com/diskwise/backend/internal/infrastructure/monitoring"
	"github.com/diskwise/backend/internal/safety"
	"github.com/diskwise/backend/internal/service"
	"github.com/diskwise/backend/internal/shared/types"
)

// Version is the backend release version reported by the root endpoint.
const Version = "0.3.0"

var validCategories = map[types.Category]bool{
	types.CategorySafety:        true,
	types.CategoryFilesystem:    true,
	types.CategorySystem:        true,
	types.CategoryNotifications: true,
	types.CategorySettings:      true,
}

// Handlers contains all HTTP handlers
type Handlers struct {
	registry   *service.Registry
	classifier *safety.Classifier
	hub        *ws.Hub
	metrics    *monitoring.Metrics
}

// NewHandlers creates a new handler set
func NewHandlers(registry *service.Registry, classifier *safety.Classifier, hub *ws.Hub, metrics *monitoring.Metrics) *Handlers {
	return &Handlers{
		registry:   registry,
		classifier: classifier,
		hub:        hub,
		metrics:    metrics,
	}
}

// Root handles health check
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "online",
		"service": "DiskWise Backend",
		"version": Version,
	})
}

// Health handles detailed health check
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":           "healthy",
		"service_registry": h.registry.Stats(),
		"websocket":        gin.H{"clients": h.hub.ClientCount()},
		"platform":         string(safety.CurrentPlatform()),
	})
}

// ListServices lists all available services
func (h *Handlers) ListServices(c *gin.Context) {
	categoryStr := c.Query("category")

	var category *types.Category
	if categoryStr != "" {
		cat := types.Category(categoryStr)
		if !validCategories[cat] {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown category: " + categoryStr})
			return
		}
		category = &cat
	}

	services := h.registry.List(category)
	stats := h.registry.Stats()

	c.JSON(http.StatusOK, gin.H{
		"services": services,
		"stats":    stats,
	})
}

// ExecuteService executes a service tool
func (h *Handlers) ExecuteService(c *gin.Context) {
	var req types.ExecuteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	serviceID, _, ok := strings.Cut(req.ToolID, ".")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "tool_id must be service.tool"})
		return
	}

	var appCtx *types.Context
	if req.AppID != nil {
		appCtx = &types.Context{AppID: req.AppID}
	}

	timer := monitoring.NewTimer(h.metrics, serviceID, req.ToolID)
	result, err := h.registry.Execute(c.Request.Context(), req.ToolID, req.Params, appCtx)
	if err != nil {
		timer.Stop("error")
		h.metrics.RecordServiceError(serviceID, req.ToolID, "execute")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	status := "ok"
	if !result.Success {
		status = "failed"
	}
	timer.Stop(status)

	c.JSON(http.StatusOK, result)
}

// ValidatePath classifies a path for deletion safety
func (h *Handlers) ValidatePath(c *gin.Context) {
	var req types.ValidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	verdict := h.classifier.Classify(req.Path)
	h.metrics.RecordVerdict(verdict.RiskLevel.String(), verdict.IsSafe)

	c.JSON(http.StatusOK, verdict)
}
