// Package http provides the ops API handlers for the scripthost backend.
package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/modforge/scripthost/internal/domain/service"
	"github.com/modforge/scripthost/internal/infrastructure/monitoring"
	"github.com/modforge/scripthost/internal/shared/types"
)

// Handlers holds HTTP handler dependencies
type Handlers struct {
	registry *service.Registry
	metrics  *monitoring.Metrics
}

// NewHandlers creates HTTP handlers
func NewHandlers(registry *service.Registry, metrics *monitoring.Metrics) *Handlers {
	return &Handlers{
		registry: registry,
		metrics:  metrics,
	}
}

// Root handles the basic liveness check
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "online",
		"service": "scripthost backend",
		"version": "0.3.0",
	})
}

// Health handles detailed health check
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":           "healthy",
		"service_registry": h.registry.Stats(),
	})
}

// ListServices lists all available services
func (h *Handlers) ListServices(c *gin.Context) {
	var category *types.Category
	if categoryStr := c.Query("category"); categoryStr != "" {
		cat := types.Category(categoryStr)
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

	var scriptCtx *types.Context
	if req.ScriptID != nil {
		scriptCtx = &types.Context{ScriptID: req.ScriptID}
	}

	serviceID, toolName := splitToolID(req.ToolID)
	timer := monitoring.NewTimer(h.metrics, serviceID, toolName)

	result, err := h.registry.Execute(c.Request.Context(), req.ToolID, req.Params, scriptCtx)
	if err != nil {
		timer.Stop("error")
		// Tool-level failures are well-formed results, not transport errors
		if result != nil {
			c.JSON(http.StatusOK, result)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	timer.Stop("success")
	c.JSON(http.StatusOK, result)
}

// ListFilelists lists all registered file lists
func (h *Handlers) ListFilelists(c *gin.Context) {
	result, err := h.registry.Execute(c.Request.Context(), "filelist.lists", map[string]interface{}{}, nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result.Data)
}

// GetFilelist returns one file list's entries in order
func (h *Handlers) GetFilelist(c *gin.Context) {
	name := c.Param("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "list name required"})
		return
	}

	result, err := h.registry.Execute(c.Request.Context(), "filelist.entries", map[string]interface{}{
		"list": name,
	}, nil)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result.Data)
}

func splitToolID(toolID string) (serviceID, toolName string) {
	parts := strings.SplitN(toolID, ".", 2)
	if len(parts) < 2 {
		return toolID, ""
	}
	return parts[0], parts[1]
}
