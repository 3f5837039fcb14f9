package credits

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handler exposes the methodology registry and a stateless calculation
// endpoint.
type Handler struct {
	registry *Registry
}

// NewHandler creates a new credits handler.
func NewHandler(registry *Registry) *Handler {
	return &Handler{registry: registry}
}

// RegisterRoutes registers methodology routes.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	methodologies := router.Group("/methodologies")
	{
		methodologies.GET("", h.listMethodologies)
		methodologies.POST("/:code/calculate", h.calculate)
	}
}

func (h *Handler) listMethodologies(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"methodologies": h.registry.List()})
}

func (h *Handler) calculate(c *gin.Context) {
	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid calculation payload: " + err.Error()})
		return
	}

	result, err := h.registry.Calculate(c.Param("code"), &req)
	if err != nil {
		status := http.StatusBadRequest
		if !errors.Is(err, ErrNonPositiveLeakRate) &&
			!errors.Is(err, ErrNonPositivePeriod) &&
			!errors.Is(err, ErrNonPositiveGWP) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}
