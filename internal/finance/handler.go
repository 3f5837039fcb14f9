package finance

import (
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handler serves the static financial reference data.
type Handler struct{}

// NewHandler creates a finance handler.
func NewHandler() *Handler {
	return &Handler{}
}

// RegisterRoutes registers finance reference routes.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/cost-presets", h.listCostPresets)
}

// costPreset is the JSON shape of one bracket. MaxDepthFt is nil for the
// open-ended top bracket, since the sentinel infinity has no JSON encoding.
type costPreset struct {
	MaxDepthFt *float64 `json:"max_depth_ft,omitempty"`
	Cost       float64  `json:"cost"`
}

func (h *Handler) listCostPresets(c *gin.Context) {
	brackets := CostPresets()
	presets := make([]costPreset, 0, len(brackets))
	for _, b := range brackets {
		p := costPreset{Cost: b.Cost}
		if !math.IsInf(b.MaxDepthFt, 1) {
			maxDepth := b.MaxDepthFt
			p.MaxDepthFt = &maxDepth
		}
		presets = append(presets, p)
	}
	c.JSON(http.StatusOK, gin.H{"presets": presets})
}
