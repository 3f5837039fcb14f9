package scenario

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"carbonpath/well-portal/well-portal-backend/internal/credits"
	"carbonpath/well-portal/well-portal-backend/internal/finance"
	"carbonpath/well-portal/well-portal-backend/internal/wells"
)

// Handler handles HTTP requests for session and scenario operations.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new scenario handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers session and scenario routes.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	sessions := router.Group("/sessions")
	{
		sessions.POST("", h.createSession)
		sessions.GET("/:sessionId/scenarios", h.listScenarios)
		sessions.GET("/:sessionId/scenarios/:name", h.getScenario)
		sessions.PUT("/:sessionId/scenarios/:name", h.saveScenario)
		sessions.DELETE("/:sessionId/scenarios/:name", h.deleteScenario)
		sessions.POST("/:sessionId/scenarios/:name/clone", h.cloneScenario)
		sessions.GET("/:sessionId/scenarios/:name/evaluation", h.evaluateScenario)
		sessions.GET("/:sessionId/compare", h.compareScenarios)
		sessions.POST("/:sessionId/scenarios/:name/sensitivity", h.sweepScenario)
		sessions.POST("/:sessionId/scenarios/:name/wells/import", h.importWells)
		sessions.GET("/:sessionId/scenarios/:name/wells/export", h.exportWells)
	}
}

func (h *Handler) createSession(c *gin.Context) {
	id, err := h.service.CreateSession()
	if err != nil {
		h.logger.Error("failed to create session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create session"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"session_id": id})
}

func (h *Handler) listScenarios(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}
	scenarios, err := h.service.List(sessionID)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"scenarios": scenarios})
}

func (h *Handler) getScenario(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}
	sc, err := h.service.Get(sessionID, c.Param("name"))
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, sc)
}

func (h *Handler) saveScenario(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}
	var sc Scenario
	if err := c.ShouldBindJSON(&sc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid scenario payload: " + err.Error()})
		return
	}
	sc.Name = c.Param("name")
	if err := h.service.Save(sessionID, &sc); err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, sc)
}

func (h *Handler) deleteScenario(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(sessionID, c.Param("name")); err != nil {
		h.renderError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) cloneScenario(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}
	to := c.Query("to")
	sc, err := h.service.Clone(sessionID, c.Param("name"), to)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sc)
}

func (h *Handler) evaluateScenario(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}
	eval, err := h.service.Evaluate(sessionID, c.Param("name"))
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, eval)
}

func (h *Handler) compareScenarios(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}
	nameA := c.DefaultQuery("a", "A")
	nameB := c.DefaultQuery("b", "B")
	comparison, err := h.service.Compare(sessionID, nameA, nameB)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, comparison)
}

// sweepRequest is the sensitivity sweep payload.
type sweepRequest struct {
	TokenPrices []float64 `json:"token_prices" binding:"required"`
	PathFees    []float64 `json:"path_fees" binding:"required"`
}

func (h *Handler) sweepScenario(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}
	var req sweepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid sweep payload: " + err.Error()})
		return
	}
	result, err := h.service.Sensitivity(sessionID, c.Param("name"), req.TokenPrices, req.PathFees)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) importWells(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}
	sc, err := h.service.Get(sessionID, c.Param("name"))
	if err != nil {
		h.renderError(c, err)
		return
	}

	result, err := wells.ImportCSV(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rowErrors := make([]string, 0, len(result.RowErrors))
	for _, rowErr := range result.RowErrors {
		rowErrors = append(rowErrors, rowErr.Error())
	}

	// A manifest with no usable rows must not empty the scenario.
	if len(result.Wells) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":      "no valid wells in manifest",
			"row_errors": rowErrors,
		})
		return
	}

	sc.Wells = result.Wells
	if err := h.service.Save(sessionID, sc); err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"imported":   len(result.Wells),
		"row_errors": rowErrors,
	})
}

func (h *Handler) exportWells(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}
	sc, err := h.service.Get(sessionID, c.Param("name"))
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="wells_scenario_`+sc.Name+`.csv"`)
	if err := wells.ExportCSV(c.Writer, sc.Wells); err != nil {
		h.logger.Error("failed to export wells", zap.Error(err))
	}
}

func (h *Handler) sessionID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("sessionId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session ID"})
		return uuid.Nil, false
	}
	return id, true
}

// renderError maps service errors to HTTP statuses. Validation problems are
// the caller's fault; anything unrecognized is a 500.
func (h *Handler) renderError(c *gin.Context, err error) {
	var validationErr *wells.ValidationError
	switch {
	case errors.Is(err, ErrSessionNotFound), errors.Is(err, ErrScenarioNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.As(err, &validationErr),
		errors.Is(err, credits.ErrNonPositiveLeakRate),
		errors.Is(err, credits.ErrNonPositivePeriod),
		errors.Is(err, credits.ErrNonPositiveGWP),
		errors.Is(err, finance.ErrNonPositiveTokenPrice),
		errors.Is(err, finance.ErrInvalidPathFee),
		errors.Is(err, finance.ErrEmptySweep),
		errors.Is(err, finance.ErrEmptySeries),
		errors.Is(err, finance.ErrNoWells),
		errors.Is(err, finance.ErrInvalidDiscountRate):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		h.logger.Error("scenario operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
