package reports

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"carbonpath/well-portal/well-portal-backend/internal/scenario"
)

// Handler handles HTTP requests for report downloads.
type Handler struct {
	scenarios *scenario.Service
	service   *Service
	logger    *zap.Logger
}

// NewHandler creates a new reports handler.
func NewHandler(scenarios *scenario.Service, service *Service, logger *zap.Logger) *Handler {
	return &Handler{scenarios: scenarios, service: service, logger: logger}
}

// RegisterRoutes registers report routes.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/sessions/:sessionId/scenarios/:name/report", h.downloadReport)
}

func (h *Handler) downloadReport(c *gin.Context) {
	sessionID, err := uuid.Parse(c.Param("sessionId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session ID"})
		return
	}
	format := Format(c.DefaultQuery("format", string(FormatCSV)))
	if format != FormatCSV && format != FormatPDF && format != FormatXLSX {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unsupported report format: %s", format)})
		return
	}

	name := c.Param("name")
	eval, err := h.scenarios.Evaluate(sessionID, name)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, scenario.ErrSessionNotFound) || errors.Is(err, scenario.ErrScenarioNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	report := Build(eval)
	c.Header("Content-Type", ContentType(format))
	c.Header("Content-Disposition",
		fmt.Sprintf(`attachment; filename="carbon_credit_report_scenario_%s.%s"`, name, format))

	if err := h.service.Render(c.Writer, report, format); err != nil {
		h.logger.Error("failed to render report",
			zap.String("scenario", name),
			zap.String("format", string(format)),
			zap.Error(err))
	}
}
