package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/klearr/customs-calculator/internal/apperrors"
	"github.com/klearr/customs-calculator/internal/core/domain"
	portssvc "github.com/klearr/customs-calculator/internal/core/ports/services"
	"github.com/klearr/customs-calculator/internal/dto"
	"github.com/klearr/customs-calculator/internal/middleware"
)

// taxRateHandler handles HTTP requests for the tariff schedule.
type taxRateHandler struct {
	scheduleService portssvc.TaxScheduleSvc
}

// newTaxRateHandler creates a new taxRateHandler.
func newTaxRateHandler(ts portssvc.TaxScheduleSvc) *taxRateHandler {
	return &taxRateHandler{
		scheduleService: ts,
	}
}

// registerTaxRateRoutes registers the public schedule lookup route.
func registerTaxRateRoutes(rg *gin.RouterGroup, scheduleService portssvc.TaxScheduleSvc) {
	h := newTaxRateHandler(scheduleService)

	rg.GET("/tax-rates/:hsCode", h.getScheduleForHSCode)
}

// getScheduleForHSCode godoc
// @Summary Get the tariff schedule for an HS code
// @Description Returns every schedule entry for the HS code with both the raw and the normalized fractional rate. An unknown code returns an empty list
// @Tags tax-rates
// @Produce  json
// @Param   hsCode path string true "Harmonized System code"
// @Success 200 {array} dto.TaxRateResponse
// @Failure 400 {object} map[string]string "Invalid HS code"
// @Failure 500 {object} map[string]string "Failed to retrieve schedule"
// @Router /tax-rates/{hsCode} [get]
func (h *taxRateHandler) getScheduleForHSCode(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	hsCode := c.Param("hsCode")

	logger = logger.With(slog.String("hs_code", hsCode))
	logger.Info("Received request for tariff schedule")

	_, entries, err := h.scheduleService.GetScheduleForHSCode(c.Request.Context(), hsCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Invalid HS code", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to get schedule from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve schedule"})
		}
		return
	}

	responses := make([]dto.TaxRateResponse, len(entries))
	for i := range entries {
		responses[i] = dto.ToTaxRateResponse(&entries[i], domain.NormalizeScheduleRate(entries[i].Rate))
	}

	logger.Info("Tariff schedule retrieved", slog.Int("count", len(responses)))
	c.JSON(http.StatusOK, responses)
}
