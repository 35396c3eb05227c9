package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/klearr/customs-calculator/internal/apperrors"
	portssvc "github.com/klearr/customs-calculator/internal/core/ports/services"
	"github.com/klearr/customs-calculator/internal/dto"
	"github.com/klearr/customs-calculator/internal/middleware"
)

// fxRateHandler handles HTTP requests for daily indicative exchange rates.
type fxRateHandler struct {
	fxRateService portssvc.FXRateSvcFacade
}

// newFXRateHandler creates a new fxRateHandler.
func newFXRateHandler(fs portssvc.FXRateSvcFacade) *fxRateHandler {
	return &fxRateHandler{
		fxRateService: fs,
	}
}

// registerFXRateRoutes registers the public read routes for rates.
func registerFXRateRoutes(rg *gin.RouterGroup, fxRateService portssvc.FXRateSvcFacade) {
	h := newFXRateHandler(fxRateService)

	rg.GET("/fx-rates/latest", h.getLatestRates)
}

// registerAdminFXRateRoutes registers the authenticated write routes.
func registerAdminFXRateRoutes(rg *gin.RouterGroup, fxRateService portssvc.FXRateSvcFacade) {
	h := newFXRateHandler(fxRateService)

	rg.POST("/fx-rates", h.createRate)
	rg.POST("/fx-rates/refresh", h.refreshRates)
}

// getLatestRates godoc
// @Summary Get the latest published rates
// @Description Returns every indicative rate published on the most recent date in the table
// @Tags fx-rates
// @Produce  json
// @Success 200 {object} dto.LatestRatesResponse
// @Failure 404 {object} map[string]string "No rates stored"
// @Failure 500 {object} map[string]string "Failed to retrieve rates"
// @Router /fx-rates/latest [get]
func (h *fxRateHandler) getLatestRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("Received request for latest rates")

	date, rates, err := h.fxRateService.GetLatestRates(c.Request.Context())
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("No rates stored yet")
			c.JSON(http.StatusNotFound, gin.H{"error": "No exchange rates available yet"})
		} else {
			logger.Error("Failed to get latest rates from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve rates"})
		}
		return
	}

	logger.Info("Latest rates retrieved", slog.String("rate_date", date.Format("2006-01-02")), slog.Int("count", len(rates)))
	c.JSON(http.StatusOK, dto.ToLatestRatesResponse(date, rates))
}

// createRate godoc
// @Summary Record a daily rate manually
// @Description Persists a manually supplied indicative rate (admin operation)
// @Tags fx-rates
// @Accept  json
// @Produce  json
// @Param   rate body dto.CreateFXRateRequest true "Rate details"
// @Success 201 {object} dto.FXRateResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Rate already recorded"
// @Failure 500 {object} map[string]string "Failed to save rate"
// @Security BearerAuth
// @Router /fx-rates [post]
func (h *fxRateHandler) createRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateFXRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateRate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to record rate",
		slog.String("currency", req.Currency),
		slog.String("rate_date", req.RateDate.Format("2006-01-02")))

	rate, err := h.fxRateService.CreateRate(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			logger.Warn("Rate already recorded")
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error recording rate", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to save rate in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save rate"})
		}
		return
	}

	logger.Info("Rate recorded successfully", slog.String("currency", rate.Currency))
	c.JSON(http.StatusCreated, dto.ToFXRateResponse(rate))
}

// refreshRates godoc
// @Summary Trigger a rate refresh
// @Description Scrapes the central bank sheet for the current business day and stores anything new (admin operation)
// @Tags fx-rates
// @Produce  json
// @Success 200 {object} dto.RefreshRatesResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "No rates published"
// @Failure 500 {object} map[string]string "Refresh failed"
// @Security BearerAuth
// @Router /fx-rates/refresh [post]
func (h *fxRateHandler) refreshRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("Received request to refresh rates")

	saved, skipped, err := h.fxRateService.RefreshRates(c.Request.Context())
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("No rates published for the target date", slog.String("error", err.Error()))
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else {
			logger.Error("Rate refresh failed", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Rate refresh failed"})
		}
		return
	}

	logger.Info("Rates refreshed", slog.Int("saved", saved), slog.Int("skipped", skipped))
	c.JSON(http.StatusOK, dto.RefreshRatesResponse{
		Saved:   saved,
		Skipped: skipped,
		Message: "refresh complete",
	})
}
