package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"

	"github.com/klearr/customs-calculator/internal/apperrors"
	portssvc "github.com/klearr/customs-calculator/internal/core/ports/services"
	"github.com/klearr/customs-calculator/internal/dto"
	"github.com/klearr/customs-calculator/internal/middleware"
)

// calculationHandler handles HTTP requests for CIF valuation and full duty
// assessment.
type calculationHandler struct {
	valuationService  portssvc.ValuationSvc
	assessmentService portssvc.AssessmentSvc
}

// newCalculationHandler creates a new calculationHandler.
func newCalculationHandler(vs portssvc.ValuationSvc, as portssvc.AssessmentSvc) *calculationHandler {
	return &calculationHandler{
		valuationService:  vs,
		assessmentService: as,
	}
}

// RegisterCalculationRoutes registers the public calculation routes.
func RegisterCalculationRoutes(rg *gin.RouterGroup, vs portssvc.ValuationSvc, as portssvc.AssessmentSvc, calcLimiter *limiter.Limiter) {
	h := newCalculationHandler(vs, as)

	calculate := rg.Group("/calculate", middleware.RateLimit(calcLimiter))
	{
		calculate.POST("/cif", h.calculateCIF)
		calculate.POST("/customs", h.calculateCustoms)
	}
}

// calculateCIF godoc
// @Summary Compute the CIF valuation of a shipment
// @Description Values product price plus freight plus insurance in the original currency, JMD and USD using the latest indicative selling rates
// @Tags calculate
// @Accept  json
// @Produce  json
// @Param   request body dto.CIFRequest true "Shipment details"
// @Success 200 {object} dto.CIFResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "No rate available"
// @Failure 500 {object} map[string]string "Calculation failed"
// @Router /calculate/cif [post]
func (h *calculationHandler) calculateCIF(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CIFRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CIF calculation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received CIF calculation request",
		slog.String("product_currency", req.ProductCurrency),
		slog.String("freight_currency", req.FreightCurrency),
		slog.String("mode", req.ModeOfTransportation))

	valuation, err := h.valuationService.ComputeCIF(c.Request.Context(), req)
	if err != nil {
		respondCalculationError(c, logger, err, "Failed to compute CIF valuation")
		return
	}

	logger.Info("CIF valuation computed", slog.String("cif_jmd", valuation.CIFJMD.String()))
	c.JSON(http.StatusOK, dto.ToCIFResponse(valuation))
}

// calculateCustoms godoc
// @Summary Compute the full customs duty assessment
// @Description Runs the duty cascade over the CIF valuation for the given HS code, including the customs administration fee
// @Tags calculate
// @Accept  json
// @Produce  json
// @Param   request body dto.CustomsRequest true "Declaration details"
// @Success 200 {object} dto.CustomsResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "No rate available"
// @Failure 500 {object} map[string]string "Calculation failed"
// @Router /calculate/customs [post]
func (h *calculationHandler) calculateCustoms(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CustomsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for customs calculation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received customs calculation request",
		slog.String("hs_code", req.HSCode),
		slog.String("transaction_type", req.TransactionType))

	assessment, err := h.assessmentService.CalculateCustoms(c.Request.Context(), req)
	if err != nil {
		respondCalculationError(c, logger, err, "Failed to compute customs assessment")
		return
	}

	logger.Info("Customs assessment computed", slog.String("total", assessment.TotalCustomCharges.String()))
	c.JSON(http.StatusOK, assessment)
}

// respondCalculationError maps calculation failures onto HTTP statuses.
// Client mistakes (bad currencies, modes, regimes) are 400s; missing rate
// data is a 404 since the resource genuinely is not there yet.
func respondCalculationError(c *gin.Context, logger *slog.Logger, err error, fallbackMsg string) {
	switch {
	case errors.Is(err, apperrors.ErrValidation),
		errors.Is(err, apperrors.ErrUnknownCurrency),
		errors.Is(err, apperrors.ErrInvalidTransportMode),
		errors.Is(err, apperrors.ErrMissingTransactionType):
		logger.Warn("Rejected calculation request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrRateNotFound), errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("No rate data for calculation request", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		logger.Error(fallbackMsg, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallbackMsg})
	}
}
