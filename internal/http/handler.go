package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/fulfillment-service/internal/domain/dto"
	"github.com/guttosm/fulfillment-service/internal/i18n"
	"github.com/guttosm/fulfillment-service/internal/middleware"
	"github.com/guttosm/fulfillment-service/internal/service"
)

// Handler provides HTTP handlers for the fulfillment optimization routes.
type Handler struct {
	optimizer service.FulfillmentOptimizer
}

// NewHandler creates a new Handler instance.
func NewHandler(optimizer service.FulfillmentOptimizer) *Handler {
	return &Handler{optimizer: optimizer}
}

// Optimize handles POST /api/optimize requests.
//
// @Summary      Optimize order fulfillment
// @Description  Splits a multi-product order across warehouse locations and couriers, returning fulfillment options ranked by total packaging plus shipping cost. Infeasible orders return success=false with a machine-readable reason instead of an HTTP error. Supports idempotency via Idempotency-Key header.
// @Tags         Fulfillment
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body dto.OptimizeFulfillmentRequest true "Order demands and destination"
// @Success      200 {object} dto.SuccessResponse "Ranked fulfillment options or diagnostic failure payload"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Param        Authorization header string false "Bearer token (required if auth enabled)"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Failure      503 {object} dto.ErrorResponse "Service unavailable - stock source unreachable"
// @Security     BearerAuth
// @Router       /api/optimize [post]
func (h *Handler) Optimize(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.OptimizeFulfillmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	// Audit log (async)
	if loggingService, exists := c.Get("logging_service"); exists {
		if ls, ok := loggingService.(service.LoggingService); ok {
			middleware.AuditLog(ls, c, "optimize", "Fulfillment optimization requested", map[string]interface{}{
				"products": len(req.Demands),
				"postcode": req.Postcode,
				"cod":      req.COD,
			})
		}
	}

	result, err := h.optimizer.Optimize(c.Request.Context(), req)
	if err != nil {
		h.renderOptimizerError(builder, err)
		return
	}

	builder.SuccessOK(result)
}

// CalculateShipping handles POST /api/shipping requests.
//
// @Summary      Quote couriers for explicit shipments
// @Description  Returns available courier quotes per pickup location for an allocation the caller has already decided. Skips stock resolution, candidate generation and packaging. A location with no serviceable courier returns an empty quote list, not an error.
// @Tags         Fulfillment
// @Accept       json
// @Produce      json
// @Param        request body dto.CalculateShippingRequest true "Pickup locations, weights and destination"
// @Success      200 {object} dto.SuccessResponse "Courier quotes per location"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Param        Authorization header string false "Bearer token (required if auth enabled)"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Failure      503 {object} dto.ErrorResponse "Service unavailable - rate source unreachable"
// @Security     BearerAuth
// @Router       /api/shipping [post]
func (h *Handler) CalculateShipping(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.CalculateShippingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	result, err := h.optimizer.CalculateShipping(c.Request.Context(), req)
	if err != nil {
		h.renderOptimizerError(builder, err)
		return
	}

	builder.SuccessOK(result)
}

// renderOptimizerError maps optimizer errors to HTTP status codes. Validation
// errors are the caller's fault; unavailable backing sources are reported as
// 503 so callers can retry.
func (h *Handler) renderOptimizerError(builder *ResponseBuilder, err error) {
	var validationErr *dto.ValidationError
	switch {
	case errors.As(err, &validationErr):
		builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationFailed, err)
	case errors.Is(err, service.ErrStockSourceUnavailable),
		errors.Is(err, service.ErrRateSourceUnavailable):
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyServiceUnavailable, err)
	default:
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
	}
}
