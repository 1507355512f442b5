package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/fulfillment-service/internal/domain/dto"
	"github.com/guttosm/fulfillment-service/internal/domain/model"
	"github.com/guttosm/fulfillment-service/internal/i18n"
	"github.com/guttosm/fulfillment-service/internal/middleware"
	"github.com/guttosm/fulfillment-service/internal/service"
)

// ReferenceHandler provides HTTP handlers for the optimizer's reference data:
// package types, courier rate tables and stock snapshots.
type ReferenceHandler struct {
	reference service.ReferenceDataService
}

// NewReferenceHandler creates a new ReferenceHandler instance.
func NewReferenceHandler(reference service.ReferenceDataService) *ReferenceHandler {
	return &ReferenceHandler{reference: reference}
}

// GetActivePackageTypes handles GET /api/package-types requests.
//
// @Summary      Get active package types
// @Description  Returns the package type set optimizations currently run against. Falls back to built-in defaults when no configuration is active.
// @Tags         Reference Data
// @Accept       json
// @Produce      json
// @Param        Authorization header string false "Bearer token (required if auth enabled)"
// @Success      200 {object} dto.SuccessResponse "Active package types"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Security     BearerAuth
// @Router       /api/package-types [get]
func (h *ReferenceHandler) GetActivePackageTypes(c *gin.Context) {
	builder := NewResponseBuilder(c)
	types := h.reference.ActivePackageTypes(c.Request.Context())
	builder.SuccessOK(map[string]interface{}{"types": types})
}

// UpdatePackageTypes handles PUT /api/package-types requests.
//
// @Summary      Update package types
// @Description  Replaces the active package type configuration. The previous configuration is kept for history.
// @Tags         Reference Data
// @Accept       json
// @Produce      json
// @Param        Authorization header string false "Bearer token (required if auth enabled)"
// @Param        request body dto.UpdatePackageTypesRequest true "Package type configuration"
// @Success      200 {object} dto.SuccessResponse "Updated package types"
// @Failure      400 {object} dto.ErrorResponse "Bad request"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/package-types [put]
func (h *ReferenceHandler) UpdatePackageTypes(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.UpdatePackageTypesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}
	if err := req.Validate(); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationFailed, err)
		return
	}

	types := make([]model.PackageType, 0, len(req.Types))
	for _, t := range req.Types {
		types = append(types, model.PackageType{
			PackageID:     t.PackageID,
			LocationID:    t.LocationID,
			MaxWeight:     t.MaxWeight,
			Dims:          t.Dims,
			CapacityUnits: t.CapacityUnits,
			CostPerUse:    t.CostPerUse,
		})
	}

	config, err := h.reference.UpdatePackageTypes(c.Request.Context(), types, req.CreatedBy)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	h.audit(c, "update_package_types", "Package type configuration updated", map[string]interface{}{
		"types":   len(types),
		"version": config.Version,
	})

	builder.SuccessOK(map[string]interface{}{
		"types":      types,
		"version":    config.Version,
		"created_at": config.CreatedAt,
	})
}

// ListPackageTypeConfigs handles GET /api/package-types/history requests.
//
// @Summary      List package type history
// @Description  Returns package type configurations, newest first
// @Tags         Reference Data
// @Accept       json
// @Produce      json
// @Param        Authorization header string false "Bearer token (required if auth enabled)"
// @Param        limit query int false "Limit number of results"
// @Success      200 {object} dto.SuccessResponse "Package type history"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/package-types/history [get]
func (h *ReferenceHandler) ListPackageTypeConfigs(c *gin.Context) {
	builder := NewResponseBuilder(c)

	configs, err := h.reference.ListPackageTypeConfigs(c.Request.Context(), queryLimit(c))
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}
	builder.SuccessOK(configs)
}

// GetActiveCourierRates handles GET /api/courier-rates requests.
//
// @Summary      Get active courier rate table
// @Description  Returns the courier slab table quotes are currently priced from. Empty when no table has been configured.
// @Tags         Reference Data
// @Accept       json
// @Produce      json
// @Param        Authorization header string false "Bearer token (required if auth enabled)"
// @Success      200 {object} dto.SuccessResponse "Active courier rate table"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/courier-rates [get]
func (h *ReferenceHandler) GetActiveCourierRates(c *gin.Context) {
	builder := NewResponseBuilder(c)

	slabs, err := h.reference.ActiveCourierRates(c.Request.Context())
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}
	builder.SuccessOK(map[string]interface{}{"slabs": slabs})
}

// UpdateCourierRates handles PUT /api/courier-rates requests.
//
// @Summary      Update courier rate table
// @Description  Replaces the active courier slab table and invalidates cached quotes so new rates take effect immediately. Brackets must not overlap per courier per origin.
// @Tags         Reference Data
// @Accept       json
// @Produce      json
// @Param        Authorization header string false "Bearer token (required if auth enabled)"
// @Param        request body dto.UpdateCourierRatesRequest true "Courier slab table"
// @Success      200 {object} dto.SuccessResponse "Updated courier rate table"
// @Failure      400 {object} dto.ErrorResponse "Bad request"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/courier-rates [put]
func (h *ReferenceHandler) UpdateCourierRates(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.UpdateCourierRatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}
	if err := req.Validate(); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationFailed, err)
		return
	}

	config, err := h.reference.UpdateCourierRates(c.Request.Context(), req.Slabs, req.CreatedBy)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	h.audit(c, "update_courier_rates", "Courier rate table updated", map[string]interface{}{
		"slabs":   len(req.Slabs),
		"version": config.Version,
	})

	builder.SuccessOK(map[string]interface{}{
		"slabs":      req.Slabs,
		"version":    config.Version,
		"created_at": config.CreatedAt,
	})
}

// ListCourierRateConfigs handles GET /api/courier-rates/history requests.
//
// @Summary      List courier rate table history
// @Description  Returns courier rate tables, newest first
// @Tags         Reference Data
// @Accept       json
// @Produce      json
// @Param        Authorization header string false "Bearer token (required if auth enabled)"
// @Param        limit query int false "Limit number of results"
// @Success      200 {object} dto.SuccessResponse "Courier rate table history"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/courier-rates/history [get]
func (h *ReferenceHandler) ListCourierRateConfigs(c *gin.Context) {
	builder := NewResponseBuilder(c)

	configs, err := h.reference.ListCourierRateConfigs(c.Request.Context(), queryLimit(c))
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}
	builder.SuccessOK(configs)
}

// UpsertStock handles PUT /api/stock requests.
//
// @Summary      Upsert stock snapshot rows
// @Description  Replaces stock snapshot rows keyed by (location, product). Rows with zero availability are accepted and simply never allocated against.
// @Tags         Reference Data
// @Accept       json
// @Produce      json
// @Param        Authorization header string false "Bearer token (required if auth enabled)"
// @Param        request body dto.UpsertStockRequest true "Stock snapshot rows"
// @Success      200 {object} dto.SuccessResponse "Upserted row count"
// @Failure      400 {object} dto.ErrorResponse "Bad request"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/stock [put]
func (h *ReferenceHandler) UpsertStock(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.UpsertStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}
	if err := req.Validate(); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationFailed, err)
		return
	}

	items := make([]model.LocationStock, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, model.LocationStock{
			LocationID: item.LocationID,
			ProductID:  item.ProductID,
			Available:  item.Available,
			UnitWeight: item.UnitWeight,
			UnitDims:   item.UnitDims,
		})
	}

	if err := h.reference.UpsertStock(c.Request.Context(), items); err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	h.audit(c, "upsert_stock", "Stock snapshot rows upserted", map[string]interface{}{
		"rows": len(items),
	})

	builder.SuccessOK(map[string]interface{}{"upserted": len(items)})
}

// ListStock handles GET /api/stock requests.
//
// @Summary      List stock snapshot rows
// @Description  Returns stock snapshot rows sorted by location and product
// @Tags         Reference Data
// @Accept       json
// @Produce      json
// @Param        Authorization header string false "Bearer token (required if auth enabled)"
// @Param        limit query int false "Limit number of results"
// @Success      200 {object} dto.SuccessResponse "Stock snapshot rows"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/stock [get]
func (h *ReferenceHandler) ListStock(c *gin.Context) {
	builder := NewResponseBuilder(c)

	items, err := h.reference.ListStock(c.Request.Context(), queryLimit(c))
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}
	builder.SuccessOK(items)
}

// audit writes an async audit entry when the logging service is wired.
func (h *ReferenceHandler) audit(c *gin.Context, action, message string, details map[string]interface{}) {
	if loggingService, exists := c.Get("logging_service"); exists {
		if ls, ok := loggingService.(service.LoggingService); ok {
			middleware.AuditLog(ls, c, action, message, details)
		}
	}
}

// queryLimit parses the optional limit query parameter.
func queryLimit(c *gin.Context) int {
	if limitStr := c.Query("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
			return l
		}
	}
	return 0
}
