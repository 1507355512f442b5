package http

import (
	"github.com/gin-gonic/gin"
	"github.com/guttosm/fulfillment-service/internal/service"
)

// FulfillmentRoutes handles fulfillment and reference data route registration.
type FulfillmentRoutes struct {
	handler          *Handler
	referenceHandler *ReferenceHandler
}

// NewFulfillmentRoutes creates a new FulfillmentRoutes instance.
func NewFulfillmentRoutes(optimizer service.FulfillmentOptimizer, reference service.ReferenceDataService) *FulfillmentRoutes {
	var referenceHandler *ReferenceHandler
	if reference != nil {
		referenceHandler = NewReferenceHandler(reference)
	}

	return &FulfillmentRoutes{
		handler:          NewHandler(optimizer),
		referenceHandler: referenceHandler,
	}
}

// RegisterPublicRoutes registers every fulfillment route on the given group.
// Used when authentication is disabled.
func (r *FulfillmentRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	r.registerOptimizationRoutes(rg)
	r.registerReferenceRoutes(rg)
}

// RegisterProtectedRoutes registers the reference data routes on the protected
// group. The optimization endpoints stay public even when authentication is
// enabled; only reference data mutation needs the operator credential.
func (r *FulfillmentRoutes) RegisterProtectedRoutes(protected *gin.RouterGroup, cfg *RouterConfig) {
	r.registerReferenceRoutes(protected)
}

// RegisterOptimizationRoutes registers the compute endpoints on the given group.
func (r *FulfillmentRoutes) RegisterOptimizationRoutes(rg *gin.RouterGroup) {
	r.registerOptimizationRoutes(rg)
}

func (r *FulfillmentRoutes) registerOptimizationRoutes(rg *gin.RouterGroup) {
	rg.POST("/optimize", r.handler.Optimize)
	rg.POST("/shipping", r.handler.CalculateShipping)
}

func (r *FulfillmentRoutes) registerReferenceRoutes(rg *gin.RouterGroup) {
	if r.referenceHandler == nil {
		return
	}

	rg.GET("/package-types", r.referenceHandler.GetActivePackageTypes)
	rg.PUT("/package-types", r.referenceHandler.UpdatePackageTypes)
	rg.GET("/package-types/history", r.referenceHandler.ListPackageTypeConfigs)

	rg.GET("/courier-rates", r.referenceHandler.GetActiveCourierRates)
	rg.PUT("/courier-rates", r.referenceHandler.UpdateCourierRates)
	rg.GET("/courier-rates/history", r.referenceHandler.ListCourierRateConfigs)

	rg.GET("/stock", r.referenceHandler.ListStock)
	rg.PUT("/stock", r.referenceHandler.UpsertStock)
}

// GetHandler returns the underlying fulfillment handler.
func (r *FulfillmentRoutes) GetHandler() *Handler {
	return r.handler
}
