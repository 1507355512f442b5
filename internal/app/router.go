// Package app provides router configuration.
package app

import (
	"context"
	"time"

	"github.com/guttosm/fulfillment-service/config"
	"github.com/guttosm/fulfillment-service/internal/http"
	"github.com/guttosm/fulfillment-service/internal/repository"
	"github.com/guttosm/fulfillment-service/internal/service"
)

// mongoChecker adapts the MongoDB ping to the readiness probe.
type mongoChecker struct {
	db *repository.MongoDB
}

func (m mongoChecker) Check() error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return m.db.HealthCheck(ctx)
}

// RouterComponents holds router-related components.
type RouterComponents struct {
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(
	serviceComponents *ServiceComponents,
	dbComponents *DatabaseComponents,
	cfg config.Config,
) *RouterComponents {
	healthHandler := http.NewHealthHandler()

	var loggingService service.LoggingService
	if dbComponents != nil {
		loggingService = dbComponents.LoggingService

		if dbComponents.DB != nil {
			healthHandler.RegisterChecker("mongodb", mongoChecker{db: dbComponents.DB})
		}
		if dbComponents.StockCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_stock", dbComponents.StockCircuitBreaker)
		}
		if dbComponents.PackageTypesCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_package_types", dbComponents.PackageTypesCircuitBreaker)
		}
		if dbComponents.CourierRatesCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_courier_rates", dbComponents.CourierRatesCircuitBreaker)
		}
		if dbComponents.LogsCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_logs", dbComponents.LogsCircuitBreaker)
		}
	}

	// Reference data endpoints need a backing store; without one they are
	// not registered at all.
	var referenceService service.ReferenceDataService
	if dbComponents != nil {
		referenceService = serviceComponents.Reference
	}

	// JWT auth is only wired when an operator credential is configured.
	var authService service.AuthService
	if cfg.Auth.Enabled && cfg.Auth.AdminEmail != "" && cfg.Auth.AdminPasswordHash != "" {
		authService = service.NewAuthService(cfg.Auth)
	}

	routerCfg := http.RouterConfig{
		RateLimit:         cfg.Server.RateLimit,
		RateWindow:        cfg.Server.RateWindow,
		EnableAuth:        cfg.Auth.Enabled,
		APIKeys:           cfg.Auth.APIKeys,
		EnableIdempotency: true,
		CORSOrigins:       cfg.Server.CORSOrigins,
		SwaggerUser:       cfg.Server.SwaggerUser,
		SwaggerPass:       cfg.Server.SwaggerPass,
		LoggingService:    loggingService,
		ReferenceService:  referenceService,
		AuthService:       authService,
		Optimizer:         serviceComponents.Optimizer,
	}

	return &RouterComponents{
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
