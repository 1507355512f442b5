// Package main is the entry point for the fulfillment-service application.
//
// @title           Fulfillment Service API
// @version         1.0.0
// @description     API for optimizing order fulfillment across warehouse locations and couriers.
//
//	This service splits a multi-product order across pickup locations and
//	quotes couriers per shipment, ranking options by total packaging plus
//	shipping cost.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/guttosm/fulfillment-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        X-API-Key
// @description                 API key for authentication. Required if authentication is enabled.
//
// @tag.name        Fulfillment
// @tag.description Order fulfillment optimization and shipping quotes
//
// @tag.name        Reference Data
// @tag.description Package types, courier rate tables and stock snapshots
//
// @tag.name        Auth
// @tag.description Authentication endpoints
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	_ "github.com/guttosm/fulfillment-service/docs" // swagger docs

	"github.com/guttosm/fulfillment-service/config"
	"github.com/guttosm/fulfillment-service/internal/app"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()

	router := app.InitializeApp(cfg)
	server := app.NewServer(router, cfg.Server.Port)

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
