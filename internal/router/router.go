package router

import (
	"github.com/gin-gonic/gin"

	"github.com/Brandon-Mardis/Equip/internal/config"
	"github.com/Brandon-Mardis/Equip/internal/handler"
	"github.com/Brandon-Mardis/Equip/internal/middleware"
	"github.com/Brandon-Mardis/Equip/internal/storage"
)

// Setup configures the Gin engine and wires all routes against the storage
// backend chosen at startup.
func Setup(cfg *config.Config, store storage.Store) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(middleware.RequestLogger(), gin.Recovery())

	api := r.Group("/api")

	// health and cleanup work without a session
	systemHandler := handler.NewSystemHandler(store)
	api.GET("/health", systemHandler.Health)
	api.GET("/cleanup", systemHandler.Cleanup)

	// everything else is scoped to the caller's session
	scoped := api.Group("")
	scoped.Use(middleware.Session(store))

	assetHandler := handler.NewAssetHandler(store)
	scoped.GET("/assets", assetHandler.ListAssets)
	scoped.POST("/assets", assetHandler.CreateAsset)
	scoped.DELETE("/assets/:id", assetHandler.DeleteAsset)

	requestHandler := handler.NewRequestHandler(store)
	scoped.GET("/requests", requestHandler.ListRequests)
	scoped.POST("/requests", requestHandler.CreateRequest)
	scoped.PATCH("/requests/:id", requestHandler.UpdateRequestStatus)

	statsHandler := handler.NewStatsHandler(store)
	scoped.GET("/stats", statsHandler.GetStats)

	return r
}
