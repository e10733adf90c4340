package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/perkstack/loyalty/internal/server/http/handlers"
	"github.com/perkstack/loyalty/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.LoyaltyFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	customerHandler := handlers.NewCustomerHandler(facade)
	pointsHandler := handlers.NewPointsHandler(facade)
	rewardHandler := handlers.NewRewardHandler(facade)
	settingsHandler := handlers.NewSettingsHandler(facade)

	api := engine.Group("/api")
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	authed := api.Group("")
	authed.Use(middleware.AuthRequired(facade))
	authed.GET("/customers/me", customerHandler.Me)
	authed.GET("/points/history", pointsHandler.History)
	authed.GET("/rewards", rewardHandler.List)
	authed.GET("/rewards/:id", rewardHandler.Get)
	authed.POST("/rewards/:id/redeem", rewardHandler.Redeem)

	admin := authed.Group("/admin")
	admin.Use(middleware.AdminRequired())
	admin.GET("/customers", customerHandler.List)
	admin.GET("/customers/:id", customerHandler.Get)
	admin.GET("/customers/barcode/:barcode", customerHandler.GetByBarcode)
	admin.POST("/points", pointsHandler.Record)
	admin.POST("/points/purchase", pointsHandler.Purchase)
	admin.POST("/points/scan", pointsHandler.Scan)
	admin.GET("/points/expiring", pointsHandler.Expiring)
	admin.POST("/rewards", rewardHandler.Create)
	admin.PUT("/rewards/:id", rewardHandler.Update)
	admin.DELETE("/rewards/:id", rewardHandler.Delete)
	admin.GET("/settings", settingsHandler.Get)
	admin.PUT("/settings", settingsHandler.Update)

	return engine
}
