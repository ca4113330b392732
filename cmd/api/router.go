package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"giftlist-backend/internal/shared/middleware"
	"giftlist-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Metrics(),
		middleware.CORS(c.Config.App.FrontendOrigin),
	)

	router.GET("/health", healthCheckHandler(c))
	router.GET("/metrics", middleware.MetricsHandler())

	v1 := router.Group("/api/v1")
	{
		setupAuthRoutes(v1, c)
		setupListRoutes(v1, c)
		setupItemRoutes(v1, c)
	}

	return router
}

func setupAuthRoutes(v1 *gin.RouterGroup, c *container.Container) {
	auth := v1.Group("/auth")
	{
		auth.POST("/register", c.AuthHandler.Register)
		auth.POST("/login", c.AuthHandler.Login)
		auth.POST("/refresh", c.AuthHandler.Refresh)
	}
}

func setupListRoutes(v1 *gin.RouterGroup, c *container.Container) {
	lists := v1.Group("/lists")

	// Guest surface. Access needs nothing; the public page accepts a guest
	// session or a celebrant previewing their own list.
	lists.POST("/:slug/access", c.GuestHandler.RequestAccess)
	lists.GET("/:slug", middleware.GuestOrOwnerMiddleware(c.JWTManager), c.ListHandler.GetPublic)

	// Celebrant surface.
	auth := lists.Group("")
	auth.Use(middleware.AuthMiddleware(c.JWTManager))
	{
		auth.GET("", c.ListHandler.GetOwned)
		auth.POST("", c.ListHandler.Create)
		auth.GET("/:slug/manage", c.ListHandler.GetManage)
		auth.PATCH("/:slug/manage", c.ListHandler.Update)
		auth.POST("/:slug/image", c.ListHandler.UploadImage)
		auth.POST("/:slug/items", c.ItemHandler.Create)
		auth.DELETE("/:id", c.ListHandler.Delete)
	}
}

func setupItemRoutes(v1 *gin.RouterGroup, c *container.Container) {
	items := v1.Group("/items")

	// Guest claim surface. GuestMiddleware never passes synthetic
	// identities, so celebrants cannot reach these.
	guest := items.Group("")
	guest.Use(middleware.GuestMiddleware(c.JWTManager))
	{
		guest.POST("/:id/claim", c.ClaimHandler.Claim)
		guest.POST("/:id/unclaim", c.ClaimHandler.Unclaim)
	}

	// Celebrant surface. Item creation lives under the list resource, in
	// setupListRoutes.
	auth := items.Group("")
	auth.Use(middleware.AuthMiddleware(c.JWTManager))
	{
		auth.PATCH("/:id", c.ItemHandler.Update)
		auth.DELETE("/:id", c.ItemHandler.Delete)
	}
}

// healthStatus degrades when any dependency is down. Redis counts: it backs
// the notification broker, so the service is not healthy without it.
func healthStatus(services map[string]string) (string, int) {
	for _, state := range services {
		if state != "UP" {
			return "degraded", http.StatusServiceUnavailable
		}
	}
	return "ok", http.StatusOK
}

func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		services := appCtx.HealthCheck(ctx)
		status, statusCode := healthStatus(services)

		c.JSON(statusCode, gin.H{
			"status":    status,
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
			"services":  services,
		})
	}
}
