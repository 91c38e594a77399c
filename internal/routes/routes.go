package routes

import (
	"visionvault_backend/internal/handlers"
	"visionvault_backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterRoutes mounts the API under /api/v1 together with the
// operational endpoints and, for local storage, the uploaded files.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers, store storage.Storage) {
	api := ginRouter.Group("/api/v1")
	{
		appHandlers.Designer.RegisterRoutes(api)
		appHandlers.Consumer.RegisterRoutes(api)
		appHandlers.JobPost.RegisterRoutes(api)
		appHandlers.Post.RegisterRoutes(api)
	}

	ginRouter.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	ginRouter.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if local, ok := store.(*storage.LocalStorage); ok {
		ginRouter.Static("/uploads", local.BasePath())
	}
}
