package api

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"cvmaker/internal/api/middleware"
	"cvmaker/internal/assistant"
	"cvmaker/internal/auth"
	"cvmaker/internal/objstore"
	"cvmaker/internal/store"
)

// RegisterRoutes wires all API routes under /v1.
func RegisterRoutes(
	router *gin.Engine,
	db *gorm.DB,
	cvStore *store.Store,
	asynqClient *asynq.Client,
	authService *auth.AuthService,
	redisClient *redis.Client,
	objClient *objstore.Client,
	assistantClient *assistant.Client,
	logger *slog.Logger,
) {
	cvHandler := NewCVHandler(cvStore, logger)
	templateHandler := NewTemplateHandler()
	exportHandler := NewExportHandler(cvStore, asynqClient, objClient)
	assistantHandler := NewAssistantHandler(assistantClient, cvStore)
	authHandler := NewAuthHandler(db, authService, logger)
	wsHandler := NewWsHandler(redisClient, authService, logger)
	authMiddleware := middleware.AuthMiddleware(authService)

	v1 := router.Group("/v1")
	{
		v1.GET("/ws", wsHandler.HandleConnection)

		authGroup := v1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}

		templateGroup := v1.Group("/templates")
		{
			templateGroup.GET("", templateHandler.ListTemplates)
			templateGroup.GET("/:id", templateHandler.GetTemplate)
			templateGroup.GET("/:id/preview", templateHandler.PreviewTemplate)
		}

		cvGroup := v1.Group("/cv")
		cvGroup.Use(authMiddleware)
		{
			cvGroup.POST("", cvHandler.CreateCV)
			cvGroup.GET("", cvHandler.ListCVs)
			cvGroup.GET("/latest", cvHandler.GetLatestCV)
			cvGroup.GET("/:id", cvHandler.GetCV)
			cvGroup.PATCH("/:id", cvHandler.PatchCV)
			cvGroup.PATCH("/:id/template", cvHandler.SetTemplate)
			cvGroup.DELETE("/:id", cvHandler.DeleteCV)
			cvGroup.GET("/:id/preview", cvHandler.PreviewCV)
			cvGroup.POST("/:id/export", exportHandler.StartExport)
			cvGroup.GET("/:id/export", exportHandler.ExportStatus)
			cvGroup.GET("/:id/export/download", exportHandler.DownloadLink)
		}

		assistantGroup := v1.Group("/assistant")
		assistantGroup.Use(authMiddleware)
		{
			assistantGroup.POST("/improve", assistantHandler.Improve)
			assistantGroup.GET("/health", assistantHandler.Health)
		}
	}
}
