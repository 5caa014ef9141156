package api

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"assinatura/internal/auth"
	"assinatura/internal/config"
)

// RegisterRoutes binds every handler under the /api prefix.
func RegisterRoutes(
	router *gin.Engine,
	users UserStore,
	templates TemplateStore,
	assetStorage AssetStorage,
	tokens *auth.TokenService,
	cfg *config.Config,
	logger *slog.Logger,
) {
	userHandler := NewUserHandler(users, tokens, logger)
	templateHandler := NewTemplateHandler(templates, assetStorage, cfg.Clamd.Addr, logger)
	exportHandler := NewExportHandler(logger)

	apiGroup := router.Group("/api")

	usersGroup := apiGroup.Group("/users")
	{
		usersGroup.POST("/register", userHandler.Register)
		usersGroup.POST("/login", userHandler.Login)
		usersGroup.GET("/", userHandler.ListOrGetByName)
		usersGroup.GET("/:id", userHandler.ListOrGetByName)
		usersGroup.PUT("/update/:id", userHandler.Update)
		usersGroup.DELETE("/delete/:id", userHandler.Delete)
	}

	templatesGroup := apiGroup.Group("/templates")
	{
		templatesGroup.POST("/create", templateHandler.Create)
		templatesGroup.GET("/", templateHandler.ListOrGetByID)
		templatesGroup.GET("/:id", templateHandler.ListOrGetByID)
		templatesGroup.PUT("/update/:id", templateHandler.Update)
		templatesGroup.DELETE("/delete/:id", templateHandler.Delete)
	}

	exportGroup := apiGroup.Group("/export")
	{
		exportGroup.POST("/signature", exportHandler.Signature)
	}
}
