package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/DaBenjle/aonapi/internal/handlers"
	"github.com/DaBenjle/aonapi/internal/middleware"
)

type RouterConfig struct {
	NethysHandler *handlers.NethysHandler
	ServiceName   string
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "X-Requested-With", "X-Request-ID"},
		AllowCredentials: false,
	}))
	router.Use(middleware.RequestID())
	router.Use(otelgin.Middleware(cfg.ServiceName))

	router.GET("/healthcheck", handlers.HealthCheck)

	router.GET("/categories", cfg.NethysHandler.GetCategories)
	router.GET("/category/:id/uuids", cfg.NethysHandler.GetUUIDs)
	router.GET("/fetch/:uuid", cfg.NethysHandler.FetchByUUID)
	router.PATCH("/uuid/:uuid/label", cfg.NethysHandler.UpdateLabel)

	return router
}
