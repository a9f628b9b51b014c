package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/yungbote/kanban-backend/internal/handlers"
	"github.com/yungbote/kanban-backend/internal/middleware"
)

type RouterConfig struct {
	ServiceName     string
	AllowedOrigins  []string
	RequestLogger   *middleware.RequestLogger
	TagHandler      *handlers.TagHandler
	UserHandler     *handlers.UserHandler
	WorkItemHandler *handlers.WorkItemHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(otelgin.Middleware(cfg.ServiceName))
	if cfg.RequestLogger != nil {
		router.Use(cfg.RequestLogger.Handler())
	}

	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With", middleware.RequestIDHeader},
		AllowCredentials: true,
	}))

	router.GET("/healthcheck", handlers.HealthCheck)

	api := router.Group("/api")
	{
		tags := api.Group("/tags")
		tags.POST("", cfg.TagHandler.Create)
		tags.GET("", cfg.TagHandler.Read)
		tags.GET("/:id", cfg.TagHandler.Find)
		tags.PUT("/:id", cfg.TagHandler.Update)
		tags.DELETE("/:id", cfg.TagHandler.Delete)

		users := api.Group("/users")
		users.POST("", cfg.UserHandler.Create)
		users.GET("", cfg.UserHandler.Read)
		users.GET("/:id", cfg.UserHandler.Find)
		users.PUT("/:id", cfg.UserHandler.Update)
		users.DELETE("/:id", cfg.UserHandler.Delete)

		items := api.Group("/items")
		items.POST("", cfg.WorkItemHandler.Create)
		items.GET("", cfg.WorkItemHandler.Read)
		items.GET("/removed", cfg.WorkItemHandler.ReadRemoved)
		items.GET("/state/:state", cfg.WorkItemHandler.ReadByState)
		items.GET("/tag/:name", cfg.WorkItemHandler.ReadByTag)
		items.GET("/user/:id", cfg.WorkItemHandler.ReadByUser)
		items.GET("/:id", cfg.WorkItemHandler.Find)
		items.PUT("/:id", cfg.WorkItemHandler.Update)
		items.DELETE("/:id", cfg.WorkItemHandler.Delete)
	}

	return router
}
