package app

import (
	"dsa_platform_backend/docs"
	"dsa_platform_backend/internal/config"
	"dsa_platform_backend/internal/middleware"
	"dsa_platform_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	router.GET("/", c.health.Home)
	router.GET("/health", c.health.HealthCheck)

	// 1. 认证
	router.POST("/signup", c.auth.Signup)
	router.POST("/login", c.auth.Login)

	// 2. 题目与专题
	a.registerContentRoutes(router, c)

	// 3. 进度、统计与用户资料
	a.registerUserRoutes(router, c, cfg)
}

func (a *App) registerContentRoutes(router *gin.Engine, c *controllers) {
	router.GET("/questions/all", c.question.ListAll)
	router.GET("/questions/:topic_slug", c.question.ListByTopic)

	router.GET("/topics", c.topic.List)
	router.GET("/explanation/:topic_slug", c.topic.GetExplanation)
	router.POST("/explanation/:topic_slug", c.topic.SaveExplanation)

	api := router.Group("/api")
	{
		api.GET("/topics", c.topic.List)
		api.GET("/questions/count-by-topic", c.question.CountByTopic)
	}
}

func (a *App) registerUserRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	router.GET("/leaderboard", c.stats.Leaderboard)

	router.POST("/attempt", c.progress.RecordAttempt)
	router.GET("/progress/:user_id", c.progress.AttemptedQuestions)

	user := router.Group("/user")
	user.Use(middleware.TryAuthMiddleware(cfg))
	{
		user.GET("/stats/:user_id", c.stats.UserStats)
		user.POST("/progress", c.progress.MarkCompleted)
		user.GET("/profile/:user_id", c.profile.Get)
		user.POST("/profile/:user_id", c.profile.Save)
	}

	api := router.Group("/api")
	{
		api.GET("/progress/:user_id", c.progress.SolvedByTopic)
		api.GET("/user/:user_id/progress", c.progress.Summary)
	}
}
