package controller

import (
	"dsa_platform_backend/internal/util"
	"dsa_platform_backend/pkg/database"
	"dsa_platform_backend/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type HealthController struct {
	DB    *gorm.DB
	Redis *redis.Client
}

func NewHealthController(db *gorm.DB, rdb *redis.Client) *HealthController {
	return &HealthController{DB: db, Redis: rdb}
}

func (c *HealthController) Home(ctx *gin.Context) {
	ctx.String(http.StatusOK, "Backend Running Successfully!")
}

// @Summary 健康检查
// @Description 检查数据库（以及已配置的 Redis）连接
// @Tags 系统
// @Produce json
// @Success 200 {object} object
// @Failure 503 {object} util.ErrorResponse
// @Router /health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	components := gin.H{}

	if err := database.Ping(c.DB); err != nil {
		logger.Log.Error("Database health check failed", zap.Error(err))
		util.Error(ctx, http.StatusServiceUnavailable, util.KindInternal, "Database unavailable")
		return
	}
	components["database"] = "up"

	if c.Redis != nil {
		if err := c.Redis.Ping(ctx.Request.Context()).Err(); err != nil {
			logger.Log.Error("Redis health check failed", zap.Error(err))
			util.Error(ctx, http.StatusServiceUnavailable, util.KindInternal, "Redis unavailable")
			return
		}
		components["redis"] = "up"
	}

	util.JSON(ctx, gin.H{
		"status":     "ok",
		"components": components,
	})
}
