package middleware

import (
	"dsa_platform_backend/internal/util"
	"dsa_platform_backend/pkg/logger"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestID 客户端传入合法 UUID 时沿用（规范化为小写连字符格式），否则生成新的
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.New().String()
		if parsed, err := uuid.Parse(c.GetHeader(util.RequestIDHeader)); err == nil {
			id = parsed.String()
		}
		c.Set(util.RequestIDKey, id)
		c.Header(util.RequestIDHeader, id)
		c.Next()
	}
}

func AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Log.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("route", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
			zap.String("request_id", c.GetString(util.RequestIDKey)),
		)
	}
}
