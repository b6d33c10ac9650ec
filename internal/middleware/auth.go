package middleware

import (
	"dsa_platform_backend/internal/config"
	"dsa_platform_backend/internal/util"
	"dsa_platform_backend/pkg/logger"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TryAuthMiddleware 可选认证：没有 token 直接放行；带了 token 则必须有效
func TryAuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		claims, err := util.ParseJWT(tokenString, cfg.JWT.Secret)
		if err != nil {
			logger.Log.Debug("JWT parse failed",
				zap.Error(err),
				zap.String("request_id", c.GetString(util.RequestIDKey)))
			util.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(util.UserClaimsKey, claims)
		c.Next()
	}
}
