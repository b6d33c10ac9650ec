package util

import (
	"dsa_platform_backend/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Response 写操作的确认信息
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ErrorResponse 统一错误结构，不包含内部错误细节
type ErrorResponse struct {
	Success bool      `json:"success"`
	Error   ErrorKind `json:"error"`
	Message string    `json:"message"`
}

// JSON 直接返回数据本身，前端按原始结构读取
func JSON(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

func OK(c *gin.Context, message string) {
	c.JSON(http.StatusOK, Response{Success: true, Message: message})
}

func Created(c *gin.Context, message string) {
	c.JSON(http.StatusCreated, Response{Success: true, Message: message})
}

func Error(c *gin.Context, code int, kind ErrorKind, message string) {
	c.JSON(code, ErrorResponse{
		Success: false,
		Error:   kind,
		Message: message,
	})
}

func Unauthorized(c *gin.Context) {
	Error(c, http.StatusUnauthorized, KindUnauthorized, ErrInvalidCredentials.Error())
}

func Forbidden(c *gin.Context) {
	Error(c, http.StatusForbidden, KindForbidden, ErrPermissionDenied.Error())
}

// HandleError 根据错误类型写响应，500 类错误只记录日志不外泄
func HandleError(c *gin.Context, err error) {
	status, kind, message := Classify(err)

	fields := []zap.Field{
		zap.Error(err),
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.String("request_id", c.GetString(RequestIDKey)),
	}
	if kind == KindInternal {
		logger.Log.Error("Internal server error", fields...)
	} else {
		logger.Log.Debug("Request rejected", append(fields, zap.String("kind", string(kind)))...)
	}

	Error(c, status, kind, message)
}
