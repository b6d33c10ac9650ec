package controller

import (
	"dsa_platform_backend/internal/service"
	"dsa_platform_backend/internal/util"
	"net/http"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{AuthService: authService}
}

// swagger:model SignupRequest
type SignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,max=72"`
}

// Signup godoc
// @Summary 注册新用户
// @Description 用户名取邮箱 @ 前的部分，密码以 bcrypt 哈希保存
// @Tags 认证
// @Accept  json
// @Produce  json
// @Param   body body SignupRequest true "注册信息"
// @Success 201 {object} util.Response "注册成功"
// @Failure 400 {object} util.ErrorResponse "缺少邮箱或密码"
// @Failure 409 {object} util.ErrorResponse "邮箱已被注册"
// @Router /signup [post]
func (c *AuthController) Signup(ctx *gin.Context) {
	var req SignupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.HandleError(ctx, &util.ValidationError{Err: err})
		return
	}

	if _, err := c.AuthService.Signup(ctx.Request.Context(), req.Email, req.Password); err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Created(ctx, "Signup successful")
}

// swagger:model LoginRequest
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login godoc
// @Summary 用户登录
// @Description 邮箱不存在和密码错误返回相同的 401
// @Tags 认证
// @Accept  json
// @Produce  json
// @Param   body body LoginRequest true "登录凭据"
// @Success 200 {object} object "user 与 token"
// @Failure 400 {object} util.ErrorResponse "缺少邮箱或密码"
// @Failure 401 {object} util.ErrorResponse "凭据无效"
// @Router /login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.HandleError(ctx, &util.ValidationError{Err: err})
		return
	}

	result, err := c.AuthService.Login(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"user":    result.User,
		"token":   result.Token,
	})
}
