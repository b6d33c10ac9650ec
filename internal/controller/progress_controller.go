package controller

import (
	"dsa_platform_backend/internal/service"
	"dsa_platform_backend/internal/util"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	ProgressService *service.ProgressService
}

func NewProgressController(progressService *service.ProgressService) *ProgressController {
	return &ProgressController{ProgressService: progressService}
}

// swagger:model ProgressRequest
type ProgressRequest struct {
	UserID     uint   `json:"user_id" binding:"required"`
	TopicSlug  string `json:"topic_slug" binding:"required"`
	QuestionID uint   `json:"question_id" binding:"required"`
}

// MarkCompleted godoc
// @Summary 标记题目已完成
// @Description 重复提交会刷新完成时间
// @Tags 进度
// @Accept  json
// @Produce  json
// @Param body body ProgressRequest true "完成记录"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.ErrorResponse "缺少字段"
// @Router /user/progress [post]
func (c *ProgressController) MarkCompleted(ctx *gin.Context) {
	var req ProgressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.HandleError(ctx, &util.ValidationError{Err: err})
		return
	}

	if err := c.ProgressService.MarkCompleted(ctx.Request.Context(), req.UserID, req.TopicSlug, req.QuestionID); err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.OK(ctx, "Progress updated!")
}

// RecordAttempt godoc
// @Summary 记录一次尝试
// @Tags 进度
// @Accept  json
// @Produce  json
// @Param body body ProgressRequest true "尝试记录"
// @Success 201 {object} object
// @Failure 400 {object} util.ErrorResponse "缺少字段"
// @Router /attempt [post]
func (c *ProgressController) RecordAttempt(ctx *gin.Context) {
	var req ProgressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.HandleError(ctx, &util.ValidationError{Err: err})
		return
	}

	if err := c.ProgressService.RecordAttempt(ctx.Request.Context(), req.UserID, req.TopicSlug, req.QuestionID); err != nil {
		util.HandleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"message": "Attempt recorded"})
}

// SolvedByTopic godoc
// @Summary 各专题已完成题数
// @Tags 进度
// @Produce  json
// @Param user_id path int true "用户 ID"
// @Success 200 {array} model.TopicSolvedCount
// @Router /api/progress/{user_id} [get]
func (c *ProgressController) SolvedByTopic(ctx *gin.Context) {
	userID, err := util.ParseUserID(ctx.Param("user_id"))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	result, err := c.ProgressService.SolvedByTopic(ctx.Request.Context(), userID)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.JSON(ctx, result)
}

// AttemptedQuestions godoc
// @Summary 各专题尝试过的题目 ID
// @Tags 进度
// @Produce  json
// @Param user_id path int true "用户 ID"
// @Success 200 {object} map[string][]int
// @Router /progress/{user_id} [get]
func (c *ProgressController) AttemptedQuestions(ctx *gin.Context) {
	userID, err := util.ParseUserID(ctx.Param("user_id"))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	result, err := c.ProgressService.AttemptedQuestions(ctx.Request.Context(), userID)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.JSON(ctx, result)
}

// Summary godoc
// @Summary 各专题完成数与尝试数
// @Description 完成记录与尝试记录按专题取并集
// @Tags 进度
// @Produce  json
// @Param user_id path int true "用户 ID"
// @Success 200 {array} model.TopicProgress
// @Router /api/user/{user_id}/progress [get]
func (c *ProgressController) Summary(ctx *gin.Context) {
	userID, err := util.ParseUserID(ctx.Param("user_id"))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	result, err := c.ProgressService.Summary(ctx.Request.Context(), userID)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.JSON(ctx, result)
}
