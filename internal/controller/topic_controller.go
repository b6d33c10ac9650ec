package controller

import (
	"dsa_platform_backend/internal/model"
	"dsa_platform_backend/internal/service"
	"dsa_platform_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type TopicController struct {
	TopicService *service.TopicService
}

func NewTopicController(topicService *service.TopicService) *TopicController {
	return &TopicController{TopicService: topicService}
}

// List godoc
// @Summary 获取全部专题
// @Tags 专题
// @Produce  json
// @Success 200 {array} model.Topic
// @Router /api/topics [get]
func (c *TopicController) List(ctx *gin.Context) {
	topics, err := c.TopicService.List(ctx.Request.Context())
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.JSON(ctx, topics)
}

// swagger:model ExplanationRequest
type ExplanationRequest struct {
	Definition *string `json:"definition"`
	Discussion *string `json:"discussion"`
	Example    *string `json:"example"`
	Types      *string `json:"types"`
	Visual     *string `json:"visual"`
}

// SaveExplanation godoc
// @Summary 新增或覆盖专题讲解
// @Tags 专题
// @Accept  json
// @Produce  json
// @Param topic_slug path string true "专题 slug"
// @Param body body ExplanationRequest true "讲解内容"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.ErrorResponse
// @Router /explanation/{topic_slug} [post]
func (c *TopicController) SaveExplanation(ctx *gin.Context) {
	var req ExplanationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.HandleError(ctx, &util.ValidationError{Err: err})
		return
	}

	explanation := &model.Explanation{
		Definition: req.Definition,
		Discussion: req.Discussion,
		Example:    req.Example,
		Types:      req.Types,
		Visual:     req.Visual,
	}
	if err := c.TopicService.SaveExplanation(ctx.Request.Context(), ctx.Param("topic_slug"), explanation); err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.OK(ctx, "Explanation saved!")
}

// GetExplanation 不存在时返回 {}
func (c *TopicController) GetExplanation(ctx *gin.Context) {
	explanation, err := c.TopicService.GetExplanation(ctx.Request.Context(), ctx.Param("topic_slug"))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	if explanation == nil {
		util.JSON(ctx, gin.H{})
		return
	}

	util.JSON(ctx, explanation)
}
