package controller

import (
	"dsa_platform_backend/internal/service"
	"dsa_platform_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuestionController struct {
	QuestionService *service.QuestionService
}

func NewQuestionController(questionService *service.QuestionService) *QuestionController {
	return &QuestionController{QuestionService: questionService}
}

// ListAll godoc
// @Summary 分页查询题目
// @Description 按标题模糊搜索（不区分大小写），sort_by 非法时按 id 排序，order 非法时按升序
// @Tags 题目
// @Produce  json
// @Param search query string false "标题关键字"
// @Param sort_by query string false "id | title | difficulty" default(id)
// @Param order query string false "asc | desc" default(asc)
// @Param page query int false "页码，从 1 开始" default(1)
// @Param limit query int false "每页数量" default(10)
// @Success 200 {object} model.QuestionPage
// @Failure 400 {object} util.ErrorResponse "page 或 limit 非正整数"
// @Router /questions/all [get]
func (c *QuestionController) ListAll(ctx *gin.Context) {
	page, limit, err := util.ParsePagination(ctx.Query("page"), ctx.Query("limit"))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	result, err := c.QuestionService.List(ctx.Request.Context(), service.QuestionListParams{
		Search: ctx.Query("search"),
		SortBy: ctx.DefaultQuery("sort_by", "id"),
		Order:  ctx.DefaultQuery("order", "asc"),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.JSON(ctx, result)
}

// ListByTopic godoc
// @Summary 获取专题下的题目
// @Tags 题目
// @Produce  json
// @Param topic_slug path string true "专题 slug"
// @Success 200 {array} model.Question
// @Router /questions/{topic_slug} [get]
func (c *QuestionController) ListByTopic(ctx *gin.Context) {
	questions, err := c.QuestionService.ListByTopic(ctx.Request.Context(), ctx.Param("topic_slug"))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.JSON(ctx, questions)
}

// CountByTopic godoc
// @Summary 各专题题目数量
// @Tags 题目
// @Produce  json
// @Success 200 {object} map[string]int64
// @Router /api/questions/count-by-topic [get]
func (c *QuestionController) CountByTopic(ctx *gin.Context) {
	counts, err := c.QuestionService.CountByTopic(ctx.Request.Context())
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.JSON(ctx, counts)
}
