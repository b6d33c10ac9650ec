package controller

import (
	"dsa_platform_backend/internal/service"
	"dsa_platform_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type StatsController struct {
	StatsService *service.StatsService
}

func NewStatsController(statsService *service.StatsService) *StatsController {
	return &StatsController{StatsService: statsService}
}

// UserStats godoc
// @Summary 用户统计
// @Description avgTime 为配置中的占位值
// @Tags 统计
// @Produce  json
// @Param user_id path int true "用户 ID"
// @Success 200 {object} model.UserStats
// @Router /user/stats/{user_id} [get]
func (c *StatsController) UserStats(ctx *gin.Context) {
	userID, err := util.ParseUserID(ctx.Param("user_id"))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	stats, err := c.StatsService.UserStats(ctx.Request.Context(), userID)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.JSON(ctx, stats)
}

// Leaderboard godoc
// @Summary 排行榜
// @Description 按完成题数降序，同分按用户 ID 升序
// @Tags 统计
// @Produce  json
// @Success 200 {array} model.LeaderboardEntry
// @Router /leaderboard [get]
func (c *StatsController) Leaderboard(ctx *gin.Context) {
	entries, err := c.StatsService.Leaderboard(ctx.Request.Context())
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.JSON(ctx, entries)
}
