package controller

import (
	"dsa_platform_backend/internal/model"
	"dsa_platform_backend/internal/service"
	"dsa_platform_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ProfileController struct {
	ProfileService *service.ProfileService
}

func NewProfileController(profileService *service.ProfileService) *ProfileController {
	return &ProfileController{ProfileService: profileService}
}

// swagger:model ProfileRequest
type ProfileRequest struct {
	Name         string `json:"name"`
	Gender       string `json:"gender"`
	Location     string `json:"location"`
	Birthday     string `json:"birthday"`
	Summary      string `json:"summary"`
	WebsiteLinks string `json:"website_links"`
	Github       string `json:"github"`
	Linkedin     string `json:"linkedin"`
	Twitter      string `json:"twitter"`
	Experience   string `json:"experience"`
	Education    string `json:"education"`
	Skills       string `json:"skills"`
}

// Get godoc
// @Summary 获取用户资料
// @Tags 用户
// @Produce  json
// @Param user_id path int true "用户 ID"
// @Success 200 {object} model.UserProfile "没有资料时返回 {}"
// @Router /user/profile/{user_id} [get]
func (c *ProfileController) Get(ctx *gin.Context) {
	userID, err := util.ParseUserID(ctx.Param("user_id"))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	profile, err := c.ProfileService.Get(ctx.Request.Context(), userID)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	if profile == nil {
		util.JSON(ctx, gin.H{})
		return
	}

	util.JSON(ctx, profile)
}

// Save godoc
// @Summary 保存用户资料
// @Description 整行覆盖，未提供的字段保存为空字符串。携带 token 时只能修改自己的资料
// @Tags 用户
// @Accept  json
// @Produce  json
// @Param user_id path int true "用户 ID"
// @Param body body ProfileRequest true "用户资料"
// @Success 200 {object} object
// @Failure 403 {object} util.ErrorResponse
// @Router /user/profile/{user_id} [post]
func (c *ProfileController) Save(ctx *gin.Context) {
	userID, err := util.ParseUserID(ctx.Param("user_id"))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	if current, ok := util.CurrentUserID(ctx); ok && current != userID {
		util.HandleError(ctx, util.ErrPermissionDenied)
		return
	}

	var req ProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.HandleError(ctx, &util.ValidationError{Err: err})
		return
	}

	profile := &model.UserProfile{
		Name:         req.Name,
		Gender:       req.Gender,
		Location:     req.Location,
		Birthday:     req.Birthday,
		Summary:      req.Summary,
		WebsiteLinks: req.WebsiteLinks,
		Github:       req.Github,
		Linkedin:     req.Linkedin,
		Twitter:      req.Twitter,
		Experience:   req.Experience,
		Education:    req.Education,
		Skills:       req.Skills,
	}
	if err := c.ProfileService.Save(ctx.Request.Context(), userID, profile); err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.JSON(ctx, gin.H{"message": "Profile saved successfully."})
}
