package controller

import (
	"career_compass_backend/internal/service"
	"career_compass_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type RecommendationController struct {
	RecommendationService *service.RecommendationService
}

func NewRecommendationController(recommendationService *service.RecommendationService) *RecommendationController {
	return &RecommendationController{RecommendationService: recommendationService}
}

// @Summary 为简历档案生成通路推荐
// @Tags 推荐
// @Security BearerAuth
// @Produce json
// @Param id path string true "档案ID"
// @Success 200 {object} util.Response
// @Router /api/cvs/{id}/recommendations [post]
func (c *RecommendationController) Generate(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	results, err := c.RecommendationService.Generate(ctx.Request.Context(), ctx.Param("id"), user.UserID)
	if err != nil {
		respondRecommendationError(ctx, err)
		return
	}

	// 空列表是合法结果：档案没有越过分数线的技术信号
	util.Success(ctx, results)
}

// @Summary 获取简历档案的最近一次推荐结果
// @Tags 推荐
// @Security BearerAuth
// @Produce json
// @Param id path string true "档案ID"
// @Success 200 {object} util.Response
// @Router /api/cvs/{id}/recommendations [get]
func (c *RecommendationController) List(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	results, err := c.RecommendationService.GetCached(ctx.Request.Context(), ctx.Param("id"), user.UserID)
	if err != nil {
		respondRecommendationError(ctx, err)
		return
	}
	util.Success(ctx, results)
}

func respondRecommendationError(ctx *gin.Context, err error) {
	switch err {
	case util.ErrCVNotFound:
		util.NotFound(ctx, err.Error())
	case util.ErrPermissionDenied:
		util.Forbidden(ctx)
	case util.ErrCatalogUnavailable:
		util.Error(ctx, 503, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}
