package controller

import (
	"career_compass_backend/internal/service"
	"career_compass_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type RoadmapController struct {
	RoadmapService *service.RoadmapService
}

func NewRoadmapController(roadmapService *service.RoadmapService) *RoadmapController {
	return &RoadmapController{RoadmapService: roadmapService}
}

// @Summary 为指定通路生成学习路线图
// @Tags 路线图
// @Security BearerAuth
// @Produce json
// @Param id path string true "档案ID"
// @Param pathway path string true "通路名称"
// @Success 201 {object} util.Response
// @Router /api/cvs/{id}/roadmaps/{pathway} [post]
func (c *RoadmapController) Generate(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	roadmap, err := c.RoadmapService.Generate(ctx.Param("id"), user.UserID, ctx.Param("pathway"))
	if err != nil {
		respondRoadmapError(ctx, err)
		return
	}
	util.Created(ctx, roadmap)
}

// @Summary 获取档案的历史路线图列表
// @Tags 路线图
// @Security BearerAuth
// @Produce json
// @Param id path string true "档案ID"
// @Success 200 {object} util.Response
// @Router /api/cvs/{id}/roadmaps [get]
func (c *RoadmapController) List(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	records, err := c.RoadmapService.List(ctx.Param("id"), user.UserID)
	if err != nil {
		respondRoadmapError(ctx, err)
		return
	}
	util.Success(ctx, records)
}

// @Summary 获取单条历史路线图全文
// @Tags 路线图
// @Security BearerAuth
// @Produce json
// @Param roadmapId path int true "路线图ID"
// @Success 200 {object} util.Response
// @Router /api/roadmaps/{roadmapId} [get]
func (c *RoadmapController) Get(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	roadmap, err := c.RoadmapService.Get(util.MustParseUint(ctx.Param("roadmapId")), user.UserID)
	if err != nil {
		respondRoadmapError(ctx, err)
		return
	}
	util.Success(ctx, roadmap)
}

func respondRoadmapError(ctx *gin.Context, err error) {
	switch err {
	case util.ErrCVNotFound, util.ErrPathwayNotFound:
		util.NotFound(ctx, err.Error())
	case util.ErrPermissionDenied:
		util.Forbidden(ctx)
	case util.ErrCatalogUnavailable:
		util.Error(ctx, 503, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}
