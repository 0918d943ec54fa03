package controller

import (
	"career_compass_backend/internal/service"
	"career_compass_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type PathwayController struct {
	CatalogService *service.CatalogService
}

func NewPathwayController(catalogService *service.CatalogService) *PathwayController {
	return &PathwayController{CatalogService: catalogService}
}

// @Summary 获取职业通路目录
// @Tags 通路目录
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/pathways [get]
func (c *PathwayController) ListPathways(ctx *gin.Context) {
	util.Success(ctx, c.CatalogService.ListPathways())
}

// @Summary 立即重载通路目录（管理员）
// @Tags 通路目录
// @Security BearerAuth
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/admin/catalog/reload [post]
func (c *PathwayController) ReloadCatalog(ctx *gin.Context) {
	if err := c.CatalogService.Reload(); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	catalog := c.CatalogService.Snapshot()
	util.Success(ctx, gin.H{
		"version":  catalog.Version,
		"pathways": catalog.Len(),
	})
}

// @Summary 获取单条职业通路定义
// @Tags 通路目录
// @Produce json
// @Param name path string true "通路名称"
// @Success 200 {object} util.Response
// @Router /api/pathways/{name} [get]
func (c *PathwayController) GetPathway(ctx *gin.Context) {
	pathway, err := c.CatalogService.FindPathway(ctx.Param("name"))
	if err != nil {
		util.NotFound(ctx, err.Error())
		return
	}
	util.Success(ctx, pathway)
}
