package controller

import (
	"career_compass_backend/internal/model"
	"career_compass_backend/internal/service"
	"career_compass_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	ProgressService *service.ProgressService
}

func NewProgressController(progressService *service.ProgressService) *ProgressController {
	return &ProgressController{ProgressService: progressService}
}

// LearnedSkillRequest 上报学习技能的请求体
type LearnedSkillRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Proficiency string `json:"proficiency" binding:"omitempty,oneof=beginner intermediate advanced expert"`
	Status      string `json:"status" binding:"omitempty,oneof=learning completed mastered"`
}

// LearnedSkillUpdateRequest 更新学习技能的请求体，缺省字段不改
type LearnedSkillUpdateRequest struct {
	Name        string `json:"name" binding:"omitempty,max=100"`
	Proficiency string `json:"proficiency" binding:"omitempty,oneof=beginner intermediate advanced expert"`
	Status      string `json:"status" binding:"omitempty,oneof=learning completed mastered"`
}

// @Summary 记录档案当前的进度快照
// @Tags 进度
// @Security BearerAuth
// @Produce json
// @Param id path string true "档案ID"
// @Success 201 {object} util.Response
// @Router /api/cvs/{id}/progress/snapshots [post]
func (c *ProgressController) CaptureSnapshot(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	snapshot, err := c.ProgressService.CaptureSnapshot(ctx.Param("id"), user.UserID)
	if err != nil {
		respondProgressError(ctx, err)
		return
	}
	util.Created(ctx, snapshot)
}

// @Summary 获取档案的进度时间轴
// @Tags 进度
// @Security BearerAuth
// @Produce json
// @Param id path string true "档案ID"
// @Success 200 {object} util.Response
// @Router /api/cvs/{id}/progress/timeline [get]
func (c *ProgressController) Timeline(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	snapshots, err := c.ProgressService.Timeline(ctx.Param("id"), user.UserID)
	if err != nil {
		respondProgressError(ctx, err)
		return
	}
	util.Success(ctx, snapshots)
}

// @Summary 获取档案的成长分析
// @Tags 进度
// @Security BearerAuth
// @Produce json
// @Param id path string true "档案ID"
// @Success 200 {object} util.Response
// @Router /api/cvs/{id}/progress/analytics [get]
func (c *ProgressController) Analytics(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	analytics, err := c.ProgressService.Analytics(ctx.Param("id"), user.UserID)
	if err != nil {
		respondProgressError(ctx, err)
		return
	}
	util.Success(ctx, analytics)
}

// @Summary 上报一项学习技能
// @Tags 进度
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "档案ID"
// @Param request body LearnedSkillRequest true "学习技能"
// @Success 201 {object} util.Response
// @Router /api/cvs/{id}/learned-skills [post]
func (c *ProgressController) AddLearnedSkill(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req LearnedSkillRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	skill := &model.LearnedSkill{
		Name:        req.Name,
		Proficiency: model.ProficiencyLevel(req.Proficiency),
		Status:      model.LearnedSkillStatus(req.Status),
	}
	if err := c.ProgressService.AddLearnedSkill(ctx.Param("id"), user.UserID, skill); err != nil {
		respondProgressError(ctx, err)
		return
	}
	util.Created(ctx, skill)
}

// @Summary 获取档案的学习技能列表
// @Tags 进度
// @Security BearerAuth
// @Produce json
// @Param id path string true "档案ID"
// @Success 200 {object} util.Response
// @Router /api/cvs/{id}/learned-skills [get]
func (c *ProgressController) ListLearnedSkills(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	skills, err := c.ProgressService.ListLearnedSkills(ctx.Param("id"), user.UserID)
	if err != nil {
		respondProgressError(ctx, err)
		return
	}
	util.Success(ctx, skills)
}

// @Summary 更新一项学习技能
// @Tags 进度
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "档案ID"
// @Param skillId path int true "技能ID"
// @Param request body LearnedSkillUpdateRequest true "要更新的字段"
// @Success 200 {object} util.Response
// @Router /api/cvs/{id}/learned-skills/{skillId} [put]
func (c *ProgressController) UpdateLearnedSkill(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req LearnedSkillUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	update := &model.LearnedSkill{
		Name:        req.Name,
		Proficiency: model.ProficiencyLevel(req.Proficiency),
		Status:      model.LearnedSkillStatus(req.Status),
	}
	skill, err := c.ProgressService.UpdateLearnedSkill(
		ctx.Param("id"), user.UserID, util.MustParseUint(ctx.Param("skillId")), update)
	if err != nil {
		respondProgressError(ctx, err)
		return
	}
	util.Success(ctx, skill)
}

// @Summary 删除一项学习技能
// @Tags 进度
// @Security BearerAuth
// @Produce json
// @Param id path string true "档案ID"
// @Param skillId path int true "技能ID"
// @Success 200 {object} util.Response
// @Router /api/cvs/{id}/learned-skills/{skillId} [delete]
func (c *ProgressController) DeleteLearnedSkill(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	err := c.ProgressService.DeleteLearnedSkill(
		ctx.Param("id"), user.UserID, util.MustParseUint(ctx.Param("skillId")))
	if err != nil {
		respondProgressError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

func respondProgressError(ctx *gin.Context, err error) {
	switch err {
	case util.ErrCVNotFound, util.ErrLearnedSkillNotFound:
		util.NotFound(ctx, err.Error())
	case util.ErrPermissionDenied:
		util.Forbidden(ctx)
	default:
		util.LogInternalError(ctx, err)
	}
}
