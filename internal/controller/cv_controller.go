package controller

import (
	"career_compass_backend/internal/model"
	"career_compass_backend/internal/service"
	"career_compass_backend/internal/util"
	"strings"

	"github.com/gin-gonic/gin"
)

type CVController struct {
	CVService *service.CVService
}

func NewCVController(cvService *service.CVService) *CVController {
	return &CVController{CVService: cvService}
}

type CVSkillRequest struct {
	Name       string  `json:"name" binding:"required"`
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
}

type CVWorkExperienceRequest struct {
	JobTitle       string   `json:"jobTitle" binding:"required"`
	CompanyName    string   `json:"companyName"`
	StartDate      string   `json:"startDate"`
	EndDate        string   `json:"endDate"`
	DurationMonths int      `json:"durationMonths"`
	Description    string   `json:"description"`
	Technologies   []string `json:"technologies"`
	IsCurrent      bool     `json:"isCurrent"`
}

type CreateCVRequest struct {
	FileName        string                    `json:"fileName"`
	YearsExperience float64                   `json:"yearsExperience"`
	EducationLevel  string                    `json:"educationLevel"`
	Skills          []CVSkillRequest          `json:"skills"`
	WorkExperiences []CVWorkExperienceRequest `json:"workExperiences"`
}

// @Summary 提交结构化简历档案
// @Tags 简历
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body CreateCVRequest true "档案内容"
// @Success 201 {object} util.Response
// @Router /api/cvs [post]
func (c *CVController) CreateCV(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req CreateCVRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	cv := &model.CV{
		UserID:          user.UserID,
		FileName:        req.FileName,
		YearsExperience: req.YearsExperience,
		EducationLevel:  req.EducationLevel,
	}
	for _, s := range req.Skills {
		confidence := s.Confidence
		if confidence == 0 {
			confidence = 1
		}
		cv.Skills = append(cv.Skills, model.CVSkill{
			Name:       s.Name,
			Category:   s.Category,
			Confidence: confidence,
		})
	}
	for _, exp := range req.WorkExperiences {
		cv.WorkExperiences = append(cv.WorkExperiences, model.CVWorkExperience{
			JobTitle:       exp.JobTitle,
			CompanyName:    exp.CompanyName,
			StartDate:      exp.StartDate,
			EndDate:        exp.EndDate,
			DurationMonths: exp.DurationMonths,
			Description:    exp.Description,
			Technologies:   strings.Join(exp.Technologies, ","),
			IsCurrent:      exp.IsCurrent,
		})
	}

	if err := c.CVService.CreateCV(cv); err != nil {
		if err == util.ErrMalformedCV {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, cv)
}

// @Summary 上传简历原始文件
// @Tags 简历
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "档案ID"
// @Param file formData file true "简历文件"
// @Success 200 {object} util.Response
// @Router /api/cvs/{id}/file [post]
func (c *CVController) UploadFile(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	cv, err := c.CVService.GetCV(ctx.Param("id"), user.UserID)
	if err != nil {
		respondCVError(ctx, err)
		return
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if err := c.CVService.AttachFile(ctx.Request.Context(), cv, fileHeader.Filename, file, fileHeader.Size, contentType); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	util.Success(ctx, cv)
}

// @Summary 获取单份简历档案
// @Tags 简历
// @Security BearerAuth
// @Produce json
// @Param id path string true "档案ID"
// @Success 200 {object} util.Response
// @Router /api/cvs/{id} [get]
func (c *CVController) GetCV(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	cv, err := c.CVService.GetCV(ctx.Param("id"), user.UserID)
	if err != nil {
		respondCVError(ctx, err)
		return
	}
	util.Success(ctx, cv)
}

// @Summary 获取当前用户的简历档案列表
// @Tags 简历
// @Security BearerAuth
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/cvs [get]
func (c *CVController) ListCVs(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	cvs, err := c.CVService.ListCVs(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, cvs)
}

// @Summary 删除简历档案
// @Tags 简历
// @Security BearerAuth
// @Produce json
// @Param id path string true "档案ID"
// @Success 200 {object} util.Response
// @Router /api/cvs/{id} [delete]
func (c *CVController) DeleteCV(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.CVService.DeleteCV(ctx.Param("id"), user.UserID); err != nil {
		respondCVError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

func respondCVError(ctx *gin.Context, err error) {
	switch err {
	case util.ErrCVNotFound:
		util.NotFound(ctx, err.Error())
	case util.ErrPermissionDenied:
		util.Forbidden(ctx)
	default:
		util.LogInternalError(ctx, err)
	}
}
