package service

import (
	"career_compass_backend/internal/engine"
	"career_compass_backend/internal/model"
	"career_compass_backend/internal/repository"
	"career_compass_backend/internal/util"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gorm.io/gorm"
)

type CVService struct {
	CVRepo  *repository.CVRepository
	Storage *StorageService
}

func NewCVService(cvRepo *repository.CVRepository, storage *StorageService) *CVService {
	return &CVService{
		CVRepo:  cvRepo,
		Storage: storage,
	}
}

// CreateCV 入库一份结构化档案。技能和工作经历都为空的档案直接
// 拒绝，引擎虽然能对空画像打零分，但给调用方的正确动作是补数据
// 而不是拿一堆零分推荐。
func (s *CVService) CreateCV(cv *model.CV) error {
	if len(cv.Skills) == 0 && len(cv.WorkExperiences) == 0 {
		return util.ErrMalformedCV
	}

	if cv.YearsExperience == 0 {
		totalMonths := 0
		for _, exp := range cv.WorkExperiences {
			totalMonths += exp.DurationMonths
		}
		cv.YearsExperience = float64(totalMonths) / 12.0
	}
	cv.Status = model.CVStatusParsed

	return s.CVRepo.Create(cv)
}

// AttachFile 保存原始简历文件并挂到档案上
func (s *CVService) AttachFile(ctx context.Context, cv *model.CV, fileName string, reader io.Reader, size int64, contentType string) error {
	if !util.IsAllowedCVFile(fileName) {
		return fmt.Errorf("unsupported file type: %s", filepath.Ext(fileName))
	}

	storageName := fmt.Sprintf("cvs/%s/%s", cv.ID, filepath.Base(fileName))
	url, err := s.Storage.Upload(ctx, storageName, reader, size, contentType)
	if err != nil {
		return err
	}

	cv.FileName = fileName
	cv.StoragePath = url
	return s.CVRepo.DB.Model(cv).Updates(map[string]interface{}{
		"file_name":    fileName,
		"storage_path": url,
	}).Error
}

// GetCV 带归属校验的单档案查询
func (s *CVService) GetCV(id string, userID uint) (*model.CV, error) {
	cv, err := s.CVRepo.FindByID(id)
	if err == gorm.ErrRecordNotFound {
		return nil, util.ErrCVNotFound
	} else if err != nil {
		return nil, err
	}
	if cv.UserID != userID {
		return nil, util.ErrPermissionDenied
	}
	return cv, nil
}

func (s *CVService) ListCVs(userID uint) ([]model.CV, error) {
	return s.CVRepo.ListByUser(userID)
}

func (s *CVService) DeleteCV(id string, userID uint) error {
	if _, err := s.GetCV(id, userID); err != nil {
		return err
	}
	return s.CVRepo.Delete(id)
}

// ToProfile 把持久化档案转换成引擎画像值对象。completed/mastered
// 状态的学习技能并入画像，学成的技能在下次排名时缩小缺口；
// learning 状态的不算数。
func ToProfile(cv *model.CV) engine.Profile {
	profile := engine.Profile{
		YearsExperience: cv.YearsExperience,
		EducationLevel:  cv.EducationLevel,
	}
	seen := make(map[string]bool, len(cv.Skills))
	for _, s := range cv.Skills {
		seen[engine.Normalize(s.Name)] = true
		profile.Skills = append(profile.Skills, engine.Skill{
			Name:       s.Name,
			Category:   s.Category,
			Confidence: s.Confidence,
		})
	}
	for _, ls := range cv.LearnedSkills {
		if ls.Status != model.LearnedSkillCompleted && ls.Status != model.LearnedSkillMastered {
			continue
		}
		key := engine.Normalize(ls.Name)
		if seen[key] {
			continue
		}
		seen[key] = true
		profile.Skills = append(profile.Skills, engine.Skill{
			Name:       ls.Name,
			Confidence: proficiencyConfidence(ls.Proficiency),
		})
	}
	for _, exp := range cv.WorkExperiences {
		var technologies []string
		for _, t := range strings.Split(exp.Technologies, ",") {
			if t = strings.TrimSpace(t); t != "" {
				technologies = append(technologies, t)
			}
		}
		profile.WorkHistory = append(profile.WorkHistory, engine.WorkExperience{
			JobTitle:       exp.JobTitle,
			CompanyName:    exp.CompanyName,
			StartDate:      exp.StartDate,
			EndDate:        exp.EndDate,
			DurationMonths: exp.DurationMonths,
			Description:    exp.Description,
			Technologies:   technologies,
			IsCurrent:      exp.IsCurrent,
		})
	}
	return profile
}

// proficiencyConfidence 自报技能的置信度低于解析出的技能(1.0)，随熟练度递增
func proficiencyConfidence(level model.ProficiencyLevel) float64 {
	switch level {
	case model.ProficiencyExpert:
		return 0.95
	case model.ProficiencyAdvanced:
		return 0.85
	case model.ProficiencyIntermediate:
		return 0.7
	default:
		return 0.5
	}
}
