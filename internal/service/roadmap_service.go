package service

import (
	"career_compass_backend/internal/config"
	"career_compass_backend/internal/engine"
	"career_compass_backend/internal/model"
	"career_compass_backend/internal/repository"
	"career_compass_backend/internal/util"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
)

type RoadmapService struct {
	CVService      *CVService
	CatalogService *CatalogService
	RoadmapRepo    *repository.RoadmapRepository
	Cfg            *config.Config
}

func NewRoadmapService(
	cvService *CVService,
	catalogService *CatalogService,
	roadmapRepo *repository.RoadmapRepository,
	cfg *config.Config,
) *RoadmapService {
	return &RoadmapService{
		CVService:      cvService,
		CatalogService: catalogService,
		RoadmapRepo:    roadmapRepo,
		Cfg:            cfg,
	}
}

// Generate 为指定通路生成学习路线图并存档。通路名不存在按 404
// 处理，绝不悄悄换成别的通路。优先级矩阵对整个目录重新排名后跨
// 入选通路计算，多条通路复用的缺口技能排到更靠前的阶段。
func (s *RoadmapService) Generate(cvID string, userID uint, pathwayName string) (*engine.Roadmap, error) {
	cv, err := s.CVService.GetCV(cvID, userID)
	if err != nil {
		return nil, err
	}

	pathway, err := s.CatalogService.FindPathway(pathwayName)
	if err != nil {
		return nil, err
	}

	profile := ToProfile(cv)
	matrix, err := engine.MatrixForPathway(profile, s.CatalogService.Snapshot(), *pathway, engine.RankOptions{
		TopN:     s.Cfg.Engine.TopN,
		MinScore: s.Cfg.Engine.MinScore,
		Now:      time.Now(),
	})
	if err != nil {
		if errors.Is(err, engine.ErrEmptyCatalog) {
			return nil, util.ErrCatalogUnavailable
		}
		return nil, err
	}

	roadmap := engine.BuildRoadmap(profile, *pathway, matrix, engine.RoadmapOptions{
		MaxPhaseSkills: s.Cfg.Roadmap.MaxPhaseSkills,
		HoursPerWeek:   s.Cfg.Roadmap.HoursPerWeek,
		StartDate:      time.Now(),
	})

	payload, err := json.Marshal(roadmap)
	if err != nil {
		return nil, err
	}
	record := &model.RoadmapRecord{
		CVID:         cvID,
		Pathway:      pathway.Name,
		TotalWeeks:   roadmap.Timeline.TotalWeeks,
		HoursPerWeek: roadmap.Timeline.HoursPerWeekAssumed,
		PhaseCount:   len(roadmap.Phases),
		Payload:      string(payload),
	}
	if err := s.RoadmapRepo.Create(record); err != nil {
		return nil, err
	}

	return &roadmap, nil
}

// List 档案下的历史路线图摘要
func (s *RoadmapService) List(cvID string, userID uint) ([]model.RoadmapRecord, error) {
	if _, err := s.CVService.GetCV(cvID, userID); err != nil {
		return nil, err
	}
	return s.RoadmapRepo.ListByCV(cvID)
}

// Get 单条历史路线图，返回反序列化后的完整内容
func (s *RoadmapService) Get(id uint, userID uint) (*engine.Roadmap, error) {
	record, err := s.RoadmapRepo.FindByID(id)
	if err == gorm.ErrRecordNotFound {
		return nil, util.ErrCVNotFound
	} else if err != nil {
		return nil, err
	}
	if _, err := s.CVService.GetCV(record.CVID, userID); err != nil {
		return nil, err
	}

	var roadmap engine.Roadmap
	if err := json.Unmarshal([]byte(record.Payload), &roadmap); err != nil {
		return nil, err
	}
	return &roadmap, nil
}
