package service

import (
	"career_compass_backend/internal/config"
	"career_compass_backend/internal/engine"
	"career_compass_backend/internal/model"
	"career_compass_backend/internal/repository"
	"career_compass_backend/internal/util"
	"career_compass_backend/pkg/logger"
	"career_compass_backend/pkg/monitoring"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

type RecommendationService struct {
	CVService          *CVService
	CatalogService     *CatalogService
	RecommendationRepo *repository.RecommendationRepository
	Redis              *redis.Client
	Cfg                *config.Config
}

func NewRecommendationService(
	cvService *CVService,
	catalogService *CatalogService,
	recommendationRepo *repository.RecommendationRepository,
	rdb *redis.Client,
	cfg *config.Config,
) *RecommendationService {
	return &RecommendationService{
		CVService:          cvService,
		CatalogService:     catalogService,
		RecommendationRepo: recommendationRepo,
		Redis:              rdb,
		Cfg:                cfg,
	}
}

// Generate 对一份档案重算推荐：取目录快照、跑引擎、整组落库并
// 刷新缓存。排序结果为空（全部低于分数线）是合法结果，照常落库。
func (s *RecommendationService) Generate(ctx context.Context, cvID string, userID uint) ([]engine.MatchResult, error) {
	cv, err := s.CVService.GetCV(cvID, userID)
	if err != nil {
		return nil, err
	}

	catalog := s.CatalogService.Snapshot()
	if catalog.Len() == 0 {
		return nil, util.ErrCatalogUnavailable
	}

	profile := ToProfile(cv)
	started := time.Now()
	results, err := engine.Rank(profile, catalog, engine.RankOptions{
		TopN:     s.Cfg.Engine.TopN,
		MinScore: s.Cfg.Engine.MinScore,
		Now:      time.Now(),
	})
	monitoring.RecommendationDuration.Observe(time.Since(started).Seconds())
	if err != nil {
		monitoring.RecommendationRuns.WithLabelValues("error").Inc()
		return nil, err
	}
	monitoring.RecommendationRuns.WithLabelValues("ok").Inc()

	records := make([]model.Recommendation, 0, len(results))
	for i, r := range results {
		records = append(records, model.Recommendation{
			CVID:              cvID,
			Rank:              i + 1,
			Pathway:           r.Pathway,
			Category:          r.Category,
			MatchScore:        r.MatchScore,
			SkillScore:        r.SkillScore,
			CategoryScore:     r.CategoryScore,
			ExperienceScore:   r.ExperienceRelevance,
			ProgressionScore:  r.CareerProgressionScore,
			Reasoning:         r.Reasoning,
			RecommendedSkills: strings.Join(r.RecommendedSkills, ","),
			RoadmapURL:        r.RoadmapURL,
			CatalogVersion:    catalog.Version,
		})
	}
	if err := s.RecommendationRepo.ReplaceForCV(cvID, records); err != nil {
		return nil, err
	}

	s.cacheResults(ctx, cvID, results)

	logger.Log.Info("推荐已生成",
		zap.String("cvId", cvID),
		zap.Int("results", len(results)),
		zap.String("catalogVersion", catalog.Version))
	return results, nil
}

// GetCached 读缓存的推荐结果；缓存未命中回落到数据库快照
func (s *RecommendationService) GetCached(ctx context.Context, cvID string, userID uint) ([]engine.MatchResult, error) {
	if _, err := s.CVService.GetCV(cvID, userID); err != nil {
		return nil, err
	}

	if s.Redis != nil {
		data, err := s.Redis.Get(ctx, cacheKey(cvID)).Bytes()
		if err == nil {
			var results []engine.MatchResult
			if json.Unmarshal(data, &results) == nil {
				return results, nil
			}
		}
	}

	records, err := s.RecommendationRepo.ListByCV(cvID)
	if err != nil {
		return nil, err
	}
	results := make([]engine.MatchResult, 0, len(records))
	for _, rec := range records {
		result := engine.MatchResult{
			Pathway:                rec.Pathway,
			Category:               rec.Category,
			MatchScore:             rec.MatchScore,
			SkillScore:             rec.SkillScore,
			CategoryScore:          rec.CategoryScore,
			ExperienceRelevance:    rec.ExperienceScore,
			CareerProgressionScore: rec.ProgressionScore,
			Reasoning:              rec.Reasoning,
			RoadmapURL:             rec.RoadmapURL,
		}
		if rec.RecommendedSkills != "" {
			result.RecommendedSkills = strings.Split(rec.RecommendedSkills, ",")
		}
		results = append(results, result)
	}
	return results, nil
}

func (s *RecommendationService) cacheResults(ctx context.Context, cvID string, results []engine.MatchResult) {
	if s.Redis == nil {
		return
	}
	data, err := json.Marshal(results)
	if err != nil {
		return
	}
	ttl := time.Duration(s.Cfg.Engine.CacheTTLMinutes) * time.Minute
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	if err := s.Redis.Set(ctx, cacheKey(cvID), data, ttl).Err(); err != nil {
		logger.Log.Warn("推荐缓存写入失败", zap.Error(err))
	}
}

func cacheKey(cvID string) string {
	return fmt.Sprintf("recommendations:%s", cvID)
}
