package service

import (
	"career_compass_backend/internal/engine"
	"career_compass_backend/internal/model"
	"career_compass_backend/internal/repository"
	"career_compass_backend/internal/util"
	"sort"
	"strings"
	"time"

	"gorm.io/gorm"
)

// 增长趋势取值
const (
	TrendInsufficientData = "insufficient_data"
	TrendAccelerating     = "accelerating"
	TrendDeclining        = "declining"
	TrendSteady           = "steady"
)

type ProgressService struct {
	CVService          *CVService
	ProgressRepo       *repository.ProgressRepository
	RecommendationRepo *repository.RecommendationRepository
}

func NewProgressService(
	cvService *CVService,
	progressRepo *repository.ProgressRepository,
	recommendationRepo *repository.RecommendationRepository,
) *ProgressService {
	return &ProgressService{
		CVService:          cvService,
		ProgressRepo:       progressRepo,
		RecommendationRepo: recommendationRepo,
	}
}

// ScorePoint 匹配分时间轴上的一个采样点
type ScorePoint struct {
	Date  time.Time `json:"date"`
	Score float64   `json:"score"`
}

// ProgressAnalytics 基于历史快照计算的成长分析
type ProgressAnalytics struct {
	TotalSnapshots       int            `json:"totalSnapshots"`
	TotalSkillsGained    int            `json:"totalSkillsGained"`
	SkillVelocity        float64        `json:"skillVelocity"`
	MatchImprovementRate float64        `json:"matchImprovementRate"`
	AverageMatchScore    float64        `json:"averageMatchScore"`
	BestMatchPathway     string         `json:"bestMatchPathway"`
	GrowthTrend          string         `json:"growthTrend"`
	MatchScoreTrend      []ScorePoint   `json:"matchScoreTrend"`
	CategoryGrowth       map[string]int `json:"categoryGrowth"`
}

// CaptureSnapshot 记录档案当前的进度快照。技能数和清单取自画像(含
// 已学成技能)，最高匹配分取最近一次推荐的榜首；新增技能相对上一张
// 快照做差集，首张快照不标新增。
func (s *ProgressService) CaptureSnapshot(cvID string, userID uint) (*model.ProgressSnapshot, error) {
	cv, err := s.CVService.GetCV(cvID, userID)
	if err != nil {
		return nil, err
	}

	profile := ToProfile(cv)
	names := make([]string, 0, len(profile.Skills))
	for _, skill := range profile.Skills {
		names = append(names, skill.Name)
	}
	sort.Strings(names)

	snapshot := &model.ProgressSnapshot{
		CVID:        cvID,
		SkillsCount: len(names),
		Skills:      strings.Join(names, ","),
	}

	if recs, err := s.RecommendationRepo.ListByCV(cvID); err == nil && len(recs) > 0 {
		snapshot.TopMatchScore = recs[0].MatchScore
		snapshot.BestPathway = recs[0].Pathway
	}

	previous, err := s.ProgressRepo.LatestSnapshot(cvID)
	if err == nil {
		snapshot.NewSkills = strings.Join(newSkillsSince(names, splitSkills(previous.Skills)), ",")
	} else if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	if err := s.ProgressRepo.CreateSnapshot(snapshot); err != nil {
		return nil, err
	}
	return snapshot, nil
}

// Timeline 档案的历史快照，按拍摄时间升序
func (s *ProgressService) Timeline(cvID string, userID uint) ([]model.ProgressSnapshot, error) {
	if _, err := s.CVService.GetCV(cvID, userID); err != nil {
		return nil, err
	}
	return s.ProgressRepo.ListSnapshots(cvID)
}

// Analytics 成长分析。时序指标来自快照序列，分类分布按当前画像实时统计
func (s *ProgressService) Analytics(cvID string, userID uint) (*ProgressAnalytics, error) {
	cv, err := s.CVService.GetCV(cvID, userID)
	if err != nil {
		return nil, err
	}
	snapshots, err := s.ProgressRepo.ListSnapshots(cvID)
	if err != nil {
		return nil, err
	}

	analytics := computeAnalytics(snapshots)
	analytics.CategoryGrowth = engine.CategoryCounts(ToProfile(cv).Skills)
	return analytics, nil
}

// AddLearnedSkill 上报一项学习技能，熟练度与状态缺省 beginner/learning
func (s *ProgressService) AddLearnedSkill(cvID string, userID uint, skill *model.LearnedSkill) error {
	if _, err := s.CVService.GetCV(cvID, userID); err != nil {
		return err
	}
	skill.CVID = cvID
	if skill.Proficiency == "" {
		skill.Proficiency = model.ProficiencyBeginner
	}
	if skill.Status == "" {
		skill.Status = model.LearnedSkillLearning
	}
	if skill.LearnedAt.IsZero() {
		skill.LearnedAt = time.Now()
	}
	return s.ProgressRepo.CreateLearnedSkill(skill)
}

func (s *ProgressService) ListLearnedSkills(cvID string, userID uint) ([]model.LearnedSkill, error) {
	if _, err := s.CVService.GetCV(cvID, userID); err != nil {
		return nil, err
	}
	return s.ProgressRepo.ListLearnedSkills(cvID)
}

// UpdateLearnedSkill 空字段保持原值
func (s *ProgressService) UpdateLearnedSkill(cvID string, userID uint, skillID uint, update *model.LearnedSkill) (*model.LearnedSkill, error) {
	if _, err := s.CVService.GetCV(cvID, userID); err != nil {
		return nil, err
	}
	skill, err := s.ProgressRepo.FindLearnedSkill(skillID, cvID)
	if err == gorm.ErrRecordNotFound {
		return nil, util.ErrLearnedSkillNotFound
	} else if err != nil {
		return nil, err
	}

	if update.Name != "" {
		skill.Name = update.Name
	}
	if update.Proficiency != "" {
		skill.Proficiency = update.Proficiency
	}
	if update.Status != "" {
		skill.Status = update.Status
	}
	if err := s.ProgressRepo.UpdateLearnedSkill(skill); err != nil {
		return nil, err
	}
	return skill, nil
}

func (s *ProgressService) DeleteLearnedSkill(cvID string, userID uint, skillID uint) error {
	if _, err := s.CVService.GetCV(cvID, userID); err != nil {
		return err
	}
	skill, err := s.ProgressRepo.FindLearnedSkill(skillID, cvID)
	if err == gorm.ErrRecordNotFound {
		return util.ErrLearnedSkillNotFound
	} else if err != nil {
		return err
	}
	return s.ProgressRepo.DeleteLearnedSkill(skill)
}

func splitSkills(joined string) []string {
	if joined == "" {
		return nil
	}
	return strings.Split(joined, ",")
}

// newSkillsSince 当前技能对上一张快照的差集，按规范化名比较
func newSkillsSince(current, previous []string) []string {
	known := make(map[string]bool, len(previous))
	for _, name := range previous {
		known[engine.Normalize(name)] = true
	}
	var added []string
	for _, name := range current {
		if !known[engine.Normalize(name)] {
			added = append(added, name)
		}
	}
	return added
}

// computeAnalytics 速度按首末快照的时间跨度折算成月，不足一个月按
// 一个月算；增长趋势比较最近一段与最早一段的技能增速，高出两成算
// 加速，低出两成算放缓，至少要三张快照才有结论。
func computeAnalytics(snapshots []model.ProgressSnapshot) *ProgressAnalytics {
	analytics := &ProgressAnalytics{
		TotalSnapshots: len(snapshots),
		GrowthTrend:    TrendInsufficientData,
	}
	if len(snapshots) == 0 {
		return analytics
	}

	var scoreSum float64
	for _, snap := range snapshots {
		scoreSum += snap.TopMatchScore
		analytics.MatchScoreTrend = append(analytics.MatchScoreTrend, ScorePoint{
			Date:  snap.CreatedAt,
			Score: snap.TopMatchScore,
		})
	}
	analytics.AverageMatchScore = scoreSum / float64(len(snapshots))

	last := snapshots[len(snapshots)-1]
	analytics.BestMatchPathway = last.BestPathway

	if len(snapshots) < 2 {
		return analytics
	}

	first := snapshots[0]
	analytics.TotalSkillsGained = last.SkillsCount - first.SkillsCount
	analytics.SkillVelocity = float64(analytics.TotalSkillsGained) / monthsBetween(first.CreatedAt, last.CreatedAt)

	var diffSum float64
	for i := 1; i < len(snapshots); i++ {
		diffSum += snapshots[i].TopMatchScore - snapshots[i-1].TopMatchScore
	}
	analytics.MatchImprovementRate = diffSum / float64(len(snapshots)-1)

	if len(snapshots) >= 3 {
		second := snapshots[1]
		penultimate := snapshots[len(snapshots)-2]
		early := float64(second.SkillsCount-first.SkillsCount) / monthsBetween(first.CreatedAt, second.CreatedAt)
		recent := float64(last.SkillsCount-penultimate.SkillsCount) / monthsBetween(penultimate.CreatedAt, last.CreatedAt)
		switch {
		case recent > early*1.2:
			analytics.GrowthTrend = TrendAccelerating
		case recent < early*0.8:
			analytics.GrowthTrend = TrendDeclining
		default:
			analytics.GrowthTrend = TrendSteady
		}
	}

	return analytics
}

// monthsBetween 按30天折算，至少一个月，避免除零和刚起步时的虚高速度
func monthsBetween(from, to time.Time) float64 {
	months := to.Sub(from).Hours() / (24 * 30)
	if months < 1 {
		return 1
	}
	return months
}
