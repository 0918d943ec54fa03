package service

import (
	"career_compass_backend/internal/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func snapshotAt(day int, skills int, score float64) model.ProgressSnapshot {
	s := model.ProgressSnapshot{SkillsCount: skills, TopMatchScore: score}
	s.CreatedAt = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, day)
	return s
}

func TestComputeAnalyticsInsufficientData(t *testing.T) {
	empty := computeAnalytics(nil)
	assert.Equal(t, 0, empty.TotalSnapshots)
	assert.Equal(t, TrendInsufficientData, empty.GrowthTrend)

	single := computeAnalytics([]model.ProgressSnapshot{snapshotAt(0, 10, 0.5)})
	assert.Equal(t, 1, single.TotalSnapshots)
	assert.Equal(t, TrendInsufficientData, single.GrowthTrend)
	assert.Zero(t, single.TotalSkillsGained)
	assert.InDelta(t, 0.5, single.AverageMatchScore, 1e-9)
}

func TestComputeAnalyticsAcceleratingGrowth(t *testing.T) {
	snapshots := []model.ProgressSnapshot{
		snapshotAt(0, 10, 0.5),
		snapshotAt(60, 16, 0.6),
		snapshotAt(120, 28, 0.7),
	}
	snapshots[2].BestPathway = "Backend Developer"

	analytics := computeAnalytics(snapshots)

	assert.Equal(t, 3, analytics.TotalSnapshots)
	assert.Equal(t, 18, analytics.TotalSkillsGained)
	// 120天折算4个月，18个技能 -> 每月4.5
	assert.InDelta(t, 4.5, analytics.SkillVelocity, 1e-9)
	assert.InDelta(t, 0.1, analytics.MatchImprovementRate, 1e-9)
	assert.InDelta(t, 0.6, analytics.AverageMatchScore, 1e-9)
	assert.Equal(t, TrendAccelerating, analytics.GrowthTrend)
	assert.Equal(t, "Backend Developer", analytics.BestMatchPathway)
	assert.Len(t, analytics.MatchScoreTrend, 3)
}

func TestComputeAnalyticsDecliningAndSteady(t *testing.T) {
	declining := computeAnalytics([]model.ProgressSnapshot{
		snapshotAt(0, 10, 0.5),
		snapshotAt(60, 22, 0.55),
		snapshotAt(120, 24, 0.6),
	})
	assert.Equal(t, TrendDeclining, declining.GrowthTrend)

	steady := computeAnalytics([]model.ProgressSnapshot{
		snapshotAt(0, 10, 0.5),
		snapshotAt(60, 16, 0.55),
		snapshotAt(120, 22, 0.6),
	})
	assert.Equal(t, TrendSteady, steady.GrowthTrend)
}

func TestNewSkillsSinceNormalizesNames(t *testing.T) {
	added := newSkillsSince(
		[]string{"Docker", "Go", "Kubernetes"},
		[]string{"docker", "go"},
	)
	assert.Equal(t, []string{"Kubernetes"}, added)

	assert.Nil(t, newSkillsSince([]string{"Go"}, []string{"Go"}))
}

func TestToProfileMergesCompletedLearnedSkills(t *testing.T) {
	cv := &model.CV{
		Skills: []model.CVSkill{{Name: "Python", Confidence: 1}},
		LearnedSkills: []model.LearnedSkill{
			{Name: "Docker", Proficiency: model.ProficiencyIntermediate, Status: model.LearnedSkillCompleted},
			{Name: "Terraform", Proficiency: model.ProficiencyBeginner, Status: model.LearnedSkillLearning},
			{Name: "python", Proficiency: model.ProficiencyExpert, Status: model.LearnedSkillMastered},
		},
	}

	profile := ToProfile(cv)

	names := make([]string, 0, len(profile.Skills))
	for _, s := range profile.Skills {
		names = append(names, s.Name)
	}
	// learning 状态不并入，已有同名技能不重复
	assert.Equal(t, []string{"Python", "Docker"}, names)
	assert.InDelta(t, 0.7, profile.Skills[1].Confidence, 1e-9)
}

func TestProficiencyConfidence(t *testing.T) {
	assert.InDelta(t, 0.5, proficiencyConfidence(model.ProficiencyBeginner), 1e-9)
	assert.InDelta(t, 0.7, proficiencyConfidence(model.ProficiencyIntermediate), 1e-9)
	assert.InDelta(t, 0.85, proficiencyConfidence(model.ProficiencyAdvanced), 1e-9)
	assert.InDelta(t, 0.95, proficiencyConfidence(model.ProficiencyExpert), 1e-9)
}
