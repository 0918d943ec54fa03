package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

func devopsPathway() Pathway {
	return Pathway{
		Name:           "DevOps Engineer",
		Category:       "devops",
		Description:    "Build and operate delivery infrastructure",
		RequiredSkills: []string{"docker", "kubernetes", "ci/cd", "terraform"},
		OptionalSkills: []string{"python"},
		WeightCategories: map[string]float64{
			"devops":  0.7,
			"backend": 0.3,
		},
		RoadmapURL: "https://roadmap.sh/devops",
	}
}

func testCatalog() Catalog {
	return Catalog{
		Version: "test",
		Pathways: []Pathway{
			devopsPathway(),
			{
				Name:           "Frontend Developer",
				Category:       "frontend",
				RequiredSkills: []string{"html", "css", "javascript", "react"},
				OptionalSkills: []string{"typescript"},
				WeightCategories: map[string]float64{
					"frontend": 1.0,
				},
			},
			{
				Name:           "Backend Developer",
				Category:       "backend",
				RequiredSkills: []string{"python", "sql", "rest api", "docker"},
				OptionalSkills: []string{"kubernetes", "redis"},
				WeightCategories: map[string]float64{
					"backend": 0.8,
					"devops":  0.2,
				},
			},
		},
	}
}

func devopsProfile() Profile {
	return Profile{
		Skills: []Skill{
			{Name: "Python", Category: "backend", Confidence: 0.9},
			{Name: "Docker", Category: "devops", Confidence: 0.9},
			{Name: "Kubernetes", Category: "devops", Confidence: 0.8},
		},
		WorkHistory: []WorkExperience{
			{
				JobTitle:       "Junior Systems Engineer",
				CompanyName:    "Acme Software Ltd",
				StartDate:      "2021-01",
				EndDate:        "2023-01",
				DurationMonths: 24,
				Description:    "Maintained Linux servers and Docker deployments",
				Technologies:   []string{"docker", "linux"},
			},
			{
				JobTitle:       "Platform Engineer",
				CompanyName:    "CloudWorks",
				StartDate:      "2023-01",
				DurationMonths: 24,
				Description:    "Kubernetes clusters and CI pipelines on AWS",
				Technologies:   []string{"kubernetes", "aws"},
				IsCurrent:      true,
			},
		},
		YearsExperience: 4,
	}
}

func TestSkillScoreRequiredPlusOptional(t *testing.T) {
	profile := devopsProfile()
	catalog := testCatalog()
	summary := SummarizeExperience(profile.WorkHistory, &catalog, testNow)

	result := Score(profile, devopsPathway(), summary)

	// 4 个必选命中 2，1 个可选命中 1 → (2+1)/4
	assert.InDelta(t, 0.75, result.SkillScore, 1e-9)
}

func TestScoreBounds(t *testing.T) {
	profile := devopsProfile()
	catalog := testCatalog()
	summary := SummarizeExperience(profile.WorkHistory, &catalog, testNow)

	for _, p := range catalog.Pathways {
		r := Score(profile, p, summary)
		for name, v := range map[string]float64{
			"matchScore":              r.MatchScore,
			"skillScore":              r.SkillScore,
			"categoryScore":           r.CategoryScore,
			"experienceRelevance":     r.ExperienceRelevance,
			"experienceDurationScore": r.ExperienceDurationScore,
			"careerProgressionScore":  r.CareerProgressionScore,
			"recencyBoost":            r.RecencyBoost,
			"companyContextMatch":     r.CompanyContextMatch,
		} {
			assert.GreaterOrEqual(t, v, 0.0, "%s/%s", p.Name, name)
			assert.LessOrEqual(t, v, 1.0, "%s/%s", p.Name, name)
		}
	}
}

func TestEmptyRequiredSkillsNoDivisionByZero(t *testing.T) {
	profile := devopsProfile()
	catalog := testCatalog()
	summary := SummarizeExperience(profile.WorkHistory, &catalog, testNow)

	degenerate := Pathway{Name: "Empty", Category: "devops", OptionalSkills: []string{"docker"}}
	r := Score(profile, degenerate, summary)
	assert.Zero(t, r.SkillScore)
	assert.LessOrEqual(t, r.MatchScore, 1.0)
}

func TestRecommendedSkillsExcludePresent(t *testing.T) {
	profile := devopsProfile()
	catalog := testCatalog()
	summary := SummarizeExperience(profile.WorkHistory, &catalog, testNow)

	r := Score(profile, devopsPathway(), summary)
	assert.ElementsMatch(t, []string{"Ci/cd", "Terraform"}, r.RecommendedSkills)
}

func TestReasoningDeterministic(t *testing.T) {
	profile := devopsProfile()
	catalog := testCatalog()
	summary := SummarizeExperience(profile.WorkHistory, &catalog, testNow)

	first := Score(profile, devopsPathway(), summary)
	for i := 0; i < 20; i++ {
		again := Score(profile, devopsPathway(), summary)
		require.Equal(t, first.Reasoning, again.Reasoning)
		require.Equal(t, first.MatchScore, again.MatchScore)
	}
	assert.Contains(t, first.Reasoning, "required skills")
}

func TestTrajectoryUpward(t *testing.T) {
	history := []WorkExperience{
		{JobTitle: "Senior Engineer", StartDate: "2022-01", IsCurrent: true, DurationMonths: 36},
		{JobTitle: "Junior Developer", StartDate: "2018-01", EndDate: "2020-01", DurationMonths: 24},
		{JobTitle: "Software Engineer", StartDate: "2020-01", EndDate: "2022-01", DurationMonths: 24},
	}
	tr := AnalyzeTrajectory(history)
	assert.Equal(t, ProgressionUpward, tr.Progression)
	assert.InDelta(t, 1.0, tr.ProgressionScore, 1e-9)
	assert.Contains(t, tr.Description, "Strong career growth")
}

func TestTrajectorySingleEntryUnknown(t *testing.T) {
	tr := AnalyzeTrajectory([]WorkExperience{{JobTitle: "Engineer"}})
	assert.Equal(t, ProgressionUnknown, tr.Progression)
	assert.InDelta(t, 0.5, tr.ProgressionScore, 1e-9)
}

func TestRecencyWeight(t *testing.T) {
	assert.InDelta(t, 1.0, RecencyWeight("", true, testNow), 1e-9)
	assert.InDelta(t, 1.0, RecencyWeight("Present", false, testNow), 1e-9)
	assert.InDelta(t, 1.0, RecencyWeight("2025-03", false, testNow), 1e-9)
	// 十年前衰减到下限
	assert.InDelta(t, 0.3, RecencyWeight("2015", false, testNow), 1e-9)
	// 解析不了给中等权重
	assert.InDelta(t, 0.6, RecencyWeight("last spring", false, testNow), 1e-9)
}

func TestDetectCompanyContext(t *testing.T) {
	ctx := DetectCompanyContext("Google", "search infrastructure")
	assert.Equal(t, "enterprise", ctx.Size)
	assert.True(t, ctx.IsTech)

	ctx = DetectCompanyContext("Seed Labs", "series a fintech startup")
	assert.Equal(t, "startup", ctx.Size)
	assert.True(t, ctx.IsTech)

	ctx = DetectCompanyContext("", "")
	assert.Equal(t, "unknown", ctx.Size)
}
