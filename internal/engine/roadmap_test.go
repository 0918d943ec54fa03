package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrioritizeTiers(t *testing.T) {
	pathways := []Pathway{
		{Name: "A", RequiredSkills: []string{"git", "kubernetes"}},
		{Name: "B", RequiredSkills: []string{"git"}, OptionalSkills: []string{"machine learning"}},
	}
	matrix := Prioritize([]string{"git", "kubernetes", "machine learning"}, pathways)

	// git：两条通路都要，难度低 → critical
	require.Contains(t, matrix, "git")
	assert.Equal(t, TierCritical, matrix["git"].Tier)
	assert.InDelta(t, 1.0, matrix["git"].Impact, 1e-9)

	// kubernetes：恰好一半通路要（0.5 落在高收益一侧），难度高 → high
	assert.Equal(t, TierHigh, matrix["kubernetes"].Tier)

	// machine learning：收益同为 0.5 且难度高 → 和 kubernetes 同档
	assert.Equal(t, TierHigh, matrix["machine learning"].Tier)

	// 谁都不要的冷门难技能才落到 low
	cold := Prioritize([]string{"distributed systems"}, pathways)
	assert.Equal(t, TierLow, cold["distributed systems"].Tier)
}

func TestPrioritizeNormalizesAliases(t *testing.T) {
	pathways := []Pathway{{Name: "A", RequiredSkills: []string{"kubernetes"}}}
	matrix := Prioritize([]string{"K8s"}, pathways)
	p, ok := matrix["kubernetes"]
	require.True(t, ok)
	assert.InDelta(t, 1.0, p.Impact, 1e-9)
}

func TestMatrixForPathwaySpansRankedSet(t *testing.T) {
	catalog := Catalog{Pathways: []Pathway{
		{Name: "Cloud Engineer", Category: "devops", RequiredSkills: []string{"docker", "kubernetes", "terraform", "html"}},
		{Name: "Platform Engineer", Category: "devops", RequiredSkills: []string{"docker", "kubernetes", "go"}},
		{Name: "Release Engineer", Category: "devops", RequiredSkills: []string{"docker", "ci/cd", "sql"}},
	}}
	target := catalog.Pathways[0]
	profile := Profile{Skills: []Skill{{Name: "git"}}}

	matrix, err := MatrixForPathway(profile, catalog, target, RankOptions{Now: testNow})
	require.NoError(t, err)

	// docker 三条入选通路都要，收益拉满
	assert.InDelta(t, 1.0, matrix["docker"].Impact, 1e-9)
	assert.Equal(t, TierHigh, matrix["docker"].Tier)

	// terraform 只有目标通路要，收益低、难度高 → low
	assert.InDelta(t, 1.0/3.0, matrix["terraform"].Impact, 1e-9)
	assert.Equal(t, TierLow, matrix["terraform"].Tier)

	// html 同样只有目标通路要，但难度低 → medium
	assert.InDelta(t, 1.0/3.0, matrix["html"].Impact, 1e-9)
	assert.Equal(t, TierMedium, matrix["html"].Tier)

	// 矩阵跨入选集合计算时，medium/low 档位在路线图里是可达的
	roadmap := BuildRoadmap(profile, target, matrix, RoadmapOptions{StartDate: testNow})
	tiers := map[PriorityTier]bool{}
	for _, p := range roadmap.Phases {
		tiers[p.Priority] = true
	}
	assert.True(t, tiers[TierMedium])
	assert.True(t, tiers[TierLow])
}

func TestMatrixForPathwayUnrankedTargetStillCovered(t *testing.T) {
	target := devopsPathway()

	// 分数线把入选集合筛空，矩阵退回目标通路自身
	matrix, err := MatrixForPathway(Profile{}, testCatalog(), target, RankOptions{MinScore: 0.99, Now: testNow})
	require.NoError(t, err)

	for _, s := range missingSkills(Profile{}, target) {
		require.Contains(t, matrix, Normalize(s))
	}
}

func TestBuildRoadmapPartition(t *testing.T) {
	profile := devopsProfile()
	pathway := Pathway{
		Name:     "DevOps Engineer",
		Category: "devops",
		RequiredSkills: []string{
			"docker", "kubernetes", "ci/cd", "terraform", "ansible", "linux", "git",
		},
		OptionalSkills: []string{"python", "prometheus"},
	}
	matrix := Prioritize(missingSkills(profile, pathway), []Pathway{pathway})

	roadmap := BuildRoadmap(profile, pathway, matrix, RoadmapOptions{StartDate: testNow})

	// 每个缺口技能恰好出现在一个阶段里
	want := missingSkills(profile, pathway)
	var got []string
	for _, phase := range roadmap.Phases {
		got = append(got, phase.Skills...)
	}
	assert.ElementsMatch(t, want, got)

	seen := map[string]bool{}
	for _, s := range got {
		assert.False(t, seen[s], "skill %q appears twice", s)
		seen[s] = true
	}
}

func TestBuildRoadmapPhaseOrdering(t *testing.T) {
	profile := Profile{YearsExperience: 0.5}
	pathway := Pathway{
		Name:           "Backend Developer",
		Category:       "backend",
		RequiredSkills: []string{"git", "sql", "kubernetes", "machine learning"},
	}
	matrix := Prioritize(missingSkills(profile, pathway), []Pathway{pathway})

	roadmap := BuildRoadmap(profile, pathway, matrix, RoadmapOptions{StartDate: testNow})
	require.NotEmpty(t, roadmap.Phases)

	for i := 1; i < len(roadmap.Phases); i++ {
		prev, cur := roadmap.Phases[i-1], roadmap.Phases[i]
		assert.LessOrEqual(t, TierRank(prev.Priority), TierRank(cur.Priority))
		assert.Equal(t, i+1, cur.Number)
	}
}

func TestBuildRoadmapTimeline(t *testing.T) {
	profile := Profile{YearsExperience: 0.5}
	pathway := Pathway{
		Name:           "Frontend Developer",
		Category:       "frontend",
		RequiredSkills: []string{"html", "css", "javascript"},
	}
	matrix := Prioritize(missingSkills(profile, pathway), []Pathway{pathway})

	roadmap := BuildRoadmap(profile, pathway, matrix, RoadmapOptions{StartDate: testNow})

	assert.Equal(t, 10, roadmap.Timeline.HoursPerWeekAssumed)
	total := 0
	for _, p := range roadmap.Phases {
		assert.GreaterOrEqual(t, p.EstimatedWeeks, 1)
		total += p.EstimatedWeeks
	}
	assert.Equal(t, total, roadmap.Timeline.TotalWeeks)
	assert.Equal(t, testNow.AddDate(0, 0, total*7), roadmap.Timeline.EstimatedCompletionDate)

	require.Len(t, roadmap.Milestones, len(roadmap.Phases))
	for i, m := range roadmap.Milestones {
		assert.Equal(t, "Complete "+roadmap.Phases[i].Name, m.Name)
		assert.Equal(t, len(roadmap.Phases[i].Skills), m.SkillsCovered)
	}
}

func TestBuildRoadmapNoGap(t *testing.T) {
	profile := Profile{
		Skills:          []Skill{{Name: "html"}, {Name: "css"}},
		YearsExperience: 3,
	}
	pathway := Pathway{Name: "Markup", RequiredSkills: []string{"html", "css"}}
	roadmap := BuildRoadmap(profile, pathway, nil, RoadmapOptions{StartDate: testNow})

	assert.Empty(t, roadmap.Phases)
	assert.Empty(t, roadmap.Milestones)
	assert.Zero(t, roadmap.Timeline.TotalWeeks)
	assert.Equal(t, testNow, roadmap.Timeline.EstimatedCompletionDate)
}

func TestBuildRoadmapDeterministic(t *testing.T) {
	profile := devopsProfile()
	pathway := devopsPathway()
	matrix := Prioritize(missingSkills(profile, pathway), []Pathway{pathway})

	first := BuildRoadmap(profile, pathway, matrix, RoadmapOptions{StartDate: testNow})
	for i := 0; i < 10; i++ {
		again := BuildRoadmap(profile, pathway, matrix, RoadmapOptions{StartDate: testNow})
		require.Equal(t, first, again)
	}
}

func TestBuildRoadmapMaxPhaseSize(t *testing.T) {
	profile := Profile{}
	pathway := Pathway{
		Name:           "Everything",
		RequiredSkills: []string{"git", "html", "css", "sql", "agile", "scrum"},
	}
	matrix := Prioritize(missingSkills(profile, pathway), []Pathway{pathway})

	roadmap := BuildRoadmap(profile, pathway, matrix, RoadmapOptions{MaxPhaseSkills: 2, StartDate: testNow})
	for _, p := range roadmap.Phases {
		assert.LessOrEqual(t, len(p.Skills), 2)
	}
	assert.GreaterOrEqual(t, len(roadmap.Phases), 3)
}
