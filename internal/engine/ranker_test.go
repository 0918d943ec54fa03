package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankSortedAndTruncated(t *testing.T) {
	profile := devopsProfile()
	catalog := testCatalog()

	ranked, err := Rank(profile, catalog, RankOptions{TopN: 2, Now: testNow})
	require.NoError(t, err)
	require.LessOrEqual(t, len(ranked), 2)
	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].MatchScore, ranked[i].MatchScore)
	}
}

func TestRankEmptyCatalog(t *testing.T) {
	_, err := Rank(devopsProfile(), Catalog{}, RankOptions{Now: testNow})
	assert.ErrorIs(t, err, ErrEmptyCatalog)
}

func TestRankEmptyProfileNoError(t *testing.T) {
	ranked, err := Rank(Profile{}, testCatalog(), RankOptions{Now: testNow})
	require.NoError(t, err)
	// 空画像拿到的是低分结果，不是错误
	for _, r := range ranked {
		assert.LessOrEqual(t, r.MatchScore, 0.5)
	}
}

func TestRankCutoffMayEmpty(t *testing.T) {
	ranked, err := Rank(Profile{}, testCatalog(), RankOptions{MinScore: 0.99, Now: testNow})
	require.NoError(t, err)
	assert.Empty(t, ranked)
}

func TestRankDeterministic(t *testing.T) {
	profile := devopsProfile()
	catalog := testCatalog()

	first, err := Rank(profile, catalog, RankOptions{Now: testNow})
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := Rank(profile, catalog, RankOptions{Now: testNow})
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}

func TestRankTieBreakAlphabetical(t *testing.T) {
	// 两条定义完全相同的通路必然同分，顺序只能来自名称
	catalog := Catalog{Pathways: []Pathway{
		{Name: "Zeta Track", Category: "backend", RequiredSkills: []string{"python"}},
		{Name: "Alpha Track", Category: "backend", RequiredSkills: []string{"python"}},
	}}
	ranked, err := Rank(devopsProfile(), catalog, RankOptions{Now: testNow})
	require.NoError(t, err)
	require.Len(t, ranked, 2)
	assert.Equal(t, "Alpha Track", ranked[0].Pathway)
	assert.Equal(t, "Zeta Track", ranked[1].Pathway)
}

func TestRankRecommendedSkillsOrderedByImpact(t *testing.T) {
	// kubernetes 在两条入选通路中出现，terraform 只在一条，
	// 因此 kubernetes 的 impact 更高，应排在前面
	catalog := Catalog{Pathways: []Pathway{
		{Name: "DevOps Engineer", Category: "devops", RequiredSkills: []string{"kubernetes", "terraform", "docker"}},
		{Name: "Platform Engineer", Category: "devops", RequiredSkills: []string{"kubernetes", "docker", "go"}},
	}}
	profile := Profile{Skills: []Skill{{Name: "docker", Category: "devops"}}}

	ranked, err := Rank(profile, catalog, RankOptions{Now: testNow})
	require.NoError(t, err)
	require.Len(t, ranked, 2)

	var devops MatchResult
	for _, r := range ranked {
		if r.Pathway == "DevOps Engineer" {
			devops = r
		}
	}
	require.Equal(t, []string{"Kubernetes", "Terraform"}, devops.RecommendedSkills)
}
