package engine

import (
	"sort"
	"strings"
	"sync"
	"time"
)

// DefaultTopN 未显式指定时返回的推荐条数
const DefaultTopN = 5

// RankOptions 一次排序调用的参数。Now 必须由调用方传入，引擎内部
// 不读系统时钟，同一输入在任何时刻重算结果一致。
type RankOptions struct {
	TopN     int
	MinScore float64
	Now      time.Time
}

// Rank 对目录中全部通路评分并排序。各通路互不依赖，评分并行执行，
// 结果写入各自下标，与并发调度顺序无关。
func Rank(profile Profile, catalog Catalog, opts RankOptions) ([]MatchResult, error) {
	if catalog.Len() == 0 {
		return nil, ErrEmptyCatalog
	}
	if opts.TopN <= 0 {
		opts.TopN = DefaultTopN
	}
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	summary := SummarizeExperience(profile.WorkHistory, &catalog, now)

	results := make([]MatchResult, len(catalog.Pathways))
	var wg sync.WaitGroup
	for i := range catalog.Pathways {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = Score(profile, catalog.Pathways[i], summary)
		}(i)
	}
	wg.Wait()

	// 降序；同分按通路名字典序，保证输出稳定
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].MatchScore != results[j].MatchScore {
			return results[i].MatchScore > results[j].MatchScore
		}
		return results[i].Pathway < results[j].Pathway
	})

	ranked := make([]MatchResult, 0, opts.TopN)
	for _, r := range results {
		if r.MatchScore < opts.MinScore {
			break
		}
		ranked = append(ranked, r)
		if len(ranked) == opts.TopN {
			break
		}
	}

	// 缺失技能按跨通路收益重排：impact 基于入选通路集合计算，
	// 在多条通路里复用的技能排前面
	matrix := Prioritize(gapSkillsOf(ranked), rankedPathways(ranked, catalog))
	for i := range ranked {
		orderByImpact(ranked[i].RecommendedSkills, matrix)
	}
	return ranked, nil
}

// MatrixForPathway 为目标通路的缺口技能计算学习优先级矩阵。impact
// 基于整个目录本次排序的入选通路集合，在多条入选通路中复用的技能
// 收益更高；只看目标通路自己会把所有缺口技能都算成满收益。目标
// 通路未入选时补进集合，它自己列出的技能不能是零收益。
func MatrixForPathway(profile Profile, catalog Catalog, pathway Pathway, opts RankOptions) (map[string]SkillPriority, error) {
	ranked, err := Rank(profile, catalog, opts)
	if err != nil {
		return nil, err
	}

	pathways := rankedPathways(ranked, catalog)
	included := false
	for _, p := range pathways {
		if strings.EqualFold(p.Name, pathway.Name) {
			included = true
			break
		}
	}
	if !included {
		pathways = append(pathways, pathway)
	}

	return Prioritize(missingSkills(profile, pathway), pathways), nil
}

// gapSkillsOf 汇总入选结果的全部缺失技能（含重复，Prioritize 自行去重）
func gapSkillsOf(ranked []MatchResult) []string {
	var skills []string
	for _, r := range ranked {
		skills = append(skills, r.RecommendedSkills...)
	}
	return skills
}

// rankedPathways 按入选结果回查通路定义，保持入选顺序
func rankedPathways(ranked []MatchResult, catalog Catalog) []Pathway {
	pathways := make([]Pathway, 0, len(ranked))
	for _, r := range ranked {
		if p, err := catalog.FindByName(r.Pathway); err == nil {
			pathways = append(pathways, *p)
		}
	}
	return pathways
}

// orderByImpact 按优先级矩阵的 impact 降序稳定重排技能列表
func orderByImpact(skills []string, matrix map[string]SkillPriority) {
	if len(skills) < 2 {
		return
	}
	sort.SliceStable(skills, func(i, j int) bool {
		a, b := matrix[Normalize(skills[i])], matrix[Normalize(skills[j])]
		if a.Impact != b.Impact {
			return a.Impact > b.Impact
		}
		return skills[i] < skills[j]
	})
}
