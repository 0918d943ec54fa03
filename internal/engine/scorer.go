package engine

import (
	"fmt"
	"sort"
	"strings"
)

// 加权基础分的权重，与各限幅修正项。修正项单独封顶，任何一项都
// 不能把总分推出 [0,1]。
const (
	weightSkill              = 0.35
	weightCategory           = 0.30
	weightExperienceRelevant = 0.15
	weightExperienceDuration = 0.15

	maxProgressionBonus = 0.05
	maxRecencyBonus     = 0.05
	maxContextBonus     = 0.05

	// 经历时长在 6 年处饱和，再久收益递减为零
	durationSaturationMonths = 72.0

	// 单域技能数达到 5 个即认为该域已吃满权重
	categorySaturationCount = 5.0
)

// Score 计算画像对单条通路的匹配结果。纯函数：summary 由
// SummarizeExperience 预先算好，同一画像对全目录评分时只算一次。
func Score(profile Profile, pathway Pathway, summary ExperienceSummary) MatchResult {
	result := MatchResult{
		Pathway:     pathway.Name,
		Category:    pathway.Category,
		Description: pathway.Description,
		RoadmapURL:  pathway.RoadmapURL,
	}

	requiredMatches, optionalMatches := 0, 0
	for _, s := range pathway.RequiredSkills {
		if ContainsSkill(profile.Skills, s) {
			requiredMatches++
		}
	}
	for _, s := range pathway.OptionalSkills {
		if ContainsSkill(profile.Skills, s) {
			optionalMatches++
		}
	}

	// 必选技能构成分母：缺必选会丢分，缺可选不会；可选命中算加分。
	// 必选集为空属于目录数据问题，这里直接给 0，不做除零。
	if len(pathway.RequiredSkills) > 0 {
		result.SkillScore = clamp01(float64(requiredMatches+optionalMatches) / float64(len(pathway.RequiredSkills)))
	}

	counts := CategoryCounts(profile.Skills)
	result.CategoryScore = categoryAlignment(pathway, counts)

	pathwayCategory := strings.ToLower(pathway.Category)
	result.ExperienceRelevance = summary.RelevanceScores[pathwayCategory]
	result.ExperienceDurationScore = clamp01(float64(summary.TotalMonths) / durationSaturationMonths)
	result.CareerProgressionScore = summary.Trajectory.ProgressionScore

	result.RecencyBoost = summary.RecencyBoosts[pathwayCategory]

	if IsTechCategory(pathway.Category) {
		result.CompanyContextMatch = summary.TechMonthsRatio
	} else {
		result.CompanyContextMatch = 0.5
	}

	base := weightSkill*result.SkillScore +
		weightCategory*result.CategoryScore +
		weightExperienceRelevant*result.ExperienceRelevance +
		weightExperienceDuration*result.ExperienceDurationScore

	progressionBonus := (result.CareerProgressionScore - 0.5) * 2 * maxProgressionBonus
	recencyBonus := result.RecencyBoost * maxRecencyBonus
	contextBonus := 0.0
	if IsTechCategory(pathway.Category) && summary.TechMonthsRatio > 0.5 {
		contextBonus = maxContextBonus
	}

	result.MatchScore = clamp01(base + progressionBonus + recencyBonus + contextBonus)
	result.Reasoning = buildReasoning(pathway, requiredMatches, optionalMatches, counts, summary)
	result.RecommendedSkills = missingSkills(profile, pathway)
	return result
}

// categoryAlignment 通路声明的域权重与画像技能分布的重合度
func categoryAlignment(pathway Pathway, counts map[string]int) float64 {
	if len(pathway.WeightCategories) == 0 {
		// 没有显式权重时退化为单域：看画像在通路主域的技能密度
		return clamp01(float64(counts[strings.ToLower(pathway.Category)]) / categorySaturationCount)
	}
	totalWeight := 0.0
	for _, w := range pathway.WeightCategories {
		totalWeight += w
	}
	if totalWeight == 0 {
		return 0
	}
	score := 0.0
	for category, weight := range pathway.WeightCategories {
		if n := counts[strings.ToLower(category)]; n > 0 {
			score += (weight / totalWeight) * clamp01(float64(n)/categorySaturationCount)
		}
	}
	return clamp01(score)
}

// missingSkills 通路技能中画像缺失的部分：先必选后可选，展示用首字母
// 大写。最终顺序由 Ranker 按优先级矩阵的 impact 重排。
func missingSkills(profile Profile, pathway Pathway) []string {
	var missing []string
	seen := map[string]bool{}
	for _, group := range [][]string{pathway.RequiredSkills, pathway.OptionalSkills} {
		for _, s := range group {
			canonical := Normalize(s)
			if seen[canonical] || ContainsSkill(profile.Skills, s) {
				continue
			}
			seen[canonical] = true
			missing = append(missing, titleCase(canonical))
		}
	}
	return missing
}

// buildReasoning 由分项信号拼接解释文本。模板是固定的，相同输入
// 必须产出相同文本，不允许任何随机成分。
func buildReasoning(pathway Pathway, requiredMatches, optionalMatches int, counts map[string]int, summary ExperienceSummary) string {
	var reasons []string

	if n := len(pathway.RequiredSkills); n > 0 {
		percentage := requiredMatches * 100 / n
		reasons = append(reasons, fmt.Sprintf("You have %d%% of required skills (%d/%d)", percentage, requiredMatches, n))
	}
	if optionalMatches > 0 {
		reasons = append(reasons, fmt.Sprintf("Plus %d optional/advanced skills", optionalMatches))
	}

	switch summary.Trajectory.Progression {
	case ProgressionUpward:
		if summary.Trajectory.Description != "" {
			reasons = append(reasons, summary.Trajectory.Description)
		}
	case ProgressionPivot:
		reasons = append(reasons, "Your career transition shows adaptability and growth mindset")
	}

	category := strings.ToLower(pathway.Category)
	if roles := summary.RelevantRoles[category]; len(roles) > 0 {
		mostRecent := roles[0]
		months := 0
		for _, r := range roles {
			months += r.DurationMonths
		}
		years := float64(months) / 12.0
		switch {
		case mostRecent.IsCurrent && len(roles) > 1:
			reasons = append(reasons, fmt.Sprintf("Currently building on %.1f years of relevant experience as %s", years, mostRecent.JobTitle))
		case mostRecent.IsCurrent:
			reasons = append(reasons, fmt.Sprintf("Your current work as %s aligns strongly with this path", mostRecent.JobTitle))
		case len(roles) > 1:
			reasons = append(reasons, fmt.Sprintf("%.1f years of relevant experience in roles like %s", years, mostRecent.JobTitle))
		default:
			reasons = append(reasons, fmt.Sprintf("%.1f years as %s", years, mostRecent.JobTitle))
		}
	} else if summary.TotalMonths > 0 {
		reasons = append(reasons, fmt.Sprintf("%.1f years of professional experience", float64(summary.TotalMonths)/12.0))
	}

	if summary.TechMonthsRatio > 0.7 && len(summary.Contexts) > 0 {
		hasEnterprise, hasStartup := false, false
		for _, ctx := range summary.Contexts {
			if ctx.Size == "enterprise" {
				hasEnterprise = true
			}
			if ctx.Size == "startup" {
				hasStartup = true
			}
		}
		switch {
		case hasEnterprise && hasStartup:
			reasons = append(reasons, "Your diverse experience across enterprise and startup environments is valuable")
		case hasEnterprise:
			reasons = append(reasons, "Your experience at established tech companies provides strong foundations")
		case hasStartup:
			reasons = append(reasons, "Your startup experience demonstrates versatility and rapid learning")
		default:
			reasons = append(reasons, "Your technology industry experience is highly relevant")
		}
	}

	if top := topCategories(counts, pathway.WeightCategories, 2); len(top) > 0 {
		reasons = append(reasons, "Strong background in "+strings.Join(top, ", "))
	}

	if len(reasons) == 0 {
		return fmt.Sprintf("Some foundational skills for %s.", pathway.Name)
	}
	return strings.Join(reasons, ". ") + "."
}

// topCategories 画像在通路权重域中技能数最多的前 n 个域，
// 数量相同按域名排序保证输出稳定。
func topCategories(counts map[string]int, weightCategories map[string]float64, n int) []string {
	type entry struct {
		Category string
		Count    int
	}
	var entries []entry
	for category, count := range counts {
		if count == 0 {
			continue
		}
		if _, ok := weightCategories[category]; !ok {
			continue
		}
		entries = append(entries, entry{category, count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Category < entries[j].Category
	})
	if len(entries) > n {
		entries = entries[:n]
	}
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Category
	}
	return names
}
