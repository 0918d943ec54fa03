package engine

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"
	"time"
)

// Progression 职业轨迹方向
type Progression string

const (
	ProgressionUpward  Progression = "upward"
	ProgressionLateral Progression = "lateral"
	ProgressionPivot   Progression = "pivot"
	ProgressionUnknown Progression = "unknown"
)

// 职级档位，0 实习 … 5 高管
const (
	seniorityIntern    = 0
	seniorityJunior    = 1
	seniorityMid       = 2
	senioritySenior    = 3
	seniorityPrincipal = 4
	seniorityExecutive = 5
)

var seniorityTable = []struct {
	Level    int
	Keywords []string
}{
	{seniorityExecutive, []string{"cto", "cio", "vp", "vice president", "director", "head of", "chief"}},
	{seniorityPrincipal, []string{"principal", "staff", "distinguished", "fellow"}},
	{senioritySenior, []string{"lead", "senior", "sr.", "sr "}},
	{seniorityIntern, []string{"intern", "trainee", "apprentice"}},
	{seniorityJunior, []string{"junior", "jr.", "jr ", "associate", "entry"}},
	{seniorityMid, []string{"engineer", "developer", "analyst", "designer", "architect"}},
}

// SeniorityLevel 从职位头衔推断职级档位，无法识别时按初级处理
func SeniorityLevel(jobTitle string) int {
	title := strings.ToLower(jobTitle)
	if title == "" {
		return seniorityJunior
	}
	for _, row := range seniorityTable {
		for _, kw := range row.Keywords {
			if strings.Contains(title, kw) {
				return row.Level
			}
		}
	}
	return seniorityJunior
}

// SeniorityStep 单段经历的职级信息（按时间先后排列）
type SeniorityStep struct {
	Title          string `json:"title"`
	Level          int    `json:"level"`
	DurationMonths int    `json:"durationMonths"`
}

// Trajectory 轨迹分析结果
type Trajectory struct {
	Progression      Progression     `json:"progression"`
	ProgressionScore float64         `json:"progressionScore"`
	Steps            []SeniorityStep `json:"steps"`
	Description      string          `json:"description"`
}

// CompanyContext 一段经历的公司背景信号
type CompanyContext struct {
	Size     string `json:"size"`
	Industry string `json:"industry"`
	IsTech   bool   `json:"isTech"`
}

// ExperienceSummary 整份工作经历的一次性分析产物，评分阶段复用
type ExperienceSummary struct {
	TotalMonths     int
	Trajectory      Trajectory
	Contexts        []CompanyContext
	TechMonthsRatio float64
	// RelevanceScores 按通路域归一化后的经历相关性 [0,1]
	RelevanceScores map[string]float64
	// RelevantRoles 按通路域收集的命中经历，最近的排在最前
	RelevantRoles map[string][]WorkExperience
	// RecencyBoosts 各域最近一段命中经历的近期权重
	RecencyBoosts map[string]float64
}

var yearPattern = regexp.MustCompile(`(\d{4})`)

// RecencyWeight 指数衰减的近期权重：当前在职恒为 1.0，往前每年乘
// e^-0.3，下限 0.3。无法解析结束时间给中等权重。
func RecencyWeight(endDate string, isCurrent bool, now time.Time) float64 {
	if isCurrent || strings.EqualFold(strings.TrimSpace(endDate), "present") {
		return 1.0
	}
	m := yearPattern.FindString(endDate)
	if m == "" {
		return 0.6
	}
	endYear := 0
	fmt.Sscanf(m, "%d", &endYear)
	yearsAgo := float64(now.Year() - endYear)
	if yearsAgo < 0 {
		yearsAgo = 0
	}
	weight := math.Exp(-0.3 * yearsAgo)
	if weight < 0.3 {
		return 0.3
	}
	if weight > 1.0 {
		return 1.0
	}
	return weight
}

var enterpriseNames = []string{
	"google", "microsoft", "amazon", "apple", "meta", "facebook", "netflix",
	"ibm", "oracle", "salesforce",
}

// 顺序固定，保证同一输入的判定可复现
var companySizeKeywords = []struct {
	Size     string
	Keywords []string
}{
	{"large", []string{"corporation", "corp", "international", "global", "worldwide", "inc.", "limited", "ltd", "enterprise", "fortune 500"}},
	{"startup", []string{"startup", "start-up", "seed", "series a", "series b", "venture"}},
}

var industryKeywords = []struct {
	Industry string
	IsTech   bool
	Keywords []string
}{
	{"tech", true, []string{"software", "technology", "tech", "saas", "cloud", "data", "ai", "mobile", "web", "internet", "digital", "computing", "cybersecurity", "fintech", "edtech", "healthtech"}},
	{"finance", false, []string{"bank", "financial", "finance", "investment", "trading", "capital"}},
	{"healthcare", false, []string{"health", "medical", "hospital", "pharma", "clinical"}},
	{"consulting", false, []string{"consulting", "consultant", "advisory"}},
}

// DetectCompanyContext 从公司名和职责描述猜测公司规模与行业。
// 软信号，评分侧已限幅，猜错的代价很低。
func DetectCompanyContext(companyName, description string) CompanyContext {
	ctx := CompanyContext{Size: "unknown", Industry: "unknown"}
	combined := strings.ToLower(companyName + " " + description)
	if strings.TrimSpace(combined) == "" {
		return ctx
	}

	ctx.Size = "medium"
	for _, name := range enterpriseNames {
		if strings.Contains(combined, name) {
			ctx.Size = "enterprise"
			ctx.IsTech = true
			break
		}
	}
	if ctx.Size == "medium" {
		for _, row := range companySizeKeywords {
			for _, kw := range row.Keywords {
				if strings.Contains(combined, kw) {
					ctx.Size = row.Size
					break
				}
			}
			if ctx.Size != "medium" {
				break
			}
		}
	}

	ctx.Industry = "other"
	for _, row := range industryKeywords {
		for _, kw := range row.Keywords {
			if strings.Contains(combined, kw) {
				ctx.Industry = row.Industry
				if row.IsTech {
					ctx.IsTech = true
				}
				return ctx
			}
		}
	}
	return ctx
}

// AnalyzeTrajectory 按时间顺序比较各段职级，判定轨迹方向。
// 少于两段经历时无法判断。
func AnalyzeTrajectory(history []WorkExperience) Trajectory {
	if len(history) < 2 {
		t := Trajectory{Progression: ProgressionUnknown, ProgressionScore: 0.5}
		if len(history) == 1 {
			t.Steps = []SeniorityStep{{
				Title:          history[0].JobTitle,
				Level:          SeniorityLevel(history[0].JobTitle),
				DurationMonths: history[0].DurationMonths,
			}}
		}
		return t
	}

	ordered := chronological(history)
	steps := make([]SeniorityStep, 0, len(ordered))
	for _, exp := range ordered {
		steps = append(steps, SeniorityStep{
			Title:          exp.JobTitle,
			Level:          SeniorityLevel(exp.JobTitle),
			DurationMonths: exp.DurationMonths,
		})
	}

	increases, decreases := 0, 0
	for i := 1; i < len(steps); i++ {
		switch {
		case steps[i].Level > steps[i-1].Level:
			increases++
		case steps[i].Level < steps[i-1].Level:
			decreases++
		}
	}
	levelChange := steps[len(steps)-1].Level - steps[0].Level

	t := Trajectory{Steps: steps}
	switch {
	case levelChange >= 2:
		t.Progression = ProgressionUpward
		t.ProgressionScore = 1.0
		t.Description = fmt.Sprintf("Strong career growth from %s to %s", steps[0].Title, steps[len(steps)-1].Title)
	case levelChange == 1 || increases > decreases:
		t.Progression = ProgressionUpward
		t.ProgressionScore = 0.8
		t.Description = "Steady progression in your career"
	case levelChange < 0:
		t.Progression = ProgressionPivot
		t.ProgressionScore = 0.4
		t.Description = "Career transition detected"
	case increases == 0 && decreases == 0:
		t.Progression = ProgressionLateral
		t.ProgressionScore = 0.5
		t.Description = fmt.Sprintf("Consistent experience at %s level", steps[len(steps)-1].Title)
	default:
		t.Progression = ProgressionLateral
		t.ProgressionScore = 0.6
		t.Description = "Diverse career experiences"
	}
	return t
}

// chronological 旧经历在前。排序键：在职 > 结束时间 > 开始时间，稳定排序。
func chronological(history []WorkExperience) []WorkExperience {
	ordered := make([]WorkExperience, len(history))
	copy(ordered, history)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].IsCurrent != ordered[j].IsCurrent {
			return !ordered[i].IsCurrent
		}
		if ordered[i].EndDate != ordered[j].EndDate {
			return ordered[i].EndDate < ordered[j].EndDate
		}
		return ordered[i].StartDate < ordered[j].StartDate
	})
	return ordered
}

// SummarizeExperience 对整份工作经历做一次扫描，产出评分需要的全部
// 派生信号。catalog 只用来决定要为哪些通路域算相关性。
func SummarizeExperience(history []WorkExperience, catalog *Catalog, now time.Time) ExperienceSummary {
	summary := ExperienceSummary{
		Trajectory:      Trajectory{Progression: ProgressionUnknown, ProgressionScore: 0.5},
		RelevanceScores: map[string]float64{},
		RelevantRoles:   map[string][]WorkExperience{},
		RecencyBoosts:   map[string]float64{},
	}
	if len(history) == 0 {
		return summary
	}

	summary.Trajectory = AnalyzeTrajectory(history)

	techMonths := 0
	for _, exp := range history {
		summary.TotalMonths += exp.DurationMonths
		ctx := DetectCompanyContext(exp.CompanyName, exp.Description)
		summary.Contexts = append(summary.Contexts, ctx)
		if ctx.IsTech {
			techMonths += exp.DurationMonths
		}
	}
	if summary.TotalMonths > 0 {
		summary.TechMonthsRatio = float64(techMonths) / float64(summary.TotalMonths)
	}

	categories := map[string]bool{}
	for _, p := range catalog.Pathways {
		categories[strings.ToLower(p.Category)] = true
	}

	for category := range categories {
		keywords := categoryKeywords(category)
		if len(keywords) == 0 {
			continue
		}
		total := 0.0
		var matched []WorkExperience
		for i, exp := range history {
			score := relevanceScore(exp, keywords)
			if score == 0 {
				continue
			}
			durationWeight := math.Min(float64(exp.DurationMonths)/12.0, 1.0)
			recency := RecencyWeight(exp.EndDate, exp.IsCurrent, now)
			boost := 1.0
			if summary.Contexts[i].IsTech && IsTechCategory(category) {
				boost = 1.2
			}
			total += score * durationWeight * recency * boost
			matched = append(matched, exp)
		}
		if total > 0 {
			// /3 归一化沿用既有标定：三段强相关经历即拉满
			summary.RelevanceScores[category] = math.Min(total/3.0, 1.0)
			sort.SliceStable(matched, func(i, j int) bool {
				if matched[i].IsCurrent != matched[j].IsCurrent {
					return matched[i].IsCurrent
				}
				return matched[i].EndDate > matched[j].EndDate
			})
			summary.RelevantRoles[category] = matched
			summary.RecencyBoosts[category] = RecencyWeight(matched[0].EndDate, matched[0].IsCurrent, now)
		}
	}
	return summary
}

// relevanceScore 关键词命中计分：头衔 1.0，描述/技术栈 0.3，公司名 0.2
func relevanceScore(exp WorkExperience, keywords []string) float64 {
	title := strings.ToLower(exp.JobTitle)
	company := strings.ToLower(exp.CompanyName)
	description := strings.ToLower(exp.Description)
	technologies := strings.ToLower(strings.Join(exp.Technologies, " "))

	score := 0.0
	for _, kw := range keywords {
		switch {
		case strings.Contains(title, kw):
			score += 1.0
		case strings.Contains(description, kw) || strings.Contains(technologies, kw):
			score += 0.3
		case strings.Contains(company, kw):
			score += 0.2
		}
	}
	return score
}
