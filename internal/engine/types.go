// Package engine implements the career recommendation core: skill
// normalization, pathway scoring, ranking, learning prioritization and
// roadmap synthesis. Everything in this package is a pure computation over
// immutable inputs; all I/O (catalog loading, persistence) lives with the
// callers in internal/service.
package engine

// Skill 简历中识别出的单项技能
type Skill struct {
	Name       string  `json:"name"`
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
}

// WorkExperience 一段工作经历，按时间顺序提供
type WorkExperience struct {
	JobTitle       string   `json:"jobTitle"`
	CompanyName    string   `json:"companyName"`
	StartDate      string   `json:"startDate"`
	EndDate        string   `json:"endDate"`
	DurationMonths int      `json:"durationMonths"`
	Description    string   `json:"description"`
	Technologies   []string `json:"technologies"`
	IsCurrent      bool     `json:"isCurrent"`
}

// Profile 候选人画像，评分期间只读
type Profile struct {
	Skills          []Skill          `json:"skills"`
	WorkHistory     []WorkExperience `json:"workHistory"`
	YearsExperience float64          `json:"yearsExperience"`
	EducationLevel  string           `json:"educationLevel"`
}

// IsEmpty reports whether the profile carries no usable signal at all.
func (p *Profile) IsEmpty() bool {
	return len(p.Skills) == 0 && len(p.WorkHistory) == 0
}

// MatchResult 单条通路的匹配结果，每次排名请求重新生成，生成后不再修改
type MatchResult struct {
	Pathway     string `json:"pathway"`
	Category    string `json:"category"`
	Description string `json:"description"`
	RoadmapURL  string `json:"roadmapUrl"`

	MatchScore float64 `json:"matchScore"`

	// 各分项得分，均在加权前落在 [0,1]
	SkillScore              float64 `json:"skillScore"`
	CategoryScore           float64 `json:"categoryScore"`
	ExperienceRelevance     float64 `json:"experienceRelevance"`
	ExperienceDurationScore float64 `json:"experienceDurationScore"`
	CareerProgressionScore  float64 `json:"careerProgressionScore"`
	RecencyBoost            float64 `json:"recencyBoost"`
	CompanyContextMatch     float64 `json:"companyContextMatch"`

	Reasoning         string   `json:"reasoning"`
	RecommendedSkills []string `json:"recommendedSkills"`
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
