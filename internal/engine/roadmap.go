package engine

import (
	"fmt"
	"math"
	"sort"
	"time"
)

// Phase 路线图中的一个学习阶段
type Phase struct {
	Number         int          `json:"number"`
	Name           string       `json:"name"`
	Skills         []string     `json:"skills"`
	EstimatedWeeks int          `json:"estimatedWeeks"`
	Priority       PriorityTier `json:"priority"`
}

// Timeline 路线图整体时间线
type Timeline struct {
	TotalWeeks              int       `json:"totalWeeks"`
	HoursPerWeekAssumed     int       `json:"hoursPerWeekAssumed"`
	StartDate               time.Time `json:"startDate"`
	EstimatedCompletionDate time.Time `json:"estimatedCompletionDate"`
}

// Milestone 阶段完成后的检查点
type Milestone struct {
	Name          string       `json:"name"`
	SkillsCovered int          `json:"skillsCovered"`
	EstimatedDate time.Time    `json:"estimatedDate"`
	Priority      PriorityTier `json:"priority"`
}

// Roadmap 单条通路的个性化学习路线图，自包含值对象
type Roadmap struct {
	Pathway    string      `json:"pathway"`
	Phases     []Phase     `json:"phases"`
	Timeline   Timeline    `json:"timeline"`
	Milestones []Milestone `json:"milestones"`
}

// RoadmapOptions 路线图生成参数，零值字段按画像经验取默认
type RoadmapOptions struct {
	MaxPhaseSkills int
	HoursPerWeek   int
	StartDate      time.Time
}

const (
	defaultMaxPhaseSkills = 4
	// 单个技能的基准学时，乘以 (0.5 + difficulty) 得到实际学时
	baseSkillHours = 20.0
)

// 四个档位对应的阶段命名，critical 在前
var phaseNames = map[PriorityTier]string{
	TierCritical: "Fundamentals",
	TierHigh:     "Core Skills",
	TierMedium:   "Advanced Skills",
	TierLow:      "Specialization",
}

// BuildRoadmap 把画像相对通路的技能缺口编排成分阶段学习计划。
// matrix 由 Prioritize 产出；缺口为空时返回零阶段的合法路线图。
func BuildRoadmap(profile Profile, pathway Pathway, matrix map[string]SkillPriority, opts RoadmapOptions) Roadmap {
	if opts.MaxPhaseSkills <= 0 {
		opts.MaxPhaseSkills = defaultMaxPhaseSkills
	}
	if opts.HoursPerWeek <= 0 {
		// 经验浅的学员通常在全力转型，投入更多周学时
		if profile.YearsExperience < 2 {
			opts.HoursPerWeek = 10
		} else {
			opts.HoursPerWeek = 5
		}
	}
	if opts.StartDate.IsZero() {
		opts.StartDate = time.Now()
	}

	gap := missingSkills(profile, pathway)
	roadmap := Roadmap{
		Pathway: pathway.Name,
		Timeline: Timeline{
			HoursPerWeekAssumed: opts.HoursPerWeek,
			StartDate:           opts.StartDate,
		},
	}
	if len(gap) == 0 {
		roadmap.Timeline.EstimatedCompletionDate = opts.StartDate
		return roadmap
	}

	// 有经验的学员学得快，整体学时打折
	multiplier := 1.0
	switch {
	case profile.YearsExperience > 3:
		multiplier = 0.7
	case profile.YearsExperience > 1:
		multiplier = 0.85
	}

	// 档位内先易后难，同难度按名称排序，保证阶段构成稳定
	sort.SliceStable(gap, func(i, j int) bool {
		a, b := matrix[Normalize(gap[i])], matrix[Normalize(gap[j])]
		if TierRank(a.Tier) != TierRank(b.Tier) {
			return TierRank(a.Tier) < TierRank(b.Tier)
		}
		if a.Difficulty != b.Difficulty {
			return a.Difficulty < b.Difficulty
		}
		return gap[i] < gap[j]
	})

	cursor := opts.StartDate
	for _, tier := range []PriorityTier{TierCritical, TierHigh, TierMedium, TierLow} {
		var tierSkills []string
		for _, s := range gap {
			if matrix[Normalize(s)].Tier == tier {
				tierSkills = append(tierSkills, s)
			}
		}
		for len(tierSkills) > 0 {
			n := opts.MaxPhaseSkills
			if n > len(tierSkills) {
				n = len(tierSkills)
			}
			chunk := tierSkills[:n]
			tierSkills = tierSkills[n:]

			hours := 0.0
			for _, s := range chunk {
				hours += baseSkillHours * (0.5 + matrix[Normalize(s)].Difficulty)
			}
			weeks := int(math.Ceil(hours * multiplier / float64(opts.HoursPerWeek)))
			if weeks < 1 {
				weeks = 1
			}

			number := len(roadmap.Phases) + 1
			name := phaseNames[tier]
			if len(tierSkills) > 0 || phaseCountForTier(roadmap.Phases, tier) > 0 {
				name = fmt.Sprintf("%s %d", phaseNames[tier], phaseCountForTier(roadmap.Phases, tier)+1)
			}
			roadmap.Phases = append(roadmap.Phases, Phase{
				Number:         number,
				Name:           name,
				Skills:         chunk,
				EstimatedWeeks: weeks,
				Priority:       tier,
			})

			cursor = cursor.AddDate(0, 0, weeks*7)
			roadmap.Timeline.TotalWeeks += weeks
			roadmap.Milestones = append(roadmap.Milestones, Milestone{
				Name:          "Complete " + name,
				SkillsCovered: len(chunk),
				EstimatedDate: cursor,
				Priority:      tier,
			})
		}
	}

	roadmap.Timeline.EstimatedCompletionDate = cursor
	return roadmap
}

func phaseCountForTier(phases []Phase, tier PriorityTier) int {
	count := 0
	for _, p := range phases {
		if p.Priority == tier {
			count++
		}
	}
	return count
}
