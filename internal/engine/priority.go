package engine

// PriorityTier 学习优先级档位
type PriorityTier string

const (
	TierCritical PriorityTier = "critical"
	TierHigh     PriorityTier = "high"
	TierMedium   PriorityTier = "medium"
	TierLow      PriorityTier = "low"
)

// SkillPriority 单个缺失技能的学习优先级
type SkillPriority struct {
	Skill      string       `json:"skill"`
	Impact     float64      `json:"impact"`
	Difficulty float64      `json:"difficulty"`
	Tier       PriorityTier `json:"tier"`
}

// 难度标定表，键为规范形式。覆盖不到的技能退化为名称长度启发式。
var skillDifficulty = map[string]float64{
	// 入门
	"html": 0.2, "css": 0.2, "git": 0.2, "github": 0.2, "agile": 0.2,
	"scrum": 0.2, "sql": 0.25, "bootstrap": 0.25, "jquery": 0.25,
	"rest api": 0.3, "linux": 0.3, "python": 0.3, "javascript": 0.3,

	// 进阶
	"react": 0.5, "vue": 0.5, "angular": 0.55, "typescript": 0.5,
	"node.js": 0.5, "django": 0.5, "flask": 0.45, "fastapi": 0.45,
	"spring": 0.55, "postgresql": 0.5, "mysql": 0.45, "mongodb": 0.45,
	"redis": 0.45, "docker": 0.5, "ci/cd": 0.5, "graphql": 0.55,
	"aws": 0.6, "azure": 0.6, "gcp": 0.6, "go": 0.5, "java": 0.55,
	"pandas": 0.5, "numpy": 0.5, "tableau": 0.45, "swift": 0.55,
	"kotlin": 0.55, "flutter": 0.55, "react native": 0.55,

	// 高阶
	"kubernetes": 0.8, "terraform": 0.75, "ansible": 0.7, "kafka": 0.75,
	"spark": 0.75, "hadoop": 0.75, "tensorflow": 0.8, "pytorch": 0.8,
	"machine learning": 0.85, "deep learning": 0.9, "nlp": 0.85,
	"computer vision": 0.85, "microservices": 0.75, "grpc": 0.7,
	"distributed systems": 0.9, "elasticsearch": 0.7, "airflow": 0.7,
	"rust": 0.8, "scala": 0.75, "system design": 0.85,
}

// Difficulty 技能学习难度估计 [0,1]。先查标定表，没有的按名称长度
// 粗估——长名称多为组合概念，通常更难。
func Difficulty(skill string) float64 {
	canonical := Normalize(skill)
	if d, ok := skillDifficulty[canonical]; ok {
		return d
	}
	switch {
	case len(canonical) <= 4:
		return 0.35
	case len(canonical) <= 10:
		return 0.5
	default:
		return 0.65
	}
}

// Prioritize 对一批缺失技能计算 impact × difficulty 优先级矩阵。
// impact 取技能在本次入选通路中出现（必选或可选）的比例，pathways
// 传入排序后入选的那部分目录。返回 map 以规范技能名为键。
func Prioritize(gapSkills []string, pathways []Pathway) map[string]SkillPriority {
	matrix := make(map[string]SkillPriority, len(gapSkills))
	if len(gapSkills) == 0 {
		return matrix
	}

	for _, raw := range gapSkills {
		canonical := Normalize(raw)
		if _, ok := matrix[canonical]; ok {
			continue
		}
		impact := 0.0
		if len(pathways) > 0 {
			listed := 0
			for _, p := range pathways {
				if pathwayListsSkill(p, canonical) {
					listed++
				}
			}
			impact = float64(listed) / float64(len(pathways))
		}
		difficulty := Difficulty(canonical)
		matrix[canonical] = SkillPriority{
			Skill:      titleCase(canonical),
			Impact:     impact,
			Difficulty: difficulty,
			Tier:       tierFor(impact, difficulty),
		}
	}
	return matrix
}

func pathwayListsSkill(p Pathway, canonical string) bool {
	for _, s := range p.RequiredSkills {
		if Matches(s, canonical) {
			return true
		}
	}
	for _, s := range p.OptionalSkills {
		if Matches(s, canonical) {
			return true
		}
	}
	return false
}

// tierFor 在 0.5 处交叉 impact 与 difficulty，切出四档：
// 高收益易学的最先学，低收益难学的最后学。
func tierFor(impact, difficulty float64) PriorityTier {
	highImpact := impact >= 0.5
	hard := difficulty >= 0.5
	switch {
	case highImpact && !hard:
		return TierCritical
	case highImpact && hard:
		return TierHigh
	case !highImpact && !hard:
		return TierMedium
	default:
		return TierLow
	}
}

// TierRank 档位的排序值，critical 最小（排最前）
func TierRank(t PriorityTier) int {
	switch t {
	case TierCritical:
		return 0
	case TierHigh:
		return 1
	case TierMedium:
		return 2
	default:
		return 3
	}
}
