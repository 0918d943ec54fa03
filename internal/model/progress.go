package model

import "time"

// ProficiencyLevel 学习技能的熟练度档位
type ProficiencyLevel string

const (
	ProficiencyBeginner     ProficiencyLevel = "beginner"
	ProficiencyIntermediate ProficiencyLevel = "intermediate"
	ProficiencyAdvanced     ProficiencyLevel = "advanced"
	ProficiencyExpert       ProficiencyLevel = "expert"
)

// LearnedSkillStatus 学习状态，completed/mastered 的技能会并入画像参与重排
type LearnedSkillStatus string

const (
	LearnedSkillLearning  LearnedSkillStatus = "learning"
	LearnedSkillCompleted LearnedSkillStatus = "completed"
	LearnedSkillMastered  LearnedSkillStatus = "mastered"
)

// LearnedSkill 用户在档案上补报的学习技能
// swagger:model LearnedSkill
type LearnedSkill struct {
	BaseModel
	CVID        string             `gorm:"index;type:varchar(36);not null" json:"cvId"`
	Name        string             `gorm:"size:100;not null" json:"name"`
	Proficiency ProficiencyLevel   `gorm:"type:varchar(20);default:'beginner'" json:"proficiency"`
	Status      LearnedSkillStatus `gorm:"type:varchar(20);default:'learning'" json:"status"`
	LearnedAt   time.Time          `json:"learnedAt"`
}

// ProgressSnapshot 某一时刻的档案进度快照。Skills 存当时的完整技能
// 清单，NewSkills 存相对上一张快照的新增，均逗号分隔
// swagger:model ProgressSnapshot
type ProgressSnapshot struct {
	BaseModel
	CVID          string  `gorm:"index;type:varchar(36);not null" json:"cvId"`
	SkillsCount   int     `gorm:"default:0" json:"skillsCount"`
	TopMatchScore float64 `gorm:"default:0" json:"topMatchScore"`
	BestPathway   string  `gorm:"size:100" json:"bestPathway"`
	Skills        string  `gorm:"type:text" json:"-"`
	NewSkills     string  `gorm:"type:text" json:"newSkills"`
}

func (LearnedSkill) TableName() string {
	return "learned_skills"
}

func (ProgressSnapshot) TableName() string {
	return "progress_snapshots"
}
