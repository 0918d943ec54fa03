package model

// Recommendation 一次推荐运行中单条通路的持久化结果。
// 每次重算对该 CV 先删后插，Rank 字段保存当次名次。
// swagger:model Recommendation
type Recommendation struct {
	BaseModel
	CVID              string  `gorm:"index;type:varchar(36);not null" json:"cvId"`
	Rank              int     `gorm:"not null" json:"rank"`
	Pathway           string  `gorm:"size:100;not null" json:"pathway"`
	Category          string  `gorm:"size:50" json:"category"`
	MatchScore        float64 `gorm:"not null" json:"matchScore"`
	SkillScore        float64 `json:"skillScore"`
	CategoryScore     float64 `json:"categoryScore"`
	ExperienceScore   float64 `json:"experienceScore"`
	ProgressionScore  float64 `json:"progressionScore"`
	Reasoning         string  `gorm:"type:text" json:"reasoning"`
	RecommendedSkills string  `gorm:"type:text" json:"recommendedSkills"` // 逗号分隔，保持推荐顺序
	RoadmapURL        string  `gorm:"size:500" json:"roadmapUrl"`
	CatalogVersion    string  `gorm:"size:50" json:"catalogVersion"`
}

func (Recommendation) TableName() string {
	return "recommendations"
}
