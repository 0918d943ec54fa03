package model

// RoadmapRecord 为某份 CV 生成的学习路线图。Payload 保存完整的
// 路线图 JSON，列表接口只读摘要字段，不反序列化全文。
// swagger:model RoadmapRecord
type RoadmapRecord struct {
	BaseModel
	CVID         string `gorm:"index;type:varchar(36);not null" json:"cvId"`
	Pathway      string `gorm:"size:100;not null" json:"pathway"`
	TotalWeeks   int    `json:"totalWeeks"`
	HoursPerWeek int    `json:"hoursPerWeek"`
	PhaseCount   int    `json:"phaseCount"`
	Payload      string `gorm:"type:longtext" json:"payload"`
}

func (RoadmapRecord) TableName() string {
	return "roadmap_records"
}
