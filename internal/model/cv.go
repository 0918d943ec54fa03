package model

// CVStatus 简历处理状态
type CVStatus string

const (
	CVStatusUploaded CVStatus = "uploaded"
	CVStatusParsed   CVStatus = "parsed"
	CVStatusFailed   CVStatus = "failed"
)

// CV 一份已入库的候选人档案，结构化字段与原始文件分开存储
// swagger:model CV
type CV struct {
	UUIDBase
	UserID          uint     `gorm:"index;not null" json:"userId"`
	FileName        string   `gorm:"size:255" json:"fileName"`
	StoragePath     string   `gorm:"size:500" json:"-"`
	Status          CVStatus `gorm:"type:varchar(20);default:'uploaded'" json:"status"`
	YearsExperience float64  `gorm:"default:0" json:"yearsExperience"`
	EducationLevel  string   `gorm:"size:100" json:"educationLevel"`

	Skills          []CVSkill          `gorm:"foreignKey:CVID" json:"skills"`
	WorkExperiences []CVWorkExperience `gorm:"foreignKey:CVID" json:"workExperiences"`
	LearnedSkills   []LearnedSkill     `gorm:"foreignKey:CVID" json:"learnedSkills,omitempty"`
}

// CVSkill 档案中的单个技能条目
// swagger:model CVSkill
type CVSkill struct {
	BaseModel
	CVID       string  `gorm:"index;type:varchar(36);not null" json:"cvId"`
	Name       string  `gorm:"size:100;not null" json:"name"`
	Category   string  `gorm:"size:50" json:"category"`
	Confidence float64 `gorm:"default:1" json:"confidence"`
}

// CVWorkExperience 档案中的单段工作经历，Technologies 以逗号分隔存储
// swagger:model CVWorkExperience
type CVWorkExperience struct {
	BaseModel
	CVID           string `gorm:"index;type:varchar(36);not null" json:"cvId"`
	JobTitle       string `gorm:"size:255;not null" json:"jobTitle"`
	CompanyName    string `gorm:"size:255" json:"companyName"`
	StartDate      string `gorm:"size:20" json:"startDate"`
	EndDate        string `gorm:"size:20" json:"endDate"`
	DurationMonths int    `gorm:"default:0" json:"durationMonths"`
	Description    string `gorm:"type:text" json:"description"`
	Technologies   string `gorm:"type:text" json:"technologies"`
	IsCurrent      bool   `gorm:"default:false" json:"isCurrent"`
}

func (CV) TableName() string {
	return "cvs"
}

func (CVSkill) TableName() string {
	return "cv_skills"
}

func (CVWorkExperience) TableName() string {
	return "cv_work_experiences"
}
