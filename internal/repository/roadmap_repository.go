package repository

import (
	"career_compass_backend/internal/model"

	"gorm.io/gorm"
)

type RoadmapRepository struct {
	DB *gorm.DB
}

func NewRoadmapRepository(db *gorm.DB) *RoadmapRepository {
	return &RoadmapRepository{DB: db}
}

func (r *RoadmapRepository) Create(record *model.RoadmapRecord) error {
	return r.DB.Create(record).Error
}

func (r *RoadmapRepository) FindByID(id uint) (*model.RoadmapRecord, error) {
	var record model.RoadmapRecord
	err := r.DB.First(&record, id).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// ListByCV 列表接口不带 Payload 全文，避免大字段拖慢分页
func (r *RoadmapRepository) ListByCV(cvID string) ([]model.RoadmapRecord, error) {
	var records []model.RoadmapRecord
	err := r.DB.Select("id", "created_at", "updated_at", "cv_id", "pathway", "total_weeks", "hours_per_week", "phase_count").
		Where("cv_id = ?", cvID).Order("created_at desc").Find(&records).Error
	return records, err
}
