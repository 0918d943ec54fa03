package repository

import (
	"career_compass_backend/internal/model"

	"gorm.io/gorm"
)

type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

func (r *ProgressRepository) CreateSnapshot(snapshot *model.ProgressSnapshot) error {
	return r.DB.Create(snapshot).Error
}

// LatestSnapshot 没有历史快照时返回 gorm.ErrRecordNotFound
func (r *ProgressRepository) LatestSnapshot(cvID string) (*model.ProgressSnapshot, error) {
	var snapshot model.ProgressSnapshot
	err := r.DB.Where("cv_id = ?", cvID).Order("created_at desc").First(&snapshot).Error
	if err != nil {
		return nil, err
	}
	return &snapshot, nil
}

// ListSnapshots 时间轴用，按拍摄时间升序
func (r *ProgressRepository) ListSnapshots(cvID string) ([]model.ProgressSnapshot, error) {
	var snapshots []model.ProgressSnapshot
	err := r.DB.Where("cv_id = ?", cvID).Order("created_at asc").Find(&snapshots).Error
	return snapshots, err
}

func (r *ProgressRepository) CreateLearnedSkill(skill *model.LearnedSkill) error {
	return r.DB.Create(skill).Error
}

func (r *ProgressRepository) ListLearnedSkills(cvID string) ([]model.LearnedSkill, error) {
	var skills []model.LearnedSkill
	err := r.DB.Where("cv_id = ?", cvID).Order("learned_at desc").Find(&skills).Error
	return skills, err
}

// FindLearnedSkill 带 cv_id 条件，跨档案的 ID 直接查不到
func (r *ProgressRepository) FindLearnedSkill(id uint, cvID string) (*model.LearnedSkill, error) {
	var skill model.LearnedSkill
	err := r.DB.Where("id = ? AND cv_id = ?", id, cvID).First(&skill).Error
	if err != nil {
		return nil, err
	}
	return &skill, nil
}

func (r *ProgressRepository) UpdateLearnedSkill(skill *model.LearnedSkill) error {
	return r.DB.Save(skill).Error
}

func (r *ProgressRepository) DeleteLearnedSkill(skill *model.LearnedSkill) error {
	return r.DB.Delete(skill).Error
}
