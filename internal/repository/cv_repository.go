package repository

import (
	"career_compass_backend/internal/model"

	"gorm.io/gorm"
)

type CVRepository struct {
	DB *gorm.DB
}

func NewCVRepository(db *gorm.DB) *CVRepository {
	return &CVRepository{DB: db}
}

// Create 连同技能与工作经历一起落库
func (r *CVRepository) Create(cv *model.CV) error {
	return r.DB.Create(cv).Error
}

func (r *CVRepository) FindByID(id string) (*model.CV, error) {
	var cv model.CV
	err := r.DB.Preload("Skills").Preload("WorkExperiences").Preload("LearnedSkills").First(&cv, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &cv, nil
}

func (r *CVRepository) ListByUser(userID uint) ([]model.CV, error) {
	var cvs []model.CV
	err := r.DB.Where("user_id = ?", userID).Order("created_at desc").Find(&cvs).Error
	return cvs, err
}

func (r *CVRepository) UpdateStatus(id string, status model.CVStatus) error {
	return r.DB.Model(&model.CV{}).Where("id = ?", id).Update("status", status).Error
}

func (r *CVRepository) Delete(id string) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("cv_id = ?", id).Delete(&model.CVSkill{}).Error; err != nil {
			return err
		}
		if err := tx.Where("cv_id = ?", id).Delete(&model.CVWorkExperience{}).Error; err != nil {
			return err
		}
		if err := tx.Where("cv_id = ?", id).Delete(&model.LearnedSkill{}).Error; err != nil {
			return err
		}
		if err := tx.Where("cv_id = ?", id).Delete(&model.ProgressSnapshot{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.CV{}, "id = ?", id).Error
	})
}
