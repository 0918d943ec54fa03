package repository

import (
	"career_compass_backend/internal/model"

	"gorm.io/gorm"
)

type RecommendationRepository struct {
	DB *gorm.DB
}

func NewRecommendationRepository(db *gorm.DB) *RecommendationRepository {
	return &RecommendationRepository{DB: db}
}

// ReplaceForCV 重算后整组替换该 CV 的推荐结果，保持读端看到的
// 始终是同一次运行的完整快照
func (r *RecommendationRepository) ReplaceForCV(cvID string, recommendations []model.Recommendation) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("cv_id = ?", cvID).Delete(&model.Recommendation{}).Error; err != nil {
			return err
		}
		if len(recommendations) == 0 {
			return nil
		}
		return tx.Create(&recommendations).Error
	})
}

func (r *RecommendationRepository) ListByCV(cvID string) ([]model.Recommendation, error) {
	var recommendations []model.Recommendation
	err := r.DB.Where("cv_id = ?", cvID).Order("`rank` asc").Find(&recommendations).Error
	return recommendations, err
}
