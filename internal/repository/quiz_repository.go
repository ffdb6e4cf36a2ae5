package repository

import (
	"study_buddy_backend/internal/model"

	"gorm.io/gorm"
)

type QuizRepository struct {
	DB *gorm.DB
}

func NewQuizRepository(db *gorm.DB) *QuizRepository {
	return &QuizRepository{DB: db}
}

func (r *QuizRepository) CreateHistory(record *model.QuizHistory) error {
	return r.DB.Create(record).Error
}

// StatsByUser aggregates quiz history per subject. Subjects with no history
// rows do not appear; a user with no history yields an empty slice, not nil.
func (r *QuizRepository) StatsByUser(userID string) ([]model.SubjectStat, error) {
	stats := make([]model.SubjectStat, 0)
	err := r.DB.Model(&model.QuizHistory{}).
		Select("subject, AVG(score) AS average_score, COUNT(*) AS quiz_count").
		Where("user_id = ?", userID).
		Group("subject").
		Scan(&stats).Error
	return stats, err
}
