package service

import (
	"encoding/json"
	"errors"

	"study_buddy_backend/internal/model"
	"study_buddy_backend/internal/repository"
	"study_buddy_backend/internal/util"

	"gorm.io/gorm"
)

type UserService struct {
	users   *repository.UserRepository
	history *repository.QuizRepository
}

func NewUserService(users *repository.UserRepository, history *repository.QuizRepository) *UserService {
	return &UserService{users: users, history: history}
}

type UserStats struct {
	UserID       string              `json:"user_id"`
	Name         string              `json:"name"`
	Level        int                 `json:"level"`
	XP           int                 `json:"xp"`
	SubjectStats []model.SubjectStat `json:"subject_stats"`
}

// Create inserts a new user with level 1 and no xp. The grade level the
// client sends is accepted by the endpoint but not stored anywhere.
func (s *UserService) Create(name string, subjects []string) (string, error) {
	blob, err := json.Marshal(subjects)
	if err != nil {
		return "", err
	}

	user := &model.User{
		ID:       util.DeriveID(name),
		Name:     name,
		Subjects: string(blob),
		Level:    1,
		XP:       0,
	}
	if err := s.users.Create(user); err != nil {
		return "", err
	}

	return user.ID, nil
}

// Stats looks up the user and aggregates their quiz history per subject.
// A missing user is the one failure the API reports distinctly.
func (s *UserService) Stats(userID string) (*UserStats, error) {
	user, err := s.users.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}

	stats, err := s.history.StatsByUser(userID)
	if err != nil {
		return nil, err
	}

	return &UserStats{
		UserID:       user.ID,
		Name:         user.Name,
		Level:        user.Level,
		XP:           user.XP,
		SubjectStats: stats,
	}, nil
}
