package model

// QuizHistory records one quiz submission. The ID is the quiz identifier
// supplied by the client at submission time; UserID carries no foreign-key
// constraint. Rows are insert-only.
type QuizHistory struct {
	ID             string `gorm:"primaryKey;size:32" json:"quiz_id"`
	UserID         string `gorm:"index;size:32" json:"user_id"`
	Subject        string `gorm:"size:100" json:"subject"`
	Score          int    `gorm:"not null" json:"score"`
	TotalQuestions int    `gorm:"not null" json:"total_questions"`
	Timestamp      string `gorm:"size:40" json:"timestamp"` // ISO-8601 text
}

func (QuizHistory) TableName() string {
	return "quiz_history"
}
