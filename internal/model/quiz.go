package model

// QuizQuestion is the wire shape of one generated multiple-choice question.
// Generated quizzes are returned to the client but never persisted.
type QuizQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
}

// SubjectStat is one row of the per-subject aggregate returned by the user
// stats endpoint.
type SubjectStat struct {
	Subject      string  `json:"subject"`
	AverageScore float64 `json:"average_score"`
	QuizCount    int64   `json:"quiz_count"`
}
