package service

import (
	"encoding/json"
	"fmt"
	"hash/fnv"
	"regexp"
	"time"

	"study_buddy_backend/internal/model"
	"study_buddy_backend/internal/repository"
	"study_buddy_backend/internal/util"
)

const quizPromptTemplate = `Create a %s level quiz about %s in %s.
Generate exactly %d multiple choice questions.

Format your response as a valid JSON array with this structure:
[
    {
        "question": "Question text here?",
        "options": ["A) Option 1", "B) Option 2", "C) Option 3", "D) Option 4"],
        "correct_answer": "A",
        "explanation": "Brief explanation of why this is correct"
    }
]

Make questions practical and educational. Ensure JSON is valid.
`

// Greedy match from the first '[' to the last ']' across lines.
var quizArrayPattern = regexp.MustCompile(`(?s)\[.*\]`)

type QuizService struct {
	ai      TextGenerator
	history *repository.QuizRepository
}

func NewQuizService(ai TextGenerator, history *repository.QuizRepository) *QuizService {
	return &QuizService{ai: ai, history: history}
}

type GeneratedQuiz struct {
	QuizID     string               `json:"quiz_id"`
	Questions  []model.QuizQuestion `json:"questions"`
	Subject    string               `json:"subject"`
	Topic      string               `json:"topic"`
	Difficulty string               `json:"difficulty"`
}

type SubmissionResult struct {
	Score          int    `json:"score"`
	TotalQuestions int    `json:"total_questions"`
	Percentage     int    `json:"percentage"`
	Message        string `json:"message"`
	XPEarned       int    `json:"xp_earned"`
}

// Generate asks the model for a quiz and parses its output. Gateway failures
// propagate; malformed model output does not (see parseQuestions). Neither
// the questions nor the correct answers are persisted, so a later submission
// cannot be graded against them.
func (s *QuizService) Generate(subject, topic, difficulty string, numQuestions int, userID string) (*GeneratedQuiz, error) {
	prompt := fmt.Sprintf(quizPromptTemplate, difficulty, topic, subject, numQuestions)

	text, err := s.ai.GenerateContent(prompt)
	if err != nil {
		return nil, err
	}

	return &GeneratedQuiz{
		QuizID:     util.DeriveID(userID),
		Questions:  parseQuestions(text, topic),
		Subject:    subject,
		Topic:      topic,
		Difficulty: difficulty,
	}, nil
}

// parseQuestions extracts the first bracketed JSON array from the model
// output. Missing or unparseable arrays degrade to a single placeholder
// question instead of failing the request.
func parseQuestions(text, topic string) []model.QuizQuestion {
	if match := quizArrayPattern.FindString(text); match != "" {
		var questions []model.QuizQuestion
		if err := json.Unmarshal([]byte(match), &questions); err == nil {
			return questions
		}
	}
	return []model.QuizQuestion{fallbackQuestion(topic)}
}

func fallbackQuestion(topic string) model.QuizQuestion {
	return model.QuizQuestion{
		Question:      fmt.Sprintf("Sample question about %s?", topic),
		Options:       []string{"A) Option 1", "B) Option 2", "C) Option 3", "D) Option 4"},
		CorrectAnswer: "A",
		Explanation:   "This is a sample explanation.",
	}
}

// Submit records a quiz attempt. Scoring is a placeholder: the score is
// derived from the user id, not from the submitted answers, which are only
// counted. The earned xp is returned but never credited to the user row.
func (s *QuizService) Submit(userID, quizID string, answers []string, subject string) (*SubmissionResult, error) {
	score := placeholderScore(userID)

	record := &model.QuizHistory{
		ID:             quizID,
		UserID:         userID,
		Subject:        subject,
		Score:          score,
		TotalQuestions: len(answers),
		Timestamp:      time.Now().Format(time.RFC3339),
	}
	if err := s.history.CreateHistory(record); err != nil {
		return nil, err
	}

	message := "Keep practicing!"
	if score >= 80 {
		message = "Great job!"
	}

	return &SubmissionResult{
		Score:          score,
		TotalQuestions: len(answers),
		Percentage:     score, // numerically the score, not a real percentage
		Message:        message,
		XPEarned:       score / 10,
	}, nil
}

// placeholderScore folds a non-cryptographic hash of the user id into
// [60, 99]. Deterministic per user and unrelated to answer correctness.
func placeholderScore(userID string) int {
	h := fnv.New32a()
	h.Write([]byte(userID))
	return 60 + int(h.Sum32()%40)
}
