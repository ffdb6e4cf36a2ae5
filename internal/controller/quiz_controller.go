package controller

import (
	"net/http"

	"study_buddy_backend/internal/service"
	"study_buddy_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	QuizService *service.QuizService
}

func NewQuizController(quizService *service.QuizService) *QuizController {
	return &QuizController{QuizService: quizService}
}

type GenerateQuizRequest struct {
	Subject      string `json:"subject" binding:"required" example:"Math"`
	Topic        string `json:"topic" binding:"required" example:"fractions"`
	Difficulty   string `json:"difficulty" binding:"required" example:"easy"`
	NumQuestions int    `json:"num_questions" binding:"required" example:"5"`
	UserID       string `json:"user_id" binding:"required"`
}

type SubmitQuizRequest struct {
	UserID  string   `json:"user_id" binding:"required"`
	QuizID  string   `json:"quiz_id" binding:"required"`
	Answers []string `json:"answers" binding:"required"`
	Subject string   `json:"subject" binding:"required"`
}

// Generate godoc
// @Summary Generate a multiple-choice quiz
// @Description Asks the model for N questions; falls back to a placeholder question when the model output cannot be parsed
// @Tags Quiz
// @Accept json
// @Produce json
// @Param request body GenerateQuizRequest true "quiz parameters"
// @Success 200 {object} service.GeneratedQuiz
// @Failure 500 {object} map[string]string
// @Router /api/generate-quiz [post]
func (ctrl *QuizController) Generate(c *gin.Context) {
	var req GenerateQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.InternalError(c, err)
		return
	}

	quiz, err := ctrl.QuizService.Generate(req.Subject, req.Topic, req.Difficulty, req.NumQuestions, req.UserID)
	if err != nil {
		util.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, quiz)
}

// Submit godoc
// @Summary Submit quiz answers
// @Description Records the attempt and returns the placeholder score, message and xp
// @Tags Quiz
// @Accept json
// @Produce json
// @Param request body SubmitQuizRequest true "submitted answers"
// @Success 200 {object} service.SubmissionResult
// @Failure 500 {object} map[string]string
// @Router /api/submit-quiz [post]
func (ctrl *QuizController) Submit(c *gin.Context) {
	var req SubmitQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.InternalError(c, err)
		return
	}

	result, err := ctrl.QuizService.Submit(req.UserID, req.QuizID, req.Answers, req.Subject)
	if err != nil {
		util.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
