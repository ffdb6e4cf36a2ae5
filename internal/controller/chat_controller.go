package controller

import (
	"net/http"

	"study_buddy_backend/internal/service"
	"study_buddy_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ChatController struct {
	ChatService *service.ChatService
}

func NewChatController(chatService *service.ChatService) *ChatController {
	return &ChatController{ChatService: chatService}
}

// ChatRequest 提问请求
type ChatRequest struct {
	Message string `json:"message" binding:"required" example:"How do I solve 2x + 3 = 7?"`
	UserID  string `json:"user_id" binding:"required"`
	Subject string `json:"subject" example:"Math"`
}

// Chat godoc
// @Summary Ask the study buddy a question
// @Description Sends the student's message to the tutoring model and returns its reply
// @Tags Tutoring
// @Accept json
// @Produce json
// @Param request body ChatRequest true "chat request"
// @Success 200 {object} service.ChatReply
// @Failure 500 {object} map[string]string
// @Router /api/chat [post]
func (ctrl *ChatController) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.InternalError(c, err)
		return
	}

	reply, err := ctrl.ChatService.Ask(req.Message, req.Subject)
	if err != nil {
		util.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, reply)
}
