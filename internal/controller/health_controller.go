package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HealthController struct{}

func NewHealthController() *HealthController {
	return &HealthController{}
}

// Root godoc
// @Summary Liveness message
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func (ctrl *HealthController) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "AI Study Buddy API is running!"})
}
