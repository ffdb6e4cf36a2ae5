package app

import (
	"study_buddy_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	router.GET("/", c.health.Root)
	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	{
		api.POST("/chat", c.chat.Chat)
		api.POST("/generate-quiz", c.quiz.Generate)
		api.POST("/submit-quiz", c.quiz.Submit)
		api.POST("/create-user", c.user.Create)
		api.GET("/user-stats/:user_id", c.user.Stats)
	}
}
