package controller

import (
	"errors"
	"net/http"

	"study_buddy_backend/internal/service"
	"study_buddy_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	UserService *service.UserService
}

func NewUserController(userService *service.UserService) *UserController {
	return &UserController{UserService: userService}
}

type CreateUserRequest struct {
	Name     string   `json:"name" binding:"required" example:"Ana"`
	Subjects []string `json:"subjects" binding:"required" example:"Math,Physics"`
	// GradeLevel is accepted for forward compatibility but not stored.
	GradeLevel string `json:"grade_level" example:"9"`
}

// Create godoc
// @Summary Create a user
// @Tags Users
// @Accept json
// @Produce json
// @Param request body CreateUserRequest true "user to create"
// @Success 200 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/create-user [post]
func (ctrl *UserController) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.InternalError(c, err)
		return
	}

	userID, err := ctrl.UserService.Create(req.Name, req.Subjects)
	if err != nil {
		util.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user_id": userID,
		"message": "User created successfully",
	})
}

// Stats godoc
// @Summary Get user statistics
// @Description Returns the user row plus per-subject quiz averages
// @Tags Users
// @Produce json
// @Param user_id path string true "user id"
// @Success 200 {object} service.UserStats
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/user-stats/{user_id} [get]
func (ctrl *UserController) Stats(c *gin.Context) {
	stats, err := ctrl.UserService.Stats(c.Param("user_id"))
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(c, "User not found")
			return
		}
		util.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
