package controllers

import (
	"net/http"

	"newshub/internal/apperrors"
	"newshub/internal/repository"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	repo repository.UserRepository
}

func NewUserController(repo repository.UserRepository) *UserController {
	return &UserController{repo: repo}
}

// GetUsers godoc
// @Summary List users
// @Description Retrieve all users
// @Tags user
// @Produce json
// @Success 200 {object} map[string]interface{} "Users retrieved successfully"
// @Router /api/users [get]
func (uc *UserController) GetUsers(c *gin.Context) {
	users, err := uc.repo.FindAll()
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users})
}

// GetUserByUsername godoc
// @Summary Get a user by username
// @Description Retrieve a single user
// @Tags user
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} models.User "User retrieved successfully"
// @Failure 404 {object} map[string]interface{} "User not found"
// @Router /api/users/{username} [get]
func (uc *UserController) GetUserByUsername(c *gin.Context) {
	user, err := uc.repo.FindByUsername(c.Param("username"))
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}
