package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/silvaronna/marketplace-api/models"
	"github.com/silvaronna/marketplace-api/services"
)

type UserController struct {
	service *services.UserService
}

func NewUserController(service *services.UserService) *UserController {
	return &UserController{service: service}
}

func (uc *UserController) GetAllUsers(ctx *gin.Context) {
	users, err := uc.service.GetAllUsers()
	if err != nil {
		sendError(ctx, err, "an error occurred while fetching users")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"success": true,
		"data":    users,
		"total":   len(users),
	})
}

func (uc *UserController) AddUser(ctx *gin.Context) {
	var input models.CreateUserInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendValidationError(ctx, "invalid request body")
		return
	}

	user, err := uc.service.AddUser(input)
	if err != nil {
		sendError(ctx, err, "an error occurred while creating the user")
		return
	}

	sendSuccess(ctx, http.StatusCreated, "User created successfully", user)
}

func (uc *UserController) UpdateUser(ctx *gin.Context) {
	var input models.UpdateUserInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendValidationError(ctx, "invalid request body")
		return
	}

	user, err := uc.service.UpdateUser(ctx.Param("username"), input)
	if err != nil {
		sendError(ctx, err, "an error occurred while updating the user")
		return
	}

	sendSuccess(ctx, http.StatusOK, "User updated successfully", user)
}

func (uc *UserController) DeleteUser(ctx *gin.Context) {
	user, err := uc.service.DeleteUser(ctx.Param("username"))
	if err != nil {
		sendError(ctx, err, "an error occurred while deleting the user")
		return
	}

	sendSuccess(ctx, http.StatusOK, "User deleted successfully", user)
}
