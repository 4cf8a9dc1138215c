package controllers

import (
	"net/http"
	"plantie/constants"
	"plantie/dto"
	"plantie/services"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type IUserController interface {
	FindAll(ctx *gin.Context)
	Create(ctx *gin.Context)
	Delete(ctx *gin.Context)
}

type UserController struct {
	service services.IUserService
}

func NewUserController(service services.IUserService) IUserController {
	return &UserController{service: service}
}

func (c *UserController) FindAll(ctx *gin.Context) {
	users, err := c.service.FindAll(ctx.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("List users error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: constants.ErrUserList})
		return
	}

	ctx.JSON(http.StatusOK, users)
}

func (c *UserController) Create(ctx *gin.Context) {
	var input dto.CreateUserInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: constants.ErrInvalidInput})
		return
	}

	newUser, err := c.service.Create(ctx.Request.Context(), input)
	if err != nil {
		log.Error().Err(err).Msg("Create user error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: constants.ErrUserCreate})
		return
	}

	ctx.JSON(http.StatusOK, dto.CreatedResponse{ID: newUser.ID, Message: constants.MsgUserCreated})
}

func (c *UserController) Delete(ctx *gin.Context) {
	userID, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	if err := c.service.Delete(ctx.Request.Context(), userID); err != nil {
		log.Error().Err(err).Uint("user_id", userID).Msg("Delete user error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: constants.ErrUserDelete})
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: constants.MsgUserDeleted})
}
