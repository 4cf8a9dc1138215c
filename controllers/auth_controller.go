package controllers

import (
	"errors"
	"net/http"
	"plantie/constants"
	"plantie/dto"
	"plantie/services"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type IAuthController interface {
	Login(ctx *gin.Context)
	SignIn(ctx *gin.Context)
}

type AuthController struct {
	service services.IAuthService
}

func NewAuthController(service services.IAuthService) IAuthController {
	return &AuthController{service: service}
}

// Login checks an id+password pair sent in the query string.
func (c *AuthController) Login(ctx *gin.Context) {
	userID, err := strconv.ParseUint(ctx.Query("ID_korisnika"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: constants.ErrLoginInvalidID})
		return
	}

	user, err := c.service.Login(ctx.Request.Context(), uint(userID), ctx.Query("Lozinka_korisnika"))
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: constants.ErrLoginInvalidID})
			return
		}
		log.Error().Err(err).Msg("Login error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: constants.ErrLogin})
		return
	}

	ctx.JSON(http.StatusOK, dto.LoginResponse{
		Success: true,
		Message: constants.MsgLoginSuccessPrefix + user.FirstName + " " + user.LastName,
	})
}

// SignIn checks an email+password pair posted as JSON. Responses other than
// success are plain text.
func (c *AuthController) SignIn(ctx *gin.Context) {
	var input dto.SignInInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.String(http.StatusBadRequest, constants.ErrSignInMissingFields)
		return
	}

	user, err := c.service.SignIn(ctx.Request.Context(), input.Email, input.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrValidation):
			ctx.String(http.StatusBadRequest, constants.ErrSignInMissingFields)
		case errors.Is(err, services.ErrInvalidCredentials):
			ctx.String(http.StatusUnauthorized, constants.ErrSignInInvalid)
		default:
			log.Error().Err(err).Msg("Sign in error")
			ctx.String(http.StatusInternalServerError, constants.ErrSignInDatabase)
		}
		return
	}

	ctx.JSON(http.StatusOK, dto.SignInResponse{Message: constants.MsgSignInSuccess, User: user})
}
