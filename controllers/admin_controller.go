package controllers

import (
	"errors"
	"net/http"
	"plantie/constants"
	"plantie/dto"
	"plantie/services"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type IAdminController interface {
	Exists(ctx *gin.Context)
	FindAllRequests(ctx *gin.Context)
	CreateRequest(ctx *gin.Context)
	DeleteRequest(ctx *gin.Context)
}

type AdminController struct {
	service services.IAdminService
}

func NewAdminController(service services.IAdminService) IAdminController {
	return &AdminController{service: service}
}

// Exists answers with a one-element array, the shape the admin login page
// reads.
func (c *AdminController) Exists(ctx *gin.Context) {
	exists, err := c.service.Exists(ctx.Request.Context(), ctx.Query("adminId"))
	if err != nil {
		log.Error().Err(err).Msg("Admin exists error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: constants.ErrInternalServer})
		return
	}

	row := dto.AdminExistsRow{}
	if exists {
		row.IDExists = 1
	}
	ctx.JSON(http.StatusOK, []dto.AdminExistsRow{row})
}

func (c *AdminController) FindAllRequests(ctx *gin.Context) {
	requests, err := c.service.FindAllRequests(ctx.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("List admin requests error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: constants.ErrInternalServer})
		return
	}

	ctx.JSON(http.StatusOK, requests)
}

func (c *AdminController) CreateRequest(ctx *gin.Context) {
	var input dto.CreateAdminRequestInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: constants.ErrRequestEmpty})
		return
	}

	newRequest, err := c.service.CreateRequest(ctx.Request.Context(), input.Message)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: constants.ErrRequestEmpty})
			return
		}
		log.Error().Err(err).Msg("Create admin request error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: constants.ErrRequestCreate})
		return
	}

	ctx.JSON(http.StatusOK, dto.CreateAdminRequestResponse{InsertID: newRequest.ID, Message: constants.MsgRequestCreated})
}

func (c *AdminController) DeleteRequest(ctx *gin.Context) {
	requestID, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	if err := c.service.DeleteRequest(ctx.Request.Context(), requestID); err != nil {
		log.Error().Err(err).Uint("request_id", requestID).Msg("Delete admin request error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: constants.ErrRequestDelete})
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: constants.MsgRequestDeleted})
}
