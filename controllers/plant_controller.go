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

type IPlantController interface {
	Search(ctx *gin.Context)
	FindByName(ctx *gin.Context)
	Create(ctx *gin.Context)
	Delete(ctx *gin.Context)
}

type PlantController struct {
	service services.IPlantService
}

func NewPlantController(service services.IPlantService) IPlantController {
	return &PlantController{service: service}
}

func (c *PlantController) Search(ctx *gin.Context) {
	var query dto.PlantSearchQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: constants.ErrInvalidInput})
		return
	}

	plants, err := c.service.Search(ctx.Request.Context(), query)
	if err != nil {
		log.Error().Err(err).Msg("Search plants error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: constants.ErrPlantSearch})
		return
	}

	ctx.JSON(http.StatusOK, plants)
}

func (c *PlantController) FindByName(ctx *gin.Context) {
	plant, err := c.service.FindByName(ctx.Request.Context(), ctx.Param("name"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			ctx.String(http.StatusNotFound, constants.ErrPlantMissing)
			return
		}
		log.Error().Err(err).Msg("Find plant error")
		ctx.String(http.StatusInternalServerError, constants.ErrPlantLookup)
		return
	}

	ctx.JSON(http.StatusOK, plant)
}

func (c *PlantController) Create(ctx *gin.Context) {
	var input dto.CreatePlantInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: constants.ErrInvalidInput})
		return
	}

	newPlant, err := c.service.Create(ctx.Request.Context(), input)
	if err != nil {
		log.Error().Err(err).Msg("Create plant error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: constants.ErrPlantCreate})
		return
	}

	ctx.JSON(http.StatusOK, dto.CreatedResponse{ID: newPlant.Code, Message: constants.MsgPlantCreated})
}

func (c *PlantController) Delete(ctx *gin.Context) {
	code, ok := parseID(ctx, "code")
	if !ok {
		return
	}

	if err := c.service.Delete(ctx.Request.Context(), code); err != nil {
		log.Error().Err(err).Uint("plant_code", code).Msg("Delete plant error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: constants.ErrPlantDelete})
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: constants.MsgPlantDeleted})
}
