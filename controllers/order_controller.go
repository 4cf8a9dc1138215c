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

type IOrderController interface {
	FindAll(ctx *gin.Context)
	FindByUser(ctx *gin.Context)
	Create(ctx *gin.Context)
	Delete(ctx *gin.Context)
}

type OrderController struct {
	service services.IOrderService
}

func NewOrderController(service services.IOrderService) IOrderController {
	return &OrderController{service: service}
}

func (c *OrderController) FindAll(ctx *gin.Context) {
	orders, err := c.service.FindAll(ctx.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("List orders error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: constants.ErrOrderList})
		return
	}

	ctx.JSON(http.StatusOK, orders)
}

func (c *OrderController) FindByUser(ctx *gin.Context) {
	userID, ok := parseID(ctx, "userId")
	if !ok {
		return
	}

	orders, err := c.service.FindByUser(ctx.Request.Context(), userID)
	if err != nil {
		log.Error().Err(err).Uint("user_id", userID).Msg("List user orders error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: constants.ErrInternalServer})
		return
	}

	ctx.JSON(http.StatusOK, orders)
}

func (c *OrderController) Create(ctx *gin.Context) {
	var input dto.CreateOrderInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: constants.ErrInvalidInput})
		return
	}

	newOrder, err := c.service.Create(ctx.Request.Context(), input)
	if err != nil {
		log.Error().Err(err).Msg("Create order error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: constants.ErrOrderCreate})
		return
	}

	ctx.JSON(http.StatusCreated, dto.CreateOrderResponse{Message: constants.MsgOrderCreated, OrderID: newOrder.ID})
}

func (c *OrderController) Delete(ctx *gin.Context) {
	orderID, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	err := c.service.Delete(ctx.Request.Context(), orderID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, dto.MessageResponse{Message: constants.ErrOrderMissing})
			return
		}
		log.Error().Err(err).Uint("order_id", orderID).Msg("Delete order error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: constants.ErrOrderDelete})
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: constants.MsgOrderDeleted})
}
