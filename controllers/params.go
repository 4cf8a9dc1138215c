package controllers

import (
	"net/http"
	"plantie/constants"
	"plantie/dto"
	"strconv"

	"github.com/gin-gonic/gin"
)

// parseID reads an unsigned integer path parameter. On failure it writes the
// 400 response itself and returns false.
func parseID(ctx *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: constants.ErrInvalidID})
		return 0, false
	}
	return uint(id), true
}
