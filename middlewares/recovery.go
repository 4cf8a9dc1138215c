package middlewares

import (
	"net/http"
	"plantie/constants"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Recovery keeps a panicking handler from taking the server down and answers
// with the generic connection error.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(ctx *gin.Context, recovered any) {
		log.Error().
			Str("request_id", ctx.GetString(RequestIDKey)).
			Interface("panic", recovered).
			Bytes("stack", debug.Stack()).
			Msg("Recovered from panic")
		ctx.String(http.StatusInternalServerError, constants.ErrConnectionFailed)
		ctx.Abort()
	})
}
