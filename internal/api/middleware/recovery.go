package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"bopLand/internal/api"
)

func RecoveryMiddleware() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		err, ok := recovered.(error)
		if !ok {
			err = fmt.Errorf("%v", recovered)
		}

		log.Error().
			Err(err).
			Str("request_id", RequestID(c)).
			Str("layer", "middleware").
			Msg("panic recovered in HTTP request")

		c.AbortWithStatusJSON(http.StatusInternalServerError, api.ErrorResponse{
			Error: api.Error{
				Code:    api.ErrCodeInternalError,
				Message: "internal server error",
			},
		})
	})
}
