package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"bopLand/internal/api"
	"bopLand/internal/api/middleware"
	"bopLand/internal/domain"
	"bopLand/internal/metrics"
)

// handleDomainError обрабатывает domain ошибки и возвращает правильный HTTP response
func handleDomainError(c *gin.Context, err error) {
	var domainErr *domain.Error
	if errors.As(err, &domainErr) {
		metrics.DomainErrorsTotal.WithLabelValues(string(domainErr.Code)).Inc()

		c.JSON(domainErr.Status, api.ErrorResponse{
			Error: api.Error{
				Code:    string(domainErr.Code),
				Message: domainErr.Message,
			},
		})
		return
	}

	log.Error().
		Err(err).
		Str("request_id", middleware.RequestID(c)).
		Str("layer", "handler").
		Msg("unexpected error")

	// Fallback на internal error
	c.JSON(http.StatusInternalServerError, api.ErrorResponse{
		Error: api.Error{
			Code:    api.ErrCodeInternalError,
			Message: "internal server error",
		},
	})
}
