package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetForecast godoc
// @Summary  Прогноз погоды CPTEC на 7 дней
// @Tags     previsao
// @Produce  json
// @Param    latitude  query number true "Широта"
// @Param    longitude query number true "Долгота"
// @Success  200 {object} api.Forecast
// @Failure  400 {object} api.ErrorResponse
// @Failure  502 {object} api.ErrorResponse
// @Router   /api/previsao [get]
func (h *Handler) GetForecast(c *gin.Context) {
	var query struct {
		Latitude  *float64 `form:"latitude" binding:"required"`
		Longitude *float64 `form:"longitude" binding:"required"`
	}

	if err := c.ShouldBindQuery(&query); err != nil {
		respondInvalidRequest(c, err)
		return
	}

	forecast, err := h.service.ForecastByCoordinates(c.Request.Context(), *query.Latitude, *query.Longitude)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, mapForecastToAPI(forecast))
}
