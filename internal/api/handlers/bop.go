package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"bopLand/internal/api/middleware"
	"bopLand/internal/domain"
)

type createBOPRequest struct {
	Sonda      string   `json:"sonda" binding:"required"`
	Latitude   *float64 `json:"latitude"`
	Longitude  *float64 `json:"longitude"`
	Valves     []string `json:"valvulas"`
	Preventers []string `json:"preventores"`
}

// CreateBOP godoc
// @Summary   Создание BOP с клапанами и превенторами
// @Tags      bop
// @Accept    json
// @Produce   json
// @Security  Bearer
// @Param     request body createBOPRequest true "BOP"
// @Success   201 {object} api.BOP
// @Failure   400 {object} api.ErrorResponse
// @Failure   409 {object} api.ErrorResponse
// @Router    /bop [post]
func (h *Handler) CreateBOP(c *gin.Context) {
	var req createBOPRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidRequest(c, err)
		return
	}

	log.Info().
		Str("request_id", middleware.RequestID(c)).
		Str("layer", "handler").
		Str("sonda", req.Sonda).
		Int("valvulas", len(req.Valves)).
		Int("preventores", len(req.Preventers)).
		Msg("creating bop")

	bop, err := h.service.CreateBOP(c.Request.Context(), &domain.CreateBOPInput{
		Sonda:      req.Sonda,
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,
		Valves:     req.Valves,
		Preventers: req.Preventers,
	})
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, mapBOPToAPI(bop))
}

// ListBOPs godoc
// @Summary   Поиск BOP по подстроке sonda
// @Tags      bop
// @Produce   json
// @Security  Bearer
// @Param     sonda      query string false "Подстрока имени сонды"
// @Param     pagina     query int    false "Номер страницы"  default(1)
// @Param     por_pagina query int    false "Размер страницы" default(3)
// @Success   200 {object} api.ListResponse[api.BOP]
// @Failure   400 {object} api.ErrorResponse
// @Router    /bop [get]
func (h *Handler) ListBOPs(c *gin.Context) {
	var query struct {
		Sonda string `form:"sonda"`
		pageQuery
	}

	if err := c.ShouldBindQuery(&query); err != nil {
		respondInvalidRequest(c, err)
		return
	}

	page, err := h.service.ListBOPs(c.Request.Context(), &domain.ListBOPsInput{
		Sonda:       query.Sonda,
		PageRequest: query.toDomain(),
	})
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, mapBOPPageToAPI(page))
}

// GetBOP godoc
// @Summary   BOP по id
// @Tags      bop
// @Produce   json
// @Security  Bearer
// @Param     bop_id path int true "ID BOP"
// @Success   200 {object} api.BOP
// @Failure   404 {object} api.ErrorResponse
// @Router    /bop/{bop_id} [get]
func (h *Handler) GetBOP(c *gin.Context) {
	id, ok := pathID(c, "bop_id")
	if !ok {
		return
	}

	bop, err := h.service.GetBOP(c.Request.Context(), id)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, mapBOPToAPI(bop))
}

// DeleteBOP godoc
// @Summary   Удаление BOP без тестов
// @Tags      bop
// @Security  Bearer
// @Param     bop_id path int true "ID BOP"
// @Success   204
// @Failure   404 {object} api.ErrorResponse
// @Failure   409 {object} api.ErrorResponse
// @Router    /bop/{bop_id} [delete]
func (h *Handler) DeleteBOP(c *gin.Context) {
	id, ok := pathID(c, "bop_id")
	if !ok {
		return
	}

	if err := h.service.DeleteBOP(c.Request.Context(), id); err != nil {
		handleDomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetBOPForecast godoc
// @Summary   Прогноз погоды по координатам сонды
// @Tags      bop
// @Produce   json
// @Security  Bearer
// @Param     bop_id path int true "ID BOP"
// @Success   200 {object} api.Forecast
// @Failure   400 {object} api.ErrorResponse
// @Failure   502 {object} api.ErrorResponse
// @Router    /bop/{bop_id}/previsao [get]
func (h *Handler) GetBOPForecast(c *gin.Context) {
	id, ok := pathID(c, "bop_id")
	if !ok {
		return
	}

	forecast, err := h.service.ForecastByBOP(c.Request.Context(), id)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, mapForecastToAPI(forecast))
}
