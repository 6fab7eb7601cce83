package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"bopLand/internal/api/middleware"
	"bopLand/internal/domain"
)

type createTestRequest struct {
	BOPID        int64   `json:"bop_id" binding:"required"`
	Name         string  `json:"nome" binding:"required"`
	ValveIDs     []int64 `json:"valvulas_testadas"`
	PreventerIDs []int64 `json:"preventores_testados"`
}

// CreateTest godoc
// @Summary   Создание теста по оборудованию BOP
// @Tags      teste
// @Accept    json
// @Produce   json
// @Security  Bearer
// @Param     request body createTestRequest true "Тест"
// @Success   201 {object} api.Test
// @Failure   400 {object} api.ErrorResponse
// @Failure   409 {object} api.ErrorResponse
// @Router    /teste [post]
func (h *Handler) CreateTest(c *gin.Context) {
	var req createTestRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidRequest(c, err)
		return
	}

	log.Info().
		Str("request_id", middleware.RequestID(c)).
		Str("layer", "handler").
		Int64("bop_id", req.BOPID).
		Str("nome", req.Name).
		Msg("creating test")

	test, err := h.service.CreateTest(c.Request.Context(), &domain.CreateTestInput{
		BOPID:        req.BOPID,
		Name:         req.Name,
		ValveIDs:     req.ValveIDs,
		PreventerIDs: req.PreventerIDs,
	})
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, mapTestToAPI(test))
}

// ListTests godoc
// @Summary   Список тестов по фильтрам
// @Tags      teste
// @Produce   json
// @Security  Bearer
// @Param     status       query string false "CRIADO, AGENDADO, APROVADO или FALHO"
// @Param     bop_id       query int    false "ID BOP"
// @Param     aprovador_id query int    false "ID одобрившего пользователя"
// @Param     pagina       query int    false "Номер страницы"  default(1)
// @Param     por_pagina   query int    false "Размер страницы" default(3)
// @Success   200 {object} api.ListResponse[api.Test]
// @Failure   400 {object} api.ErrorResponse
// @Router    /teste [get]
func (h *Handler) ListTests(c *gin.Context) {
	var query struct {
		Status     string `form:"status"`
		BOPID      *int64 `form:"bop_id"`
		ApproverID *int64 `form:"aprovador_id"`
		pageQuery
	}

	if err := c.ShouldBindQuery(&query); err != nil {
		respondInvalidRequest(c, err)
		return
	}

	input := &domain.ListTestsInput{
		BOPID:       query.BOPID,
		ApproverID:  query.ApproverID,
		PageRequest: query.toDomain(),
	}

	if query.Status != "" {
		status, err := domain.ParseTestStatus(query.Status)
		if err != nil {
			handleDomainError(c, err)
			return
		}
		input.Status = &status
	}

	page, err := h.service.ListTests(c.Request.Context(), input)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, mapTestPageToAPI(page))
}

// GetTest godoc
// @Summary   Тест по id
// @Tags      teste
// @Produce   json
// @Security  Bearer
// @Param     teste_id path int true "ID теста"
// @Success   200 {object} api.Test
// @Failure   404 {object} api.ErrorResponse
// @Router    /teste/{teste_id} [get]
func (h *Handler) GetTest(c *gin.Context) {
	id, ok := pathID(c, "teste_id")
	if !ok {
		return
	}

	test, err := h.service.GetTest(c.Request.Context(), id)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, mapTestToAPI(test))
}

// ApproveTest godoc
// @Summary   Одобрение теста текущим пользователем
// @Tags      teste
// @Produce   json
// @Security  Bearer
// @Param     teste_id path int true "ID теста"
// @Success   200 {object} api.Test
// @Failure   404 {object} api.ErrorResponse
// @Router    /teste/{teste_id}/aprovar [post]
func (h *Handler) ApproveTest(c *gin.Context) {
	id, ok := pathID(c, "teste_id")
	if !ok {
		return
	}

	approverID, _ := middleware.UserID(c)

	log.Info().
		Str("request_id", middleware.RequestID(c)).
		Str("layer", "handler").
		Int64("teste_id", id).
		Int64("aprovador_id", approverID).
		Msg("approving test")

	test, err := h.service.ApproveTest(c.Request.Context(), &domain.ApproveTestInput{
		TestID:     id,
		ApproverID: approverID,
	})
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, mapTestToAPI(test))
}

// DeleteTest godoc
// @Summary   Удаление неодобренного теста
// @Tags      teste
// @Security  Bearer
// @Param     teste_id path int true "ID теста"
// @Success   204
// @Failure   404 {object} api.ErrorResponse
// @Failure   409 {object} api.ErrorResponse
// @Router    /teste/{teste_id} [delete]
func (h *Handler) DeleteTest(c *gin.Context) {
	id, ok := pathID(c, "teste_id")
	if !ok {
		return
	}

	if err := h.service.DeleteTest(c.Request.Context(), id); err != nil {
		handleDomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
