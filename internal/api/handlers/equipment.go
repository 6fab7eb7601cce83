package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListValveAcronyms godoc
// @Summary   Уникальные акронимы клапанов
// @Tags      equipment
// @Produce   json
// @Security  Bearer
// @Success   200 {array} string
// @Router    /valvula [get]
func (h *Handler) ListValveAcronyms(c *gin.Context) {
	acronyms, err := h.service.ListValveAcronyms(c.Request.Context())
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, acronyms)
}

// ListPreventerAcronyms godoc
// @Summary   Уникальные акронимы превенторов
// @Tags      equipment
// @Produce   json
// @Security  Bearer
// @Success   200 {array} string
// @Router    /preventor [get]
func (h *Handler) ListPreventerAcronyms(c *gin.Context) {
	acronyms, err := h.service.ListPreventerAcronyms(c.Request.Context())
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, acronyms)
}

// ListValvesBySonda godoc
// @Summary   Клапаны сонды
// @Tags      equipment
// @Produce   json
// @Security  Bearer
// @Param     sonda query string true "Имя сонды"
// @Success   200 {array} api.EquipmentItem
// @Failure   404 {object} api.ErrorResponse
// @Router    /valvula/sonda [get]
func (h *Handler) ListValvesBySonda(c *gin.Context) {
	items, err := h.service.ListValvesBySonda(c.Request.Context(), c.Query("sonda"))
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, mapEquipmentToAPI(items))
}

// ListPreventersBySonda godoc
// @Summary   Превенторы сонды
// @Tags      equipment
// @Produce   json
// @Security  Bearer
// @Param     sonda query string true "Имя сонды"
// @Success   200 {array} api.EquipmentItem
// @Failure   404 {object} api.ErrorResponse
// @Router    /preventor/sonda [get]
func (h *Handler) ListPreventersBySonda(c *gin.Context) {
	items, err := h.service.ListPreventersBySonda(c.Request.Context(), c.Query("sonda"))
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, mapEquipmentToAPI(items))
}
