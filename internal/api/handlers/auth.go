package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"bopLand/internal/api"
	"bopLand/internal/api/middleware"
	"bopLand/internal/domain"
)

type registerRequest struct {
	Name     string `json:"nome" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"senha" binding:"required"`
}

// Register godoc
// @Summary  Регистрация пользователя
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    request body registerRequest true "Пользователь"
// @Success  201 {object} api.User
// @Failure  400 {object} api.ErrorResponse
// @Failure  409 {object} api.ErrorResponse
// @Router   /auth/register [post]
func (h *Handler) Register(c *gin.Context) {
	var req registerRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidRequest(c, err)
		return
	}

	user, err := h.service.Register(c.Request.Context(), &domain.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, mapUserToAPI(user))
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"senha" binding:"required"`
}

// Login godoc
// @Summary  Получение access token
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    request body loginRequest true "Учётные данные"
// @Success  200 {object} api.Token
// @Failure  401 {object} api.ErrorResponse
// @Router   /auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidRequest(c, err)
		return
	}

	result, err := h.service.Login(c.Request.Context(), &domain.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, api.Token{
		AccessToken: result.AccessToken,
		TokenType:   "bearer",
		ExpiresAt:   result.ExpiresAt.UTC().Format(time.RFC3339),
	})
}

// WhoAmI godoc
// @Summary   Текущий пользователь
// @Tags      auth
// @Produce   json
// @Security  Bearer
// @Success   200 {object} api.User
// @Failure   401 {object} api.ErrorResponse
// @Router    /auth/quemeusou [get]
func (h *Handler) WhoAmI(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	user, err := h.service.WhoAmI(c.Request.Context(), userID)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	log.Debug().
		Str("request_id", middleware.RequestID(c)).
		Str("layer", "handler").
		Int64("user_id", user.ID).
		Msg("resolved current user")

	c.JSON(http.StatusOK, mapUserToAPI(user))
}
