package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"bopLand/internal/api"
	"bopLand/internal/api/middleware"
	"bopLand/internal/auth"
	"bopLand/internal/domain"
)

const (
	AuthPathRoute = "/auth"
	RegisterRoute = "/register"
	LoginRoute    = "/login"
	WhoAmIRoute   = "/quemeusou"

	BOPPathRoute     = "/bop"
	BOPByIDRoute     = "/:bop_id"
	BOPForecastRoute = "/:bop_id/previsao"

	ValvePathRoute     = "/valvula"
	PreventerPathRoute = "/preventor"
	BySondaRoute       = "/sonda"

	TestPathRoute     = "/teste"
	TestByIDRoute     = "/:teste_id"
	ApproveTestRoute  = "/:teste_id/aprovar"
	ForecastPathRoute = "/api/previsao"

	MetricsRoute = "/metrics"
	SwaggerRoute = "/swagger/*any"
	HealthRoute  = "/health"
)

type Handler struct {
	service        domain.BOPService
	tokens         *auth.TokenManager
	allowedOrigins []string
}

func NewHandler(service domain.BOPService, tokens *auth.TokenManager, allowedOrigins []string) *Handler {
	return &Handler{
		service:        service,
		tokens:         tokens,
		allowedOrigins: allowedOrigins,
	}
}

func (h *Handler) InitRoutes() *gin.Engine {
	r := gin.New()

	r.Use(
		middleware.LoggerMiddleware(),
		middleware.RecoveryMiddleware(),
		middleware.MetricsMiddleware(),
		middleware.CORSMiddleware(h.allowedOrigins),
		middleware.AuthMiddleware(h.tokens),
	)

	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/swagger/index.html")
	})
	r.GET(SwaggerRoute, ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET(MetricsRoute, gin.WrapH(promhttp.Handler()))
	r.GET(HealthRoute, h.Health)

	authGroup := r.Group(AuthPathRoute)
	{
		authGroup.POST(RegisterRoute, h.Register)
		authGroup.POST(LoginRoute, h.Login)
		authGroup.GET(WhoAmIRoute, middleware.RequireUser(), h.WhoAmI)
	}

	bopGroup := r.Group(BOPPathRoute, middleware.RequireUser())
	{
		bopGroup.POST("", h.CreateBOP)
		bopGroup.GET("", h.ListBOPs)
		bopGroup.GET(BOPByIDRoute, h.GetBOP)
		bopGroup.DELETE(BOPByIDRoute, h.DeleteBOP)
		bopGroup.GET(BOPForecastRoute, h.GetBOPForecast)
	}

	valveGroup := r.Group(ValvePathRoute, middleware.RequireUser())
	{
		valveGroup.GET("", h.ListValveAcronyms)
		valveGroup.GET(BySondaRoute, h.ListValvesBySonda)
	}

	preventerGroup := r.Group(PreventerPathRoute, middleware.RequireUser())
	{
		preventerGroup.GET("", h.ListPreventerAcronyms)
		preventerGroup.GET(BySondaRoute, h.ListPreventersBySonda)
	}

	testGroup := r.Group(TestPathRoute, middleware.RequireUser())
	{
		testGroup.POST("", h.CreateTest)
		testGroup.GET("", h.ListTests)
		testGroup.GET(TestByIDRoute, h.GetTest)
		testGroup.DELETE(TestByIDRoute, h.DeleteTest)
		testGroup.POST(ApproveTestRoute, h.ApproveTest)
	}

	r.GET(ForecastPathRoute, h.GetForecast)

	return r
}

// Health godoc
// @Summary  Проверка доступности
// @Tags     health
// @Produce  json
// @Success  200 {object} map[string]string
// @Router   /health [get]
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// respondInvalidRequest отвечает 400 INVALID_REQUEST на ошибку разбора запроса
func respondInvalidRequest(c *gin.Context, err error) {
	log.Error().
		Err(err).
		Str("request_id", middleware.RequestID(c)).
		Str("layer", "handler").
		Msg("failed to parse request")

	c.JSON(http.StatusBadRequest, api.ErrorResponse{
		Error: api.Error{
			Code:    api.ErrCodeInvalidRequest,
			Message: "Failed to parse request: " + err.Error(),
		},
	})
}

// pathID читает положительный int64 из параметра пути
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{
			Error: api.Error{
				Code:    api.ErrCodeInvalidRequest,
				Message: name + " must be a positive integer",
			},
		})
		return 0, false
	}
	return id, true
}

// pageQuery - общие параметры пагинации
type pageQuery struct {
	Page     *int `form:"pagina"`
	PageSize *int `form:"por_pagina"`
}

func (q pageQuery) toDomain() domain.PageRequest {
	page := domain.PageRequest{Page: domain.DefaultPage, PageSize: domain.DefaultPageSize}
	if q.Page != nil {
		page.Page = *q.Page
	}
	if q.PageSize != nil {
		page.PageSize = *q.PageSize
	}
	return page
}
