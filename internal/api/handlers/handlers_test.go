package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"bopLand/internal/api/handlers"
	"bopLand/internal/auth"
	"bopLand/internal/domain"
	"bopLand/internal/mocks"
)

const testSecret = "handler-secret"

type fixture struct {
	service *mocks.BOPService
	router  *gin.Engine
	token   string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokens := auth.NewTokenManager(testSecret, time.Hour)
	token, _, err := tokens.Issue(1, "admin@admin.com")
	require.NoError(t, err)

	svc := mocks.NewBOPService(t)
	h := handlers.NewHandler(svc, tokens, []string{"*"})

	return &fixture{service: svc, router: h.InitRoutes(), token: token}
}

func (f *fixture) do(method, path string, body any, authorized bool) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if authorized {
		req.Header.Set("Authorization", "Bearer "+f.token)
	}

	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestCreateBOP_Created(t *testing.T) {
	// Arrange
	f := newFixture(t)
	f.service.On("CreateBOP", mock.Anything, &domain.CreateBOPInput{
		Sonda:      "NSXX",
		Valves:     []string{"LICHOKE"},
		Preventers: []string{"LBSR"},
	}).Return(&domain.BOP{
		ID:         1,
		Sonda:      "NSXX",
		Valves:     []domain.Valve{{ID: 1, Acronym: "LICHOKE", BOPID: 1}},
		Preventers: []domain.Preventer{{ID: 1, Acronym: "LBSR", BOPID: 1}},
	}, nil)

	// Act
	w := f.do(http.MethodPost, "/bop", map[string]any{
		"sonda":       "NSXX",
		"valvulas":    []string{"LICHOKE"},
		"preventores": []string{"LBSR"},
	}, true)

	// Assert
	require.Equal(t, http.StatusCreated, w.Code)
	body := decode(t, w)
	assert.Equal(t, "NSXX", body["sonda"])
	valves := body["valvulas"].([]any)
	require.Len(t, valves, 1)
	assert.Equal(t, "LICHOKE", valves[0].(map[string]any)["acronimo"])
	assert.Nil(t, valves[0].(map[string]any)["teste_id"])
}

func TestCreateBOP_RequiresToken(t *testing.T) {
	// Arrange
	f := newFixture(t)

	// Act
	w := f.do(http.MethodPost, "/bop", map[string]any{"sonda": "NSXX"}, false)

	// Assert
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	f.service.AssertNotCalled(t, "CreateBOP", mock.Anything, mock.Anything)
}

func TestCreateBOP_MissingSonda(t *testing.T) {
	// Arrange
	f := newFixture(t)

	// Act
	w := f.do(http.MethodPost, "/bop", map[string]any{"valvulas": []string{"LICHOKE"}}, true)

	// Assert
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_REQUEST", decode(t, w)["error"].(map[string]any)["code"])
}

func TestCreateBOP_Conflict(t *testing.T) {
	// Arrange
	f := newFixture(t)
	f.service.On("CreateBOP", mock.Anything, mock.Anything).Return(nil, domain.ErrBOPExists)

	// Act
	w := f.do(http.MethodPost, "/bop", map[string]any{"sonda": "NSXX"}, true)

	// Assert
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "BOP_EXISTS", decode(t, w)["error"].(map[string]any)["code"])
}

func TestListBOPs_DefaultsAndPagination(t *testing.T) {
	// Arrange
	f := newFixture(t)
	f.service.On("ListBOPs", mock.Anything, &domain.ListBOPsInput{
		Sonda:       "ns",
		PageRequest: domain.PageRequest{Page: 1, PageSize: 3},
	}).Return(&domain.Page[domain.BOP]{
		Items: []domain.BOP{{ID: 1, Sonda: "NSXX"}},
		Pagination: domain.Pagination{
			TotalRecords: 4, TotalPages: 2, CurrentPage: 1, HasNext: true,
		},
	}, nil)

	// Act
	w := f.do(http.MethodGet, "/bop?sonda=ns", nil, true)

	// Assert
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Len(t, body["data"], 1)
	pagination := body["pagination"].(map[string]any)
	assert.EqualValues(t, 4, pagination["total_registros"])
	assert.EqualValues(t, 2, pagination["total_paginas"])
	assert.Equal(t, true, pagination["tem_proximo"])
	assert.Equal(t, false, pagination["tem_anterior"])
}

func TestGetBOP_InvalidID(t *testing.T) {
	// Arrange
	f := newFixture(t)

	// Act
	w := f.do(http.MethodGet, "/bop/abc", nil, true)

	// Assert
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteBOP_ReferencedByTests(t *testing.T) {
	// Arrange
	f := newFixture(t)
	f.service.On("DeleteBOP", mock.Anything, int64(1)).Return(domain.ErrBOPHasTests)

	// Act
	w := f.do(http.MethodDelete, "/bop/1", nil, true)

	// Assert
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "REFERENTIAL_INTEGRITY", decode(t, w)["error"].(map[string]any)["code"])
}

func TestListTests_InvalidStatus(t *testing.T) {
	// Arrange
	f := newFixture(t)

	// Act
	w := f.do(http.MethodGet, "/teste?status=PENDENTE", nil, true)

	// Assert
	assert.Equal(t, http.StatusBadRequest, w.Code)
	f.service.AssertNotCalled(t, "ListTests", mock.Anything, mock.Anything)
}

func TestListTests_PassesFilters(t *testing.T) {
	// Arrange
	f := newFixture(t)
	approved := domain.TestStatusApproved
	bopID := int64(2)
	f.service.On("ListTests", mock.Anything, &domain.ListTestsInput{
		Status:      &approved,
		BOPID:       &bopID,
		PageRequest: domain.PageRequest{Page: 2, PageSize: 5},
	}).Return(&domain.Page[domain.Test]{Items: []domain.Test{}}, nil)

	// Act
	w := f.do(http.MethodGet, "/teste?status=APROVADO&bop_id=2&pagina=2&por_pagina=5", nil, true)

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestApproveTest_UsesCaller(t *testing.T) {
	// Arrange
	f := newFixture(t)
	approvedAt := time.Date(2025, 3, 4, 5, 6, 7, 0, time.UTC)
	approver := int64(1)
	f.service.On("ApproveTest", mock.Anything, &domain.ApproveTestInput{TestID: 9, ApproverID: 1}).
		Return(&domain.Test{
			ID:         9,
			Name:       "t1",
			BOPID:      1,
			ApproverID: &approver,
			ApprovedAt: &approvedAt,
			Status:     domain.TestStatusApproved,
		}, nil)

	// Act
	w := f.do(http.MethodPost, "/teste/9/aprovar", nil, true)

	// Assert
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "APROVADO", body["status"])
	assert.Equal(t, "2025-03-04T05:06:07Z", body["data_aprovacao"])
	assert.EqualValues(t, 1, body["aprovador_id"])
}

func TestDeleteTest_NoContent(t *testing.T) {
	// Arrange
	f := newFixture(t)
	f.service.On("DeleteTest", mock.Anything, int64(3)).Return(nil)

	// Act
	w := f.do(http.MethodDelete, "/teste/3", nil, true)

	// Assert
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	// Arrange
	f := newFixture(t)
	f.service.On("Login", mock.Anything, &domain.LoginInput{Email: "admin@admin.com", Password: "x"}).
		Return(nil, domain.ErrInvalidCredentials)

	// Act
	w := f.do(http.MethodPost, "/auth/login", map[string]string{"email": "admin@admin.com", "senha": "x"}, false)

	// Assert
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetForecast_RequiresCoordinates(t *testing.T) {
	// Arrange
	f := newFixture(t)

	// Act
	w := f.do(http.MethodGet, "/api/previsao?latitude=-22.4", nil, false)

	// Assert
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetForecast_Upstream(t *testing.T) {
	// Arrange
	f := newFixture(t)
	f.service.On("ForecastByCoordinates", mock.Anything, -22.4, -40.1).
		Return(nil, domain.ErrForecastUnavailable)

	// Act
	w := f.do(http.MethodGet, "/api/previsao?latitude=-22.4&longitude=-40.1", nil, false)

	// Assert
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestHealth(t *testing.T) {
	f := newFixture(t)

	w := f.do(http.MethodGet, "/health", nil, false)

	assert.Equal(t, http.StatusOK, w.Code)
}
