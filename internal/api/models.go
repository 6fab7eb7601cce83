package api

const (
	ErrCodeInvalidRequest = "INVALID_REQUEST"
	ErrCodeUnauthorized   = "UNAUTHORIZED"
	ErrCodeInternalError  = "INTERNAL_ERROR"
)

// Error represents a standardized error structure
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse represents a standardized error response
type ErrorResponse struct {
	Error Error `json:"error"`
}

// Pagination - метаданные страницы в ответе списков
type Pagination struct {
	TotalRecords int64 `json:"total_registros"`
	TotalPages   int   `json:"total_paginas"`
	CurrentPage  int   `json:"pagina_atual"`
	HasNext      bool  `json:"tem_proximo"`
	HasPrev      bool  `json:"tem_anterior"`
}

// ListResponse - страница данных с пагинацией
type ListResponse[T any] struct {
	Data       []T        `json:"data"`
	Pagination Pagination `json:"pagination"`
}

type Valve struct {
	ID      int64  `json:"id"`
	Acronym string `json:"acronimo"`
	BOPID   int64  `json:"bop_id"`
	TestID  *int64 `json:"teste_id"`
}

type Preventer struct {
	ID      int64  `json:"id"`
	Acronym string `json:"acronimo"`
	BOPID   int64  `json:"bop_id"`
	TestID  *int64 `json:"teste_id"`
}

type BOP struct {
	ID         int64       `json:"id"`
	Sonda      string      `json:"sonda"`
	Latitude   *float64    `json:"latitude"`
	Longitude  *float64    `json:"longitude"`
	Valves     []Valve     `json:"valvulas"`
	Preventers []Preventer `json:"preventores"`
}

type Test struct {
	ID               int64       `json:"id"`
	Name             string      `json:"nome"`
	BOPID            int64       `json:"bop_id"`
	ApproverID       *int64      `json:"aprovador_id"`
	ApprovedAt       *string     `json:"data_aprovacao"`
	Status           string      `json:"status"`
	TestedValves     []Valve     `json:"valvulas_testadas"`
	TestedPreventers []Preventer `json:"preventores_testados"`
}

type EquipmentItem struct {
	ID      int64  `json:"id"`
	Acronym string `json:"acronimo"`
}

type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"nome"`
	Email string `json:"email"`
}

type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresAt   string `json:"expira_em"`
}

type ForecastDay struct {
	Date    string  `json:"dia"`
	Weather string  `json:"tempo"`
	MaxTemp int     `json:"maxima"`
	MinTemp int     `json:"minima"`
	UVIndex float64 `json:"iuv"`
}

type Forecast struct {
	City      string        `json:"cidade"`
	State     string        `json:"uf"`
	UpdatedAt string        `json:"atualizacao"`
	Days      []ForecastDay `json:"previsao"`
}
