package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorCode - код ошибки для API
type ErrorCode string

const (
	ErrorCodeBOPExists            ErrorCode = "BOP_EXISTS"
	ErrorCodeTestExists           ErrorCode = "TEST_EXISTS"
	ErrorCodeUserExists           ErrorCode = "USER_EXISTS"
	ErrorCodeNotFound             ErrorCode = "NOT_FOUND"
	ErrorCodeInvalidReference     ErrorCode = "INVALID_REFERENCE"
	ErrorCodeReferentialIntegrity ErrorCode = "REFERENTIAL_INTEGRITY"
	ErrorCodeTestApproved         ErrorCode = "TEST_APPROVED"
	ErrorCodeEquipmentTested      ErrorCode = "EQUIPMENT_ALREADY_TESTED"
	ErrorCodeInvalidCredentials   ErrorCode = "INVALID_CREDENTIALS"
	ErrorCodeForecastUnavailable  ErrorCode = "FORECAST_UNAVAILABLE"
	ErrorCodeInternalError        ErrorCode = "INTERNAL_ERROR"
	ErrorCodeInvalidInput         ErrorCode = "INVALID_INPUT"
)

// Error - доменная ошибка с HTTP статусом и кодом
type Error struct {
	Status  int       // HTTP status code
	Code    ErrorCode // Код ошибки для API
	Message string    // Сообщение об ошибке
	Err     error     // Wrapped error для контекста
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError создаёт новую доменную ошибку
func NewError(status int, code ErrorCode, message string, err error) *Error {
	return &Error{
		Status:  status,
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// DuplicateKey
var (
	ErrBOPExists = NewError(
		http.StatusConflict,
		ErrorCodeBOPExists,
		"bop for this sonda already exists",
		nil,
	)

	ErrTestExists = NewError(
		http.StatusConflict,
		ErrorCodeTestExists,
		"test with this name already exists for the bop",
		nil,
	)

	ErrUserExists = NewError(
		http.StatusConflict,
		ErrorCodeUserExists,
		"user with this email already exists",
		nil,
	)
)

// NotFound
var (
	ErrResourceNotFound = NewError(
		http.StatusNotFound,
		ErrorCodeNotFound,
		"resource not found",
		nil,
	)

	ErrBOPNotFound = NewError(
		http.StatusNotFound,
		ErrorCodeNotFound,
		"bop not found",
		nil,
	)

	ErrTestNotFound = NewError(
		http.StatusNotFound,
		ErrorCodeNotFound,
		"test not found",
		nil,
	)

	ErrApproverNotFound = NewError(
		http.StatusNotFound,
		ErrorCodeNotFound,
		"approver not found",
		nil,
	)
)

// InvalidReference
var (
	ErrUnknownBOP = NewError(
		http.StatusBadRequest,
		ErrorCodeInvalidReference,
		"bop_id does not reference an existing bop",
		nil,
	)

	ErrForeignEquipment = NewError(
		http.StatusBadRequest,
		ErrorCodeInvalidReference,
		"tested valves and preventers must be distinct ids owned by the bop",
		nil,
	)
)

// ReferentialIntegrity / InvalidOperation
var (
	ErrBOPHasTests = NewError(
		http.StatusConflict,
		ErrorCodeReferentialIntegrity,
		"bop has tests referencing its equipment",
		nil,
	)

	ErrTestApproved = NewError(
		http.StatusConflict,
		ErrorCodeTestApproved,
		"approved test cannot be deleted",
		nil,
	)

	ErrEquipmentAlreadyTested = NewError(
		http.StatusConflict,
		ErrorCodeEquipmentTested,
		"equipment is already linked to another test",
		nil,
	)
)

// Auth / input / внешние сервисы
var (
	ErrInvalidCredentials = NewError(
		http.StatusUnauthorized,
		ErrorCodeInvalidCredentials,
		"invalid email or password",
		nil,
	)

	ErrInvalidInput = NewError(
		http.StatusBadRequest,
		ErrorCodeInvalidInput,
		"invalid input data",
		nil,
	)

	ErrInvalidPagination = NewError(
		http.StatusBadRequest,
		ErrorCodeInvalidInput,
		"pagina must be >= 1 and por_pagina must be between 1 and 100",
		nil,
	)

	ErrInvalidStatus = NewError(
		http.StatusBadRequest,
		ErrorCodeInvalidInput,
		"status must be one of CRIADO, AGENDADO, APROVADO, FALHO",
		nil,
	)

	ErrMissingCoordinates = NewError(
		http.StatusBadRequest,
		ErrorCodeInvalidInput,
		"bop has no coordinates",
		nil,
	)

	ErrForecastUnavailable = NewError(
		http.StatusBadGateway,
		ErrorCodeForecastUnavailable,
		"weather forecast service unavailable",
		nil,
	)

	ErrInternal = NewError(
		http.StatusInternalServerError,
		ErrorCodeInternalError,
		"internal server error",
		nil,
	)
)

// IsDomainError проверяет, является ли ошибка доменной
func IsDomainError(err error) bool {
	var e *Error
	return errors.As(err, &e)
}
