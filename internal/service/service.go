package service

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"bopLand/internal/auth"
	"bopLand/internal/domain"
	"bopLand/internal/storage"
)

// Service реализует domain.BOPService используя storage.TxManager
type Service struct {
	txmgr    storage.TxManager
	tokens   *auth.TokenManager
	forecast domain.ForecastProvider
	now      func() time.Time
}

// Проверка что Service реализует интерфейс domain.BOPService
var _ domain.BOPService = (*Service)(nil)

// New создаёт новый Service
func New(txmgr storage.TxManager, tokens *auth.TokenManager, forecast domain.ForecastProvider) *Service {
	return &Service{
		txmgr:    txmgr,
		tokens:   tokens,
		forecast: forecast,
		now: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// Имена операций для formatError
const (
	opCreateBOP         = "service.CreateBOP"
	opGetBOP            = "service.GetBOP"
	opDeleteBOP         = "service.DeleteBOP"
	opListBOPs          = "service.ListBOPs"
	opCreateTest        = "service.CreateTest"
	opGetTest           = "service.GetTest"
	opDeleteTest        = "service.DeleteTest"
	opListTests         = "service.ListTests"
	opApproveTest       = "service.ApproveTest"
	opValveAcronyms     = "service.ListValveAcronyms"
	opPreventerAcronyms = "service.ListPreventerAcronyms"
	opValvesBySonda     = "service.ListValvesBySonda"
	opPreventersBySonda = "service.ListPreventersBySonda"
	opRegister          = "service.Register"
	opLogin             = "service.Login"
	opWhoAmI            = "service.WhoAmI"
	opForecastByBOP     = "service.ForecastByBOP"
	opSeed              = "service.Seed"
)

// formatError преобразует ошибки storage слоя в доменные ошибки с правильными HTTP кодами
func (s *Service) formatError(ctx context.Context, op string, err error) error {
	switch {
	case domain.IsDomainError(err):
		return err
	case errors.Is(err, storage.ErrNotFound):
		switch op {
		case opGetBOP, opDeleteBOP, opValvesBySonda, opPreventersBySonda, opForecastByBOP:
			return domain.ErrBOPNotFound
		case opGetTest, opDeleteTest, opApproveTest:
			return domain.ErrTestNotFound
		}
		return domain.ErrResourceNotFound
	case errors.Is(err, storage.ErrAlreadyExists):
		switch op {
		case opCreateBOP:
			return domain.ErrBOPExists
		case opCreateTest:
			return domain.ErrTestExists
		case opRegister:
			return domain.ErrUserExists
		}
	case errors.Is(err, storage.ErrReferentialIntegrity):
		// FK сработал в БД, значит связанная строка исчезла между проверкой и записью
		switch op {
		case opDeleteBOP:
			return domain.ErrBOPHasTests
		case opCreateTest:
			return domain.ErrUnknownBOP
		case opApproveTest:
			return domain.ErrApproverNotFound
		}
	case errors.Is(err, storage.ErrConflict):
		return domain.ErrEquipmentAlreadyTested
	case ctx.Err() != nil && errors.Is(err, ctx.Err()):
		return ctx.Err()
	}

	log.Error().Err(err).Str("operation", op).Msg("operation failed")
	return domain.ErrInternal
}

func invalidInput(message string) *domain.Error {
	return domain.NewError(http.StatusBadRequest, domain.ErrorCodeInvalidInput, message, nil)
}
