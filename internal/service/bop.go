package service

import (
	"bopLand/internal/domain"
	"bopLand/internal/logger"
	"bopLand/internal/metrics"
	"bopLand/internal/storage"
	"context"
	"strings"

	"github.com/rs/zerolog/log"
)

const maxNameLength = 140

// CreateBOP создаёт BOP вместе с клапанами и превенторами в одной транзакции.
// При ошибке транзакция откатывается целиком, частично созданный BOP не виден.
func (s *Service) CreateBOP(outerCtx context.Context, input *domain.CreateBOPInput) (*domain.BOP, error) {
	requestID := logger.GetRequestID(outerCtx)

	if err := validateCreateBOP(input); err != nil {
		return nil, err
	}

	bop := &domain.BOP{
		Sonda:     strings.TrimSpace(input.Sonda),
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
	}
	for _, acronym := range input.Valves {
		bop.AddValve(strings.TrimSpace(acronym))
	}
	for _, acronym := range input.Preventers {
		bop.AddPreventer(strings.TrimSpace(acronym))
	}

	log.Info().
		Str("request_id", requestID).
		Str("layer", "service").
		Str("sonda", bop.Sonda).
		Int("valves", len(bop.Valves)).
		Int("preventers", len(bop.Preventers)).
		Msg("creating bop")

	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		return tx.BOPRepo().Create(ctx, bop)
	})
	if err != nil {
		return nil, s.formatError(outerCtx, opCreateBOP, err)
	}

	metrics.BOPCreatedTotal.Inc()

	log.Info().
		Str("request_id", requestID).
		Str("layer", "service").
		Int64("bop_id", bop.ID).
		Msg("successfully created bop")

	return bop, nil
}

func validateCreateBOP(input *domain.CreateBOPInput) error {
	sonda := strings.TrimSpace(input.Sonda)
	if sonda == "" {
		return invalidInput("sonda is required")
	}
	if len(sonda) > maxNameLength {
		return invalidInput("sonda must be at most 140 characters")
	}
	if (input.Latitude == nil) != (input.Longitude == nil) {
		return invalidInput("latitude and longitude must be provided together")
	}
	if input.Latitude != nil && !validCoordinates(*input.Latitude, *input.Longitude) {
		return invalidInput("latitude must be within [-90, 90] and longitude within [-180, 180]")
	}
	for _, acronyms := range [][]string{input.Valves, input.Preventers} {
		for _, acronym := range acronyms {
			acronym = strings.TrimSpace(acronym)
			if acronym == "" || len(acronym) > maxNameLength {
				return invalidInput("equipment acronyms must be non-empty and at most 140 characters")
			}
		}
	}
	return nil
}

func validCoordinates(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

// GetBOP возвращает BOP по ID
func (s *Service) GetBOP(outerCtx context.Context, id int64) (*domain.BOP, error) {
	var bop *domain.BOP

	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		var err error
		bop, err = tx.BOPRepo().GetByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, s.formatError(outerCtx, opGetBOP, err)
	}

	return bop, nil
}

// DeleteBOP удаляет BOP с оборудованием, если на него не ссылается ни один тест
func (s *Service) DeleteBOP(outerCtx context.Context, id int64) error {
	requestID := logger.GetRequestID(outerCtx)

	log.Info().
		Str("request_id", requestID).
		Str("layer", "service").
		Int64("bop_id", id).
		Msg("deleting bop")

	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		if _, err := tx.BOPRepo().GetByID(ctx, id); err != nil {
			return err
		}

		tests, err := tx.TestRepo().CountByBOP(ctx, id)
		if err != nil {
			return err
		}
		if tests > 0 {
			log.Warn().
				Str("request_id", requestID).
				Str("layer", "service").
				Int64("bop_id", id).
				Int64("tests", tests).
				Msg("bop has tests, refusing to delete")
			return domain.ErrBOPHasTests
		}

		return tx.BOPRepo().Delete(ctx, id)
	})
	if err != nil {
		return s.formatError(outerCtx, opDeleteBOP, err)
	}

	metrics.BOPDeletedTotal.Inc()

	log.Info().
		Str("request_id", requestID).
		Str("layer", "service").
		Int64("bop_id", id).
		Msg("successfully deleted bop")

	return nil
}

// ListBOPs ищет BOP по подстроке sonda без учёта регистра
func (s *Service) ListBOPs(outerCtx context.Context, input *domain.ListBOPsInput) (*domain.Page[domain.BOP], error) {
	if err := input.PageRequest.Validate(); err != nil {
		return nil, err
	}

	var (
		items []domain.BOP
		total int64
	)

	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		var err error
		items, total, err = tx.BOPRepo().List(ctx, strings.TrimSpace(input.Sonda), input.PageRequest)
		return err
	})
	if err != nil {
		return nil, s.formatError(outerCtx, opListBOPs, err)
	}

	log.Debug().
		Str("request_id", logger.GetRequestID(outerCtx)).
		Str("layer", "service").
		Str("sonda", input.Sonda).
		Int64("total", total).
		Msg("listed bops")

	return &domain.Page[domain.BOP]{
		Items:      items,
		Pagination: domain.NewPagination(input.PageRequest, total),
	}, nil
}
