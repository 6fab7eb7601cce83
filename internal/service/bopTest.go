package service

import (
	"bopLand/internal/domain"
	"bopLand/internal/logger"
	"bopLand/internal/metrics"
	"bopLand/internal/storage"
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog/log"
)

// CreateTest создаёт тест по оборудованию BOP.
// Запрошенные id клапанов и превенторов должны в точности совпасть с найденными у этого BOP.
func (s *Service) CreateTest(outerCtx context.Context, input *domain.CreateTestInput) (*domain.Test, error) {
	requestID := logger.GetRequestID(outerCtx)

	name := strings.TrimSpace(input.Name)
	if name == "" || len(name) > maxNameLength {
		return nil, invalidInput("nome is required and must be at most 140 characters")
	}
	if hasDuplicates(input.ValveIDs) || hasDuplicates(input.PreventerIDs) {
		return nil, domain.ErrForeignEquipment
	}

	log.Info().
		Str("request_id", requestID).
		Str("layer", "service").
		Int64("bop_id", input.BOPID).
		Str("nome", name).
		Ints64("valvulas_testadas", input.ValveIDs).
		Ints64("preventores_testados", input.PreventerIDs).
		Msg("creating test")

	var test *domain.Test

	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		if _, err := tx.BOPRepo().GetByID(ctx, input.BOPID); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return domain.ErrUnknownBOP
			}
			return err
		}

		valves, err := tx.EquipmentRepo().GetValves(ctx, input.BOPID, input.ValveIDs)
		if err != nil {
			return err
		}
		preventers, err := tx.EquipmentRepo().GetPreventers(ctx, input.BOPID, input.PreventerIDs)
		if err != nil {
			return err
		}

		// Ни один id не должен потеряться: чужое или несуществующее оборудование - ошибка
		if len(valves) != len(input.ValveIDs) || len(preventers) != len(input.PreventerIDs) {
			log.Warn().
				Str("request_id", requestID).
				Str("layer", "service").
				Int("valves_found", len(valves)).
				Int("preventers_found", len(preventers)).
				Msg("tested equipment does not belong to bop")
			return domain.ErrForeignEquipment
		}

		for _, v := range valves {
			if v.TestID != nil {
				return domain.ErrEquipmentAlreadyTested
			}
		}
		for _, p := range preventers {
			if p.TestID != nil {
				return domain.ErrEquipmentAlreadyTested
			}
		}

		test = &domain.Test{
			Name:   name,
			BOPID:  input.BOPID,
			Status: domain.TestStatusCreated,
		}
		if err := tx.TestRepo().Create(ctx, test); err != nil {
			return err
		}

		if err := tx.EquipmentRepo().LinkToTest(ctx, test.ID, input.ValveIDs, input.PreventerIDs); err != nil {
			return err
		}

		for _, v := range valves {
			test.AddTestedValve(v)
		}
		for _, p := range preventers {
			test.AddTestedPreventer(p)
		}

		return nil
	})
	if err != nil {
		return nil, s.formatError(outerCtx, opCreateTest, err)
	}

	metrics.TestCreatedTotal.Inc()
	metrics.TestEquipmentTested.Observe(float64(len(test.Valves) + len(test.Preventers)))

	log.Info().
		Str("request_id", requestID).
		Str("layer", "service").
		Int64("test_id", test.ID).
		Msg("successfully created test")

	return test, nil
}

func hasDuplicates(ids []int64) bool {
	seen := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			return true
		}
		seen[id] = struct{}{}
	}
	return false
}

// GetTest возвращает тест по ID
func (s *Service) GetTest(outerCtx context.Context, id int64) (*domain.Test, error) {
	var test *domain.Test

	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		var err error
		test, err = tx.TestRepo().GetByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, s.formatError(outerCtx, opGetTest, err)
	}

	return test, nil
}

// DeleteTest удаляет тест и отвязывает его оборудование. Одобренный тест удалить нельзя.
func (s *Service) DeleteTest(outerCtx context.Context, id int64) error {
	requestID := logger.GetRequestID(outerCtx)

	log.Info().
		Str("request_id", requestID).
		Str("layer", "service").
		Int64("test_id", id).
		Msg("deleting test")

	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		test, err := tx.TestRepo().GetByID(ctx, id)
		if err != nil {
			return err
		}

		if test.IsApproved() {
			return domain.ErrTestApproved
		}

		if err := tx.EquipmentRepo().UnlinkTest(ctx, id); err != nil {
			return err
		}

		return tx.TestRepo().Delete(ctx, id)
	})
	if err != nil {
		return s.formatError(outerCtx, opDeleteTest, err)
	}

	metrics.TestDeletedTotal.Inc()

	log.Info().
		Str("request_id", requestID).
		Str("layer", "service").
		Int64("test_id", id).
		Msg("successfully deleted test")

	return nil
}

// ListTests возвращает страницу тестов по фильтрам.
// Фильтры применяются в порядке status, bop_id, aprovador_id.
func (s *Service) ListTests(outerCtx context.Context, input *domain.ListTestsInput) (*domain.Page[domain.Test], error) {
	if err := input.PageRequest.Validate(); err != nil {
		return nil, err
	}

	filter := storage.TestFilter{
		Status:     input.Status,
		BOPID:      input.BOPID,
		ApproverID: input.ApproverID,
	}

	var (
		items []domain.Test
		total int64
	)

	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		var err error
		items, total, err = tx.TestRepo().List(ctx, filter, input.PageRequest)
		return err
	})
	if err != nil {
		return nil, s.formatError(outerCtx, opListTests, err)
	}

	return &domain.Page[domain.Test]{
		Items:      items,
		Pagination: domain.NewPagination(input.PageRequest, total),
	}, nil
}

// ApproveTest одобряет тест. Одобряющий пользователь должен существовать
// всегда. Повторное одобрение ничего не меняет и возвращает уже
// сохранённые aprovador_id и data_aprovacao.
func (s *Service) ApproveTest(outerCtx context.Context, input *domain.ApproveTestInput) (*domain.Test, error) {
	requestID := logger.GetRequestID(outerCtx)
	var test *domain.Test
	approvedNow := false

	log.Info().
		Str("request_id", requestID).
		Str("layer", "service").
		Int64("test_id", input.TestID).
		Int64("aprovador_id", input.ApproverID).
		Msg("approving test")

	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		existing, err := tx.TestRepo().GetByID(ctx, input.TestID)
		if err != nil {
			return err
		}

		if _, err := tx.UserRepo().GetByID(ctx, input.ApproverID); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return domain.ErrApproverNotFound
			}
			return err
		}

		if existing.IsApproved() {
			log.Info().
				Str("request_id", requestID).
				Str("layer", "service").
				Int64("test_id", input.TestID).
				Msg("test already approved, returning current state (idempotent)")
			test = existing
			return nil
		}

		existing.Approve(input.ApproverID, s.now())
		if err := tx.TestRepo().Approve(ctx, existing); err != nil {
			return err
		}

		test = existing
		approvedNow = true
		return nil
	})
	if err != nil {
		return nil, s.formatError(outerCtx, opApproveTest, err)
	}

	if approvedNow {
		metrics.TestApprovedTotal.Inc()
	}

	log.Info().
		Str("request_id", requestID).
		Str("layer", "service").
		Int64("test_id", test.ID).
		Str("status", string(test.Status)).
		Msg("successfully approved test")

	return test, nil
}
