package service

import (
	"bopLand/internal/domain"
	"bopLand/internal/storage"
	"context"
	"strings"
)

// ListValveAcronyms возвращает уникальные акронимы клапанов всех BOP
func (s *Service) ListValveAcronyms(outerCtx context.Context) ([]string, error) {
	var acronyms []string

	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		var err error
		acronyms, err = tx.EquipmentRepo().ValveAcronyms(ctx)
		return err
	})
	if err != nil {
		return nil, s.formatError(outerCtx, opValveAcronyms, err)
	}

	return acronyms, nil
}

// ListPreventerAcronyms возвращает уникальные акронимы превенторов всех BOP
func (s *Service) ListPreventerAcronyms(outerCtx context.Context) ([]string, error) {
	var acronyms []string

	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		var err error
		acronyms, err = tx.EquipmentRepo().PreventerAcronyms(ctx)
		return err
	})
	if err != nil {
		return nil, s.formatError(outerCtx, opPreventerAcronyms, err)
	}

	return acronyms, nil
}

// ListValvesBySonda возвращает клапаны сонды
func (s *Service) ListValvesBySonda(outerCtx context.Context, sonda string) ([]domain.EquipmentItem, error) {
	bop, err := s.bopBySonda(outerCtx, opValvesBySonda, sonda)
	if err != nil {
		return nil, err
	}

	items := make([]domain.EquipmentItem, len(bop.Valves))
	for i, v := range bop.Valves {
		items[i] = domain.EquipmentItem{ID: v.ID, Acronym: v.Acronym}
	}
	return items, nil
}

// ListPreventersBySonda возвращает превенторы сонды
func (s *Service) ListPreventersBySonda(outerCtx context.Context, sonda string) ([]domain.EquipmentItem, error) {
	bop, err := s.bopBySonda(outerCtx, opPreventersBySonda, sonda)
	if err != nil {
		return nil, err
	}

	items := make([]domain.EquipmentItem, len(bop.Preventers))
	for i, p := range bop.Preventers {
		items[i] = domain.EquipmentItem{ID: p.ID, Acronym: p.Acronym}
	}
	return items, nil
}

func (s *Service) bopBySonda(outerCtx context.Context, op, sonda string) (*domain.BOP, error) {
	sonda = strings.TrimSpace(sonda)
	if sonda == "" {
		return nil, invalidInput("sonda is required")
	}

	var bop *domain.BOP
	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		var err error
		bop, err = tx.BOPRepo().GetBySonda(ctx, sonda)
		return err
	})
	if err != nil {
		return nil, s.formatError(outerCtx, op, err)
	}

	return bop, nil
}
