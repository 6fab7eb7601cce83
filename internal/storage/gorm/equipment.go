package gorm

import (
	"context"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"bopLand/internal/domain"
	"bopLand/internal/logger"
	"bopLand/internal/storage"
)

type equipmentRepository struct {
	db *gorm.DB
}

// NewEquipmentRepository создаёт новый репозиторий клапанов и превенторов
func NewEquipmentRepository(db *gorm.DB) storage.EquipmentRepository {
	return &equipmentRepository{db: db}
}

// GetValves возвращает только те клапаны из ids, что принадлежат BOP
func (r *equipmentRepository) GetValves(ctx context.Context, bopID int64, ids []int64) ([]domain.Valve, error) {
	if len(ids) == 0 {
		return []domain.Valve{}, nil
	}

	var rows []Valve
	err := r.db.WithContext(ctx).
		Where("bop_id = ? AND id IN ?", bopID, ids).
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, translateError(err)
	}

	return toDomainValves(rows), nil
}

// GetPreventers возвращает только те превенторы из ids, что принадлежат BOP
func (r *equipmentRepository) GetPreventers(ctx context.Context, bopID int64, ids []int64) ([]domain.Preventer, error) {
	if len(ids) == 0 {
		return []domain.Preventer{}, nil
	}

	var rows []Preventer
	err := r.db.WithContext(ctx).
		Where("bop_id = ? AND id IN ?", bopID, ids).
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, translateError(err)
	}

	return toDomainPreventers(rows), nil
}

// LinkToTest проставляет teste_id свободному оборудованию.
// Если часть строк уже привязана к другому тесту, возвращает storage.ErrConflict.
func (r *equipmentRepository) LinkToTest(ctx context.Context, testID int64, valveIDs, preventerIDs []int64) error {
	if err := r.link(ctx, &Valve{}, testID, valveIDs); err != nil {
		return err
	}
	return r.link(ctx, &Preventer{}, testID, preventerIDs)
}

func (r *equipmentRepository) link(ctx context.Context, model any, testID int64, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	result := r.db.WithContext(ctx).
		Model(model).
		Where("id IN ? AND teste_id IS NULL", ids).
		Update("teste_id", testID)
	if result.Error != nil {
		return translateError(result.Error)
	}

	if result.RowsAffected != int64(len(ids)) {
		log.Warn().
			Str("request_id", logger.GetRequestID(ctx)).
			Str("layer", "storage").
			Int64("test_id", testID).
			Int("requested", len(ids)).
			Int64("linked", result.RowsAffected).
			Msg("equipment already linked to another test")
		return storage.ErrConflict
	}

	return nil
}

// UnlinkTest обнуляет teste_id у всего оборудования теста
func (r *equipmentRepository) UnlinkTest(ctx context.Context, testID int64) error {
	db := r.db.WithContext(ctx)

	if err := db.Model(&Valve{}).Where("teste_id = ?", testID).Update("teste_id", nil).Error; err != nil {
		return translateError(err)
	}
	if err := db.Model(&Preventer{}).Where("teste_id = ?", testID).Update("teste_id", nil).Error; err != nil {
		return translateError(err)
	}

	return nil
}

// ValveAcronyms возвращает уникальные акронимы клапанов по алфавиту
func (r *equipmentRepository) ValveAcronyms(ctx context.Context) ([]string, error) {
	return r.distinctAcronyms(ctx, &Valve{})
}

// PreventerAcronyms возвращает уникальные акронимы превенторов по алфавиту
func (r *equipmentRepository) PreventerAcronyms(ctx context.Context) ([]string, error) {
	return r.distinctAcronyms(ctx, &Preventer{})
}

func (r *equipmentRepository) distinctAcronyms(ctx context.Context, model any) ([]string, error) {
	acronyms := make([]string, 0)
	err := r.db.WithContext(ctx).
		Model(model).
		Distinct("acronimo").
		Order("acronimo ASC").
		Pluck("acronimo", &acronyms).Error
	if err != nil {
		return nil, translateError(err)
	}
	return acronyms, nil
}
