package gorm

import (
	"context"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"bopLand/internal/domain"
	"bopLand/internal/logger"
	"bopLand/internal/storage"
)

type bopRepository struct {
	db *gorm.DB
}

// NewBOPRepository создаёт новый репозиторий BOP
func NewBOPRepository(db *gorm.DB) storage.BOPRepository {
	return &bopRepository{db: db}
}

// Create создаёт BOP и его оборудование одним INSERT-графом
func (r *bopRepository) Create(ctx context.Context, bop *domain.BOP) error {
	dbBOP := &BOP{
		Sonda:      bop.Sonda,
		Latitude:   bop.Latitude,
		Longitude:  bop.Longitude,
		Valves:     make([]Valve, len(bop.Valves)),
		Preventers: make([]Preventer, len(bop.Preventers)),
	}
	for i, v := range bop.Valves {
		dbBOP.Valves[i] = Valve{Acronym: v.Acronym}
	}
	for i, p := range bop.Preventers {
		dbBOP.Preventers[i] = Preventer{Acronym: p.Acronym}
	}

	if err := r.db.WithContext(ctx).Create(dbBOP).Error; err != nil {
		err = translateError(err)
		log.Warn().
			Err(err).
			Str("request_id", logger.GetRequestID(ctx)).
			Str("layer", "storage").
			Str("sonda", bop.Sonda).
			Msg("failed to insert bop")
		return err
	}

	*bop = toDomainBOP(dbBOP)

	log.Debug().
		Str("request_id", logger.GetRequestID(ctx)).
		Str("layer", "storage").
		Int64("bop_id", bop.ID).
		Int("valves", len(bop.Valves)).
		Int("preventers", len(bop.Preventers)).
		Msg("inserted bop with equipment")

	return nil
}

// GetByID получает BOP по ID вместе с оборудованием
func (r *bopRepository) GetByID(ctx context.Context, id int64) (*domain.BOP, error) {
	var dbBOP BOP
	err := r.withEquipment(ctx).First(&dbBOP, "id = ?", id).Error
	if err != nil {
		return nil, translateError(err)
	}

	bop := toDomainBOP(&dbBOP)
	return &bop, nil
}

// GetBySonda получает BOP по точному имени сонды
func (r *bopRepository) GetBySonda(ctx context.Context, sonda string) (*domain.BOP, error) {
	var dbBOP BOP
	err := r.withEquipment(ctx).First(&dbBOP, "sonda = ?", sonda).Error
	if err != nil {
		return nil, translateError(err)
	}

	bop := toDomainBOP(&dbBOP)
	return &bop, nil
}

// Delete удаляет оборудование и сам BOP.
// Дочерние строки удаляются явно, не полагаясь на ON DELETE CASCADE.
func (r *bopRepository) Delete(ctx context.Context, id int64) error {
	db := r.db.WithContext(ctx)

	if err := db.Where("bop_id = ?", id).Delete(&Valve{}).Error; err != nil {
		return translateError(err)
	}
	if err := db.Where("bop_id = ?", id).Delete(&Preventer{}).Error; err != nil {
		return translateError(err)
	}

	result := db.Delete(&BOP{}, id)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		log.Warn().
			Str("request_id", logger.GetRequestID(ctx)).
			Str("layer", "storage").
			Int64("bop_id", id).
			Msg("bop not found")
		return storage.ErrNotFound
	}

	log.Debug().
		Str("request_id", logger.GetRequestID(ctx)).
		Str("layer", "storage").
		Int64("bop_id", id).
		Msg("deleted bop with equipment")

	return nil
}

// List возвращает страницу BOP по подстроке sonda, порядок: sonda, id
func (r *bopRepository) List(ctx context.Context, sonda string, page domain.PageRequest) ([]domain.BOP, int64, error) {
	filtered := func() *gorm.DB {
		return applySpecifications(r.db.WithContext(ctx).Model(&BOP{}), SondaSpecification{Sonda: sonda})
	}

	var total int64
	if err := filtered().Count(&total).Error; err != nil {
		return nil, 0, translateError(err)
	}

	var rows []BOP
	err := filtered().
		Preload("Valves", orderByID).
		Preload("Preventers", orderByID).
		Order("sonda ASC").
		Order("id ASC").
		Offset(page.Offset()).
		Limit(page.PageSize).
		Find(&rows).Error
	if err != nil {
		return nil, 0, translateError(err)
	}

	bops := make([]domain.BOP, len(rows))
	for i := range rows {
		bops[i] = toDomainBOP(&rows[i])
	}

	return bops, total, nil
}

// Count возвращает общее количество BOP
func (r *bopRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&BOP{}).Count(&total).Error; err != nil {
		return 0, translateError(err)
	}
	return total, nil
}

func (r *bopRepository) withEquipment(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Valves", orderByID).
		Preload("Preventers", orderByID)
}

func orderByID(db *gorm.DB) *gorm.DB {
	return db.Order("id ASC")
}
