package gorm

import (
	"context"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"bopLand/internal/domain"
	"bopLand/internal/logger"
	"bopLand/internal/storage"
)

type testRepository struct {
	db *gorm.DB
}

// NewTestRepository создаёт новый репозиторий тестов
func NewTestRepository(db *gorm.DB) storage.TestRepository {
	return &testRepository{db: db}
}

// Create создаёт строку теста; оборудование привязывается отдельно
func (r *testRepository) Create(ctx context.Context, test *domain.Test) error {
	dbTest := &Test{
		Name:   test.Name,
		BOPID:  test.BOPID,
		Status: string(test.Status),
	}

	if err := r.db.WithContext(ctx).Omit("Valves", "Preventers", "Approver").Create(dbTest).Error; err != nil {
		return translateError(err)
	}

	test.ID = dbTest.ID
	test.Status = domain.TestStatus(dbTest.Status)
	test.CreatedAt = dbTest.CreatedAt
	return nil
}

// GetByID получает тест с проверенным оборудованием
func (r *testRepository) GetByID(ctx context.Context, id int64) (*domain.Test, error) {
	var dbTest Test
	err := r.db.WithContext(ctx).
		Preload("Valves", orderByID).
		Preload("Preventers", orderByID).
		First(&dbTest, "id = ?", id).Error
	if err != nil {
		return nil, translateError(err)
	}

	test := toDomainTest(&dbTest)
	return &test, nil
}

// Approve записывает поля одобрения
func (r *testRepository) Approve(ctx context.Context, test *domain.Test) error {
	result := r.db.WithContext(ctx).
		Model(&Test{}).
		Where("id = ?", test.ID).
		Updates(map[string]interface{}{
			"aprovador_id":   test.ApproverID,
			"data_aprovacao": test.ApprovedAt,
			"status":         string(test.Status),
		})

	if result.Error != nil {
		return translateError(result.Error)
	}

	if result.RowsAffected == 0 {
		return storage.ErrNotFound
	}

	log.Debug().
		Str("request_id", logger.GetRequestID(ctx)).
		Str("layer", "storage").
		Int64("test_id", test.ID).
		Msg("stored test approval")

	return nil
}

// Delete удаляет строку теста
func (r *testRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&Test{}, id)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// CountByBOP возвращает количество тестов, ссылающихся на BOP
func (r *testRepository) CountByBOP(ctx context.Context, bopID int64) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&Test{}).Where("bop_id = ?", bopID).Count(&total).Error
	if err != nil {
		return 0, translateError(err)
	}
	return total, nil
}

// List возвращает страницу тестов.
// Для APROVADO сортировка по data_aprovacao DESC, иначе по nome; id - тай-брейк.
func (r *testRepository) List(ctx context.Context, filter storage.TestFilter, page domain.PageRequest) ([]domain.Test, int64, error) {
	filtered := func() *gorm.DB {
		return applySpecifications(r.db.WithContext(ctx).Model(&Test{}), testSpecifications(filter)...)
	}

	var total int64
	if err := filtered().Count(&total).Error; err != nil {
		return nil, 0, translateError(err)
	}

	query := filtered().
		Preload("Valves", orderByID).
		Preload("Preventers", orderByID)

	if filter.Status != nil && *filter.Status == domain.TestStatusApproved {
		query = query.Order("data_aprovacao DESC")
	} else {
		query = query.Order("nome ASC")
	}

	var rows []Test
	err := query.
		Order("id ASC").
		Offset(page.Offset()).
		Limit(page.PageSize).
		Find(&rows).Error
	if err != nil {
		return nil, 0, translateError(err)
	}

	tests := make([]domain.Test, len(rows))
	for i := range rows {
		tests[i] = toDomainTest(&rows[i])
	}

	return tests, total, nil
}
