package gorm

import (
	"bopLand/internal/metrics"
	"bopLand/internal/storage"
	"context"
	"time"

	"gorm.io/gorm"
)

// txManager реализует storage.TxManager для GORM
type txManager struct {
	db *gorm.DB
}

// NewTxManager создаёт менеджер транзакций поверх открытого соединения
func NewTxManager(db *gorm.DB) storage.TxManager {
	return &txManager{db: db}
}

// Do выполняет функцию внутри транзакции с автоматическим commit/rollback
func (tm *txManager) Do(ctx context.Context, fn func(ctx context.Context, tx storage.Tx) error) error {
	start := time.Now()

	// при ошибке fn GORM сделает ROLLBACK, ошибка COMMIT тоже вернётся сюда
	err := tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, &transaction{db: tx})
	})

	metrics.DBTransactionDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.DBTransactionTotal.WithLabelValues("error").Inc()
	} else {
		metrics.DBTransactionTotal.WithLabelValues("success").Inc()
	}

	return err
}

// transaction - обёртка над gorm.DB, реализует storage.Tx
type transaction struct {
	db *gorm.DB
}

func (t *transaction) BOPRepo() storage.BOPRepository {
	return NewBOPRepository(t.db)
}

func (t *transaction) TestRepo() storage.TestRepository {
	return NewTestRepository(t.db)
}

func (t *transaction) EquipmentRepo() storage.EquipmentRepository {
	return NewEquipmentRepository(t.db)
}

func (t *transaction) UserRepo() storage.UserRepository {
	return NewUserRepository(t.db)
}
