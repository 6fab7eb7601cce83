package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"bopLand/internal/auth"
	"bopLand/internal/domain"
	"bopLand/internal/mocks"
	"bopLand/internal/service"
	"bopLand/internal/storage"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

// deps - набор моков, через которые проходит одна транзакция сервиса
type deps struct {
	txMgr     *mocks.TxManager
	tx        *mocks.Tx
	bops      *mocks.BOPRepository
	tests     *mocks.TestRepository
	equipment *mocks.EquipmentRepository
	users     *mocks.UserRepository
	forecast  *mocks.ForecastProvider
	tokens    *auth.TokenManager
}

func newDeps(t *testing.T) *deps {
	d := &deps{
		txMgr:     mocks.NewTxManager(t),
		tx:        mocks.NewTx(t),
		bops:      mocks.NewBOPRepository(t),
		tests:     mocks.NewTestRepository(t),
		equipment: mocks.NewEquipmentRepository(t),
		users:     mocks.NewUserRepository(t),
		forecast:  mocks.NewForecastProvider(t),
		tokens:    auth.NewTokenManager(testSecret, time.Hour),
	}

	d.tx.On("BOPRepo").Return(d.bops).Maybe()
	d.tx.On("TestRepo").Return(d.tests).Maybe()
	d.tx.On("EquipmentRepo").Return(d.equipment).Maybe()
	d.tx.On("UserRepo").Return(d.users).Maybe()

	// Do вызывает fn с моком транзакции и возвращает её результат
	d.txMgr.On("Do", mock.Anything, mock.AnythingOfType("func(context.Context, storage.Tx) error")).
		Return(func(ctx context.Context, fn func(context.Context, storage.Tx) error) error {
			return fn(ctx, d.tx)
		}).
		Maybe()

	return d
}

func (d *deps) service() *service.Service {
	return service.New(d.txMgr, d.tokens, d.forecast)
}

func requireDomainCode(t *testing.T, err error, code domain.ErrorCode) {
	t.Helper()

	var domainErr *domain.Error
	require.True(t, errors.As(err, &domainErr), "expected domain error, got %v", err)
	require.Equal(t, code, domainErr.Code)
}

func int64Ptr(v int64) *int64 {
	return &v
}

func float64Ptr(v float64) *float64 {
	return &v
}
