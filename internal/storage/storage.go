package storage

import (
	"context"

	"bopLand/internal/domain"
)

// TxManager управляет транзакциями базы данных
//
//go:generate mockery --name=TxManager --output=../mocks --outpkg=mocks --filename=tx_manager_mock.go
type TxManager interface {
	// Do выполняет функцию fn внутри транзакции
	// Если fn возвращает ошибку, транзакция откатывается
	// Иначе транзакция коммитится
	Do(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx представляет транзакцию с доступом к репозиториям
//
//go:generate mockery --name=Tx --output=../mocks --outpkg=mocks --filename=tx_mock.go
type Tx interface {
	BOPRepo() BOPRepository
	TestRepo() TestRepository
	EquipmentRepo() EquipmentRepository
	UserRepo() UserRepository
}

// TestFilter - необязательные фильтры списка тестов; nil означает "не фильтровать"
type TestFilter struct {
	Status     *domain.TestStatus
	BOPID      *int64
	ApproverID *int64
}

// BOPRepository определяет операции с BOP
//
//go:generate mockery --name=BOPRepository --output=../mocks --outpkg=mocks --filename=bop_repository_mock.go
type BOPRepository interface {
	// Create создаёт BOP вместе с клапанами и превенторами и проставляет им ID
	Create(ctx context.Context, bop *domain.BOP) error

	// GetByID возвращает BOP с оборудованием
	GetByID(ctx context.Context, id int64) (*domain.BOP, error)

	// GetBySonda возвращает BOP по точному имени сонды
	GetBySonda(ctx context.Context, sonda string) (*domain.BOP, error)

	// Delete удаляет BOP вместе с клапанами и превенторами
	Delete(ctx context.Context, id int64) error

	// List возвращает страницу BOP, отсортированную по sonda, и общее количество
	List(ctx context.Context, sonda string, page domain.PageRequest) ([]domain.BOP, int64, error)

	// Count возвращает количество BOP
	Count(ctx context.Context) (int64, error)
}

// TestRepository определяет операции с тестами
//
//go:generate mockery --name=TestRepository --output=../mocks --outpkg=mocks --filename=test_repository_mock.go
type TestRepository interface {
	// Create создаёт строку теста без привязки оборудования
	Create(ctx context.Context, test *domain.Test) error

	// GetByID возвращает тест с проверенным оборудованием
	GetByID(ctx context.Context, id int64) (*domain.Test, error)

	// Approve сохраняет aprovador_id, data_aprovacao и status
	Approve(ctx context.Context, test *domain.Test) error

	// Delete удаляет строку теста
	Delete(ctx context.Context, id int64) error

	// CountByBOP возвращает количество тестов BOP
	CountByBOP(ctx context.Context, bopID int64) (int64, error)

	// List возвращает страницу тестов по фильтрам и общее количество
	List(ctx context.Context, filter TestFilter, page domain.PageRequest) ([]domain.Test, int64, error)
}

// EquipmentRepository определяет операции с клапанами и превенторами
//
//go:generate mockery --name=EquipmentRepository --output=../mocks --outpkg=mocks --filename=equipment_repository_mock.go
type EquipmentRepository interface {
	// GetValves возвращает клапаны из ids, принадлежащие BOP
	GetValves(ctx context.Context, bopID int64, ids []int64) ([]domain.Valve, error)

	// GetPreventers возвращает превенторы из ids, принадлежащие BOP
	GetPreventers(ctx context.Context, bopID int64, ids []int64) ([]domain.Preventer, error)

	// LinkToTest привязывает клапаны и превенторы к тесту
	LinkToTest(ctx context.Context, testID int64, valveIDs, preventerIDs []int64) error

	// UnlinkTest отвязывает всё оборудование от теста
	UnlinkTest(ctx context.Context, testID int64) error

	// ValveAcronyms возвращает уникальные акронимы клапанов
	ValveAcronyms(ctx context.Context) ([]string, error)

	// PreventerAcronyms возвращает уникальные акронимы превенторов
	PreventerAcronyms(ctx context.Context) ([]string, error)
}

// UserRepository определяет операции с пользователями
//
//go:generate mockery --name=UserRepository --output=../mocks --outpkg=mocks --filename=user_repository_mock.go
type UserRepository interface {
	// Create создаёт пользователя
	Create(ctx context.Context, user *domain.User) error

	// GetByID возвращает пользователя по ID
	GetByID(ctx context.Context, id int64) (*domain.User, error)

	// GetByEmail возвращает пользователя по email
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}
