package domain

import "context"

// BOPService - интерфейс бизнес-логики учёта BOP, тестов и пользователей
//
//go:generate mockery --name=BOPService --output=../mocks --outpkg=mocks --filename=bop_service_mock.go
type BOPService interface {
	// CreateBOP создаёт BOP вместе с клапанами и превенторами в одной транзакции
	CreateBOP(ctx context.Context, input *CreateBOPInput) (*BOP, error)

	// GetBOP возвращает BOP с оборудованием
	GetBOP(ctx context.Context, id int64) (*BOP, error)

	// DeleteBOP удаляет BOP, если на него не ссылаются тесты
	DeleteBOP(ctx context.Context, id int64) error

	// ListBOPs ищет BOP по подстроке sonda с пагинацией
	ListBOPs(ctx context.Context, input *ListBOPsInput) (*Page[BOP], error)

	// CreateTest создаёт тест по оборудованию одного BOP
	CreateTest(ctx context.Context, input *CreateTestInput) (*Test, error)

	// GetTest возвращает тест с проверенным оборудованием
	GetTest(ctx context.Context, id int64) (*Test, error)

	// DeleteTest удаляет неодобренный тест и отвязывает оборудование
	DeleteTest(ctx context.Context, id int64) error

	// ListTests возвращает тесты по фильтрам status/bop_id/aprovador_id
	ListTests(ctx context.Context, input *ListTestsInput) (*Page[Test], error)

	// ApproveTest одобряет тест от имени пользователя
	ApproveTest(ctx context.Context, input *ApproveTestInput) (*Test, error)

	// ListValveAcronyms возвращает уникальные акронимы клапанов
	ListValveAcronyms(ctx context.Context) ([]string, error)

	// ListPreventerAcronyms возвращает уникальные акронимы превенторов
	ListPreventerAcronyms(ctx context.Context) ([]string, error)

	// ListValvesBySonda возвращает клапаны сонды
	ListValvesBySonda(ctx context.Context, sonda string) ([]EquipmentItem, error)

	// ListPreventersBySonda возвращает превенторы сонды
	ListPreventersBySonda(ctx context.Context, sonda string) ([]EquipmentItem, error)

	// Register регистрирует пользователя
	Register(ctx context.Context, input *RegisterInput) (*User, error)

	// Login проверяет пароль и выдаёт access token
	Login(ctx context.Context, input *LoginInput) (*LoginResult, error)

	// WhoAmI возвращает пользователя по id из токена
	WhoAmI(ctx context.Context, userID int64) (*User, error)

	// ForecastByCoordinates возвращает прогноз погоды по координатам
	ForecastByCoordinates(ctx context.Context, lat, lon float64) (*Forecast, error)

	// ForecastByBOP возвращает прогноз погоды по координатам сонды
	ForecastByBOP(ctx context.Context, bopID int64) (*Forecast, error)
}

// ForecastProvider - внешний сервис прогноза погоды
//
//go:generate mockery --name=ForecastProvider --output=../mocks --outpkg=mocks --filename=forecast_provider_mock.go
type ForecastProvider interface {
	Forecast(ctx context.Context, lat, lon float64) (*Forecast, error)
}
