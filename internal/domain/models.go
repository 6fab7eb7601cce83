package domain

import "time"

// TestStatus - статус теста BOP
type TestStatus string

const (
	TestStatusCreated   TestStatus = "CRIADO"
	TestStatusScheduled TestStatus = "AGENDADO"
	TestStatusApproved  TestStatus = "APROVADO"
	TestStatusFailed    TestStatus = "FALHO"
)

// ParseTestStatus проверяет, что строка является известным статусом
func ParseTestStatus(s string) (TestStatus, error) {
	switch status := TestStatus(s); status {
	case TestStatusCreated, TestStatusScheduled, TestStatusApproved, TestStatusFailed:
		return status, nil
	default:
		return "", ErrInvalidStatus
	}
}

// BOP - агрегат сонды с её клапанами и превенторами
type BOP struct {
	ID         int64
	Sonda      string
	Latitude   *float64
	Longitude  *float64
	Valves     []Valve
	Preventers []Preventer
}

// AddValve добавляет клапан в агрегат и проставляет обратную ссылку на BOP
func (b *BOP) AddValve(acronym string) *Valve {
	b.Valves = append(b.Valves, Valve{Acronym: acronym, BOPID: b.ID})
	return &b.Valves[len(b.Valves)-1]
}

// AddPreventer добавляет превентор в агрегат и проставляет обратную ссылку на BOP
func (b *BOP) AddPreventer(acronym string) *Preventer {
	b.Preventers = append(b.Preventers, Preventer{Acronym: acronym, BOPID: b.ID})
	return &b.Preventers[len(b.Preventers)-1]
}

// HasCoordinates сообщает, заданы ли у сонды координаты
func (b *BOP) HasCoordinates() bool {
	return b.Latitude != nil && b.Longitude != nil
}

// Valve - клапан BOP
type Valve struct {
	ID      int64
	Acronym string
	BOPID   int64
	TestID  *int64
}

// Preventer - превентор BOP
type Preventer struct {
	ID      int64
	Acronym string
	BOPID   int64
	TestID  *int64
}

// Test - тест BOP с набором проверенного оборудования
type Test struct {
	ID         int64
	Name       string
	BOPID      int64
	ApproverID *int64
	ApprovedAt *time.Time
	Status     TestStatus
	Valves     []Valve
	Preventers []Preventer
	CreatedAt  time.Time
}

// AddTestedValve связывает клапан с тестом с обеих сторон
func (t *Test) AddTestedValve(v Valve) {
	id := t.ID
	v.TestID = &id
	t.Valves = append(t.Valves, v)
}

// AddTestedPreventer связывает превентор с тестом с обеих сторон
func (t *Test) AddTestedPreventer(p Preventer) {
	id := t.ID
	p.TestID = &id
	t.Preventers = append(t.Preventers, p)
}

func (t *Test) IsApproved() bool {
	return t.Status == TestStatusApproved
}

// Approve - единственный переход статуса: CRIADO -> APROVADO
func (t *Test) Approve(approverID int64, at time.Time) {
	t.ApproverID = &approverID
	t.ApprovedAt = &at
	t.Status = TestStatusApproved
}

// User - пользователь системы; пароль хранится только в виде bcrypt хэша
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
}

// Forecast - прогноз погоды CPTEC на 7 дней
type Forecast struct {
	City      string
	State     string
	UpdatedAt string
	Days      []ForecastDay
}

// ForecastDay - прогноз на один день
type ForecastDay struct {
	Date    string
	Weather string
	MaxTemp int
	MinTemp int
	UVIndex float64
}

// Input/Output DTOs для методов сервиса

// CreateBOPInput - входные данные для создания BOP
type CreateBOPInput struct {
	Sonda      string
	Latitude   *float64
	Longitude  *float64
	Valves     []string
	Preventers []string
}

// ListBOPsInput - фильтр и страница для поиска BOP
type ListBOPsInput struct {
	Sonda string
	PageRequest
}

// CreateTestInput - входные данные для создания теста
type CreateTestInput struct {
	BOPID        int64
	Name         string
	ValveIDs     []int64
	PreventerIDs []int64
}

// ListTestsInput - фильтры и страница для списка тестов
type ListTestsInput struct {
	Status     *TestStatus
	BOPID      *int64
	ApproverID *int64
	PageRequest
}

// ApproveTestInput - входные данные для одобрения теста
type ApproveTestInput struct {
	TestID     int64
	ApproverID int64
}

// RegisterInput - входные данные регистрации
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// LoginInput - входные данные входа
type LoginInput struct {
	Email    string
	Password string
}

// LoginResult - выданный access token
type LoginResult struct {
	AccessToken string
	ExpiresAt   time.Time
}

// EquipmentItem - клапан или превентор в выдаче по сонде
type EquipmentItem struct {
	ID      int64
	Acronym string
}
