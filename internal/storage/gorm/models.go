package gorm

import (
	"time"

	"bopLand/internal/domain"
)

// BOP - модель БД для BOP
type BOP struct {
	ID         int64       `gorm:"column:id;primaryKey;autoIncrement"`
	Sonda      string      `gorm:"column:sonda;size:140;not null;uniqueIndex:uq_bops_sonda"`
	Latitude   *float64    `gorm:"column:latitude"`
	Longitude  *float64    `gorm:"column:longitude"`
	Valves     []Valve     `gorm:"foreignKey:BOPID;constraint:OnDelete:CASCADE"`
	Preventers []Preventer `gorm:"foreignKey:BOPID;constraint:OnDelete:CASCADE"`
	Tests      []Test      `gorm:"foreignKey:BOPID;constraint:OnDelete:RESTRICT"`
}

func (BOP) TableName() string {
	return "bops"
}

// Valve - модель БД для клапана
type Valve struct {
	ID      int64  `gorm:"column:id;primaryKey;autoIncrement"`
	Acronym string `gorm:"column:acronimo;size:140;not null"`
	BOPID   int64  `gorm:"column:bop_id;not null;index"`
	TestID  *int64 `gorm:"column:teste_id;index"`
}

func (Valve) TableName() string {
	return "valvulas"
}

// Preventer - модель БД для превентора
type Preventer struct {
	ID      int64  `gorm:"column:id;primaryKey;autoIncrement"`
	Acronym string `gorm:"column:acronimo;size:140;not null"`
	BOPID   int64  `gorm:"column:bop_id;not null;index"`
	TestID  *int64 `gorm:"column:teste_id;index"`
}

func (Preventer) TableName() string {
	return "preventores"
}

// Test - модель БД для теста
type Test struct {
	ID         int64       `gorm:"column:id;primaryKey;autoIncrement"`
	Name       string      `gorm:"column:nome;size:140;not null;uniqueIndex:uq_testes_nome_bop"`
	BOPID      int64       `gorm:"column:bop_id;not null;uniqueIndex:uq_testes_nome_bop"`
	ApproverID *int64      `gorm:"column:aprovador_id;index"`
	Approver   *User       `gorm:"foreignKey:ApproverID"`
	ApprovedAt *time.Time  `gorm:"column:data_aprovacao"`
	Status     string      `gorm:"column:status;size:20;not null;default:CRIADO"`
	CreatedAt  time.Time   `gorm:"column:created_at;not null"`
	Valves     []Valve     `gorm:"foreignKey:TestID;constraint:OnDelete:SET NULL"`
	Preventers []Preventer `gorm:"foreignKey:TestID;constraint:OnDelete:SET NULL"`
}

func (Test) TableName() string {
	return "testes"
}

// User - модель БД для пользователя
type User struct {
	ID           int64  `gorm:"column:id;primaryKey;autoIncrement"`
	Name         string `gorm:"column:nome;size:140;not null"`
	Email        string `gorm:"column:email;size:255;not null;uniqueIndex:uq_usuarios_email"`
	PasswordHash string `gorm:"column:senha;not null"`
}

func (User) TableName() string {
	return "usuarios"
}

// AllModels возвращает модели в порядке создания таблиц
func AllModels() []any {
	return []any{
		&User{},
		&BOP{},
		&Test{},
		&Valve{},
		&Preventer{},
	}
}

func toDomainValves(rows []Valve) []domain.Valve {
	out := make([]domain.Valve, len(rows))
	for i, v := range rows {
		out[i] = domain.Valve{ID: v.ID, Acronym: v.Acronym, BOPID: v.BOPID, TestID: v.TestID}
	}
	return out
}

func toDomainPreventers(rows []Preventer) []domain.Preventer {
	out := make([]domain.Preventer, len(rows))
	for i, p := range rows {
		out[i] = domain.Preventer{ID: p.ID, Acronym: p.Acronym, BOPID: p.BOPID, TestID: p.TestID}
	}
	return out
}

func toDomainBOP(b *BOP) domain.BOP {
	return domain.BOP{
		ID:         b.ID,
		Sonda:      b.Sonda,
		Latitude:   b.Latitude,
		Longitude:  b.Longitude,
		Valves:     toDomainValves(b.Valves),
		Preventers: toDomainPreventers(b.Preventers),
	}
}

func toDomainTest(t *Test) domain.Test {
	return domain.Test{
		ID:         t.ID,
		Name:       t.Name,
		BOPID:      t.BOPID,
		ApproverID: t.ApproverID,
		ApprovedAt: t.ApprovedAt,
		Status:     domain.TestStatus(t.Status),
		CreatedAt:  t.CreatedAt,
		Valves:     toDomainValves(t.Valves),
		Preventers: toDomainPreventers(t.Preventers),
	}
}

func toDomainUser(u *User) *domain.User {
	return &domain.User{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
	}
}
