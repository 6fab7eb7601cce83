package gorm

import (
	"strings"

	"gorm.io/gorm"

	"bopLand/internal/domain"
	"bopLand/internal/storage"
)

// Specification сужает запрос одним условием.
// Пустой параметр означает отсутствие фильтра.
type Specification interface {
	Apply(db *gorm.DB) *gorm.DB
}

// StatusSpecification фильтрует тесты по статусу.
// APROVADO и CRIADO определяются по data_aprovacao, остальные статусы по колонке status.
type StatusSpecification struct {
	Status *domain.TestStatus
}

func (s StatusSpecification) Apply(db *gorm.DB) *gorm.DB {
	if s.Status == nil {
		return db
	}

	switch *s.Status {
	case domain.TestStatusApproved:
		return db.Where("data_aprovacao IS NOT NULL")
	case domain.TestStatusCreated:
		return db.Where("data_aprovacao IS NULL")
	default:
		return db.Where("status = ?", string(*s.Status))
	}
}

// BOPIDSpecification фильтрует тесты по bop_id
type BOPIDSpecification struct {
	BOPID *int64
}

func (s BOPIDSpecification) Apply(db *gorm.DB) *gorm.DB {
	if s.BOPID == nil {
		return db
	}
	return db.Where("bop_id = ?", *s.BOPID)
}

// ApproverIDSpecification фильтрует тесты по aprovador_id
type ApproverIDSpecification struct {
	ApproverID *int64
}

func (s ApproverIDSpecification) Apply(db *gorm.DB) *gorm.DB {
	if s.ApproverID == nil {
		return db
	}
	return db.Where("aprovador_id = ?", *s.ApproverID)
}

// SondaSpecification - регистронезависимый поиск подстроки в sonda.
// Оба операнда приводятся к нижнему регистру функцией LOWER самой БД.
type SondaSpecification struct {
	Sonda string
}

func (s SondaSpecification) Apply(db *gorm.DB) *gorm.DB {
	if s.Sonda == "" {
		return db
	}
	return db.Where("LOWER(sonda) LIKE LOWER(?) ESCAPE '\\'", "%"+escapeLike(s.Sonda)+"%")
}

// testSpecifications собирает фильтры теста в фиксированном порядке: status, bop_id, aprovador_id
func testSpecifications(filter storage.TestFilter) []Specification {
	return []Specification{
		StatusSpecification{Status: filter.Status},
		BOPIDSpecification{BOPID: filter.BOPID},
		ApproverIDSpecification{ApproverID: filter.ApproverID},
	}
}

func applySpecifications(db *gorm.DB, specs ...Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
