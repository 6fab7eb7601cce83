package storage

import "errors"

// Storage layer errors
var (
	// ErrNotFound возвращается когда запрашиваемый ресурс не найден
	ErrNotFound = errors.New("resource not found")

	// ErrAlreadyExists возвращается при нарушении уникальности
	ErrAlreadyExists = errors.New("resource already exists")

	// ErrReferentialIntegrity возвращается при нарушении внешнего ключа
	ErrReferentialIntegrity = errors.New("referential integrity violation")

	// ErrConflict возвращается когда строка изменилась между чтением и записью
	ErrConflict = errors.New("data conflict")
)

const (
	// UniqueViolation is a PostgreSQL error code for unique constraint violations.
	UniqueViolation = "23505"

	// ForeignKeyViolation is a PostgreSQL error code for foreign key violations.
	ForeignKeyViolation = "23503"
)
