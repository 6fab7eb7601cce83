package gorm

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"bopLand/internal/storage"
)

// translateError приводит ошибки драйвера к ошибкам storage слоя.
// GORM открыт с TranslateError, поэтому для sqlite приходят ErrDuplicatedKey
// и ErrForeignKeyViolated, а pgconn.PgError остаётся на случай raw запросов.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return storage.ErrNotFound
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return storage.ErrAlreadyExists
	}

	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return storage.ErrReferentialIntegrity
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case storage.UniqueViolation:
			return storage.ErrAlreadyExists
		case storage.ForeignKeyViolation:
			return storage.ErrReferentialIntegrity
		}
	}

	return err
}
