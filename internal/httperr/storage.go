package httperr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Postgres SQLSTATE codes
const (
	pgUniqueViolation       = "23505"
	pgForeignKeyViolation   = "23503"
	pgInvalidTextRepr       = "22P02"
	pgInvalidDatetimeFormat = "22007"
	pgDatetimeOverflow      = "22008"
	pgStringTruncation      = "22001"
	pgNumericOutOfRange     = "22003"
)

func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	return false
}

func IsForeignKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgForeignKeyViolation
	}
	return false
}

// IsMalformedValue detecta valores que o banco recusou por formato/tamanho.
func IsMalformedValue(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	switch pgErr.Code {
	case pgInvalidTextRepr, pgInvalidDatetimeFormat, pgDatetimeOverflow,
		pgStringTruncation, pgNumericOutOfRange:
		return true
	}
	return false
}

func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// Classify converte erros de armazenamento em erros de negócio.
// Erros desconhecidos são devolvidos sem alteração.
func Classify(err error, duplicateCode string) error {
	switch {
	case err == nil:
		return nil
	case IsDuplicateKey(err):
		return ErrConflict(duplicateCode)
	case IsMalformedValue(err):
		return ErrBadRequest("invalid_body")
	}
	return err
}
