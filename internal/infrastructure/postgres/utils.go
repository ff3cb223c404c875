package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/tu-usuario/stockflow-api/internal/domain"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// isSerializationFailure verifica si un error es un fallo transitorio de
// serialización (40001) o deadlock (40P01); ambos se reintentan completos.
func isSerializationFailure(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "40001" || pgErr.Code == "40P01"
	}
	return false
}

// mapStorageErr traduce errores crudos de pgx a los sentinels de dominio:
// unique → ErrDuplicate, serialización/deadlock → ErrSerialization, el resto
// → ErrStorage con contexto. Los casos de uso nunca ven códigos SQLSTATE.
func mapStorageErr(op string, err error) error {
	switch {
	case isUniqueViolation(err):
		return fmt.Errorf("%w: %s", domain.ErrDuplicate, op)
	case isSerializationFailure(err):
		return fmt.Errorf("%w: %s", domain.ErrSerialization, op)
	default:
		return fmt.Errorf("%w: %s: %v", domain.ErrStorage, op, err)
	}
}
