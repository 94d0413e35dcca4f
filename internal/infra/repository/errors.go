package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/AllanOliveira2022/GameZone-sub000/internal/httperr"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

// translate converte erros do gorm/driver para a taxonomia de httperr.
// Erros que já são de domínio passam intactos.
func translate(err error, entity string) error {
	if err == nil {
		return nil
	}

	if httperr.IsNotFound(err) || httperr.IsValidation(err) ||
		httperr.IsConflict(err) || httperr.IsForbidden(err) {
		return err
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return httperr.ErrNotFound(entity)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return httperr.ErrConflict(entity+"_already_exists", "Registro duplicado.")
		case pgForeignKeyViolation:
			return httperr.ErrValidation("invalid_reference", "Referência inexistente.")
		case pgCheckViolation:
			return httperr.ErrValidation("constraint_violation", "Valor fora do permitido.")
		}
	}

	return httperr.ErrStorage(entity, err)
}

func notFoundIfNoRows(res *gorm.DB, entity string) error {
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrNotFound(entity)
	}
	return nil
}
