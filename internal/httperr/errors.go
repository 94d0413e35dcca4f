package httperr

import (
	"errors"
	"fmt"
)

// ValidationError cobre campos ausentes/malformados e referências
// inexistentes. InvalidGames lista os IDs de jogos rejeitados numa compra.
type ValidationError struct {
	Code         string
	Message      string
	InvalidGames []uint
}

func (e *ValidationError) Error() string {
	if len(e.InvalidGames) > 0 {
		return fmt.Sprintf("%s: %v", e.Code, e.InvalidGames)
	}
	return e.Code
}

type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return e.Entity + "_not_found"
}

type ForbiddenError struct {
	Code string
}

func (e *ForbiddenError) Error() string {
	return e.Code
}

type UnauthorizedError struct {
	Code string
}

func (e *UnauthorizedError) Error() string {
	return e.Code
}

type ConflictError struct {
	Code    string
	Message string
}

func (e *ConflictError) Error() string {
	return e.Code
}

// StorageError embrulha falhas inesperadas do banco. A causa nunca vai para o cliente.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func ErrValidation(code, message string) error {
	return &ValidationError{Code: code, Message: message}
}

func ErrInvalidGames(ids []uint) error {
	return &ValidationError{
		Code:         "invalid_games",
		Message:      "Um ou mais jogos informados não existem.",
		InvalidGames: ids,
	}
}

func ErrNotFound(entity string) error {
	return &NotFoundError{Entity: entity}
}

func ErrForbidden(code string) error {
	return &ForbiddenError{Code: code}
}

func ErrUnauthorized(code string) error {
	return &UnauthorizedError{Code: code}
}

func ErrConflict(code, message string) error {
	return &ConflictError{Code: code, Message: message}
}

func ErrStorage(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func IsForbidden(err error) bool {
	var fe *ForbiddenError
	return errors.As(err, &fe)
}

func IsConflict(err error) bool {
	var ce *ConflictError
	return errors.As(err, &ce)
}
