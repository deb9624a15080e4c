package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// Kinds of failure a workflow operation can report. Match with errors.Is.
var (
	ErrNotFound    = errors.New("not found")
	ErrInvalidRole = errors.New("invalid role")
	ErrForbidden   = errors.New("forbidden")
	ErrValidation  = errors.New("validation failed")
	ErrConflict    = errors.New("conflict")
)

// Error carries a kind and the message shown to the caller.
type Error struct {
	Kind   error
	Detail string
}

func (e *Error) Error() string {
	return e.Detail
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func notFound(entity string) error {
	return &Error{Kind: ErrNotFound, Detail: entity + " not found"}
}

func forbidden(detail string) error {
	return &Error{Kind: ErrForbidden, Detail: detail}
}

func invalid(format string, args ...interface{}) error {
	return &Error{Kind: ErrValidation, Detail: fmt.Sprintf(format, args...)}
}

func conflict(detail string) error {
	return &Error{Kind: ErrConflict, Detail: detail}
}

var constraintMarkers = []string{
	"unique constraint failed",        // sqlite
	"foreign key constraint failed",   // sqlite
	"duplicate entry",                 // mysql 1062
	"foreign key constraint fails",    // mysql 1451/1452
	"violates unique constraint",      // postgres
	"violates foreign key constraint", // postgres
}

// translateStorageError turns uniqueness and foreign-key violations into
// ErrConflict and leaves every other error untouched.
func translateStorageError(err error) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return err
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, gorm.ErrForeignKeyViolated) {
		return conflict(err.Error())
	}
	msg := strings.ToLower(err.Error())
	for _, marker := range constraintMarkers {
		if strings.Contains(msg, marker) {
			return conflict(err.Error())
		}
	}
	return err
}

// lookup loads a row by primary key and maps a missing row to ErrNotFound.
func lookup(tx *gorm.DB, dest interface{}, id uint, entity string) error {
	if err := tx.First(dest, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(entity)
		}
		return err
	}
	return nil
}
