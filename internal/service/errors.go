package service

import (
	"errors"
	"fmt"
	"log"

	"challengeHub/internal/repository"
)

var (
	ErrValidation   = errors.New("validation failed")
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("forbidden")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
)

// Error carries the user-facing message of a failed operation next to its kind.
type Error struct {
	Kind    error
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Kind}
}

func validationError(message string) error {
	return &Error{Kind: ErrValidation, Message: message}
}

func notFoundError(message string) error {
	return &Error{Kind: ErrNotFound, Message: message}
}

func forbiddenError(message string) error {
	return &Error{Kind: ErrForbidden, Message: message}
}

func conflictError(message string) error {
	return &Error{Kind: ErrConflict, Message: message}
}

// translate maps repository sentinels onto service kinds; anything else is logged and
// wrapped with op as an internal failure.
func translate(op string, err error, notFoundMessage string) error {
	var svcErr *Error
	switch {
	case errors.As(err, &svcErr):
		return err
	case errors.Is(err, repository.ErrNotFound):
		return &Error{Kind: ErrNotFound, Message: notFoundMessage, Err: err}
	default:
		log.Printf("%s: %v", op, err)
		return fmt.Errorf("%s: %w", op, err)
	}
}
