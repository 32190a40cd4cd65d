package e

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func Wrap(message string, err error) error {
	return fmt.Errorf("%s: %w", message, err)
}

var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrValidation   = errors.New("validation failed")
	ErrInternal     = errors.New("internal error")
	ErrDeadline     = errors.New("deadline exceeded")
	ErrCanceled     = errors.New("context canceled")
	ErrUnauthorized = errors.New("unauthorized")

	// ErrThreadNotFound matches ErrNotFound via errors.Is.
	ErrThreadNotFound = fmt.Errorf("thread %w", ErrNotFound)
	// ErrInvalidCoordinate matches ErrValidation via errors.Is.
	ErrInvalidCoordinate = fmt.Errorf("invalid coordinate: %w", ErrValidation)

	// ErrDispatchDegraded is never returned to callers of a write; it tags
	// log lines and metrics when a broadcast was skipped.
	ErrDispatchDegraded = errors.New("dispatch degraded")
	ErrQueueEmpty       = errors.New("queue is empty")
)

// Validation builds an error that matches ErrValidation and names the offending field.
func Validation(field, reason string) error {
	return fmt.Errorf("%s: %s: %w", field, reason, ErrValidation)
}

func WrapError(ctx context.Context, op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w", op, ErrDeadline)
	}
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", op, ErrCanceled)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return fmt.Errorf("%s: %w", op, ErrConflict)
		case "23503", "23514":
			return fmt.Errorf("%s: %w", op, ErrValidation)
		default:
			return fmt.Errorf("%s: pg error %s: %w", op, pgErr.Code, ErrInternal)
		}
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	for _, known := range []error{ErrNotFound, ErrValidation, ErrConflict, ErrDeadline, ErrCanceled, ErrInternal} {
		if errors.Is(err, known) {
			return fmt.Errorf("%s: %w", op, err)
		}
	}
	return fmt.Errorf("%s: %w: %v", op, ErrInternal, err)
}
