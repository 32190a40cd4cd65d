package e

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestSentinelHierarchy(t *testing.T) {
	t.Parallel()

	if !errors.Is(ErrThreadNotFound, ErrNotFound) {
		t.Fatalf("ErrThreadNotFound must match ErrNotFound")
	}
	if !errors.Is(ErrInvalidCoordinate, ErrValidation) {
		t.Fatalf("ErrInvalidCoordinate must match ErrValidation")
	}
	if !errors.Is(Validation("text", "required"), ErrValidation) {
		t.Fatalf("Validation() must match ErrValidation")
	}
}

func TestWrapError(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	cases := []struct {
		name string
		in   error
		want error
	}{
		{"deadline", context.DeadlineExceeded, ErrDeadline},
		{"canceled", fmt.Errorf("x: %w", context.Canceled), ErrCanceled},
		{"unique", &pgconn.PgError{Code: "23505"}, ErrConflict},
		{"check", &pgconn.PgError{Code: "23514"}, ErrValidation},
		{"other pg", &pgconn.PgError{Code: "42P01"}, ErrInternal},
		{"no rows", pgx.ErrNoRows, ErrNotFound},
		{"thread", ErrThreadNotFound, ErrNotFound},
		{"already canceled", fmt.Errorf("memory: %w", ErrCanceled), ErrCanceled},
		{"conflict", fmt.Errorf("report: %w", ErrConflict), ErrConflict},
		{"unknown", errors.New("boom"), ErrInternal},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := WrapError(ctx, "op", tc.in)
			if !errors.Is(got, tc.want) {
				t.Fatalf("WrapError(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}

	if got := WrapError(ctx, "op", errors.New("redis: connection refused")); !strings.Contains(got.Error(), "connection refused") {
		t.Fatalf("WrapError dropped the cause: %v", got)
	}

	if WrapError(ctx, "op", nil) != nil {
		t.Fatalf("nil error must stay nil")
	}
}
