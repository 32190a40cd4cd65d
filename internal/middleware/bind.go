package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"geoalert/pkg/e"
	"geoalert/pkg/validator"
)

const maxBodyBytes = 1 << 20

// BindJSON decodes exactly one JSON object from the request body, applies
// the optional setters (path parameters and the like) and validates the
// result. Every failure matches e.ErrValidation.
func BindJSON[T any](r *http.Request, set ...func(*T)) (T, error) {
	var target T

	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&target); err != nil {
		return target, fmt.Errorf("invalid JSON: %v: %w", err, e.ErrValidation)
	}
	// trailing data after the first object
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return target, fmt.Errorf("invalid JSON: trailing data: %w", e.ErrValidation)
	}

	for _, fn := range set {
		fn(&target)
	}

	if err := validator.ValidateStruct(target); err != nil {
		return target, fmt.Errorf("%v: %w", err, e.ErrValidation)
	}
	return target, nil
}
