package response

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"eventHub/internal/lib/errs"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFor(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "not found", err: errs.NotFound("event not found"), expected: http.StatusNotFound},
		{name: "unauthenticated", err: errs.Unauthenticated("login required"), expected: http.StatusUnauthorized},
		{name: "authorization", err: errs.Authorization("forbidden"), expected: http.StatusForbidden},
		{name: "conflict", err: errs.Conflict("no seats"), expected: http.StatusConflict},
		{name: "policy", err: errs.Policy("too late"), expected: http.StatusUnprocessableEntity},
		{name: "validation", err: errs.Validation("bad"), expected: http.StatusBadRequest},
		{name: "wrapped kind", err: fmt.Errorf("op: %w", errs.Conflict("dup")), expected: http.StatusConflict},
		{name: "unknown", err: errors.New("boom"), expected: http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.expected, StatusFor(tc.err))
		})
	}
}

func TestValidationError(t *testing.T) {
	t.Parallel()

	type request struct {
		Email  string `validate:"required,email"`
		Action string `validate:"required,oneof=pay cancel"`
	}

	err := validator.New().Struct(request{Email: "nope", Action: "refund"})
	require.Error(t, err)

	var validateErr validator.ValidationErrors
	require.True(t, errors.As(err, &validateErr))

	resp := ValidationError(validateErr)

	assert.Equal(t, StatusError, resp.Status)
	assert.Contains(t, resp.Error, "field Email is not a valid email")
	assert.Contains(t, resp.Error, "field Action must be one of [pay cancel]")
}
