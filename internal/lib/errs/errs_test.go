package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindsUnwrap(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		err  *Error
		kind error
	}{
		{name: "not found", err: NotFound("event not found"), kind: ErrNotFound},
		{name: "authorization", err: Authorization("forbidden"), kind: ErrAuthorization},
		{name: "conflict", err: Conflict("already registered"), kind: ErrConflict},
		{name: "policy", err: Policy("too late"), kind: ErrPolicy},
		{name: "validation", err: Validation("bad input"), kind: ErrValidation},
		{name: "unauthenticated", err: Unauthenticated("login required"), kind: ErrUnauthenticated},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			wrapped := fmt.Errorf("services.op: %w", tc.err)

			assert.ErrorIs(t, wrapped, tc.kind)
			assert.ErrorIs(t, wrapped, tc.err)
			assert.Equal(t, tc.err.Msg, Message(wrapped, "fallback"))
		})
	}
}

func TestMessageFallback(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "fallback", Message(errors.New("db is down"), "fallback"))
}
