package auth

import (
	"testing"
	"time"

	"eventHub/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndParse(t *testing.T) {
	t.Parallel()

	tokens := NewTokens("secret", time.Hour)
	user := &models.User{ID: 42, Role: models.RoleOrganizer}

	raw, err := tokens.Issue(user)
	require.NoError(t, err)

	claims, err := tokens.Parse(raw)
	require.NoError(t, err)

	id, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
	assert.Equal(t, models.RoleOrganizer, claims.Role)
}

func TestParseRejectsForeignAndExpiredTokens(t *testing.T) {
	t.Parallel()

	user := &models.User{ID: 7, Role: models.RoleUser}

	raw, err := NewTokens("other-secret", time.Hour).Issue(user)
	require.NoError(t, err)

	_, err = NewTokens("secret", time.Hour).Parse(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)

	expiring := NewTokens("secret", time.Minute)
	expiring.now = func() time.Time { return time.Now().Add(-time.Hour) }
	raw, err = expiring.Issue(user)
	require.NoError(t, err)

	_, err = NewTokens("secret", time.Minute).Parse(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = NewTokens("secret", time.Minute).Parse("not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestPassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("correct horse")
	require.NoError(t, err)

	assert.True(t, CheckPassword(hash, "correct horse"))
	assert.False(t, CheckPassword(hash, "battery staple"))
}
