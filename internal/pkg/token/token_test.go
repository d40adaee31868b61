package token_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/service-directory/internal/pkg/token"
)

func TestManager_IssueAndVerify(t *testing.T) {
	m := token.NewManager("test-secret", time.Hour)

	signed, err := m.Issue(42, "user@example.com")
	assert.NoError(t, err)
	assert.NotEmpty(t, signed)

	claims, err := m.Verify(signed)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.True(t, claims.ExpiresAt.After(time.Now()))
}

func TestManager_Verify(t *testing.T) {
	m := token.NewManager("test-secret", time.Hour)

	t.Run("garbage token", func(t *testing.T) {
		_, err := m.Verify("not.a.token")
		assert.Error(t, err)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := token.NewManager("other-secret", time.Hour)
		signed, err := other.Issue(1, "user@example.com")
		assert.NoError(t, err)

		_, err = m.Verify(signed)
		assert.Error(t, err)
	})

	t.Run("expired token", func(t *testing.T) {
		expired := token.NewManager("test-secret", -time.Minute)
		signed, err := expired.Issue(1, "user@example.com")
		assert.NoError(t, err)

		_, err = m.Verify(signed)
		assert.Error(t, err)
	})
}
