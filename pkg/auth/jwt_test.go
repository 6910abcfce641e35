package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	manager := NewJWTManager("test-secret", 1)

	token, err := manager.GenerateToken(7, "user@shop.local", []string{"ROLE_USER"})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := manager.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, "user@shop.local", claims.Email)
	assert.Equal(t, []string{"ROLE_USER"}, claims.Roles)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	token, err := NewJWTManager("secret-a", 1).GenerateToken(1, "a@b.c", nil)
	require.NoError(t, err)

	_, err = NewJWTManager("secret-b", 1).ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	token, err := NewJWTManager("test-secret", -1).GenerateToken(1, "a@b.c", nil)
	require.NoError(t, err)

	_, err = NewJWTManager("test-secret", -1).ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	_, err := NewJWTManager("test-secret", 1).ValidateToken("not.a.jwt")
	assert.Error(t, err)
}
