package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateToken(t *testing.T) {
	const secret = "segredo-de-teste"

	tokenString, err := GenerateServiceToken(secret, "dashboard", time.Hour)
	require.NoError(t, err)

	claims, err := NewService(secret).ValidateToken(tokenString)

	require.NoError(t, err)
	assert.Equal(t, "dashboard", claims.Caller)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	tokenString, err := GenerateServiceToken("segredo-a", "dashboard", time.Hour)
	require.NoError(t, err)

	_, err = NewService("segredo-b").ValidateToken(tokenString)

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_Expired(t *testing.T) {
	tokenString, err := GenerateServiceToken("segredo", "dashboard", -time.Minute)
	require.NoError(t, err)

	_, err = NewService("segredo").ValidateToken(tokenString)

	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateToken_Garbage(t *testing.T) {
	_, err := NewService("segredo").ValidateToken("não é um token")

	assert.ErrorIs(t, err, ErrInvalidToken)
}
