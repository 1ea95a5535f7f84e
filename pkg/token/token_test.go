package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateJWT(t *testing.T) {
	tok, err := GenerateJWT(7, "SCORER", "test-secret", 10)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := ValidateJWT(tok, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "SCORER", claims.Role)
	assert.Equal(t, "pitchside", claims.Issuer)
}

func TestValidateJWTRejectsWrongSecret(t *testing.T) {
	tok, err := GenerateJWT(7, "ADMIN", "test-secret", 10)
	require.NoError(t, err)

	_, err = ValidateJWT(tok, "other-secret")
	assert.Error(t, err)
}

func TestValidateJWTRejectsExpired(t *testing.T) {
	tok, err := GenerateJWT(7, "ADMIN", "test-secret", -1)
	require.NoError(t, err)

	_, err = ValidateJWT(tok, "test-secret")
	assert.EqualError(t, err, "token has expired")
}

func TestValidateJWTRejectsEmptyInput(t *testing.T) {
	_, err := ValidateJWT("", "test-secret")
	assert.Error(t, err)

	_, err = ValidateJWT("not-a-token", "")
	assert.Error(t, err)
}
