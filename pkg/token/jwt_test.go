package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	manager, err := NewManager("test-secret", time.Hour)
	require.NoError(t, err)

	userID := uuid.New()
	signed, err := manager.Generate(userID)
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	claims, err := manager.Validate(signed)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
}

func TestNewManager_EmptySecret(t *testing.T) {
	manager, err := NewManager("", time.Hour)
	require.Error(t, err)
	assert.Nil(t, manager)
}

func TestValidate_WrongSecret(t *testing.T) {
	manager, err := NewManager("test-secret", time.Hour)
	require.NoError(t, err)
	other, err := NewManager("other-secret", time.Hour)
	require.NoError(t, err)

	signed, err := manager.Generate(uuid.New())
	require.NoError(t, err)

	claims, err := other.Validate(signed)
	require.Error(t, err)
	assert.Nil(t, claims)
}

func TestValidate_Expired(t *testing.T) {
	manager, err := NewManager("test-secret", -time.Minute)
	require.NoError(t, err)

	signed, err := manager.Generate(uuid.New())
	require.NoError(t, err)

	claims, err := manager.Validate(signed)
	require.Error(t, err)
	assert.Nil(t, claims)
}

func TestValidate_RejectsUnsignedToken(t *testing.T) {
	manager, err := NewManager("test-secret", time.Hour)
	require.NoError(t, err)

	// Токен с alg=none не должен приниматься
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{UserID: uuid.New()})
	tokenString, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	claims, err := manager.Validate(tokenString)
	require.Error(t, err)
	assert.Nil(t, claims)
}
