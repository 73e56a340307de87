package token_adapter

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nasser0p/realestate/internal/core/domain"
	"github.com/nasser0p/realestate/internal/core/port"
)

const testSigningKey = "test-signing-key-0123456789"

func signTestToken(t *testing.T, key string, claims jwt.Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(key))
	require.NoError(t, err)
	return token
}

func TestValidateResolvesIdentity(t *testing.T) {
	svc, err := NewTokenService(testSigningKey)
	require.NoError(t, err)

	userID := uuid.New()
	token := signTestToken(t, testSigningKey, &jwtCustomClaims{
		UserID: userID,
		Role:   port.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	identity, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, userID, identity.UserID)
	assert.Equal(t, port.RoleAdmin, identity.Role)
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	svc, err := NewTokenService(testSigningKey)
	require.NoError(t, err)

	token := signTestToken(t, testSigningKey, &jwtCustomClaims{
		UserID: uuid.New(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	})

	_, err = svc.Validate(token)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestValidateRejectsWrongKey(t *testing.T) {
	svc, err := NewTokenService(testSigningKey)
	require.NoError(t, err)

	token := signTestToken(t, "some-other-key", &jwtCustomClaims{
		UserID: uuid.New(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	_, err = svc.Validate(token)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestValidateRejectsMissingUserID(t *testing.T) {
	svc, err := NewTokenService(testSigningKey)
	require.NoError(t, err)

	token := signTestToken(t, testSigningKey, &jwtCustomClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	_, err = svc.Validate(token)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestNewTokenServiceRequiresKey(t *testing.T) {
	_, err := NewTokenService("")
	assert.Error(t, err)
}
