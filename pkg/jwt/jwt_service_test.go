package jwt

import (
	"ShareMeal-Backend/domain"
	"os"
	"path/filepath"
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newTestService(t *testing.T) JWTService {
	t.Helper()

	dir := t.TempDir()
	err := os.WriteFile(
		filepath.Join(dir, "config.yaml"),
		[]byte("JWT_SECRET: "+testSecret+"\n"),
		0644,
	)
	require.NoError(t, err)

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	return NewJWTService()
}

func signTestToken(t *testing.T, claims gojwt.MapClaims) string {
	t.Helper()
	token := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func TestGenerateAndVerifyToken(t *testing.T) {
	service := newTestService(t)

	token := service.GenerateToken("donor@example.com", "user-1")
	require.NotEmpty(t, token)

	identity, err := service.GetIdentityByToken(token)
	require.NoError(t, err)
	assert.Equal(t, domain.VerifiedIdentity{
		Email:   "donor@example.com",
		Subject: "user-1",
	}, identity)
}

func TestVerifyRejectsWrongSignature(t *testing.T) {
	service := newTestService(t)

	forged := gojwt.NewWithClaims(gojwt.SigningMethodHS256, gojwt.MapClaims{
		"email": "donor@example.com",
		"sub":   "user-1",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	signed, err := forged.SignedString([]byte("some-other-secret"))
	require.NoError(t, err)

	_, err = service.GetIdentityByToken(signed)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	service := newTestService(t)

	token := signTestToken(t, gojwt.MapClaims{
		"email": "donor@example.com",
		"sub":   "user-1",
		"exp":   time.Now().Add(-time.Hour).Unix(),
	})

	_, err := service.GetIdentityByToken(token)
	assert.ErrorIs(t, err, domain.ErrTokenExpired)
}

func TestVerifyRejectsMissingClaims(t *testing.T) {
	service := newTestService(t)

	missingEmail := signTestToken(t, gojwt.MapClaims{
		"sub": "user-1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	_, err := service.GetIdentityByToken(missingEmail)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)

	missingSubject := signTestToken(t, gojwt.MapClaims{
		"email": "donor@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	_, err = service.GetIdentityByToken(missingSubject)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	service := newTestService(t)

	_, err := service.GetIdentityByToken("not-a-token")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}
