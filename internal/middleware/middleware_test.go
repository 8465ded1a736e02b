package middleware

import (
	"ShareMeal-Backend/domain"
	"net/http/httptest"
	"testing"

	gojwt "github.com/golang-jwt/jwt/v4"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubJWTService struct {
	identity domain.VerifiedIdentity
	calls    int
}

func (s *stubJWTService) GenerateToken(email string, subject string) string {
	return "stub-token"
}

func (s *stubJWTService) ValidateToken(token string) (*gojwt.Token, error) {
	return nil, domain.ErrTokenInvalid
}

func (s *stubJWTService) GetIdentityByToken(token string) (domain.VerifiedIdentity, error) {
	s.calls++
	if token != "valid-token" {
		return domain.VerifiedIdentity{}, domain.ErrTokenInvalid
	}
	return s.identity, nil
}

func newProtectedApp(jwtService *stubJWTService) (*fiber.App, *domain.VerifiedIdentity) {
	app := fiber.New()
	m := NewMiddleware()

	var seen domain.VerifiedIdentity
	app.Get("/protected", m.AuthMiddleware(jwtService), func(c *fiber.Ctx) error {
		seen = c.Locals("identity").(domain.VerifiedIdentity)
		return c.SendStatus(fiber.StatusOK)
	})
	return app, &seen
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	jwtService := &stubJWTService{}
	app, _ := newProtectedApp(jwtService)

	resp, err := app.Test(httptest.NewRequest("GET", "/protected", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	// The oracle is never consulted when there is no credential at all.
	assert.Equal(t, 0, jwtService.calls)
}

func TestAuthMiddlewareMalformedHeader(t *testing.T) {
	jwtService := &stubJWTService{}
	app, _ := newProtectedApp(jwtService)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Token abc")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, 0, jwtService.calls)
}

func TestAuthMiddlewareInvalidToken(t *testing.T) {
	jwtService := &stubJWTService{}
	app, _ := newProtectedApp(jwtService)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer bad-token")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, 1, jwtService.calls)
}

func TestAuthMiddlewareAttachesIdentity(t *testing.T) {
	jwtService := &stubJWTService{
		identity: domain.VerifiedIdentity{Email: "donor@example.com", Subject: "user-1"},
	}
	app, seen := newProtectedApp(jwtService)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer valid-token")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, jwtService.identity, *seen)
}
