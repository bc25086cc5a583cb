package auth

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

const testSecret = "s3cret"

func sign(t *testing.T, method jwt.SigningMethod, key any, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(method, jwt.RegisteredClaims{
		Subject:   "report-viewer",
		ExpiresAt: jwt.NewNumericDate(exp),
	})
	s, err := tok.SignedString(key)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return s
}

func newApp() *fiber.App {
	app := fiber.New()
	app.Use(AuthJWT(testSecret))
	app.Get("/whoami", func(c *fiber.Ctx) error {
		return c.SendString(c.Locals(SubjectKey).(string))
	})
	return app
}

func TestAuthJWT(t *testing.T) {
	app := newApp()
	future := time.Now().Add(time.Hour)

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"missing header", "", fiber.StatusUnauthorized},
		{"wrong scheme", "Basic abc", fiber.StatusUnauthorized},
		{"valid", "Bearer " + sign(t, jwt.SigningMethodHS256, []byte(testSecret), future), fiber.StatusOK},
		{"lowercase scheme", "bearer " + sign(t, jwt.SigningMethodHS256, []byte(testSecret), future), fiber.StatusOK},
		{"wrong secret", "Bearer " + sign(t, jwt.SigningMethodHS256, []byte("other"), future), fiber.StatusUnauthorized},
		{"expired", "Bearer " + sign(t, jwt.SigningMethodHS256, []byte(testSecret), time.Now().Add(-time.Minute)), fiber.StatusUnauthorized},
		{"unsigned", "Bearer " + sign(t, jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, future), fiber.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/whoami", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("request: %v", err)
			}
			resp.Body.Close()
			if resp.StatusCode != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, resp.StatusCode)
			}
		})
	}
}
