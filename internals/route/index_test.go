package routes

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"academy_backend/internals/databases/dbtest"
	"academy_backend/internals/middlewares"
)

func do(t *testing.T, app *fiber.App, target string, header map[string]string) (int, string) {
	t.Helper()
	req := httptest.NewRequest("GET", target, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("GET %s: %v", target, err)
	}
	defer resp.Body.Close()
	b, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(b)
}

func TestHealth(t *testing.T) {
	app := NewApp()
	SetupRoutes(app, dbtest.Open(t), Options{})

	if status, body := do(t, app, "/health", nil); status != fiber.StatusOK || body != "ok" {
		t.Fatalf("unexpected /health: %d %q", status, body)
	}
	if status, _ := do(t, app, "/health/db", nil); status != fiber.StatusOK {
		t.Fatalf("unexpected /health/db status %d", status)
	}
}

func TestApiIsPublicWithoutSecret(t *testing.T) {
	app := NewApp()
	SetupRoutes(app, dbtest.Open(t), Options{})

	// empty database: the report route is mounted and answers not-found
	if status, _ := do(t, app, "/api/reports/top-students", nil); status != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", status)
	}
	if status, _ := do(t, app, "/api/academy/groups/list", nil); status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
}

func TestApiRequiresTokenWithSecret(t *testing.T) {
	app := NewApp()
	SetupRoutes(app, dbtest.Open(t), Options{JWTSecret: "s3cret"})

	if status, _ := do(t, app, "/api/academy/groups/list", nil); status != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", status)
	}
	if status, _ := do(t, app, "/health", nil); status != fiber.StatusOK {
		t.Fatalf("health must stay public, got %d", status)
	}
}

func TestMiddlewaresSetRequestID(t *testing.T) {
	app := NewApp()
	middlewares.SetupMiddlewares(app, middlewares.Options{CORSOrigins: "*", RateLimit: 10})
	SetupRoutes(app, dbtest.Open(t), Options{})

	req := httptest.NewRequest("GET", "/health", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("GET /health: %v", err)
	}
	resp.Body.Close()
	if resp.Header.Get(middlewares.RequestIDHeader) == "" {
		t.Fatal("expected a generated request id")
	}

	req = httptest.NewRequest("GET", "/health", nil)
	req.Header.Set(middlewares.RequestIDHeader, "abc-123")
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("GET /health: %v", err)
	}
	resp.Body.Close()
	if got := resp.Header.Get(middlewares.RequestIDHeader); got != "abc-123" {
		t.Fatalf("expected echoed request id, got %q", got)
	}
}
