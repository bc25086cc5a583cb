package helper

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

func TestRoundTo(t *testing.T) {
	tests := []struct {
		in     float64
		places int
		want   float64
	}{
		{81.2345, 2, 81.23},
		{81.2351, 2, 81.24},
		{79.999, 2, 80},
		{-1.005, 1, -1},
		{60, 2, 60},
		{2.675, 2, 2.68},
		{1.005, 2, 1},
	}
	for _, tt := range tests {
		if got := RoundTo(tt.in, tt.places); got != tt.want {
			t.Fatalf("RoundTo(%v, %d) = %v, want %v", tt.in, tt.places, got, tt.want)
		}
	}
}

func TestResolvePaging(t *testing.T) {
	app := fiber.New()
	var got Paging
	app.Get("/", func(c *fiber.Ctx) error {
		got = ResolvePaging(c, 20, 50)
		return nil
	})

	tests := []struct {
		url  string
		want Paging
	}{
		{"/", Paging{Page: 1, PerPage: 20, Offset: 0, Limit: 20}},
		{"/?page=3&per_page=10", Paging{Page: 3, PerPage: 10, Offset: 20, Limit: 10}},
		{"/?page=-2&limit=500", Paging{Page: 1, PerPage: 50, Offset: 0, Limit: 50}},
	}
	for _, tt := range tests {
		if _, err := app.Test(httptest.NewRequest("GET", tt.url, nil)); err != nil {
			t.Fatalf("request %s: %v", tt.url, err)
		}
		if got != tt.want {
			t.Fatalf("%s: got %+v, want %+v", tt.url, got, tt.want)
		}
	}
}

func TestBuildPaginationFromPage(t *testing.T) {
	p := BuildPaginationFromPage(45, 2, 20)
	if p.TotalPages != 3 || !p.HasNext || !p.HasPrev {
		t.Fatalf("unexpected pagination %+v", p)
	}

	empty := BuildPaginationFromPage(0, 1, 20)
	if empty.TotalPages != 1 || empty.HasNext {
		t.Fatalf("unexpected empty pagination %+v", empty)
	}
}

func TestValidationError(t *testing.T) {
	type input struct {
		Subject string `validate:"required"`
	}
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return ValidationError(c, validator.New().Struct(input{}))
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", resp.StatusCode)
	}

	raw, _ := io.ReadAll(resp.Body)
	var body ErrorResponse
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got := body.Errors["Subject"]; len(got) != 1 || got[0] != "required" {
		t.Fatalf("expected Subject=[required], got %v", body.Errors)
	}
}

func TestFromFiberError(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: FromFiberError})
	app.Get("/boom", func(c *fiber.Ctx) error {
		return errors.New("db password leaked")
	})

	tests := []struct {
		path   string
		status int
		code   string
	}{
		{"/missing", fiber.StatusNotFound, "NOT_FOUND"},
		{"/boom", fiber.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tt := range tests {
		resp, err := app.Test(httptest.NewRequest("GET", tt.path, nil))
		if err != nil {
			t.Fatalf("request %s: %v", tt.path, err)
		}
		var body ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			t.Fatalf("decode %s: %v", tt.path, err)
		}
		if resp.StatusCode != tt.status || body.ErrorCode != tt.code || body.Success {
			t.Fatalf("%s: unexpected %d %+v", tt.path, resp.StatusCode, body)
		}
		if body.Message == "db password leaked" {
			t.Fatal("internal error message must not be exposed")
		}
	}
}
