package controller_test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"academy_backend/internals/databases/dbtest"
	"academy_backend/internals/features/academy/main/dto"
	"academy_backend/internals/features/academy/main/route"
	helper "academy_backend/internals/helpers"
)

type listBody[T any] struct {
	Success    bool              `json:"success"`
	Data       []T               `json:"data"`
	Pagination helper.Pagination `json:"pagination"`
}

func newApp(t *testing.T) (*fiber.App, *dbtest.Fixture) {
	t.Helper()
	db := dbtest.Open(t)
	app := fiber.New()
	route.AcademyRoutes(app.Group("/api"), db)
	return app, dbtest.NewFixture(t, db)
}

func getJSON[T any](t *testing.T, app *fiber.App, target string) (int, listBody[T]) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	if err != nil {
		t.Fatalf("GET %s: %v", target, err)
	}
	defer resp.Body.Close()

	var body listBody[T]
	if resp.StatusCode == fiber.StatusOK {
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			t.Fatalf("decode %s: %v", target, err)
		}
	}
	return resp.StatusCode, body
}

func TestListGroupsPaginates(t *testing.T) {
	app, f := newApp(t)
	for _, name := range []string{"Group 3", "Group 1", "Group 2"} {
		f.Group(name)
	}

	status, body := getJSON[dto.GroupResponse](t, app, "/api/academy/groups/list?page=2&per_page=2")
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if len(body.Data) != 1 || body.Data[0].Name != "Group 3" {
		t.Fatalf("unexpected page %+v", body.Data)
	}
	pg := body.Pagination
	if pg.Total != 3 || pg.TotalPages != 2 || pg.Count != 1 || pg.HasNext || !pg.HasPrev {
		t.Fatalf("unexpected pagination %+v", pg)
	}
}

func TestListStudentsFiltersByGroup(t *testing.T) {
	app, f := newApp(t)
	g1 := f.Group("Group 1")
	g2 := f.Group("Group 2")
	f.Student("Zoe", g1)
	f.Student("Adam", g1)
	f.Student("Ben", g2)

	status, body := getJSON[dto.StudentResponse](t, app, "/api/academy/students/list?group_id=1")
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if len(body.Data) != 2 || body.Data[0].Name != "Adam" || body.Data[1].Name != "Zoe" {
		t.Fatalf("unexpected students %+v", body.Data)
	}
	if body.Data[0].GroupName != "Group 1" {
		t.Fatalf("expected preloaded group name, got %q", body.Data[0].GroupName)
	}

	if status, _ := getJSON[dto.StudentResponse](t, app, "/api/academy/students/list?group_id=abc"); status != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for bad group_id, got %d", status)
	}
}

func TestListSubjectsFiltersByTeacher(t *testing.T) {
	app, f := newApp(t)
	jl := f.Teacher("Jennifer Lane")
	other := f.Teacher("Other")
	f.Subject("Math", jl)
	f.Subject("Art", jl)
	f.Subject("Music", other)

	status, body := getJSON[dto.SubjectResponse](t, app, "/api/academy/subjects/list?teacher_id=1")
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if len(body.Data) != 2 || body.Data[0].Name != "Art" || body.Data[0].TeacherName != "Jennifer Lane" {
		t.Fatalf("unexpected subjects %+v", body.Data)
	}

	_, all := getJSON[dto.SubjectResponse](t, app, "/api/academy/subjects/list")
	if all.Pagination.Total != 3 {
		t.Fatalf("expected 3 subjects, got %d", all.Pagination.Total)
	}
}

func TestListTeachersEmpty(t *testing.T) {
	app, _ := newApp(t)

	status, body := getJSON[dto.TeacherResponse](t, app, "/api/academy/teachers/list")
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if len(body.Data) != 0 || body.Pagination.Total != 0 || body.Pagination.TotalPages != 1 {
		t.Fatalf("unexpected body %+v", body)
	}
}

func TestParseIDFilter(t *testing.T) {
	tests := []struct {
		raw     string
		id      uint
		set, ok bool
	}{
		{"", 0, false, true},
		{" 7 ", 7, true, true},
		{"0", 0, true, false},
		{"-1", 0, true, false},
		{"x", 0, true, false},
	}
	for _, tt := range tests {
		id, set, ok := dto.ParseIDFilter(tt.raw)
		if id != tt.id || set != tt.set || ok != tt.ok {
			t.Fatalf("ParseIDFilter(%q) = %d, %v, %v", tt.raw, id, set, ok)
		}
	}
}
