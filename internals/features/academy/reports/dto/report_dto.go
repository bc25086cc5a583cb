// internals/features/academy/reports/dto/report_dto.go
package dto

import "fmt"

/* ===================== RESULT ===================== */

// Result is either a payload (Found) or a descriptive not-found message.
// An empty filter match is never an error.
type Result[T any] struct {
	Found   bool   `json:"found"`
	Message string `json:"message,omitempty"`
	Data    T      `json:"data"`
}

func NewFound[T any](data T) Result[T] {
	return Result[T]{Found: true, Data: data}
}

func NewNotFound[T any](format string, args ...any) Result[T] {
	return Result[T]{Message: fmt.Sprintf(format, args...)}
}

/* ===================== ROWS ===================== */

type StudentAverage struct {
	StudentID   uint    `gorm:"column:student_id"   json:"-"`
	StudentName string  `gorm:"column:student_name" json:"student"`
	AvgGrade    float64 `gorm:"column:avg_grade"    json:"avg_grade"`
}

type GroupAverage struct {
	GroupID   uint    `gorm:"column:group_id"   json:"-"`
	GroupName string  `gorm:"column:group_name" json:"group"`
	AvgGrade  float64 `gorm:"column:avg_grade"  json:"avg_grade"`
}

type StudentGrade struct {
	StudentName string  `gorm:"column:student_name" json:"student"`
	Grade       float64 `gorm:"column:grade"        json:"grade"`
}

type Average struct {
	AvgGrade float64 `json:"avg_grade"`
}

/* ===================== REQUESTS (query string) ===================== */

type SubjectQuery struct {
	Subject string `query:"subject" validate:"required,max=120"`
}

func (q SubjectQuery) Params() []string { return []string{q.Subject} }

type TeacherQuery struct {
	Teacher string `query:"teacher" validate:"required,max=120"`
}

func (q TeacherQuery) Params() []string { return []string{q.Teacher} }

type GroupQuery struct {
	Group string `query:"group" validate:"required,max=120"`
}

func (q GroupQuery) Params() []string { return []string{q.Group} }

type StudentQuery struct {
	Student string `query:"student" validate:"required,max=120"`
}

func (q StudentQuery) Params() []string { return []string{q.Student} }

type GroupSubjectQuery struct {
	Group   string `query:"group"   validate:"required,max=120"`
	Subject string `query:"subject" validate:"required,max=120"`
}

func (q GroupSubjectQuery) Params() []string { return []string{q.Group, q.Subject} }

type StudentTeacherQuery struct {
	Student string `query:"student" validate:"required,max=120"`
	Teacher string `query:"teacher" validate:"required,max=120"`
}

func (q StudentTeacherQuery) Params() []string { return []string{q.Student, q.Teacher} }
