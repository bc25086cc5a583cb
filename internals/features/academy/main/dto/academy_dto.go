// internals/features/academy/main/dto/academy_dto.go
package dto

import (
	"strconv"
	"strings"

	"academy_backend/internals/features/academy/main/model"
)

/* ===================== QUERY ===================== */

// ParseIDFilter reads an optional positive id from the query string.
// ok is false when the value is present but not a positive integer.
func ParseIDFilter(raw string) (id uint, set bool, ok bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false, true
	}
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || n == 0 {
		return 0, true, false
	}
	return uint(n), true, true
}

/* ===================== RESPONSES ===================== */

type GroupResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type TeacherResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type StudentResponse struct {
	ID        uint    `json:"id"`
	Name      string  `json:"name"`
	Email     *string `json:"email,omitempty"`
	GroupID   uint    `json:"group_id"`
	GroupName string  `json:"group_name,omitempty"`
}

type SubjectResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	TeacherID   uint   `json:"teacher_id"`
	TeacherName string `json:"teacher_name,omitempty"`
}

func FromGroupModels(rows []model.GroupModel) []GroupResponse {
	out := make([]GroupResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, GroupResponse{ID: r.ID, Name: r.Name})
	}
	return out
}

func FromTeacherModels(rows []model.TeacherModel) []TeacherResponse {
	out := make([]TeacherResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, TeacherResponse{ID: r.ID, Name: r.Name})
	}
	return out
}

func FromStudentModels(rows []model.StudentModel) []StudentResponse {
	out := make([]StudentResponse, 0, len(rows))
	for _, r := range rows {
		resp := StudentResponse{ID: r.ID, Name: r.Name, Email: r.Email, GroupID: r.GroupID}
		if r.Group != nil {
			resp.GroupName = r.Group.Name
		}
		out = append(out, resp)
	}
	return out
}

func FromSubjectModels(rows []model.SubjectModel) []SubjectResponse {
	out := make([]SubjectResponse, 0, len(rows))
	for _, r := range rows {
		resp := SubjectResponse{ID: r.ID, Name: r.Name, TeacherID: r.TeacherID}
		if r.Teacher != nil {
			resp.TeacherName = r.Teacher.Name
		}
		out = append(out, resp)
	}
	return out
}
