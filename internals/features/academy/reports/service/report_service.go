// internals/features/academy/reports/service/report_service.go
package service

import (
	"context"
	"database/sql"
	"fmt"

	"gorm.io/gorm"

	"academy_backend/internals/features/academy/main/model"
	dto "academy_backend/internals/features/academy/reports/dto"
	helper "academy_backend/internals/helpers"
)

const (
	TopStudentsLimit = 5
	gradePlaces      = 2
)

// ReportService runs the read-only academy reports.
// Equal averages are ordered by student name, then id.
type ReportService struct {
	DB *gorm.DB
}

func NewReportService(db *gorm.DB) *ReportService { return &ReportService{DB: db} }

func (s *ReportService) db(ctx context.Context) *gorm.DB {
	return s.DB.WithContext(ctx)
}

// TopStudents returns the five students with the highest average over all subjects.
func (s *ReportService) TopStudents(ctx context.Context) (dto.Result[[]dto.StudentAverage], error) {
	var rows []dto.StudentAverage
	err := s.db(ctx).
		Model(&model.StudentModel{}).
		Select("students.id AS student_id, students.name AS student_name, AVG(grades.grade) AS avg_grade").
		Joins("JOIN grades ON grades.student_id = students.id").
		Group("students.id, students.name").
		Order("avg_grade DESC, students.name ASC, students.id ASC").
		Limit(TopStudentsLimit).
		Scan(&rows).Error
	if err != nil {
		return dto.Result[[]dto.StudentAverage]{}, fmt.Errorf("top students: %w", err)
	}
	if len(rows) == 0 {
		return dto.NewNotFound[[]dto.StudentAverage]("No data found for top 5 students by average grade"), nil
	}
	for i := range rows {
		rows[i].AvgGrade = helper.RoundTo(rows[i].AvgGrade, gradePlaces)
	}
	return dto.NewFound(rows), nil
}

// TopStudentInSubject returns the student with the highest average in one subject.
func (s *ReportService) TopStudentInSubject(ctx context.Context, subjectName string) (dto.Result[dto.StudentAverage], error) {
	var rows []dto.StudentAverage
	err := s.db(ctx).
		Model(&model.StudentModel{}).
		Select("students.id AS student_id, students.name AS student_name, AVG(grades.grade) AS avg_grade").
		Joins("JOIN grades ON grades.student_id = students.id").
		Joins("JOIN subjects ON subjects.id = grades.subject_id").
		Where("subjects.name = ?", subjectName).
		Group("students.id, students.name").
		Order("avg_grade DESC, students.name ASC, students.id ASC").
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return dto.Result[dto.StudentAverage]{}, fmt.Errorf("top student in subject: %w", err)
	}
	if len(rows) == 0 {
		return dto.NewNotFound[dto.StudentAverage]("No data found for top student in subject '%s'", subjectName), nil
	}
	top := rows[0]
	top.AvgGrade = helper.RoundTo(top.AvgGrade, gradePlaces)
	return dto.NewFound(top), nil
}

// GroupAveragesForSubject returns the average grade of each group in one subject,
// ordered by group name. Groups without grades in the subject are left out.
func (s *ReportService) GroupAveragesForSubject(ctx context.Context, subjectName string) (dto.Result[[]dto.GroupAverage], error) {
	var rows []dto.GroupAverage
	err := s.db(ctx).
		Model(&model.GroupModel{}).
		Select("groups.id AS group_id, groups.name AS group_name, AVG(grades.grade) AS avg_grade").
		Joins("JOIN students ON students.group_id = groups.id").
		Joins("JOIN grades ON grades.student_id = students.id").
		Joins("JOIN subjects ON subjects.id = grades.subject_id").
		Where("subjects.name = ?", subjectName).
		Group("groups.id, groups.name").
		Order("groups.name ASC, groups.id ASC").
		Scan(&rows).Error
	if err != nil {
		return dto.Result[[]dto.GroupAverage]{}, fmt.Errorf("group averages for subject: %w", err)
	}
	if len(rows) == 0 {
		return dto.NewNotFound[[]dto.GroupAverage]("No data found for average grade in groups for subject '%s'", subjectName), nil
	}
	for i := range rows {
		rows[i].AvgGrade = helper.RoundTo(rows[i].AvgGrade, gradePlaces)
	}
	return dto.NewFound(rows), nil
}

// OverallAverage returns the mean of every grade in the table.
func (s *ReportService) OverallAverage(ctx context.Context) (dto.Result[dto.Average], error) {
	avg, err := scanAverage(s.db(ctx).Model(&model.GradeModel{}))
	if err != nil {
		return dto.Result[dto.Average]{}, fmt.Errorf("overall average: %w", err)
	}
	if !avg.Valid {
		return dto.NewNotFound[dto.Average]("No data found for average grade across all records"), nil
	}
	return dto.NewFound(dto.Average{AvgGrade: helper.RoundTo(avg.Float64, gradePlaces)}), nil
}

// SubjectsByTeacher lists the courses a teacher reads, ordered by name.
func (s *ReportService) SubjectsByTeacher(ctx context.Context, teacherName string) (dto.Result[[]string], error) {
	var names []string
	err := s.db(ctx).
		Model(&model.SubjectModel{}).
		Joins("JOIN teachers ON teachers.id = subjects.teacher_id").
		Where("teachers.name = ?", teacherName).
		Order("subjects.name ASC, subjects.id ASC").
		Pluck("subjects.name", &names).Error
	if err != nil {
		return dto.Result[[]string]{}, fmt.Errorf("subjects by teacher: %w", err)
	}
	if len(names) == 0 {
		return dto.NewNotFound[[]string]("No courses found for teacher '%s'", teacherName), nil
	}
	return dto.NewFound(names), nil
}

// StudentsInGroup lists the students of a group, ordered by name.
func (s *ReportService) StudentsInGroup(ctx context.Context, groupName string) (dto.Result[[]string], error) {
	var names []string
	err := s.db(ctx).
		Model(&model.StudentModel{}).
		Joins("JOIN groups ON groups.id = students.group_id").
		Where("groups.name = ?", groupName).
		Order("students.name ASC, students.id ASC").
		Pluck("students.name", &names).Error
	if err != nil {
		return dto.Result[[]string]{}, fmt.Errorf("students in group: %w", err)
	}
	if len(names) == 0 {
		return dto.NewNotFound[[]string]("No students found in group '%s'", groupName), nil
	}
	return dto.NewFound(names), nil
}

// GradesInGroupForSubject lists every grade the students of a group got in a subject,
// ordered by student name then date received.
func (s *ReportService) GradesInGroupForSubject(ctx context.Context, groupName, subjectName string) (dto.Result[[]dto.StudentGrade], error) {
	var rows []dto.StudentGrade
	err := s.db(ctx).
		Model(&model.GradeModel{}).
		Select("students.name AS student_name, grades.grade AS grade").
		Joins("JOIN students ON students.id = grades.student_id").
		Joins("JOIN groups ON groups.id = students.group_id").
		Joins("JOIN subjects ON subjects.id = grades.subject_id").
		Where("groups.name = ? AND subjects.name = ?", groupName, subjectName).
		Order("students.name ASC, students.id ASC, grades.date_received ASC, grades.id ASC").
		Scan(&rows).Error
	if err != nil {
		return dto.Result[[]dto.StudentGrade]{}, fmt.Errorf("grades in group for subject: %w", err)
	}
	if len(rows) == 0 {
		return dto.NewNotFound[[]dto.StudentGrade]("No grades found for group '%s' in subject '%s'", groupName, subjectName), nil
	}
	for i := range rows {
		rows[i].Grade = helper.RoundTo(rows[i].Grade, gradePlaces)
	}
	return dto.NewFound(rows), nil
}

// TeacherAverage returns the mean of all grades given in the teacher's subjects.
func (s *ReportService) TeacherAverage(ctx context.Context, teacherName string) (dto.Result[dto.Average], error) {
	avg, err := scanAverage(s.db(ctx).
		Model(&model.GradeModel{}).
		Joins("JOIN subjects ON subjects.id = grades.subject_id").
		Joins("JOIN teachers ON teachers.id = subjects.teacher_id").
		Where("teachers.name = ?", teacherName))
	if err != nil {
		return dto.Result[dto.Average]{}, fmt.Errorf("teacher average: %w", err)
	}
	if !avg.Valid {
		return dto.NewNotFound[dto.Average]("No data found for average grade assigned by teacher '%s'", teacherName), nil
	}
	return dto.NewFound(dto.Average{AvgGrade: helper.RoundTo(avg.Float64, gradePlaces)}), nil
}

// SubjectsByStudent lists the distinct courses a student has grades in.
func (s *ReportService) SubjectsByStudent(ctx context.Context, studentName string) (dto.Result[[]string], error) {
	var names []string
	err := s.db(ctx).
		Model(&model.SubjectModel{}).
		Distinct("subjects.name").
		Joins("JOIN grades ON grades.subject_id = subjects.id").
		Joins("JOIN students ON students.id = grades.student_id").
		Where("students.name = ?", studentName).
		Order("subjects.name ASC").
		Pluck("subjects.name", &names).Error
	if err != nil {
		return dto.Result[[]string]{}, fmt.Errorf("subjects by student: %w", err)
	}
	if len(names) == 0 {
		return dto.NewNotFound[[]string]("No courses found for student '%s'", studentName), nil
	}
	return dto.NewFound(names), nil
}

// SubjectsByStudentAndTeacher lists the distinct courses a teacher reads to a student.
func (s *ReportService) SubjectsByStudentAndTeacher(ctx context.Context, studentName, teacherName string) (dto.Result[[]string], error) {
	var names []string
	err := s.db(ctx).
		Model(&model.SubjectModel{}).
		Distinct("subjects.name").
		Joins("JOIN grades ON grades.subject_id = subjects.id").
		Joins("JOIN students ON students.id = grades.student_id").
		Joins("JOIN teachers ON teachers.id = subjects.teacher_id").
		Where("students.name = ? AND teachers.name = ?", studentName, teacherName).
		Order("subjects.name ASC").
		Pluck("subjects.name", &names).Error
	if err != nil {
		return dto.Result[[]string]{}, fmt.Errorf("subjects by student and teacher: %w", err)
	}
	if len(names) == 0 {
		return dto.NewNotFound[[]string]("No courses found for student '%s' taught by teacher '%s'", studentName, teacherName), nil
	}
	return dto.NewFound(names), nil
}

// scanAverage selects AVG(grades.grade) over q. NULL (no rows matched) comes back invalid.
func scanAverage(q *gorm.DB) (sql.NullFloat64, error) {
	var out struct {
		AvgGrade *float64 `gorm:"column:avg_grade"`
	}
	if err := q.Select("AVG(grades.grade) AS avg_grade").Scan(&out).Error; err != nil {
		return sql.NullFloat64{}, err
	}
	if out.AvgGrade == nil {
		return sql.NullFloat64{}, nil
	}
	return sql.NullFloat64{Float64: *out.AvgGrade, Valid: true}, nil
}
