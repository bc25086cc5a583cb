// internals/features/academy/reports/presenter/runner.go
package presenter

import (
	"context"
	"fmt"

	dto "academy_backend/internals/features/academy/reports/dto"
	"academy_backend/internals/features/academy/reports/service"
)

// Filters holds the names each parameterised report is run with.
type Filters struct {
	TopSubject     string // report 2
	AverageSubject string // report 3
	CoursesTeacher string // report 5
	Group          string // reports 6 and 7
	GradesSubject  string // report 7
	AverageTeacher string // reports 8 and 10
	Student        string // reports 9 and 10
}

func DefaultFilters() Filters {
	return Filters{
		TopSubject:     "data",
		AverageSubject: "cause",
		CoursesTeacher: "Jason Zavala",
		Group:          "Group 1",
		GradesSubject:  "Math",
		AverageTeacher: "Jennifer Lane",
		Student:        "Paul Hill",
	}
}

// Section is one rendered report. Exactly one of Rows, Scalar or Missing is set.
type Section struct {
	Title   string
	Sheet   string
	Headers []string
	Rows    [][]any
	Scalar  *float64
	Missing string
}

func (s Section) Found() bool { return s.Missing == "" }

// BuildSections runs all ten reports in order. A store failure aborts the run.
func BuildSections(ctx context.Context, svc *service.ReportService, f Filters) ([]Section, error) {
	out := make([]Section, 0, 10)

	top, err := svc.TopStudents(ctx)
	if err != nil {
		return nil, err
	}
	out = append(out, tableSection("Top 5 students by average grade", "Top students",
		top, []string{"Student", "Avg Grade"}, studentAverageRows))

	best, err := svc.TopStudentInSubject(ctx, f.TopSubject)
	if err != nil {
		return nil, err
	}
	out = append(out, tableSection(fmt.Sprintf("Student with the highest average grade in subject (%s)", f.TopSubject), "Top student",
		best, []string{"Student", "Avg Grade"}, func(r dto.StudentAverage) [][]any {
			return studentAverageRows([]dto.StudentAverage{r})
		}))

	groups, err := svc.GroupAveragesForSubject(ctx, f.AverageSubject)
	if err != nil {
		return nil, err
	}
	out = append(out, tableSection(fmt.Sprintf("Average grade in groups for subject (%s)", f.AverageSubject), "Group averages",
		groups, []string{"Group", "Avg Grade"}, func(rows []dto.GroupAverage) [][]any {
			res := make([][]any, len(rows))
			for i, r := range rows {
				res[i] = []any{r.GroupName, r.AvgGrade}
			}
			return res
		}))

	overall, err := svc.OverallAverage(ctx)
	if err != nil {
		return nil, err
	}
	out = append(out, scalarSection("Average grade across all records", "Overall average", overall))

	courses, err := svc.SubjectsByTeacher(ctx, f.CoursesTeacher)
	if err != nil {
		return nil, err
	}
	out = append(out, tableSection(fmt.Sprintf("Courses read by teacher (%s)", f.CoursesTeacher), "Teacher courses",
		courses, []string{"Course"}, nameRows))

	students, err := svc.StudentsInGroup(ctx, f.Group)
	if err != nil {
		return nil, err
	}
	out = append(out, tableSection(fmt.Sprintf("Students in group (%s)", f.Group), "Group students",
		students, []string{"Student"}, nameRows))

	grades, err := svc.GradesInGroupForSubject(ctx, f.Group, f.GradesSubject)
	if err != nil {
		return nil, err
	}
	out = append(out, tableSection(fmt.Sprintf("Grades of students in group (%s) for subject (%s)", f.Group, f.GradesSubject), "Group grades",
		grades, []string{"Student", "Grade"}, func(rows []dto.StudentGrade) [][]any {
			res := make([][]any, len(rows))
			for i, r := range rows {
				res[i] = []any{r.StudentName, r.Grade}
			}
			return res
		}))

	teacherAvg, err := svc.TeacherAverage(ctx, f.AverageTeacher)
	if err != nil {
		return nil, err
	}
	out = append(out, scalarSection(fmt.Sprintf("Average grade given by teacher (%s)", f.AverageTeacher), "Teacher average", teacherAvg))

	attended, err := svc.SubjectsByStudent(ctx, f.Student)
	if err != nil {
		return nil, err
	}
	out = append(out, tableSection(fmt.Sprintf("Courses attended by student (%s)", f.Student), "Student courses",
		attended, []string{"Course"}, nameRows))

	taught, err := svc.SubjectsByStudentAndTeacher(ctx, f.Student, f.AverageTeacher)
	if err != nil {
		return nil, err
	}
	out = append(out, tableSection(fmt.Sprintf("Courses read by teacher (%s) to student (%s)", f.AverageTeacher, f.Student), "Student teacher courses",
		taught, []string{"Course"}, nameRows))

	return out, nil
}

func tableSection[T any](title, sheet string, res dto.Result[T], headers []string, rows func(T) [][]any) Section {
	s := Section{Title: title, Sheet: sheet, Headers: headers}
	if !res.Found {
		s.Missing = res.Message
		return s
	}
	s.Rows = rows(res.Data)
	return s
}

func scalarSection(title, sheet string, res dto.Result[dto.Average]) Section {
	s := Section{Title: title, Sheet: sheet}
	if !res.Found {
		s.Missing = res.Message
		return s
	}
	v := res.Data.AvgGrade
	s.Scalar = &v
	return s
}

func studentAverageRows(rows []dto.StudentAverage) [][]any {
	res := make([][]any, len(rows))
	for i, r := range rows {
		res[i] = []any{r.StudentName, r.AvgGrade}
	}
	return res
}

func nameRows(names []string) [][]any {
	res := make([][]any, len(names))
	for i, n := range names {
		res[i] = []any{n}
	}
	return res
}
