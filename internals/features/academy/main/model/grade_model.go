// internals/features/academy/main/model/grade_model.go
package model

import "gorm.io/datatypes"

// NOTE:
// - grade: double precision, kept unrounded; reports round on the way out
// - date_received: DATE (no time part)
type GradeModel struct {
	ID           uint           `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	StudentID    uint           `gorm:"column:student_id;not null;index" json:"student_id"`
	SubjectID    uint           `gorm:"column:subject_id;not null;index" json:"subject_id"`
	Grade        float64        `gorm:"column:grade;type:double precision;not null" json:"grade"`
	DateReceived datatypes.Date `gorm:"column:date_received;type:date;not null" json:"date_received"`

	Student *StudentModel `gorm:"foreignKey:StudentID;references:ID" json:"student,omitempty"`
	Subject *SubjectModel `gorm:"foreignKey:SubjectID;references:ID" json:"subject,omitempty"`
}

func (GradeModel) TableName() string { return "grades" }

// All returns the models in foreign-key order, parents first.
func All() []any {
	return []any{
		&GroupModel{},
		&TeacherModel{},
		&StudentModel{},
		&SubjectModel{},
		&GradeModel{},
	}
}
