// internals/features/academy/main/model/subject_model.go
package model

// SubjectModel is a course owned by exactly one teacher.
type SubjectModel struct {
	ID        uint   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name      string `gorm:"column:name;type:varchar(120);not null;index" json:"name"`
	TeacherID uint   `gorm:"column:teacher_id;not null;index" json:"teacher_id"`

	Teacher *TeacherModel `gorm:"foreignKey:TeacherID;references:ID" json:"teacher,omitempty"`
	Grades  []GradeModel  `gorm:"foreignKey:SubjectID;references:ID" json:"grades,omitempty"`
}

func (SubjectModel) TableName() string { return "subjects" }
