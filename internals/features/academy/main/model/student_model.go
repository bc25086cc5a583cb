// internals/features/academy/main/model/student_model.go
package model

// NOTE:
// - email: UNIQUE but nullable → *string (several NULLs allowed)
// - group_id: NOT NULL FK → groups.id
type StudentModel struct {
	ID      uint    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name    string  `gorm:"column:name;type:varchar(120);not null;index" json:"name"`
	Email   *string `gorm:"column:email;type:varchar(255);uniqueIndex" json:"email,omitempty"`
	GroupID uint    `gorm:"column:group_id;not null;index" json:"group_id"`

	Group  *GroupModel  `gorm:"foreignKey:GroupID;references:ID" json:"group,omitempty"`
	Grades []GradeModel `gorm:"foreignKey:StudentID;references:ID" json:"grades,omitempty"`
}

func (StudentModel) TableName() string { return "students" }
