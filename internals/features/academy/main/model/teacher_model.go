// internals/features/academy/main/model/teacher_model.go
package model

type TeacherModel struct {
	ID   uint   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"column:name;type:varchar(120);not null;index" json:"name"`

	Subjects []SubjectModel `gorm:"foreignKey:TeacherID;references:ID" json:"subjects,omitempty"`
}

func (TeacherModel) TableName() string { return "teachers" }
