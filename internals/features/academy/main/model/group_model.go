// internals/features/academy/main/model/group_model.go
package model

// GroupModel is a cohort of students. Names are unique.
type GroupModel struct {
	ID   uint   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"column:name;type:varchar(120);not null;uniqueIndex" json:"name"`

	Students []StudentModel `gorm:"foreignKey:GroupID;references:ID" json:"students,omitempty"`
}

func (GroupModel) TableName() string { return "groups" }
