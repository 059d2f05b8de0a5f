package model

// Student represents the database model for students
type Student struct {
	ID        uint64 `gorm:"primaryKey;autoIncrement"`
	FirstName string `gorm:"not null;size:255"`
	LastName  string `gorm:"not null;size:255"`
	Class     string `gorm:"column:class;not null;size:50;index"`
}

// TableName specifies the table name for Student
func (Student) TableName() string {
	return "students"
}
