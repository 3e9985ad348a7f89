package models

// Student represents a speaker enrolled for dataset recording sessions.
// Student IDs are assigned by the caller, not generated.
type Student struct {
	StudentID int    `json:"student_id" gorm:"primarykey;column:student_id"`
	Student   string `json:"student" gorm:"not null"`
}

// TableName specifies the table name for Student
func (Student) TableName() string {
	return "students"
}
