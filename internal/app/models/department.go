package models

// Department groups courses, teachers and students
type Department struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name" binding:"required"`
}

// Category classifies courses and exams
type Category struct {
	ID          int64  `json:"id" db:"id"`
	Name        string `json:"name" db:"name" binding:"required"`
	Description string `json:"description" db:"description"`
}
