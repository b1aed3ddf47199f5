package models

import "time"

// Course represents a course published by a teacher (or an admin).
type Course struct {
	ID              int64     `json:"id" db:"id"`
	Title           string    `json:"title" db:"title"`
	Tag             string    `json:"tag" db:"tag"`
	CategoryID      *int64    `json:"category_id,omitempty" db:"category_id"`
	DepartmentID    *int64    `json:"department_id,omitempty" db:"department_id"`
	TeacherID       *int64    `json:"teacher_id,omitempty" db:"teacher_id"`
	BenefitOne      string    `json:"benefit_one" db:"benefit_one"`
	BenefitTwo      string    `json:"benefit_two" db:"benefit_two"`
	PrerequisiteOne string    `json:"prerequisite_one" db:"prerequisite_one"`
	PrerequisiteTwo string    `json:"prerequisite_two" db:"prerequisite_two"`
	Image           *string   `json:"image,omitempty" db:"image"` // stored filename only
	Description     string    `json:"description" db:"description"`
	Year            string    `json:"year" db:"year"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`

	// Relations (populated when needed)
	CategoryName   *string      `json:"category_name,omitempty"`
	DepartmentName *string      `json:"department_name,omitempty"`
	Links          []CourseLink `json:"links"`
}

// CourseLink is an external resource attached to a course.
type CourseLink struct {
	ID       int64  `json:"id" db:"id"`
	CourseID int64  `json:"course_id" db:"course_id"`
	LinkName string `json:"link_name" db:"link_name" binding:"required"`
	LinkURL  string `json:"link_url" db:"link_url" binding:"required,url"`
}
