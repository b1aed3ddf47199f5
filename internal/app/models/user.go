package models

import (
	"time"
)

// Account is a row of one of the role tables (super_admin, teachers, students).
// The three tables are separate identity spaces; Role records which one a row came from.
type Account struct {
	ID           int64     `json:"id" db:"id" example:"1"`
	Role         Role      `json:"role" db:"-" example:"student"`
	Name         string    `json:"name" db:"name" example:"Jane Doe"`
	Email        string    `json:"email" db:"email" example:"jane@school.edu"`
	Password     string    `json:"-" db:"password"` // bcrypt hash
	Image        *string   `json:"image,omitempty" db:"image" example:"3f1c...e2.png"`
	DepartmentID *int64    `json:"department_id,omitempty" db:"department_id"` // not present on super_admin
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// HasDepartment reports whether the role table carries a department reference.
func (r Role) HasDepartment() bool {
	return r == RoleStudent || r == RoleTeacher
}
