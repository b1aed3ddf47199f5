package models

import "time"

// Exam is a published exam within a category
type Exam struct {
	ID           int64     `json:"id" db:"id"`
	Title        string    `json:"title" db:"title"`
	Description  string    `json:"description" db:"description"`
	Image        *string   `json:"image,omitempty" db:"image"`
	CategoryID   *int64    `json:"category_id,omitempty" db:"category_id"`
	CategoryName *string   `json:"category_name,omitempty"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
