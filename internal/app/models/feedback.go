package models

import "time"

// Comment is a student's remark on a course.
type Comment struct {
	ID          int64     `json:"id" db:"id"`
	CourseID    int64     `json:"course_id" db:"course_id"`
	StudentID   int64     `json:"student_id" db:"student_id"`
	StudentName string    `json:"student_name,omitempty"`
	Comment     string    `json:"comment" db:"comment"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// Question is asked by a student about a course; answers hang off it.
type Question struct {
	ID          int64     `json:"id" db:"id"`
	CourseID    int64     `json:"course_id" db:"course_id"`
	StudentID   int64     `json:"student_id" db:"student_id"`
	StudentName string    `json:"student_name,omitempty"`
	Question    string    `json:"question" db:"question"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	Answers     []Answer  `json:"answers"`
}

// Answer is a reply to a question. TeacherID holds the id of the acting
// principal, which for admins is a super_admin id.
type Answer struct {
	ID            int64     `json:"id" db:"id"`
	QuestionID    int64     `json:"question_id" db:"question_id"`
	TeacherID     int64     `json:"teacher_id" db:"teacher_id"`
	ResponderRole Role      `json:"responder_role" db:"responder_role"`
	Answer        string    `json:"answer" db:"answer"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

// Rating is a 1-5 score; one per student per course.
type Rating struct {
	ID        int64     `json:"id" db:"id"`
	CourseID  int64     `json:"course_id" db:"course_id"`
	StudentID int64     `json:"student_id" db:"student_id"`
	Rating    int       `json:"rating" db:"rating"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// RatingSummary aggregates the ratings of a course.
type RatingSummary struct {
	CourseID int64   `json:"course_id"`
	Average  float64 `json:"average"`
	Count    int64   `json:"count"`
}

// QuestionCount reports question volume for a teacher dashboard.
type QuestionCount struct {
	Total      int64 `json:"total"`
	Unanswered int64 `json:"unanswered"`
}

// DashboardCounts summarises table sizes for the admin dashboard.
type DashboardCounts struct {
	Students  int64 `json:"students"`
	Teachers  int64 `json:"teachers"`
	Courses   int64 `json:"courses"`
	Exams     int64 `json:"exams"`
	Questions int64 `json:"questions"`
}
