package dto

// RatingRequest is the body of POST /student/rateing
type RatingRequest struct {
	CourseID int64 `json:"course_id" binding:"required,gt=0"`
	Rating   int   `json:"rating" binding:"required,min=1,max=5"`
}

// QuestionRequest is the body of POST /student/ask-quation
type QuestionRequest struct {
	CourseID int64  `json:"course_id" binding:"required,gt=0"`
	Question string `json:"question" binding:"required"`
}

// CommentRequest is the body of POST /student/give-comment
type CommentRequest struct {
	CourseID int64  `json:"course_id" binding:"required,gt=0"`
	Comment  string `json:"comment" binding:"required"`
}

// AnswerRequest is the body of POST /teacher/answer-quation
type AnswerRequest struct {
	QuestionID int64  `json:"question_id" binding:"required,gt=0"`
	Answer     string `json:"answer" binding:"required"`
}

// CategoryRequest creates or replaces a category
type CategoryRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description"`
}

// DepartmentRequest creates or replaces a department
type DepartmentRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}
