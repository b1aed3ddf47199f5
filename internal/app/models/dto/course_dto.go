package dto

// CreateCourseRequest is the multipart form of POST /teacher/add-cours.
// Links arrives as a JSON array string in the "links" field.
type CreateCourseRequest struct {
	Title           string `form:"title" binding:"required,max=255"`
	Tag             string `form:"tag" binding:"max=100"`
	CategoryID      *int64 `form:"category_id" binding:"omitempty,gt=0"`
	DepartmentID    *int64 `form:"department_id" binding:"omitempty,gt=0"`
	BenefitOne      string `form:"benefit_one"`
	BenefitTwo      string `form:"benefit_two"`
	PrerequisiteOne string `form:"prerequisite_one"`
	PrerequisiteTwo string `form:"prerequisite_two"`
	Description     string `form:"description"`
	Year            string `form:"year" binding:"max=20"`
	Links           string `form:"links"`
}

// UpdateCourseRequest replaces only the supplied fields. A non-nil Links
// replaces every existing link of the course.
type UpdateCourseRequest struct {
	Title           *string `form:"title" binding:"omitempty,max=255"`
	Tag             *string `form:"tag" binding:"omitempty,max=100"`
	CategoryID      *int64  `form:"category_id" binding:"omitempty,gt=0"`
	DepartmentID    *int64  `form:"department_id" binding:"omitempty,gt=0"`
	BenefitOne      *string `form:"benefit_one"`
	BenefitTwo      *string `form:"benefit_two"`
	PrerequisiteOne *string `form:"prerequisite_one"`
	PrerequisiteTwo *string `form:"prerequisite_two"`
	Description     *string `form:"description"`
	Year            *string `form:"year" binding:"omitempty,max=20"`
	Links           *string `form:"links"`
}

// CourseFilter narrows course listings
type CourseFilter struct {
	TeacherID *int64
	Year      *string
	Page      int
	Size      int
}

// CreateExamRequest is the multipart form of POST /teacher/post-exams
type CreateExamRequest struct {
	Title       string `form:"title" binding:"required,max=255"`
	Description string `form:"description"`
	CategoryID  *int64 `form:"category_id" binding:"omitempty,gt=0"`
}

// UpdateExamRequest replaces only the supplied fields
type UpdateExamRequest struct {
	Title       *string `form:"title" binding:"omitempty,max=255"`
	Description *string `form:"description"`
	CategoryID  *int64  `form:"category_id" binding:"omitempty,gt=0"`
}
