package repositories

import (
	"github.com/yigit/coursehub/internal/db"
)

// Repositories holds all the repository instances
type Repositories struct {
	AccountRepository    *AccountRepository
	DepartmentRepository *DepartmentRepository
	CategoryRepository   *CategoryRepository
	CourseRepository     *CourseRepository
	ExamRepository       *ExamRepository
	CommentRepository    *CommentRepository
	QuestionRepository   *QuestionRepository
	RatingRepository     *RatingRepository
	DashboardRepository  *DashboardRepository
}

// NewRepositories initializes all repositories over the shared pool
func NewRepositories(db *db.MySQLDB) *Repositories {
	return &Repositories{
		AccountRepository:    NewAccountRepository(db),
		DepartmentRepository: NewDepartmentRepository(db),
		CategoryRepository:   NewCategoryRepository(db),
		CourseRepository:     NewCourseRepository(db),
		ExamRepository:       NewExamRepository(db),
		CommentRepository:    NewCommentRepository(db),
		QuestionRepository:   NewQuestionRepository(db),
		RatingRepository:     NewRatingRepository(db),
		DashboardRepository:  NewDashboardRepository(db),
	}
}
