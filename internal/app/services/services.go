package services

import (
	"github.com/rs/zerolog"
	"github.com/yigit/coursehub/internal/app/repositories"
	"github.com/yigit/coursehub/internal/pkg/filestorage"
)

// Services holds every service the controllers depend on
type Services struct {
	AuthService       *AuthService
	AccountService    *AccountService
	DepartmentService *DepartmentService
	CategoryService   *CategoryService
	CourseService     *CourseService
	ExamService       *ExamService
	FeedbackService   *FeedbackService
	DashboardService  *DashboardService
}

// NewServices wires the services to the repositories
func NewServices(repos *repositories.Repositories, tokens TokenIssuer, storage filestorage.FileStorage, logger zerolog.Logger) *Services {
	return &Services{
		AuthService:       NewAuthService(repos.AccountRepository, tokens, logger),
		AccountService:    NewAccountService(repos.AccountRepository, storage, logger),
		DepartmentService: NewDepartmentService(repos.DepartmentRepository),
		CategoryService:   NewCategoryService(repos.CategoryRepository),
		CourseService:     NewCourseService(repos.CourseRepository, storage, logger),
		ExamService:       NewExamService(repos.ExamRepository, storage, logger),
		FeedbackService:   NewFeedbackService(repos.CourseRepository, repos.CommentRepository, repos.QuestionRepository, repos.RatingRepository, logger),
		DashboardService:  NewDashboardService(repos.DashboardRepository, repos.AccountRepository, logger),
	}
}
