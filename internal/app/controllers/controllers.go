package controllers

import "github.com/yigit/coursehub/internal/app/services"

// Controllers groups the HTTP handlers registered by the router
type Controllers struct {
	AuthController       *AuthController
	AccountController    *AccountController
	DepartmentController *DepartmentController
	CategoryController   *CategoryController
	CourseController     *CourseController
	ExamController       *ExamController
	FeedbackController   *FeedbackController
	DashboardController  *DashboardController
}

// NewControllers builds every controller from the service container
func NewControllers(s *services.Services) *Controllers {
	return &Controllers{
		AuthController:       NewAuthController(s.AuthService),
		AccountController:    NewAccountController(s.AccountService),
		DepartmentController: NewDepartmentController(s.DepartmentService),
		CategoryController:   NewCategoryController(s.CategoryService),
		CourseController:     NewCourseController(s.CourseService),
		ExamController:       NewExamController(s.ExamService),
		FeedbackController:   NewFeedbackController(s.FeedbackService),
		DashboardController:  NewDashboardController(s.DashboardService),
	}
}
