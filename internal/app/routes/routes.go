package routes

import (
	"github.com/gin-gonic/gin"
	appauth "github.com/yigit/coursehub/internal/app/auth"
	"github.com/yigit/coursehub/internal/app/controllers"
	"github.com/yigit/coursehub/internal/app/models"
)

// SetupRouter registers every API route. Access control is applied by the
// policy middleware installed on the engine, not per group.
func SetupRouter(router gin.IRoutes, c *controllers.Controllers) {
	auth := c.AuthController
	accounts := c.AccountController
	courses := c.CourseController
	exams := c.ExamController
	feedback := c.FeedbackController

	// --- Authentication ---
	router.POST("/login", auth.Login)
	router.POST("/student/login", auth.LoginAs(models.RoleStudent))
	router.POST("/teacher/login", auth.LoginAs(models.RoleTeacher))
	for _, prefix := range appauth.AdminPrefixes {
		router.POST(prefix+"/login", auth.LoginAs(models.RoleAdmin))
	}
	router.POST("/student-sign-up", auth.SignUp)

	router.GET("/profile", accounts.Profile)

	// --- Student ---
	router.GET("/student/get-all-course", courses.GetAllCourses)
	router.GET("/student/get-cours/:id", courses.GetCourse)
	router.GET("/student/get-course-by-year/:year", courses.GetCoursesByYear)
	router.GET("/student/rating/:id", feedback.GetRating)
	router.GET("/student/get-comments/:id", feedback.GetComments)
	router.GET("/student/get-QA/:id", feedback.GetQA)
	router.GET("/student/get-categories", c.CategoryController.GetAllCategories)
	router.GET("/student/get-departments", c.DepartmentController.GetAllDepartments)
	router.GET("/student/get-exams", exams.GetAllExams)
	router.POST("/student/rateing", feedback.RateCourse)
	router.POST("/student/ask-quation", feedback.AskQuestion)
	router.POST("/student/give-comment", feedback.GiveComment)

	// --- Teacher ---
	router.GET("/teacher/get-all-course", courses.GetOwnCourses)
	router.POST("/teacher/add-cours", courses.CreateCourse)
	router.PUT("/teacher/edit-course/:id", courses.UpdateCourse)
	router.DELETE("/teacher/delete-course/:id", courses.DeleteCourse)
	router.POST("/teacher/answer-quation", feedback.AnswerQuestion)
	router.GET("/teacher/get-QA/:id", feedback.GetQA)
	router.GET("/teacher/get-quations-count", feedback.QuestionCount)
	router.DELETE("/teacher/delete-comment/:id", feedback.DeleteComment)
	router.GET("/teacher/get-exams", exams.GetAllExams)
	router.POST("/teacher/post-exams", exams.CreateExam)
	router.PUT("/teacher/edit-exam/:id", exams.UpdateExam)
	router.DELETE("/teacher/delete-exam/:id", exams.DeleteExam)

	// --- Admin, served under both prefixes ---
	for _, prefix := range appauth.AdminPrefixes {
		setupAdminRoutes(router, prefix, c)
	}
}

func setupAdminRoutes(router gin.IRoutes, prefix string, c *controllers.Controllers) {
	categories := c.CategoryController
	departments := c.DepartmentController
	accounts := c.AccountController

	router.GET(prefix+"/get-categories", categories.GetAllCategories)
	router.POST(prefix+"/add-category", categories.CreateCategory)
	router.PUT(prefix+"/edit-category/:id", categories.UpdateCategory)
	router.DELETE(prefix+"/delete-category/:id", categories.DeleteCategory)

	router.GET(prefix+"/get-departments", departments.GetAllDepartments)
	router.POST(prefix+"/add-department", departments.CreateDepartment)
	router.PUT(prefix+"/edit-department/:id", departments.UpdateDepartment)
	router.DELETE(prefix+"/delete-department/:id", departments.DeleteDepartment)

	router.GET(prefix+"/get-students", accounts.List(models.RoleStudent))
	router.DELETE(prefix+"/delete-student/:id", accounts.Delete(models.RoleStudent))

	router.GET(prefix+"/get-teachers", accounts.List(models.RoleTeacher))
	router.POST(prefix+"/add-teacher", accounts.Create(models.RoleTeacher))
	router.PUT(prefix+"/edit-teacher/:id", accounts.Update(models.RoleTeacher))
	router.DELETE(prefix+"/delete-teacher/:id", accounts.Delete(models.RoleTeacher))

	router.GET(prefix+"/get-admins", accounts.List(models.RoleAdmin))
	router.POST(prefix+"/add-admin", accounts.Create(models.RoleAdmin))
	router.DELETE(prefix+"/delete-admin/:id", accounts.Delete(models.RoleAdmin))

	router.GET(prefix+"/dashboard-counts", c.DashboardController.Counts)
	router.GET(prefix+"/export/:role", c.DashboardController.Export)
}
