package services

import (
	"context"

	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/app/models/dto"
)

// The stores below are implemented by the repositories package. Services
// depend on these interfaces so they can be exercised without a database.

// AccountStore persists accounts of all three roles
type AccountStore interface {
	FindByEmail(ctx context.Context, role models.Role, email string) (*models.Account, error)
	GetByID(ctx context.Context, role models.Role, id int64) (*models.Account, error)
	List(ctx context.Context, role models.Role) ([]*models.Account, error)
	Create(ctx context.Context, account *models.Account) error
	Update(ctx context.Context, account *models.Account) error
	Delete(ctx context.Context, role models.Role, id int64) error
	DeleteAdmin(ctx context.Context, id int64) error
	Count(ctx context.Context, role models.Role) (int64, error)
}

// DepartmentStore persists departments
type DepartmentStore interface {
	Create(ctx context.Context, department *models.Department) error
	GetByID(ctx context.Context, id int64) (*models.Department, error)
	GetAll(ctx context.Context) ([]*models.Department, error)
	Update(ctx context.Context, department *models.Department) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}

// CategoryStore persists categories
type CategoryStore interface {
	Create(ctx context.Context, category *models.Category) error
	GetByID(ctx context.Context, id int64) (*models.Category, error)
	GetAll(ctx context.Context) ([]*models.Category, error)
	Update(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}

// CourseStore persists courses together with their links
type CourseStore interface {
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	List(ctx context.Context, filter dto.CourseFilter) ([]*models.Course, int64, error)
	Create(ctx context.Context, course *models.Course) error
	Update(ctx context.Context, course *models.Course, replaceLinks bool) error
	Delete(ctx context.Context, id int64) error
}

// CourseChecker reports whether a course exists
type CourseChecker interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

// ExamStore persists exams
type ExamStore interface {
	Create(ctx context.Context, exam *models.Exam) error
	GetByID(ctx context.Context, id int64) (*models.Exam, error)
	GetAll(ctx context.Context) ([]*models.Exam, error)
	Update(ctx context.Context, exam *models.Exam) error
	Delete(ctx context.Context, id int64) error
}

// CommentStore persists course comments
type CommentStore interface {
	Create(ctx context.Context, comment *models.Comment) error
	ListByCourse(ctx context.Context, courseID int64) ([]*models.Comment, error)
	Delete(ctx context.Context, id int64) error
}

// QuestionStore persists questions and answers
type QuestionStore interface {
	Create(ctx context.Context, question *models.Question) error
	CreateAnswer(ctx context.Context, answer *models.Answer) error
	ListByCourse(ctx context.Context, courseID int64) ([]*models.Question, error)
	CountForTeacher(ctx context.Context, teacherID *int64) (*models.QuestionCount, error)
}

// RatingStore persists course ratings
type RatingStore interface {
	Upsert(ctx context.Context, rating *models.Rating) error
	Summary(ctx context.Context, courseID int64) (*models.RatingSummary, error)
}

// DashboardStore reads aggregate counts
type DashboardStore interface {
	Counts(ctx context.Context) (*models.DashboardCounts, error)
}

// TokenIssuer signs access tokens; implemented by auth.JWTService
type TokenIssuer interface {
	GenerateToken(role models.Role, email string, id int64) (string, error)
}
