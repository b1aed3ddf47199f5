package services

import (
	"context"
	"mime/multipart"
	"sync"

	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/app/models/dto"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
	"github.com/yigit/coursehub/internal/pkg/filestorage"
)

type fakeAccounts struct {
	mu     sync.Mutex
	nextID int64
	rows   map[models.Role]map[int64]*models.Account
}

func newFakeAccounts() *fakeAccounts {
	return &fakeAccounts{rows: map[models.Role]map[int64]*models.Account{
		models.RoleStudent: {},
		models.RoleTeacher: {},
		models.RoleAdmin:   {},
	}}
}

func (f *fakeAccounts) FindByEmail(_ context.Context, role models.Role, email string) (*models.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.rows[role] {
		if a.Email == email {
			copied := *a
			return &copied, nil
		}
	}
	return nil, apperrors.ErrAccountNotFound
}

func (f *fakeAccounts) GetByID(_ context.Context, role models.Role, id int64) (*models.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.rows[role][id]
	if !ok {
		return nil, apperrors.ErrAccountNotFound
	}
	copied := *a
	return &copied, nil
}

func (f *fakeAccounts) List(_ context.Context, role models.Role) ([]*models.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*models.Account, 0, len(f.rows[role]))
	for id := int64(1); id <= f.nextID; id++ {
		if a, ok := f.rows[role][id]; ok {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAccounts) Create(_ context.Context, account *models.Account) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.rows[account.Role] {
		if a.Email == account.Email {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	f.nextID++
	account.ID = f.nextID
	copied := *account
	f.rows[account.Role][account.ID] = &copied
	return nil
}

func (f *fakeAccounts) Update(_ context.Context, account *models.Account) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.rows[account.Role][account.ID]; !ok {
		return apperrors.ErrAccountNotFound
	}
	copied := *account
	f.rows[account.Role][account.ID] = &copied
	return nil
}

func (f *fakeAccounts) Delete(_ context.Context, role models.Role, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.rows[role][id]; !ok {
		return apperrors.ErrAccountNotFound
	}
	delete(f.rows[role], id)
	return nil
}

func (f *fakeAccounts) DeleteAdmin(ctx context.Context, id int64) error {
	f.mu.Lock()
	total := len(f.rows[models.RoleAdmin])
	f.mu.Unlock()
	if total <= 1 {
		return apperrors.ErrLastAdmin
	}
	return f.Delete(ctx, models.RoleAdmin, id)
}

func (f *fakeAccounts) Count(_ context.Context, role models.Role) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.rows[role])), nil
}

type fakeTokens struct{}

func (fakeTokens) GenerateToken(role models.Role, email string, id int64) (string, error) {
	return string(role) + ":" + email, nil
}

// fakeStorage records saved and deleted filenames without touching disk
type fakeStorage struct {
	mu      sync.Mutex
	saved   []string
	deleted []string
	failOn  string
	maxSize int64
}

func (f *fakeStorage) SaveFile(fileHeader *multipart.FileHeader) (string, error) {
	if fileHeader == nil {
		return "", nil
	}
	if fileHeader.Filename == f.failOn {
		return "", filestorage.ErrUnsupportedFileType
	}
	if f.maxSize > 0 && fileHeader.Size > f.maxSize {
		return "", filestorage.ErrFileTooLarge
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	name := "stored-" + fileHeader.Filename
	f.saved = append(f.saved, name)
	return name, nil
}

func (f *fakeStorage) DeleteFile(filename string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, filename)
	return nil
}

func (f *fakeStorage) GetFullPath(filename string) string { return "/tmp/" + filename }

type fakeCourses struct {
	rows       map[int64]*models.Course
	nextID     int64
	lastFilter dto.CourseFilter
	replaced   bool
	failUpdate error
}

func newFakeCourses() *fakeCourses {
	return &fakeCourses{rows: map[int64]*models.Course{}}
}

func (f *fakeCourses) GetByID(_ context.Context, id int64) (*models.Course, error) {
	c, ok := f.rows[id]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	copied := *c
	copied.Links = append([]models.CourseLink{}, c.Links...)
	return &copied, nil
}

func (f *fakeCourses) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := f.rows[id]
	return ok, nil
}

func (f *fakeCourses) List(_ context.Context, filter dto.CourseFilter) ([]*models.Course, int64, error) {
	f.lastFilter = filter
	out := make([]*models.Course, 0)
	for _, c := range f.rows {
		if filter.TeacherID != nil && (c.TeacherID == nil || *c.TeacherID != *filter.TeacherID) {
			continue
		}
		if filter.Year != nil && c.Year != *filter.Year {
			continue
		}
		out = append(out, c)
	}
	return out, int64(len(out)), nil
}

func (f *fakeCourses) Create(_ context.Context, course *models.Course) error {
	f.nextID++
	course.ID = f.nextID
	copied := *course
	f.rows[course.ID] = &copied
	return nil
}

func (f *fakeCourses) Update(_ context.Context, course *models.Course, replaceLinks bool) error {
	if f.failUpdate != nil {
		return f.failUpdate
	}
	if _, ok := f.rows[course.ID]; !ok {
		return apperrors.ErrCourseNotFound
	}
	f.replaced = replaceLinks
	copied := *course
	f.rows[course.ID] = &copied
	return nil
}

func (f *fakeCourses) Delete(_ context.Context, id int64) error {
	if _, ok := f.rows[id]; !ok {
		return apperrors.ErrCourseNotFound
	}
	delete(f.rows, id)
	return nil
}

type fakeQuestions struct {
	answers      []*models.Answer
	countedFor   *int64
	countCalled  bool
	knownQuestID int64
}

func (f *fakeQuestions) Create(_ context.Context, q *models.Question) error {
	q.ID = 1
	return nil
}

func (f *fakeQuestions) CreateAnswer(_ context.Context, a *models.Answer) error {
	if a.QuestionID != f.knownQuestID {
		return apperrors.ErrQuestionNotFound
	}
	a.ID = int64(len(f.answers) + 1)
	f.answers = append(f.answers, a)
	return nil
}

func (f *fakeQuestions) ListByCourse(context.Context, int64) ([]*models.Question, error) {
	return []*models.Question{}, nil
}

func (f *fakeQuestions) CountForTeacher(_ context.Context, teacherID *int64) (*models.QuestionCount, error) {
	f.countCalled = true
	f.countedFor = teacherID
	return &models.QuestionCount{Total: 3, Unanswered: 1}, nil
}

type fakeRatings struct {
	stored map[[2]int64]int
}

func (f *fakeRatings) Upsert(_ context.Context, r *models.Rating) error {
	if f.stored == nil {
		f.stored = map[[2]int64]int{}
	}
	f.stored[[2]int64{r.CourseID, r.StudentID}] = r.Rating
	return nil
}

func (f *fakeRatings) Summary(_ context.Context, courseID int64) (*models.RatingSummary, error) {
	var sum, n int
	for key, v := range f.stored {
		if key[0] == courseID {
			sum += v
			n++
		}
	}
	s := &models.RatingSummary{CourseID: courseID, Count: int64(n)}
	if n > 0 {
		s.Average = float64(sum) / float64(n)
	}
	return s, nil
}

type fakeComments struct{ deleted []int64 }

func (f *fakeComments) Create(_ context.Context, c *models.Comment) error { c.ID = 1; return nil }
func (f *fakeComments) ListByCourse(context.Context, int64) ([]*models.Comment, error) {
	return []*models.Comment{}, nil
}
func (f *fakeComments) Delete(_ context.Context, id int64) error {
	f.deleted = append(f.deleted, id)
	return nil
}
