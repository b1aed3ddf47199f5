package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/app/models/dto"
	"github.com/yigit/coursehub/internal/app/services"
	"github.com/yigit/coursehub/internal/middleware"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
	"github.com/yigit/coursehub/internal/pkg/auth"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// memAccounts keeps accounts in memory, keyed by role then email
type memAccounts struct {
	mu     sync.Mutex
	nextID int64
	rows   map[models.Role]map[string]*models.Account
}

func newMemAccounts() *memAccounts {
	return &memAccounts{rows: map[models.Role]map[string]*models.Account{}}
}

func (m *memAccounts) FindByEmail(_ context.Context, role models.Role, email string) (*models.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if a, ok := m.rows[role][email]; ok {
		copied := *a
		return &copied, nil
	}
	return nil, apperrors.ErrAccountNotFound
}

func (m *memAccounts) GetByID(_ context.Context, role models.Role, id int64) (*models.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.rows[role] {
		if a.ID == id {
			copied := *a
			return &copied, nil
		}
	}
	return nil, apperrors.ErrAccountNotFound
}

func (m *memAccounts) List(context.Context, models.Role) ([]*models.Account, error) {
	return nil, nil
}

func (m *memAccounts) Create(_ context.Context, a *models.Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.rows[a.Role] == nil {
		m.rows[a.Role] = map[string]*models.Account{}
	}
	if _, ok := m.rows[a.Role][a.Email]; ok {
		return apperrors.ErrEmailAlreadyExists
	}
	m.nextID++
	a.ID = m.nextID
	copied := *a
	m.rows[a.Role][a.Email] = &copied
	return nil
}

func (m *memAccounts) Update(context.Context, *models.Account) error { return nil }
func (m *memAccounts) Delete(context.Context, models.Role, int64) error { return nil }
func (m *memAccounts) DeleteAdmin(context.Context, int64) error { return nil }
func (m *memAccounts) Count(context.Context, models.Role) (int64, error) { return 0, nil }

var testKeys = auth.KeyRing{
	models.RoleStudent: "student-secret",
	models.RoleTeacher: "teacher-secret",
	models.RoleAdmin:   "admin-secret",
}

func newAuthRouter(t *testing.T) (*gin.Engine, *auth.JWTService, *memAccounts) {
	t.Helper()
	accounts := newMemAccounts()
	jwtService := auth.NewJWTService(auth.JWTConfig{Keys: testKeys, TokenExp: 30 * 24 * time.Hour})
	ctrl := NewAuthController(services.NewAuthService(accounts, jwtService, zerolog.Nop()))

	r := gin.New()
	r.POST("/login", ctrl.Login)
	r.POST("/teacher/login", ctrl.LoginAs(models.RoleTeacher))
	r.POST("/student-sign-up", ctrl.SignUp)
	return r, jwtService, accounts
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decodeLogin(t *testing.T, rec *httptest.ResponseRecorder) dto.LoginResponse {
	t.Helper()
	var resp dto.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestSignUpThenLogin(t *testing.T) {
	r, jwtService, _ := newAuthRouter(t)

	rec := postJSON(r, "/student-sign-up", `{"name":"Ada","email":"ada@school.edu","password":"pw123456"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "pw123456")

	rec = postJSON(r, "/login", `{"email":"ada@school.edu","password":"pw123456","role":"student"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeLogin(t, rec)
	assert.True(t, resp.LoginStatus)
	assert.Equal(t, "student", resp.Role)

	claims, err := jwtService.ValidateToken(models.RoleStudent, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.ID, claims.ID)
}

func TestWrongPasswordIsSoftFailure(t *testing.T) {
	r, _, _ := newAuthRouter(t)
	require.Equal(t, http.StatusCreated, postJSON(r, "/student-sign-up", `{"name":"Ada","email":"ada@school.edu","password":"right"}`).Code)

	for _, body := range []string{
		`{"email":"ada@school.edu","password":"wrong","role":"student"}`,
		`{"email":"nobody@school.edu","password":"right","role":"student"}`,
	} {
		rec := postJSON(r, "/login", body)
		require.Equal(t, http.StatusOK, rec.Code)
		resp := decodeLogin(t, rec)
		assert.False(t, resp.LoginStatus)
		assert.Equal(t, services.InvalidLoginMessage, resp.Message)
		assert.Empty(t, resp.Token)
	}
}

func TestLoginRejectsUnknownRole(t *testing.T) {
	r, _, _ := newAuthRouter(t)

	rec := postJSON(r, "/login", `{"email":"a@b.c","password":"x","role":"janitor"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, decodeLogin(t, rec).LoginStatus)
}

func TestLoginRequiresAllFields(t *testing.T) {
	r, _, _ := newAuthRouter(t)

	rec := postJSON(r, "/login", `{"email":"a@b.c","role":"student"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLegacyLoginForcesRole(t *testing.T) {
	r, jwtService, accounts := newAuthRouter(t)
	hash, err := auth.HashPassword("secret")
	require.NoError(t, err)
	require.NoError(t, accounts.Create(context.Background(), &models.Account{
		Role: models.RoleTeacher, Name: "T", Email: "t@school.edu", Password: hash,
	}))

	rec := postJSON(r, "/teacher/login", `{"email":"t@school.edu","password":"secret","role":"student"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeLogin(t, rec)
	require.True(t, resp.LoginStatus)
	assert.Equal(t, "teacher", resp.Role)

	_, err = jwtService.ValidateToken(models.RoleTeacher, resp.Token)
	assert.NoError(t, err)
}

func TestDuplicateSignUpConflicts(t *testing.T) {
	r, _, _ := newAuthRouter(t)
	body := `{"name":"Ada","email":"ada@school.edu","password":"pw"}`

	require.Equal(t, http.StatusCreated, postJSON(r, "/student-sign-up", body).Code)
	assert.Equal(t, http.StatusConflict, postJSON(r, "/student-sign-up", body).Code)
}

func TestRatingOutOfRangeIsRejected(t *testing.T) {
	middleware.UseJSONFieldNames()
	ctrl := NewFeedbackController(services.NewFeedbackService(nil, nil, nil, nil, zerolog.Nop()))

	r := gin.New()
	r.POST("/student/rateing", func(c *gin.Context) {
		middleware.SetPrincipal(c, models.Principal{Role: models.RoleStudent, ID: 1})
	}, ctrl.RateCourse)

	for _, body := range []string{`{"course_id":1,"rating":0}`, `{"course_id":1,"rating":6}`} {
		rec := postJSON(r, "/student/rateing", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
		assert.Contains(t, rec.Body.String(), "rating")
	}
}

func TestProtectedHandlerWithoutPrincipal(t *testing.T) {
	ctrl := NewFeedbackController(services.NewFeedbackService(nil, nil, nil, nil, zerolog.Nop()))
	r := gin.New()
	r.POST("/teacher/answer-quation", ctrl.AnswerQuestion)

	rec := postJSON(r, "/teacher/answer-quation", `{"question_id":1,"answer":"x"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestInvalidPathID(t *testing.T) {
	ctrl := NewFeedbackController(services.NewFeedbackService(nil, nil, nil, nil, zerolog.Nop()))
	r := gin.New()
	r.GET("/student/get-comments/:id", ctrl.GetComments)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/student/get-comments/abc", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
