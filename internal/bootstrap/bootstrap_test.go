package bootstrap

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	appModels "github.com/yigit/coursehub/internal/app/models"
	"github.com/yigit/coursehub/internal/config"
	"github.com/yigit/coursehub/internal/db"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := &config.Config{}
	cfg.Server.Mode = "test"
	cfg.Server.StoragePath = t.TempDir()
	cfg.Server.MaxUploadMB = 1
	cfg.Server.CORSOrigins = []string{"http://localhost:3000"}
	cfg.JWT.StudentKey = "student-secret"
	cfg.JWT.TeacherKey = "teacher-secret"
	cfg.JWT.AdminKey = "admin-secret"
	cfg.JWT.TokenExpiration = "720h"
	return cfg
}

func newTestServer(t *testing.T) (*gin.Engine, *Dependencies, sqlmock.Sqlmock) {
	t.Helper()
	return newTestServerWith(t, testConfig(t))
}

func newTestServerWith(t *testing.T, cfg *config.Config) (*gin.Engine, *Dependencies, sqlmock.Sqlmock) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	deps, err := BuildDependencies(cfg, db.Wrap(sqlDB), zerolog.Nop())
	require.NoError(t, err)
	return SetupRouter(cfg, deps, zerolog.Nop()), deps, mock
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestPingAndHealth(t *testing.T) {
	r, _, mock := newTestServer(t)

	rec := serve(r, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	mock.ExpectPing()
	rec = serve(r, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProtectedRouteWithoutCredentials(t *testing.T) {
	r, _, _ := newTestServer(t)

	rec := serve(r, httptest.NewRequest(http.MethodPost, "/teacher/answer-quation", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdminRouteRejectsTeacher(t *testing.T) {
	r, deps, _ := newTestServer(t)

	token, err := deps.JWTService.GenerateToken(appModels.RoleTeacher, "t@school.edu", 2)
	require.NoError(t, err)

	for _, path := range []string{"/supperAdmin/get-admins", "/admin/get-admins"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set("role", "teacher")
		req.Header.Set("teacher-token", token)
		assert.Equal(t, http.StatusForbidden, serve(r, req).Code, path)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	r, _, _ := newTestServer(t)
	serve(r, httptest.NewRequest(http.MethodGet, "/ping", nil))

	rec := serve(r, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `route="/ping"`)
}

func TestCORSPreflightAllowsRoleHeaders(t *testing.T) {
	r, _, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/teacher/add-cours", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "role,teacher-token")
	rec := serve(r, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSWildcard(t *testing.T) {
	cfg := testConfig(t)
	cfg.Server.CORSOrigins = []string{"*"}

	c := corsConfig(cfg)
	assert.True(t, c.AllowAllOrigins)
	assert.False(t, c.AllowCredentials)
	assert.Empty(t, c.AllowOrigins)
}

// courseUpload builds an add-cours request carrying an image of the given content.
func courseUpload(t *testing.T, token, filename string, content []byte) *http.Request {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	require.NoError(t, w.WriteField("title", "Go"))
	part, err := w.CreateFormFile("image", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/teacher/add-cours", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("role", "admin")
	req.Header.Set("admin-token", token)
	return req
}

func TestUploadLimits(t *testing.T) {
	cfg := testConfig(t)
	r, deps, mock := newTestServerWith(t, cfg)

	token, err := deps.JWTService.GenerateToken(appModels.RoleAdmin, "root@school.edu", 1)
	require.NoError(t, err)

	png := append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 32)...)
	cases := []struct {
		name    string
		content []byte
		want    int
	}{
		{"body over the request limit", bytes.Repeat([]byte("x"), 5<<20), http.StatusRequestEntityTooLarge},
		{"image over the upload limit", append(png, bytes.Repeat([]byte("x"), 3<<19)...), http.StatusRequestEntityTooLarge},
		{"image that is not an image", bytes.Repeat([]byte("x"), 1024), http.StatusBadRequest},
	}
	for _, tc := range cases {
		rec := serve(r, courseUpload(t, token, "big.png", tc.content))
		assert.Equal(t, tc.want, rec.Code, tc.name)
	}

	entries, err := os.ReadDir(cfg.Server.StoragePath)
	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUploadsServedWithNoSniff(t *testing.T) {
	cfg := testConfig(t)
	r, _, _ := newTestServerWith(t, cfg)
	require.NoError(t, os.WriteFile(filepath.Join(cfg.Server.StoragePath, "cover.png"), []byte("img"), 0o600))

	rec := serve(r, httptest.NewRequest(http.MethodGet, "/uploads/cover.png", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
}

func TestFeedbackReadsForMissingCourse(t *testing.T) {
	r, _, mock := newTestServer(t)

	for _, path := range []string{"/student/rating/404", "/student/get-comments/404", "/student/get-QA/404"} {
		mock.ExpectQuery("SELECT 1 FROM courses").
			WithArgs(int64(404)).
			WillReturnRows(sqlmock.NewRows([]string{"1"}))

		rec := serve(r, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusNotFound, rec.Code, path)
		assert.Contains(t, rec.Body.String(), "course not found", path)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}
