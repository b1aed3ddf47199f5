package auth

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yigit/coursehub/internal/app/models"
)

func TestUnlistedRoutesArePublic(t *testing.T) {
	p := DefaultPolicy()

	for _, path := range []string{"/login", "/student/get-all-course", "/student/get-cours/:id", ""} {
		_, protected := p.Lookup(http.MethodGet, path)
		assert.False(t, protected, path)
	}
	assert.True(t, p.Allows(http.MethodPost, "/student-sign-up", models.RoleStudent))
}

func TestTeacherRoutesAdmitTeacherAndAdmin(t *testing.T) {
	p := DefaultPolicy()

	assert.True(t, p.Allows(http.MethodPost, "/teacher/answer-quation", models.RoleTeacher))
	assert.True(t, p.Allows(http.MethodPost, "/teacher/answer-quation", models.RoleAdmin))
	assert.False(t, p.Allows(http.MethodPost, "/teacher/answer-quation", models.RoleStudent))
}

func TestStudentWritesAreStudentOnly(t *testing.T) {
	p := DefaultPolicy()

	roles, protected := p.Lookup(http.MethodPost, "/student/rateing")
	assert.True(t, protected)
	assert.Equal(t, []models.Role{models.RoleStudent}, roles)
}

func TestAdminRoutesExistUnderBothPrefixes(t *testing.T) {
	p := DefaultPolicy()

	for _, prefix := range AdminPrefixes {
		assert.True(t, p.Allows(http.MethodDelete, prefix+"/delete-admin/:id", models.RoleAdmin), prefix)
		assert.False(t, p.Allows(http.MethodDelete, prefix+"/delete-admin/:id", models.RoleTeacher), prefix)
	}
}

func TestLookupIsMethodSensitive(t *testing.T) {
	p := NewPolicy(Rule{Method: "post", Path: "/x", Roles: []models.Role{models.RoleAdmin}})

	_, protected := p.Lookup(http.MethodGet, "/x")
	assert.False(t, protected)
	_, protected = p.Lookup(http.MethodPost, "/x")
	assert.True(t, protected)
	assert.Len(t, p.Rules(), 1)
}
