package auth

import (
	"net/http"
	"sort"
	"strings"

	"github.com/yigit/coursehub/internal/app/models"
)

// AdminPrefixes are the two path prefixes the admin surface is served under.
var AdminPrefixes = []string{"/supperAdmin", "/admin"}

// Rule grants the listed roles access to one route pattern.
type Rule struct {
	Method string
	Path   string
	Roles  []models.Role
}

// Policy is the declarative route table consulted by the authorization
// middleware. A route without a rule is public.
type Policy struct {
	rules map[string]Rule
}

// NewPolicy builds a policy from rules. A later rule for the same route replaces an earlier one.
func NewPolicy(rules ...Rule) *Policy {
	p := &Policy{rules: make(map[string]Rule, len(rules))}
	for _, r := range rules {
		r.Method = strings.ToUpper(r.Method)
		p.rules[routeKey(r.Method, r.Path)] = r
	}
	return p
}

func routeKey(method, path string) string {
	return method + " " + path
}

// Lookup returns the roles allowed on a route pattern and whether the route is protected.
func (p *Policy) Lookup(method, path string) ([]models.Role, bool) {
	if path == "" {
		return nil, false
	}
	r, ok := p.rules[routeKey(strings.ToUpper(method), path)]
	if !ok {
		return nil, false
	}
	return r.Roles, true
}

// Allows reports whether role may call the route. Public routes allow everyone.
func (p *Policy) Allows(method, path string, role models.Role) bool {
	roles, protected := p.Lookup(method, path)
	if !protected {
		return true
	}
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}

// Rules returns every rule ordered by path then method.
func (p *Policy) Rules() []Rule {
	out := make([]Rule, 0, len(p.rules))
	for _, r := range p.rules {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Path != out[j].Path {
			return out[i].Path < out[j].Path
		}
		return out[i].Method < out[j].Method
	})
	return out
}

// AdminRoute expands an admin-only route under every admin prefix.
func AdminRoute(method, suffix string) []Rule {
	rules := make([]Rule, 0, len(AdminPrefixes))
	for _, prefix := range AdminPrefixes {
		rules = append(rules, Rule{Method: method, Path: prefix + suffix, Roles: adminOnly})
	}
	return rules
}

var (
	studentOnly    = []models.Role{models.RoleStudent}
	teacherOrAdmin = []models.Role{models.RoleTeacher, models.RoleAdmin}
	adminOnly      = []models.Role{models.RoleAdmin}
)

// DefaultPolicy is the access table of the HTTP API.
func DefaultPolicy() *Policy {
	rules := []Rule{
		{http.MethodPost, "/student/rateing", studentOnly},
		{http.MethodPost, "/student/ask-quation", studentOnly},
		{http.MethodPost, "/student/give-comment", studentOnly},

		{http.MethodGet, "/profile", models.AllRoles},

		{http.MethodPost, "/teacher/add-cours", teacherOrAdmin},
		{http.MethodPut, "/teacher/edit-course/:id", teacherOrAdmin},
		{http.MethodDelete, "/teacher/delete-course/:id", teacherOrAdmin},
		{http.MethodPost, "/teacher/answer-quation", teacherOrAdmin},
		{http.MethodPost, "/teacher/post-exams", teacherOrAdmin},
		{http.MethodPut, "/teacher/edit-exam/:id", teacherOrAdmin},
		{http.MethodDelete, "/teacher/delete-exam/:id", teacherOrAdmin},
		{http.MethodGet, "/teacher/get-all-course", teacherOrAdmin},
		{http.MethodGet, "/teacher/get-exams", teacherOrAdmin},
		{http.MethodGet, "/teacher/get-QA/:id", teacherOrAdmin},
		{http.MethodGet, "/teacher/get-quations-count", teacherOrAdmin},
		{http.MethodDelete, "/teacher/delete-comment/:id", teacherOrAdmin},
	}

	admin := []struct{ method, suffix string }{
		{http.MethodGet, "/get-categories"},
		{http.MethodPost, "/add-category"},
		{http.MethodPut, "/edit-category/:id"},
		{http.MethodDelete, "/delete-category/:id"},
		{http.MethodGet, "/get-departments"},
		{http.MethodPost, "/add-department"},
		{http.MethodPut, "/edit-department/:id"},
		{http.MethodDelete, "/delete-department/:id"},
		{http.MethodGet, "/get-students"},
		{http.MethodDelete, "/delete-student/:id"},
		{http.MethodGet, "/get-teachers"},
		{http.MethodPost, "/add-teacher"},
		{http.MethodPut, "/edit-teacher/:id"},
		{http.MethodDelete, "/delete-teacher/:id"},
		{http.MethodGet, "/get-admins"},
		{http.MethodPost, "/add-admin"},
		{http.MethodDelete, "/delete-admin/:id"},
		{http.MethodGet, "/dashboard-counts"},
		{http.MethodGet, "/export/:role"},
	}
	for _, a := range admin {
		rules = append(rules, AdminRoute(a.method, a.suffix)...)
	}

	return NewPolicy(rules...)
}
