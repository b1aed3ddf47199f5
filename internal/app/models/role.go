package models

import (
	"fmt"
	"strings"
)

// Role identifies which account table and signing key govern a credential.
type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
	RoleAdmin   Role = "admin"
)

// AllRoles lists every role in a stable order.
var AllRoles = []Role{RoleStudent, RoleTeacher, RoleAdmin}

// ParseRole converts a raw header/body value into a Role.
func ParseRole(s string) (Role, error) {
	switch r := Role(strings.ToLower(strings.TrimSpace(s))); r {
	case RoleStudent, RoleTeacher, RoleAdmin:
		return r, nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

// Table returns the account table for the role.
func (r Role) Table() string {
	switch r {
	case RoleStudent:
		return "students"
	case RoleTeacher:
		return "teachers"
	case RoleAdmin:
		return "super_admin"
	}
	return ""
}

// TokenHeader is the request header carrying this role's token, e.g. "teacher-token".
func (r Role) TokenHeader() string {
	return string(r) + "-token"
}

func (r Role) String() string { return string(r) }
