package models

// Principal is the authenticated caller of a request, taken from a verified token.
type Principal struct {
	Role  Role   `json:"role"`
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

// IsAdmin reports whether the principal is a super admin
func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}
