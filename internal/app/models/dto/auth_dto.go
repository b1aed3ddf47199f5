package dto

// LoginRequest is the unified login payload. Role is optional on the legacy
// per-role login paths, which fill it from the path.
type LoginRequest struct {
	Email    string `json:"email" example:"jane@school.edu"`
	Password string `json:"password" example:"secret"`
	Role     string `json:"role" example:"student"`
}

// LoginResponse keeps the loginStatus flag the front end switches on.
type LoginResponse struct {
	LoginStatus bool   `json:"loginStatus" example:"true"`
	Token       string `json:"token,omitempty"`
	Role        string `json:"role,omitempty" example:"student"`
	ID          int64  `json:"id,omitempty" example:"7"`
	Message     string `json:"message,omitempty"`
}

// SignUpRequest creates a student account
type SignUpRequest struct {
	Name         string `json:"name" form:"name" binding:"required,max=100"`
	Email        string `json:"email" form:"email" binding:"required,email"`
	Password     string `json:"password" form:"password" binding:"required,max=72"`
	DepartmentID *int64 `json:"department_id" form:"department_id" binding:"omitempty,gt=0"`
}

// CreateAccountRequest is used by admins to add teachers and admins
type CreateAccountRequest struct {
	Name         string `json:"name" form:"name" binding:"required,max=100"`
	Email        string `json:"email" form:"email" binding:"required,email"`
	Password     string `json:"password" form:"password" binding:"required,max=72"`
	DepartmentID *int64 `json:"department_id" form:"department_id" binding:"omitempty,gt=0"`
}

// UpdateAccountRequest replaces only the fields that are present
type UpdateAccountRequest struct {
	Name         *string `json:"name" form:"name" binding:"omitempty,max=100"`
	Email        *string `json:"email" form:"email" binding:"omitempty,email"`
	Password     *string `json:"password" form:"password" binding:"omitempty,max=72"`
	DepartmentID *int64  `json:"department_id" form:"department_id" binding:"omitempty,gt=0"`
}
