package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidRole        = errors.New("invalid role")
	ErrMissingCredentials = errors.New("missing credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")

	// Authorization errors
	ErrUnauthorizedRole = errors.New("role is not allowed for this resource")
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrPayloadTooLarge  = errors.New("payload too large")

	// Storage errors; the wrapped driver text never reaches a response body
	ErrStorage = errors.New("storage error")
)

// Domain errors. Each wraps one of the category sentinels above so the HTTP
// layer can classify it, while its message stays safe to show to clients.
var (
	ErrAccountNotFound    = NewCustomError(ErrResourceNotFound, "account not found")
	ErrEmailAlreadyExists = NewCustomError(ErrConflict, "email already exists")
	ErrLastAdmin          = NewCustomError(ErrConflict, "the last admin account cannot be removed")

	ErrCourseNotFound   = NewCustomError(ErrResourceNotFound, "course not found")
	ErrQuestionNotFound = NewCustomError(ErrResourceNotFound, "question not found")
	ErrCommentNotFound  = NewCustomError(ErrResourceNotFound, "comment not found")
	ErrExamNotFound     = NewCustomError(ErrResourceNotFound, "exam not found")
	ErrRatingOutOfRange = NewCustomError(ErrValidationFailed, "rating must be between 1 and 5")

	ErrDepartmentNotFound      = NewCustomError(ErrResourceNotFound, "department not found")
	ErrDepartmentAlreadyExists = NewCustomError(ErrConflict, "department with this name already exists")
	ErrCategoryNotFound        = NewCustomError(ErrResourceNotFound, "category not found")
	ErrCategoryAlreadyExists   = NewCustomError(ErrConflict, "category with this name already exists")
)

// NewConflictError creates a new custom error for conflict situations with a message
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}

// NewValidationError creates a validation error carrying a client-facing message
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// NewStorageError wraps a driver error. Error() returns only the generic text;
// the cause stays reachable through Cause for logging.
func NewStorageError(cause error) error {
	return &CustomError{
		Err:   ErrStorage,
		Cause: cause,
	}
}

// Is returns whether target matches any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Cause   error
	Message string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap exposes both the category sentinel and the underlying cause.
func (e *CustomError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	if e.Cause != nil {
		errs = append(errs, e.Cause)
	}
	return errs
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// ClientMessage returns the message safe to show to API clients, if any.
func ClientMessage(err error) string {
	var ce *CustomError
	if errors.As(err, &ce) && ce.Message != "" {
		return ce.Message
	}
	return ""
}
