package dto

// APIResponse is the envelope every non-login endpoint answers with.
type APIResponse struct {
	Status  bool        `json:"status" example:"true"`
	Message string      `json:"message,omitempty" example:"Course added successfully"`
	Data    interface{} `json:"data,omitempty"`
}

// PaginatedData wraps a page of items with its metadata
type PaginatedData struct {
	Items      interface{}    `json:"items"`
	Pagination PaginationInfo `json:"pagination"`
}

// PaginationInfo describes the returned page
type PaginationInfo struct {
	CurrentPage int   `json:"currentPage" example:"1"`
	TotalPages  int   `json:"totalPages" example:"3"`
	PageSize    int   `json:"pageSize" example:"10"`
	TotalItems  int64 `json:"totalItems" example:"27"`
}

// NewSuccessResponse builds a successful envelope
func NewSuccessResponse(data interface{}, message string) APIResponse {
	return APIResponse{
		Status:  true,
		Message: message,
		Data:    data,
	}
}

// NewErrorResponse builds a failed envelope
func NewErrorResponse(message string) APIResponse {
	return APIResponse{
		Status:  false,
		Message: message,
	}
}
