package dto

// ErrorBody is the wire shape for single-message failures
type ErrorBody struct {
	Error string `json:"error"`
}

// NewErrorBody creates an ErrorBody from an error message
func NewErrorBody(message string) ErrorBody {
	return ErrorBody{Error: message}
}

// FieldErrors is the wire shape for request validation failures: one message
// per offending field, keyed by the field's JSON name.
type FieldErrors map[string]string

// PageResponse is the wire shape for paginated listings
type PageResponse[T any] struct {
	Content       []T   `json:"content"`
	Page          int   `json:"page"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
}

// NewPageResponse creates a PageResponse from a page of content
func NewPageResponse[T any](content []T, page, size int, total int64) PageResponse[T] {
	totalPages := 0
	if size > 0 {
		totalPages = int((total + int64(size) - 1) / int64(size))
	}
	if content == nil {
		content = []T{}
	}
	return PageResponse[T]{
		Content:       content,
		Page:          page,
		Size:          size,
		TotalElements: total,
		TotalPages:    totalPages,
	}
}

// ListRequest carries pagination and sorting query parameters
type ListRequest struct {
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// Normalize applies paging defaults so the response envelope reflects the
// page actually served
func (r *ListRequest) Normalize() {
	if r.Page <= 0 {
		r.Page = 1
	}
	if r.PageSize <= 0 {
		r.PageSize = 20
	}
}
