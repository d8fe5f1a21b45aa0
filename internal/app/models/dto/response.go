package dto

// APIResponse is the envelope every single-record operation resolves to.
type APIResponse[T any] struct {
	Data    T            `json:"data"`
	Success bool         `json:"success" example:"true"`
	Message string       `json:"message,omitempty" example:"Event retrieved successfully"`
	Error   *ErrorDetail `json:"error,omitempty"`
}

// PaginationInfo represents pagination metadata.
// Total counts the matching items before slicing.
type PaginationInfo struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// PaginatedResponse is the envelope of every list operation.
type PaginatedResponse[T any] struct {
	Data       []T            `json:"data"`
	Success    bool           `json:"success"`
	Message    string         `json:"message,omitempty"`
	Error      *ErrorDetail   `json:"error,omitempty"`
	Pagination PaginationInfo `json:"pagination"`
}

// Empty is the payload of operations that return no data, such as deletes.
type Empty struct{}

// OK wraps data in a successful envelope.
func OK[T any](data T, message string) APIResponse[T] {
	return APIResponse[T]{
		Data:    data,
		Success: true,
		Message: message,
	}
}

// Fail builds a failed envelope carrying detail.
func Fail[T any](detail *ErrorDetail) APIResponse[T] {
	resp := APIResponse[T]{Error: detail}
	if detail != nil {
		resp.Message = detail.Message
	}
	return resp
}

// NewPaginated wraps one page of items.
func NewPaginated[T any](items []T, pagination PaginationInfo, message string) PaginatedResponse[T] {
	if items == nil {
		items = []T{}
	}
	return PaginatedResponse[T]{
		Data:       items,
		Success:    true,
		Message:    message,
		Pagination: pagination,
	}
}

// FailPaginated builds a failed list envelope.
func FailPaginated[T any](detail *ErrorDetail, pagination PaginationInfo) PaginatedResponse[T] {
	resp := PaginatedResponse[T]{
		Data:       []T{},
		Error:      detail,
		Pagination: pagination,
	}
	if detail != nil {
		resp.Message = detail.Message
	}
	return resp
}

// StatusCode returns the HTTP status an envelope should be served with.
func StatusCode(detail *ErrorDetail, success int) int {
	if detail == nil || detail.Code == 0 {
		return success
	}
	return detail.Code
}
