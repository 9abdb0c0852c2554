package dto

import "github.com/namalnexus/backend/internal/pkg/helpers"

// APIResponse is the uniform response envelope
type APIResponse struct {
	Success bool        `json:"success" example:"true"`
	Message string      `json:"message,omitempty" example:"Operation completed successfully"`
	Data    interface{} `json:"data,omitempty"`
}

// NewAPIResponse creates a success envelope around data
func NewAPIResponse(data interface{}, message string) APIResponse {
	return APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	}
}

// ListResponse is the pagination envelope returned by all list endpoints
type ListResponse struct {
	Success     bool        `json:"success" example:"true"`
	Count       int         `json:"count" example:"10"`
	Total       int64       `json:"total" example:"42"`
	Page        int         `json:"page" example:"1"`
	TotalPages  int         `json:"totalPages" example:"5"`
	HasNextPage bool        `json:"hasNextPage" example:"true"`
	HasPrevPage bool        `json:"hasPrevPage" example:"false"`
	Data        interface{} `json:"data"`
}

// NewListResponse assembles the pagination envelope for one result page
func NewListResponse(data interface{}, count int, total int64, meta helpers.PageMeta) ListResponse {
	return ListResponse{
		Success:     true,
		Count:       count,
		Total:       total,
		Page:        meta.Page,
		TotalPages:  meta.TotalPages,
		HasNextPage: meta.HasNextPage,
		HasPrevPage: meta.HasPrevPage,
		Data:        data,
	}
}

// ErrorResponse is the uniform error envelope
type ErrorResponse struct {
	Success bool     `json:"success" example:"false"`
	Message string   `json:"message" example:"Validation failed"`
	Errors  []string `json:"errors,omitempty"`
}

// NewErrorResponse creates an error envelope, optionally with itemized messages
func NewErrorResponse(message string, errors ...string) ErrorResponse {
	return ErrorResponse{
		Success: false,
		Message: message,
		Errors:  errors,
	}
}
