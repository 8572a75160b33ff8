package dto

import "strings"

// ErrorResponse is the HTTP error envelope. Message is human-readable and
// surfaced verbatim by the admin UI.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error builds an ErrorResponse with Success always false.
func Error(code, message string) ErrorResponse {
	return ErrorResponse{Success: false, Code: code, Message: message}
}

// MessageResponse is the generic success envelope for mutations.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// PaginationDTO carries page metadata for page-based listings.
type PaginationDTO struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// ParseList splits a comma-separated form value into a trimmed list,
// dropping empty entries. "S, M,,L" -> ["S" "M" "L"].
func ParseList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
