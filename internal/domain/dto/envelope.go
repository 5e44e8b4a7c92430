package dto

// SuccessResponse is the envelope wrapping every successful payload.
//
// Example:
//
//	{"success": true, "data": {...}}
type SuccessResponse struct {
	Success bool `json:"success" example:"true"`
	Data    any  `json:"data"`
}

// ErrorBody carries the status code and a client-safe message.
type ErrorBody struct {
	Code    int    `json:"code" example:"400"`
	Message string `json:"message" example:"The following currency does not exist: ZZZ"`
}

// ErrorResponse is the envelope wrapping every failure.
//
// Example:
//
//	{"success": false, "error": {"code": 400, "message": "..."}}
type ErrorResponse struct {
	Success bool      `json:"success" example:"false"`
	Error   ErrorBody `json:"error"`
}

// NewSuccessResponse wraps data in the success envelope.
func NewSuccessResponse(data any) SuccessResponse {
	return SuccessResponse{Success: true, Data: data}
}

// NewErrorResponse builds the failure envelope for the given HTTP status.
func NewErrorResponse(code int, message string) ErrorResponse {
	return ErrorResponse{
		Success: false,
		Error:   ErrorBody{Code: code, Message: message},
	}
}
