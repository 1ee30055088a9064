package utils

import "net/http"

// Response is the envelope of every API answer. Data is always present and is
// null when there is nothing to return.
type Response struct {
	Status  int         `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

func NewResponse(status int, message string, data interface{}) Response {
	return Response{
		Status:  status,
		Message: message,
		Data:    data,
	}
}

// NewSuccessResponse creates a 200 Response.
func NewSuccessResponse(message string, data interface{}) Response {
	return NewResponse(http.StatusOK, message, data)
}

// NewErrorResponse creates an error Response with null data.
func NewErrorResponse(status int, message string) Response {
	return NewResponse(status, message, nil)
}
