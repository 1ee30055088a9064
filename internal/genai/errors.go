package genai

import (
	"encoding/json"
	"fmt"
)

// APIError is a non-2xx answer from the provider. Message is the provider's own
// text, passed through verbatim.
type APIError struct {
	StatusCode int
	Status     string
	Message    string
	Body       string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Body)
}

// googleErrorEnvelope is the error body of Google APIs.
type googleErrorEnvelope struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

func newAPIError(statusCode int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: statusCode, Body: string(body)}

	var env googleErrorEnvelope
	if err := json.Unmarshal(body, &env); err == nil {
		apiErr.Message = env.Error.Message
		apiErr.Status = env.Error.Status
	}
	return apiErr
}
