package gemini

import (
	"errors"
	"fmt"

	"google.golang.org/genai"
)

var (
	// ErrMissingCredential is returned when no API key is configured.
	ErrMissingCredential = errors.New("Gemini API key not found in environment variables")
	// ErrEmptyResponse is returned when the model answers without candidates.
	ErrEmptyResponse = errors.New("empty response from Gemini")
)

// APIError is a remote failure carrying the HTTP status of the response.
type APIError struct {
	Code    int
	Status  string
	Message string
	Err     error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("gemini api error %d (%s): %s", e.Code, e.Status, e.Message)
}

func (e *APIError) Unwrap() error { return e.Err }

// StatusCode exposes the HTTP status to retry classification.
func (e *APIError) StatusCode() int { return e.Code }

// IsRateLimited reports whether e is an HTTP 429 answer.
func (e *APIError) IsRateLimited() bool {
	return e.Code == 429 || e.Status == "RESOURCE_EXHAUSTED"
}

// wrapError converts SDK errors into *APIError and leaves everything else
// untouched.
func wrapError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return &APIError{Code: apiErr.Code, Status: apiErr.Status, Message: apiErr.Message, Err: err}
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return &APIError{Code: apiErrPtr.Code, Status: apiErrPtr.Status, Message: apiErrPtr.Message, Err: err}
	}
	return err
}
