package types

import "fmt"

// ErrorCode is a stable machine-readable error code surfaced to API clients.
type ErrorCode string

const (
	CodeInvalidPrompt  ErrorCode = "INVALID_PROMPT"
	CodeInvalidCuisine ErrorCode = "INVALID_CUISINE"
	CodeBadRequest     ErrorCode = "BAD_REQUEST"
	CodeLLMDown        ErrorCode = "LLM_DOWN"
	CodeLLMTimeout     ErrorCode = "LLM_TIMEOUT"
	CodeInternalError  ErrorCode = "INTERNAL_ERROR"
)

// Message returns the human-readable message for the code. These are the
// only messages clients ever see; internal detail stays in the logs.
func (c ErrorCode) Message() string {
	switch c {
	case CodeInvalidPrompt:
		return "Prompt is required and cannot be blank."
	case CodeInvalidCuisine:
		return "Cuisine must be one of: ITALIAN, MEXICAN, INDIAN, THAI, OTHER."
	case CodeBadRequest:
		return "Malformed request or invalid JSON."
	case CodeLLMDown:
		return "Failed to reach recipe generation service."
	case CodeLLMTimeout:
		return "Recipe generation service timed out."
	default:
		return "An unexpected error occurred."
	}
}

// ValidationError reports a request the caller can fix. Surfaced as 400.
type ValidationError struct {
	Code ErrorCode
}

func (e *ValidationError) Error() string {
	return e.Code.Message()
}

// DownstreamError reports a failure of the generation service. Surfaced as a
// gateway error (502/504). Cause is kept for diagnostics but never sent to
// the client.
type DownstreamError struct {
	Code  ErrorCode
	Cause error
}

func (e *DownstreamError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Code.Message(), e.Cause)
	}
	return e.Code.Message()
}

func (e *DownstreamError) Unwrap() error {
	return e.Cause
}

// ErrorResponse is the wire shape for every error the API returns.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}
