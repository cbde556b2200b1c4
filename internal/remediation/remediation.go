// Package remediation classifies vendor SDK errors into structured,
// machine-readable results that include actionable guidance. Tool
// handlers embed the classification in their error envelopes so the
// calling model can correct course instead of retrying blindly.
package remediation

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Code is a machine-readable error category.
type Code string

const (
	CodeAuthFailed       Code = "AUTH_FAILED"
	CodeAccessDenied     Code = "ACCESS_DENIED"
	CodeNotFound         Code = "NOT_FOUND"
	CodeThrottled        Code = "THROTTLED"
	CodeInvalidRequest   Code = "INVALID_REQUEST"
	CodeConflict         Code = "CONFLICT"
	CodeTimeout          Code = "TIMEOUT"
	CodeMissingParameter Code = "MISSING_PARAMETER"
	CodeNotConfigured    Code = "NOT_CONFIGURED"
	CodeUnknown          Code = "UNKNOWN_ERROR"
)

// Classified is a vendor error mapped to a category plus remediation
// guidance.
type Classified struct {
	Code        Code     `json:"code"`
	Message     string   `json:"message"`
	Hint        string   `json:"hint,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
	cause       error
}

// Error implements the error interface.
func (c *Classified) Error() string {
	var sb strings.Builder
	sb.WriteString(c.Message)
	if c.Hint != "" {
		sb.WriteString(" | Hint: ")
		sb.WriteString(c.Hint)
	}
	return sb.String()
}

// Unwrap returns the underlying vendor error.
func (c *Classified) Unwrap() error { return c.cause }

// Classify maps err to a Classified result. action names the operation
// that failed ("list S3 buckets") and prefixes the message.
func Classify(action string, err error) *Classified {
	if err == nil {
		return nil
	}

	var already *Classified
	if errors.As(err, &already) {
		return already
	}

	if c := classifyAWS(action, err); c != nil {
		return c
	}
	if c := classifyAzure(action, err); c != nil {
		return c
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return &Classified{
			Code:    CodeTimeout,
			Message: fmt.Sprintf("%s timed out: %v", action, err),
			Hint:    "The provider did not respond in time. Retry the call, or narrow the request (shorter time window, fewer results).",
			cause:   err,
		}
	}
	if errors.Is(err, context.Canceled) {
		return &Classified{
			Code:    CodeTimeout,
			Message: fmt.Sprintf("%s was canceled: %v", action, err),
			cause:   err,
		}
	}

	return &Classified{
		Code:    CodeUnknown,
		Message: fmt.Sprintf("%s failed: %v", action, err),
		Hint:    "Check the error message for details. If it mentions credentials or connectivity, verify the server's environment configuration.",
		cause:   err,
	}
}

// MissingParameter builds a Classified for a missing required tool
// parameter. description explains what to provide.
func MissingParameter(name, description string) *Classified {
	return &Classified{
		Code:    CodeMissingParameter,
		Message: fmt.Sprintf("required parameter '%s' is missing", name),
		Hint:    description,
	}
}

// InvalidParameter builds a Classified for a parameter that was
// provided but could not be used.
func InvalidParameter(name string, value any, expected string) *Classified {
	return &Classified{
		Code:    CodeInvalidRequest,
		Message: fmt.Sprintf("invalid value for parameter '%s': %v", name, value),
		Hint:    fmt.Sprintf("Expected: %s", expected),
	}
}

// NotConfigured builds a Classified for a tool whose backing service
// is missing server-side configuration.
func NotConfigured(what, envVar string) *Classified {
	return &Classified{
		Code:    CodeNotConfigured,
		Message: fmt.Sprintf("%s is not configured on this server", what),
		Hint:    fmt.Sprintf("Set the %s environment variable for the server process and restart it.", envVar),
	}
}
