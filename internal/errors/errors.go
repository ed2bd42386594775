// Package errors provides unified error handling across the draftsmith system.
//
// SYSTEM ARCHITECTURE ROLE:
// This module serves as the foundation for error handling across the pipeline
// and its hosting CLI. It standardizes error representation, categorization,
// and handling patterns throughout the application.
//
// KEY RESPONSIBILITIES:
// - Define standardized error codes for the pipeline's failure taxonomy
// - Provide structured error types (AppError) with severity levels and context
// - Carry machine-readable recovery data (missing key, ranked candidates)
//   so callers can correct their input and retry
// - Distinguish the single fatal failure (catalog load) from recoverable ones
//
// INTEGRATION POINTS:
// - internal/catalog: load-time validation returns CatalogLoadError
// - internal/classifier: input validation returns InvalidInputError
// - internal/renderer: missing required slots return MissingRequiredFieldError
// - internal/service: dispatch outcomes return UnclassifiedRequestError and
//   AmbiguousRequestError with candidate context attached
// - internal/cli: CLIErrorHandler formats AppErrors for terminal display
//
// USAGE PATTERNS:
// - Create errors: use constructor functions like MissingRequiredFieldError()
// - Wrap errors: use Wrap() to add context to existing errors
// - Check types: use IsCode() and GetAppError() for type-safe handling
package errors

import (
	"fmt"
	"time"
)

// ErrorCode represents standardized error codes
type ErrorCode string

const (
	// Startup errors
	ErrCodeCatalogLoad ErrorCode = "CATALOG_LOAD_ERROR"

	// Classification errors
	ErrCodeUnclassified ErrorCode = "UNCLASSIFIED_REQUEST"
	ErrCodeAmbiguous    ErrorCode = "AMBIGUOUS_REQUEST"

	// Rendering errors
	ErrCodeMissingRequiredField ErrorCode = "MISSING_REQUIRED_FIELD"
	ErrCodeTemplateNotFound     ErrorCode = "TEMPLATE_NOT_FOUND"

	// Input errors
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"

	// Internal errors
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// ErrorSeverity represents the severity level of an error
type ErrorSeverity string

const (
	SeverityInfo     ErrorSeverity = "info"
	SeverityWarning  ErrorSeverity = "warning"
	SeverityError    ErrorSeverity = "error"
	SeverityCritical ErrorSeverity = "critical"
)

// ErrorCategory represents the category of an error
type ErrorCategory string

const (
	CategoryCatalog        ErrorCategory = "catalog"
	CategoryClassification ErrorCategory = "classification"
	CategoryRendering      ErrorCategory = "rendering"
	CategoryValidation     ErrorCategory = "validation"
	CategorySystem         ErrorCategory = "system"
)

// AppError represents a standardized application error
type AppError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Severity  ErrorSeverity          `json:"severity"`
	Category  ErrorCategory          `json:"category"`
	Cause     error                  `json:"-"`
	Context   map[string]interface{} `json:"context,omitempty"`
	Timestamp time.Time              `json:"timestamp"`

	// Recoverable marks errors the caller can fix by correcting input and
	// retrying. Only catalog load and internal faults are not.
	Recoverable bool `json:"recoverable"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithContext adds context to the error
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// WithDetails adds details to the error
func (e *AppError) WithDetails(details string) *AppError {
	e.Details = details
	return e
}

// NewAppError creates a new application error
func NewAppError(code ErrorCode, message string) *AppError {
	category, severity := categorizeError(code)
	return &AppError{
		Code:        code,
		Message:     message,
		Severity:    severity,
		Category:    category,
		Timestamp:   time.Now(),
		Recoverable: code != ErrCodeCatalogLoad && code != ErrCodeInternal,
	}
}

// Wrap wraps an existing error with application error context
func Wrap(err error, code ErrorCode, message string) *AppError {
	appErr := NewAppError(code, message)
	appErr.Cause = err
	return appErr
}

// categorizeError determines the category and severity based on error code
func categorizeError(code ErrorCode) (ErrorCategory, ErrorSeverity) {
	switch code {
	case ErrCodeCatalogLoad:
		return CategoryCatalog, SeverityCritical
	case ErrCodeUnclassified, ErrCodeAmbiguous:
		return CategoryClassification, SeverityWarning
	case ErrCodeMissingRequiredField:
		return CategoryRendering, SeverityWarning
	case ErrCodeTemplateNotFound:
		return CategoryRendering, SeverityInfo
	case ErrCodeInvalidInput:
		return CategoryValidation, SeverityWarning
	default:
		return CategorySystem, SeverityError
	}
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) bool {
	_, ok := err.(*AppError)
	return ok
}

// GetAppError extracts an AppError from an error, or converts it to one
func GetAppError(err error) *AppError {
	if appErr, ok := err.(*AppError); ok {
		return appErr
	}
	return Wrap(err, ErrCodeInternal, "Internal error occurred")
}

// IsCode reports whether err is an AppError carrying the given code.
func IsCode(err error, code ErrorCode) bool {
	appErr, ok := err.(*AppError)
	return ok && appErr.Code == code
}

// CatalogLoadError reports malformed or conflicting template definitions.
// It is the only fatal error: the process must not serve requests with a
// partially loaded catalog.
func CatalogLoadError(detail string) *AppError {
	return NewAppError(ErrCodeCatalogLoad, "Template catalog failed to load").
		WithDetails(detail)
}

// TemplateNotFoundError reports a lookup for an id the catalog does not hold.
func TemplateNotFoundError(id string) *AppError {
	return NewAppError(ErrCodeTemplateNotFound, fmt.Sprintf("Template '%s' not found", id)).
		WithContext("template_id", id)
}

// UnclassifiedRequestError reports that no template keyword matched the
// request. Suggestions, when present, are fuzzy near-misses the caller may
// offer as explicit hints.
func UnclassifiedRequestError(request string, suggestions []string) *AppError {
	appErr := NewAppError(ErrCodeUnclassified, "No template matched the request").
		WithContext("request", request)
	if len(suggestions) > 0 {
		appErr.WithContext("suggestions", suggestions)
	}
	return appErr
}

// AmbiguousRequestError reports that the top candidates matched too closely
// to pick one without caller input. Candidates are attached ranked so the
// caller can disambiguate explicitly.
func AmbiguousRequestError(candidates interface{}) *AppError {
	return NewAppError(ErrCodeAmbiguous, "Request matched multiple templates too closely to choose").
		WithContext("candidates", candidates)
}

// MissingRequiredFieldError names the exact placeholder key that has no
// supplied value so the caller can resubmit.
func MissingRequiredFieldError(key string) *AppError {
	return NewAppError(ErrCodeMissingRequiredField, fmt.Sprintf("Required field '%s' has no value", key)).
		WithContext("key", key)
}

// InvalidInputError reports malformed caller input outside the template
// field system (empty request text, unknown category hint).
func InvalidInputError(message string) *AppError {
	return NewAppError(ErrCodeInvalidInput, message)
}

// InternalError reports a fault in the pipeline itself.
func InternalError(message string) *AppError {
	return NewAppError(ErrCodeInternal, message)
}
