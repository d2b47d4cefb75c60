package apperrors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
)

// ErrorCode identifies an error class independently of its message.
type ErrorCode string

// FieldError is a single structured validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// AppError is the application error carried from services up to the
// HTTP boundary.
type AppError struct {
	Code     ErrorCode   `json:"code"`
	Message  string      `json:"message"`
	Details  interface{} `json:"details,omitempty"`
	Err      error       `json:"-"`
	HTTPCode int         `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		HTTPCode: httpCode,
	}
}

// Wrap keeps the underlying cause for logs while presenting a clean
// message to the client.
func Wrap(err error, code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		Err:      err,
		HTTPCode: httpCode,
	}
}

func (e *AppError) WithDetails(details interface{}) *AppError {
	clone := *e
	clone.Details = details
	return &clone
}

func (e *AppError) WithMessage(message string) *AppError {
	clone := *e
	clone.Message = message
	return &clone
}

func (e *AppError) MarshalJSON() ([]byte, error) {
	type alias struct {
		Code    ErrorCode   `json:"code"`
		Message string      `json:"message"`
		Details interface{} `json:"details,omitempty"`
	}
	return json.Marshal(&alias{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
	})
}

// Is wraps the standard errors.Is.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As wraps the standard errors.As.
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// Predeclared errors.
var (
	ErrInvalidCredentials = New(CodeInvalidCredentials, "Invalid email or password", http.StatusUnauthorized)
	ErrUnauthorized       = New(CodeUnauthorized, "Authentication required", http.StatusUnauthorized)
	ErrForbidden          = New(CodeForbidden, "Access denied", http.StatusForbidden)
	ErrInvalidToken       = New(CodeInvalidToken, "Invalid or expired token", http.StatusUnauthorized)

	ErrUserNotFound   = New(CodeNotFound, "User not found", http.StatusNotFound)
	ErrAdminNotFound  = New(CodeNotFound, "Admin not found", http.StatusNotFound)
	ErrUserBanned     = New(CodeForbidden, "User account banned", http.StatusForbidden)
	ErrAdminInactive  = New(CodeForbidden, "Admin account inactive", http.StatusForbidden)
	ErrEmailExists    = New(CodeAlreadyExists, "Email already exists", http.StatusConflict)
	ErrJobNotFound    = New(CodeNotFound, "Job not found", http.StatusNotFound)
	ErrNewsNotFound   = New(CodeNotFound, "Article not found", http.StatusNotFound)
	ErrValidation     = New(CodeValidationFailed, "Validation failed", http.StatusBadRequest)
	ErrRegistrationOff = New(CodeForbidden, "Public registration is disabled", http.StatusForbidden)

	ErrDuplicateApplication = New(CodeConflict, "You have already applied to this job", http.StatusConflict)
	ErrJobNotOpen           = New(CodeInvalidStatus, "Job is not open for applications", http.StatusBadRequest)
	ErrAlreadyModerated     = New(CodeInvalidStatus, "Content is not pending moderation", http.StatusBadRequest)
	ErrReasonRequired       = New(CodeValidationFailed, "Rejection requires a reason", http.StatusBadRequest)
)

// Factories.

func ValidationError(details interface{}) *AppError {
	return ErrValidation.WithDetails(details)
}

func InternalError(err error) *AppError {
	return Wrap(err, CodeInternalError, "Internal server error", http.StatusInternalServerError)
}

func NotFound(resource string) *AppError {
	return New(CodeNotFound, fmt.Sprintf("%s not found", resource), http.StatusNotFound)
}

func NewConflictError(message string) *AppError {
	return New(CodeConflict, message, http.StatusConflict)
}

func NewUnauthorizedError(message string) *AppError {
	return New(CodeUnauthorized, message, http.StatusUnauthorized)
}

func NewForbiddenError(message string) *AppError {
	return New(CodeForbidden, message, http.StatusForbidden)
}

func NewBadRequestError(message string) *AppError {
	return New(CodeValidationFailed, message, http.StatusBadRequest)
}
