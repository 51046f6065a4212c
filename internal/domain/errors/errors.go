package errors

import (
	"net/http"

	"supermall/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// WithMessage returns a copy carrying a different user-facing message
func (e *BaseError) WithMessage(message string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   message,
		details:   e.details,
	}
}

// Is matches any BaseError carrying the same error code, so copies made by
// WithDetails or WithMessage still satisfy errors.Is against the sentinel.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// CodeOf returns the business error code carried by err, or "" when err is not an AppError.
func CodeOf(err error) string {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr.ErrorCode()
	}

	return ""
}

// Predefined error types
var (
	// Input errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Validation failed",
		"",
	)

	ErrInvalidImage = NewBaseError(
		http.StatusBadRequest,
		"INVALID_IMAGE",
		"Unsupported or oversized image",
		"",
	)

	// Session errors
	ErrAuthenticationRequired = NewBaseError(
		http.StatusUnauthorized,
		"AUTHENTICATION_REQUIRED",
		"Authentication required",
		"",
	)

	ErrInvalidToken = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_TOKEN",
		"Invalid or expired token",
		"",
	)

	ErrPermissionDenied = NewBaseError(
		http.StatusForbidden,
		"PERMISSION_DENIED",
		"Permission denied",
		"",
	)

	// Identity provider errors
	ErrEmailAlreadyExists = NewBaseError(
		http.StatusConflict,
		"EMAIL_ALREADY_EXISTS",
		"This email address is already registered",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Incorrect email or password",
		"",
	)

	ErrWeakPassword = NewBaseError(
		http.StatusBadRequest,
		"WEAK_PASSWORD",
		"Password should be at least 6 characters",
		"",
	)

	ErrNetwork = NewBaseError(
		http.StatusServiceUnavailable,
		"NETWORK_ERROR",
		"Network error: could not reach the identity provider. Check your connection and try again.",
		"",
	)

	ErrIdentityProviderFailed = NewBaseError(
		http.StatusBadGateway,
		"IDENTITY_PROVIDER_FAILED",
		"The identity provider rejected the request",
		"",
	)

	// Catalog errors
	ErrShopNotFound = NewBaseError(
		http.StatusNotFound,
		"SHOP_NOT_FOUND",
		"Shop not found",
		"",
	)

	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"Product not found",
		"",
	)

	ErrOfferNotFound = NewBaseError(
		http.StatusNotFound,
		"OFFER_NOT_FOUND",
		"Offer not found",
		"",
	)

	ErrShopHasDependents = NewBaseError(
		http.StatusConflict,
		"SHOP_HAS_DEPENDENTS",
		"Delete the shop's products and offers before deleting the shop",
		"",
	)

	ErrProductInUse = NewBaseError(
		http.StatusConflict,
		"PRODUCT_IN_USE",
		"The product is referenced by an offer; unlink it before deleting",
		"",
	)

	ErrImageUploadFailed = NewBaseError(
		http.StatusBadGateway,
		"IMAGE_UPLOAD_FAILED",
		"Failed to upload the product image",
		"",
	)

	ErrImageDeleteFailed = NewBaseError(
		http.StatusBadGateway,
		"IMAGE_DELETE_FAILED",
		"Failed to delete the product image; the product was kept",
		"",
	)

	ErrMediaNotFound = NewBaseError(
		http.StatusNotFound,
		"MEDIA_NOT_FOUND",
		"Media not found",
		"",
	)

	ErrQRCodeFailed = NewBaseError(
		http.StatusInternalServerError,
		"QR_CODE_FAILED",
		"Failed to generate the QR code",
		"",
	)
)

// Friendly messages for ownership failures.
const (
	MsgShopUpdateDenied = "Permission denied: you are not allowed to update this shop."
	MsgShopDeleteDenied = "Permission denied: you are not allowed to delete this shop."
	MsgCatalogDenied    = "Permission denied: you are not allowed to change this shop's products or offers."
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Storage backend request failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
