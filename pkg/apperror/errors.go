package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	Reason     string `json:"reason,omitempty"` // Machine-readable rejection reason (eligibility)
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// CodeOf returns the AppError code carried by err, or "" when err is not an AppError.
func CodeOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// ---- Validation (VAL) ----

// Validation rejects malformed input before any write happens.
func Validation(message string) *AppError {
	return New("VAL_001", message, http.StatusBadRequest)
}

func ErrBodyTooLarge(limit int64) *AppError {
	return New("VAL_002", fmt.Sprintf("Request body exceeds %d bytes", limit), http.StatusRequestEntityTooLarge)
}

// ---- Not Found (NF) ----

func ErrNotFound(entity string) *AppError {
	return New("NF_001", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

func ErrNothingToSettle() *AppError {
	return New("NF_002", "No pending revenue records match the given ids", http.StatusNotFound)
}

// ---- Eligibility (ELIG) ----

const (
	ReasonWalletInactive      = "WalletInactive"
	ReasonInsufficientBalance = "InsufficientBalance"
	ReasonMonthlyLimitReached = "MonthlyLimitReached"
	ReasonAmountExceedsLimit  = "AmountExceedsLimit"
)

func eligibility(code, reason, message string, status int) *AppError {
	e := New(code, message, status)
	e.Reason = reason
	return e
}

func ErrWalletInactive() *AppError {
	return eligibility("ELIG_001", ReasonWalletInactive, "Wallet is inactive", http.StatusForbidden)
}

func ErrInsufficientBalance() *AppError {
	return eligibility("ELIG_002", ReasonInsufficientBalance, "Insufficient balance for amount plus fee", http.StatusPaymentRequired)
}

func ErrMonthlyLimitReached() *AppError {
	return eligibility("ELIG_003", ReasonMonthlyLimitReached, "Monthly transaction limit reached for wallet tier", http.StatusUnprocessableEntity)
}

func ErrAmountExceedsLimit() *AppError {
	return eligibility("ELIG_004", ReasonAmountExceedsLimit, "Amount exceeds per-transaction limit for wallet tier", http.StatusUnprocessableEntity)
}

// ---- Conflict (CONF) ----

func ErrConflict(message string) *AppError {
	return New("CONF_001", message, http.StatusConflict)
}

// ---- Authentication (AUTH) ----

func ErrInvalidToken() *AppError {
	return New("AUTH_001", "Invalid or expired token", http.StatusUnauthorized)
}

func ErrForbidden() *AppError {
	return New("AUTH_002", "Insufficient role for this operation", http.StatusForbidden)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps a persistence or infrastructure failure as SYS_001.
// The cause is kept for logging and never rendered to clients.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}
