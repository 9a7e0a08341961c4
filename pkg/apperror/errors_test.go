package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name:     "without wrapped error",
			appErr:   New("ELIG_002", "Insufficient balance", http.StatusPaymentRequired),
			expected: "[ELIG_002] Insufficient balance",
		},
		{
			name:     "with wrapped error",
			appErr:   Wrap("SYS_001", "DB error", http.StatusInternalServerError, fmt.Errorf("connection refused")),
			expected: "[SYS_001] DB error: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.appErr.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	inner := fmt.Errorf("inner error")
	appErr := InternalError(inner)

	assert.True(t, errors.Is(appErr, inner))
	assert.Nil(t, Validation("bad").Unwrap())
}

func TestEligibilityErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		reason     string
		httpStatus int
	}{
		{"WalletInactive", ErrWalletInactive(), "ELIG_001", ReasonWalletInactive, 403},
		{"InsufficientBalance", ErrInsufficientBalance(), "ELIG_002", ReasonInsufficientBalance, 402},
		{"MonthlyLimitReached", ErrMonthlyLimitReached(), "ELIG_003", ReasonMonthlyLimitReached, 422},
		{"AmountExceedsLimit", ErrAmountExceedsLimit(), "ELIG_004", ReasonAmountExceedsLimit, 422},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.reason, tt.err.Reason)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestOtherErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"Validation", Validation("transferAmount is required"), "VAL_001", 400},
		{"BodyTooLarge", ErrBodyTooLarge(1024), "VAL_002", 413},
		{"NotFound", ErrNotFound("Wallet"), "NF_001", 404},
		{"NothingToSettle", ErrNothingToSettle(), "NF_002", 404},
		{"Conflict", ErrConflict("duplicate reference"), "CONF_001", 409},
		{"InvalidToken", ErrInvalidToken(), "AUTH_001", 401},
		{"Forbidden", ErrForbidden(), "AUTH_002", 403},
		{"RateLimit", ErrRateLimitExceeded(), "RATE_001", 429},
		{"Internal", InternalError(errors.New("boom")), "SYS_001", 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestErrNotFound_Message(t *testing.T) {
	assert.Equal(t, "Wallet not found", ErrNotFound("Wallet").Message)
}

func TestCodeOf(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", ErrNothingToSettle())
	assert.Equal(t, "NF_002", CodeOf(wrapped))
	assert.Equal(t, "", CodeOf(errors.New("plain")))
}
