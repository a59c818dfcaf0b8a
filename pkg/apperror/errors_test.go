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
			appErr:   New("RWD_005", "Insufficient reward balance", http.StatusPaymentRequired),
			expected: "[RWD_005] Insufficient reward balance",
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
	appErr := Wrap("SYS_001", "wrapped", http.StatusInternalServerError, inner)

	assert.True(t, errors.Is(appErr, inner))
}

func TestAppError_IsNilUnwrap(t *testing.T) {
	appErr := New("RWD_001", "test", http.StatusBadRequest)
	assert.Nil(t, appErr.Unwrap())
}

func TestAppError_IsMatchesByCode(t *testing.T) {
	err := fmt.Errorf("mint: %w", ErrRewardTooSmall())

	assert.True(t, errors.Is(err, ErrRewardTooSmall()))
	assert.False(t, errors.Is(err, ErrInvalidAmount()))
}

func TestRewardErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"InvalidAmount", ErrInvalidAmount(), "RWD_001", 400},
		{"TransactionIDTooLong", ErrTransactionIDTooLong(), "RWD_002", 400},
		{"TransactionAlreadyProcessed", ErrTransactionAlreadyProcessed(), "RWD_003", 409},
		{"RewardTooSmall", ErrRewardTooSmall(), "RWD_004", 422},
		{"InsufficientBalance", ErrInsufficientBalance(), "RWD_005", 402},
		{"RewardRateTooHigh", ErrRewardRateTooHigh(), "RWD_006", 400},
		{"ArithmeticOverflow", ErrArithmeticOverflow(), "RWD_007", 422},
		{"InvalidDerivedKey", ErrInvalidDerivedKey(), "RWD_008", 400},
		{"NotFound", ErrNotFound("User rewards"), "RWD_009", 404},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestProgramErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"AlreadyInitialized", ErrProgramAlreadyInitialized(), "PRG_001", 409},
		{"NotInitialized", ErrProgramNotInitialized(), "PRG_002", 409},
		{"InvalidMintAuthority", ErrInvalidMintAuthority(), "PRG_003", 400},
		{"InvalidDecimals", ErrInvalidDecimals(), "PRG_004", 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestAuthErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"Unauthorized", ErrUnauthorized(), "AUTH_001", 403},
		{"InvalidToken", ErrInvalidToken(), "AUTH_002", 401},
		{"InvalidSignature", ErrInvalidSignature(), "AUTH_003", 401},
		{"ChallengeExpired", ErrChallengeExpired(), "AUTH_004", 401},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestSystemErrors(t *testing.T) {
	inner := fmt.Errorf("pg: connection closed")
	dbErr := ErrDatabaseError(inner)
	assert.Equal(t, "SYS_001", dbErr.Code)
	assert.Equal(t, 500, dbErr.HTTPStatus)
	assert.True(t, errors.Is(dbErr, inner))

	lockErr := ErrLockTimeout(inner)
	assert.Equal(t, "SYS_002", lockErr.Code)
	assert.Equal(t, 503, lockErr.HTTPStatus)

	ledgerErr := ErrLedgerFailure(inner)
	assert.Equal(t, "SYS_003", ledgerErr.Code)
	assert.Equal(t, 500, ledgerErr.HTTPStatus)
}

func TestRateLimitError(t *testing.T) {
	err := ErrRateLimitExceeded()
	assert.Equal(t, "RATE_001", err.Code)
	assert.Equal(t, 429, err.HTTPStatus)
}

func TestNotFoundEntity(t *testing.T) {
	err := ErrNotFound("Transaction record")
	assert.Contains(t, err.Message, "Transaction record")
	assert.Equal(t, "RWD_009", err.Code)
}
