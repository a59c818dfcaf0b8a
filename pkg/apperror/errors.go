package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
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

// Is reports whether target is an AppError with the same code, so callers
// can match against a freshly constructed error: errors.Is(err, ErrRewardTooSmall()).
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return t.Code == e.Code
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

// ---- Reward Issuance & Redemption (RWD) ----

func ErrInvalidAmount() *AppError {
	return New("RWD_001", "Amount must be greater than zero", http.StatusBadRequest)
}

func ErrTransactionIDTooLong() *AppError {
	return New("RWD_002", "Transaction ID exceeds 64 bytes", http.StatusBadRequest)
}

func ErrTransactionAlreadyProcessed() *AppError {
	return New("RWD_003", "Transaction already processed", http.StatusConflict)
}

func ErrRewardTooSmall() *AppError {
	return New("RWD_004", "Reward amount rounds to zero", http.StatusUnprocessableEntity)
}

func ErrInsufficientBalance() *AppError {
	return New("RWD_005", "Insufficient reward balance", http.StatusPaymentRequired)
}

func ErrRewardRateTooHigh() *AppError {
	return New("RWD_006", "Reward rate exceeds 1000 basis points", http.StatusBadRequest)
}

func ErrArithmeticOverflow() *AppError {
	return New("RWD_007", "Arithmetic overflow", http.StatusUnprocessableEntity)
}

func ErrInvalidDerivedKey() *AppError {
	return New("RWD_008", "Account key does not match its derivation", http.StatusBadRequest)
}

func ErrNotFound(entity string) *AppError {
	return New("RWD_009", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

// ---- Program Administration (PRG) ----

func ErrProgramAlreadyInitialized() *AppError {
	return New("PRG_001", "Program already initialized", http.StatusConflict)
}

func ErrProgramNotInitialized() *AppError {
	return New("PRG_002", "Program not initialized", http.StatusConflict)
}

func ErrInvalidMintAuthority() *AppError {
	return New("PRG_003", "Mint authority must be the program state account", http.StatusBadRequest)
}

func ErrInvalidDecimals() *AppError {
	return New("PRG_004", "Token decimals must be between 0 and 9", http.StatusBadRequest)
}

// ---- Authentication (AUTH) ----

func ErrUnauthorized() *AppError {
	return New("AUTH_001", "Unauthorized", http.StatusForbidden)
}

func ErrInvalidToken() *AppError {
	return New("AUTH_002", "Invalid or expired token", http.StatusUnauthorized)
}

func ErrInvalidSignature() *AppError {
	return New("AUTH_003", "Invalid signature", http.StatusUnauthorized)
}

func ErrChallengeExpired() *AppError {
	return New("AUTH_004", "Login challenge expired or already used", http.StatusUnauthorized)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_001", "Internal database error", http.StatusInternalServerError, err)
}

func ErrLockTimeout(err error) *AppError {
	return Wrap("SYS_002", "Lock acquisition timeout", http.StatusServiceUnavailable, err)
}

func ErrLedgerFailure(err error) *AppError {
	return Wrap("SYS_003", "Token ledger failure", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a request validation error.
func Validation(message string) *AppError {
	return New("REQ_001", message, http.StatusBadRequest)
}

func ErrPayloadTooLarge() *AppError {
	return New("REQ_002", "Request body too large", http.StatusRequestEntityTooLarge)
}
