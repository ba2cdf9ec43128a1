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

// ---- Accumulator (ACC) ----

// ErrInvalidProof covers empty, malformed, and unverifiable integrity
// proofs. The failing submission leaves no state behind.
func ErrInvalidProof(err error) *AppError {
	return Wrap("ACC_001", "Invalid integrity proof", http.StatusBadRequest, err)
}

func ErrMalformedCiphertext(err error) *AppError {
	return Wrap("ACC_002", "Malformed contribution ciphertext", http.StatusBadRequest, err)
}

// ---- Capabilities (CAP) ----

// ErrNoTotalYet is returned when a grant or publication is requested before
// the account has accumulated anything.
func ErrNoTotalYet() *AppError {
	return New("CAP_001", "No total has been accumulated yet", http.StatusConflict)
}

// ErrInvalidViewer rejects the null identity and self-grants.
func ErrInvalidViewer() *AppError {
	return New("CAP_002", "Invalid viewer identity", http.StatusBadRequest)
}

// ErrDecryptDenied is returned when no grant covers (handle, caller).
func ErrDecryptDenied() *AppError {
	return New("CAP_003", "No decrypt-rights on this handle", http.StatusForbidden)
}

func ErrUnknownHandle() *AppError {
	return New("CAP_004", "Unknown ciphertext handle", http.StatusNotFound)
}

// ---- Authentication (AUTH) ----

func ErrInvalidCredentials() *AppError {
	return New("AUTH_001", "Invalid credentials", http.StatusUnauthorized)
}

func ErrUsernameExists() *AppError {
	return New("AUTH_002", "Username already exists", http.StatusConflict)
}

func ErrInvalidToken() *AppError {
	return New("AUTH_003", "Invalid or expired token", http.StatusUnauthorized)
}

// ---- Security (SEC) ----

// ErrProofReplayed rejects a resubmission of an already-seen
// ciphertext/proof pair. Fresh encryptions always produce fresh pairs.
func ErrProofReplayed() *AppError {
	return New("SEC_002", "Contribution proof already used", http.StatusConflict)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

func ErrEngineFailure(err error) *AppError {
	return Wrap("SYS_002", "Encryption engine failure", http.StatusInternalServerError, err)
}

// ---- Request Validation (VAL) ----

// Validation returns a request validation error. Malformed requests get the
// same code on every endpoint; the domain code families stay reserved for
// domain outcomes.
func Validation(message string) *AppError {
	return New("VAL_001", message, http.StatusBadRequest)
}
