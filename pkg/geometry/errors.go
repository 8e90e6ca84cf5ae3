package geometry

// Code is a machine-readable error code.
type Code string

const (
	// CodeInvalidArgument marks caller input that cannot be converted or parsed.
	CodeInvalidArgument Code = "INVALID_ARGUMENT"

	// CodeConfiguration marks a hosting environment missing something the
	// vector type needs. It is not recoverable by retrying.
	CodeConfiguration Code = "CONFIGURATION"
)

// Sentinels for errors.Is; any *Error with the same code matches.
var (
	ErrInvalidArgument = &Error{Code: CodeInvalidArgument, Message: "invalid argument"}
	ErrConfiguration   = &Error{Code: CodeConfiguration, Message: "configuration error"}
)

// Error is the error type returned by vector operations
type Error struct {
	Code    Code
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause for error chain traversal.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error by code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// NewError creates an error with a code and message
func NewError(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// WrapError creates an error that wraps an underlying cause
func WrapError(code Code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Cause: cause}
}
