package apperror

// AppError carries an HTTP status code alongside a user-facing message so
// handlers can map domain errors to responses without switch ladders.
type AppError struct {
	Code    int    // HTTP status code
	Message string // User-facing message
	Err     error  // Underlying error, never exposed to the user
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates an AppError with a status code and message.
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap creates an AppError wrapping an existing error.
func Wrap(err error, code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
