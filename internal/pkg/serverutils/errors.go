package serverutils

// ApiError is a user-facing failure with an HTTP status. Messages are
// phrased as actionable guidance, never raw upstream errors.
type ApiError struct {
	StatusCode int
	Message    string
}

func (e *ApiError) Error() string {
	return e.Message
}

func NewApiError(statusCode int, message string) *ApiError {
	return &ApiError{
		StatusCode: statusCode,
		Message:    message,
	}
}
