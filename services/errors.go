package services

// Error is a business-rule failure surfaced to the request handler, which
// maps it to a structured 400 response. Code is a stable machine-readable
// identifier; Message is safe to show to clients.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// NewError builds a business-rule error
func NewError(code, message string) *Error {
	return &Error{Code: code, Message: message}
}
