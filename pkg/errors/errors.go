package errors

import "fmt"

var (
	ErrNotFound        = fmt.Errorf("record not found")
	ErrBadRequest      = fmt.Errorf("bad request")
	ErrDuplicateSerial = fmt.Errorf("equipment with this serial number already exists")
)

// HttpError carries the HTTP status code and the public message for a
// failure, together with the wrapped cause and optional structured
// context for the log line.
type HttpError struct {
	Code    int
	Message string
	Err     error
	Context map[string]interface{}
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error, context map[string]interface{}) *HttpError {
	return &HttpError{
		Code:    code,
		Message: message,
		Err:     err,
		Context: context,
	}
}
