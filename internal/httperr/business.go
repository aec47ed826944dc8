package httperr

import "errors"

// BusinessError is a client-facing rule violation (bad request).
type BusinessError struct {
	Code    string
	Message string
}

func (e BusinessError) Error() string {
	return e.Code + ": " + e.Message
}

func ErrBusiness(code, message string) error {
	return BusinessError{Code: code, Message: message}
}

// NotFoundError reports a referenced entity that does not exist.
type NotFoundError struct {
	Code    string
	Message string
}

func (e NotFoundError) Error() string {
	return e.Code + ": " + e.Message
}

func ErrNotFound(code, message string) error {
	return NotFoundError{Code: code, Message: message}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

func IsNotFound(err error) bool {
	var nf NotFoundError
	return errors.As(err, &nf)
}
