package service

import "errors"

// Sentinel errors mapped to response codes at the handler boundary.
var (
	ErrInvalidCredentials = errors.New("Invalid credentials")
	ErrAdminNotFound      = errors.New("Admin not found")
	ErrEventNotFound      = errors.New("Event not found")
)

// BadRequestError carries a field-validation failure message for a 400
// response. Checks run in a fixed sequence; the first failure wins.
type BadRequestError struct {
	Msg string
}

func (e *BadRequestError) Error() string { return e.Msg }

func badRequest(msg string) error {
	return &BadRequestError{Msg: msg}
}
