package user

import "errors"

var (
	ErrUserNotFound           = errors.New("user not found")
	ErrUserEmailExists        = errors.New("email already registered")
	ErrHRAccessRequired       = errors.New("hr access required")
	ErrEmployeeAccessRequired = errors.New("employee profile required")
)
