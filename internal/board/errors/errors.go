package errors

import (
	"fmt"
)

var (
	ErrNotFound             = fmt.Errorf("not found")
	ErrInvalidInput         = fmt.Errorf("invalid input")
	ErrInvalidCredentials   = fmt.Errorf("invalid credentials")
	ErrDuplicateEmail       = fmt.Errorf("email already registered")
	ErrDuplicateApplication = fmt.Errorf("already applied to this job")
	ErrForbidden            = fmt.Errorf("forbidden")
)
