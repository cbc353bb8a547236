package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrUserNotFound marks a credential lookup miss. The login flow never
	// surfaces it to clients; see AuthService.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidCredentials covers both unknown email and wrong password in
	// client-facing responses, so failed logins cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("Invalid Credentials")
	ErrForbidden          = errors.New("access forbidden")
	ErrBadRequest         = errors.New("bad request")

	// Token verification failure kinds. The access guard treats all three as
	// unauthenticated; the token service keeps them distinct for audit logs.
	ErrTokenMalformed        = errors.New("token malformed")
	ErrTokenSignatureInvalid = errors.New("token signature invalid")
	ErrTokenExpired          = errors.New("token expired")
)

// DuplicateKeyError reports a uniqueness-constraint violation, carrying the
// field whose value collided.
type DuplicateKeyError struct {
	Field string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("Duplicate value for unique field: %s", e.Field)
}
