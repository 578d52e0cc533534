package auth

import "errors"

var (
	ErrPasswordTooShort = errors.New("the password must be at least 8 characters long")
	ErrPasswordTooLong  = errors.New("the password must not be longer than 72 bytes")

	ErrInvalidCredentials = errors.New("the email address or the password is wrong")
	ErrMissingToken       = errors.New("the Authorization header must contain a Bearer token")
	ErrInvalidToken       = errors.New("the token is invalid or has expired")
)

// IsUnauthorized reports whether err means the request is not authenticated.
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrInvalidCredentials) || errors.Is(err, ErrMissingToken) || errors.Is(err, ErrInvalidToken)
}
