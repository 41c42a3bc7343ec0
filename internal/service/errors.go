package service

import "errors"

// Domain errors. Their messages are returned to callers verbatim.
var (
	ErrCredentialsRequired = errors.New("Username and password required")
	ErrInvalidCredentials  = errors.New("Invalid credentials")
	ErrUsernameTaken       = errors.New("Username already exists")
	ErrItemInvalid         = errors.New("Title, 3 images, and link required")
	ErrInvalidPaging       = errors.New("page and limit must be positive integers")
)
