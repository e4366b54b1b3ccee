package auth

import "errors"

var (
	ErrMissingAPIKey  = errors.New("missing API key")
	ErrInvalidAPIKey  = errors.New("invalid API key")
	ErrEmptySecret    = errors.New("API key secret is empty")
	ErrInvalidKeyHash = errors.New("API key hash is not a bcrypt hash")
)
