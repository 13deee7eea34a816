package usecase

import "errors"

var (
	ErrInvalidURL         = errors.New("invalid URL format")
	ErrEmptyURL           = errors.New("URL is required")
	ErrInvalidValidity    = errors.New("validity must be between 1 and 525600 minutes")
	ErrInvalidShortcode   = errors.New("shortcode must be 3-10 alphanumeric characters")
	ErrShortcodeConflict  = errors.New("shortcode already exists")
	ErrServiceUnavailable = errors.New("service unavailable")
	ErrURLNotFound        = errors.New("URL not found")
	ErrURLExpired         = errors.New("URL has expired")
)
