package model

import "errors"

// Common errors used across the application
var (
	// Session errors
	ErrSessionNotFound = errors.New("session not found")

	// Request errors
	ErrInvalidSourceWord = errors.New("source word is required")
)
