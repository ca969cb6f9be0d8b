package config

import "errors"

var (
	// ErrNilConfig is returned when Load is given a nil pointer.
	ErrNilConfig = errors.New("config: nil pointer provided")

	// ErrParse is returned when environment variables cannot be parsed into
	// the configuration struct.
	ErrParse = errors.New("config: failed to parse environment variables")
)
