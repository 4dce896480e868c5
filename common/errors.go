package common

import "errors"

var (
	ErrorInvalidValue     = errors.New("invalid value")
	ErrorLengthMismatch   = errors.New("series length mismatch")
	ErrorInsufficientData = errors.New("insufficient data")
	ErrorUnknownMethod    = errors.New("unknown method")
)
