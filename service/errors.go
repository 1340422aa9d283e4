package service

import "errors"

// ErrValidation marks a blocked action: required input was missing or out of range.
// Nothing is partially committed when it is returned.
var ErrValidation = errors.New("validation failed")
