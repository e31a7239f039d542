package errors

import (
	"errors"
)

// ClassError is the error that carries its classification.
type ClassError interface {
	error
	Class() Class
}

// IsClass checks if given error is of given 'class'.
// Wrapped errors are unwrapped until the first ClassError is found.
func IsClass(err error, class Class) bool {
	var classError ClassError
	if !errors.As(err, &classError) {
		return false
	}
	return classError.Class() == class
}

// IsMajor checks if given error is classified with the 'major'.
func IsMajor(err error, major Major) bool {
	var classError ClassError
	if !errors.As(err, &classError) {
		return false
	}
	return classError.Class().Major() == major
}
