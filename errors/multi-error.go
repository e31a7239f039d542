package errors

import (
	"strings"
)

// MultiError is the slice of errors parsable into a single error.
type MultiError []error

// Error implements error interface.
func (m MultiError) Error() string {
	sb := &strings.Builder{}

	for i, e := range m {
		sb.WriteString(e.Error())
		if i != len(m)-1 {
			sb.WriteString(",")
		}
	}
	return sb.String()
}

// HasClass checks if any of the errors is classified with given 'class'.
func (m MultiError) HasClass(class Class) bool {
	for _, err := range m {
		if IsClass(err, class) {
			return true
		}
	}
	return false
}

// ErrorOrNil returns nil for an empty MultiError, the single error if it contains only one,
// and the MultiError itself otherwise.
func (m MultiError) ErrorOrNil() error {
	switch len(m) {
	case 0:
		return nil
	case 1:
		return m[0]
	default:
		return m
	}
}
