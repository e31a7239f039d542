package errors

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strconv"

	"github.com/google/uuid"
)

var _ ClassError = &DetailedError{}

// DetailedError is the classified error with the user facing details.
// The message says what failed, i.e. "unknown mutator or group name: 'MATH2'", while the details
// describe the context, i.e. which config file requested the name.
type DetailedError struct {
	// ID identifies this error instance in the logs.
	ID             uuid.UUID
	Classification Class
	// Details are the human readable context of the failure.
	Details string
	Message string
	// Operation is the function, file and line that created the error.
	Operation string
}

// NewDet creates the DetailedError classified as 'c' with the 'message'.
func NewDet(c Class, message string) *DetailedError {
	err := newDetailed(c)
	err.Message = message
	return err
}

// NewDetf creates the DetailedError classified as 'c' with the formatted message.
func NewDetf(c Class, format string, args ...interface{}) *DetailedError {
	err := newDetailed(c)
	err.Message = fmt.Sprintf(format, args...)
	return err
}

// Class implements ClassError.
func (e *DetailedError) Class() Class {
	return e.Classification
}

// Error implements error interface. Only the message is returned, the details are not.
func (e *DetailedError) Error() string {
	return e.Message
}

// WithDetail replaces the error details.
func (e *DetailedError) WithDetail(detail string) *DetailedError {
	e.Details = detail
	return e
}

// WithDetailf replaces the error details with the formatted ones.
func (e *DetailedError) WithDetailf(format string, args ...interface{}) *DetailedError {
	e.Details = fmt.Sprintf(format, args...)
	return e
}

// WrapDetailf puts the formatted context in front of the current details,
// i.e. the config file name in front of the validation failure.
func (e *DetailedError) WrapDetailf(format string, args ...interface{}) *DetailedError {
	detail := fmt.Sprintf(format, args...)
	if e.Details != "" {
		detail += " " + e.Details
	}
	e.Details = detail
	return e
}

func newDetailed(c Class) *DetailedError {
	err := &DetailedError{
		ID:             uuid.New(),
		Classification: c,
	}
	// skip newDetailed and the exported constructor.
	pc, _, _, ok := runtime.Caller(2)
	if !ok {
		return err
	}
	if fn := runtime.FuncForPC(pc); fn != nil {
		file, line := fn.FileLine(pc)
		err.Operation = fn.Name() + "#" + filepath.Base(file) + ":" + strconv.Itoa(line)
	}
	return err
}
