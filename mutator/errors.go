package mutator

import (
	stderrors "errors"

	"github.com/maxgabut/pitest/class"
	"github.com/maxgabut/pitest/errors"
)

// UnknownNameError is the error returned when the requested name is not registered in the catalog.
// It is classified with the class.MutatorUnknownName.
type UnknownNameError struct {
	*errors.DetailedError
	// Name is the requested name that was not found.
	Name string
}

func newUnknownNameError(name string) *UnknownNameError {
	err := errors.NewDetf(class.MutatorUnknownName, "unknown mutator or group name: '%s'", name)
	err.WithDetailf("The name: '%s' is not registered in the mutator catalog.", name)
	return &UnknownNameError{DetailedError: err, Name: name}
}

// UnknownName gets the unknown mutator name from the provided 'err', which might wrap the UnknownNameError.
// The second result is false if there is no UnknownNameError.
func UnknownName(err error) (string, bool) {
	var unknown *UnknownNameError
	if !stderrors.As(err, &unknown) || unknown == nil {
		return "", false
	}
	return unknown.Name, true
}
