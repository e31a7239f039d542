package class

import (
	"github.com/maxgabut/pitest/errors"
)

// MjrMutator classifies the errors of the mutator catalog registration and the name resolution.
var MjrMutator errors.Major

// Mutator name classes.
var (
	MnrMutatorName errors.Minor

	// MutatorUnknownName is used for the requested names that are not registered in the catalog.
	MutatorUnknownName errors.Class
	// MutatorNameDuplicate is used in the strict registration when a name is registered
	// again with different operators.
	MutatorNameDuplicate errors.Class
	// MutatorNameEmpty is used for the registrations with an empty name.
	MutatorNameEmpty errors.Class
	// MutatorGroupEmpty is used for the names registered without any operator.
	MutatorGroupEmpty errors.Class
)

// Mutator operator classes.
var (
	MnrMutatorOperator errors.Minor

	// MutatorOperatorNil is used when a nil operator is registered.
	MutatorOperatorNil errors.Class
	// MutatorOperatorNoID is used for the operators with an empty identifier.
	MutatorOperatorNoID errors.Class
)

func registerMutatorClasses() {
	MjrMutator = errors.MustNewMajor()
	registerMinor(MjrMutator, &MnrMutatorName, &MutatorUnknownName, &MutatorNameDuplicate, &MutatorNameEmpty, &MutatorGroupEmpty)
	registerMinor(MjrMutator, &MnrMutatorOperator, &MutatorOperatorNil, &MutatorOperatorNoID)
}
