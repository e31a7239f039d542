package class

import (
	"github.com/maxgabut/pitest/errors"
)

func init() {
	registerCommonClasses()
	registerConfigClasses()
	registerMutatorClasses()
}

// registerMinor registers new minor of the 'major' and one index per each of the 'classes'.
// The classes get their values in the order of the arguments.
func registerMinor(major errors.Major, minor *errors.Minor, classes ...*errors.Class) {
	*minor = errors.MustNewMinor(major)
	for _, c := range classes {
		*c = errors.MustNewClass(major, *minor, errors.MustNewIndex(major, *minor))
	}
}
