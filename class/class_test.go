package class

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestClasses checks that the registered classes are unique and keep their majors.
func TestClasses(t *testing.T) {
	mutatorClasses := []struct {
		name  string
		value uint32
	}{
		{"MutatorUnknownName", uint32(MutatorUnknownName)},
		{"MutatorNameDuplicate", uint32(MutatorNameDuplicate)},
		{"MutatorNameEmpty", uint32(MutatorNameEmpty)},
		{"MutatorGroupEmpty", uint32(MutatorGroupEmpty)},
		{"MutatorOperatorNil", uint32(MutatorOperatorNil)},
		{"MutatorOperatorNoID", uint32(MutatorOperatorNoID)},
	}
	seen := map[uint32]string{}
	for _, c := range mutatorClasses {
		other, exists := seen[c.value]
		assert.False(t, exists, "%s has the same value as %s", c.name, other)
		seen[c.value] = c.name
	}

	assert.Equal(t, MjrMutator, MutatorUnknownName.Major())
	assert.Equal(t, MnrMutatorName, MutatorUnknownName.Minor())
	assert.Equal(t, MnrMutatorOperator, MutatorOperatorNoID.Minor())

	assert.Equal(t, MjrConfig, ConfigValueInvalid.Major())
	assert.Equal(t, MjrCommon, CommonLoggerUnknownLevel.Major())

	assert.Equal(t, MnrConfigRead, ConfigReadInvalid.Minor())
	assert.NotEqual(t, ConfigReadNotFound, ConfigReadInvalid)
	assert.NotEqual(t, ConfigValueNil, ConfigValueInvalid)

	assert.NotEqual(t, MjrMutator, MjrConfig)
	assert.NotEqual(t, MjrCommon, MjrConfig)
}
