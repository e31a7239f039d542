package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxgabut/pitest/class"
	"github.com/maxgabut/pitest/errors"
	"github.com/maxgabut/pitest/mutators"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	out := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestList(t *testing.T) {
	t.Run("Screaming", func(t *testing.T) {
		out, err := execute(t, "list")
		require.NoError(t, err)

		assert.Contains(t, out, "DEFAULTS (7 mutators)\n")
		assert.Contains(t, out, "INVERT_NEGS (1 mutator)\n")
		assert.Contains(t, out, "REMOVE_SWITCH (100 mutators)\n")
		assert.Contains(t, out, "ALL (150 mutators)\n")
	})

	t.Run("Kebab", func(t *testing.T) {
		out, err := execute(t, "list", "--naming", "kebab")
		require.NoError(t, err)

		assert.Contains(t, out, "invert-negs (1 mutator)\n")
		assert.NotContains(t, out, "INVERT_NEGS")
	})

	t.Run("InvalidNaming", func(t *testing.T) {
		_, err := execute(t, "list", "--naming", "dotted")
		require.Error(t, err)
		assert.True(t, errors.IsClass(err, class.ConfigValueInvalid))
		assert.Contains(t, err.Error(), "invalid configuration: ")
	})
}

func TestResolve(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		out, err := execute(t, "resolve", "DEFAULTS")
		require.NoError(t, err)

		for _, op := range mutators.Defaults().Operators() {
			assert.Contains(t, out, op.ID())
		}
		assert.Contains(t, out, "7 mutators\n")
	})

	t.Run("OtherCase", func(t *testing.T) {
		out, err := execute(t, "resolve", "math", "invertNegs", "MATH")
		require.NoError(t, err)

		expected := mutators.InvertNegs.ID() + " - " + mutators.InvertNegs.Description() + "\n" +
			mutators.Math.ID() + " - " + mutators.Math.Description() + "\n" +
			"2 mutators\n"
		assert.Equal(t, expected, out)
	})

	t.Run("Digits", func(t *testing.T) {
		out, err := execute(t, "resolve", "uoi1", "crcr-1")
		require.NoError(t, err)
		assert.Contains(t, out, mutators.UOI1.ID())
		assert.Contains(t, out, mutators.CRCR1.ID())
		assert.Contains(t, out, "2 mutators\n")
	})

	t.Run("Unknown", func(t *testing.T) {
		out, err := execute(t, "resolve", "MATH", "UNKNOWN_NAME")
		require.Error(t, err)

		assert.Empty(t, out)
		assert.Contains(t, err.Error(), "Mutator or group 'UNKNOWN_NAME' is not known.")
		assert.Contains(t, err.Error(), "Valid names are: DEFAULTS, INVERT_NEGS")
	})

	t.Run("ConfigFile", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "pitest.yaml")
		require.NoError(t, os.WriteFile(path, []byte("mutators:\n  - RETURNS\n  - TRUE_RETURNS\n"), 0644))

		out, err := execute(t, "resolve", "--config", path)
		require.NoError(t, err)
		assert.Contains(t, out, mutators.NullReturns.ID())
		assert.Contains(t, out, "5 mutators\n")
	})

	t.Run("ConfigNotFound", func(t *testing.T) {
		_, err := execute(t, "resolve", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
		assert.True(t, errors.IsClass(err, class.ConfigReadNotFound))
	})
}

func TestDescribe(t *testing.T) {
	t.Run("Group", func(t *testing.T) {
		out, err := execute(t, "describe", "remove_conditionals")
		require.NoError(t, err)

		eqIf := mutators.RemoveConditionals(mutators.Equal, true)
		ordElse := mutators.RemoveConditionals(mutators.Order, false)
		assert.Contains(t, out, "REMOVE_CONDITIONALS:\n")
		assert.Contains(t, out, "  "+eqIf.ID()+" - "+eqIf.Description()+"\n")
		assert.Contains(t, out, "  "+ordElse.ID()+" - "+ordElse.Description()+"\n")
	})

	t.Run("Unknown", func(t *testing.T) {
		_, err := execute(t, "describe", "NOT_A_MUTATOR")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Mutator or group 'NOT_A_MUTATOR' is not known.")
	})

	t.Run("NoArgs", func(t *testing.T) {
		_, err := execute(t, "describe")
		assert.Error(t, err)
	})
}
