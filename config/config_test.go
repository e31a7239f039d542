package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxgabut/pitest/class"
	"github.com/maxgabut/pitest/errors"
	"github.com/maxgabut/pitest/mutator"
)

type testOperator string

func (o testOperator) ID() string {
	return string(o)
}

func testCatalog(t *testing.T) *mutator.Catalog {
	t.Helper()

	b := mutator.NewBuilder()
	b.Group(mutator.DefaultsGroup).
		With("INVERT_NEGS", testOperator("m.InvertNegs")).
		With("MATH", testOperator("m.Math"))
	b.Add("INLINE_CONSTS", testOperator("m.InlineConsts"))
	b.Add("legacy-name", testOperator("m.Legacy"))
	c, err := b.Build()
	require.NoError(t, err)
	return c
}

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
	return dir
}

func TestReadDefaultConfig(t *testing.T) {
	var c *Config
	require.NotPanics(t, func() { c = ReadDefaultConfig() })
	require.NotNil(t, c)

	assert.Equal(t, []string{"DEFAULTS"}, c.Mutators)
	assert.Equal(t, "info", c.LogLevel)
	assert.False(t, c.StrictRegistration)
	assert.Equal(t, "screaming", c.NamingConvention)
	assert.Equal(t, "en", c.LanguageTag().String())
	assert.NoError(t, c.Validate())

	// each call returns new instance
	c.StrictRegistration = true
	assert.False(t, ReadDefaultConfig().StrictRegistration)
}

func TestReadNamedConfig(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		dir := writeConfig(t, "pitest.yaml", `
mutators:
  - math
  - invert-negs
  - RETURNS
log_level: debug
strict_registration: true
naming_convention: kebab
language: pl
`)
		c, err := ReadNamedConfig("pitest", dir)
		require.NoError(t, err)

		assert.Equal(t, []string{"math", "invert-negs", "RETURNS"}, c.Mutators)
		assert.Equal(t, "debug", c.LogLevel)
		assert.True(t, c.StrictRegistration)
		assert.Equal(t, "kebab", c.NamingConvention)
		assert.Equal(t, "pl", c.LanguageTag().String())

		n, err := c.Namer()
		require.NoError(t, err)
		assert.Equal(t, "inline-consts", n("INLINE_CONSTS"))
	})

	t.Run("Defaults", func(t *testing.T) {
		dir := writeConfig(t, "pitest.yaml", "strict_registration: true\n")
		c, err := ReadNamedConfig("pitest", dir)
		require.NoError(t, err)
		assert.Equal(t, []string{"DEFAULTS"}, c.Mutators)
		assert.Equal(t, "info", c.LogLevel)
	})

	t.Run("NotFound", func(t *testing.T) {
		_, err := ReadNamedConfig("pitest", t.TempDir())
		require.Error(t, err)
		assert.True(t, errors.IsClass(err, class.ConfigReadNotFound))

		_, err = ReadConfigFile(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
		assert.True(t, errors.IsClass(err, class.ConfigReadNotFound))
	})

	t.Run("InvalidLevel", func(t *testing.T) {
		dir := writeConfig(t, "pitest.yaml", "log_level: verbose\n")
		_, err := ReadConfigFile(filepath.Join(dir, "pitest.yaml"))
		require.Error(t, err)
		assert.True(t, errors.IsClass(err, class.ConfigValueInvalid))

		det, ok := err.(*errors.DetailedError)
		require.True(t, ok)
		assert.Contains(t, det.Details, "pitest.yaml")
	})

	t.Run("EmptyMutatorName", func(t *testing.T) {
		dir := writeConfig(t, "pitest.yaml", "mutators: [MATH, '']\n")
		_, err := ReadNamedConfig("pitest", dir)
		require.Error(t, err)
		assert.True(t, errors.IsClass(err, class.ConfigValueInvalid))
	})
}

func TestConfigValidate(t *testing.T) {
	var nilConfig *Config
	assert.True(t, errors.IsClass(nilConfig.Validate(), class.ConfigValueNil))

	c := &Config{Mutators: []string{"MATH"}, NamingConvention: "pascal"}
	assert.True(t, errors.IsClass(c.Validate(), class.ConfigValueInvalid))

	c = &Config{Mutators: []string{"MATH"}, Language: "not a language tag"}
	assert.True(t, errors.IsClass(c.Validate(), class.ConfigValueInvalid))
	assert.Equal(t, "en", c.LanguageTag().String())

	c = &Config{}
	assert.NoError(t, c.Validate())
}

func TestConfigResolve(t *testing.T) {
	catalog := testCatalog(t)

	t.Run("Normalized", func(t *testing.T) {
		c := &Config{Mutators: []string{"math", "invertNegs", " INLINE_CONSTS ", "legacy-name"}}
		assert.Equal(t, []string{"MATH", "INVERT_NEGS", "INLINE_CONSTS", "legacy-name"}, c.RequestedNames(catalog))

		s, err := c.Resolve(catalog)
		require.NoError(t, err)
		assert.Equal(t, []string{"m.InlineConsts", "m.InvertNegs", "m.Legacy", "m.Math"}, s.IDs())
	})

	t.Run("Defaults", func(t *testing.T) {
		s, err := ReadDefaultConfig().Resolve(catalog)
		require.NoError(t, err)
		assert.True(t, s.Equal(catalog.Defaults()))
	})

	t.Run("Empty", func(t *testing.T) {
		s, err := (&Config{}).Resolve(catalog)
		require.NoError(t, err)
		assert.Equal(t, 0, s.Len())
	})

	t.Run("Unknown", func(t *testing.T) {
		c := &Config{Mutators: []string{"math", "not-a-real-name"}}
		s, err := c.Resolve(catalog)
		require.Error(t, err)
		assert.Equal(t, 0, s.Len())

		name, ok := mutator.UnknownName(err)
		require.True(t, ok)
		assert.Equal(t, "not-a-real-name", name)
	})

	t.Run("Digits", func(t *testing.T) {
		c := &Config{Mutators: []string{"uoi1", "UOI_1", "crcr-1"}}
		assert.Equal(t, []string{"UOI1", "UOI1", "CRCR1"}, c.RequestedNames(digitsCatalog(t)))
	})
}

func digitsCatalog(t *testing.T) *mutator.Catalog {
	t.Helper()

	b := mutator.NewBuilder()
	b.Add("UOI1", testOperator("rv.UOI1"))
	b.Add("CRCR1", testOperator("rv.CRCR1"))
	c, err := b.Build()
	require.NoError(t, err)
	return c
}
