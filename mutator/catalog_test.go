package mutator

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxgabut/pitest/class"
	"github.com/maxgabut/pitest/errors"
)

func testCatalog(t *testing.T) *Catalog {
	t.Helper()

	b := testCatalogBuilder()
	b.AddAll(AllGroup)
	c, err := b.Build()
	require.NoError(t, err)
	return c
}

// TestCatalogResolve tests the resolution of the requested names.
func TestCatalogResolve(t *testing.T) {
	c := testCatalog(t)

	t.Run("Requested", func(t *testing.T) {
		s, err := c.Resolve("MATH", "NEGS")
		require.NoError(t, err)
		assert.Equal(t, []string{"m.Math", "m.Negs"}, s.IDs())
	})

	t.Run("DirectDuplicates", func(t *testing.T) {
		s, err := c.Resolve("MATH", "MATH")
		require.NoError(t, err)
		assert.Equal(t, 1, s.Len())
	})

	t.Run("GroupOverlap", func(t *testing.T) {
		withMath, err := c.Resolve("MATH", DefaultsGroup)
		require.NoError(t, err)

		defaults, err := c.Resolve(DefaultsGroup)
		require.NoError(t, err)
		assert.Equal(t, defaults.Len(), withMath.Len())
		assert.True(t, defaults.Equal(withMath))
	})

	t.Run("OrderIndependent", func(t *testing.T) {
		first, err := c.Resolve("RETURNS", "CONSTS", "MATH")
		require.NoError(t, err)
		second, err := c.Resolve("MATH", "MATH", "TRUE", "CONSTS", "FALSE", "RETURNS")
		require.NoError(t, err)

		assert.Equal(t, first.IDs(), second.IDs())
		assert.Equal(t, []string{"m.Consts", "m.Math", "m.ReturnsFalse", "m.ReturnsTrue"}, first.IDs())
	})

	t.Run("Empty", func(t *testing.T) {
		s, err := c.Resolve()
		require.NoError(t, err)
		assert.Equal(t, 0, s.Len())
	})

	t.Run("Unknown", func(t *testing.T) {
		for _, request := range [][]string{
			{"NOT_A_REAL_NAME"},
			{"MATH", "NOT_A_REAL_NAME"},
			{"NOT_A_REAL_NAME", "MATH"},
			{"MATH", DefaultsGroup, "NOT_A_REAL_NAME", "OTHER_UNKNOWN"},
		} {
			s, err := c.Resolve(request...)
			require.Error(t, err, "%v", request)
			assert.Equal(t, 0, s.Len(), "%v", request)

			assert.True(t, errors.IsClass(err, class.MutatorUnknownName))
			unknown, ok := err.(*UnknownNameError)
			require.True(t, ok)
			assert.Equal(t, "NOT_A_REAL_NAME", unknown.Name)
		}
	})

	t.Run("UnknownWrapped", func(t *testing.T) {
		_, err := c.Resolve("NOT_A_REAL_NAME")
		wrapped := fmt.Errorf("resolving configured mutators: %w", err)

		name, ok := UnknownName(wrapped)
		require.True(t, ok)
		assert.Equal(t, "NOT_A_REAL_NAME", name)

		_, ok = UnknownName(fmt.Errorf("other failure"))
		assert.False(t, ok)
	})

	t.Run("IdentityByID", func(t *testing.T) {
		b := NewBuilder()
		b.Add("FIRST", op("same"))
		b.Add("SECOND", op("same"))
		cat, err := b.Build()
		require.NoError(t, err)

		s, err := cat.Resolve("FIRST", "SECOND")
		require.NoError(t, err)
		assert.Equal(t, []string{"same"}, s.IDs())
	})
}

// TestCatalogAccessors tests the convenience accessors of the catalog.
func TestCatalogAccessors(t *testing.T) {
	c := testCatalog(t)

	t.Run("All", func(t *testing.T) {
		all := c.All()
		byName, err := c.ByName(AllGroup)
		require.NoError(t, err)
		resolved, err := c.Resolve(AllGroup)
		require.NoError(t, err)

		assert.True(t, all.Equal(byName))
		assert.True(t, all.Equal(resolved))
		assert.Equal(t, 6, all.Len())
	})

	t.Run("Defaults", func(t *testing.T) {
		defaults := c.Defaults()
		resolved, err := c.Resolve(DefaultsGroup)
		require.NoError(t, err)
		assert.True(t, defaults.Equal(resolved))
		assert.Equal(t, []string{"m.Calls", "m.Math", "m.Negs"}, defaults.IDs())
	})

	t.Run("MissingGroups", func(t *testing.T) {
		cat, err := NewBuilder().Add("ONLY", op("only")).Build()
		require.NoError(t, err)
		assert.Equal(t, 0, cat.All().Len())
		assert.Equal(t, 0, cat.Defaults().Len())
	})

	t.Run("Names", func(t *testing.T) {
		names := c.Names()
		assert.Equal(t, c.Len(), len(names))
		for _, name := range names {
			assert.True(t, c.Has(name))
			s, err := c.ByName(name)
			require.NoError(t, err, name)
			assert.NotZero(t, s.Len(), name)
		}

		names[0] = "CHANGED"
		assert.Equal(t, DefaultsGroup, c.Names()[0])
	})

	t.Run("Entry", func(t *testing.T) {
		_, ok := c.Entry("UNKNOWN")
		assert.False(t, ok)

		entry, ok := c.Entry("RETURNS")
		require.True(t, ok)
		entry[0] = op("changed")

		again, _ := c.Entry("RETURNS")
		assert.Equal(t, "m.ReturnsTrue", again[0].ID())
	})
}

// TestCatalogConcurrentReads tests the catalog used by multiple goroutines.
func TestCatalogConcurrentReads(t *testing.T) {
	c := testCatalog(t)
	expected := c.All().IDs()

	wg := &sync.WaitGroup{}
	results := make([][]string, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s, err := c.Resolve(AllGroup, "MATH", DefaultsGroup)
			if err == nil {
				results[i] = s.IDs()
			}
		}(i)
	}
	wg.Wait()

	for _, result := range results {
		assert.Equal(t, expected, result)
	}
}
