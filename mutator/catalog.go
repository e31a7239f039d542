package mutator

// Catalog is the immutable mapping of the registered names to the sequences of operators.
// It is created by the Builder and it is safe for concurrent use.
type Catalog struct {
	entries map[string][]Operator
	names   []string
}

// Resolve resolves the requested 'names' into a single set of operators.
// The operators are deduplicated by their identifiers and ordered by them, so that the result
// depends only on the identifiers reached - never on the order of the names nor on the
// number of times an operator was reached.
// If any of the names is not registered the function returns the UnknownNameError
// for the first such name and no operators.
func (c *Catalog) Resolve(names ...string) (Set, error) {
	unique := map[string]Operator{}
	for _, name := range names {
		ops, ok := c.entries[name]
		if !ok {
			logger.Debugf("Resolving: %v failed. Name: '%s' not registered", names, name)
			return Set{}, newUnknownNameError(name)
		}
		for _, op := range ops {
			if _, exists := unique[op.ID()]; !exists {
				unique[op.ID()] = op
			}
		}
	}
	set := setFromUnique(unique)
	logger.Debug3f("Resolved: %v into %d operators", names, set.Len())
	return set, nil
}

// ByName resolves the single 'name'.
func (c *Catalog) ByName(name string) (Set, error) {
	return c.Resolve(name)
}

// All returns the operators of the catalog-wide group AllGroup.
// If the catalog doesn't define the group the result is empty.
func (c *Catalog) All() Set {
	return c.mustGroup(AllGroup)
}

// Defaults returns the operators of the curated DefaultsGroup.
// If the catalog doesn't define the group the result is empty.
func (c *Catalog) Defaults() Set {
	return c.mustGroup(DefaultsGroup)
}

// Entry returns a copy of the operators registered under the 'name', in the insertion order.
// The operators are neither deduplicated nor sorted.
func (c *Catalog) Entry(name string) ([]Operator, bool) {
	ops, ok := c.entries[name]
	if !ok {
		return nil, false
	}
	out := make([]Operator, len(ops))
	copy(out, ops)
	return out, true
}

// Has checks if the 'name' is registered in the catalog.
func (c *Catalog) Has(name string) bool {
	_, ok := c.entries[name]
	return ok
}

// Len returns the number of registered names.
func (c *Catalog) Len() int {
	return len(c.names)
}

// Names returns all registered names in the order of their first registration.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

func (c *Catalog) mustGroup(name string) Set {
	set, err := c.Resolve(name)
	if err != nil {
		logger.Debugf("Catalog has no: '%s' group", name)
		return Set{}
	}
	return set
}
