package mutator

import (
	"strconv"

	"github.com/maxgabut/pitest/class"
	"github.com/maxgabut/pitest/errors"
)

const (
	// AllGroup is the name of the catalog-wide group that contains every registered operator.
	AllGroup = "ALL"
	// DefaultsGroup is the name of the curated group of the default operators.
	DefaultsGroup = "DEFAULTS"
)

// Builder accumulates the catalog entries during the bootstrap and freezes them into the Catalog.
// The Builder is not safe for concurrent use. Registration errors are collected and returned
// by the Build method.
type Builder struct {
	entries  map[string][]Operator
	names    []string
	shadowed []string
	strict   bool
	errs     errors.MultiError
}

// BuilderOption is the function that sets up the Builder.
type BuilderOption func(b *Builder)

// Strict sets the builder strict registration mode. In strict mode re-registering a name
// with different operators is an error classified as class.MutatorNameDuplicate.
// Otherwise the last registration wins and a warning is logged.
func Strict(strict bool) BuilderOption {
	return func(b *Builder) {
		b.strict = strict
	}
}

// NewBuilder creates new catalog builder.
func NewBuilder(options ...BuilderOption) *Builder {
	b := &Builder{entries: map[string][]Operator{}}
	for _, option := range options {
		option(b)
	}
	return b
}

// Add registers a single operator 'op' under the 'name'.
func (b *Builder) Add(name string, op Operator) *Builder {
	b.put(name, []Operator{op})
	return b
}

// AddGroup registers the group 'name' with explicitly listed operators.
// The operators are not registered under their own names.
func (b *Builder) AddGroup(name string, operators ...Operator) *Builder {
	b.put(name, Concat(operators))
	return b
}

// AddAll registers the catalog-wide group 'name' that contains the operators of every name
// registered so far. It needs to be the last registration of the catalog.
func (b *Builder) AddAll(name string) *Builder {
	all := make([][]Operator, len(b.names))
	for i, registered := range b.names {
		all[i] = b.entries[registered]
	}
	b.put(name, Concat(all...))
	return b
}

// Group starts the group 'name'. The group is registered immediately and filled
// with the operators attached by the GroupBuilder.
func (b *Builder) Group(name string) *GroupBuilder {
	b.put(name, []Operator{})
	return &GroupBuilder{builder: b, name: name}
}

// Has checks if the 'name' is already registered.
func (b *Builder) Has(name string) bool {
	_, ok := b.entries[name]
	return ok
}

// Union gets the operators registered under provided 'names', in the order of the names.
// Duplicated operators are kept, these are reduced on resolution. Only the names registered
// before the call are allowed, an unknown name results in the UnknownNameError.
func (b *Builder) Union(names ...string) ([]Operator, error) {
	var out []Operator
	for _, name := range names {
		ops, ok := b.entries[name]
		if !ok {
			logger.Debugf("Union of: %v references not registered name: '%s'", names, name)
			return nil, newUnknownNameError(name)
		}
		out = append(out, ops...)
	}
	return out, nil
}

// Shadowed returns the names that were overwritten by the later registrations with different operators.
func (b *Builder) Shadowed() []string {
	out := make([]string, len(b.shadowed))
	copy(out, b.shadowed)
	return out
}

// Build freezes the registered entries into the Catalog. Further registrations on the builder
// does not affect the returned catalog.
// Each registered name needs at least one operator.
func (b *Builder) Build() (*Catalog, error) {
	errs := append(errors.MultiError{}, b.errs...)
	for _, name := range b.names {
		if len(b.entries[name]) == 0 {
			errs = append(errs, errors.NewDetf(class.MutatorGroupEmpty, "mutator group: '%s' has no operators", name))
		}
	}
	if err := errs.ErrorOrNil(); err != nil {
		logger.Errorf("Building catalog failed: %v", err)
		return nil, err
	}

	c := &Catalog{
		entries: make(map[string][]Operator, len(b.entries)),
		names:   make([]string, len(b.names)),
	}
	copy(c.names, b.names)
	for name, ops := range b.entries {
		frozen := make([]Operator, len(ops))
		copy(frozen, ops)
		c.entries[name] = frozen
	}
	logger.Debugf("Catalog built with: %d names", len(c.names))
	return c, nil
}

func (b *Builder) put(name string, operators []Operator) {
	if name == "" {
		b.errs = append(b.errs, errors.NewDet(class.MutatorNameEmpty, "mutator name is empty"))
		return
	}
	if !b.validOperators(name, operators) {
		return
	}

	prev, exists := b.entries[name]
	if !exists {
		b.names = append(b.names, name)
	} else if !sameIDs(prev, operators) {
		b.shadowed = append(b.shadowed, name)
		if b.strict {
			b.errs = append(b.errs, errors.NewDetf(class.MutatorNameDuplicate, "mutator name: '%s' already registered", name).
				WithDetailf("The name: '%s' is registered with operators: %v and then with: %v.", name, ids(prev), ids(operators)))
			return
		}
		logger.Warningf("Mutator name: '%s' is already registered with: %v. Overwritten with: %v", name, ids(prev), ids(operators))
	}
	b.entries[name] = operators
	logger.Debug3f("Registered: '%s' with %d operators", name, len(operators))
}

func (b *Builder) validOperators(name string, operators []Operator) bool {
	for _, op := range operators {
		if op == nil {
			b.errs = append(b.errs, errors.NewDetf(class.MutatorOperatorNil, "nil operator registered under: '%s'", name))
			return false
		}
		if op.ID() == "" {
			b.errs = append(b.errs, errors.NewDetf(class.MutatorOperatorNoID, "operator registered under: '%s' has no identifier", name))
			return false
		}
	}
	return true
}

// GroupBuilder attaches the operators to the group and registers each of them under its own name.
type GroupBuilder struct {
	builder   *Builder
	name      string
	operators []Operator
}

// With appends the operator 'op' to the group and registers it under its own 'name'.
func (g *GroupBuilder) With(name string, op Operator) *GroupBuilder {
	if !g.attach(op) {
		return g
	}
	g.builder.Add(name, op)
	return g
}

// WithFamily appends the generated family of similar operators to the group. Each member
// is registered under the 'prefix' name followed by an underscore and its position in the family,
// i.e. 'REMOVE_SWITCH_0'.
func (g *GroupBuilder) WithFamily(prefix string, operators ...Operator) *GroupBuilder {
	for i, op := range operators {
		g.With(prefix+"_"+strconv.Itoa(i), op)
	}
	return g
}

// Name gets the group name.
func (g *GroupBuilder) Name() string {
	return g.name
}

func (g *GroupBuilder) attach(op Operator) bool {
	if !g.builder.validOperators(g.name, []Operator{op}) {
		return false
	}
	g.operators = append(g.operators, op)
	g.builder.entries[g.name] = g.operators
	return true
}

func sameIDs(first, second []Operator) bool {
	if len(first) != len(second) {
		return false
	}
	for i := range first {
		if first[i].ID() != second[i].ID() {
			return false
		}
	}
	return true
}

func ids(operators []Operator) []string {
	out := make([]string, len(operators))
	for i, op := range operators {
		out[i] = op.ID()
	}
	return out
}
