package mutators

import (
	"sync"

	"github.com/maxgabut/pitest/config"
	"github.com/maxgabut/pitest/log"
	"github.com/maxgabut/pitest/mutator"
)

var logger = log.NewModuleLogger("mutators")

// Options are the reference catalog bootstrap options.
type Options struct {
	// StrictRegistration fails the bootstrap when any name is registered twice with different operators.
	StrictRegistration bool
}

// Option is the function that sets the bootstrap options.
type Option func(o *Options)

// WithStrictRegistration sets the strict registration option.
func WithStrictRegistration(strict bool) Option {
	return func(o *Options) {
		o.StrictRegistration = strict
	}
}

// NewCatalogFromConfig builds the reference catalog with the options taken from the 'cfg'.
func NewCatalogFromConfig(cfg *config.Config) (*mutator.Catalog, error) {
	if cfg == nil {
		cfg = config.ReadDefaultConfig()
	}
	return NewCatalog(WithStrictRegistration(cfg.StrictRegistration))
}

// NewCatalog builds new reference catalog. The groups are registered in the dependency order:
// the primitive groups and single mutators go first, then the composite groups that reference
// them and at the end the catalog-wide 'ALL' group.
func NewCatalog(options ...Option) (*mutator.Catalog, error) {
	o := &Options{}
	for _, option := range options {
		option(o)
	}

	b := mutator.NewBuilder(mutator.Strict(o.StrictRegistration))
	registerDefaults(b)
	registerOptional(b)
	registerExperimental(b)
	registerResearch(b)

	b.Group("REMOVE_SWITCH").WithFamily("REMOVE_SWITCH", RemoveSwitchFamily()...)

	if err := registerComposites(b); err != nil {
		return nil, err
	}

	b.AddAll(mutator.AllGroup)
	return b.Build()
}

var (
	catalogOnce sync.Once
	catalog     *mutator.Catalog
)

// Catalog gets the reference catalog shared for the process lifetime.
// The catalog is built on the first call.
func Catalog() *mutator.Catalog {
	catalogOnce.Do(func() {
		c, err := NewCatalog()
		if err != nil {
			log.Panicf("Building reference mutator catalog failed: %v", err)
		}
		catalog = c
	})
	return catalog
}

// Resolve resolves the requested 'names' using the reference catalog.
func Resolve(names ...string) (mutator.Set, error) {
	return Catalog().Resolve(names...)
}

// ByName resolves the single 'name' using the reference catalog.
func ByName(name string) (mutator.Set, error) {
	return Catalog().ByName(name)
}

// All returns all the operators registered in the reference catalog.
func All() mutator.Set {
	return Catalog().All()
}

// Defaults returns the default operators of the reference catalog.
func Defaults() mutator.Set {
	return Catalog().Defaults()
}

// Names returns all the names registered in the reference catalog.
func Names() []string {
	return Catalog().Names()
}

// registerDefaults registers the default set of mutators, designed to provide balance
// between strength and performance.
func registerDefaults(b *mutator.Builder) {
	b.Group(mutator.DefaultsGroup).
		With("INVERT_NEGS", InvertNegs).
		With("RETURN_VALS", ReturnVals).
		With("MATH", Math).
		With("VOID_METHOD_CALLS", VoidMethodCalls).
		With("NEGATE_CONDITIONALS", NegateConditionals).
		With("CONDITIONALS_BOUNDARY", ConditionalsBoundary).
		With("INCREMENTS", Increments)
}

func registerOptional(b *mutator.Builder) {
	b.Add("INLINE_CONSTS", InlineConsts)
	b.Add("REMOVE_INCREMENTS", RemoveIncrements)
	b.Add("NON_VOID_METHOD_CALLS", NonVoidMethodCalls)
	b.Add("CONSTRUCTOR_CALLS", ConstructorCalls)

	// The EQUAL version ignores LT, LE, GT and GE, the ORDER version mutates only those.
	b.Group("REMOVE_CONDITIONALS").
		With("REMOVE_CONDITIONALS_EQ_IF", RemoveConditionals(Equal, true)).
		With("REMOVE_CONDITIONALS_EQ_ELSE", RemoveConditionals(Equal, false)).
		With("REMOVE_CONDITIONALS_ORD_IF", RemoveConditionals(Order, true)).
		With("REMOVE_CONDITIONALS_ORD_ELSE", RemoveConditionals(Order, false))

	b.Group("RETURNS").
		With("TRUE_RETURNS", TrueReturns).
		With("FALSE_RETURNS", FalseReturns).
		With("PRIMITIVE_RETURNS", PrimitiveReturns).
		With("EMPTY_RETURNS", EmptyReturns).
		With("NULL_RETURNS", NullReturns)
}

func registerExperimental(b *mutator.Builder) {
	b.Add("EXPERIMENTAL_MEMBER_VARIABLE", MemberVariable)
	b.Add("EXPERIMENTAL_SWITCH", Switch)
	b.Add("EXPERIMENTAL_ARGUMENT_PROPAGATION", ArgumentPropagation)
	b.Add("EXPERIMENTAL_NAKED_RECEIVER", NakedReceiver)
	b.Add("EXPERIMENTAL_BIG_INTEGER", BigInteger)
}

func registerResearch(b *mutator.Builder) {
	b.Group("AOR").
		With("AOR_1", AOR1).
		With("AOR_2", AOR2).
		With("AOR_3", AOR3).
		With("AOR_4", AOR4)

	b.Add("ABS", ABS)

	b.Group("AOD").
		With("AOD1", AOD1).
		With("AOD2", AOD2)

	b.Group("CRCR").
		With("CRCR1", CRCR1).
		With("CRCR2", CRCR2).
		With("CRCR3", CRCR3).
		With("CRCR4", CRCR4).
		With("CRCR5", CRCR5).
		With("CRCR6", CRCR6)

	b.Group("OBBN").
		With("OBBN1", OBBN1).
		With("OBBN2", OBBN2).
		With("OBBN3", OBBN3)

	b.Group("ROR").
		With("ROR1", ROR1).
		With("ROR2", ROR2).
		With("ROR3", ROR3).
		With("ROR4", ROR4).
		With("ROR5", ROR5)

	b.Add("UOI1", UOI1)
	b.Add("UOI2", UOI2)
	b.Add("UOI3", UOI3)
	b.Add("UOI4", UOI4)
}

func registerComposites(b *mutator.Builder) error {
	defaults, err := b.Union(mutator.DefaultsGroup)
	if err != nil {
		return err
	}
	// a fresh RemoveConditionals instance shares the identifier with the registered one.
	b.AddGroup("STRONGER", mutator.Concat(defaults, []mutator.Operator{RemoveConditionals(Equal, false), Switch})...)

	returns, err := b.Union("RETURNS")
	if err != nil {
		return err
	}
	// proposed new defaults - the RETURN_VALS mutator replaced with the more stable RETURNS group.
	newDefaults := []mutator.Operator{InvertNegs, Math, VoidMethodCalls, NegateConditionals, ConditionalsBoundary, Increments}
	b.AddGroup("NEW_DEFAULTS", mutator.Concat(newDefaults, returns)...)

	b.AddGroup("UOI", UOI1, UOI2, UOI3, UOI4)

	logger.Debugf("Composite groups registered. Shadowed names: %v", b.Shadowed())
	return nil
}
