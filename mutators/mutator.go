package mutators

import (
	"strconv"

	"github.com/maxgabut/pitest/mutator"
)

const (
	basePackage         = "mutators."
	experimentalPackage = "mutators.experimental."
	researchPackage     = "mutators.rv."
)

// compile time check for the mutator.Operator interface.
var _ mutator.Operator = &Mutator{}

// Mutator is the built-in mutation operator identity.
type Mutator struct {
	id          string
	description string
}

// New creates new mutator with the 'id' and human readable 'description'.
func New(id, description string) *Mutator {
	return &Mutator{id: id, description: description}
}

// ID implements mutator.Operator interface.
func (m *Mutator) ID() string {
	return m.id
}

// Description gets the human readable description of the mutator.
func (m *Mutator) Description() string {
	return m.description
}

// String implements fmt.Stringer interface.
func (m *Mutator) String() string {
	return m.id
}

// Default mutators.
var (
	InvertNegs           = New(basePackage+"InvertNegs", "Inverts the negation of integer and floating point numbers.")
	ReturnVals           = New(basePackage+"ReturnVals", "Mutates the return values of methods.")
	Math                 = New(basePackage+"Math", "Mutates binary arithmetic operations.")
	VoidMethodCalls      = New(basePackage+"VoidMethodCalls", "Removes method calls to void methods.")
	NegateConditionals   = New(basePackage+"NegateConditionals", "Negates conditionals.")
	ConditionalsBoundary = New(basePackage+"ConditionalsBoundary", "Replaces the relational operators with their boundary counterpart.")
	Increments           = New(basePackage+"Increments", "Mutates increments, decrements and assignment increments and decrements of local variables.")
)

// Optional mutators.
var (
	InlineConsts       = New(basePackage+"InlineConsts", "Mutates integer and floating point inline constants.")
	NonVoidMethodCalls = New(basePackage+"NonVoidMethodCalls", "Removes method calls to non void methods.")
	ConstructorCalls   = New(basePackage+"ConstructorCalls", "Replaces constructor calls with null values.")
	TrueReturns        = New(basePackage+"TrueReturns", "Replaces boolean return values with true.")
	FalseReturns       = New(basePackage+"FalseReturns", "Replaces boolean return values with false.")
	PrimitiveReturns   = New(basePackage+"PrimitiveReturns", "Replaces primitive return values with zero.")
	EmptyReturns       = New(basePackage+"EmptyReturns", "Replaces return values with an empty value of the returned type.")
	NullReturns        = New(basePackage+"NullReturns", "Replaces object return values with null.")
	RemoveIncrements   = New(experimentalPackage+"RemoveIncrements", "Removes local variable increments.")
)

// Experimental mutators that have not been battle tested yet.
var (
	MemberVariable      = New(experimentalPackage+"MemberVariable", "Removes assignments to member variables.")
	Switch              = New(experimentalPackage+"Switch", "Swaps labels in switch statements.")
	ArgumentPropagation = New(basePackage+"ArgumentPropagation", "Replaces method call with one of its parameters of matching type.")
	NakedReceiver       = New(experimentalPackage+"NakedReceiver", "Replaces method call with its receiver.")
	BigInteger          = New(experimentalPackage+"BigInteger", "Swaps big integer methods.")
)

// Choice is the kind of conditionals removed by the RemoveConditionals mutator.
type Choice string

// Choice enumerated values.
const (
	// Equal choice mutates only equality checks.
	Equal Choice = "EQUAL"
	// Order choice mutates only ordering checks: less, less or equal, greater, greater or equal.
	Order Choice = "ORDER"
)

// RemoveConditionals creates the mutator that removes conditional statements of given 'choice'
// so that the guarded statements always execute. If 'ifBranch' is true the 'if' branch is always
// taken, otherwise the 'else' branch.
// Every call creates new instance, the instances with the same arguments share the identifier.
func RemoveConditionals(choice Choice, ifBranch bool) *Mutator {
	branch := "ELSE"
	if ifBranch {
		branch = "IF"
	}
	return New(basePackage+"RemoveConditionals_"+string(choice)+"_"+branch,
		"Removes "+string(choice)+" conditional statements so that the guarded statements always execute the "+branch+" branch.")
}

// RemoveSwitchFamilySize is the number of switch labels mutated by the RemoveSwitch family.
const RemoveSwitchFamilySize = 100

// RemoveSwitch creates the mutator that replaces the switch label with the given 'key' by the default label.
func RemoveSwitch(key int) *Mutator {
	k := strconv.Itoa(key)
	return New(experimentalPackage+"RemoveSwitch_"+k, "Removes the switch label number "+k+" by replacing it with the default one.")
}

// RemoveSwitchFamily creates the whole family of the RemoveSwitch mutators.
func RemoveSwitchFamily() []mutator.Operator {
	family := make([]mutator.Operator, RemoveSwitchFamilySize)
	for i := range family {
		family[i] = RemoveSwitch(i)
	}
	return family
}
