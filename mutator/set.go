package mutator

import (
	"sort"
)

// Set is the ordered set of operators. The operators are unique by their identifiers
// and sorted in the ascending order of the identifiers.
// The zero value is an empty set.
type Set struct {
	operators []Operator
}

// NewSet creates the set from provided operators. The operators with the same identifier
// are reduced to the first occurrence. Nil operators are omitted.
func NewSet(operators ...Operator) Set {
	unique := make(map[string]Operator, len(operators))
	for _, op := range operators {
		if op == nil {
			continue
		}
		if _, ok := unique[op.ID()]; !ok {
			unique[op.ID()] = op
		}
	}
	return setFromUnique(unique)
}

func setFromUnique(unique map[string]Operator) Set {
	ops := make([]Operator, 0, len(unique))
	for _, op := range unique {
		ops = append(ops, op)
	}
	sort.Slice(ops, func(i, j int) bool {
		return ops[i].ID() < ops[j].ID()
	})
	return Set{operators: ops}
}

// Contains checks if the set contains the operator with given 'id'.
func (s Set) Contains(id string) bool {
	i := sort.Search(len(s.operators), func(i int) bool {
		return s.operators[i].ID() >= id
	})
	return i < len(s.operators) && s.operators[i].ID() == id
}

// Equal checks if the sets contain the same identifiers.
func (s Set) Equal(other Set) bool {
	if len(s.operators) != len(other.operators) {
		return false
	}
	for i := range s.operators {
		if s.operators[i].ID() != other.operators[i].ID() {
			return false
		}
	}
	return true
}

// IDs returns the ordered identifiers of the set operators.
func (s Set) IDs() []string {
	ids := make([]string, len(s.operators))
	for i, op := range s.operators {
		ids[i] = op.ID()
	}
	return ids
}

// Len returns the number of operators in the set.
func (s Set) Len() int {
	return len(s.operators)
}

// Operators returns a copy of the ordered operators.
func (s Set) Operators() []Operator {
	ops := make([]Operator, len(s.operators))
	copy(ops, s.operators)
	return ops
}

// Union creates a new set that contains operators from both sets.
func (s Set) Union(other Set) Set {
	return NewSet(Concat(s.operators, other.operators)...)
}
