package mutator

// Operator is a single mutation operator.
// The transformation performed by the operator is out of the catalog's interest,
// the only thing that matters is its globally unique and stable identifier.
type Operator interface {
	ID() string
}

// Concat joins the operator sequences into a single one. The order of the operators is kept
// and the duplicates are not removed.
func Concat(sequences ...[]Operator) []Operator {
	var size int
	for _, seq := range sequences {
		size += len(seq)
	}
	out := make([]Operator, 0, size)
	for _, seq := range sequences {
		out = append(out, seq...)
	}
	return out
}
