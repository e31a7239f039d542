package mutator

type testOperator struct {
	id string
}

func (o *testOperator) ID() string {
	return o.id
}

func op(id string) Operator {
	return &testOperator{id: id}
}

func testCatalogBuilder() *Builder {
	b := NewBuilder()
	b.Group(DefaultsGroup).
		With("NEGS", op("m.Negs")).
		With("MATH", op("m.Math")).
		With("CALLS", op("m.Calls"))
	b.Add("CONSTS", op("m.Consts"))
	b.Group("RETURNS").
		With("TRUE", op("m.ReturnsTrue")).
		With("FALSE", op("m.ReturnsFalse"))
	return b
}
