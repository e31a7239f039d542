package mutators

// Research mutators that make up the 'PITrv' operators set.
var (
	AOR1 = New(researchPackage+"AOR1", "Replaces binary arithmetic operation with another one: first variant.")
	AOR2 = New(researchPackage+"AOR2", "Replaces binary arithmetic operation with another one: second variant.")
	AOR3 = New(researchPackage+"AOR3", "Replaces binary arithmetic operation with another one: third variant.")
	AOR4 = New(researchPackage+"AOR4", "Replaces binary arithmetic operation with another one: fourth variant.")

	ABS = New(researchPackage+"ABS", "Replaces a variable with its negation.")

	AOD1 = New(researchPackage+"AOD1", "Replaces binary arithmetic operation with its first member.")
	AOD2 = New(researchPackage+"AOD2", "Replaces binary arithmetic operation with its second member.")

	CRCR1 = New(researchPackage+"CRCR1", "Replaces an inline constant 'a' with 1.")
	CRCR2 = New(researchPackage+"CRCR2", "Replaces an inline constant 'a' with 0.")
	CRCR3 = New(researchPackage+"CRCR3", "Replaces an inline constant 'a' with -1.")
	CRCR4 = New(researchPackage+"CRCR4", "Replaces an inline constant 'a' with -a.")
	CRCR5 = New(researchPackage+"CRCR5", "Replaces an inline constant 'a' with a+1.")
	CRCR6 = New(researchPackage+"CRCR6", "Replaces an inline constant 'a' with a-1.")

	OBBN1 = New(researchPackage+"OBBN1", "Swaps bitwise 'and' with 'or'.")
	OBBN2 = New(researchPackage+"OBBN2", "Replaces bitwise operation with its first member.")
	OBBN3 = New(researchPackage+"OBBN3", "Replaces bitwise operation with its second member.")

	ROR1 = New(researchPackage+"ROR1", "Replaces conditional operator with 'less than'.")
	ROR2 = New(researchPackage+"ROR2", "Replaces conditional operator with 'less or equal'.")
	ROR3 = New(researchPackage+"ROR3", "Replaces conditional operator with 'greater than'.")
	ROR4 = New(researchPackage+"ROR4", "Replaces conditional operator with 'greater or equal'.")
	ROR5 = New(researchPackage+"ROR5", "Replaces conditional operator with 'equal' or 'not equal'.")

	UOI1 = New(researchPackage+"UOI1", "Inserts a post increment of the variable: a++.")
	UOI2 = New(researchPackage+"UOI2", "Inserts a post decrement of the variable: a--.")
	UOI3 = New(researchPackage+"UOI3", "Inserts a pre increment of the variable: ++a.")
	UOI4 = New(researchPackage+"UOI4", "Inserts a pre decrement of the variable: --a.")
)
