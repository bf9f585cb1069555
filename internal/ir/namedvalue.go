package ir

// NamedValue is a Value carrying a function-unique name: the common base
// of Argument, BasicBlock, and Instruction (spec §3 "NamedValue").
type NamedValue interface {
	Value
	// Name is the value's current, disambiguated name.
	Name() string
	// Function is the Function this named value belongs to.
	Function() *Function

	setName(name string)
}

// namedValueBase implements the name/function-ownership half of
// NamedValue; embedded alongside valueBase (directly for Argument and
// BasicBlock, transitively via instructionBase for Instruction).
type namedValueBase struct {
	name string
	fn   *Function
}

func (n *namedValueBase) Name() string        { return n.name }
func (n *namedValueBase) Function() *Function { return n.fn }
func (n *namedValueBase) setName(name string) { n.name = name }
