package ir

// Function is a named, typed sequence of BasicBlocks plus its formal
// Arguments: the unit a Builder assembles and a transform operates on
// (spec §3 "Function", §4.5).
type Function struct {
	valueBase
	namedValueBase

	originalName string
	arguments    []*Argument
	returnType   Type
	blocks       []*BasicBlock
	entry        *BasicBlock

	names   map[string]int
	nextTmp int

	// Sink, if set, is notified of block additions and of instruction
	// construction, placement, renaming and removal in this function; see
	// EventSink for what is not reported (spec §4.8).
	Sink EventSink
}

// NewFunction builds an empty Function with the given name, argument
// types/names, and return type. It has no blocks yet; callers add them
// with AddBlock or through a Builder.
func NewFunction(name string, returnType Type, argNames []string, argTypes []Type) *Function {
	if returnType == nil {
		returnType = Bottom
	}
	fn := &Function{
		originalName: name,
		returnType:   returnType,
		names:        make(map[string]int),
	}
	fn.setSelf(fn)
	fn.name = name
	for i, argName := range argNames {
		a := newArgument(fn, fn.reserveName(argName), argTypes[i])
		fn.arguments = append(fn.arguments, a)
	}
	return fn
}

func (fn *Function) IsConstant() bool        { return true }
func (fn *Function) InspectAsValue() string  { return "@" + fn.name }
func (fn *Function) ReturnType() Type        { return fn.returnType }
func (fn *Function) OriginalName() string    { return fn.originalName }
func (fn *Function) Arguments() []*Argument  { return append([]*Argument(nil), fn.arguments...) }
func (fn *Function) Entry() *BasicBlock      { return fn.entry }

// Instrumented reports this function's instrumentation "present" flag
// (spec §4.9, §4.8): whether a Sink is attached to observe its
// mutations.
func (fn *Function) Instrumented() bool { return fn.Sink != nil }

// Blocks returns a snapshot of the function's blocks in insertion order.
func (fn *Function) Blocks() []*BasicBlock {
	return append([]*BasicBlock(nil), fn.blocks...)
}

// reserveName disambiguates preferred against every name already claimed
// in this function, returning the name to actually use. An empty
// preferred name produces the next anonymous temporary name (spec §4.5:
// unnamed instructions still need a stable identity for printing and
// lookup). A collision on a non-empty name is resolved with a ".N"
// suffix, smallest free N ≥ 1 (spec §3 "NamedValue", §4.5 "make_name").
// The function's own name is never seeded into this table — it lives in
// its enclosing Module's namespace, not this function's value-name
// table, so a block or instruction may legitimately share the function's
// name without being renamed (spec §4.7 scenario S5).
func (fn *Function) reserveName(preferred string) string {
	if preferred == "" {
		for {
			candidate := itoa(fn.nextTmp)
			fn.nextTmp++
			if _, taken := fn.names[candidate]; !taken {
				fn.names[candidate] = 1
				return candidate
			}
		}
	}
	if _, taken := fn.names[preferred]; !taken {
		fn.names[preferred] = 1
		return preferred
	}
	stem := stripDisambigSuffix(preferred, '.')
	for k := 1; ; k++ {
		candidate := stem + "." + itoa(k)
		if _, taken := fn.names[candidate]; !taken {
			fn.names[candidate] = 1
			return candidate
		}
	}
}

// MakeName reserves and returns a disambiguated name without attaching it
// to anything; used by a Builder that wants to name a value before
// constructing it.
func (fn *Function) MakeName(preferred string) string {
	return fn.reserveName(preferred)
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// AddBlock appends a new, empty BasicBlock named name (disambiguated
// against the function's existing names) and returns it. It never wires
// the new block to anything else — a function can have any number of
// disconnected blocks mid-construction. A Builder's own AddBlock, not
// this one, is what auto-branches from an unterminated cursor (Open
// Question (b): see DESIGN.md and Builder.AddBlock).
func (fn *Function) AddBlock(name string) *BasicBlock {
	b := newBasicBlock(fn, fn.reserveName(name))
	fn.blocks = append(fn.blocks, b)
	if fn.entry == nil {
		fn.entry = b
	}
	emitAddBlock(fn, b)
	return b
}

// Find looks up a NamedValue belonging to this function by name: an
// argument, a block, or an instruction within one of its blocks. It
// fails with ErrNotFound if nothing matches.
func (fn *Function) Find(name string) (NamedValue, error) {
	for _, a := range fn.arguments {
		if a.Name() == name {
			return a, nil
		}
	}
	for _, b := range fn.blocks {
		if b.Name() == name {
			return b, nil
		}
		for _, instr := range b.instrs {
			if instr.Name() == name {
				return instr, nil
			}
		}
	}
	return nil, newError(NotFound, "no value named %q in function %q", name, fn.name)
}

// EachInstruction calls visit for every instruction in the function, in
// block order, then instruction order within each block. Iteration stops
// early if visit returns false.
func (fn *Function) EachInstruction(visit func(*BasicBlock, Instruction) bool) {
	for _, b := range fn.blocks {
		for _, instr := range b.ToSlice() {
			if !visit(b, instr) {
				return
			}
		}
	}
}

// Validate checks the structural invariants a well-formed function must
// hold: every block, the last included, is terminated, and every
// successor named by a terminator belongs to this same function (spec
// §8 invariant: "every BasicBlock not terminated is an authoring error
// once a function is considered complete").
func (fn *Function) Validate() error {
	belongs := make(map[*BasicBlock]bool, len(fn.blocks))
	for _, b := range fn.blocks {
		belongs[b] = true
	}
	for _, b := range fn.blocks {
		if !b.Terminated() {
			return newError(Schema, "block %q in function %q has no terminator", b.Name(), fn.name)
		}
		for _, succ := range b.Successors() {
			if !belongs[succ] {
				return newError(NotFound, "block %q branches to %q, which is not in function %q", b.Name(), succ.Name(), fn.name)
			}
		}
	}
	return nil
}

// Dup deep-clones the function: every block and instruction is rebuilt
// fresh, operands are rewritten to point at the clone's own values, and
// Constants are shared by identity rather than copied (spec §4.5
// "dup"). The clone gets its own, independently disambiguated name
// table, and its name is the original's OriginalName.
func (fn *Function) Dup() *Function {
	argNames := make([]string, len(fn.arguments))
	argTypes := make([]Type, len(fn.arguments))
	for i, a := range fn.arguments {
		argNames[i] = a.Name()
		argTypes[i] = a.Type()
	}
	clone := NewFunction(fn.originalName, fn.returnType, argNames, argTypes)

	valueMap := make(map[Value]Value)
	for i, a := range fn.arguments {
		valueMap[a] = clone.arguments[i]
	}

	for _, b := range fn.blocks {
		nb := newBasicBlock(clone, clone.reserveName(b.Name()))
		clone.blocks = append(clone.blocks, nb)
		if clone.entry == nil {
			clone.entry = nb
		}
		valueMap[b] = nb
	}

	for bi, b := range fn.blocks {
		nb := clone.blocks[bi]
		for _, instr := range b.instrs {
			ni := cloneInstruction(clone, instr)
			valueMap[instr] = ni
			nb.Append(ni)
		}
	}

	for bi, b := range fn.blocks {
		nb := clone.blocks[bi]
		for ii, instr := range b.instrs {
			if srcPhi, ok := instr.(*PhiInsn); ok {
				dstPhi := nb.instrs[ii].(*PhiInsn)
				for _, e := range srcPhi.edges {
					dstPhi.AddIncoming(mapValue(valueMap, e.block).(*BasicBlock), mapValue(valueMap, e.value))
				}
				continue
			}
			rewriteOperands(nb.instrs[ii], instr.Operands(), valueMap)
		}
	}

	return clone
}

func mapValue(valueMap map[Value]Value, v Value) Value {
	if mapped, ok := valueMap[v]; ok {
		return mapped
	}
	return v
}

func rewriteOperands(dst Instruction, srcOperands []Value, valueMap map[Value]Value) {
	rewritten := make([]Value, len(srcOperands))
	for i, op := range srcOperands {
		rewritten[i] = mapValue(valueMap, op)
	}
	dst.SetOperands(rewritten)
}

// cloneInstruction builds a name-and-type-equivalent, operand-less copy
// of instr owned by clone; its operands are filled in by a second pass
// once every block and instruction has a clone counterpart.
func cloneInstruction(clone *Function, instr Instruction) Instruction {
	name := clone.reserveName(instr.Name())
	switch src := instr.(type) {
	case *BranchInsn:
		n := &BranchInsn{}
		n.setSelf(n)
		n.name = name
		n.fn = clone
		return n
	case *CondBranchInsn:
		n := &CondBranchInsn{}
		n.setSelf(n)
		n.name = name
		n.fn = clone
		return n
	case *ReturnInsn:
		n := &ReturnInsn{}
		n.setSelf(n)
		n.name = name
		n.fn = clone
		return n
	case *ReturnValueInsn:
		n := &ReturnValueInsn{}
		n.setSelf(n)
		n.name = name
		n.fn = clone
		return n
	case *PhiInsn:
		n := &PhiInsn{}
		n.setSelf(n)
		n.name = name
		n.fn = clone
		n.SetType(src.Type())
		return n
	default:
		g := instr.(*GenericInsn)
		n := &GenericInsn{opcode: g.opcode, sideEffects: g.sideEffects, syntax: g.syntax}
		n.setSelf(n)
		n.name = name
		n.fn = clone
		n.SetType(instr.Type())
		return n
	}
}
