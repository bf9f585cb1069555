package ir

// Builder assembles instructions into a Function's current block,
// wiring auto-branching between consecutive blocks it adds itself
// (Function.AddBlock on its own never does), and resolving
// domain-specific opcodes through a Scope instead of a dynamic method
// call (spec §4.6).
type Builder struct {
	fn     *Function
	scope  *Scope
	cursor *BasicBlock
}

// NewBuilder creates a Builder appending to fn, resolving opcodes
// through scope (which may be nil if the caller only uses the
// convenience terminator methods below and never Emit).
func NewBuilder(fn *Function, scope *Scope) *Builder {
	return &Builder{fn: fn, scope: scope}
}

// Block returns the block the Builder currently appends to.
func (b *Builder) Block() *BasicBlock { return b.cursor }

// SetBlock redirects the Builder to append to block, without touching
// its termination state.
func (b *Builder) SetBlock(block *BasicBlock) { b.cursor = block }

// AddBlock adds a new block to the underlying function and moves the
// cursor to it. If the Builder's current cursor block is not already
// terminated, a Branch from it to the new block is appended first, so a
// straight-line sequence of AddBlock calls naturally falls through
// (Open Question (b), resolved in DESIGN.md: the auto-branch looks at
// the Builder's own cursor, not at the function's block list, so
// blocks created directly through Function.AddBlock for forward
// references are never implicitly wired).
func (b *Builder) AddBlock(name string) *BasicBlock {
	prev := b.cursor
	block := b.fn.AddBlock(name)
	if prev != nil && !prev.Terminated() {
		if br, err := NewBranch(b.fn, block); err == nil {
			prev.Append(br)
		}
	}
	b.cursor = block
	return block
}

// Append inserts instr at the end of the cursor block.
func (b *Builder) Append(instr Instruction) {
	b.cursor.Append(instr)
}

// Emit resolves opcode through the Builder's Scope, constructs the
// instruction, and appends it to the cursor block.
func (b *Builder) Emit(opcode string, typ Type, operands ...Value) (Instruction, error) {
	instr, err := b.scope.Build(b.fn, opcode, typ, operands)
	if err != nil {
		return nil, err
	}
	b.Append(instr)
	return instr, nil
}

// Return appends a bare return to the cursor block.
func (b *Builder) Return() (*ReturnInsn, error) {
	r, err := NewReturn(b.fn)
	if err != nil {
		return nil, err
	}
	b.Append(r)
	return r, nil
}

// ReturnValue appends a return of value to the cursor block.
func (b *Builder) ReturnValue(value Value) (*ReturnValueInsn, error) {
	r, err := NewReturnValue(b.fn, value)
	if err != nil {
		return nil, err
	}
	b.Append(r)
	return r, nil
}

// Branch appends an unconditional branch to target.
func (b *Builder) Branch(target *BasicBlock) (*BranchInsn, error) {
	br, err := NewBranch(b.fn, target)
	if err != nil {
		return nil, err
	}
	b.Append(br)
	return br, nil
}

// CondBranch appends a conditional branch on cond.
func (b *Builder) CondBranch(cond Value, then, els *BasicBlock) (*CondBranchInsn, error) {
	cb, err := NewCondBranch(b.fn, cond, then, els)
	if err != nil {
		return nil, err
	}
	b.Append(cb)
	return cb, nil
}

// Phi appends a phi instruction of type typ with the given incoming
// edges to the cursor block (normally its first instructions, though
// this is convention, not enforced).
func (b *Builder) Phi(typ Type, incoming ...PhiIncoming) *PhiInsn {
	p := NewPhi(b.fn, typ, incoming...)
	b.Append(p)
	return p
}
