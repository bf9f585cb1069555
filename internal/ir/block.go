package ir

// BasicBlock is an ordered container of Instructions terminated by a
// Terminator. It is itself a Value — a label — so other instructions can
// reference it as an operand (a branch target, a phi's predecessor key);
// spec §3 "BasicBlock".
type BasicBlock struct {
	valueBase
	namedValueBase
	instrs []Instruction
}

func newBasicBlock(fn *Function, name string) *BasicBlock {
	b := &BasicBlock{}
	b.setSelf(b)
	b.SetType(Label)
	b.fn = fn
	b.name = name
	return b
}

// IsConstant is true for a BasicBlock: a label is a constant reference
// (spec §3).
func (b *BasicBlock) IsConstant() bool { return true }

func (b *BasicBlock) InspectAsValue() string { return "label %" + b.name }

// Len returns the number of instructions currently in the block.
func (b *BasicBlock) Len() int { return len(b.instrs) }

// ToSlice returns a snapshot of the block's instructions in order.
// Mutating the returned slice never affects the block (spec §3 invariant
// "to_a returns a snapshot").
func (b *BasicBlock) ToSlice() []Instruction {
	out := make([]Instruction, len(b.instrs))
	copy(out, b.instrs)
	return out
}

// Include reports whether instr currently belongs to this block.
func (b *BasicBlock) Include(instr Instruction) bool {
	for _, i := range b.instrs {
		if i == instr {
			return true
		}
	}
	return false
}

// Append adds instr to the end of the block and marks it as belonging to
// this block.
func (b *BasicBlock) Append(instr Instruction) {
	instr.setBlock(b)
	b.instrs = append(b.instrs, instr)
	emitAddInstruction(b, instr)
}

// Insert inserts newInstr immediately before existing's current position.
// It fails with ErrNotFound if existing does not belong to this block.
func (b *BasicBlock) Insert(existing, newInstr Instruction) error {
	idx := b.indexOf(existing)
	if idx < 0 {
		return newError(NotFound, "instruction %q is not in block %q", existing.Name(), b.name)
	}
	newInstr.setBlock(b)
	b.instrs = append(b.instrs, nil)
	copy(b.instrs[idx+1:], b.instrs[idx:])
	b.instrs[idx] = newInstr
	emitAddInstruction(b, newInstr)
	return nil
}

// remove deletes instr from this block's instruction list. It does not
// touch use-lists; callers go through Instruction.Remove for that.
func (b *BasicBlock) remove(instr Instruction) {
	idx := b.indexOf(instr)
	if idx < 0 {
		return
	}
	b.instrs = append(b.instrs[:idx], b.instrs[idx+1:]...)
	instr.setBlock(nil)
}

// Replace substitutes old for new in place, in the block's instruction
// list only. Operand and use-list rewriting is the caller's
// responsibility (use Instruction.ReplaceWith for that); spec §4.4.
func (b *BasicBlock) Replace(old, new Instruction) error {
	idx := b.indexOf(old)
	if idx < 0 {
		return newError(NotFound, "instruction %q is not in block %q", old.Name(), b.name)
	}
	old.setBlock(nil)
	new.setBlock(b)
	b.instrs[idx] = new
	return nil
}

func (b *BasicBlock) indexOf(instr Instruction) int {
	for i, x := range b.instrs {
		if x == instr {
			return i
		}
	}
	return -1
}

// Terminated reports whether the block currently ends in a Terminator.
func (b *BasicBlock) Terminated() bool {
	if len(b.instrs) == 0 {
		return false
	}
	_, ok := b.instrs[len(b.instrs)-1].(Terminator)
	return ok
}

// Terminator returns the block's terminating instruction, or nil if the
// block is not well-terminated (spec §4.4: well-termination is required
// for successor/predecessor queries and serialization, but not enforced
// on every mutation).
func (b *BasicBlock) Terminator() Terminator {
	if len(b.instrs) == 0 {
		return nil
	}
	t, _ := b.instrs[len(b.instrs)-1].(Terminator)
	return t
}

// Exits reports whether this block's terminator returns from the
// function. Panics if the block has no terminator — callers should check
// Terminator() != nil first when well-termination isn't guaranteed.
func (b *BasicBlock) Exits() bool {
	return b.Terminator().Exits()
}

// Successors returns the blocks named as operands of this block's
// terminator, in operand order.
func (b *BasicBlock) Successors() []*BasicBlock {
	term := b.Terminator()
	if term == nil {
		return nil
	}
	var out []*BasicBlock
	for _, op := range term.Operands() {
		if succ, ok := op.(*BasicBlock); ok {
			out = append(out, succ)
		}
	}
	return out
}

// Predecessors returns the blocks whose terminator names this block as a
// successor, derived from this block's use-list.
func (b *BasicBlock) Predecessors() []*BasicBlock {
	seen := make(map[*BasicBlock]struct{})
	var out []*BasicBlock
	for _, u := range b.Uses() {
		term, ok := u.(Terminator)
		if !ok || term.Block() == nil {
			continue
		}
		pred := term.Block()
		if _, ok := seen[pred]; ok {
			continue
		}
		seen[pred] = struct{}{}
		out = append(out, pred)
	}
	return out
}

// PredecessorNames returns the names of Predecessors(), sorted by that
// predecessor block's position in the owning function's block list
// (spec §3: "sorted by predecessor insertion order in the function").
func (b *BasicBlock) PredecessorNames() []string {
	preds := b.Predecessors()
	fn := b.fn
	order := make(map[*BasicBlock]int, len(preds))
	if fn != nil {
		for i, blk := range fn.blocks {
			order[blk] = i
		}
	}
	names := make([]string, len(preds))
	idx := make([]int, len(preds))
	for i, p := range preds {
		names[i] = p.Name()
		idx[i] = order[p]
	}
	for i := 1; i < len(preds); i++ {
		for j := i; j > 0 && idx[j-1] > idx[j]; j-- {
			idx[j-1], idx[j] = idx[j], idx[j-1]
			names[j-1], names[j] = names[j], names[j-1]
		}
	}
	return names
}
