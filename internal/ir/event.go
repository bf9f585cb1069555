package ir

// EventSink receives a notification when a Function gains a block, when
// an instruction is constructed (UpdateInstruction), placed in a block
// (Append, Insert), renamed through Function.Rename, or removed through
// Instruction.Remove. Operand rewrites after construction (SetOperands,
// ReplaceUsesOf, ReplaceAllUsesWith), SetType, and BasicBlock.Replace are
// not reported. A Function with a nil Sink pays nothing for this;
// internal/irevent supplies the concrete implementation that turns these
// calls into an ordered log (spec §4.8).
//
// On ordering: UpdateInstruction for an instruction's initial type fires
// before the AddInstruction that first places it in a block, because
// constructors emit it. RenameInstruction fires when Function.Rename is
// called, so it follows the instruction's AddInstruction only if the
// instruction was placed before being renamed; Rename does not check
// placement.
type EventSink interface {
	AddBlock(fn *Function, b *BasicBlock)
	AddInstruction(b *BasicBlock, instr Instruction)
	UpdateInstruction(instr Instruction)
	RenameInstruction(nv NamedValue, oldName string)
	RemoveInstruction(instr Instruction)
}

func emitAddBlock(fn *Function, b *BasicBlock) {
	if fn != nil && fn.Sink != nil {
		fn.Sink.AddBlock(fn, b)
	}
}

func emitAddInstruction(b *BasicBlock, instr Instruction) {
	if fn := instr.Function(); fn != nil && fn.Sink != nil {
		fn.Sink.AddInstruction(b, instr)
	}
}

func emitUpdateInstruction(fn *Function, instr Instruction) {
	if fn != nil && fn.Sink != nil {
		fn.Sink.UpdateInstruction(instr)
	}
}

func emitRenameInstruction(fn *Function, nv NamedValue, oldName string) {
	if fn != nil && fn.Sink != nil {
		fn.Sink.RenameInstruction(nv, oldName)
	}
}

func emitRemoveInstruction(instr Instruction) {
	if fn := instr.Function(); fn != nil && fn.Sink != nil {
		fn.Sink.RemoveInstruction(instr)
	}
}

// Rename reassigns nv's name to a disambiguated form of newName,
// recording the change with the function's Sink if one is set. The
// event is emitted at call time, whether or not nv has been placed in a
// block yet.
func (fn *Function) Rename(nv NamedValue, newName string) string {
	old := nv.Name()
	name := fn.reserveName(newName)
	nv.setName(name)
	emitRenameInstruction(fn, nv, old)
	return name
}
