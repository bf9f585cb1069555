// Package irevent turns structural mutations of an ir.Function into an
// append-only, ordered event log, the way internal/trace turns a
// compiler driver's phase transitions into a span stream — grounded on
// that package's Event/Tracer split, but recording IR structure instead
// of span timing.
package irevent

// Kind enumerates the structural mutations a Stream can record.
type Kind uint8

const (
	// KindAddBlock records a new BasicBlock joining its Function.
	KindAddBlock Kind = iota + 1
	// KindAddInstruction records an Instruction joining a BasicBlock.
	KindAddInstruction
	// KindUpdateInstruction records an instruction's operands and type as
	// of construction. Later SetOperands/SetType calls are not recorded.
	KindUpdateInstruction
	// KindRenameInstruction records a NamedValue's name changing.
	KindRenameInstruction
	// KindRemoveInstruction records an Instruction leaving its block.
	KindRemoveInstruction
	// KindType records a type's id/kind/name the first time it is
	// interned, so a replayer can resolve later events' bare TypeID
	// fields without the live object graph (spec §4.8).
	KindType
)

// String renders the kind using the same snake_case convention as an
// opcode name, matching how the log's own contents is spelled.
func (k Kind) String() string {
	switch k {
	case KindAddBlock:
		return "add_block"
	case KindAddInstruction:
		return "add_instruction"
	case KindUpdateInstruction:
		return "update_instruction"
	case KindRenameInstruction:
		return "rename_instruction"
	case KindRemoveInstruction:
		return "remove_instruction"
	case KindType:
		return "type"
	default:
		return "unknown"
	}
}
