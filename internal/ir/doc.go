// Package ir implements a Static Single Assignment form intermediate
// representation: Functions built from BasicBlocks of Instructions,
// connected by a bidirectional def-use graph.
//
// # Architecture
//
// Every concrete type in the Value/User/NamedValue/Instruction hierarchy
// embeds the matching *Base struct (valueBase, userBase, namedValueBase,
// instructionBase) and records itself as the dynamic Value on
// construction, so base-struct methods can call back into the full
// interface a caller sees:
//
//   - Value: Constant, Argument, BasicBlock, Instruction
//   - User: anything with operands (every Instruction, including Phi)
//   - NamedValue: Argument, BasicBlock, Instruction
//   - Instruction: BranchInsn, CondBranchInsn, ReturnInsn,
//     ReturnValueInsn, PhiInsn, GenericInsn
//
// # Construction
//
// A Function is assembled through a Builder, which resolves
// domain-specific opcodes through a Scope:
//
//	fn := ir.NewFunction("max", i32, []string{"a", "b"}, []ir.Type{i32, i32})
//	b := ir.NewBuilder(fn, scope)
//	entry := b.AddBlock("entry")
//	...
//	b.ReturnValue(result)
//
// # Instrumentation
//
// A Function's Sink field, if set, receives an ordered log of block
// additions and instruction construction, placement, renaming and
// removal (see EventSink and internal/irevent), without the core
// depending on that package.
package ir
