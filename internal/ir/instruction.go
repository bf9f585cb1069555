package ir

import (
	"reflect"
	"strings"
	"unicode"
)

// Instruction is a User that is also a NamedValue and belongs to exactly
// one BasicBlock (spec §3 "Instruction"). For the dedicated instruction
// types the opcode is derived from the concrete Go type's name, never
// stored (spec §4.2); a GenericInsn carries its opcode as data instead.
type Instruction interface {
	User
	NamedValue
	// Opcode is the instruction's mnemonic: derived from its class name
	// for dedicated types (spec §4.2), the stored opcode for a GenericInsn.
	Opcode() string
	// Block is the BasicBlock this instruction currently belongs to, or
	// nil if it has been removed or not yet inserted.
	Block() *BasicBlock
	// IsTerminator reports whether this instruction ends its block.
	IsTerminator() bool
	// Remove deletes this instruction from its block and detaches it from
	// every operand's use-list.
	Remove()
	// ReplaceWith rewrites every use of this instruction to name other,
	// then removes this instruction, per the rules in spec §4.2.
	ReplaceWith(other Value) error

	setBlock(b *BasicBlock)
}

// instructionBase implements everything but Opcode (supplied per concrete
// type) for every instruction type; PhiInsn embeds it too and overrides
// the operand methods for its block→value shape. This is also, concretely, the
// spec's "GenericInstruction": Type() here is always the explicit,
// settable valueBase field rather than something recomputed from
// operands, so any instruction built on instructionBase already has a
// mutable, stored type.
type instructionBase struct {
	userBase
	namedValueBase
	block *BasicBlock
}

func (i *instructionBase) Block() *BasicBlock   { return i.block }
func (i *instructionBase) IsTerminator() bool    { return false }
func (i *instructionBase) setBlock(b *BasicBlock) { i.block = b }

func (i *instructionBase) InspectAsValue() string { return "%" + i.name }

// Remove deletes the instruction from its block (if any) and detaches it
// from every operand's use-list. It does not check that the instruction
// has no remaining uses — callers that need that discipline should
// ReplaceWith or ReplaceAllUsesWith first.
func (i *instructionBase) Remove() {
	self := i.selfAsUser().(Instruction)
	if i.block != nil {
		i.block.remove(self)
	}
	self.Detach()
	emitRemoveInstruction(self)
}

// opcodeOf derives an instruction's opcode from its concrete Go type name,
// per the "FooBarInsn" ↔ "foo_bar" convention (spec §4.2).
func opcodeOf(instr any) string {
	t := reflect.TypeOf(instr)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return ClassToOpcode(t)
}

// ClassToOpcode derives the opcode for a Go type whose name follows the
// "FooBarInsn" convention: strip the trailing "Insn", then convert
// CamelCase to snake_case. Only the type's own (unqualified) name is
// used, matching spec §4.2's "the last path component is used, stripping
// any enclosing scope".
func ClassToOpcode(t reflect.Type) string {
	name := t.Name()
	name = strings.TrimSuffix(name, "Insn")
	return camelToSnake(name)
}

// OpcodeToClassName is ClassToOpcode's inverse: it produces the
// "FooBarInsn" class name a scope would register an opcode string under.
func OpcodeToClassName(opcode string) string {
	return snakeToCamel(opcode) + "Insn"
}

func camelToSnake(s string) string {
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func snakeToCamel(s string) string {
	parts := strings.Split(s, "_")
	var b strings.Builder
	for _, p := range parts {
		if p == "" {
			continue
		}
		b.WriteString(strings.ToUpper(p[:1]))
		if len(p) > 1 {
			b.WriteString(p[1:])
		}
	}
	return b.String()
}

// ReplaceWith implements spec §4.2's three-way rule: a Value with uses is
// rewritten into via ReplaceAllUsesWith; a bare, not-yet-inserted
// Instruction is spliced into this instruction's position first; a
// Constant is never inserted into a block.
func (i *instructionBase) ReplaceWith(other Value) error {
	self := i.selfAsUser().(Instruction)

	if otherInstr, ok := other.(Instruction); ok && otherInstr.Block() == nil {
		if i.block != nil {
			if err := i.block.Insert(self, otherInstr); err != nil {
				return err
			}
		}
	}

	self.ReplaceAllUsesWith(other)
	self.Remove()
	return nil
}
