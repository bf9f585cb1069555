package ir_test

import (
	"testing"

	"ssair/internal/ir"
)

func TestScope_ResolveWalksParent(t *testing.T) {
	parent := ir.NewScope(nil)
	parent.Define("add", nil, false)
	child := ir.NewScope(parent)

	if _, _, ok := child.Resolve("add"); !ok {
		t.Fatalf("child scope could not resolve opcode defined on its parent")
	}
	if _, _, ok := child.Resolve("unknown"); ok {
		t.Fatalf("Resolve(%q) found a definition that was never registered", "unknown")
	}
}

func TestScope_DefineShadowsParent(t *testing.T) {
	parent := ir.NewScope(nil)
	syntax, _ := ir.NewSyntax(ir.Operand("a", nil))
	parent.Define("add", nil, false)

	child := ir.NewScope(parent)
	child.Define("add", syntax, true)

	gotSyntax, gotSideEffects, ok := child.Resolve("add")
	if !ok || gotSyntax != syntax || !gotSideEffects {
		t.Fatalf("child scope did not shadow parent's definition")
	}
}

func TestScope_BuildUnknownOpcode(t *testing.T) {
	s := ir.NewScope(nil)
	fn := ir.NewFunction("f", i32Type{}, nil, nil)
	if _, err := s.Build(fn, "nope", ir.Bottom, nil); kindOf(err) != ir.UnknownOpcode {
		t.Fatalf("Build with an unregistered opcode = %v, want UnknownOpcode", err)
	}
}

func TestBuilder_EmitUsesScope(t *testing.T) {
	s := ir.NewScope(nil)
	syntax, _ := ir.NewSyntax(ir.Operand("a", nil), ir.Operand("b", nil))
	s.Define("add", syntax, false)

	fn := ir.NewFunction("f", i32Type{}, nil, nil)
	b := ir.NewBuilder(fn, s)
	entry := fn.AddBlock("entry")
	b.SetBlock(entry)

	instr, err := b.Emit("add", i32Type{}, ir.NewConstant(i32Type{}, 1), ir.NewConstant(i32Type{}, 2))
	if err != nil {
		t.Fatalf("Emit: %v", err)
	}
	if instr.Opcode() != "add" {
		t.Fatalf("Opcode() = %q, want %q", instr.Opcode(), "add")
	}
	if !entry.Include(instr) {
		t.Fatalf("Emit did not append the instruction to the cursor block")
	}
}
