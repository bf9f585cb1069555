package ir_test

import (
	"testing"

	"ssair/internal/ir"
)

func TestPhi_OperandOrderIsValuesThenBlocks(t *testing.T) {
	fn := ir.NewFunction("f", i32Type{}, nil, nil)
	bb1 := fn.AddBlock("bb1")
	bb2 := fn.AddBlock("bb2")
	v1 := ir.NewConstant(i32Type{}, 1)
	v2 := ir.NewConstant(i32Type{}, 2)

	phi := ir.NewPhi(fn, i32Type{}, ir.PhiIncoming{Block: bb1, Value: v1}, ir.PhiIncoming{Block: bb2, Value: v2})
	ops := phi.Operands()
	want := []ir.Value{v1, v2, ir.Value(bb1), ir.Value(bb2)}
	if len(ops) != len(want) {
		t.Fatalf("Operands() len = %d, want %d", len(ops), len(want))
	}
	for i := range want {
		if ops[i] != want[i] {
			t.Errorf("Operands()[%d] = %v, want %v", i, ops[i], want[i])
		}
	}
}

func TestPhi_ReplaceUsesOfRekeysPredecessor(t *testing.T) {
	fn := ir.NewFunction("f", i32Type{}, nil, nil)
	bb1 := fn.AddBlock("bb1")
	bb2 := fn.AddBlock("bb2")
	v1 := ir.NewConstant(i32Type{}, 1)

	phi := ir.NewPhi(fn, i32Type{}, ir.PhiIncoming{Block: bb1, Value: v1})

	if err := phi.ReplaceUsesOf(ir.Value(bb1), ir.Value(bb2)); err != nil {
		t.Fatalf("ReplaceUsesOf: %v", err)
	}

	got, ok := phi.Incoming(bb2)
	if !ok || got != ir.Value(v1) {
		t.Fatalf("phi.Incoming(bb2) = (%v, %v), want (v1, true)", got, ok)
	}
	if bb1.Used() {
		t.Fatalf("bb1.Used() = true, want false after replacing its phi edge")
	}
	if bb2.UseCount() != 1 {
		t.Fatalf("bb2.UseCount() = %d, want 1", bb2.UseCount())
	}
}

func TestPhi_ReplaceUsesOfValue(t *testing.T) {
	fn := ir.NewFunction("f", i32Type{}, nil, nil)
	bb1 := fn.AddBlock("bb1")
	v1 := ir.NewConstant(i32Type{}, 1)
	v2 := ir.NewConstant(i32Type{}, 2)

	phi := ir.NewPhi(fn, i32Type{}, ir.PhiIncoming{Block: bb1, Value: v1})
	if err := phi.ReplaceUsesOf(ir.Value(v1), ir.Value(v2)); err != nil {
		t.Fatalf("ReplaceUsesOf: %v", err)
	}
	got, _ := phi.Incoming(bb1)
	if got != ir.Value(v2) {
		t.Fatalf("phi.Incoming(bb1) = %v, want v2", got)
	}
	if v1.Used() {
		t.Fatalf("v1 still used after replacement")
	}
}

func TestPhi_ReplaceUsesOfUnknownValue(t *testing.T) {
	fn := ir.NewFunction("f", i32Type{}, nil, nil)
	bb1 := fn.AddBlock("bb1")
	v1 := ir.NewConstant(i32Type{}, 1)
	v2 := ir.NewConstant(i32Type{}, 2)

	phi := ir.NewPhi(fn, i32Type{}, ir.PhiIncoming{Block: bb1, Value: v1})
	if err := phi.ReplaceUsesOf(ir.Value(v2), v1); kindOf(err) != ir.InvalidUse {
		t.Fatalf("ReplaceUsesOf(not-an-operand) = %v, want InvalidUse", err)
	}
}

func TestPhi_RemoveIncoming(t *testing.T) {
	fn := ir.NewFunction("f", i32Type{}, nil, nil)
	bb1 := fn.AddBlock("bb1")
	bb2 := fn.AddBlock("bb2")
	v1 := ir.NewConstant(i32Type{}, 1)
	v2 := ir.NewConstant(i32Type{}, 2)

	phi := ir.NewPhi(fn, i32Type{}, ir.PhiIncoming{Block: bb1, Value: v1}, ir.PhiIncoming{Block: bb2, Value: v2})
	phi.RemoveIncoming(bb1)
	if bb1.Used() {
		t.Fatalf("bb1 still used after RemoveIncoming")
	}
	if v1.Used() {
		t.Fatalf("v1 still used after RemoveIncoming")
	}
	if len(phi.IncomingBlocks()) != 1 || phi.IncomingBlocks()[0] != bb2 {
		t.Fatalf("IncomingBlocks() = %v, want [bb2]", phi.IncomingBlocks())
	}
}
