package ir_test

import (
	"testing"

	"ssair/internal/ir"
)

func TestBasicBlock_ToSliceIsSnapshot(t *testing.T) {
	fn := ir.NewFunction("f", i32Type{}, nil, nil)
	b := fn.AddBlock("entry")
	r, _ := ir.NewReturn(fn)
	b.Append(r)

	snap := b.ToSlice()
	snap[0] = nil
	if b.ToSlice()[0] == nil {
		t.Fatalf("mutating ToSlice() result affected the block's own instructions")
	}
}

func TestBasicBlock_Insert(t *testing.T) {
	fn := ir.NewFunction("f", i32Type{}, nil, nil)
	b := fn.AddBlock("entry")
	c1 := ir.NewConstant(i32Type{}, 1)
	r, _ := ir.NewReturnValue(fn, c1)
	b.Append(r)

	cond, _ := ir.NewGenericInsn(fn, "noop", nil, ir.Bottom, false, nil)
	if err := b.Insert(r, cond); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	got := b.ToSlice()
	if len(got) != 2 || got[0] != ir.Instruction(cond) || got[1] != ir.Instruction(r) {
		t.Fatalf("Insert did not place the new instruction before the anchor: %v", got)
	}
}

func TestBasicBlock_InsertMissingAnchor(t *testing.T) {
	fn := ir.NewFunction("f", i32Type{}, nil, nil)
	b := fn.AddBlock("entry")
	other := fn.AddBlock("other")
	r, _ := ir.NewReturn(fn)
	other.Append(r)

	cond, _ := ir.NewGenericInsn(fn, "noop", nil, ir.Bottom, false, nil)
	if err := b.Insert(r, cond); kindOf(err) != ir.NotFound {
		t.Fatalf("Insert with anchor in a different block: got %v, want NotFound", err)
	}
}

func TestBasicBlock_SuccessorsAndPredecessors(t *testing.T) {
	fn := ir.NewFunction("f", i32Type{}, nil, nil)
	entry := fn.AddBlock("entry")
	then := fn.AddBlock("then")
	els := fn.AddBlock("else")

	cb, err := ir.NewCondBranch(fn, ir.NewConstant(i32Type{}, 1), then, els)
	if err != nil {
		t.Fatalf("NewCondBranch: %v", err)
	}
	entry.Append(cb)

	rt, _ := ir.NewReturn(fn)
	then.Append(rt)
	re, _ := ir.NewReturn(fn)
	els.Append(re)

	succs := entry.Successors()
	if len(succs) != 2 || succs[0] != then || succs[1] != els {
		t.Fatalf("Successors() = %v, want [then, else]", succs)
	}

	thenPreds := then.Predecessors()
	if len(thenPreds) != 1 || thenPreds[0] != entry {
		t.Fatalf("then.Predecessors() = %v, want [entry]", thenPreds)
	}
}

func TestBasicBlock_Terminated(t *testing.T) {
	fn := ir.NewFunction("f", i32Type{}, nil, nil)
	b := fn.AddBlock("entry")
	if b.Terminated() {
		t.Fatalf("empty block reports Terminated() == true")
	}
	r, _ := ir.NewReturn(fn)
	b.Append(r)
	if !b.Terminated() {
		t.Fatalf("block with a terminator reports Terminated() == false")
	}
	if !b.Exits() {
		t.Fatalf("Exits() = false, want true for a return-terminated block")
	}
}
