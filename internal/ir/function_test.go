package ir_test

import (
	"testing"

	"ssair/internal/ir"
)

func TestFunction_MakeNameDisambiguates(t *testing.T) {
	fn := ir.NewFunction("f", i32Type{}, nil, nil)
	n1 := fn.MakeName("x")
	n2 := fn.MakeName("x")
	n3 := fn.MakeName("x")
	if n1 != "x" {
		t.Fatalf("first reservation = %q, want %q", n1, "x")
	}
	if n2 != "x.1" {
		t.Fatalf("second reservation = %q, want %q", n2, "x.1")
	}
	if n3 != "x.2" {
		t.Fatalf("third reservation = %q, want %q", n3, "x.2")
	}
}

func TestFunction_MakeNameDoesNotCollideWithOwnName(t *testing.T) {
	fn := ir.NewFunction("foo", i32Type{}, nil, nil)
	if got := fn.MakeName("foo"); got != "foo" {
		t.Fatalf("MakeName(%q) in function %q = %q, want %q (function name is not in its own value namespace)", "foo", "foo", got, "foo")
	}
}

func TestFunction_MakeNameAnonymous(t *testing.T) {
	fn := ir.NewFunction("f", i32Type{}, nil, nil)
	n1 := fn.MakeName("")
	n2 := fn.MakeName("")
	if n1 == n2 {
		t.Fatalf("two anonymous reservations returned the same name %q", n1)
	}
}

func TestBuilder_AddBlockAutoBranchesFromUnterminatedCursor(t *testing.T) {
	fn := ir.NewFunction("f", i32Type{}, nil, nil)
	b := ir.NewBuilder(fn, nil)
	first := b.AddBlock("first")
	second := b.AddBlock("second")

	if !first.Terminated() {
		t.Fatalf("first block was not auto-terminated when AddBlock moved the cursor")
	}
	succs := first.Successors()
	if len(succs) != 1 || succs[0] != second {
		t.Fatalf("first.Successors() = %v, want [second]", succs)
	}
}

func TestFunction_AddBlockDoesNotAutoBranch(t *testing.T) {
	fn := ir.NewFunction("f", i32Type{}, nil, nil)
	entry := fn.AddBlock("entry")
	other := fn.AddBlock("other")
	if entry.Terminated() {
		t.Fatalf("Function.AddBlock should never auto-terminate the previous block")
	}
	_ = other
}

func TestFunction_Validate(t *testing.T) {
	fn := ir.NewFunction("f", i32Type{}, nil, nil)
	fn.AddBlock("entry")
	if err := fn.Validate(); kindOf(err) != ir.Schema {
		t.Fatalf("Validate() on an unterminated function = %v, want Schema error", err)
	}

	fn2 := ir.NewFunction("g", i32Type{}, nil, nil)
	b := fn2.AddBlock("entry")
	r, _ := ir.NewReturn(fn2)
	b.Append(r)
	if err := fn2.Validate(); err != nil {
		t.Fatalf("Validate() on a well-formed function: %v", err)
	}
}

func TestFunction_Find(t *testing.T) {
	fn := ir.NewFunction("f", i32Type{}, []string{"a"}, []ir.Type{i32Type{}})
	b := fn.AddBlock("entry")
	r, _ := ir.NewReturn(fn)
	b.Append(r)

	if _, err := fn.Find("a"); err != nil {
		t.Errorf("Find(%q): %v", "a", err)
	}
	if _, err := fn.Find("entry"); err != nil {
		t.Errorf("Find(%q): %v", "entry", err)
	}
	if _, err := fn.Find(r.Name()); err != nil {
		t.Errorf("Find(%q): %v", r.Name(), err)
	}
	if _, err := fn.Find("nope"); kindOf(err) != ir.NotFound {
		t.Errorf("Find(%q) = %v, want NotFound", "nope", err)
	}
}

func TestFunction_Dup(t *testing.T) {
	fn := ir.NewFunction("f", i32Type{}, []string{"a"}, []ir.Type{i32Type{}})
	entry := fn.AddBlock("entry")
	then := fn.AddBlock("then")
	els := fn.AddBlock("else")
	merge := fn.AddBlock("merge")

	a := ir.Value(fn.Arguments()[0])
	shared := ir.NewConstant(i32Type{}, 99)

	cb, _ := ir.NewCondBranch(fn, a, then, els)
	entry.Append(cb)

	br1, _ := ir.NewBranch(fn, merge)
	then.Append(br1)
	br2, _ := ir.NewBranch(fn, merge)
	els.Append(br2)

	phi := ir.NewPhi(fn, i32Type{}, ir.PhiIncoming{Block: then, Value: shared}, ir.PhiIncoming{Block: els, Value: a})
	merge.Append(phi)
	rv, _ := ir.NewReturnValue(fn, phi)
	merge.Append(rv)

	clone := fn.Dup()
	if err := clone.Validate(); err != nil {
		t.Fatalf("clone.Validate(): %v", err)
	}
	if len(clone.Blocks()) != len(fn.Blocks()) {
		t.Fatalf("clone has %d blocks, want %d", len(clone.Blocks()), len(fn.Blocks()))
	}
	if clone == fn {
		t.Fatalf("Dup returned the same function")
	}

	cloneMerge := clone.Blocks()[3]
	clonePhi, ok := cloneMerge.ToSlice()[0].(*ir.PhiInsn)
	if !ok {
		t.Fatalf("clone's merge block does not start with a phi")
	}
	for _, op := range clonePhi.Operands() {
		if op == ir.Value(shared) {
			continue
		}
		if op == a {
			t.Fatalf("clone's phi still references the original function's argument")
		}
	}
}
