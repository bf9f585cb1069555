package ir_test

import (
	"testing"

	"ssair/internal/ir"
)

func TestModule_AddFunctionDisambiguates(t *testing.T) {
	m := ir.NewModule("m")
	f1 := ir.NewFunction("helper", i32Type{}, nil, nil)
	f2 := ir.NewFunction("helper", i32Type{}, nil, nil)
	f3 := ir.NewFunction("helper", i32Type{}, nil, nil)

	m.AddFunction(f1)
	m.AddFunction(f2)
	m.AddFunction(f3)

	if f1.Name() != "helper" {
		t.Errorf("f1.Name() = %q, want %q", f1.Name(), "helper")
	}
	if f2.Name() != "helper;1" {
		t.Errorf("f2.Name() = %q, want %q", f2.Name(), "helper;1")
	}
	if f3.Name() != "helper;2" {
		t.Errorf("f3.Name() = %q, want %q", f3.Name(), "helper;2")
	}
	if f2.OriginalName() != "helper" {
		t.Errorf("f2.OriginalName() = %q, want %q (disambiguation must not touch it)", f2.OriginalName(), "helper")
	}
}

func TestModule_AddFunctionReusesDisambiguatedStem(t *testing.T) {
	m := ir.NewModule("m")
	f1 := ir.NewFunction("foo", i32Type{}, nil, nil)
	f2 := ir.NewFunction("foo", i32Type{}, nil, nil)
	f3 := ir.NewFunction("foo;1", i32Type{}, nil, nil)

	m.AddFunction(f1)
	m.AddFunction(f2)
	m.AddFunction(f3)

	if f1.Name() != "foo" {
		t.Errorf("f1.Name() = %q, want %q", f1.Name(), "foo")
	}
	if f2.Name() != "foo;1" {
		t.Errorf("f2.Name() = %q, want %q", f2.Name(), "foo;1")
	}
	if f3.Name() != "foo;2" {
		t.Errorf("f3.Name() = %q, want %q", f3.Name(), "foo;2")
	}
}

func TestModule_Find(t *testing.T) {
	m := ir.NewModule("m")
	f := ir.NewFunction("helper", i32Type{}, nil, nil)
	m.AddFunction(f)

	if got, err := m.Find("helper"); err != nil || got != f {
		t.Errorf("Find(%q) = (%v, %v), want (f, nil)", "helper", got, err)
	}
	if _, err := m.Find("missing"); kindOf(err) != ir.NotFound {
		t.Errorf("Find(%q) = %v, want NotFound", "missing", err)
	}
}

func TestModule_RemoveFunctionByName(t *testing.T) {
	m := ir.NewModule("m")
	f1 := ir.NewFunction("helper", i32Type{}, nil, nil)
	f2 := ir.NewFunction("helper", i32Type{}, nil, nil)
	m.AddFunction(f1)
	m.AddFunction(f2)

	if err := m.RemoveFunction("helper"); err != nil {
		t.Fatalf("RemoveFunction(%q): %v", "helper", err)
	}
	if _, err := m.Find("helper"); kindOf(err) != ir.NotFound {
		t.Fatalf("Find(%q) after removal = %v, want NotFound", "helper", err)
	}
	if got, err := m.Find("helper;1"); err != nil || got != f2 {
		t.Fatalf("Find(%q) = (%v, %v), want (f2, nil)", "helper;1", got, err)
	}
	if err := m.RemoveFunction("helper"); kindOf(err) != ir.NotFound {
		t.Fatalf("RemoveFunction(%q) twice = %v, want NotFound", "helper", err)
	}

	// The freed name can be claimed again by a fresh function.
	f3 := ir.NewFunction("helper", i32Type{}, nil, nil)
	m.AddFunction(f3)
	if f3.Name() != "helper" {
		t.Fatalf("f3.Name() = %q, want %q (freed name reusable after removal)", f3.Name(), "helper")
	}
}

func TestModule_RemoveByReference(t *testing.T) {
	m := ir.NewModule("m")
	f := ir.NewFunction("helper", i32Type{}, nil, nil)
	m.AddFunction(f)
	m.Remove(f)
	if _, err := m.Find("helper"); kindOf(err) != ir.NotFound {
		t.Fatalf("Find(%q) after Remove = %v, want NotFound", "helper", err)
	}
	if len(m.Functions()) != 0 {
		t.Fatalf("Functions() after Remove = %v, want empty", m.Functions())
	}
}

func TestModule_AddFunctionWithPrefix(t *testing.T) {
	m := ir.NewModule("m")
	f := ir.NewFunction("helper", i32Type{}, nil, nil)
	m.AddFunction(f, "renamed")
	if f.Name() != "renamed" {
		t.Fatalf("f.Name() = %q, want %q", f.Name(), "renamed")
	}
	if f.OriginalName() != "helper" {
		t.Fatalf("f.OriginalName() = %q, want %q (prefix rename must not touch it)", f.OriginalName(), "helper")
	}
}

func TestModule_Validate(t *testing.T) {
	m := ir.NewModule("m")
	f := ir.NewFunction("helper", i32Type{}, nil, nil)
	b := f.AddBlock("entry")
	r, _ := ir.NewReturn(f)
	b.Append(r)
	m.AddFunction(f)

	if err := m.Validate(); err != nil {
		t.Fatalf("Validate(): %v", err)
	}

	bad := ir.NewFunction("bad", i32Type{}, nil, nil)
	bad.AddBlock("entry")
	m.AddFunction(bad)
	if err := m.Validate(); kindOf(err) != ir.Schema {
		t.Fatalf("Validate() with an unterminated function = %v, want Schema", err)
	}
}
