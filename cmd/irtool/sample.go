package main

import "ssair/internal/ir"

// intType is a minimal, self-contained Type implementation for the demo
// function below — a real embedder would plug in its own type system
// through the ir.Type interface (spec §6: "the type system is opaque").
type intType struct{ bits int }

func (t intType) ToType() ir.Type { return t }
func (t intType) Equal(other ir.Type) bool {
	o, ok := other.(intType)
	return ok && o.bits == t.bits
}
func (t intType) PrettyPrint(p *ir.Printer) { p.TypeTok(t.String()) }
func (t intType) ReplaceTypeWith(from, to ir.Type) ir.Type {
	if t.Equal(from) {
		return to
	}
	return t
}
func (t intType) String() string {
	if t.bits == 1 {
		return "i1"
	}
	return "i32"
}

var i32 ir.Type = intType{bits: 32}
var i1 ir.Type = intType{bits: 1}

// buildSample assembles: fn max(a: i32, b: i32) -> i32 { if a < b then
// returns b, else returns a } using a phi to merge the two arms. It
// exercises the Builder's CondBranch, Branch, Phi and ReturnValue methods
// and, through them, the def-use engine, block wiring, and (optionally)
// the Sink event log.
func buildSample(sink ir.EventSink) *ir.Function {
	fn := ir.NewFunction("max", i32, []string{"a", "b"}, []ir.Type{i32, i32})
	fn.Sink = sink

	b := ir.NewBuilder(fn, nil)
	entry := fn.AddBlock("entry")

	args := fn.Arguments()
	a, bArg := ir.Value(args[0]), ir.Value(args[1])

	cond, _ := ir.NewGenericInsn(fn, "less_than", nil, i1, false, []ir.Value{a, bArg})
	entry.Append(cond)

	thenBlock := fn.AddBlock("then")
	elseBlock := fn.AddBlock("else")
	mergeBlock := fn.AddBlock("merge")

	b.SetBlock(entry)
	_, _ = b.CondBranch(cond, thenBlock, elseBlock)

	b.SetBlock(thenBlock)
	_, _ = b.Branch(mergeBlock)

	b.SetBlock(elseBlock)
	_, _ = b.Branch(mergeBlock)

	b.SetBlock(mergeBlock)
	phi := b.Phi(i32,
		ir.PhiIncoming{Block: thenBlock, Value: bArg},
		ir.PhiIncoming{Block: elseBlock, Value: a},
	)
	_, _ = b.ReturnValue(phi)

	return fn
}
