package irevent

import (
	"sync"

	"ssair/internal/ir"
)

// Stream is an append-only, in-memory mutation log that implements
// ir.EventSink. It may be attached to more than one Function's Sink
// field. Appending events and reading them back through Events are
// guarded by a mutex (grounded on trace.StreamTracer's mutex
// discipline), so a second goroutine may read the log while the first
// keeps mutating; the type interner is not guarded, so recording events
// from more than one goroutine at once is not safe.
type Stream struct {
	mu       sync.Mutex
	events   []Event
	interner *Interner
	nextSeq  uint64
}

// NewStream returns an empty Stream.
func NewStream() *Stream {
	return &Stream{interner: NewInterner()}
}

func (s *Stream) append(ev Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ev.Seq = s.nextSeq
	s.nextSeq++
	s.events = append(s.events, ev)
}

// internType interns t and, the first time t is seen, appends a `type`
// event announcing its id/kind/name before returning — so any later
// event's bare TypeID is always preceded in the log by the record that
// gives it meaning (spec §4.8).
func (s *Stream) internType(t ir.Type) uint32 {
	id, isNew := s.interner.Intern(t)
	if isNew {
		name, _ := s.interner.Lookup(id)
		kind, _ := s.interner.Kind(id)
		s.append(Event{Kind: KindType, TypeID: id, TypeName: name, TypeKind: kind})
	}
	return id
}

// AddBlock implements ir.EventSink.
func (s *Stream) AddBlock(fn *ir.Function, b *ir.BasicBlock) {
	s.append(Event{Kind: KindAddBlock, Function: fn.Name(), Block: b.Name()})
}

// AddInstruction implements ir.EventSink.
func (s *Stream) AddInstruction(b *ir.BasicBlock, instr ir.Instruction) {
	s.append(Event{
		Kind:        KindAddInstruction,
		Function:    instr.Function().Name(),
		Block:       b.Name(),
		Instruction: instr.Name(),
		Opcode:      instr.Opcode(),
		TypeID:      s.internType(instr.Type()),
	})
}

// UpdateInstruction implements ir.EventSink.
func (s *Stream) UpdateInstruction(instr ir.Instruction) {
	fnName := ""
	if fn := instr.Function(); fn != nil {
		fnName = fn.Name()
	}
	ops := instr.Operands()
	refs := make([]OperandRef, len(ops))
	for i, op := range ops {
		refs[i] = s.encodeOperand(op)
	}
	s.append(Event{
		Kind:        KindUpdateInstruction,
		Function:    fnName,
		Instruction: instr.Name(),
		Opcode:      instr.Opcode(),
		TypeID:      s.internType(instr.Type()),
		Operands:    refs,
	})
}

// encodeOperand renders one operand value as the spec's tagged-union
// operand encoding, so a replayer can rebuild the reference without the
// live object graph.
func (s *Stream) encodeOperand(op ir.Value) OperandRef {
	switch v := op.(type) {
	case *ir.Constant:
		return OperandRef{Kind: "constant", TypeID: s.internType(v.Type()), Payload: v.Payload()}
	case *ir.BasicBlock:
		return OperandRef{Kind: "basic_block", Name: v.Name()}
	case *ir.Argument:
		return OperandRef{Kind: "argument", Name: v.Name()}
	case ir.Instruction:
		return OperandRef{Kind: "instruction", Name: v.Name()}
	default:
		return OperandRef{Kind: "unknown"}
	}
}

// RenameInstruction implements ir.EventSink.
func (s *Stream) RenameInstruction(nv ir.NamedValue, oldName string) {
	fnName := ""
	if fn := nv.Function(); fn != nil {
		fnName = fn.Name()
	}
	s.append(Event{
		Kind:        KindRenameInstruction,
		Function:    fnName,
		Instruction: nv.Name(),
		OldName:     oldName,
	})
}

// RemoveInstruction implements ir.EventSink.
func (s *Stream) RemoveInstruction(instr ir.Instruction) {
	fnName := ""
	if fn := instr.Function(); fn != nil {
		fnName = fn.Name()
	}
	s.append(Event{
		Kind:        KindRemoveInstruction,
		Function:    fnName,
		Instruction: instr.Name(),
		Opcode:      instr.Opcode(),
	})
}

// Events returns a snapshot of every event recorded so far, in Seq
// order.
func (s *Stream) Events() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Event(nil), s.events...)
}

// Interner returns the Stream's type interner, so a caller can resolve
// an Event's TypeID back to the type's rendered form.
func (s *Stream) Interner() *Interner { return s.interner }

// AggregateModule concatenates the event logs of every function in m
// whose instrumentation is present and backed by a *Stream, in the
// module's function order (spec §4.9: "Module-level instrumentation
// aggregates per-function event streams whose `present` flag is true").
// A function instrumented with a different ir.EventSink implementation
// contributes nothing here; there is no generic way to read events back
// out of an arbitrary Sink.
func AggregateModule(m *ir.Module) []Event {
	var all []Event
	for _, fn := range m.InstrumentedFunctions() {
		if s, ok := fn.Sink.(*Stream); ok {
			all = append(all, s.Events()...)
		}
	}
	return all
}
