package ir

// SlotKind distinguishes the two operand-slot shapes an InstructionSyntax
// can declare (spec §4.3).
type SlotKind uint8

const (
	// SlotOperand is a single required operand, optionally type-constrained.
	SlotOperand SlotKind = iota
	// SlotSplat accepts zero or more trailing operands. At most one splat
	// slot is permitted, and it must be the last slot declared.
	SlotSplat
)

// Slot describes one named operand position in an InstructionSyntax.
type Slot struct {
	Name         string
	Kind         SlotKind
	RequiredType Type // nil means unconstrained
}

// Operand declares a single required operand slot, optionally constrained
// to a type.
func Operand(name string, requiredType Type) Slot {
	return Slot{Name: name, Kind: SlotOperand, RequiredType: requiredType}
}

// Splat declares a trailing variadic operand slot.
func Splat(name string) Slot {
	return Slot{Name: name, Kind: SlotSplat}
}

// Syntax is the declarative operand schema attached to an instruction
// class (spec §4.3). It validates operand count and per-slot type
// constraints, and backs the single indexed accessor the spec offers as
// an alternative to generated per-slot getters/setters (spec §9).
type Syntax struct {
	Slots []Slot
}

// NewSyntax validates the slot list — at most one splat, and only as the
// last slot — and returns the assembled Syntax. It fails with ErrSchema
// otherwise.
func NewSyntax(slots ...Slot) (*Syntax, error) {
	splats := 0
	for i, s := range slots {
		if s.Kind == SlotSplat {
			splats++
			if i != len(slots)-1 {
				return nil, newError(Schema, "splat slot %q must be the last slot declared", s.Name)
			}
		}
	}
	if splats > 1 {
		return nil, newError(Schema, "only one splat slot is permitted")
	}
	return &Syntax{Slots: append([]Slot(nil), slots...)}, nil
}

func (s *Syntax) hasSplat() bool {
	return len(s.Slots) > 0 && s.Slots[len(s.Slots)-1].Kind == SlotSplat
}

func (s *Syntax) fixedArity() int {
	n := 0
	for _, sl := range s.Slots {
		if sl.Kind == SlotOperand {
			n++
		}
	}
	return n
}

// Validate checks operand count and per-slot type constraints, returning
// ErrArity or ErrType on the first violation.
func (s *Syntax) Validate(operands []Value) error {
	if s == nil {
		return nil
	}
	fixed := s.fixedArity()
	if s.hasSplat() {
		if len(operands) < fixed {
			return newError(Arity, "expected at least %d operands, got %d", fixed, len(operands))
		}
	} else if len(operands) != fixed {
		return newError(Arity, "expected %d operands, got %d", fixed, len(operands))
	}

	for i, sl := range s.Slots {
		if sl.Kind == SlotSplat {
			break
		}
		if sl.RequiredType == nil {
			continue
		}
		got := operands[i].Type().ToType()
		if !sl.RequiredType.ToType().Equal(got) {
			return newError(TypeMismatch, "slot %q requires type %s, got %s", sl.Name, sl.RequiredType, got)
		}
	}
	return nil
}

// IsValid re-runs Validate without raising, for the printer's `!invalid`
// marker (spec §4.3 "valid? re-runs type checks without raising").
func (s *Syntax) IsValid(operands []Value) bool {
	return s.Validate(operands) == nil
}

// IndexOf returns the slot position for name, and whether it was found.
func (s *Syntax) IndexOf(name string) (int, bool) {
	for i, sl := range s.Slots {
		if sl.Name == name {
			return i, true
		}
	}
	return 0, false
}
