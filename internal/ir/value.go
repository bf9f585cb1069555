package ir

// Value is the abstract base of anything that can be an operand: a
// Constant, an Argument, a BasicBlock (used as a label), or an
// Instruction's result. It tracks the set of Users that name it — its
// use-list — so that the def-use graph can be walked from either side
// (spec §3 "Value", §4.1 def-use engine).
//
// Concrete Values never implement this interface directly; they embed
// valueBase, which supplies every method below except InspectAsValue,
// which each concrete type defines for itself.
type Value interface {
	// Type is the Value's type, defaulting to Bottom.
	Type() Type
	// IsConstant reports whether this Value is a Constant (or, like a
	// BasicBlock label, behaves as one for reference purposes).
	IsConstant() bool
	// HasSideEffects reports whether this Value's mere existence must be
	// preserved — Arguments and Terminators are true; nearly everything
	// else defaults to false.
	HasSideEffects() bool
	// Uses returns a snapshot of the Users currently naming this Value.
	// It is a multiset: a User that references this Value twice (e.g. in
	// two operand positions) appears twice.
	Uses() []User
	// UseCount is len(Uses()), without the allocation.
	UseCount() int
	// Used reports whether UseCount() > 0.
	Used() bool
	// ReplaceAllUsesWith rewrites every User currently naming this Value
	// so that it names other instead, one User at a time (spec §4.1).
	ReplaceAllUsesWith(other Value)
	// InspectAsValue is the printer's rendering of this Value when it
	// appears as someone else's operand (spec §8 property 4).
	InspectAsValue() string

	addUse(u User)
	removeUse(u User)
}

// valueBase implements Value. Every concrete Value type (Constant,
// Argument, BasicBlock, Instruction and its subtypes) embeds it and sets
// self during construction so ReplaceAllUsesWith knows which Value it is
// rewriting references to.
type valueBase struct {
	typ  Type
	uses []User
	self Value
}

func (v *valueBase) setSelf(self Value) { v.self = self }

func (v *valueBase) Type() Type {
	if v.typ == nil {
		return Bottom
	}
	return v.typ
}

// SetType assigns the Value's type directly. No Instruction here derives
// its type from its operands: every one stores it as this mutable
// attribute, GenericInstruction-style (spec §3 "GenericInstruction"), and
// the terminators never set it, so they stay Bottom.
func (v *valueBase) SetType(t Type) { v.typ = t }

func (v *valueBase) IsConstant() bool      { return false }
func (v *valueBase) HasSideEffects() bool  { return false }

func (v *valueBase) Uses() []User {
	out := make([]User, len(v.uses))
	copy(out, v.uses)
	return out
}

func (v *valueBase) UseCount() int { return len(v.uses) }
func (v *valueBase) Used() bool    { return len(v.uses) > 0 }

func (v *valueBase) addUse(u User) {
	v.uses = append(v.uses, u)
}

func (v *valueBase) removeUse(u User) {
	for i := len(v.uses) - 1; i >= 0; i-- {
		if v.uses[i] == u {
			v.uses = append(v.uses[:i], v.uses[i+1:]...)
			return
		}
	}
}

// ReplaceAllUsesWith walks a snapshot of the use-list once, visiting each
// distinct User a single time even if it names this Value from more than
// one operand position — ReplaceUsesOf on that User takes care of every
// occurrence (design note §9 "walks the back-edge collection once").
func (v *valueBase) ReplaceAllUsesWith(other Value) {
	if v.self == nil || len(v.uses) == 0 {
		return
	}
	seen := make(map[User]struct{}, len(v.uses))
	snapshot := append([]User(nil), v.uses...)
	for _, u := range snapshot {
		if _, ok := seen[u]; ok {
			continue
		}
		seen[u] = struct{}{}
		_ = u.ReplaceUsesOf(v.self, other)
	}
}
