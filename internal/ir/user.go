package ir

// User is any Value that references other Values as operands and
// maintains bidirectional def-use edges to them (spec §3 "User", §4.1).
type User interface {
	Value
	// Operands returns a snapshot of the operand list in order.
	Operands() []Value
	// SetOperands replaces the whole operand list, diffing old against new
	// by multiset membership and patching use-lists accordingly: removed
	// occurrences decrement the old operand's use-list, added occurrences
	// increment the new operand's.
	SetOperands(ops []Value)
	// ReplaceUsesOf rewrites only the positions where old appears, leaving
	// every other operand untouched. It fails with ErrInvalidUse when old
	// is not currently an operand of this User.
	ReplaceUsesOf(old, new Value) error
	// Detach clears every operand, severing this User from every operand's
	// use-list.
	Detach()
}

// userBase implements User on top of valueBase. Concrete Users (anything
// embedding instructionBase, plus PhiInsn which overrides the operand
// methods to expose its block→value shape) embed this.
type userBase struct {
	valueBase
	operands []Value
}

// selfAsUser recovers the User view of valueBase.self, which was set to
// the full leaf type (e.g. *BranchInsn) at construction time.
func (u *userBase) selfAsUser() User {
	if self, ok := u.valueBase.self.(User); ok {
		return self
	}
	return nil
}

func (u *userBase) Operands() []Value {
	out := make([]Value, len(u.operands))
	copy(out, u.operands)
	return out
}

func (u *userBase) SetOperands(ops []Value) {
	self := u.selfAsUser()

	oldCount := make(map[Value]int, len(u.operands))
	for _, o := range u.operands {
		oldCount[o]++
	}
	newCount := make(map[Value]int, len(ops))
	for _, o := range ops {
		newCount[o]++
	}

	for val, oc := range oldCount {
		if nc := newCount[val]; nc < oc {
			for i := 0; i < oc-nc; i++ {
				val.removeUse(self)
			}
		}
	}
	for val, nc := range newCount {
		if oc := oldCount[val]; nc > oc {
			for i := 0; i < nc-oc; i++ {
				val.addUse(self)
			}
		}
	}

	u.operands = append([]Value(nil), ops...)
}

func (u *userBase) ReplaceUsesOf(old, new Value) error {
	count := 0
	next := make([]Value, len(u.operands))
	for i, o := range u.operands {
		if o == old {
			next[i] = new
			count++
		} else {
			next[i] = o
		}
	}
	if count == 0 {
		return newError(InvalidUse, "value is not an operand of this user")
	}

	self := u.selfAsUser()
	for i := 0; i < count; i++ {
		old.removeUse(self)
		new.addUse(self)
	}
	u.operands = next
	return nil
}

func (u *userBase) Detach() {
	u.SetOperands(nil)
}
