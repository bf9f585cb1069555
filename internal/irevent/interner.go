package irevent

import (
	"fortio.org/safecast"

	"ssair/internal/ir"
)

// Interner assigns each distinct type a sequential integer id on first
// sight, so a Stream's events can reference a type by a compact id
// instead of repeating its rendered form every time (grounded on
// internal/types.Interner's "intern on first sight" discipline).
type Interner struct {
	index map[string]uint32
	types []string
	kinds []string
}

// NewInterner returns an empty Interner.
func NewInterner() *Interner {
	return &Interner{index: make(map[string]uint32)}
}

// Intern returns t's id, assigning the next sequential id if t (compared
// by its rendered String form) has not been seen before, and whether
// this call is what assigned it (so a caller can emit a one-time `type`
// announcement event on first sight, spec §4.8).
func (in *Interner) Intern(t ir.Type) (id uint32, isNew bool) {
	key := t.String()
	if id, ok := in.index[key]; ok {
		return id, false
	}
	id, err := safecast.Conv[uint32](len(in.types))
	if err != nil {
		// len(in.types) cannot exceed the number of distinct types ever
		// interned in one process; this only fires past 4 billion of them.
		id = 0
	}
	in.types = append(in.types, key)
	in.kinds = append(in.kinds, typeKind(t))
	in.index[key] = id
	return id, true
}

// Lookup returns the rendered type string for id, and whether it exists.
func (in *Interner) Lookup(id uint32) (string, bool) {
	if int(id) >= len(in.types) {
		return "", false
	}
	return in.types[id], true
}

// Kind returns the "monotype"/"composite" classification recorded for id
// at intern time, and whether id exists.
func (in *Interner) Kind(id uint32) (string, bool) {
	if int(id) >= len(in.kinds) {
		return "", false
	}
	return in.kinds[id], true
}

// Len returns the number of distinct types interned so far.
func (in *Interner) Len() int { return len(in.types) }

// typeKind classifies t for the event stream's `type` announcement: a
// Type that implements ir.CompositeType and reports itself composite is
// "composite"; everything else is "monotype".
func typeKind(t ir.Type) string {
	if c, ok := t.(ir.CompositeType); ok && c.IsComposite() {
		return "composite"
	}
	return "monotype"
}
