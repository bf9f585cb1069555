package ir

import "strings"

// Module is an ordered collection of Functions, each keyed by a name
// disambiguated against every other function already in the module
// (spec §4.9). A Function's OriginalName is always preserved even after
// disambiguation renames it on entry, so that tooling can still relate
// the renamed function back to its source.
type Module struct {
	name      string
	functions []*Function
	names     map[string]int
}

// NewModule creates an empty, named Module.
func NewModule(name string) *Module {
	return &Module{name: name, names: make(map[string]int)}
}

func (m *Module) Name() string { return m.name }

// Functions returns a snapshot of the module's functions in insertion
// order.
func (m *Module) Functions() []*Function {
	return append([]*Function(nil), m.functions...)
}

// AddFunction inserts fn into the module, renaming it with a ";N" suffix
// (smallest free N ≥ 1) if another function of the same name is already
// present. fn's OriginalName is untouched by this rename (spec §4.9,
// scenario S6). A name that already carries a ";N" suffix of its own —
// because it collided with a previously disambiguated function — keeps
// disambiguating against the same base stem rather than stacking a
// second suffix onto it, so three functions all named "foo" come out
// "foo", "foo;1", "foo;2" even when the third arrives already spelled
// "foo;1".
//
// An optional prefix renames fn to prefix on insertion, before
// disambiguation runs against it (spec §4.9: "An explicit prefix may be
// passed to `add` to rename the function on insertion"); at most one
// prefix is meaningful, so only prefix[0] is consulted.
func (m *Module) AddFunction(fn *Function, prefix ...string) {
	if len(prefix) > 0 {
		fn.name = prefix[0]
	}
	if _, taken := m.names[fn.name]; !taken {
		m.names[fn.name] = 1
		m.functions = append(m.functions, fn)
		return
	}
	stem := stripDisambigSuffix(fn.name, ';')
	for k := 1; ; k++ {
		candidate := stem + ";" + itoa(k)
		if _, taken := m.names[candidate]; !taken {
			m.names[candidate] = 1
			fn.name = candidate
			m.functions = append(m.functions, fn)
			return
		}
	}
}

// Remove deletes fn from the module by reference, freeing its
// disambiguated name for reuse. It is a no-op if fn does not belong to
// m (spec §4.9: "Removal by name or by function reference").
func (m *Module) Remove(fn *Function) {
	for i, f := range m.functions {
		if f == fn {
			m.functions = append(m.functions[:i], m.functions[i+1:]...)
			delete(m.names, f.name)
			return
		}
	}
}

// RemoveFunction deletes the function currently named name from the
// module, failing with ErrNotFound if none matches (spec §4.9, §7).
func (m *Module) RemoveFunction(name string) error {
	for _, fn := range m.functions {
		if fn.name == name {
			m.Remove(fn)
			return nil
		}
	}
	return newError(NotFound, "no function named %q in module %q", name, m.name)
}

// InstrumentedFunctions returns the module's functions whose
// instrumentation "present" flag is true, in insertion order (spec
// §4.9: "Module-level instrumentation aggregates per-function event
// streams whose `present` flag is true" — the aggregation itself lives
// in package irevent, which can see both this slice and the concrete
// Stream type without this package importing its consumer).
func (m *Module) InstrumentedFunctions() []*Function {
	var out []*Function
	for _, fn := range m.functions {
		if fn.Instrumented() {
			out = append(out, fn)
		}
	}
	return out
}

// stripDisambigSuffix removes a trailing "<sep><digits>" suffix from
// name, if present, so a name that already carries a previous
// disambiguation suffix continues the search from the same base instead
// of stacking another suffix onto it.
func stripDisambigSuffix(name string, sep byte) string {
	i := strings.LastIndexByte(name, sep)
	if i < 0 || i == len(name)-1 {
		return name
	}
	for _, r := range name[i+1:] {
		if r < '0' || r > '9' {
			return name
		}
	}
	return name[:i]
}

// Find looks up a function by its current (possibly disambiguated) name.
// It fails with ErrNotFound if no function matches.
func (m *Module) Find(name string) (*Function, error) {
	for _, fn := range m.functions {
		if fn.name == name {
			return fn, nil
		}
	}
	return nil, newError(NotFound, "no function named %q in module %q", name, m.name)
}

// Validate runs Function.Validate over every function in the module,
// returning the first failure.
func (m *Module) Validate() error {
	for _, fn := range m.functions {
		if err := fn.Validate(); err != nil {
			return err
		}
	}
	return nil
}
