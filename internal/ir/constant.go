package ir

// Constant is a Value with a (type, payload) pair, value-equal to any
// other Constant sharing both (spec §3 "Constant"). Constants are
// immutable once built: the spec flags a mutable-payload variant as a
// non-canonical configuration that interacts poorly with equality-by-
// structure and use-list stability (spec §9, Open Question (a)); this
// core only implements the canonical, immutable form (see DESIGN.md).
type Constant struct {
	valueBase
	payload any
}

// NewConstant builds a Constant of the given type carrying payload.
// payload must be comparable (==) for Equal to work; callers that need
// structural equality for non-comparable payloads should intern a
// comparable key (e.g. a string encoding) instead.
func NewConstant(typ Type, payload any) *Constant {
	c := &Constant{payload: payload}
	c.setSelf(c)
	c.SetType(typ)
	return c
}

func (c *Constant) IsConstant() bool { return true }

// Payload returns the literal value the Constant carries.
func (c *Constant) Payload() any { return c.payload }

// Equal reports value-equality: same (to_type, payload) pair, matching
// spec §3's "a == b iff ... same type ∧ same payload".
func (c *Constant) Equal(other Value) bool {
	oc, ok := other.(*Constant)
	if !ok {
		return false
	}
	return c.Type().ToType().Equal(oc.Type().ToType()) && c.payload == oc.payload
}

// InspectAsValue renders a Constant as `<type> <value-literal>`, the
// type carrying a leading `^` (spec §4.7: "Constant: `<type>
// <value-literal>` (type printed with a leading `^`)" — e.g. a
// `dup ^Integer 1` operand).
func (c *Constant) InspectAsValue() string {
	return "^" + c.Type().String() + " " + prettyLiteral(c.payload)
}
