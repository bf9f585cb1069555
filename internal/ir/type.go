package ir

// Type is the opaque external type-system contract consumed by the core
// (spec §6: "the type system ... treated as an opaque value"). Anything
// satisfying this interface can be attached to a Value, compared for
// operand-type checking, pretty-printed, and rewritten by a transform that
// substitutes one type for another.
type Type interface {
	// ToType returns a canonical form of the receiver — itself, or a
	// coerced equivalent — so that two differently-constructed type
	// values that denote the same type compare equal.
	ToType() Type
	// Equal reports whether the receiver denotes the same type as other.
	Equal(other Type) bool
	// PrettyPrint renders the type through the given printer's chunk API.
	PrettyPrint(p *Printer)
	// ReplaceTypeWith returns a type equal to the receiver with every
	// occurrence of from rewritten to to.
	ReplaceTypeWith(from, to Type) Type
	// String is the type's canonical textual form, sans any leading `^`
	// the printer adds around it.
	String() string
}

// CompositeType is an optional extension a Type implements to report
// that it is a composite type (a tuple, an array, anything built from
// other types) rather than a monotype, for the event stream's `type`
// announcement (spec §4.8 table: "kind (\"monotype\" or composite)"). A
// Type that does not implement this is treated as a monotype.
type CompositeType interface {
	IsComposite() bool
}

type bottomType struct{}

// Bottom is the sentinel type representing "no computed type" (spec §6).
// It is the default Type() of any Value that was never given one.
var Bottom Type = bottomType{}

func (bottomType) ToType() Type  { return Bottom }
func (bottomType) String() string { return "bottom" }

func (bottomType) Equal(other Type) bool {
	_, ok := other.(bottomType)
	return ok
}

func (bottomType) PrettyPrint(p *Printer) {
	p.Keyword("bottom")
}

func (bottomType) ReplaceTypeWith(from, to Type) Type {
	if Bottom.Equal(from) {
		return to
	}
	return Bottom
}

type labelType struct{}

// Label is the type every BasicBlock carries (spec §3: "NamedValue of
// 'label' type").
var Label Type = labelType{}

func (labelType) ToType() Type   { return Label }
func (labelType) String() string { return "label" }

func (labelType) Equal(other Type) bool {
	_, ok := other.(labelType)
	return ok
}

func (labelType) PrettyPrint(p *Printer) {
	p.Keyword("label")
}

func (labelType) ReplaceTypeWith(from, to Type) Type {
	if Label.Equal(from) {
		return to
	}
	return Label
}
