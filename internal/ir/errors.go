package ir

import "fmt"

// Kind enumerates the fatal-to-the-caller error conditions the core can
// raise. Every mutation either upholds its invariants by construction or
// fails with one of these; there is no partial-success, no accumulation
// of multiple errors the way internal/diag batches diagnostics for a
// compiler front-end — a core IR operation either succeeds completely or
// is rejected outright.
type Kind uint8

const (
	// NotFound covers lookup by name or structural position (Function.Find,
	// BasicBlock.Insert's anchor, Module lookup).
	NotFound Kind = iota + 1
	// InvalidUse is returned by ReplaceUsesOf when the given old value is not
	// currently an operand of the user.
	InvalidUse
	// Arity is returned when an instruction's operand count does not match
	// its declared syntax.
	Arity
	// TypeMismatch is returned when an operand's type does not satisfy its
	// declared syntax constraint.
	TypeMismatch
	// Schema is returned when an InstructionSyntax declaration is ill-formed
	// (a splat slot not last, or more than one splat slot).
	Schema
	// UnknownOpcode is returned when a Builder dispatches to an opcode its
	// Scope cannot resolve.
	UnknownOpcode
	// NotImplemented names the failure of an abstract operation that a
	// concrete subtype must supply (e.g. Exits on a bare
	// TerminatorInstruction). No function in this package returns it: the
	// terminator base type cannot be constructed on its own.
	NotImplemented
)

// String renders the kind the way internal/diag.Severity renders itself.
func (k Kind) String() string {
	switch k {
	case NotFound:
		return "NOT-FOUND"
	case InvalidUse:
		return "INVALID-USE"
	case Arity:
		return "ARITY"
	case TypeMismatch:
		return "TYPE"
	case Schema:
		return "SCHEMA"
	case UnknownOpcode:
		return "UNKNOWN-OPCODE"
	case NotImplemented:
		return "NOT-IMPLEMENTED"
	default:
		return "UNKNOWN"
	}
}

// Error is the single error type the core returns. Callers compare kinds
// with errors.Is against the sentinel values below rather than a
// diagnostic bag, since the core never recovers from one of these — it
// reports and stops (spec §7).
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Is lets errors.Is(err, ir.ErrNotFound) match any *Error of that Kind,
// regardless of message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// Sentinel values for errors.Is comparisons; messages are filled in at the
// call site via newError, not on these.
var (
	ErrNotFound       = &Error{Kind: NotFound}
	ErrInvalidUse     = &Error{Kind: InvalidUse}
	ErrArity          = &Error{Kind: Arity}
	ErrType           = &Error{Kind: TypeMismatch}
	ErrSchema         = &Error{Kind: Schema}
	ErrUnknownOpcode  = &Error{Kind: UnknownOpcode}
	ErrNotImplemented = &Error{Kind: NotImplemented}
)

func newError(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}
