package ir

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

var (
	keywordColor = color.New(color.FgCyan, color.Bold)
	typeColor    = color.New(color.FgYellow)
	nameColor    = color.New(color.FgGreen)
	invalidColor = color.New(color.FgRed, color.Bold)
)

// Printer assembles rendered IR text from a small set of chunk
// primitives — Text, Keyword, TypeTok, Newline — rather than raw string
// concatenation, so that every caller gets the same whitespace
// discipline: a space is inserted between two consecutive chunks unless
// the preceding chunk ended in a newline or either chunk is empty
// (spec §4.7, grounded on the teacher's format.Writer).
type Printer struct {
	buf         strings.Builder
	atLineStart bool
	prevEmpty   bool
	Colorize    bool
}

// NewPrinter returns an empty Printer. When colorize is true, Keyword
// and TypeTok render through fatih/color the way internal/version
// composes its banner.
func NewPrinter(colorize bool) *Printer {
	return &Printer{atLineStart: true, Colorize: colorize}
}

func (p *Printer) writeChunk(s string) {
	if s == "" {
		p.prevEmpty = true
		return
	}
	if p.buf.Len() > 0 && !p.atLineStart && !p.prevEmpty {
		p.buf.WriteByte(' ')
	}
	p.buf.WriteString(s)
	p.prevEmpty = false
	p.atLineStart = strings.HasSuffix(s, "\n")
}

// raw writes s directly to the buffer, bypassing the inter-chunk spacing
// rule: for punctuation that must sit flush against whatever came before
// it (a function name immediately followed by its argument list's `(`).
func (p *Printer) raw(s string) *Printer {
	p.buf.WriteString(s)
	p.prevEmpty = false
	p.atLineStart = strings.HasSuffix(s, "\n")
	return p
}

// indent writes n spaces of raw leading whitespace for one line. Layout
// indentation is not itself a token, so it must not trigger the
// inter-chunk spacing rule the way an ordinary chunk would.
func (p *Printer) indent(n int) *Printer {
	for i := 0; i < n; i++ {
		p.buf.WriteByte(' ')
	}
	return p
}

// typeToken renders t as the printer would via TypeTok, but as a plain
// string for embedding inside a larger hand-assembled token (an operand,
// a phi edge, a signature argument) where the caller controls internal
// spacing directly instead of letting chunk-to-chunk spacing supply it.
func (p *Printer) typeToken(t Type) string {
	s := "^" + t.String()
	if p.Colorize && s != "" {
		s = typeColor.Sprint(s)
	}
	return s
}

// nameToken renders s as the printer would via Name, as a plain string
// for the same reason typeToken does.
func (p *Printer) nameToken(s string) string {
	if p.Colorize && s != "" {
		s = nameColor.Sprint(s)
	}
	return s
}

// joinTokens emits tokens as a single comma-separated run: each but the
// last gets a trailing comma appended to its own chunk (so the ordinary
// inter-chunk space lands after the comma, not before it), then each
// token is written as its own chunk so the usual single leading space
// still separates it from whatever preceded the list.
func (p *Printer) joinTokens(tokens []string) {
	for i, tok := range tokens {
		if i < len(tokens)-1 {
			tok += ","
		}
		p.Text(tok)
	}
}

// Text emits a plain, uncolored chunk.
func (p *Printer) Text(s string) *Printer {
	p.writeChunk(s)
	return p
}

// Keyword emits a language keyword ("label", "phi", an opcode name),
// bolded when colorizing.
func (p *Printer) Keyword(s string) *Printer {
	if p.Colorize && s != "" {
		s = keywordColor.Sprint(s)
	}
	p.writeChunk(s)
	return p
}

// TypeTok emits a type token, colorized distinctly from keywords and
// names when colorizing is enabled.
func (p *Printer) TypeTok(s string) *Printer {
	if p.Colorize && s != "" {
		s = typeColor.Sprint(s)
	}
	p.writeChunk(s)
	return p
}

// Name emits a value or block name (with its sigil already attached).
func (p *Printer) Name(s string) *Printer {
	if p.Colorize && s != "" {
		s = nameColor.Sprint(s)
	}
	p.writeChunk(s)
	return p
}

// Invalid emits the "!invalid" marker a GenericInsn's operand syntax
// check failing renders (spec §4.3).
func (p *Printer) Invalid() *Printer {
	s := "!invalid"
	if p.Colorize {
		s = invalidColor.Sprint(s)
	}
	p.writeChunk(s)
	return p
}

// Newline ends the current line. Unlike the other primitives it is
// never preceded by an inserted space.
func (p *Printer) Newline() *Printer {
	p.buf.WriteByte('\n')
	p.atLineStart = true
	p.prevEmpty = false
	return p
}

// String returns everything written to the Printer so far.
func (p *Printer) String() string { return p.buf.String() }

// prettyLiteral renders a Constant's payload the way the printer renders
// any other literal token: quoted strings, bare numbers and booleans,
// "null" for a nil payload.
func prettyLiteral(payload any) string {
	switch v := payload.(type) {
	case nil:
		return "null"
	case string:
		return strconv.Quote(v)
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// PrintType renders t through a fresh Printer.
func PrintType(t Type, colorize bool) string {
	p := NewPrinter(colorize)
	t.PrettyPrint(p)
	return p.String()
}

// PrintValue renders v's InspectAsValue token as a single chunk, with no
// separate type prefix of its own (a Constant's token already carries
// its `^<type>`).
func (p *Printer) PrintValue(v Value) *Printer {
	p.Text(v.InspectAsValue())
	return p
}

// PrintInstruction renders one instruction line. With a result (or any
// operand), it is `<type> %<name> = <opcode> <operand1>, <operand2>, …`,
// the leading type carrying the `^` sigil; an instruction with no
// operands and Bottom type renders as bare `<opcode>` (spec §4.7). A
// GenericInsn whose recorded Syntax rejects its own current operands
// renders the `!invalid` marker right after the opcode (spec §4.3, §4.7).
// PhiInsn operands are the one exception to the generic operand list:
// each incoming edge renders as `%<block> => <value>` (spec §4.7 "Phi
// operand rendering").
func (p *Printer) PrintInstruction(instr Instruction) *Printer {
	ops := instr.Operands()
	invalid := false
	if g, ok := instr.(*GenericInsn); ok && g.syntax != nil {
		invalid = !g.syntax.IsValid(g.Operands())
	}

	bare := len(ops) == 0 && instr.Type().ToType().Equal(Bottom)
	if !bare {
		p.TypeTok("^" + instr.Type().String())
		p.Name("%" + instr.Name())
		p.Text("=")
	}
	p.Keyword(instr.Opcode())
	if invalid {
		p.Invalid()
	}

	if phi, ok := instr.(*PhiInsn); ok {
		tokens := make([]string, len(phi.edges))
		for i, e := range phi.edges {
			tokens[i] = p.nameToken("%"+e.block.Name()) + " => " + e.value.InspectAsValue()
		}
		p.joinTokens(tokens)
		return p
	}

	if len(ops) > 0 {
		tokens := make([]string, len(ops))
		for i, op := range ops {
			tokens[i] = op.InspectAsValue()
		}
		p.joinTokens(tokens)
	}
	return p
}

// PrintBlock renders a block's `<name>:` header followed by one
// three-space-indented line per instruction (spec §4.7, grounded on the
// teacher's DumpModule/dumpFunc two-level layout). A block's own
// InspectAsValue — `label %<name>` — is a different, separate rendering
// used when the block appears as someone else's operand; the header here
// is the bare name. The header carries no predecessor annotation: spec
// §4.7's BasicBlock rendering contract is exactly `<name>:` plus its
// indented instructions, nothing else.
func (p *Printer) PrintBlock(b *BasicBlock) *Printer {
	p.Name(b.Name() + ":")
	p.Newline()
	for _, instr := range b.ToSlice() {
		p.indent(3)
		p.PrintInstruction(instr)
		p.Newline()
	}
	return p
}

// PrintFunction renders a function's signature — `function <return-type>
// <name>( <type> %<name>, … ) {` — followed by every block in insertion
// order (spec §4.7).
func (p *Printer) PrintFunction(fn *Function) *Printer {
	p.Keyword("function")
	p.TypeTok("^" + fn.returnType.String())
	p.Name(fn.Name())
	p.raw("(")
	if args := fn.arguments; len(args) > 0 {
		tokens := make([]string, len(args))
		for i, a := range args {
			tokens[i] = p.typeToken(a.Type()) + " " + p.nameToken("%"+a.Name())
		}
		p.joinTokens(tokens)
		p.Text(")")
	} else {
		p.raw(")")
	}
	p.Text("{")
	p.Newline()
	for i, b := range fn.blocks {
		if i > 0 {
			p.Newline()
		}
		p.PrintBlock(b)
	}
	p.raw("}")
	p.Newline()
	return p
}

// PrintModule renders every function in m, in the order Functions()
// returns them.
func (p *Printer) PrintModule(m *Module) *Printer {
	for i, fn := range m.Functions() {
		if i > 0 {
			p.Newline()
		}
		p.PrintFunction(fn)
	}
	return p
}

// PrintModule is the package-level convenience entry point mirroring the
// teacher's DumpModule: render m fully and return the text.
func PrintModule(m *Module, colorize bool) string {
	p := NewPrinter(colorize)
	p.PrintModule(m)
	return p.String()
}
