package ir

// phiEdge is one (predecessor block, incoming value) pair. PhiInsn keeps
// these in insertion order instead of a Go map so that iteration — and
// therefore printing — is deterministic (spec §3 "PhiInstruction").
type phiEdge struct {
	block *BasicBlock
	value Value
}

// PhiInsn selects a value based on which predecessor transferred control
// into its block. Its operand shape is a mapping from BasicBlock to
// Value rather than a plain ordered list, but every incoming pair still
// contributes two edges to the def-use graph: the phi uses the value
// *and* uses the block as a label operand (spec §3, §4.1).
//
// PhiInsn is the spec's GenericInstruction applied to this operand
// shape: its Type is the explicit, mutable valueBase field, not derived
// from the incoming values.
type PhiInsn struct {
	instructionBase
	edges []phiEdge
}

// NewPhi constructs a phi of the given type with the supplied incoming
// edges, in the order given. Each edge adds the incoming value and the
// predecessor block to their respective use-lists.
func NewPhi(fn *Function, typ Type, incoming ...PhiIncoming) *PhiInsn {
	p := &PhiInsn{}
	p.setSelf(p)
	p.name = fn.reserveName("")
	p.fn = fn
	p.SetType(typ)
	for _, in := range incoming {
		p.AddIncoming(in.Block, in.Value)
	}
	emitUpdateInstruction(fn, p)
	return p
}

// PhiIncoming is one (block, value) pair passed to NewPhi.
type PhiIncoming struct {
	Block *BasicBlock
	Value Value
}

func (p *PhiInsn) Opcode() string { return opcodeOf(p) }

// AddIncoming appends a new predecessor edge, adding use-list entries for
// both the block and the value.
func (p *PhiInsn) AddIncoming(block *BasicBlock, value Value) {
	self := p.selfAsUser()
	block.addUse(self)
	value.addUse(self)
	p.edges = append(p.edges, phiEdge{block: block, value: value})
}

// IncomingBlocks returns the predecessor blocks in insertion order.
func (p *PhiInsn) IncomingBlocks() []*BasicBlock {
	out := make([]*BasicBlock, len(p.edges))
	for i, e := range p.edges {
		out[i] = e.block
	}
	return out
}

// Incoming returns the value associated with block, if any.
func (p *PhiInsn) Incoming(block *BasicBlock) (Value, bool) {
	for _, e := range p.edges {
		if e.block == block {
			return e.value, true
		}
	}
	return nil, false
}

// RemoveIncoming drops the edge for block, if present, removing both
// use-list entries.
func (p *PhiInsn) RemoveIncoming(block *BasicBlock) {
	self := p.selfAsUser()
	for i, e := range p.edges {
		if e.block == block {
			e.block.removeUse(self)
			e.value.removeUse(self)
			p.edges = append(p.edges[:i], p.edges[i+1:]...)
			return
		}
	}
}

// Operands overrides userBase.Operands to present the spec's required
// iteration order: every incoming value first, then every incoming
// block (spec §3: "values first, then all blocks, for stable printing
// and testing").
func (p *PhiInsn) Operands() []Value {
	out := make([]Value, 0, len(p.edges)*2)
	for _, e := range p.edges {
		out = append(out, e.value)
	}
	for _, e := range p.edges {
		out = append(out, Value(e.block))
	}
	return out
}

// SetOperands is not meaningful for a phi's (block, value) mapping;
// mutate edges through AddIncoming/RemoveIncoming/ReplaceUsesOf instead.
func (p *PhiInsn) SetOperands(ops []Value) {}

// Detach clears every incoming edge, severing this phi from every block
// and value use-list it touched.
func (p *PhiInsn) Detach() {
	self := p.selfAsUser()
	for _, e := range p.edges {
		e.block.removeUse(self)
		e.value.removeUse(self)
	}
	p.edges = nil
}

// ReplaceUsesOf rewrites old wherever it appears: as a predecessor block
// key (rekeying that edge to new, which must itself be a *BasicBlock) or
// as an incoming value (rewriting that edge's value). It fails with
// ErrInvalidUse if old appears in neither role (spec §8 property 7,
// scenario S4).
func (p *PhiInsn) ReplaceUsesOf(old, new Value) error {
	self := p.selfAsUser()
	replaced := false
	for i := range p.edges {
		if Value(p.edges[i].block) == old {
			newBlock, ok := new.(*BasicBlock)
			if !ok {
				return newError(InvalidUse, "cannot replace phi predecessor with a non-block value")
			}
			p.edges[i].block.removeUse(self)
			newBlock.addUse(self)
			p.edges[i].block = newBlock
			replaced = true
			continue
		}
		if p.edges[i].value == old {
			old.removeUse(self)
			new.addUse(self)
			p.edges[i].value = new
			replaced = true
		}
	}
	if !replaced {
		return newError(InvalidUse, "value is not an operand of this phi")
	}
	return nil
}
