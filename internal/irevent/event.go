package irevent

// OperandRef is one entry in an UpdateInstruction event's operand list,
// distinguishing the four shapes an operand can take so a replayer can
// rebuild the reference without access to the live object graph (spec
// §4.8: "{kind:\"constant\", type, value}", "{kind:\"instruction\",
// name}", "{kind:\"basic_block\", name}", "{kind:\"argument\", name}").
type OperandRef struct {
	Kind    string `json:"kind" msgpack:"kind"`
	Name    string `json:"name,omitempty" msgpack:"name,omitempty"`
	TypeID  uint32 `json:"type,omitempty" msgpack:"type,omitempty"`
	Payload any    `json:"value,omitempty" msgpack:"value,omitempty"`
}

// Event is one entry in a Stream's append-only log. Not every field is
// meaningful for every Kind: AddBlock only ever sets Function/Block;
// RenameInstruction sets OldName and leaves TypeID at zero. A Type event
// sets only TypeID/TypeName/TypeKind (spec §4.8 table: "id, kind, name"
// — TypeKind serializes as "type_kind" rather than "kind" to avoid
// colliding with the event's own Kind field, which already owns that
// JSON key).
type Event struct {
	Seq         uint64       `json:"seq" msgpack:"seq"`
	Kind        Kind         `json:"kind" msgpack:"kind"`
	Function    string       `json:"function" msgpack:"function"`
	Block       string       `json:"block,omitempty" msgpack:"block,omitempty"`
	Instruction string       `json:"instruction,omitempty" msgpack:"instruction,omitempty"`
	Opcode      string       `json:"opcode,omitempty" msgpack:"opcode,omitempty"`
	TypeID      uint32       `json:"type_id,omitempty" msgpack:"type_id,omitempty"`
	TypeName    string       `json:"type_name,omitempty" msgpack:"type_name,omitempty"`
	TypeKind    string       `json:"type_kind,omitempty" msgpack:"type_kind,omitempty"`
	Operands    []OperandRef `json:"operands,omitempty" msgpack:"operands,omitempty"`
	OldName     string       `json:"old_name,omitempty" msgpack:"old_name,omitempty"`
}
