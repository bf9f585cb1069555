package irevent

import (
	"bufio"
	"encoding/json"
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

// EncodeNDJSON writes one JSON object per line for each event, in Seq
// order, matching the newline-delimited convention internal/trace uses
// for its own NDJSON format.
func EncodeNDJSON(w io.Writer, events []Event) error {
	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)
	for _, ev := range events {
		if err := enc.Encode(ev); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// EncodeMsgpack writes the whole event slice as a single msgpack
// array, for compact on-disk storage (grounded on internal/driver's
// disk-cache use of vmihailenco/msgpack).
func EncodeMsgpack(w io.Writer, events []Event) error {
	return msgpack.NewEncoder(w).Encode(events)
}

// DecodeMsgpack reads back an event slice written by EncodeMsgpack.
func DecodeMsgpack(r io.Reader) ([]Event, error) {
	var events []Event
	if err := msgpack.NewDecoder(r).Decode(&events); err != nil {
		return nil, err
	}
	return events, nil
}
