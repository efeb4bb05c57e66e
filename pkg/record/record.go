// Package record persists acquisition events to a stream as a CBOR
// sequence: one self-describing header followed by one record per event.
//
// The receive buffers handed out by felib.SetReadDataFormat are mutated in
// place on every read, so each event is snapshotted at write time. The
// header carries the declared format; raw field bytes are stored in field
// order and can be reinterpreted on playback from the recorded shapes.
package record

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/fxamacker/cbor/v2"

	"github.com/go-daq/felib/pkg/felib"
)

// Header opens every recording.
type Header struct {
	Endpoint string        `cbor:"endpoint"`
	Fields   []felib.Field `cbor:"fields"`
	Created  time.Time     `cbor:"created"`
}

// Event is one recorded snapshot. Raw holds the backing bytes of each
// field, in the order the format declared them.
type Event struct {
	Seq uint64   `cbor:"seq"`
	Raw [][]byte `cbor:"raw"`
}

// Writer streams a header and events to w.
type Writer struct {
	enc *cbor.Encoder
	seq uint64
}

// NewWriter writes the header and returns a Writer for the events.
func NewWriter(w io.Writer, h Header) (*Writer, error) {
	enc := cbor.NewEncoder(w)
	if err := enc.Encode(h); err != nil {
		return nil, fmt.Errorf("write recording header: %w", err)
	}
	return &Writer{enc: enc}, nil
}

// Write snapshots the receive buffers of one event and appends it to the
// stream.
func (w *Writer) Write(data []*felib.Data) error {
	raw := make([][]byte, len(data))
	for i, d := range data {
		raw[i] = append([]byte(nil), d.Bytes()...)
	}
	ev := Event{Seq: w.seq, Raw: raw}
	if err := w.enc.Encode(ev); err != nil {
		return fmt.Errorf("write event %d: %w", ev.Seq, err)
	}
	w.seq++
	return nil
}

// Count reports how many events have been written.
func (w *Writer) Count() uint64 {
	return w.seq
}

// Reader plays back a recording.
type Reader struct {
	dec    *cbor.Decoder
	header Header
}

// NewReader reads the header and returns a Reader positioned on the first
// event.
func NewReader(r io.Reader) (*Reader, error) {
	dec := cbor.NewDecoder(r)
	var h Header
	if err := dec.Decode(&h); err != nil {
		return nil, fmt.Errorf("read recording header: %w", err)
	}
	return &Reader{dec: dec, header: h}, nil
}

// Header returns the recording header.
func (r *Reader) Header() Header {
	return r.header
}

// Next returns the next event, or io.EOF at the end of the stream. An
// event whose raw field count does not match the header is rejected.
func (r *Reader) Next() (Event, error) {
	var ev Event
	if err := r.dec.Decode(&ev); err != nil {
		if errors.Is(err, io.EOF) {
			return Event{}, io.EOF
		}
		return Event{}, fmt.Errorf("read event: %w", err)
	}
	if len(ev.Raw) != len(r.header.Fields) {
		return Event{}, fmt.Errorf("event %d has %d fields, header declares %d",
			ev.Seq, len(ev.Raw), len(r.header.Fields))
	}
	return ev, nil
}
