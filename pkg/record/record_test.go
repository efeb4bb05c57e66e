package record

import (
	"bytes"
	"io"
	"testing"
	"time"
	"unsafe"

	"github.com/go-daq/felib/internal/capi"
	"github.com/go-daq/felib/pkg/felib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testData(t *testing.T) []*felib.Data {
	t.Helper()
	dev, err := felib.NewLib(&capi.Mock{}).Open("dig2://example")
	require.NoError(t, err)
	data, err := dev.SetReadDataFormat([]felib.Field{
		{Name: "TIMESTAMP", Type: felib.U64},
		{Name: "WAVEFORM", Type: felib.U16, Dim: 1, Shape: []int{4}},
	})
	require.NoError(t, err)
	return data
}

func TestRoundTrip(t *testing.T) {
	data := testData(t)
	fields := []felib.Field{data[0].Field, data[1].Field}

	var buf bytes.Buffer
	w, err := NewWriter(&buf, Header{Endpoint: "scope", Fields: fields, Created: time.Unix(1700000000, 0).UTC()})
	require.NoError(t, err)

	// Two events through the same reused buffers.
	felib.Slice[uint16](data[1])[0] = 11
	require.NoError(t, w.Write(data))
	felib.Slice[uint16](data[1])[0] = 22
	require.NoError(t, w.Write(data))
	assert.Equal(t, uint64(2), w.Count())

	r, err := NewReader(&buf)
	require.NoError(t, err)
	assert.Equal(t, "scope", r.Header().Endpoint)
	require.Len(t, r.Header().Fields, 2)
	assert.Equal(t, felib.U16, r.Header().Fields[1].Type)

	ev, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, uint64(0), ev.Seq)
	assert.Equal(t, uint16(11), *(*uint16)(unsafe.Pointer(&ev.Raw[1][0])))

	ev, err = r.Next()
	require.NoError(t, err)
	assert.Equal(t, uint64(1), ev.Seq)
	assert.Equal(t, uint16(22), *(*uint16)(unsafe.Pointer(&ev.Raw[1][0])))

	_, err = r.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestWriteSnapshotsBuffers(t *testing.T) {
	data := testData(t)

	var buf bytes.Buffer
	w, err := NewWriter(&buf, Header{Endpoint: "scope", Fields: []felib.Field{data[0].Field, data[1].Field}})
	require.NoError(t, err)

	felib.Slice[uint16](data[1])[2] = 5
	require.NoError(t, w.Write(data))
	// Mutating the live buffer after the write must not change the record.
	felib.Slice[uint16](data[1])[2] = 9

	r, err := NewReader(&buf)
	require.NoError(t, err)
	ev, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, uint16(5), *(*uint16)(unsafe.Pointer(&ev.Raw[1][4])))
}

func TestNextRejectsFieldMismatch(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf, Header{Endpoint: "scope", Fields: []felib.Field{{Name: "A", Type: felib.U64}}})
	require.NoError(t, err)

	data := testData(t) // two fields, header declares one
	require.NoError(t, w.Write(data))

	r, err := NewReader(&buf)
	require.NoError(t, err)
	_, err = r.Next()
	assert.Error(t, err)
}
