package felib

import (
	"testing"
	"time"
	"unsafe"

	"github.com/go-daq/felib/internal/capi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataTypeSize(t *testing.T) {
	tests := []struct {
		typ  DataType
		want int
	}{
		{U8, 1},
		{I8, 1},
		{Char, 1},
		{Bool, 1},
		{U16, 2},
		{I16, 2},
		{U32, 4},
		{Float, 4},
		{U64, 8},
		{Double, 8},
		{SizeT, int(unsafe.Sizeof(uintptr(0)))},
		{DataType("NOPE"), 0},
	}
	for _, tt := range tests {
		if got := tt.typ.Size(); got != tt.want {
			t.Errorf("%s.Size() = %d, want %d", tt.typ, got, tt.want)
		}
	}
}

func TestNewDataValidation(t *testing.T) {
	tests := []struct {
		name  string
		field Field
	}{
		{"shape dim mismatch", Field{Name: "X", Type: U16, Dim: 2, Shape: []int{4}}},
		{"dim too high", Field{Name: "X", Type: U16, Dim: 3, Shape: []int{1, 2, 3}}},
		{"unknown type", Field{Name: "X", Type: "U128"}},
		{"zero shape entry", Field{Name: "X", Type: U16, Dim: 1, Shape: []int{0}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newData(tt.field)
			assert.Error(t, err)
		})
	}
}

func TestDataLayouts(t *testing.T) {
	scalar, err := newData(Field{Name: "EVENT_SIZE", Type: U64})
	require.NoError(t, err)
	assert.Len(t, scalar.Bytes(), 8)
	assert.Equal(t, unsafe.Pointer(&scalar.buf[0]), scalar.arg)

	vec, err := newData(Field{Name: "WAVEFORM_SIZE", Type: U64, Dim: 1, Shape: []int{4}})
	require.NoError(t, err)
	assert.Len(t, vec.Bytes(), 32)

	mat, err := newData(Field{Name: "WAVEFORM", Type: U16, Dim: 2, Shape: []int{2, 3}})
	require.NoError(t, err)
	assert.Len(t, mat.Bytes(), 12)
	require.Len(t, mat.rows, 2)
	// Row pointers step through the contiguous block.
	assert.Equal(t, unsafe.Pointer(&mat.buf[0]), mat.rows[0])
	assert.Equal(t, unsafe.Pointer(&mat.buf[6]), mat.rows[1])
	assert.Equal(t, unsafe.Pointer(&mat.rows[0]), mat.arg)
}

func TestViewsAliasBuffer(t *testing.T) {
	d, err := newData(Field{Name: "WAVEFORM", Type: U16, Dim: 2, Shape: []int{2, 3}})
	require.NoError(t, err)

	m := Matrix[uint16](d)
	m[1][2] = 0xbeef
	assert.Equal(t, uint16(0xbeef), Matrix[uint16](d)[1][2])

	v, err := newData(Field{Name: "WAVEFORM_SIZE", Type: U64, Dim: 1, Shape: []int{4}})
	require.NoError(t, err)
	Slice[uint64](v)[3] = 77
	assert.Equal(t, uint64(77), Slice[uint64](v)[3])
}

func TestViewChecks(t *testing.T) {
	d, err := newData(Field{Name: "TIMESTAMP", Type: U64})
	require.NoError(t, err)

	assert.Panics(t, func() { Slice[uint64](d) })   // wrong dim
	assert.Panics(t, func() { Scalar[uint16](d) })  // wrong element size
	assert.NotPanics(t, func() { Scalar[uint64](d) })
}

func TestSetReadDataFormat(t *testing.T) {
	var format string
	api := &capi.Mock{
		SetReadDataFormatFn: func(handle uint64, f string) int {
			format = f
			return 0
		},
	}
	dev := openTestDevice(t, api)

	data, err := dev.SetReadDataFormat([]Field{
		{Name: "EVENT_SIZE", Type: SizeT},
		{Name: "TIMESTAMP", Type: U64},
		{Name: "WAVEFORM", Type: U16, Dim: 2, Shape: []int{2, 4}},
	})
	require.NoError(t, err)
	require.Len(t, data, 3)

	assert.JSONEq(t, `[
		{"name":"EVENT_SIZE","type":"SIZE_T"},
		{"name":"TIMESTAMP","type":"U64"},
		{"name":"WAVEFORM","type":"U16","dim":2,"shape":[2,4]}
	]`, format)
}

func TestReadDataFillsBuffers(t *testing.T) {
	api := &capi.Mock{
		SetReadDataFormatFn: func(handle uint64, f string) int { return 0 },
		ReadDataFn: func(handle uint64, timeoutMs int, args []unsafe.Pointer) int {
			assert.Equal(t, 100, timeoutMs)
			require.Len(t, args, 2)

			// Scalar field: args[0] points at the element.
			*(*uint64)(args[0]) = 123456

			// 2D field: args[1] points at the row-pointer array.
			rows := unsafe.Slice((*unsafe.Pointer)(args[1]), 2)
			row0 := unsafe.Slice((*uint16)(rows[0]), 3)
			row1 := unsafe.Slice((*uint16)(rows[1]), 3)
			copy(row0, []uint16{1, 2, 3})
			copy(row1, []uint16{4, 5, 6})
			return 0
		},
	}
	dev := openTestDevice(t, api)

	data, err := dev.SetReadDataFormat([]Field{
		{Name: "TIMESTAMP", Type: U64},
		{Name: "WAVEFORM", Type: U16, Dim: 2, Shape: []int{2, 3}},
	})
	require.NoError(t, err)

	require.NoError(t, dev.ReadData(100*time.Millisecond, data))
	assert.Equal(t, uint64(123456), Scalar[uint64](data[0]))
	wave := Matrix[uint16](data[1])
	assert.Equal(t, []uint16{1, 2, 3}, wave[0])
	assert.Equal(t, []uint16{4, 5, 6}, wave[1])
}

func TestReadDataTimeouts(t *testing.T) {
	var got []int
	api := &capi.Mock{
		ReadDataFn: func(handle uint64, timeoutMs int, args []unsafe.Pointer) int {
			got = append(got, timeoutMs)
			return int(Timeout)
		},
		HasDataFn: func(handle uint64, timeoutMs int) int {
			got = append(got, timeoutMs)
			return 0
		},
	}
	dev := openTestDevice(t, api)

	err := dev.ReadData(-1, nil)
	assert.ErrorIs(t, err, ErrTimeout)
	require.NoError(t, dev.HasData(2*time.Second))
	assert.Equal(t, []int{-1, 2000}, got)
}
