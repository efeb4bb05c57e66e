package felib

import (
	"encoding/json"
	"fmt"
	"runtime"
	"time"
	"unsafe"
)

// DataType names the scalar type of an endpoint data field, using the
// spellings understood by CAEN_FELib_SetReadDataFormat.
type DataType string

const (
	U8         DataType = "U8"
	U16        DataType = "U16"
	U32        DataType = "U32"
	U64        DataType = "U64"
	I8         DataType = "I8"
	I16        DataType = "I16"
	I32        DataType = "I32"
	I64        DataType = "I64"
	Char       DataType = "CHAR"
	Bool       DataType = "BOOL"
	SizeT      DataType = "SIZE_T"
	PtrDiffT   DataType = "PTRDIFF_T"
	Float      DataType = "FLOAT"
	Double     DataType = "DOUBLE"
	LongDouble DataType = "LONG DOUBLE"
)

// Size returns the element size in bytes on the current platform, or 0 for
// an unknown type.
func (t DataType) Size() int {
	switch t {
	case U8, I8, Char, Bool:
		return 1
	case U16, I16:
		return 2
	case U32, I32, Float:
		return 4
	case U64, I64, Double:
		return 8
	case SizeT, PtrDiffT:
		return int(unsafe.Sizeof(uintptr(0)))
	case LongDouble:
		// x87 long double is padded to 16 bytes on 64-bit SysV; MSVC
		// aliases it to double.
		if runtime.GOOS == "windows" {
			return 8
		}
		return 16
	}
	return 0
}

// Field describes one entry of an endpoint read-data format. Shape sizes
// the local receive buffer and must have Dim entries; the native library
// only consumes name, type and dim.
type Field struct {
	Name  string   `json:"name"`
	Type  DataType `json:"type"`
	Dim   int      `json:"dim,omitempty"`
	Shape []int    `json:"shape,omitempty"`
}

// Data is the receive buffer for one declared field. The native library
// writes into it in place on every ReadData call; it is allocated once and
// never reallocated, so views stay valid across reads.
type Data struct {
	Field Field

	buf  []byte
	rows []unsafe.Pointer
	arg  unsafe.Pointer
}

func newData(f Field) (*Data, error) {
	if len(f.Shape) != f.Dim {
		return nil, fmt.Errorf("field %s: shape has %d entries, dim is %d", f.Name, len(f.Shape), f.Dim)
	}
	if f.Dim < 0 || f.Dim > 2 {
		return nil, fmt.Errorf("field %s: dim %d not supported", f.Name, f.Dim)
	}
	elemSize := f.Type.Size()
	if elemSize == 0 {
		return nil, fmt.Errorf("field %s: unknown data type %q", f.Name, f.Type)
	}
	n := 1
	for _, s := range f.Shape {
		if s <= 0 {
			return nil, fmt.Errorf("field %s: invalid shape %v", f.Name, f.Shape)
		}
		n *= s
	}

	d := &Data{Field: f, buf: make([]byte, n*elemSize)}
	if f.Dim < 2 {
		d.arg = unsafe.Pointer(&d.buf[0])
		return d, nil
	}

	// The library expects two-dimensional fields as an array of row
	// pointers, not a contiguous block. Keep the block for cheap views
	// and hand out a row-pointer proxy.
	rowBytes := f.Shape[1] * elemSize
	d.rows = make([]unsafe.Pointer, f.Shape[0])
	for i := range d.rows {
		d.rows[i] = unsafe.Pointer(&d.buf[i*rowBytes])
	}
	d.arg = unsafe.Pointer(&d.rows[0])
	return d, nil
}

// Bytes exposes the raw backing buffer, rows concatenated in order.
func (d *Data) Bytes() []byte {
	return d.buf
}

// ScalarType constrains the Go element types that can view endpoint data.
type ScalarType interface {
	~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64 | ~uintptr | ~bool
}

// Scalar returns the value of a zero-dimensional field. It panics if T does
// not match the declared field layout.
func Scalar[T ScalarType](d *Data) T {
	checkView[T](d, 0)
	return *(*T)(unsafe.Pointer(&d.buf[0]))
}

// Slice returns a view over a one-dimensional field. The view aliases the
// receive buffer and reflects every subsequent ReadData call.
func Slice[T ScalarType](d *Data) []T {
	checkView[T](d, 1)
	return unsafe.Slice((*T)(unsafe.Pointer(&d.buf[0])), d.Field.Shape[0])
}

// Matrix returns per-row views over a two-dimensional field, aliasing the
// receive buffer like Slice.
func Matrix[T ScalarType](d *Data) [][]T {
	checkView[T](d, 2)
	out := make([][]T, d.Field.Shape[0])
	for i := range out {
		out[i] = unsafe.Slice((*T)(d.rows[i]), d.Field.Shape[1])
	}
	return out
}

func checkView[T ScalarType](d *Data, dim int) {
	if d.Field.Dim != dim {
		panic(fmt.Sprintf("felib: field %s has dim %d, not %d", d.Field.Name, d.Field.Dim, dim))
	}
	var zero T
	if int(unsafe.Sizeof(zero)) != d.Field.Type.Size() {
		panic(fmt.Sprintf("felib: field %s is %s (%d bytes), element type holds %d",
			d.Field.Name, d.Field.Type, d.Field.Type.Size(), unsafe.Sizeof(zero)))
	}
}

// SetReadDataFormat declares the event layout of an endpoint node and
// allocates one receive buffer per field. Buffers are reused across
// ReadData calls.
func (n Node) SetReadDataFormat(fields []Field) ([]*Data, error) {
	format, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("encode data format: %w", err)
	}
	if err := n.lib.check(n.lib.api.SetReadDataFormat(n.handle, string(format)), "CAEN_FELib_SetReadDataFormat"); err != nil {
		return nil, err
	}
	data := make([]*Data, len(fields))
	for i, f := range fields {
		if data[i], err = newData(f); err != nil {
			return nil, err
		}
	}
	return data, nil
}

// ReadData waits up to timeout for the next event on an endpoint node and
// fills the buffers declared by SetReadDataFormat. A negative timeout
// blocks indefinitely. Timeout and end-of-run conditions surface as
// ErrTimeout and ErrStop.
func (n Node) ReadData(timeout time.Duration, data []*Data) error {
	args := make([]unsafe.Pointer, len(data))
	for i, d := range data {
		args[i] = d.arg
	}
	return n.lib.check(n.lib.api.ReadData(n.handle, timeoutMs(timeout), args), "CAEN_FELib_ReadData")
}

// HasData waits up to timeout for data to become available without
// consuming it.
func (n Node) HasData(timeout time.Duration) error {
	return n.lib.check(n.lib.api.HasData(n.handle, timeoutMs(timeout)), "CAEN_FELib_HasData")
}
