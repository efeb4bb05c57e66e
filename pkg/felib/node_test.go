package felib

import (
	"testing"

	"github.com/go-daq/felib/internal/capi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDevice(t *testing.T, api *capi.Mock) *Device {
	t.Helper()
	if api.OpenFn == nil {
		api.OpenFn = func(url string, handle *uint64) int {
			*handle = 42
			return 0
		}
	}
	dev, err := NewLib(api).Open("dig2://example")
	require.NoError(t, err)
	return dev
}

func TestAtResolvesAndCaches(t *testing.T) {
	var calls int
	api := &capi.Mock{
		GetHandleFn: func(handle uint64, path string, out *uint64) int {
			calls++
			assert.Equal(t, uint64(42), handle)
			assert.Equal(t, "/par/NUMCH", path)
			*out = 99
			return 0
		},
	}
	dev := openTestDevice(t, api)

	n, err := dev.At("/par/NUMCH")
	require.NoError(t, err)
	assert.Equal(t, uint64(99), n.Handle())

	// Second lookup comes from the device cache.
	n2, err := dev.Par("NUMCH")
	require.NoError(t, err)
	assert.Equal(t, uint64(99), n2.Handle())
	assert.Equal(t, 1, calls)

	dev.ClearHandleCache()
	_, err = dev.At("/par/NUMCH")
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestChildrenGrowsBuffer(t *testing.T) {
	const total = 100
	api := &capi.Mock{
		GetChildHandlesFn: func(handle uint64, path string, out []uint64) int {
			if len(out) < total {
				return total
			}
			for i := 0; i < total; i++ {
				out[i] = uint64(1000 + i)
			}
			return total
		},
	}
	dev := openTestDevice(t, api)

	children, err := dev.Children()
	require.NoError(t, err)
	require.Len(t, children, total)
	assert.Equal(t, uint64(1000), children[0].Handle())
	assert.Equal(t, uint64(1099), children[total-1].Handle())
}

func TestProperties(t *testing.T) {
	api := &capi.Mock{
		GetNodePropertiesFn: func(handle uint64, path string, name []byte, nodeType *int32) int {
			capi.PutString(name, "RECORDLENGTHT")
			*nodeType = int32(NodeParameter)
			return 0
		},
	}
	dev := openTestDevice(t, api)

	name, typ, err := dev.Properties("/par/RECORDLENGTHT")
	require.NoError(t, err)
	assert.Equal(t, "RECORDLENGTHT", name)
	assert.Equal(t, NodeParameter, typ)

	got, err := dev.Name()
	require.NoError(t, err)
	assert.Equal(t, "RECORDLENGTHT", got)
}

func TestValues(t *testing.T) {
	// Parameter paths resolve to handles, handles resolve to values, like
	// the node tree of a real board.
	paths := map[string]uint64{
		"/par/NUMCH":         1,
		"/par/ADC_SAMPLRATE": 2,
		"/par/EN_AUTODISARM": 3,
	}
	values := map[uint64]string{
		1: "64",
		2: "125.0",
		3: "True",
	}
	var set [][2]string
	api := &capi.Mock{
		GetHandleFn: func(handle uint64, path string, out *uint64) int {
			h, ok := paths[path]
			if !ok {
				return int(InvalidParam)
			}
			*out = h
			return 0
		},
		GetValueFn: func(handle uint64, path string, value []byte) int {
			return capi.PutString(value, values[handle])
		},
		SetValueFn: func(handle uint64, path, value string) int {
			set = append(set, [2]string{path, value})
			return 0
		},
	}
	dev := openTestDevice(t, api)

	n, err := dev.Par("NUMCH")
	require.NoError(t, err)
	v, err := n.Value()
	require.NoError(t, err)
	assert.Equal(t, "64", v)

	nch, err := n.IntValue()
	require.NoError(t, err)
	assert.Equal(t, int64(64), nch)

	n, err = dev.Par("ADC_SAMPLRATE")
	require.NoError(t, err)
	rate, err := n.FloatValue()
	require.NoError(t, err)
	assert.Equal(t, 125.0, rate)

	n, err = dev.Par("EN_AUTODISARM")
	require.NoError(t, err)
	on, err := n.BoolValue()
	require.NoError(t, err)
	assert.True(t, on)

	require.NoError(t, dev.SetValueAt("/par/RECORDLENGTHT", "4096"))
	assert.Equal(t, [][2]string{{"/par/RECORDLENGTHT", "4096"}}, set)
}

func TestCmd(t *testing.T) {
	var sent []string
	api := &capi.Mock{
		GetHandleFn: func(handle uint64, path string, out *uint64) int {
			*out = 7
			return 0
		},
		SendCommandFn: func(handle uint64, path string) int {
			assert.Equal(t, uint64(7), handle)
			sent = append(sent, path)
			return 0
		},
	}
	dev := openTestDevice(t, api)

	require.NoError(t, dev.Cmd("RESET"))
	assert.Equal(t, []string{""}, sent)
}

func TestUserRegisters(t *testing.T) {
	regs := map[uint32]uint32{}
	api := &capi.Mock{
		GetUserRegisterFn: func(handle uint64, address uint32, value *uint32) int {
			*value = regs[address]
			return 0
		},
		SetUserRegisterFn: func(handle uint64, address, value uint32) int {
			regs[address] = value
			return 0
		},
	}
	dev := openTestDevice(t, api)

	require.NoError(t, dev.SetUserRegister(0x1000, 0xdeadbeef))
	v, err := dev.UserRegister(0x1000)
	require.NoError(t, err)
	assert.Equal(t, uint32(0xdeadbeef), v)
}

func TestValueWithArg(t *testing.T) {
	api := &capi.Mock{
		GetValueFn: func(handle uint64, path string, value []byte) int {
			assert.Equal(t, "CH0", cString(value))
			return capi.PutString(value, "enabled")
		},
	}
	dev := openTestDevice(t, api)

	v, err := dev.ValueWithArg("/par/CHSTATUS", "CH0")
	require.NoError(t, err)
	assert.Equal(t, "enabled", v)
}

func TestNodeTypeString(t *testing.T) {
	tests := []struct {
		typ  NodeType
		want string
	}{
		{NodeUnknown, "Unknown"},
		{NodeParameter, "Parameter"},
		{NodeEndpoint, "Endpoint"},
		{NodeGroup, "Group"},
		{NodeType(99), "NodeType(99)"},
	}
	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("NodeType(%d).String() = %q, want %q", int32(tt.typ), got, tt.want)
		}
	}
}
