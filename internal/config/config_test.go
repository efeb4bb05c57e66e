package config

import (
	"testing"

	"github.com/go-daq/felib/internal/capi"
	"github.com/go-daq/felib/pkg/felib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scopeConfig = `
params:
  - path: /par/RECORDLENGTHT
    value: "4096"
  - path: /par/ACQTRIGGERSOURCE
    value: SWTRG
channels:
  - from: 0
    to: 1
    params:
      - path: /par/DCOFFSET
        value: "50"
commands:
  - RESET
`

func TestParse(t *testing.T) {
	c, err := Parse([]byte(scopeConfig))
	require.NoError(t, err)
	require.Len(t, c.Params, 2)
	assert.Equal(t, "/par/RECORDLENGTHT", c.Params[0].Path)
	assert.Equal(t, "4096", c.Params[0].Value)
	require.Len(t, c.Channels, 1)
	assert.Equal(t, 0, c.Channels[0].From)
	assert.Equal(t, 1, c.Channels[0].To)
	assert.Equal(t, []string{"RESET"}, c.Commands)
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"missing param path", "params:\n  - value: \"1\"\n"},
		{"bad channel range", "channels:\n  - from: 3\n    to: 1\n"},
		{"empty command", "commands:\n  - \"\"\n"},
		{"not yaml", ":\n-"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestApplyOrder(t *testing.T) {
	handles := map[string]uint64{
		"/ch/0":      10,
		"/ch/1":      11,
		"/cmd/RESET": 20,
	}
	var sets []string
	var cmds []uint64
	api := &capi.Mock{
		GetHandleFn: func(handle uint64, path string, out *uint64) int {
			h, ok := handles[path]
			if !ok {
				return int(felib.InvalidParam)
			}
			*out = h
			return 0
		},
		SetValueFn: func(handle uint64, path, value string) int {
			sets = append(sets, path+"="+value)
			return 0
		},
		SendCommandFn: func(handle uint64, path string) int {
			cmds = append(cmds, handle)
			return 0
		},
	}
	dev, err := felib.NewLib(api).Open("dig2://example")
	require.NoError(t, err)

	c, err := Parse([]byte(scopeConfig))
	require.NoError(t, err)
	require.NoError(t, c.Apply(dev))

	assert.Equal(t, []string{
		"/par/RECORDLENGTHT=4096",
		"/par/ACQTRIGGERSOURCE=SWTRG",
		"/par/DCOFFSET=50",
		"/par/DCOFFSET=50",
	}, sets)
	assert.Equal(t, []uint64{20}, cmds)
}

func TestApplyStopsOnError(t *testing.T) {
	api := &capi.Mock{
		SetValueFn: func(handle uint64, path, value string) int {
			return int(felib.InvalidParam)
		},
	}
	dev, err := felib.NewLib(api).Open("dig2://example")
	require.NoError(t, err)

	c, err := Parse([]byte(scopeConfig))
	require.NoError(t, err)
	err = c.Apply(dev)
	require.Error(t, err)
	assert.ErrorContains(t, err, "/par/RECORDLENGTHT")
}
