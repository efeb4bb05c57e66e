// Package config applies declarative digitizer configurations. A config
// file lists board parameters, per-channel parameters and commands; Apply
// walks them in order against an open device, the same sequence the demo
// acquisition scripts perform by hand.
package config

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/go-daq/felib/pkg/felib"
)

// Param is a single parameter write. Path is relative to the device root
// for board parameters and relative to the channel node inside a channel
// block.
type Param struct {
	Path  string `yaml:"path"`
	Value string `yaml:"value"`
}

// Channel configures a range of channels with the same parameters. To
// address a single channel set From == To.
type Channel struct {
	From   int     `yaml:"from"`
	To     int     `yaml:"to"`
	Params []Param `yaml:"params"`
}

// Config is a full configuration document.
type Config struct {
	Params   []Param   `yaml:"params"`
	Channels []Channel `yaml:"channels"`
	Commands []string  `yaml:"commands"`
}

// Load reads and validates a configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(b)
}

// Parse decodes and validates a configuration document.
func Parse(b []byte) (*Config, error) {
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) validate() error {
	for i, p := range c.Params {
		if p.Path == "" {
			return fmt.Errorf("params[%d]: missing path", i)
		}
	}
	for i, ch := range c.Channels {
		if ch.From < 0 || ch.To < ch.From {
			return fmt.Errorf("channels[%d]: invalid range %d..%d", i, ch.From, ch.To)
		}
		for j, p := range ch.Params {
			if p.Path == "" {
				return fmt.Errorf("channels[%d].params[%d]: missing path", i, j)
			}
		}
	}
	for i, cmd := range c.Commands {
		if cmd == "" {
			return fmt.Errorf("commands[%d]: empty command", i)
		}
	}
	return nil
}

// Apply writes every parameter and sends every command in document order:
// board parameters first, then channel blocks, then commands.
func (c *Config) Apply(dev *felib.Device) error {
	for _, p := range c.Params {
		slog.Debug("set parameter", slog.String("path", p.Path), slog.String("value", p.Value))
		if err := dev.SetValueAt(p.Path, p.Value); err != nil {
			return fmt.Errorf("set %s: %w", p.Path, err)
		}
	}
	for _, ch := range c.Channels {
		for i := ch.From; i <= ch.To; i++ {
			node, err := dev.Channel(i)
			if err != nil {
				return fmt.Errorf("channel %d: %w", i, err)
			}
			for _, p := range ch.Params {
				slog.Debug("set channel parameter",
					slog.Int("channel", i), slog.String("path", p.Path), slog.String("value", p.Value))
				if err := node.SetValueAt(p.Path, p.Value); err != nil {
					return fmt.Errorf("channel %d: set %s: %w", i, p.Path, err)
				}
			}
		}
	}
	for _, cmd := range c.Commands {
		slog.Debug("send command", slog.String("command", cmd))
		if err := dev.Cmd(cmd); err != nil {
			return fmt.Errorf("command %s: %w", cmd, err)
		}
	}
	return nil
}
