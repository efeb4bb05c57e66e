package felib

import (
	"fmt"
	"sync"
)

// Device is an open digitizer session. It embeds the root Node of the
// device tree and owns the handle returned by CAEN_FELib_Open.
type Device struct {
	Node

	mu      sync.RWMutex
	handles map[handleKey]uint64
}

type handleKey struct {
	parent uint64
	path   string
}

// Open connects to the device at url (e.g. "dig2://192.0.2.1") through the
// default library instance.
func Open(url string) (*Device, error) {
	l, err := Default()
	if err != nil {
		return nil, err
	}
	return l.Open(url)
}

// Open connects to the device at url.
func (l *Lib) Open(url string) (*Device, error) {
	var h uint64
	if err := l.check(l.api.Open(url, &h), "CAEN_FELib_Open"); err != nil {
		return nil, err
	}
	d := &Device{handles: make(map[handleKey]uint64)}
	d.Node = Node{lib: l, handle: h, dev: d}
	return d, nil
}

// Close releases the device handle. Nodes obtained from the device are
// invalid afterwards.
func (d *Device) Close() error {
	return d.lib.check(d.lib.api.Close(d.handle), "CAEN_FELib_Close")
}

// Par returns the board parameter node under /par.
func (d *Device) Par(name string) (Node, error) {
	return d.At("/par/" + name)
}

// Cmd executes the board command under /cmd.
func (d *Device) Cmd(name string) error {
	n, err := d.At("/cmd/" + name)
	if err != nil {
		return err
	}
	return n.Exec()
}

// Channel returns the channel node under /ch.
func (d *Device) Channel(index int) (Node, error) {
	return d.At(fmt.Sprintf("/ch/%d", index))
}

// Endpoint returns the data endpoint node under /endpoint.
func (d *Device) Endpoint(name string) (Node, error) {
	return d.At("/endpoint/" + name)
}

// ClearHandleCache drops the memoized path resolutions.
func (d *Device) ClearHandleCache() {
	d.mu.Lock()
	defer d.mu.Unlock()
	clear(d.handles)
}

func (d *Device) cachedHandle(parent uint64, path string) (uint64, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	h, ok := d.handles[handleKey{parent, path}]
	return h, ok
}

func (d *Device) storeHandle(parent uint64, path string, h uint64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handles[handleKey{parent, path}] = h
}
