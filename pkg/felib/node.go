package felib

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// NodeType mirrors CAEN_FELib_NodeType_t.
type NodeType int32

const (
	NodeUnknown   NodeType = -1
	NodeParameter NodeType = 0
	NodeCommand   NodeType = 1
	NodeFeature   NodeType = 2
	NodeAttribute NodeType = 3
	NodeEndpoint  NodeType = 4
	NodeChannel   NodeType = 5
	NodeDigitizer NodeType = 6
	NodeFolder    NodeType = 7
	NodeLVDS      NodeType = 8
	NodeVGA       NodeType = 9
	NodeHVChannel NodeType = 10
	NodeMonOut    NodeType = 11
	NodeVTrace    NodeType = 12
	NodeGroup     NodeType = 13
)

var nodeTypeNames = map[NodeType]string{
	NodeUnknown:   "Unknown",
	NodeParameter: "Parameter",
	NodeCommand:   "Command",
	NodeFeature:   "Feature",
	NodeAttribute: "Attribute",
	NodeEndpoint:  "Endpoint",
	NodeChannel:   "Channel",
	NodeDigitizer: "Digitizer",
	NodeFolder:    "Folder",
	NodeLVDS:      "LVDS",
	NodeVGA:       "VGA",
	NodeHVChannel: "HVChannel",
	NodeMonOut:    "MonOut",
	NodeVTrace:    "VTrace",
	NodeGroup:     "Group",
}

func (t NodeType) String() string {
	if s, ok := nodeTypeNames[t]; ok {
		return s
	}
	return fmt.Sprintf("NodeType(%d)", int32(t))
}

// Node addresses one element of a device's configuration tree through its
// native handle. Nodes are cheap values; all state lives in the library.
type Node struct {
	lib    *Lib
	handle uint64
	dev    *Device
}

// Handle exposes the raw native handle.
func (n Node) Handle() uint64 {
	return n.handle
}

// At resolves the node at path relative to n. Resolutions are memoized on
// the owning device, since a handle stays valid for the whole session and
// parameter paths are looked up over and over in acquisition loops.
func (n Node) At(path string) (Node, error) {
	if n.dev != nil {
		if h, ok := n.dev.cachedHandle(n.handle, path); ok {
			return Node{lib: n.lib, handle: h, dev: n.dev}, nil
		}
	}
	var h uint64
	if err := n.lib.check(n.lib.api.GetHandle(n.handle, path, &h), "CAEN_FELib_GetHandle"); err != nil {
		return Node{}, err
	}
	if n.dev != nil {
		n.dev.storeHandle(n.handle, path, h)
	}
	return Node{lib: n.lib, handle: h, dev: n.dev}, nil
}

// Parent returns the parent node.
func (n Node) Parent() (Node, error) {
	var h uint64
	if err := n.lib.check(n.lib.api.GetParentHandle(n.handle, "", &h), "CAEN_FELib_GetParentHandle"); err != nil {
		return Node{}, err
	}
	return Node{lib: n.lib, handle: h, dev: n.dev}, nil
}

// Children lists the direct child nodes.
func (n Node) Children() ([]Node, error) {
	size := initialChildren
	for {
		out := make([]uint64, size)
		res := n.lib.api.GetChildHandles(n.handle, "", out)
		if err := n.lib.check(res, "CAEN_FELib_GetChildHandles"); err != nil {
			return nil, err
		}
		if res <= size {
			nodes := make([]Node, res)
			for i, h := range out[:res] {
				nodes[i] = Node{lib: n.lib, handle: h, dev: n.dev}
			}
			return nodes, nil
		}
		size = res
	}
}

// Path returns the absolute path of the node.
func (n Node) Path() (string, error) {
	buf := make([]byte, 256)
	if err := n.lib.check(n.lib.api.GetPath(n.handle, buf), "CAEN_FELib_GetPath"); err != nil {
		return "", err
	}
	return cString(buf), nil
}

// Properties returns the name and type of the node at path relative to n.
// An empty path reads n itself.
func (n Node) Properties(path string) (string, NodeType, error) {
	name := make([]byte, 32)
	var typ int32
	if err := n.lib.check(n.lib.api.GetNodeProperties(n.handle, path, name, &typ), "CAEN_FELib_GetNodeProperties"); err != nil {
		return "", NodeUnknown, err
	}
	return cString(name), NodeType(typ), nil
}

// Name returns the node name.
func (n Node) Name() (string, error) {
	name, _, err := n.Properties("")
	return name, err
}

// Type returns the node type.
func (n Node) Type() (NodeType, error) {
	_, typ, err := n.Properties("")
	return typ, err
}

// Value reads the string value of the node.
func (n Node) Value() (string, error) {
	return n.ValueAt("")
}

// ValueAt reads the string value of the node at path relative to n.
func (n Node) ValueAt(path string) (string, error) {
	buf := make([]byte, 256)
	if err := n.lib.check(n.lib.api.GetValue(n.handle, path, buf), "CAEN_FELib_GetValue"); err != nil {
		return "", err
	}
	return cString(buf), nil
}

// ValueWithArg reads a value whose getter takes an input argument passed
// through the in/out value buffer.
func (n Node) ValueWithArg(path, arg string) (string, error) {
	buf := make([]byte, 256)
	copy(buf, arg)
	if err := n.lib.check(n.lib.api.GetValue(n.handle, path, buf), "CAEN_FELib_GetValue"); err != nil {
		return "", err
	}
	return cString(buf), nil
}

// SetValue writes the string value of the node.
func (n Node) SetValue(value string) error {
	return n.SetValueAt("", value)
}

// SetValueAt writes the string value of the node at path relative to n.
func (n Node) SetValueAt(path, value string) error {
	return n.lib.check(n.lib.api.SetValue(n.handle, path, value), "CAEN_FELib_SetValue")
}

// IntValue reads the node value as a base-10 integer.
func (n Node) IntValue() (int64, error) {
	v, err := n.Value()
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(strings.TrimSpace(v), 10, 64)
}

// FloatValue reads the node value as a float.
func (n Node) FloatValue() (float64, error) {
	v, err := n.Value()
	if err != nil {
		return 0, err
	}
	return strconv.ParseFloat(strings.TrimSpace(v), 64)
}

// BoolValue reads the node value as a boolean. The library spells booleans
// "True" and "False".
func (n Node) BoolValue() (bool, error) {
	v, err := n.Value()
	if err != nil {
		return false, err
	}
	switch {
	case strings.EqualFold(strings.TrimSpace(v), "true"):
		return true, nil
	case strings.EqualFold(strings.TrimSpace(v), "false"):
		return false, nil
	}
	return false, fmt.Errorf("not a boolean value: %q", v)
}

// UserRegister reads a user register of the custom firmware region.
func (n Node) UserRegister(address uint32) (uint32, error) {
	var v uint32
	if err := n.lib.check(n.lib.api.GetUserRegister(n.handle, address, &v), "CAEN_FELib_GetUserRegister"); err != nil {
		return 0, err
	}
	return v, nil
}

// SetUserRegister writes a user register of the custom firmware region.
func (n Node) SetUserRegister(address, value uint32) error {
	return n.lib.check(n.lib.api.SetUserRegister(n.handle, address, value), "CAEN_FELib_SetUserRegister")
}

// SendCommand executes the command node at path relative to n.
func (n Node) SendCommand(path string) error {
	return n.lib.check(n.lib.api.SendCommand(n.handle, path), "CAEN_FELib_SendCommand")
}

// Exec executes this command node.
func (n Node) Exec() error {
	return n.SendCommand("")
}

// DeviceTree returns the JSON representation of the tree rooted at n.
func (n Node) DeviceTree() (json.RawMessage, error) {
	s, err := n.lib.growingString(initialTreeSize, "CAEN_FELib_GetDeviceTree", func(buf []byte) int {
		return n.lib.api.GetDeviceTree(n.handle, buf)
	})
	if err != nil {
		return nil, err
	}
	return json.RawMessage(s), nil
}
