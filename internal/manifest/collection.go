package manifest

import (
	"errors"
	"fmt"

	"github.com/alexisbeaulieu97/rnmanifest/internal/value"
	rnerrors "github.com/alexisbeaulieu97/rnmanifest/pkg/errors"
)

// ErrIndexOutOfRange is returned by Collection.Component for indexes outside [0, Count).
var ErrIndexOutOfRange = errors.New("component index out of range")

// ComponentCollection is the read-only view of a collection handed to a host.
type ComponentCollection interface {
	Count() int
	Component(index int) (*Component, error)
	FindComponent(name string) (*Component, bool)
}

// Collection is an ordered, immutable list of components.
// A nil *Collection behaves as an empty one.
type Collection struct {
	components []*Component
}

var _ ComponentCollection = (*Collection)(nil)

// NewCollection constructs a Collection holding components in the given order.
func NewCollection(components []*Component) *Collection {
	return &Collection{components: append([]*Component(nil), components...)}
}

// Count returns the number of components.
func (c *Collection) Count() int {
	if c == nil {
		return 0
	}
	return len(c.components)
}

// Component returns the component at index.
func (c *Collection) Component(index int) (*Component, error) {
	if index < 0 || index >= c.Count() {
		return nil, fmt.Errorf("%w: %d (count %d)", ErrIndexOutOfRange, index, c.Count())
	}
	return c.components[index], nil
}

// FindComponent returns the first component whose name matches.
// Names are not required to be unique; later duplicates are unreachable here.
func (c *Collection) FindComponent(name string) (*Component, bool) {
	if c == nil {
		return nil, false
	}
	for _, comp := range c.components {
		if comp.name == name {
			return comp, true
		}
	}
	return nil, false
}

// Components returns a copy of the components in order.
func (c *Collection) Components() []*Component {
	if c == nil {
		return nil
	}
	return append([]*Component(nil), c.components...)
}

// Names returns the component names in order.
func (c *Collection) Names() []string {
	names := make([]string, 0, c.Count())
	for _, comp := range c.Components() {
		names = append(names, comp.name)
	}
	return names
}

// ReadCollection reads the "components" array of a manifest:
//
//	"components": [
//	    { "RNTesterApp": { "displayName": "...", "backgroundColor": "..." } },
//	    ...
//	]
//
// A nil or null node yields an empty collection. Every member of every array
// element is read as one component, in document order. The first invalid
// entry aborts the read.
func ReadCollection(node *value.Value) (*Collection, error) {
	if node.IsNull() {
		return NewCollection(nil), nil
	}

	if node.Kind() != value.KindArray {
		return nil, rnerrors.NewReadError(rnerrors.KindNotArray, componentsKey, node.Line(),
			fmt.Sprintf("%q must be an array, got %s", componentsKey, node.Kind()))
	}

	var components []*Component
	for i, entry := range node.Items() {
		entryPath := fmt.Sprintf("%s[%d]", componentsKey, i)
		if entry.Kind() != value.KindObject {
			return nil, rnerrors.NewReadError(rnerrors.KindNotObject, entryPath, entry.Line(),
				fmt.Sprintf("entry must be an object, got %s", entry.Kind()))
		}

		for _, member := range entry.Members() {
			comp, err := readComponent(member.Key, member.Value, entryPath+"."+member.Key)
			if err != nil {
				return nil, err
			}
			components = append(components, comp)
		}
	}

	return &Collection{components: components}, nil
}
