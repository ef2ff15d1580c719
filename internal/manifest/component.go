package manifest

import (
	"fmt"

	"github.com/alexisbeaulieu97/rnmanifest/internal/value"
	rnerrors "github.com/alexisbeaulieu97/rnmanifest/pkg/errors"
)

const (
	fieldDisplayName     = "displayName"
	fieldBackgroundColor = "backgroundColor"
)

// ComponentInfo is the read-only view of a component handed to a host.
type ComponentInfo interface {
	Name() string
	DisplayName() string
	BackgroundColor() string
}

// Component describes a JavaScript-registered UI root the host can mount.
// The name is the key used with AppRegistry.registerComponent.
type Component struct {
	name            string
	displayName     string
	backgroundColor string
}

var _ ComponentInfo = (*Component)(nil)

// NewComponent constructs a Component.
func NewComponent(name, displayName, backgroundColor string) *Component {
	return &Component{name: name, displayName: displayName, backgroundColor: backgroundColor}
}

// Name returns the registry name of the component.
func (c *Component) Name() string { return c.name }

// DisplayName returns the human readable title.
func (c *Component) DisplayName() string { return c.displayName }

// BackgroundColor returns the color literal shown behind the root view.
func (c *Component) BackgroundColor() string { return c.backgroundColor }

// ReadComponent reads a component description from a manifest node:
//
//	"RNTesterApp": {
//	    "displayName": "React-Native Tester",
//	    "backgroundColor": "#1E90FF"
//	}
//
// name is the member key and data its value.
func ReadComponent(name string, data *value.Value) (*Component, error) {
	return readComponent(name, data, name)
}

func readComponent(name string, data *value.Value, path string) (*Component, error) {
	if data.Kind() != value.KindObject {
		return nil, rnerrors.NewReadError(rnerrors.KindNotObject, path, data.Line(),
			fmt.Sprintf("component %q must be an object, got %s", name, data.Kind()))
	}

	displayName, err := readString(data, fieldDisplayName, path)
	if err != nil {
		return nil, err
	}

	backgroundColor, err := readString(data, fieldBackgroundColor, path)
	if err != nil {
		return nil, err
	}

	return NewComponent(name, displayName, backgroundColor), nil
}

func readString(obj *value.Value, field, path string) (string, error) {
	fieldPath := path + "." + field

	v, ok := obj.Get(field)
	if !ok {
		return "", rnerrors.NewReadError(rnerrors.KindMissingField, fieldPath, obj.Line(),
			fmt.Sprintf("missing required field %q", field))
	}

	s, ok := v.AsString()
	if !ok {
		return "", rnerrors.NewReadError(rnerrors.KindWrongKind, fieldPath, v.Line(),
			fmt.Sprintf("field %q must be a string, got %s", field, v.Kind()))
	}

	return s, nil
}
