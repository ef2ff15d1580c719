package manifest

import (
	"fmt"
	"os"
	"regexp"

	"github.com/alexisbeaulieu97/rnmanifest/internal/value"
	rnerrors "github.com/alexisbeaulieu97/rnmanifest/pkg/errors"
)

const componentsKey = "components"

var lineRegex = regexp.MustCompile(`line (\d+)`)

// Manifest is a parsed application manifest.
type Manifest struct {
	components *Collection
}

// Components returns the launchable components declared by the manifest.
func (m *Manifest) Components() *Collection {
	if m == nil {
		return nil
	}
	return m.components
}

// Load reads a manifest file from disk and parses it.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, rnerrors.NewParseError(path, 0, err)
	}

	m, err := parse(data, path)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// Parse parses manifest text. JSON is expected; YAML is accepted as well.
func Parse(data []byte) (*Manifest, error) {
	return parse(data, "")
}

func parse(data []byte, path string) (*Manifest, error) {
	root, err := value.Parse(data)
	if err != nil {
		return nil, rnerrors.NewParseError(path, extractLine(err), err)
	}

	return FromValue(root)
}

// FromValue reads a manifest from an already parsed document. A null document
// is treated as a manifest without components.
func FromValue(root *value.Value) (*Manifest, error) {
	if root.IsNull() {
		return &Manifest{components: NewCollection(nil)}, nil
	}

	if root.Kind() != value.KindObject {
		return nil, rnerrors.NewReadError(rnerrors.KindNotObject, "", root.Line(),
			fmt.Sprintf("manifest must be an object, got %s", root.Kind()))
	}

	node, _ := root.Get(componentsKey)
	components, err := ReadCollection(node)
	if err != nil {
		return nil, err
	}

	return &Manifest{components: components}, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := lineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}

	return line
}
