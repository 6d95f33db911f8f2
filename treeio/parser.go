package treeio

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/lae-eval/lae/compute"
)

// ParseFile reads a tree description from path and builds the
// corresponding compute.Node tree.
func ParseFile(path string) (*compute.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("treeio: ParseFile: reading %s: %w", path, err)
	}

	var raw nodeJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("treeio: ParseFile: parsing %s: %w", path, err)
	}

	return build(raw)
}

func build(raw nodeJSON) (*compute.Node, error) {
	switch raw.Type {
	case typeLeaf:
		if raw.Matrix == nil {
			return nil, fmt.Errorf("treeio: build: leaf node missing \"matrix\"")
		}

		return compute.NewLeaf(raw.Matrix)

	case typeAdd, typeMultiply, typeNegate, typeTranspose:
		kind, err := kindOf(raw.Type)
		if err != nil {
			return nil, err
		}

		children := make([]*compute.Node, len(raw.Children))
		for i, c := range raw.Children {
			child, err := build(c)
			if err != nil {
				return nil, err
			}
			children[i] = child
		}

		return compute.NewOperator(kind, children...)

	default:
		return nil, fmt.Errorf("treeio: build: unknown node type %q", raw.Type)
	}
}

func kindOf(typ string) (compute.Kind, error) {
	switch typ {
	case typeAdd:
		return compute.Add, nil
	case typeMultiply:
		return compute.Multiply, nil
	case typeNegate:
		return compute.Negate, nil
	case typeTranspose:
		return compute.Transpose, nil
	default:
		return 0, fmt.Errorf("treeio: kindOf: unknown node type %q", typ)
	}
}
