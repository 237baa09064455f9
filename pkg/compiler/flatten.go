package compiler

import (
	"github.com/goliatone/go-amisschema/pkg/amis"
)

// Flatten returns a new sequence where every layout wrapper is replaced by its
// children, in place, at any nesting depth. The input slice is not modified.
func Flatten(nodes []amis.Node) ([]amis.Node, error) {
	return New().flatten(nodes, nil)
}

func (c *Compiler) flatten(nodes []amis.Node, path fieldPath) ([]amis.Node, error) {
	out := make([]amis.Node, 0, len(nodes))
	for _, node := range nodes {
		tag := node.Type()
		key, wrapper := amis.WrapperChildrenKey(tag)
		if !wrapper {
			out = append(out, node)
			continue
		}

		children, _, err := node.Children(key)
		if err != nil {
			return nil, newError(ErrInvalidNode, path, tag, "%s %s", tag, err)
		}
		inlined, err := c.flatten(children, path)
		if err != nil {
			return nil, err
		}
		c.logger.Debug("flattened layout wrapper", "path", path.String(), "type", tag, "children", len(inlined))
		out = append(out, inlined...)
	}
	return out, nil
}
