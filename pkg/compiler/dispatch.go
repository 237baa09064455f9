package compiler

import (
	"github.com/goliatone/go-amisschema/pkg/amis"
	"github.com/goliatone/go-amisschema/pkg/jsonschema"
)

func (c *Compiler) compile(node amis.Node, path fieldPath) (*jsonschema.Schema, error) {
	tag := node.Type()
	r := c.rules[tag]
	c.logger.Debug("dispatch control", "path", path.String(), "type", tag, "rule", r.kind.String())

	switch r.kind {
	case ruleObject:
		return c.compileForm(node, path)
	case ruleContainer:
		return c.compileContainer(node, path)
	case ruleArray:
		return c.compileArray(node, path)
	case ruleCheckbox:
		return c.compileCheckbox(node, path)
	case rulePrimitive:
		return &jsonschema.Schema{Type: r.primitive}, nil
	case rulePending:
		return nil, newError(ErrUnhandledFieldType, path, tag, "type %q is not yet supported", tag)
	default:
		return nil, newError(ErrUnhandledFieldType, path, tag, "type %q is not handled", tag)
	}
}

func (c *Compiler) compileContainer(node amis.Node, path fieldPath) (*jsonschema.Schema, error) {
	raw, _ := node.Get(amis.KeyBody)
	if raw == nil {
		return nil, newError(ErrInvalidContainerBody, path, amis.TypeContainer, "container has no body")
	}
	body, ok := amis.AsNode(raw)
	if !ok {
		return nil, newError(ErrInvalidContainerBody, path, amis.TypeContainer,
			"container body must be a single control, got %s", amis.KindOf(raw))
	}
	return c.compile(body, path)
}

func (c *Compiler) compileArray(node amis.Node, path fieldPath) (*jsonschema.Schema, error) {
	raw, _ := node.Get(amis.KeyItems)
	switch amis.KindOf(raw) {
	case "null":
		return nil, newError(ErrMissingArrayItem, path, amis.TypeArray, "array item is not specified")
	case "array":
		return nil, newError(ErrUnsupportedArrayShape, path, amis.TypeArray, "array items list is not supported, declare a single item control")
	}

	item, ok := amis.AsNode(raw)
	if !ok {
		return nil, newError(ErrInvalidNode, path, amis.TypeArray, "array item must be an object, got %s", amis.KindOf(raw))
	}

	items, err := c.compile(item, path.item())
	if err != nil {
		return nil, err
	}
	return jsonschema.NewArray(items), nil
}

// compileCheckbox types a checkbox by its trueValue once both trueValue and
// falseValue are declared. Declared means present and not null, so falsy
// values count: trueValue 1 with falseValue 0 yields number, and "" yields
// string. With either value missing the checkbox submits a boolean.
func (c *Compiler) compileCheckbox(node amis.Node, path fieldPath) (*jsonschema.Schema, error) {
	if !node.Has(amis.KeyTrueValue) || !node.Has(amis.KeyFalseValue) {
		return jsonschema.NewBoolean(), nil
	}

	trueValue, _ := node.Get(amis.KeyTrueValue)
	switch kind := amis.KindOf(trueValue); kind {
	case "string":
		return jsonschema.NewString(), nil
	case "number":
		return jsonschema.NewNumber(), nil
	case "boolean":
		return jsonschema.NewBoolean(), nil
	default:
		return nil, newError(ErrUnsupportedCheckboxValueType, path, amis.TypeCheckbox,
			"unsupported checkbox value type: %s", kind)
	}
}
