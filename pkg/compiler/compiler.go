package compiler

import (
	"log/slog"

	"github.com/goliatone/go-amisschema/pkg/amis"
	"github.com/goliatone/go-amisschema/pkg/jsonschema"
)

// Compiler converts amis controls into JSON Schema fragments. A Compiler holds
// only its configuration and is safe for concurrent use.
type Compiler struct {
	rules        map[string]rule
	logger       *slog.Logger
	titlePolicy  TitlePolicy
	extraStrings []string
}

// New constructs a Compiler with the built-in rule table.
func New(options ...Option) *Compiler {
	c := &Compiler{
		logger: discardLogger(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	c.rules = defaultRules()
	for _, tag := range c.extraStrings {
		c.rules[tag] = rule{kind: rulePrimitive, primitive: jsonschema.TypeString}
	}
	return c
}

// Convert validates that value is an amis form and returns its document
// schema: the form title, the schema dialect, the object type and the form's
// properties and required list.
func (c *Compiler) Convert(value any) (*jsonschema.Schema, error) {
	node, ok := amis.AsNode(value)
	if !ok {
		return nil, newError(ErrInvalidRoot, nil, "", "only objects can be converted, got %s", amis.KindOf(value))
	}
	if tag := node.Type(); tag != amis.TypeForm {
		return nil, newError(ErrInvalidRoot, nil, tag, "root type must be %q, got %q", amis.TypeForm, tag)
	}

	body, err := c.CompileForm(node)
	if err != nil {
		return nil, err
	}

	title, _ := node.Title()
	return &jsonschema.Schema{
		Title:      applyTitlePolicy(c.titlePolicy, title),
		Schema:     jsonschema.Dialect,
		Type:       jsonschema.TypeObject,
		Properties: body.Properties,
		Required:   body.Required,
	}, nil
}

// CompileForm builds the object schema of a form or combo control from its
// controls. A control without controls yields an empty schema.
func (c *Compiler) CompileForm(node amis.Node) (*jsonschema.Schema, error) {
	return c.compileForm(node, nil)
}

// Compile returns the schema of a single control.
func (c *Compiler) Compile(node amis.Node) (*jsonschema.Schema, error) {
	return c.compile(node, nil)
}

// Flatten is the method form of the package level Flatten, logging through
// the compiler's logger.
func (c *Compiler) Flatten(nodes []amis.Node) ([]amis.Node, error) {
	return c.flatten(nodes, nil)
}

func (c *Compiler) compileForm(node amis.Node, path fieldPath) (*jsonschema.Schema, error) {
	controls, present, err := node.Children(amis.KeyControls)
	if err != nil {
		return nil, newError(ErrInvalidNode, path, node.Type(), "%s", err)
	}
	if !present {
		return &jsonschema.Schema{}, nil
	}

	flat, err := c.flatten(controls, path)
	if err != nil {
		return nil, err
	}

	out := jsonschema.NewObject()
	for idx, child := range flat {
		childPath := path
		if child.HasName() {
			childPath = path.field(child.Name())
		}

		// The control is typed before its name is checked, so an unknown
		// type is reported even when the name is missing too.
		fragment, err := c.compile(child, childPath)
		if err != nil {
			return nil, err
		}
		if !child.HasName() {
			return nil, newError(ErrMissingFieldName, path, child.Type(),
				"control %d (type %q) has no name", idx, child.Type())
		}

		name := child.Name()
		// Duplicate names overwrite; the last control wins.
		out.Properties[name] = fragment
		if child.Required() {
			out.Required = append(out.Required, name)
		}
	}
	return out, nil
}
