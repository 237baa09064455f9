// Package validation checks amis form documents for conversion problems and
// reports them as structured issues, suited to editor previews that display
// feedback next to the offending field instead of failing outright.
package validation

import (
	"context"
	"errors"
	"strings"

	"github.com/goliatone/go-amisschema/pkg/compiler"
	"github.com/goliatone/go-amisschema/pkg/orchestrator"
	"github.com/goliatone/go-amisschema/pkg/renderers/openapi"
	"github.com/goliatone/go-amisschema/pkg/schema"
)

// SchemaIssue describes one conversion problem.
type SchemaIssue struct {
	// Path is a JSON pointer into the output schema, e.g.
	// "/properties/contacts/items/properties/email".
	Path string `json:"path,omitempty"`
	// Field is the dotted field path with "[]" for array elements, e.g.
	// "contacts[].email".
	Field string `json:"field,omitempty"`
	// Type is the control type tag that failed.
	Type string `json:"type,omitempty"`
	// Kind names the error kind, e.g. "unhandled field type".
	Kind    string `json:"kind,omitempty"`
	Message string `json:"message"`
}

// SchemaValidationResult captures validation outcomes for builder previews.
type SchemaValidationResult struct {
	Valid  bool          `json:"valid"`
	Issues []SchemaIssue `json:"issues,omitempty"`
}

// FormValidationOptions configures validation behaviour.
type FormValidationOptions struct {
	CompilerOptions []compiler.Option
	// SkipOpenAPICheck disables the kin-openapi pass over the output.
	SkipOpenAPICheck bool
}

// ValidateForm converts raw (JSON or YAML) and reports the first failure as an
// issue. Conversion stops at the first failing control, so at most one issue
// comes from the compiler.
func ValidateForm(ctx context.Context, src schema.Source, raw []byte, opts FormValidationOptions) SchemaValidationResult {
	result := SchemaValidationResult{Valid: true}
	if src == nil {
		src = schema.SourceFromFS("form.json")
	}

	doc, err := schema.NewDocument(src, raw)
	if err != nil {
		return invalid(issueFromError(err))
	}

	gen := orchestrator.New(orchestrator.WithCompiler(compiler.New(opts.CompilerOptions...)))
	compiled, err := gen.Compile(ctx, orchestrator.Request{Document: &doc})
	if err != nil {
		return invalid(issueFromError(err))
	}

	if !opts.SkipOpenAPICheck {
		if err := openapi.Validate(ctx, compiled); err != nil {
			return invalid(issueFromError(err))
		}
	}
	return result
}

func invalid(issue SchemaIssue) SchemaValidationResult {
	return SchemaValidationResult{Valid: false, Issues: []SchemaIssue{issue}}
}

func issueFromError(err error) SchemaIssue {
	if err == nil {
		return SchemaIssue{Message: "unknown error"}
	}

	var compileErr *compiler.Error
	if errors.As(err, &compileErr) {
		issue := SchemaIssue{
			Path:    compileErr.Pointer,
			Field:   compileErr.Path,
			Type:    compileErr.Type,
			Message: strings.TrimSpace(compileErr.Detail),
		}
		if compileErr.Err != nil {
			issue.Kind = compileErr.Err.Error()
		}
		if issue.Message == "" {
			issue.Message = issue.Kind
		}
		return issue
	}

	msg := strings.TrimSpace(err.Error())
	for _, prefix := range []string{"orchestrator: ", "decode document: ", "amis loader: ", "schema: ", "openapi: "} {
		msg = strings.TrimPrefix(msg, prefix)
	}
	return SchemaIssue{Message: strings.TrimSpace(msg)}
}
