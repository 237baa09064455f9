// Package amisschema converts amis UI-form schemas into the JSON Schema that
// describes the data those forms submit.
//
//	schema, err := amisschema.Convert(form)
//
// Layout wrappers are flattened, form and combo controls become objects, and
// every other control is translated through a fixed rule table. Controls
// without a rule fail the conversion; see package compiler for the rules and
// error kinds.
package amisschema
