// Package jsonschema defines the structural schema produced by the amis
// compiler: objects with properties and a required list, arrays with a single
// items schema, and the string, number and boolean primitives.
package jsonschema
