// Package template defines the template rendering seam used by text
// renderers, with a pongo2-backed implementation in the pongo subpackage.
package template
