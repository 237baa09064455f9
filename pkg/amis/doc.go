// Package amis exposes a read-only view over amis UI-form schema documents.
// The host format is treated as opaque data: a Node is the decoded JSON/YAML
// object of a single control, and accessors read only the keys the schema
// compiler relies on (type, name, required, layout children, array items,
// container bodies and checkbox values).
package amis
