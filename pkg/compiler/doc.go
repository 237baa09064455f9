// Package compiler converts amis form schemas into structural JSON Schemas.
//
// The conversion walks the control tree once, depth first:
//
//   - layout wrappers (fieldSet, grid) are flattened away so their children
//     take the wrapper's place among its siblings;
//   - form and combo controls become object schemas keyed by control name,
//     with required names listed in source order;
//   - every other control is dispatched on its type tag through a fixed rule
//     table (array, checkbox, container, string primitives).
//
// Tags without a rule fail the whole conversion with ErrUnhandledFieldType.
// Guessing a schema for an unknown control would certify loose validation, so
// the compiler never falls back to a default.
package compiler
