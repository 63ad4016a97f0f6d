// Package resolve loads a schema compiler request and resolves its type
// graph into a flat, ordered model the wrapper generator consumes.
//
// Key capabilities:
//   - Invoke the external schema compiler ("capnp compile -o-") or decode an
//     already-encoded code generator request from a stream
//   - Register every top-level struct and enum declaration of the requested
//     file by numeric id, then resolve struct fields against those indexes
//   - Map each field to a closed FieldType tag (primitive, struct, enum, or
//     single-level list) with cross-references replaced by resolved names
//   - Best-effort checking that collects every problem as diagnostics
//     instead of stopping at the first
//
// Key types:
//   - Schema: ordered resolved declarations of one generation pass
//   - TypeDef: a struct with ordered fields, or an enum with its retained
//     enumerants
//   - Resolver: the id indexes and walk state of a single resolution pass
//
// Enum declarations are assumed to reserve their first enumerant as the
// "not set" sentinel; the resolver always drops that first enumerant, so a
// schema whose leading enumerant is a real value loses it silently. This is
// part of the resolver contract, not a validation gap.
package resolve
