// Package gen renders a resolved schema model into C++ wrapper source.
//
// Generation approach uses text/template over pre-formatted method lines
// for deterministic, allocation-light text output.
//
// Emitted blocks:
//   - Record wrappers: a Reader (privately inheriting the plain capnp
//     Reader) with Get/Has accessors, and a Builder (privately inheriting
//     the plain capnp Builder, publicly the wrapper Reader) with
//     Set/Mutable accessors and arrow/star operators
//   - Enum mirrors: scoped enums listing the retained enumerants, offset
//     by one from the wire values because the wire's leading sentinel is
//     dropped
//
// Method synthesis is keyed by field kind: primitives get value accessors
// and a zero-compare Has, record fields get Reader/Builder forwarding plus
// Mutable, enum fields get offset casts, and list fields get no methods.
// Output order is the model's declaration order, so generation is
// deterministic for a given input.
package gen
